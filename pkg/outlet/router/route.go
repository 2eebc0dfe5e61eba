package router

// View is an opaque renderable unit. The router never inspects it; it is handed
// to the Renderer as is.
type View any

// Route is one node of the declarative route tree.
// Top-level routes carry a full pathname. Children carry a suffix relative to
// their parent that must not start with the path separator.
type Route struct {
	Pathname string
	View     View
	Children []Route
}

// Kind tells whether a table entry came from a top-level route or a child.
type Kind int

const (
	KindParent Kind = iota
	KindChild
)

func (k Kind) String() string {
	switch k {
	case KindParent:
		return "parent"
	case KindChild:
		return "child"
	default:
		return "unknown"
	}
}

// RouteEntry is the resolved metadata stored in the route table for one full pathname.
// Lookups return a snapshot; OutletOpen reflects the flag at lookup time.
type RouteEntry struct {
	Pathname       string
	View           View
	Kind           Kind
	ParentPathname string // empty for parents
	OutletOpen     bool
}

// JoinPathname builds the full pathname of a child route by plain
// concatenation. No separator is inserted: a child "settings" under "/dash/"
// is "/dash/settings", under "/dash" it is "/dashsettings".
func JoinPathname(parent, suffix string) string {
	return parent + suffix
}
