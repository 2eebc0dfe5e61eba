package router

// Container is a mount point in the document.
type Container interface {
	// ID returns the identifier the document knows the container by.
	ID() string
	// Clear removes all mounted content.
	Clear()
}

// Document locates containers by identifier. Outlet containers are identified
// by the pathname of the route that owns them.
type Document interface {
	GetElementByID(id string) (Container, bool)
}

// Renderer mounts a view into a container.
type Renderer interface {
	Render(c Container, v View) error
}

// RendererFunc adapts a plain function to the Renderer interface.
type RendererFunc func(c Container, v View) error

func (f RendererFunc) Render(c Container, v View) error {
	return f(c, v)
}

// PushOptions is the navigation intent passed to Push. It is also the state
// payload recorded with each history entry.
type PushOptions struct {
	Outlet bool
}

// History is the host navigation history.
type History interface {
	// PushState appends an entry and makes it current. Subscribers are not notified.
	PushState(state PushOptions, pathname string)
	// Pathname returns the pathname of the current entry.
	Pathname() string
	// Subscribe registers fn to run after every back/forward move.
	// The returned function removes the subscription.
	Subscribe(fn func()) (unsubscribe func())
}
