// Package manifest loads route trees from TOML files.
//
//	root = "root"
//
//	[[routes]]
//	pathname = "/dash/"
//	tag = "main"
//	text = "Dashboard"
//	outlet = true
//
//	  [[routes.children]]
//	  pathname = "settings"
//	  text = "Settings"
//
// Each route becomes a dom.Component rendering an element with the given tag
// and text. Routes with outlet = true also render an empty container whose
// identifier is the route's full pathname, ready to host child views.
package manifest

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/BrandonKowalski/outlet/pkg/outlet/constants"
	"github.com/BrandonKowalski/outlet/pkg/outlet/dom"
	"github.com/BrandonKowalski/outlet/pkg/outlet/router"
)

// ErrInvalidManifest indicates a manifest that decodes but cannot describe a route tree.
var ErrInvalidManifest = errors.New("invalid manifest")

const defaultTag = "div"

// Manifest is a decoded route manifest.
type Manifest struct {
	Root   string      `toml:"root"`
	Routes []RouteSpec `toml:"routes"`
}

// RouteSpec describes one route and its view.
type RouteSpec struct {
	Pathname string      `toml:"pathname"`
	Tag      string      `toml:"tag"`
	Text     string      `toml:"text"`
	Outlet   bool        `toml:"outlet"`
	Children []RouteSpec `toml:"children"`
}

// Load reads and parses a manifest file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Parse decodes a manifest and validates it. Unknown keys are rejected.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	md, err := toml.Decode(string(data), &m)
	if err != nil {
		return nil, fmt.Errorf("failed to decode manifest: %w", err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: unknown keys %s", ErrInvalidManifest, strings.Join(keys, ", "))
	}

	if m.Root == "" {
		m.Root = constants.DefaultRootID
	}

	if err := m.validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

func (m *Manifest) validate() error {
	for i, r := range m.Routes {
		if r.Pathname == "" {
			return fmt.Errorf("%w: routes[%d] has no pathname", ErrInvalidManifest, i)
		}
		for j, c := range r.Children {
			if len(c.Children) > 0 {
				return fmt.Errorf("%w: %s child %d: routes nest one level only", ErrInvalidManifest, r.Pathname, j)
			}
		}
	}
	return nil
}

// RouteTree converts the manifest into a route tree.
// Child suffixes are passed through untouched, so a suffix starting with "/"
// fails later in router.New.
func (m *Manifest) RouteTree() []router.Route {
	routes := make([]router.Route, 0, len(m.Routes))
	for _, spec := range m.Routes {
		route := router.Route{
			Pathname: spec.Pathname,
			View:     spec.View(spec.Pathname),
		}
		for _, child := range spec.Children {
			full := router.JoinPathname(spec.Pathname, child.Pathname)
			route.Children = append(route.Children, router.Route{
				Pathname: child.Pathname,
				View:     child.View(full),
			})
		}
		routes = append(routes, route)
	}
	return routes
}

// View returns the component for this route. fullPathname identifies the
// outlet container when Outlet is set.
func (s RouteSpec) View(fullPathname string) dom.Component {
	tag := s.Tag
	if tag == "" {
		tag = defaultTag
	}
	text, outlet := s.Text, s.Outlet

	return func() *dom.Node {
		n := dom.NewElement(tag, "")
		if text != "" {
			n.AppendChild(dom.NewText(text))
		}
		if outlet {
			n.AppendChild(dom.NewElement("div", fullPathname))
		}
		return n
	}
}
