package dom

import (
	"errors"
	"fmt"

	"github.com/BrandonKowalski/outlet/pkg/outlet/router"
)

var (
	// ErrUnsupportedView indicates a view value the renderer cannot mount.
	ErrUnsupportedView = errors.New("unsupported view")

	// ErrUnsupportedContainer indicates a container that is not a *Node.
	ErrUnsupportedContainer = errors.New("unsupported container")
)

// Component produces a fresh node tree each time it is rendered.
type Component func() *Node

// Renderer mounts views into *Node containers. Accepted views are Component,
// func() *Node, *Node (cloned on every render) and string (a text node).
type Renderer struct{}

// Render implements router.Renderer. The mounted view replaces whatever the
// container held. On error the container is left untouched.
func (Renderer) Render(c router.Container, v router.View) error {
	target, ok := c.(*Node)
	if !ok {
		return fmt.Errorf("%w: %T", ErrUnsupportedContainer, c)
	}

	var n *Node
	switch view := v.(type) {
	case Component:
		n = view()
	case func() *Node:
		n = view()
	case *Node:
		if view != nil {
			n = view.Clone()
		}
	case string:
		n = NewText(view)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedView, v)
	}

	if n == nil {
		return fmt.Errorf("%w: view produced no node", ErrUnsupportedView)
	}

	target.replaceChildren(n)
	return nil
}
