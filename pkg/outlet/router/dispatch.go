package router

import (
	"fmt"

	"github.com/BrandonKowalski/outlet/pkg/outlet"
)

// Trigger is what started a navigation.
type Trigger int

const (
	TriggerPush Trigger = iota
	TriggerPop
)

func (t Trigger) String() string {
	if t == TriggerPop {
		return "pop"
	}
	return "push"
}

// NavigationEvent is a single navigation request.
type NavigationEvent struct {
	Pathname   string
	HistoryPop bool
	Outlet     bool
}

func (ev NavigationEvent) trigger() Trigger {
	if ev.HistoryPop {
		return TriggerPop
	}
	return TriggerPush
}

// Mount describes where a navigation mounted its view.
type Mount struct {
	Seq       uint64
	Pathname  string
	Container string
	Cleared   bool
	Root      bool
	Trigger   Trigger
}

// dispatch picks exactly one container and renders into it once.
//
// Pops and child routes first try the anchor (the parent for a child, the
// pathname itself otherwise). If the anchor's outlet is closed the remaining
// checks use the entry itself, so a child with a closed parent outlet replaces
// the whole root.
func (r *Router) dispatch(ev NavigationEvent) error {
	entry, err := r.table.Lookup(ev.Pathname)
	if err != nil {
		return err
	}
	if entry.View == nil {
		return fmt.Errorf("lookup %q: no view: %w", ev.Pathname, outlet.ErrRouteNotFound)
	}

	if ev.HistoryPop || entry.Kind == KindChild {
		anchorKey := ev.Pathname
		if entry.Kind == KindChild {
			anchorKey = entry.ParentPathname
		}

		anchor, err := r.table.Lookup(anchorKey)
		if err != nil {
			return err
		}

		if anchor.OutletOpen {
			return r.mountByID(ev, entry, anchorKey, true)
		}
	}

	if entry.OutletOpen && entry.Kind == KindParent {
		return r.mountByID(ev, entry, ev.Pathname, false)
	}

	return r.mount(ev, entry, r.root, true, true)
}

func (r *Router) mountByID(ev NavigationEvent, entry RouteEntry, id string, clear bool) error {
	c, ok := r.document.GetElementByID(id)
	if !ok || c == nil {
		return fmt.Errorf("mount %q: %w: %q", ev.Pathname, outlet.ErrContainerNotFound, id)
	}
	return r.mount(ev, entry, c, clear, false)
}

func (r *Router) mount(ev NavigationEvent, entry RouteEntry, c Container, clear, root bool) error {
	if clear {
		c.Clear()
	}

	if err := r.renderer.Render(c, entry.View); err != nil {
		return outlet.NewMountError("render", ev.Pathname, c.ID(), err)
	}

	m := Mount{
		Seq:       r.mounts.Inc(),
		Pathname:  ev.Pathname,
		Container: c.ID(),
		Cleared:   clear,
		Root:      root,
		Trigger:   ev.trigger(),
	}
	r.lastMount.Store(&m)

	r.logger.Debug("view mounted",
		"seq", m.Seq,
		"pathname", m.Pathname,
		"kind", entry.Kind.String(),
		"container", m.Container,
		"cleared", m.Cleared,
		"trigger", m.Trigger.String())

	return nil
}
