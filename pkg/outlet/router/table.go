package router

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"go.uber.org/atomic"

	"github.com/BrandonKowalski/outlet/pkg/outlet"
	"github.com/BrandonKowalski/outlet/pkg/outlet/constants"
	"github.com/BrandonKowalski/outlet/pkg/outlet/internal"
)

type tableRecord struct {
	entry  RouteEntry
	outlet *atomic.Bool
}

// Table maps full pathnames to route entries. It is built once from the route
// tree; afterwards only the outlet flag of an entry can change.
type Table struct {
	records map[string]*tableRecord
}

// BuildTable builds the route table for a route tree.
// Duplicate full pathnames overwrite earlier ones.
func BuildTable(routes []Route) (*Table, error) {
	return buildTable(routes, internal.GetLogger())
}

func buildTable(routes []Route, logger *slog.Logger) (*Table, error) {
	t := &Table{records: make(map[string]*tableRecord)}

	for _, route := range routes {
		t.insert(logger, RouteEntry{
			Pathname: route.Pathname,
			View:     route.View,
			Kind:     KindParent,
		})

		for _, child := range route.Children {
			if strings.HasPrefix(child.Pathname, constants.PathSeparator) {
				return nil, fmt.Errorf("child %q of %q must not start with %q: %w",
					child.Pathname, route.Pathname, constants.PathSeparator, outlet.ErrInvalidRouteDefinition)
			}

			t.insert(logger, RouteEntry{
				Pathname:       JoinPathname(route.Pathname, child.Pathname),
				View:           child.View,
				Kind:           KindChild,
				ParentPathname: route.Pathname,
			})
		}
	}

	return t, nil
}

func (t *Table) insert(logger *slog.Logger, entry RouteEntry) {
	if prev, ok := t.records[entry.Pathname]; ok {
		logger.Debug("route overwritten",
			"pathname", entry.Pathname,
			"previous_kind", prev.entry.Kind.String(),
			"kind", entry.Kind.String())
	}
	t.records[entry.Pathname] = &tableRecord{entry: entry, outlet: atomic.NewBool(false)}
}

// Lookup returns the entry registered at exactly pathname.
func (t *Table) Lookup(pathname string) (RouteEntry, error) {
	rec, ok := t.records[pathname]
	if !ok {
		return RouteEntry{}, fmt.Errorf("lookup %q: %w", pathname, outlet.ErrRouteNotFound)
	}
	entry := rec.entry
	entry.OutletOpen = rec.outlet.Load()
	return entry, nil
}

// SetOutlet updates the outlet flag of an existing entry and nothing else.
func (t *Table) SetOutlet(pathname string, open bool) error {
	rec, ok := t.records[pathname]
	if !ok {
		return fmt.Errorf("set outlet %q: %w", pathname, outlet.ErrRouteNotFound)
	}
	rec.outlet.Store(open)
	return nil
}

// Len returns the number of registered pathnames.
func (t *Table) Len() int {
	return len(t.records)
}

// Pathnames returns every registered pathname in sorted order.
func (t *Table) Pathnames() []string {
	out := make([]string, 0, len(t.records))
	for p := range t.records {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}
