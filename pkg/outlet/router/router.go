package router

import (
	"fmt"
	"log/slog"

	"go.uber.org/atomic"

	"github.com/BrandonKowalski/outlet/pkg/outlet"
	"github.com/BrandonKowalski/outlet/pkg/outlet/internal"
)

// PopErrorFunc receives failures from back/forward navigation. Those failures
// have no caller to return to.
type PopErrorFunc func(pathname string, err error)

// Option configures a Router.
type Option func(*Router)

// WithHistory sets the host navigation history.
func WithHistory(h History) Option {
	return func(r *Router) { r.history = h }
}

// WithDocument sets the document used to find outlet containers.
func WithDocument(d Document) Option {
	return func(r *Router) { r.document = d }
}

// WithRenderer sets the renderer that mounts views.
func WithRenderer(rd Renderer) Option {
	return func(r *Router) { r.renderer = rd }
}

// WithLogger replaces the package logger.
func WithLogger(l *slog.Logger) Option {
	return func(r *Router) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithPopErrorHandler sets a callback for failed back/forward navigation.
func WithPopErrorHandler(fn PopErrorFunc) Option {
	return func(r *Router) { r.onPopError = fn }
}

// Router resolves pathnames against its route table and mounts the matching
// view. It owns the table and is the only code that mutates it.
type Router struct {
	root     Container
	routes   []Route
	table    *Table
	history  History
	document Document
	renderer Renderer
	logger   *slog.Logger

	onPopError  PopErrorFunc
	unsubscribe func()

	mounts    atomic.Uint64
	lastMount atomic.Pointer[Mount]
}

// New builds the route table and subscribes to history pops.
// root is the container used for full-page navigation.
func New(root Container, routes []Route, opts ...Option) (*Router, error) {
	r := &Router{
		root:   root,
		routes: routes,
		logger: internal.GetLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}

	switch {
	case root == nil:
		return nil, fmt.Errorf("router: root container: %w", outlet.ErrMissingCollaborator)
	case r.history == nil:
		return nil, fmt.Errorf("router: history: %w", outlet.ErrMissingCollaborator)
	case r.document == nil:
		return nil, fmt.Errorf("router: document: %w", outlet.ErrMissingCollaborator)
	case r.renderer == nil:
		return nil, fmt.Errorf("router: renderer: %w", outlet.ErrMissingCollaborator)
	}

	table, err := buildTable(routes, r.logger)
	if err != nil {
		return nil, fmt.Errorf("router: %w", err)
	}
	r.table = table
	r.unsubscribe = r.history.Subscribe(r.handlePop)

	r.logger.Info("router created", "root", root.ID(), "routes", len(routes), "entries", table.Len())

	return r, nil
}

// Push records pathname in the history and navigates to it.
// With Outlet set, the entry at pathname becomes an outlet for its children
// before the view is mounted. Resolution failures are returned after the
// history entry has already been recorded.
func (r *Router) Push(pathname string, opts ...PushOptions) error {
	var state PushOptions
	if len(opts) > 0 {
		state = opts[0]
	}

	r.history.PushState(state, pathname)

	if state.Outlet {
		if err := r.table.SetOutlet(pathname, true); err != nil {
			return fmt.Errorf("push: %w", err)
		}
	}

	if err := r.dispatch(NavigationEvent{Pathname: pathname, Outlet: state.Outlet}); err != nil {
		return fmt.Errorf("push: %w", err)
	}
	return nil
}

func (r *Router) handlePop() {
	pathname := r.history.Pathname()

	if err := r.dispatch(NavigationEvent{Pathname: pathname, HistoryPop: true}); err != nil {
		r.logger.Error("history navigation failed", "pathname", pathname, "error", err)
		if r.onPopError != nil {
			r.onPopError(pathname, err)
		}
	}
}

// Routes returns the route tree the router was built from.
func (r *Router) Routes() []Route {
	return r.routes
}

// Table returns the router's route table.
func (r *Router) Table() *Table {
	return r.table
}

// LastMount returns the most recent successful mount decision.
// Safe to call from any goroutine.
func (r *Router) LastMount() (Mount, bool) {
	m := r.lastMount.Load()
	if m == nil {
		return Mount{}, false
	}
	return *m, true
}

// Mounts returns how many views have been mounted.
func (r *Router) Mounts() uint64 {
	return r.mounts.Load()
}

// Close stops listening to history pops. Push keeps working.
func (r *Router) Close() {
	if r.unsubscribe != nil {
		r.unsubscribe()
		r.unsubscribe = nil
	}
}
