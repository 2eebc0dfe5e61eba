package router_test

import (
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/outlet/pkg/outlet"
	"github.com/BrandonKowalski/outlet/pkg/outlet/dom"
	"github.com/BrandonKowalski/outlet/pkg/outlet/history"
	"github.com/BrandonKowalski/outlet/pkg/outlet/router"
)

type harness struct {
	doc     *dom.Document
	root    *dom.Node
	hist    *history.Memory
	router  *router.Router
	renders int
	popErrs []error

	// children held by each container when the renderer was called
	heldAtRender []int
}

func page(tag, text, outletID string) dom.Component {
	return func() *dom.Node {
		n := dom.NewElement(tag, "", dom.NewText(text))
		if outletID != "" {
			n.AppendChild(dom.NewElement("div", outletID))
		}
		return n
	}
}

func testRoutes() []router.Route {
	return []router.Route{
		{Pathname: "/", View: page("main", "Home", "")},
		{Pathname: "/about", View: page("main", "About", "")},
		{Pathname: "/dash/", View: page("main", "Dashboard", "/dash/"), Children: []router.Route{
			{Pathname: "settings", View: page("section", "Settings", "")},
			{Pathname: "profile", View: page("section", "Profile", "")},
		}},
	}
}

func newHarness(t *testing.T, routes []router.Route) *harness {
	t.Helper()

	h := &harness{
		root: dom.NewElement("div", "root", dom.NewText("loading")),
		hist: history.NewMemory("/"),
	}
	h.doc = dom.NewDocument(h.root)

	counting := router.RendererFunc(func(c router.Container, v router.View) error {
		h.renders++
		if n, ok := c.(*dom.Node); ok {
			h.heldAtRender = append(h.heldAtRender, len(n.Children()))
		}
		return dom.Renderer{}.Render(c, v)
	})

	r, err := router.New(h.root, routes,
		router.WithHistory(h.hist),
		router.WithDocument(h.doc),
		router.WithRenderer(counting),
		router.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		router.WithPopErrorHandler(func(_ string, err error) { h.popErrs = append(h.popErrs, err) }),
	)
	require.NoError(t, err)
	h.router = r
	return h
}

func (h *harness) lastMount(t *testing.T) router.Mount {
	t.Helper()
	m, ok := h.router.LastMount()
	require.True(t, ok, "expected a mount")
	return m
}

func TestNew_MissingCollaborators(t *testing.T) {
	root := dom.NewElement("div", "root")
	doc := dom.NewDocument(root)
	hist := history.NewMemory("/")

	tests := []struct {
		name string
		root router.Container
		opts []router.Option
	}{
		{name: "root", root: nil, opts: []router.Option{router.WithHistory(hist), router.WithDocument(doc), router.WithRenderer(dom.Renderer{})}},
		{name: "history", root: root, opts: []router.Option{router.WithDocument(doc), router.WithRenderer(dom.Renderer{})}},
		{name: "document", root: root, opts: []router.Option{router.WithHistory(hist), router.WithRenderer(dom.Renderer{})}},
		{name: "renderer", root: root, opts: []router.Option{router.WithHistory(hist), router.WithDocument(doc)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := router.New(tt.root, nil, tt.opts...)
			assert.Nil(t, r)
			assert.ErrorIs(t, err, outlet.ErrMissingCollaborator)
		})
	}
}

func TestNew_InvalidRouteDefinition(t *testing.T) {
	root := dom.NewElement("div", "root")
	hist := history.NewMemory("/")

	r, err := router.New(root, []router.Route{
		{Pathname: "/dash/", View: "dash", Children: []router.Route{{Pathname: "/settings", View: "s"}}},
	},
		router.WithHistory(hist),
		router.WithDocument(dom.NewDocument(root)),
		router.WithRenderer(dom.Renderer{}),
	)

	assert.Nil(t, r)
	assert.True(t, outlet.IsInvalidRouteDefinition(err))
}

func TestRouter_Routes(t *testing.T) {
	routes := testRoutes()
	h := newHarness(t, routes)

	assert.Len(t, h.router.Routes(), len(routes))
	assert.Equal(t, "/dash/", h.router.Routes()[2].Pathname)
	assert.Equal(t, 5, h.router.Table().Len())
}

func TestPush_PlainNavigation(t *testing.T) {
	h := newHarness(t, testRoutes())

	require.NoError(t, h.router.Push("/about"))

	assert.Equal(t, `<div id="root"><main>About</main></div>`, h.root.HTML())
	assert.Equal(t, "/about", h.hist.Pathname())
	assert.Equal(t, 1, h.renders)

	m := h.lastMount(t)
	assert.Equal(t, "root", m.Container)
	assert.True(t, m.Cleared)
	assert.True(t, m.Root)
	assert.Equal(t, router.TriggerPush, m.Trigger)
}

func TestPush_OutletOpenThenChildPop(t *testing.T) {
	h := newHarness(t, testRoutes())

	require.NoError(t, h.router.Push("/dash/"))
	shell := h.root.Children()[0]

	require.NoError(t, h.router.Push("/dash/", router.PushOptions{Outlet: true}))
	entry, err := h.router.Table().Lookup("/dash/")
	require.NoError(t, err)
	assert.True(t, entry.OutletOpen)
	assert.True(t, h.hist.State().Outlet)

	require.NoError(t, h.router.Push("/dash/settings"))
	require.NoError(t, h.router.Push("/dash/profile"))
	assert.Equal(t, "Profile", h.doc.Element("/dash/").TextContent())

	renders := h.renders
	require.True(t, h.hist.Back())

	assert.Equal(t, renders+1, h.renders)
	assert.Same(t, shell, h.root.Children()[0], "root must be left alone")
	assert.Len(t, h.root.Children(), 1)
	assert.Equal(t, `<div id="/dash/"><section>Settings</section></div>`, h.doc.Element("/dash/").HTML())

	m := h.lastMount(t)
	assert.Equal(t, "/dash/settings", m.Pathname)
	assert.Equal(t, "/dash/", m.Container)
	assert.True(t, m.Cleared)
	assert.False(t, m.Root)
	assert.Equal(t, router.TriggerPop, m.Trigger)
	assert.Empty(t, h.popErrs)
}

func TestPush_OutletOpenParentDirectPush(t *testing.T) {
	h := newHarness(t, testRoutes())

	require.NoError(t, h.router.Push("/dash/"))
	require.NoError(t, h.router.Push("/dash/", router.PushOptions{Outlet: true}))

	outletNode := h.doc.Element("/dash/")
	require.NotNil(t, outletNode)
	require.Len(t, outletNode.Children(), 1)
	previous := outletNode.Children()[0]

	require.NoError(t, h.router.Push("/dash/"))

	m := h.lastMount(t)
	assert.Equal(t, "/dash/", m.Container)
	assert.False(t, m.Cleared)
	assert.Equal(t, 1, h.heldAtRender[len(h.heldAtRender)-1], "router must not clear before rendering")

	require.Len(t, outletNode.Children(), 1, "renderer replaces the container content")
	assert.NotSame(t, previous, outletNode.Children()[0])
	assert.Equal(t, `<div id="/dash/"><main>Dashboard<div id="/dash/"></div></main></div>`, outletNode.HTML())
}

func TestPush_ChildWithClosedOutletReplacesRoot(t *testing.T) {
	h := newHarness(t, testRoutes())

	require.NoError(t, h.router.Push("/dash/"))
	require.NoError(t, h.router.Push("/dash/settings"))

	assert.Equal(t, `<div id="root"><section>Settings</section></div>`, h.root.HTML())
	assert.Equal(t, "root", h.lastMount(t).Container)
}

func TestPop_ChildWithClosedOutletReplacesRoot(t *testing.T) {
	h := newHarness(t, testRoutes())

	require.NoError(t, h.router.Push("/dash/settings"))
	require.NoError(t, h.router.Push("/about"))
	require.True(t, h.hist.Back())

	assert.Equal(t, `<div id="root"><section>Settings</section></div>`, h.root.HTML())
	m := h.lastMount(t)
	assert.True(t, m.Root)
	assert.Equal(t, router.TriggerPop, m.Trigger)
}

func TestPop_ParentWithOpenOutletClearsOwnContainer(t *testing.T) {
	h := newHarness(t, testRoutes())

	require.NoError(t, h.router.Push("/dash/"))
	require.NoError(t, h.router.Push("/dash/", router.PushOptions{Outlet: true}))
	require.NoError(t, h.router.Push("/dash/settings"))
	require.True(t, h.hist.Back())

	m := h.lastMount(t)
	assert.Equal(t, "/dash/", m.Pathname)
	assert.Equal(t, "/dash/", m.Container)
	assert.True(t, m.Cleared)
	assert.Equal(t, `<div id="/dash/"><main>Dashboard<div id="/dash/"></div></main></div>`, h.doc.Element("/dash/").HTML())
}

func TestPop_NeverOpensOutlet(t *testing.T) {
	h := newHarness(t, testRoutes())

	h.hist.PushState(router.PushOptions{Outlet: true}, "/dash/")
	require.NoError(t, h.router.Push("/about"))
	require.True(t, h.hist.Back())

	entry, err := h.router.Table().Lookup("/dash/")
	require.NoError(t, err)
	assert.False(t, entry.OutletOpen)
	assert.Equal(t, "root", h.lastMount(t).Container)
}

func TestPush_UnknownPathname(t *testing.T) {
	tests := []struct {
		name string
		opts []router.PushOptions
	}{
		{name: "plain"},
		{name: "outlet", opts: []router.PushOptions{{Outlet: true}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, testRoutes())

			err := h.router.Push("/nope", tt.opts...)

			assert.ErrorIs(t, err, outlet.ErrRouteNotFound)
			assert.Equal(t, 0, h.renders)
			assert.Equal(t, `<div id="root">loading</div>`, h.root.HTML())
			assert.Equal(t, "/nope", h.hist.Pathname(), "history is pushed before resolution")
			_, ok := h.router.LastMount()
			assert.False(t, ok)
		})
	}
}

func TestPush_RouteWithoutView(t *testing.T) {
	h := newHarness(t, []router.Route{
		{Pathname: "/empty"},
		{Pathname: "/p/", View: "p", Children: []router.Route{{Pathname: "c"}}},
	})

	for _, p := range []string{"/empty", "/p/c"} {
		err := h.router.Push(p)
		assert.ErrorIs(t, err, outlet.ErrRouteNotFound, p)
		assert.False(t, outlet.IsMountError(err), p)
	}
	assert.Equal(t, 0, h.renders)
	assert.Equal(t, `<div id="root">loading</div>`, h.root.HTML())
}

func TestRouter_LastMountConcurrentReader(t *testing.T) {
	h := newHarness(t, testRoutes())

	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-done:
				return
			default:
				if m, ok := h.router.LastMount(); ok {
					_ = m.Pathname
				}
			}
		}
	}()

	for i := 0; i < 200; i++ {
		require.NoError(t, h.router.Push("/about"))
	}
	close(done)
	wg.Wait()

	m := h.lastMount(t)
	assert.Equal(t, uint64(200), m.Seq)
	assert.Equal(t, "/about", m.Pathname)
}

func TestPop_ErrorsStopAtHandler(t *testing.T) {
	h := newHarness(t, testRoutes())

	h.hist.PushState(router.PushOptions{}, "/ghost")
	require.NoError(t, h.router.Push("/about"))
	require.True(t, h.hist.Back())

	require.Len(t, h.popErrs, 1)
	assert.True(t, outlet.IsRouteNotFound(h.popErrs[0]))
	assert.Equal(t, 1, h.renders)
}

func TestPush_OutletContainerMissing(t *testing.T) {
	h := newHarness(t, testRoutes())

	err := h.router.Push("/about", router.PushOptions{Outlet: true})

	assert.ErrorIs(t, err, outlet.ErrContainerNotFound)
	assert.Equal(t, 0, h.renders)
}

func TestPush_RenderFailure(t *testing.T) {
	h := newHarness(t, []router.Route{{Pathname: "/bad", View: 42}})

	err := h.router.Push("/bad")

	require.Error(t, err)
	assert.True(t, outlet.IsMountError(err))
	assert.ErrorIs(t, err, dom.ErrUnsupportedView)

	var mountErr *outlet.MountError
	require.True(t, errors.As(err, &mountErr))
	assert.Equal(t, "root", mountErr.Container)
	assert.Equal(t, uint64(0), h.router.Mounts())
}

func TestRouter_Close(t *testing.T) {
	h := newHarness(t, testRoutes())

	require.NoError(t, h.router.Push("/about"))
	h.router.Close()
	h.router.Close()
	require.True(t, h.hist.Back())

	assert.Equal(t, 1, h.renders)
	require.NoError(t, h.router.Push("/"), "push still works after close")
	assert.Equal(t, uint64(2), h.router.Mounts())
}

func TestRouter_IdenticalTablesFromSameRoutes(t *testing.T) {
	routes := []router.Route{
		{Pathname: "/", View: "home"},
		{Pathname: "/dash/", View: "dash", Children: []router.Route{{Pathname: "settings", View: "settings"}}},
		{Pathname: "/", View: "home-again"},
	}

	a := newHarness(t, routes).router.Table()
	b := newHarness(t, routes).router.Table()

	require.Equal(t, a.Pathnames(), b.Pathnames())
	for _, p := range a.Pathnames() {
		ea, err := a.Lookup(p)
		require.NoError(t, err)
		eb, err := b.Lookup(p)
		require.NoError(t, err)
		assert.Equal(t, ea, eb, p)
	}
}

func TestRouter_TablesAreIsolated(t *testing.T) {
	routes := testRoutes()
	a := newHarness(t, routes)
	b := newHarness(t, routes)

	require.NoError(t, a.router.Table().SetOutlet("/dash/", true))

	entry, err := b.router.Table().Lookup("/dash/")
	require.NoError(t, err)
	assert.False(t, entry.OutletOpen)
}

func TestTrigger_String(t *testing.T) {
	assert.Equal(t, "push", router.TriggerPush.String())
	assert.Equal(t, "pop", router.TriggerPop.String())
}
