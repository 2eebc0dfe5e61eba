// Package router maps pathnames to views and decides which container each view
// is mounted into.
//
// Routes are matched by exact pathname. A top-level route may own one level of
// children whose pathnames are suffixes appended to the parent's as is, so a
// "/dash/" parent with a "settings" child registers "/dash/settings".
//
// Pushing a parent with outlet intent turns the parent's own container (the element whose identifier
// is the parent pathname) into the mount point for its children, so moving
// between children re-mounts only the child view instead of the whole page.
//
// # Basic Usage
//
//	doc := dom.NewDocument(dom.NewElement("div", "root"))
//	hist := history.NewMemory("/")
//
//	r, err := router.New(doc.Element("root"), []router.Route{
//	    {Pathname: "/", View: homeView},
//	    {Pathname: "/dash/", View: dashView, Children: []router.Route{
//	        {Pathname: "settings", View: settingsView},
//	    }},
//	},
//	    router.WithHistory(hist),
//	    router.WithDocument(doc),
//	    router.WithRenderer(dom.Renderer{}),
//	)
//
//	_ = r.Push("/dash/")                                   // full page
//	_ = r.Push("/dash/", router.PushOptions{Outlet: true}) // open the outlet
//	_ = r.Push("/dash/settings")                           // mounted inside /dash/
//	hist.Back()                                            // pop, still inside /dash/
//
// # Mount Decision
//
// For every navigation exactly one container is chosen:
//
//  1. A history pop, or any child route, looks at its anchor: the parent for a
//     child, the pathname itself otherwise. An open anchor outlet is cleared and
//     receives the view.
//  2. A parent with its own outlet open is rendered into its container without
//     clearing it.
//  3. Everything else clears the root and renders there.
//
// Outlet flags only ever change through Push. Back/forward navigation reads them
// but never sets them.
package router
