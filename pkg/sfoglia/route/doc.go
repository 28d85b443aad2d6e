// Package route resolves drawer paths against a host-supplied route tree.
//
// The host declares its routes as a tree of Node values, mirroring however its
// own navigation is structured. Flatten walks the tree once into a flat list
// of full-path patterns, and Resolve matches a concrete path against that list
// with exact, whole-path equality. There is no parameter extraction and no
// prefix matching: a drawer hosts one specific leaf view, never a parent with
// residual routing underneath it.
//
// # Basic Usage
//
//	routes := []route.Node{
//	    {Pattern: "profile", View: profileView, Children: []route.Node{
//	        {Pattern: "edit", View: editView},
//	    }},
//	    {Pattern: "settings", View: settingsView},
//	}
//
//	flat := route.Flatten(routes)
//
//	m, err := route.Resolve("/profile/edit?tab=avatar", flat)
//	// m.View == editView, m.Params == url.Values{"tab": ["avatar"]}
//
// A path's trailing query string never affects matching; it is stripped before
// comparison and handed back on the Match so the rendered view can consume it.
//
// The literal root path ("/" or "") is always rejected, even when the tree
// declares a root view. A drawer that rendered the root would recursively host
// the same navigation tree the drawer stack itself lives in.
package route
