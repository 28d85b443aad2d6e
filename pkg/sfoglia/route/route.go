package route

import (
	"errors"
	"net/url"
	"strings"
)

// Sentinel errors returned by Resolve.
var (
	// ErrNotFound indicates the path matched no flattened route.
	// This is a normal condition: the controller renders a placeholder
	// panel for it, not an error surface.
	ErrNotFound = errors.New("no route matches path")

	// ErrRootPath indicates the path was the literal root, which is never
	// allowed inside a drawer.
	ErrRootPath = errors.New("root path cannot be previewed in a drawer")
)

// Node is one node of the host's route tree. A node optionally declares a
// path segment, optionally a view, and optionally children. Nodes without a
// View are not matchable endpoints but still contribute their pattern to the
// full paths of their children.
//
// The tree is owned by the host and treated as immutable.
type Node struct {
	Pattern  string
	View     any
	Children []Node
}

// Flat is one entry of a flattened route tree: the fully joined path pattern
// and the view registered at it.
type Flat struct {
	FullPath string
	View     any
}

// Match is the result of a successful resolution.
type Match struct {
	// View is the view registered at the matched route.
	View any

	// Path is the concrete path that matched, with any query suffix removed.
	Path string

	// Params holds the query parameters embedded in the resolved path
	// itself (e.g. the "?tab=avatar" in "drawer=/profile?tab=avatar"),
	// scoped to the view rendered at this drawer level.
	Params url.Values
}

// Flatten walks the route tree depth-first and returns every node that
// declares a view as a (full path, view) pair. A child's full path is its
// parent's full path joined with its own pattern; duplicate separators are
// collapsed. Output preserves tree pre-order: parents before children,
// siblings in declared order.
func Flatten(nodes []Node) []Flat {
	var out []Flat
	for _, n := range nodes {
		flattenInto(&out, "", n)
	}
	return out
}

func flattenInto(out *[]Flat, parent string, n Node) {
	full := joinPath(parent, n.Pattern)
	if n.View != nil {
		*out = append(*out, Flat{FullPath: full, View: n.View})
	}
	for _, child := range n.Children {
		flattenInto(out, full, child)
	}
}

// joinPath joins a parent full path and a child pattern, collapsing duplicate
// separators. A root node with an empty pattern contributes no leading
// separator of its own, so its children still flatten to "/child" rather than
// "//child".
func joinPath(parent, pattern string) string {
	pattern = strings.TrimPrefix(pattern, "/")
	if pattern == "" {
		if parent == "" {
			return "/"
		}
		return parent
	}

	base := strings.TrimSuffix(parent, "/")
	return base + "/" + pattern
}

// Resolve matches path against the flattened routes and returns the view that
// must render inside a drawer for it.
//
// Any query suffix on path is stripped before comparison and returned on the
// Match as view-scoped Params. Matching is exact: the full candidate path must
// equal the flattened pattern, with no partial or prefix matches. The first
// match in flatten order wins.
//
// Returns ErrRootPath for the literal root path regardless of tree contents,
// and ErrNotFound when no entry matches.
func Resolve(path string, flat []Flat) (Match, error) {
	clean, params := splitQuery(path)

	if clean == "/" || clean == "" {
		return Match{}, ErrRootPath
	}

	for _, f := range flat {
		if f.FullPath == clean {
			return Match{View: f.View, Path: clean, Params: params}, nil
		}
	}
	return Match{}, ErrNotFound
}

// splitQuery splits a drawer path into its route portion and its embedded
// query parameters. A malformed query is treated as absent rather than
// failing resolution.
func splitQuery(path string) (string, url.Values) {
	idx := strings.Index(path, "?")
	if idx < 0 {
		return path, url.Values{}
	}

	params, err := url.ParseQuery(path[idx+1:])
	if err != nil {
		params = url.Values{}
	}
	return path[:idx], params
}
