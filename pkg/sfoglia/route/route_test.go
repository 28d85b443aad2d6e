package route

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTree() []Node {
	return []Node{
		{Pattern: "", View: "root", Children: []Node{
			{Pattern: "profile", View: "profile", Children: []Node{
				{Pattern: "edit", View: "profile-edit"},
			}},
			{Pattern: "settings", View: "settings"},
		}},
	}
}

func TestFlattenPreOrder(t *testing.T) {
	flat := Flatten(testTree())

	require.Len(t, flat, 4)
	assert.Equal(t, "/", flat[0].FullPath)
	assert.Equal(t, "/profile", flat[1].FullPath)
	assert.Equal(t, "/profile/edit", flat[2].FullPath)
	assert.Equal(t, "/settings", flat[3].FullPath)
}

func TestFlattenCollapsesSeparators(t *testing.T) {
	flat := Flatten([]Node{
		{Pattern: "/a/", View: nil, Children: []Node{
			{Pattern: "/b", View: "b"},
		}},
	})

	require.Len(t, flat, 1)
	assert.Equal(t, "/a/b", flat[0].FullPath)
}

func TestFlattenSkipsViewlessNodes(t *testing.T) {
	flat := Flatten([]Node{
		{Pattern: "admin", Children: []Node{
			{Pattern: "users", View: "users"},
		}},
	})

	require.Len(t, flat, 1)
	assert.Equal(t, "/admin/users", flat[0].FullPath)
}

func TestResolveExactMatch(t *testing.T) {
	flat := Flatten(testTree())

	m, err := Resolve("/profile", flat)
	require.NoError(t, err)
	assert.Equal(t, "profile", m.View)
	assert.Equal(t, "/profile", m.Path)

	m, err = Resolve("/profile/edit", flat)
	require.NoError(t, err)
	assert.Equal(t, "profile-edit", m.View)
}

func TestResolveNoPrefixMatch(t *testing.T) {
	flat := Flatten([]Node{{Pattern: "profile", View: "profile"}})

	_, err := Resolve("/profile/edit", flat)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResolveQueryNeverAffectsMatching(t *testing.T) {
	flat := Flatten(testTree())

	plain, err := Resolve("/profile", flat)
	require.NoError(t, err)

	withQuery, err := Resolve("/profile?x=1&y=2", flat)
	require.NoError(t, err)

	assert.Equal(t, plain.View, withQuery.View)
	assert.Equal(t, plain.Path, withQuery.Path)
	assert.Equal(t, "1", withQuery.Params.Get("x"))
	assert.Equal(t, "2", withQuery.Params.Get("y"))
	assert.Empty(t, plain.Params)
}

func TestResolveRootAlwaysRejected(t *testing.T) {
	flat := Flatten(testTree())

	// The tree registers a view at "/", but the root is rejected anyway.
	for _, path := range []string{"/", "", "/?x=1"} {
		_, err := Resolve(path, flat)
		assert.ErrorIs(t, err, ErrRootPath, "path %q", path)
	}
}

func TestResolveNotFound(t *testing.T) {
	flat := Flatten(testTree())

	_, err := Resolve("/missing", flat)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResolveFirstMatchWins(t *testing.T) {
	flat := []Flat{
		{FullPath: "/dup", View: "first"},
		{FullPath: "/dup", View: "second"},
	}

	m, err := Resolve("/dup", flat)
	require.NoError(t, err)
	assert.Equal(t, "first", m.View)
}

func TestResolveMalformedQueryStillMatches(t *testing.T) {
	flat := Flatten(testTree())

	m, err := Resolve("/settings?%zz", flat)
	require.NoError(t, err)
	assert.Equal(t, "settings", m.View)
	assert.Empty(t, m.Params)
}
