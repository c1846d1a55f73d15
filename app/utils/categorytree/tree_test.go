package categorytree_test

import (
	"testing"

	"github.com/arunika/go-backoffice/app/utils/categorytree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(nodes []categorytree.Node) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.ID)
	}
	return out
}

// sampleTree: Parfum (a) > Pria (b) > Eau de Parfum (c), plus root kedua dan
// beberapa anak dengan posisi, status, dan soft-delete yang bervariasi.
func sampleTree() *categorytree.Tree {
	return categorytree.New([]categorytree.Node{
		{ID: "a", Name: "Parfum", Position: 0, IsActive: true},
		{ID: "b", Name: "Pria", ParentID: "a", Position: 0, IsActive: true},
		{ID: "c", Name: "Eau de Parfum", ParentID: "b", Position: 0, IsActive: true},
		{ID: "d", Name: "Wanita", ParentID: "a", Position: 1, IsActive: true},
		{ID: "e", Name: "Arsip", ParentID: "a", Position: 2, IsActive: false},
		{ID: "f", Name: "Diskon Lama", ParentID: "a", Position: 3, IsActive: true, Deleted: true},
		{ID: "g", Name: "Body Mist", Position: 1, IsActive: true},
	})
}

func TestRootsAndChildrenOrder(t *testing.T) {
	tree := sampleTree()

	assert.Equal(t, []string{"a", "g"}, ids(tree.Roots()))
	assert.Equal(t, []string{"b", "d", "e", "f"}, ids(tree.Children("a")))
}

func TestChildrenTieBreakByName(t *testing.T) {
	tree := categorytree.New([]categorytree.Node{
		{ID: "r", Name: "Root", IsActive: true},
		{ID: "z", Name: "Zibeline", ParentID: "r", Position: 5, IsActive: true},
		{ID: "m", Name: "Musk", ParentID: "r", Position: 5, IsActive: true},
	})

	assert.Equal(t, []string{"m", "z"}, ids(tree.Children("r")))
}

func TestActiveChildren(t *testing.T) {
	tree := sampleTree()

	// Nonaktif dan soft-deleted tidak ikut.
	assert.Equal(t, []string{"b", "d"}, ids(tree.ActiveChildren("a")))
}

func TestLeafHasNoChildren(t *testing.T) {
	tree := sampleTree()

	assert.Empty(t, tree.Children("c"))
	assert.Empty(t, tree.ActiveChildren("c"))
}

func TestAncestorsRootFirst(t *testing.T) {
	tree := sampleTree()

	assert.Equal(t, []string{"a", "b"}, ids(tree.Ancestors("c")))
	assert.Empty(t, tree.Ancestors("a"))
	assert.Empty(t, tree.Ancestors("tidak-ada"))
}

func TestAncestorsStopsOnMissingParent(t *testing.T) {
	tree := categorytree.New([]categorytree.Node{
		{ID: "x", Name: "Yatim", ParentID: "hilang", IsActive: true},
		{ID: "y", Name: "Anak", ParentID: "x", IsActive: true},
	})

	// Parent yang hilang memutus rantai tanpa error.
	assert.Equal(t, []string{"x"}, ids(tree.Ancestors("y")))
}

func TestAncestorsCycleGuard(t *testing.T) {
	tree := categorytree.New([]categorytree.Node{
		{ID: "p", Name: "P", ParentID: "q", IsActive: true},
		{ID: "q", Name: "Q", ParentID: "p", IsActive: true},
	})

	chain := tree.Ancestors("p")
	require.Len(t, chain, 1)
	assert.Equal(t, "q", chain[0].ID)
}

func TestDescendants(t *testing.T) {
	tree := sampleTree()

	assert.Equal(t, []string{"b", "c", "d", "e", "f"}, ids(tree.Descendants("a")))
	assert.Empty(t, tree.Descendants("c"))
}

func TestFullPathAndDepth(t *testing.T) {
	tree := sampleTree()

	assert.Equal(t, "Parfum > Pria > Eau de Parfum", tree.FullPath("c"))
	assert.Equal(t, "Parfum", tree.FullPath("a"))
	assert.Equal(t, "", tree.FullPath("tidak-ada"))

	assert.Equal(t, 0, tree.Depth("a"))
	assert.Equal(t, 1, tree.Depth("b"))
	assert.Equal(t, 2, tree.Depth("c"))
}

func TestAncestryChecks(t *testing.T) {
	tree := sampleTree()

	assert.True(t, tree.IsAncestorOf("a", "c"))
	assert.True(t, tree.IsDescendantOf("c", "a"))
	assert.False(t, tree.IsAncestorOf("c", "a"))
	assert.False(t, tree.IsAncestorOf("g", "c"))
	assert.False(t, tree.IsAncestorOf("a", "a"))
}
