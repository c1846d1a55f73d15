package categorytree

import (
	"sort"
	"strings"
)

const PathSeparator = " > "

// Node adalah satu record kategori di dalam arena. ParentID kosong berarti
// kategori root. Deleted menandai record yang di-soft-delete; record seperti
// itu tetap ada di arena supaya traversal tidak putus di tengah jalan.
type Node struct {
	ID       string
	Name     string
	ParentID string
	Position int
	IsActive bool
	Deleted  bool
}

// Tree adalah arena kategori yang di-index per id. Relasi parent/child
// diselesaikan lewat arena, bukan object graph, dan setiap traversal ke arah
// root maupun daun dijaga dengan visited-set: parent yang hilang atau
// referensi melingkar menghentikan traversal alih-alih membuatnya berputar.
type Tree struct {
	nodes    map[string]Node
	children map[string][]string
}

func New(nodes []Node) *Tree {
	t := &Tree{
		nodes:    make(map[string]Node, len(nodes)),
		children: make(map[string][]string),
	}
	for _, n := range nodes {
		t.nodes[n.ID] = n
	}
	for _, n := range nodes {
		t.children[n.ParentID] = append(t.children[n.ParentID], n.ID)
	}
	for parentID, ids := range t.children {
		sort.SliceStable(ids, func(i, j int) bool {
			a, b := t.nodes[ids[i]], t.nodes[ids[j]]
			if a.Position != b.Position {
				return a.Position < b.Position
			}
			return a.Name < b.Name
		})
		t.children[parentID] = ids
	}
	return t
}

func (t *Tree) Node(id string) (Node, bool) {
	n, ok := t.nodes[id]
	return n, ok
}

// Roots mengembalikan kategori tanpa parent, urut position lalu nama.
func (t *Tree) Roots() []Node {
	return t.resolve(t.children[""])
}

// Children mengembalikan anak langsung dari id, urut position lalu nama.
func (t *Tree) Children(id string) []Node {
	return t.resolve(t.children[id])
}

// ActiveChildren seperti Children, difilter ke record aktif yang belum dihapus.
func (t *Tree) ActiveChildren(id string) []Node {
	out := []Node{}
	for _, n := range t.Children(id) {
		if n.IsActive && !n.Deleted {
			out = append(out, n)
		}
	}
	return out
}

// Ancestors menelusuri link parent ke arah root dan mengembalikan hasilnya
// root-first. Parent yang tidak ada menghentikan penelusuran tanpa error;
// referensi melingkar terdeteksi lewat visited-set.
func (t *Tree) Ancestors(id string) []Node {
	var chain []Node
	visited := map[string]bool{id: true}

	n, ok := t.nodes[id]
	if !ok {
		return chain
	}
	for n.ParentID != "" {
		parent, ok := t.nodes[n.ParentID]
		if !ok || visited[parent.ID] {
			break
		}
		visited[parent.ID] = true
		chain = append(chain, parent)
		n = parent
	}

	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}

// Descendants melakukan ekspansi depth-first atas seluruh turunan id.
func (t *Tree) Descendants(id string) []Node {
	var out []Node
	visited := map[string]bool{id: true}
	t.descend(id, visited, &out)
	return out
}

func (t *Tree) descend(id string, visited map[string]bool, out *[]Node) {
	for _, childID := range t.children[id] {
		if visited[childID] {
			continue
		}
		visited[childID] = true
		*out = append(*out, t.nodes[childID])
		t.descend(childID, visited, out)
	}
}

// FullPath menggabungkan nama dari root sampai id, dipisah " > ".
func (t *Tree) FullPath(id string) string {
	n, ok := t.nodes[id]
	if !ok {
		return ""
	}
	names := []string{}
	for _, a := range t.Ancestors(id) {
		names = append(names, a.Name)
	}
	names = append(names, n.Name)
	return strings.Join(names, PathSeparator)
}

// Depth menghitung jumlah lompatan parent sampai root; kategori root = 0.
func (t *Tree) Depth(id string) int {
	return len(t.Ancestors(id))
}

func (t *Tree) IsAncestorOf(a, b string) bool {
	for _, n := range t.Ancestors(b) {
		if n.ID == a {
			return true
		}
	}
	return false
}

func (t *Tree) IsDescendantOf(a, b string) bool {
	return t.IsAncestorOf(b, a)
}

func (t *Tree) resolve(ids []string) []Node {
	out := make([]Node, 0, len(ids))
	for _, id := range ids {
		out = append(out, t.nodes[id])
	}
	return out
}
