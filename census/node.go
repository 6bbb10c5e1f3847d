package census

import (
	"sort"
)

// Handle indexes a node in a Graph's arena. NoNode marks the parent of
// a union-find root; the Pachner engine also uses it as the round
// sentinel on its work queue.
type Handle int

const NoNode Handle = -1

// Tets gives the tetrahedron count a signature encodes. The first
// character of an iso-sig encodes the size of the triangulation.
func Tets(sig string) int {
	return int(sig[0] - 'a')
}

// Node is one signature in a Pachner graph. Smallest and Minimal are
// meaningful on roots only: Smallest is the minimum tetrahedron count
// seen in the component and Minimal a node attaining it.
type Node struct {
	Sig      string
	parent   Handle
	depth    int
	Smallest int
	Minimal  Handle
}

// Graph is the union-find forest over one profile's signatures: a node
// arena plus a signature index. Nodes are never removed.
type Graph struct {
	nodes []Node
	index map[string]Handle
}

func NewGraph() *Graph {
	return &Graph{index: make(map[string]Handle)}
}

func (g *Graph) Size() int {
	return len(g.nodes)
}

func (g *Graph) Node(h Handle) *Node {
	return &g.nodes[h]
}

func (g *Graph) Get(sig string) (Handle, bool) {
	h, has := g.index[sig]
	return h, has
}

// Add inserts sig as a fresh singleton component. The caller must not
// add a signature twice.
func (g *Graph) Add(sig string) Handle {
	h := Handle(len(g.nodes))
	g.nodes = append(g.nodes, Node{
		Sig:      sig,
		parent:   NoNode,
		Smallest: Tets(sig),
		Minimal:  h,
	})
	g.index[sig] = h
	return h
}

// Sigs lists every signature in the graph in lexicographic order.
func (g *Graph) Sigs() []string {
	sigs := make([]string, 0, len(g.index))
	for sig := range g.index {
		sigs = append(sigs, sig)
	}
	sort.Strings(sigs)
	return sigs
}

// Find walks to the root of h's component, compressing the whole path
// on the way back.
func (g *Graph) Find(h Handle) Handle {
	r := h
	for g.nodes[r].parent != NoNode {
		r = g.nodes[r].parent
	}
	for g.nodes[h].parent != NoNode {
		next := g.nodes[h].parent
		g.nodes[h].parent = r
		h = next
	}
	return r
}

// Union joins the components of a and b, attaching the shallower tree
// under the deeper and carrying Smallest/Minimal onto the surviving
// root. Reports whether two distinct components were merged.
func (g *Graph) Union(a, b Handle) bool {
	ra := g.Find(a)
	rb := g.Find(b)
	if ra == rb {
		return false
	}
	na := &g.nodes[ra]
	nb := &g.nodes[rb]
	if na.depth > nb.depth {
		nb.parent = ra
		if nb.Smallest < na.Smallest {
			na.Smallest = nb.Smallest
			na.Minimal = nb.Minimal
		}
	} else if nb.depth > na.depth {
		na.parent = rb
		if na.Smallest < nb.Smallest {
			nb.Smallest = na.Smallest
			nb.Minimal = na.Minimal
		}
	} else {
		na.parent = rb
		nb.depth++
		if na.Smallest < nb.Smallest {
			nb.Smallest = na.Smallest
			nb.Minimal = na.Minimal
		}
	}
	return true
}
