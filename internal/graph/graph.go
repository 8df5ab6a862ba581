// Package graph builds the descriptor knowledge graph from a loaded dataset.
package graph

import "github.com/healcde/cdegraph/internal/dataset"

// Node is a single descriptor value in the graph.
//
// Nodes are identified by label alone. If the same string appears under two
// categories it merges into one node keeping the first-applied category and
// style; callers that need category-scoped identity must disambiguate labels
// upstream.
type Node struct {
	Label    string           `json:"label"`
	Category dataset.Category `json:"category"`
	Color    string           `json:"color"`
	Shape    string           `json:"shape"`
	Size     float64          `json:"size"`
}

// Edge is an undirected connection between two node labels. Edges are not
// deduplicated: the same pair may appear once per row that produced it.
type Edge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Graph is the finished node/edge collection, in builder production order.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`

	index map[string]int // label -> position in Nodes
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{index: make(map[string]int)}
}

// addNode inserts a node if its label has not been seen, and reports whether
// the insert happened. Re-adding an existing label is a no-op.
func (g *Graph) addNode(n Node) bool {
	if _, ok := g.index[n.Label]; ok {
		return false
	}
	g.index[n.Label] = len(g.Nodes)
	g.Nodes = append(g.Nodes, n)
	return true
}

// addEdge appends an edge unconditionally.
func (g *Graph) addEdge(from, to string) {
	g.Edges = append(g.Edges, Edge{From: from, To: to})
}

// HasNode reports whether a label exists in the graph.
func (g *Graph) HasNode(label string) bool {
	_, ok := g.index[label]
	return ok
}

// NodeByLabel returns the node for a label, or nil if absent.
func (g *Graph) NodeByLabel(label string) *Node {
	idx, ok := g.index[label]
	if !ok {
		return nil
	}
	return &g.Nodes[idx]
}

// IsEmpty reports whether the graph has no nodes.
func (g *Graph) IsEmpty() bool {
	return len(g.Nodes) == 0
}
