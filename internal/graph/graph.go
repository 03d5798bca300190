// Package graph builds a node/edge view of fate chains and lays the result
// out as a set of trees for visualization tooling.
package graph

import "strings"

// Kind classifies a node within a fate chain.
type Kind string

const (
	// KindRoot marks the start of a fate chain.
	KindRoot Kind = "root"
	// KindChild marks a fate's own node.
	KindChild Kind = "child"
	// KindEnd marks a node with no outgoing edges, assigned during layout.
	KindEnd Kind = "end"
)

// EdgeKindFateFlow is the single edge kind produced by the builder.
const EdgeKindFateFlow = "fateFlow"

// Display sizes for rendered nodes.
const (
	RootSize  = 24
	ChildSize = 18
)

// Node is a renderable graph node. X and Y are zero until Layout runs.
type Node struct {
	ID    string  `json:"id"`
	Kind  Kind    `json:"kind"`
	Label string  `json:"label"`
	Size  int     `json:"size"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

// Edge connects a fate's resolved root node to its child node.
type Edge struct {
	ID     string `json:"id"`
	Source string `json:"source"`
	Target string `json:"target"`
	Kind   string `json:"kind"`
	Label  string `json:"label,omitempty"`
}

// Stats holds aggregate node counts by kind.
type Stats struct {
	Roots int `json:"roots"`
	Fates int `json:"fates"`
	Ends  int `json:"ends"`
}

// Graph accumulates nodes and edges in insertion order. An id index gives
// constant-time lookup; when two nodes share an id, the index keeps the first
// one added.
type Graph struct {
	nodes []*Node
	edges []*Edge
	index map[string]*Node
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{index: make(map[string]*Node)}
}

// addNode appends n, indexing its id on first occurrence.
func (g *Graph) addNode(n *Node) *Node {
	g.nodes = append(g.nodes, n)
	if _, ok := g.index[n.ID]; !ok {
		g.index[n.ID] = n
	}
	return n
}

// addEdge appends e.
func (g *Graph) addEdge(e *Edge) *Edge {
	g.edges = append(g.edges, e)
	return e
}

// Node returns the first node added with the given id, or nil.
func (g *Graph) Node(id string) *Node {
	return g.index[id]
}

// Nodes returns all nodes in insertion order.
func (g *Graph) Nodes() []*Node {
	return g.nodes
}

// Edges returns all edges in insertion order.
func (g *Graph) Edges() []*Edge {
	return g.edges
}

// Roots returns the nodes carrying the root id prefix, in insertion order.
func (g *Graph) Roots() []*Node {
	var roots []*Node
	for _, n := range g.nodes {
		if strings.HasPrefix(n.ID, rootPrefix) {
			roots = append(roots, n)
		}
	}
	return roots
}

// Outgoing returns the edges whose source is the given node id, in edge-list
// order.
func (g *Graph) Outgoing(id string) []*Edge {
	var out []*Edge
	for _, e := range g.edges {
		if e.Source == id {
			out = append(out, e)
		}
	}
	return out
}

// Stats counts nodes by kind. Child nodes retagged as end nodes during
// layout count as both fates and ends.
func (g *Graph) Stats() Stats {
	var s Stats
	for _, n := range g.nodes {
		switch n.Kind {
		case KindRoot:
			s.Roots++
		case KindChild:
			s.Fates++
		case KindEnd:
			s.Fates++
			s.Ends++
		}
	}
	return s
}
