package graph

// Layout steps in display units.
const (
	xStep = 180.0
	yStep = 80.0
)

// layoutState carries the vertical offset shared across an entire layout
// pass. It advances whenever a node with children is visited and is not
// reset between root trees.
type layoutState struct {
	nextY float64
}

// Layout assigns x/y coordinates to every node reachable from a root node
// and retags leaf nodes as end nodes. Each root tree starts at x = 0; x
// advances by one step per recursion depth, so siblings share a column while
// the shared vertical offset spreads them out.
func Layout(g *Graph) {
	st := &layoutState{}
	for _, n := range g.Roots() {
		layoutNode(g, n, 0, st)
	}
}

// layoutNode places n, then follows its outgoing edges depth-first in
// edge-list order.
func layoutNode(g *Graph, n *Node, x float64, st *layoutState) {
	n.X = x
	n.Y = st.nextY

	children := g.Outgoing(n.ID)
	if len(children) == 0 {
		n.Kind = KindEnd
		return
	}

	st.nextY += yStep
	for _, e := range children {
		if child := g.Node(e.Target); child != nil {
			layoutNode(g, child, x+xStep, st)
		}
	}
}
