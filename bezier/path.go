// Package bezier holds the node sequence a connection is drawn along.
package bezier

import (
	"math"

	"liner/core"
)

// Node masks select which control points of a node are in use.
const (
	// C0Mask marks a plain corner: the path passes straight through the anchor.
	C0Mask = 0
	// C1Mask enables the incoming control point.
	C1Mask = 1
	// C2Mask enables the outgoing control point.
	C2Mask = 2
)

// Node is an anchor point with two optional control points.
// Index 0 of X and Y is the anchor, 1 the incoming and 2 the outgoing control point.
type Node struct {
	Mask int
	X    [3]float64
	Y    [3]float64
}

// NewNode creates a corner node at (x, y).
func NewNode(x, y float64) Node {
	return Node{
		Mask: C0Mask,
		X:    [3]float64{x, x, x},
		Y:    [3]float64{y, y, y},
	}
}

// Point returns the anchor of the node.
func (n Node) Point() core.Point {
	return core.Point{X: n.X[0], Y: n.Y[0]}
}

// moveTo translates the anchor and its control points together.
func (n *Node) moveTo(x, y float64) {
	dx := x - n.X[0]
	dy := y - n.Y[0]
	for i := range n.X {
		n.X[i] += dx
		n.Y[i] += dy
	}
}

// Segment is a straight piece of a finalized path.
type Segment struct {
	From, To core.Point
}

// Length returns the euclidean length of the segment.
func (s Segment) Length() float64 {
	return math.Hypot(s.To.X-s.From.X, s.To.Y-s.From.Y)
}

// Path is an ordered node sequence. Node 0 is the start endpoint and the last
// node the end endpoint; a path always holds at least two nodes. The zero value
// is empty until its first edit, which seeds both endpoints at the origin.
//
// Path is not safe for concurrent use. Callers route one connection at a time.
type Path struct {
	nodes []Node

	valid    bool
	segments []Segment
	bounds   core.Rect
	length   float64
}

// NewPath creates a two-node path from start to end.
func NewPath(start, end core.Point) *Path {
	return &Path{
		nodes: []Node{NewNode(start.X, start.Y), NewNode(end.X, end.Y)},
	}
}

// Len returns the number of nodes.
func (p *Path) Len() int {
	return len(p.nodes)
}

// Node returns a copy of node i.
func (p *Path) Node(i int) Node {
	return p.nodes[i]
}

// Nodes returns a copy of all nodes.
func (p *Path) Nodes() []Node {
	out := make([]Node, len(p.nodes))
	copy(out, p.nodes)
	return out
}

// Points returns the anchor of every node in order.
func (p *Path) Points() []core.Point {
	pts := make([]core.Point, len(p.nodes))
	for i, n := range p.nodes {
		pts[i] = n.Point()
	}
	return pts
}

// Start returns the anchor of the first node, or the origin for an empty path.
func (p *Path) Start() core.Point {
	if len(p.nodes) == 0 {
		return core.Point{}
	}
	return p.nodes[0].Point()
}

// End returns the anchor of the last node, or the origin for an empty path.
func (p *Path) End() core.Point {
	if len(p.nodes) == 0 {
		return core.Point{}
	}
	return p.nodes[len(p.nodes)-1].Point()
}

// seed tops a path up to its two endpoint nodes.
func (p *Path) seed() {
	for len(p.nodes) < 2 {
		p.nodes = append(p.nodes, NewNode(0, 0))
		p.valid = false
	}
}

// Insert adds n before index i. Inserting before node 0 is not allowed, so
// i is clamped to the interior range [1, Len()-1].
func (p *Path) Insert(i int, n Node) {
	p.seed()
	if i < 1 {
		i = 1
	}
	if i > len(p.nodes)-1 {
		i = len(p.nodes) - 1
	}
	p.nodes = append(p.nodes, Node{})
	copy(p.nodes[i+1:], p.nodes[i:])
	p.nodes[i] = n
	p.valid = false
}

// Add appends n as the last interior node, just before the end node.
func (p *Path) Add(n Node) {
	p.Insert(len(p.nodes)-1, n)
}

// Clear removes every interior node, leaving the two endpoints.
func (p *Path) Clear() {
	if len(p.nodes) > 2 {
		p.nodes = append(p.nodes[:1], p.nodes[len(p.nodes)-1])
		p.valid = false
	}
}

// Remove deletes the interior node at index i. It reports false and leaves the
// path unchanged when i names an endpoint or is out of range.
func (p *Path) Remove(i int) bool {
	if i <= 0 || i >= len(p.nodes)-1 {
		return false
	}
	p.nodes = append(p.nodes[:i], p.nodes[i+1:]...)
	p.valid = false
	return true
}

// MoveTo moves the anchor of node i to pt.
func (p *Path) MoveTo(i int, pt core.Point) {
	p.seed()
	p.nodes[i].moveTo(pt.X, pt.Y)
	p.valid = false
}

// EnsureSize grows or shrinks the path to exactly n nodes. Nodes are inserted
// and removed at index 1, so the endpoints are never touched. n below 2 is
// treated as 2.
func (p *Path) EnsureSize(n int) {
	if n < 2 {
		n = 2
	}
	p.seed()
	for len(p.nodes) < n {
		p.Insert(1, NewNode(0, 0))
	}
	for len(p.nodes) > n {
		p.Remove(1)
	}
}

// SetEndpoints overwrites the anchors of the first and last node.
func (p *Path) SetEndpoints(start, end core.Point) {
	p.seed()
	p.MoveTo(0, start)
	p.MoveTo(len(p.nodes)-1, end)
}

// Reset replaces the whole node sequence with corner nodes at pts.
// Fewer than two points leave the path unchanged.
func (p *Path) Reset(pts ...core.Point) {
	if len(pts) < 2 {
		return
	}
	nodes := p.nodes[:0]
	for _, pt := range pts {
		nodes = append(nodes, NewNode(pt.X, pt.Y))
	}
	p.nodes = nodes
	p.valid = false
}

// Finalize turns every node into a straight corner and recomputes the cached
// render geometry. Calling it again without edits changes nothing.
func (p *Path) Finalize() {
	p.seed()
	for i := range p.nodes {
		n := &p.nodes[i]
		n.Mask = C0Mask
		n.X[1], n.X[2] = n.X[0], n.X[0]
		n.Y[1], n.Y[2] = n.Y[0], n.Y[0]
	}
	p.valid = false
	p.validate()
}

// Segments returns the straight segments between consecutive anchors.
func (p *Path) Segments() []Segment {
	p.validate()
	out := make([]Segment, len(p.segments))
	copy(out, p.segments)
	return out
}

// Bounds returns the bounding box of all anchors.
func (p *Path) Bounds() core.Rect {
	p.validate()
	return p.bounds
}

// Length returns the summed length of all segments.
func (p *Path) Length() float64 {
	p.validate()
	return p.length
}

// validate recomputes the cache if an edit invalidated it.
func (p *Path) validate() {
	if p.valid {
		return
	}

	p.segments = p.segments[:0]
	p.length = 0
	if len(p.nodes) == 0 {
		p.bounds = core.Rect{}
		p.valid = true
		return
	}

	first := p.nodes[0].Point()
	minX, minY, maxX, maxY := first.X, first.Y, first.X, first.Y
	for i := 1; i < len(p.nodes); i++ {
		pt := p.nodes[i].Point()
		seg := Segment{From: p.nodes[i-1].Point(), To: pt}
		p.segments = append(p.segments, seg)
		p.length += seg.Length()

		minX = math.Min(minX, pt.X)
		minY = math.Min(minY, pt.Y)
		maxX = math.Max(maxX, pt.X)
		maxY = math.Max(maxY, pt.Y)
	}
	p.bounds = core.Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
	p.valid = true
}
