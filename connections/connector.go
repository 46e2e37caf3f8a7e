package connections

import (
	"math"

	"liner/core"
)

// ChopBoxConnector attaches to the point where the line from the owner's center
// toward the opposite end leaves the owner's bounds.
type ChopBoxConnector struct {
	owner Figure
}

// NewChopBoxConnector creates a connector on f.
func NewChopBoxConnector(f Figure) *ChopBoxConnector {
	return &ChopBoxConnector{owner: f}
}

// Owner returns the figure the connector is attached to.
func (c *ChopBoxConnector) Owner() Figure { return c.owner }

// Bounds returns the owner's bounds.
func (c *ChopBoxConnector) Bounds() core.Rect { return c.owner.Bounds() }

// FindStart chops toward the end figure. A self-loop leaves from the middle
// of the right edge.
func (c *ChopBoxConnector) FindStart(conn *Connection) core.Point {
	r := c.owner.Bounds()
	if conn.IsSelfLoop() {
		return core.Point{X: r.MaxX(), Y: r.Y + r.Height/2}
	}
	return Chop(r, referencePoint(conn.End, r))
}

// FindEnd chops toward the start figure. A self-loop arrives at the middle of
// the top edge.
func (c *ChopBoxConnector) FindEnd(conn *Connection) core.Point {
	r := c.owner.Bounds()
	if conn.IsSelfLoop() {
		return core.Point{X: r.X + r.Width/2, Y: r.MinY()}
	}
	return Chop(r, referencePoint(conn.Start, r))
}

// referencePoint returns the center of the other end, or the own center when
// the other end is missing.
func referencePoint(other Connector, own core.Rect) core.Point {
	if other == nil {
		return own.Center()
	}
	return other.Bounds().Center()
}

// Chop returns the point where the ray from r's center toward target crosses
// the boundary of r. A target at the center yields the center.
func Chop(r core.Rect, target core.Point) core.Point {
	center := r.Center()
	dx := target.X - center.X
	dy := target.Y - center.Y
	if dx == 0 && dy == 0 {
		return center
	}

	hw := r.Width / 2
	hh := r.Height / 2
	t := math.Inf(1)
	if dx != 0 {
		t = math.Min(t, hw/math.Abs(dx))
	}
	if dy != 0 {
		t = math.Min(t, hh/math.Abs(dy))
	}
	return core.Point{X: center.X + t*dx, Y: center.Y + t*dy}
}

// FixedConnector attaches at a fixed position relative to the owner's bounds,
// where (0,0) is the top-left and (1,1) the bottom-right corner.
type FixedConnector struct {
	owner      Figure
	RelX, RelY float64
}

// NewFixedConnector creates a connector on f at the relative position (rx, ry).
func NewFixedConnector(f Figure, rx, ry float64) *FixedConnector {
	return &FixedConnector{owner: f, RelX: rx, RelY: ry}
}

// Owner returns the figure the connector is attached to.
func (c *FixedConnector) Owner() Figure { return c.owner }

// Bounds returns the owner's bounds.
func (c *FixedConnector) Bounds() core.Rect { return c.owner.Bounds() }

// FindStart returns the fixed anchor.
func (c *FixedConnector) FindStart(*Connection) core.Point { return c.anchor() }

// FindEnd returns the fixed anchor.
func (c *FixedConnector) FindEnd(*Connection) core.Point { return c.anchor() }

func (c *FixedConnector) anchor() core.Point {
	r := c.owner.Bounds()
	return core.Point{X: r.X + c.RelX*r.Width, Y: r.Y + c.RelY*r.Height}
}
