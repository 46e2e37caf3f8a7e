package liner

import (
	"liner/connections"
	"liner/core"
	"liner/geometry"
)

// elbowInset keeps the different-figure path from hugging the figure edges.
const elbowInset = 5

// Elbow constrains a connection to orthogonal segments.
type Elbow struct {
	ShoulderSize float64
}

// NewElbow creates an elbow liner. A shoulder of zero or less selects DefaultSize.
func NewElbow(shoulder float64) *Elbow {
	return &Elbow{ShoulderSize: sizeOrDefault(shoulder)}
}

// Name returns "elbow".
func (l *Elbow) Name() string { return "elbow" }

// Lineout rewrites the connection path with right-angle segments.
func (l *Elbow) Lineout(c *connections.Connection) {
	if !c.Routable() {
		return
	}

	if c.IsSelfLoop() {
		l.lineoutSameFigure(c)
	} else {
		l.lineoutDifferentFigures(c)
	}

	c.Path.Finalize()
}

// lineoutSameFigure builds a five-node loop: endpoint, shoulder, elbow,
// shoulder, endpoint.
func (l *Elbow) lineoutSameFigure(c *connections.Connection) {
	path := c.Path
	path.EnsureSize(5)

	sp := c.Start.FindStart(c)
	ep := c.End.FindEnd(c)
	sb := c.Start.Bounds()
	eb := c.End.Bounds()

	soutcode := geometry.ResolveOutcode(sp, sb, eb)
	eoutcode := geometry.ResolveOutcode(ep, eb, sb)
	computed := eoutcode

	path.SetEndpoints(sp, ep)

	soutcode, eoutcode = elbowLoopTurn(soutcode)

	Logger().Debug("elbow self-loop",
		"start", sp, "end", ep,
		"soutcode", soutcode, "eoutcode", eoutcode, "computedEnd", computed)

	s1 := geometry.Offset(sp, soutcode, l.ShoulderSize)
	s2 := geometry.Offset(ep, eoutcode, l.ShoulderSize)
	path.MoveTo(1, s1)
	path.MoveTo(3, s2)
	path.MoveTo(2, elbowCorner(s1, s2, soutcode))
}

// elbowLoopTurn maps the start side to the end side so that a loop always
// turns clockwise. The end side computed from geometry is not consulted.
func elbowLoopTurn(soutcode core.Outcode) (core.Outcode, core.Outcode) {
	switch soutcode {
	case core.OutTop:
		return soutcode, core.OutLeft
	case core.OutRight:
		return soutcode, core.OutTop
	case core.OutBottom:
		return soutcode, core.OutRight
	case core.OutLeft:
		return soutcode, core.OutBottom
	default:
		return core.OutRight, core.OutTop
	}
}

// elbowCorner returns the corner joining two shoulder points. A horizontal
// start shoulder keeps its x and takes y from the end shoulder; a vertical one
// keeps its y and takes x from the end shoulder.
func elbowCorner(s1, s2 core.Point, soutcode core.Outcode) core.Point {
	switch soutcode {
	case core.OutRight, core.OutLeft:
		return core.Point{X: s1.X, Y: s2.Y}
	default:
		return core.Point{X: s2.X, Y: s1.Y}
	}
}

// lineoutDifferentFigures replaces the path with three or four nodes.
func (l *Elbow) lineoutDifferentFigures(c *connections.Connection) {
	sp := c.Start.FindStart(c)
	ep := c.End.FindEnd(c)
	sb := c.Start.Bounds().Inset(elbowInset)
	eb := c.End.Bounds().Inset(elbowInset)

	soutcode := geometry.ResolveOutcode(sp, sb, eb)
	eoutcode := geometry.ResolveOutcode(ep, eb, sb)

	var branch string
	switch {
	case soutcode.Vertical() && eoutcode.Vertical():
		branch = "vertical-midpoint"
		midY := (sp.Y + ep.Y) / 2
		c.Path.Reset(sp, core.Point{X: sp.X, Y: midY}, core.Point{X: ep.X, Y: midY}, ep)
	case soutcode.Horizontal() && eoutcode.Horizontal():
		branch = "horizontal-midpoint"
		midX := (sp.X + ep.X) / 2
		c.Path.Reset(sp, core.Point{X: midX, Y: sp.Y}, core.Point{X: midX, Y: ep.Y}, ep)
	case soutcode == core.OutTop || soutcode == core.OutBottom:
		branch = "vertical-first"
		c.Path.Reset(sp, core.Point{X: sp.X, Y: ep.Y}, ep)
	default:
		branch = "horizontal-first"
		c.Path.Reset(sp, core.Point{X: ep.X, Y: sp.Y}, ep)
	}

	Logger().Debug("elbow lineout",
		"branch", branch, "start", sp, "end", ep,
		"soutcode", soutcode, "eoutcode", eoutcode)
}
