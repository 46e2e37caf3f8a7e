package liner

import (
	"liner/connections"
	"liner/core"
	"liner/geometry"
)

// Slanted leaves each figure with a short straight stub and joins the stubs
// with whatever segment connects them.
type Slanted struct {
	SlantSize float64
}

// NewSlanted creates a slanted liner. A slant of zero or less selects DefaultSize.
func NewSlanted(slant float64) *Slanted {
	return &Slanted{SlantSize: sizeOrDefault(slant)}
}

// Name returns "slanted".
func (l *Slanted) Name() string { return "slanted" }

// Lineout rewrites the connection path with slanted segments.
func (l *Slanted) Lineout(c *connections.Connection) {
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

func (l *Slanted) lineoutSameFigure(c *connections.Connection) {
	path := c.Path
	path.EnsureSize(5)

	sp := c.Start.FindStart(c)
	ep := c.End.FindEnd(c)
	sb := c.Start.Bounds()
	eb := c.End.Bounds()

	soutcode := geometry.ResolveOutcode(sp, sb, eb)
	eoutcode := geometry.ResolveOutcode(ep, eb, sb)

	path.SetEndpoints(sp, ep)

	soutcode = slantedStartTurn(soutcode)
	eoutcode = slantedEndTurn(soutcode, eoutcode)

	Logger().Debug("slanted self-loop",
		"start", sp, "end", ep, "soutcode", soutcode, "eoutcode", eoutcode)

	s1 := geometry.Offset(sp, soutcode, l.SlantSize)
	s2 := geometry.Offset(ep, eoutcode, l.SlantSize)
	path.MoveTo(1, s1)
	path.MoveTo(3, s2)
	path.MoveTo(2, elbowCorner(s1, s2, soutcode))
}

// slantedStartTurn rotates the start side; unresolved sides become RIGHT.
func slantedStartTurn(soutcode core.Outcode) core.Outcode {
	switch soutcode {
	case core.OutTop:
		return core.OutRight
	case core.OutRight:
		return core.OutTop
	case core.OutBottom:
		return core.OutRight
	case core.OutLeft:
		return core.OutBottom
	default:
		return core.OutRight
	}
}

// slantedEndTurn derives the end side from the rotated start side. Only a
// start side outside the table keeps the computed end side.
func slantedEndTurn(soutcode, eoutcode core.Outcode) core.Outcode {
	switch soutcode {
	case core.OutTop:
		return core.OutLeft
	case core.OutRight:
		return core.OutTop
	case core.OutBottom:
		return core.OutRight
	case core.OutLeft:
		return core.OutBottom
	default:
		return eoutcode
	}
}

// lineoutDifferentFigures places one stub node in front of each endpoint.
func (l *Slanted) lineoutDifferentFigures(c *connections.Connection) {
	path := c.Path
	path.EnsureSize(4)

	sp := c.Start.FindStart(c)
	ep := c.End.FindEnd(c)
	sb := c.Start.Bounds()
	eb := c.End.Bounds()

	soutcode := geometry.ResolveOutcode(sp, sb, eb)
	eoutcode := geometry.ResolveOutcode(ep, eb, sb)

	path.SetEndpoints(sp, ep)
	path.MoveTo(1, geometry.Offset(sp, soutcode, l.SlantSize))
	path.MoveTo(2, geometry.Offset(ep, eoutcode, l.SlantSize))

	Logger().Debug("slanted lineout",
		"start", sp, "end", ep, "soutcode", soutcode, "eoutcode", eoutcode)
}
