// Package connections models two shapes joined by a routed path.
package connections

import (
	"liner/bezier"
	"liner/core"
)

// Figure is anything a connector can attach to. Implementations must be
// comparable; pointer types are expected so that identity means "same shape".
type Figure interface {
	Bounds() core.Rect
}

// Connector resolves one end of a connection to a point on its owning figure.
type Connector interface {
	// Owner returns the figure the connector is attached to.
	Owner() Figure
	// Bounds returns the owner's current bounds.
	Bounds() core.Rect
	// FindStart returns the anchor when the connector is the start of c.
	FindStart(c *Connection) core.Point
	// FindEnd returns the anchor when the connector is the end of c.
	FindEnd(c *Connection) core.Point
}

// Connection joins a start and an end connector with a path.
type Connection struct {
	Start Connector
	End   Connector
	Path  *bezier.Path
}

// NewConnection creates a connection with a fresh two-node path.
func NewConnection(start, end Connector) *Connection {
	c := &Connection{Start: start, End: end}
	var sp, ep core.Point
	if start != nil {
		sp = start.Bounds().Center()
	}
	if end != nil {
		ep = end.Bounds().Center()
	}
	c.Path = bezier.NewPath(sp, ep)
	return c
}

// StartFigure returns the figure owning the start connector, or nil.
func (c *Connection) StartFigure() Figure {
	if c.Start == nil {
		return nil
	}
	return c.Start.Owner()
}

// EndFigure returns the figure owning the end connector, or nil.
func (c *Connection) EndFigure() Figure {
	if c.End == nil {
		return nil
	}
	return c.End.Owner()
}

// IsSelfLoop reports whether both ends attach to the same figure.
func (c *Connection) IsSelfLoop() bool {
	sf := c.StartFigure()
	return sf != nil && sf == c.EndFigure()
}

// Routable reports whether both connectors and the path are present.
func (c *Connection) Routable() bool {
	return c != nil && c.Start != nil && c.End != nil && c.Path != nil
}

// Box is a plain rectangular figure.
type Box struct {
	Rect core.Rect
}

// NewBox creates a box figure with the given bounds.
func NewBox(x, y, width, height float64) *Box {
	return &Box{Rect: core.Rect{X: x, Y: y, Width: width, Height: height}}
}

// Bounds returns the box rectangle.
func (b *Box) Bounds() core.Rect {
	return b.Rect
}
