// Package core contains the fundamental types used throughout the liner connector router.
package core

import (
	"fmt"
	"math"
	"strings"
)

// Point represents a 2D coordinate in drawing space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns p translated by (dx, dy).
func (p Point) Add(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Equal reports whether two points coincide within eps.
func (p Point) Equal(q Point, eps float64) bool {
	return math.Abs(p.X-q.X) <= eps && math.Abs(p.Y-q.Y) <= eps
}

// String returns the point as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

// Rect represents an axis-aligned rectangle. Width and Height are never negative
// for rectangles produced by this package.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// MinX returns the left edge.
func (r Rect) MinX() float64 { return r.X }

// MaxX returns the right edge.
func (r Rect) MaxX() float64 { return r.X + r.Width }

// MinY returns the top edge.
func (r Rect) MinY() float64 { return r.Y }

// MaxY returns the bottom edge.
func (r Rect) MaxY() float64 { return r.Y + r.Height }

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{
		X: r.X + r.Width/2,
		Y: r.Y + r.Height/2,
	}
}

// Contains checks if a point is inside the rectangle. Edges count as inside.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.MinX() && p.X <= r.MaxX() &&
		p.Y >= r.MinY() && p.Y <= r.MaxY()
}

// Inset shrinks the rectangle by d on all four sides. When the rectangle is
// too small it collapses to zero size around its center.
func (r Rect) Inset(d float64) Rect {
	out := Rect{X: r.X + d, Y: r.Y + d, Width: r.Width - 2*d, Height: r.Height - 2*d}
	if out.Width < 0 {
		out.X = r.X + r.Width/2
		out.Width = 0
	}
	if out.Height < 0 {
		out.Y = r.Y + r.Height/2
		out.Height = 0
	}
	return out
}

// Union returns the smallest rectangle containing both r and o.
func (r Rect) Union(o Rect) Rect {
	minX := math.Min(r.MinX(), o.MinX())
	minY := math.Min(r.MinY(), o.MinY())
	maxX := math.Max(r.MaxX(), o.MaxX())
	maxY := math.Max(r.MaxY(), o.MaxY())
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Outcode is a bitset over the four sides of a reference rectangle.
// Zero means inside or touching.
type Outcode int

const (
	OutLeft   Outcode = 1
	OutTop    Outcode = 2
	OutRight  Outcode = 4
	OutBottom Outcode = 8
)

// Has reports whether any of the bits in side are set.
func (o Outcode) Has(side Outcode) bool {
	return o&side != 0
}

// Vertical reports whether TOP or BOTTOM is set.
func (o Outcode) Vertical() bool {
	return o.Has(OutTop | OutBottom)
}

// Horizontal reports whether LEFT or RIGHT is set.
func (o Outcode) Horizontal() bool {
	return o.Has(OutLeft | OutRight)
}

// String returns the set sides joined with "|", or "inside".
func (o Outcode) String() string {
	if o == 0 {
		return "inside"
	}
	var parts []string
	if o.Has(OutTop) {
		parts = append(parts, "top")
	}
	if o.Has(OutBottom) {
		parts = append(parts, "bottom")
	}
	if o.Has(OutLeft) {
		parts = append(parts, "left")
	}
	if o.Has(OutRight) {
		parts = append(parts, "right")
	}
	return strings.Join(parts, "|")
}
