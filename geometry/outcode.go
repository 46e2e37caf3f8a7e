// Package geometry classifies points and rectangles against each other.
package geometry

import "liner/core"

// PointOutcode returns the sides of r that p lies outside of. A point within
// [x, x+width] × [y, y+height] yields 0. At most one of TOP/BOTTOM and at most
// one of LEFT/RIGHT is ever set.
func PointOutcode(p core.Point, r core.Rect) core.Outcode {
	var code core.Outcode

	if p.X < r.MinX() {
		code |= core.OutLeft
	} else if p.X > r.MaxX() {
		code |= core.OutRight
	}

	if p.Y < r.MinY() {
		code |= core.OutTop
	} else if p.Y > r.MaxY() {
		code |= core.OutBottom
	}

	return code
}

// RectOutcode returns the side(s) of a on which b lies, judged by b's center.
// Coincident or concentric rectangles yield 0.
func RectOutcode(a, b core.Rect) core.Outcode {
	return PointOutcode(b.Center(), a)
}

// ResolveOutcode classifies p against its own rectangle. When p is inside or
// on the edge, it falls back to the direction of other as seen from own.
func ResolveOutcode(p core.Point, own, other core.Rect) core.Outcode {
	if code := PointOutcode(p, own); code != 0 {
		return code
	}
	return RectOutcode(own, other)
}

// Offset moves p by d in the direction named by code. RIGHT wins over LEFT,
// LEFT over BOTTOM; anything else moves up.
func Offset(p core.Point, code core.Outcode, d float64) core.Point {
	switch {
	case code.Has(core.OutRight):
		return p.Add(d, 0)
	case code.Has(core.OutLeft):
		return p.Add(-d, 0)
	case code.Has(core.OutBottom):
		return p.Add(0, d)
	default:
		return p.Add(0, -d)
	}
}

// Midpoint returns the point halfway between a and b.
func Midpoint(a, b core.Point) core.Point {
	return core.Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

// IsAxisAligned reports whether the segment a-b is horizontal or vertical.
// Zero-length segments count as aligned.
func IsAxisAligned(a, b core.Point, eps float64) bool {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return (dx <= eps && dx >= -eps) || (dy <= eps && dy >= -eps)
}
