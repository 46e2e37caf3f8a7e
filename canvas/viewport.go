package canvas

import (
	"fmt"
	"math"

	"liner/core"
)

// MaxGridSize is the largest width or height, in cells, that Fit accepts.
const MaxGridSize = 2048

// Viewport maps drawing coordinates onto grid cells. Scale is the number of
// drawing units per cell.
type Viewport struct {
	Origin core.Point
	Scale  float64
}

// ToCell returns the cell nearest to p.
func (v Viewport) ToCell(p core.Point) Cell {
	return Cell{
		X: int(math.Round((p.X - v.Origin.X) / v.Scale)),
		Y: int(math.Round((p.Y - v.Origin.Y) / v.Scale)),
	}
}

// Frame returns a viewport whose origin leaves margin free cells above and to
// the left of bounds.
func Frame(bounds core.Rect, scale float64, margin int) Viewport {
	if scale <= 0 {
		scale = 1
	}
	return Viewport{
		Origin: core.Point{
			X: bounds.X - float64(margin)*scale,
			Y: bounds.Y - float64(margin)*scale,
		},
		Scale: scale,
	}
}

// Fit returns a viewport showing bounds with margin free cells on every side,
// together with the grid size needed to hold it. Grids larger than
// MaxGridSize on either side are rejected with ErrInvalidSize.
func Fit(bounds core.Rect, scale float64, margin int) (vp Viewport, width, height int, err error) {
	vp = Frame(bounds, scale, margin)

	w := math.Round(bounds.Width/vp.Scale) + float64(2*margin+1)
	h := math.Round(bounds.Height/vp.Scale) + float64(2*margin+1)
	// NaN fails both comparisons
	if !(w >= 1 && w <= MaxGridSize) || !(h >= 1 && h <= MaxGridSize) {
		return vp, 0, 0, fmt.Errorf("%w: scene needs %gx%g cells, limit is %d",
			ErrInvalidSize, w, h, MaxGridSize)
	}
	return vp, int(w), int(h), nil
}
