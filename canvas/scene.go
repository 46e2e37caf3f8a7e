package canvas

import (
	"liner/core"
	"liner/diagram"
)

// SceneStyle selects the characters used for shapes and paths.
type SceneStyle struct {
	Box  BoxStyle
	Path PathStyle
}

// DefaultSceneStyle uses Unicode box drawing.
var DefaultSceneStyle = SceneStyle{Box: DefaultBoxStyle, Path: DefaultPathStyle}

// ASCIISceneStyle uses plain ASCII.
var ASCIISceneStyle = SceneStyle{Box: ASCIIBoxStyle, Path: ASCIIPathStyle}

// ShapeCells returns the grid rectangle covered by a shape. Boxes are at least
// 2x2 cells so they always have visible corners.
func ShapeCells(vp Viewport, s *diagram.Shape) (x, y, width, height int) {
	b := s.Bounds()
	tl := vp.ToCell(core.Point{X: b.MinX(), Y: b.MinY()})
	br := vp.ToCell(core.Point{X: b.MaxX(), Y: b.MaxY()})
	return tl.X, tl.Y, max(br.X-tl.X+1, 2), max(br.Y-tl.Y+1, 2)
}

// DrawScene draws every shape, routed path and label. Shapes that do not fit
// on the canvas are skipped; paths are clipped.
func DrawScene(c *MatrixCanvas, vp Viewport, s *diagram.Scene, style SceneStyle) {
	for _, shape := range s.Shapes {
		x, y, w, h := ShapeCells(vp, shape)
		c.DrawBox(x, y, w, h, style.Box)
	}

	for _, r := range s.Routes {
		pts := r.Conn.Path.Points()
		cells := make([]Cell, len(pts))
		for i, p := range pts {
			cells[i] = vp.ToCell(p)
		}
		// A path collapsing into one cell at this scale has nothing to draw
		c.DrawPath(cells, style.Path)
	}

	for _, shape := range s.Shapes {
		drawLabel(c, vp, shape)
	}
}

// drawLabel centers the label inside the shape, truncating it to fit.
func drawLabel(c *MatrixCanvas, vp Viewport, shape *diagram.Shape) {
	if shape.Label == "" {
		return
	}
	x, y, w, h := ShapeCells(vp, shape)
	room := w - 2
	if room < 1 || h < 3 {
		return
	}
	label := []rune(shape.Label)
	if len(label) > room {
		label = label[:room]
	}
	c.DrawText(x+1+(room-len(label))/2, y+(h-1)/2, string(label))
}

// RenderScene draws the scene onto a canvas sized to fit it and returns the
// result as text.
func RenderScene(s *diagram.Scene, scale float64, style SceneStyle) (string, error) {
	vp, w, h, err := Fit(s.Bounds(), scale, 1)
	if err != nil {
		return "", err
	}
	c, err := NewMatrixCanvas(w, h)
	if err != nil {
		return "", err
	}
	DrawScene(c, vp, s, style)
	return c.String(), nil
}
