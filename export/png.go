package export

import (
	"bytes"
	"fmt"
	"math"

	"github.com/gogpu/gg"
	"github.com/lucasb-eyer/go-colorful"

	"liner/core"
	"liner/diagram"
)

// DefaultPixelScale is the number of pixels per drawing unit
const DefaultPixelScale = 4

// pngMargin is the free border around the scene, in pixels
const pngMargin = 16

// MaxPixelSize is the largest image width or height, in pixels
const MaxPixelSize = 4096

// PNGExporter rasterises shapes and routed paths
type PNGExporter struct {
	scale  float64
	stroke colorful.Color
}

// NewPNGExporter creates a PNG exporter. Scale is pixels per drawing unit;
// stroke is the hex colour of the paths.
func NewPNGExporter(scale float64, stroke string) (*PNGExporter, error) {
	if scale <= 0 {
		scale = DefaultPixelScale
	}
	c, err := ParseColor(stroke)
	if err != nil {
		return nil, err
	}
	return &PNGExporter{scale: scale, stroke: c}, nil
}

// Export draws the scene and encodes it as PNG
func (e *PNGExporter) Export(s *diagram.Scene) ([]byte, error) {
	b := s.Bounds()
	w, h, err := e.imageSize(b)
	if err != nil {
		return nil, err
	}

	dc := gg.NewContext(w, h)
	defer dc.Close()

	dc.ClearWithColor(gg.RGB(1, 1, 1))
	dc.Translate(pngMargin, pngMargin)
	dc.Scale(e.scale, e.scale)
	dc.Translate(-b.X, -b.Y)

	dc.SetRGB(0.2, 0.2, 0.2)
	dc.SetLineWidth(1.5 / e.scale)
	for _, shape := range s.Shapes {
		r := shape.Bounds()
		dc.DrawRectangle(r.X, r.Y, r.Width, r.Height)
		if err := dc.Stroke(); err != nil {
			return nil, fmt.Errorf("failed to stroke shape %d: %w", shape.ID, err)
		}
	}

	dc.SetColor(e.stroke)
	dc.SetLineWidth(2 / e.scale)
	for _, r := range s.Routes {
		pts := r.Conn.Path.Points()
		dc.MoveTo(pts[0].X, pts[0].Y)
		for _, p := range pts[1:] {
			dc.LineTo(p.X, p.Y)
		}
		if err := dc.Stroke(); err != nil {
			return nil, fmt.Errorf("failed to stroke connection %d: %w", r.ID, err)
		}
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// imageSize returns the pixel size for bounds, refusing anything above
// MaxPixelSize before it reaches an int conversion.
func (e *PNGExporter) imageSize(b core.Rect) (int, int, error) {
	w := math.Ceil(b.Width*e.scale) + 2*pngMargin
	h := math.Ceil(b.Height*e.scale) + 2*pngMargin
	// NaN fails both comparisons
	if !(w <= MaxPixelSize) || !(h <= MaxPixelSize) {
		return 0, 0, fmt.Errorf("%w: image would be %gx%g pixels, limit is %d",
			ErrSceneTooLarge, w, h, MaxPixelSize)
	}
	return int(w), int(h), nil
}

// FileExtension returns the file extension for PNG
func (e *PNGExporter) FileExtension() string {
	return ".png"
}

// FormatName returns the format name
func (e *PNGExporter) FormatName() string {
	return "PNG"
}
