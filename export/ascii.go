package export

import (
	"errors"
	"fmt"

	"liner/canvas"
	"liner/diagram"
)

// DefaultCellScale is the number of drawing units per character cell
const DefaultCellScale = 5

// ASCIIExporter draws scenes on a character grid
type ASCIIExporter struct {
	scale float64
	style canvas.SceneStyle
}

// NewASCIIExporter creates an ASCII exporter. Scale is drawing units per cell.
func NewASCIIExporter(scale float64, plain bool) *ASCIIExporter {
	if scale <= 0 {
		scale = DefaultCellScale
	}
	style := canvas.DefaultSceneStyle
	if plain {
		style = canvas.ASCIISceneStyle
	}
	return &ASCIIExporter{scale: scale, style: style}
}

// Export renders the scene as text
func (e *ASCIIExporter) Export(s *diagram.Scene) ([]byte, error) {
	out, err := canvas.RenderScene(s, e.scale, e.style)
	if errors.Is(err, canvas.ErrInvalidSize) {
		return nil, fmt.Errorf("%w: %w", ErrSceneTooLarge, err)
	}
	if err != nil {
		return nil, err
	}
	return []byte(out + "\n"), nil
}

// FileExtension returns the file extension for text art
func (e *ASCIIExporter) FileExtension() string {
	return ".txt"
}

// FormatName returns the format name
func (e *ASCIIExporter) FormatName() string {
	return "ASCII"
}
