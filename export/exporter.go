// Package export writes routed scenes to text and image formats
package export

import (
	"errors"
	"fmt"

	"liner/diagram"
)

var (
	// ErrUnsupportedFormat is returned for a format without an exporter
	ErrUnsupportedFormat = errors.New("unsupported export format")
	// ErrSceneTooLarge is returned when the output would exceed the size limits
	ErrSceneTooLarge = errors.New("scene too large to export")
)

// Format represents an export format
type Format string

const (
	// FormatASCII exports to Unicode box-drawing art
	FormatASCII Format = "ascii"
	// FormatJSON exports the routed node sequences
	FormatJSON Format = "json"
	// FormatPNG exports a rasterised image
	FormatPNG Format = "png"
)

// Exporter interface for different export formats
type Exporter interface {
	// Export converts a routed scene to the target format
	Export(s *diagram.Scene) ([]byte, error)
	// FileExtension returns the recommended file extension for this format
	FileExtension() string
	// FormatName returns a human-readable name for this format
	FormatName() string
}

// Options configures the exporters created by NewExporter
type Options struct {
	// Scale is drawing units per character cell (ascii) or pixels per unit (png)
	Scale float64
	// PlainASCII disables Unicode box drawing
	PlainASCII bool
	// Stroke is the hex colour of routed paths in images
	Stroke string
}

// NewExporter creates an exporter for the specified format
func NewExporter(format Format, opts Options) (Exporter, error) {
	switch format {
	case FormatASCII:
		return NewASCIIExporter(opts.Scale, opts.PlainASCII), nil
	case FormatJSON:
		return NewJSONExporter(), nil
	case FormatPNG:
		e, err := NewPNGExporter(opts.Scale, opts.Stroke)
		if err != nil {
			return nil, err
		}
		return e, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

// ParseFormat converts a string to a Format
func ParseFormat(s string) (Format, error) {
	switch s {
	case "ascii", "text", "txt":
		return FormatASCII, nil
	case "json":
		return FormatJSON, nil
	case "png":
		return FormatPNG, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, s)
	}
}

// GetAvailableFormats returns a list of all available export formats
func GetAvailableFormats() []Format {
	return []Format{
		FormatASCII,
		FormatJSON,
		FormatPNG,
	}
}
