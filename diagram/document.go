// Package diagram loads scene documents and keeps their connections routed.
package diagram

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"liner/core"
)

// Common errors
var (
	ErrNoShapes      = errors.New("document has no shapes")
	ErrUnknownShape  = errors.New("unknown shape")
	ErrDuplicateID   = errors.New("duplicate id")
	ErrInvalidBounds = errors.New("invalid shape bounds")
)

// Shape is a rectangle in the document.
type Shape struct {
	ID     int     `json:"id"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Bounds returns the shape rectangle.
func (s *Shape) Bounds() core.Rect {
	return core.Rect{X: s.X, Y: s.Y, Width: s.Width, Height: s.Height}
}

// Anchor pins a connection end to a relative position on its shape.
// (0,0) is the top-left and (1,1) the bottom-right corner.
type Anchor struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Connection joins two shapes by id. An ID of 0 is assigned on Build, counting
// up from the largest explicit connection id. Without anchors the ends attach where the
// line between the shape centers crosses each shape's edge.
type Connection struct {
	ID         int     `json:"id,omitempty"`
	From       int     `json:"from"`
	To         int     `json:"to"`
	FromAnchor *Anchor `json:"fromAnchor,omitempty"`
	ToAnchor   *Anchor `json:"toAnchor,omitempty"`
}

// Document is the on-disk scene description.
type Document struct {
	Shapes      []Shape      `json:"shapes"`
	Connections []Connection `json:"connections"`
	Liner       string       `json:"liner,omitempty"`
	LinerSize   float64      `json:"linerSize,omitempty"`
	Stroke      string       `json:"stroke,omitempty"`
	Metadata    Metadata     `json:"metadata,omitempty"`
}

// Metadata contains optional document metadata.
type Metadata struct {
	Name    string `json:"name,omitempty"`
	Version string `json:"version,omitempty"`
}

// Load decodes a document from r and validates it.
func Load(r io.Reader) (*Document, error) {
	var d Document
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&d); err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

// LoadFile reads and validates the document at path.
func LoadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	d, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// Save writes the document as indented JSON.
func (d *Document) Save(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(d)
}

// Validate checks shape ids, bounds, connection ids and connection references.
func (d *Document) Validate() error {
	if len(d.Shapes) == 0 {
		return ErrNoShapes
	}

	ids := make(map[int]bool, len(d.Shapes))
	for _, s := range d.Shapes {
		if ids[s.ID] {
			return fmt.Errorf("%w: %d", ErrDuplicateID, s.ID)
		}
		ids[s.ID] = true
		if s.Width < 0 || s.Height < 0 {
			return fmt.Errorf("%w: shape %d is %gx%g", ErrInvalidBounds, s.ID, s.Width, s.Height)
		}
	}

	connIDs := make(map[int]bool, len(d.Connections))
	for i, c := range d.Connections {
		if c.ID != 0 {
			if connIDs[c.ID] {
				return fmt.Errorf("connection %d: %w %d", i, ErrDuplicateID, c.ID)
			}
			connIDs[c.ID] = true
		}
		if !ids[c.From] {
			return fmt.Errorf("connection %d: %w %d", i, ErrUnknownShape, c.From)
		}
		if !ids[c.To] {
			return fmt.Errorf("connection %d: %w %d", i, ErrUnknownShape, c.To)
		}
	}
	return nil
}
