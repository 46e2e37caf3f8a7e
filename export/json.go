package export

import (
	"encoding/json"

	"liner/core"
	"liner/diagram"
)

// JSONExporter exports routed node sequences
type JSONExporter struct{}

// NewJSONExporter creates a new JSON exporter
func NewJSONExporter() *JSONExporter {
	return &JSONExporter{}
}

type routedScene struct {
	Liner       string      `json:"liner"`
	Shapes      []shapeJSON `json:"shapes"`
	Connections []routeJSON `json:"connections"`
	Bounds      core.Rect   `json:"bounds"`
}

type shapeJSON struct {
	ID     int       `json:"id"`
	Label  string    `json:"label,omitempty"`
	Bounds core.Rect `json:"bounds"`
}

type routeJSON struct {
	ID       int        `json:"id"`
	From     int        `json:"from"`
	To       int        `json:"to"`
	SelfLoop bool       `json:"selfLoop,omitempty"`
	Nodes    []nodeJSON `json:"nodes"`
	Length   float64    `json:"length"`
}

type nodeJSON struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Mask int     `json:"mask"`
}

// Export converts the routed scene to JSON
func (e *JSONExporter) Export(s *diagram.Scene) ([]byte, error) {
	out := routedScene{
		Liner:  s.Liner().Name(),
		Bounds: s.Bounds(),
	}
	for _, shape := range s.Shapes {
		out.Shapes = append(out.Shapes, shapeJSON{ID: shape.ID, Label: shape.Label, Bounds: shape.Bounds()})
	}
	for _, r := range s.Routes {
		rj := routeJSON{
			ID:       r.ID,
			From:     r.From.ID,
			To:       r.To.ID,
			SelfLoop: r.Conn.IsSelfLoop(),
			Length:   r.Conn.Path.Length(),
		}
		for _, n := range r.Conn.Path.Nodes() {
			rj.Nodes = append(rj.Nodes, nodeJSON{X: n.X[0], Y: n.Y[0], Mask: n.Mask})
		}
		out.Connections = append(out.Connections, rj)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// FileExtension returns the file extension for JSON
func (e *JSONExporter) FileExtension() string {
	return ".json"
}

// FormatName returns the format name
func (e *JSONExporter) FormatName() string {
	return "JSON"
}
