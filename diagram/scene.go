package diagram

import (
	"liner/connections"
	"liner/core"
	"liner/liner"
)

// Route is a document connection together with its live routed path.
type Route struct {
	ID   int
	From *Shape
	To   *Shape
	Conn *connections.Connection
}

// Scene is a built document: shapes with connectors attached and a liner that
// keeps every path up to date.
//
// Scene is not safe for concurrent use.
type Scene struct {
	Doc    *Document
	Shapes []*Shape
	Routes []*Route

	liner liner.Liner
	byID  map[int]*Shape
}

// Build validates d and creates a scene routed with l. The scene's shapes
// point into d, so moving a shape updates the document.
func Build(d *Document, l liner.Liner) (*Scene, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	s := &Scene{
		Doc:   d,
		liner: l,
		byID:  make(map[int]*Shape, len(d.Shapes)),
	}
	for i := range d.Shapes {
		shape := &d.Shapes[i]
		s.Shapes = append(s.Shapes, shape)
		s.byID[shape.ID] = shape
	}

	nextID := 1
	for _, c := range d.Connections {
		nextID = max(nextID, c.ID+1)
	}
	for _, c := range d.Connections {
		from := s.byID[c.From]
		to := s.byID[c.To]
		id := c.ID
		if id == 0 {
			id = nextID
			nextID++
		}
		s.Routes = append(s.Routes, &Route{
			ID:   id,
			From: from,
			To:   to,
			Conn: connections.NewConnection(connector(from, c.FromAnchor), connector(to, c.ToAnchor)),
		})
	}

	s.RouteAll()
	return s, nil
}

func connector(s *Shape, a *Anchor) connections.Connector {
	if a != nil {
		return connections.NewFixedConnector(s, a.X, a.Y)
	}
	return connections.NewChopBoxConnector(s)
}

// Liner returns the liner in use.
func (s *Scene) Liner() liner.Liner {
	return s.liner
}

// SetLiner switches the liner and reroutes every connection.
func (s *Scene) SetLiner(l liner.Liner) {
	s.liner = l
	s.Doc.Liner = l.Name()
	s.RouteAll()
}

// Shape returns the shape with the given id.
func (s *Scene) Shape(id int) (*Shape, error) {
	shape, ok := s.byID[id]
	if !ok {
		return nil, ErrUnknownShape
	}
	return shape, nil
}

// RouteAll reroutes every connection.
func (s *Scene) RouteAll() {
	for _, r := range s.Routes {
		s.liner.Lineout(r.Conn)
	}
}

// MoveShape translates a shape and reroutes the connections touching it.
func (s *Scene) MoveShape(id int, dx, dy float64) error {
	shape, err := s.Shape(id)
	if err != nil {
		return err
	}
	shape.X += dx
	shape.Y += dy

	for _, r := range s.Routes {
		if r.From == shape || r.To == shape {
			s.liner.Lineout(r.Conn)
		}
	}
	return nil
}

// Bounds returns the union of every shape and routed path.
func (s *Scene) Bounds() core.Rect {
	var b core.Rect
	for i, shape := range s.Shapes {
		if i == 0 {
			b = shape.Bounds()
			continue
		}
		b = b.Union(shape.Bounds())
	}
	for _, r := range s.Routes {
		b = b.Union(r.Conn.Path.Bounds())
	}
	return b
}
