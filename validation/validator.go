// Package validation checks routed connections against the rules each liner
// promises: endpoints on the anchors, fixed node counts and straight corners.
package validation

import (
	"fmt"

	"liner/bezier"
	"liner/connections"
	"liner/geometry"
)

// ValidationError represents a rule violation on one connection.
type ValidationError struct {
	Connection int
	Node       int // -1 when the error concerns the whole path
	Message    string
}

func (e ValidationError) Error() string {
	if e.Node < 0 {
		return fmt.Sprintf("connection %d: %s", e.Connection, e.Message)
	}
	return fmt.Sprintf("connection %d node %d: %s", e.Connection, e.Node, e.Message)
}

// PathValidator validates routed connection paths.
type PathValidator struct {
	errors []ValidationError
	// Tolerance is the largest coordinate difference treated as equal
	tolerance float64
	// strictMode also flags zero-length segments
	strictMode bool
}

// NewPathValidator creates a new validator with default settings.
func NewPathValidator() *PathValidator {
	return &PathValidator{tolerance: 1e-9}
}

// SetStrictMode enables or disables strict validation.
func (v *PathValidator) SetStrictMode(strict bool) {
	v.strictMode = strict
}

// SetTolerance sets the coordinate tolerance.
func (v *PathValidator) SetTolerance(eps float64) {
	v.tolerance = eps
}

// Validate checks one connection routed by the named liner. Connections that
// are not routable are skipped.
func (v *PathValidator) Validate(id int, linerName string, c *connections.Connection) []ValidationError {
	v.errors = nil
	if !c.Routable() {
		return nil
	}
	path := c.Path

	if path.Len() < 2 {
		v.addError(id, -1, "path has %d nodes, need at least 2", path.Len())
		return v.errors
	}

	if sp := c.Start.FindStart(c); !path.Start().Equal(sp, v.tolerance) {
		v.addError(id, 0, "start node %v is not on the start anchor %v", path.Start(), sp)
	}
	if ep := c.End.FindEnd(c); !path.End().Equal(ep, v.tolerance) {
		v.addError(id, path.Len()-1, "end node %v is not on the end anchor %v", path.End(), ep)
	}

	for i, n := range path.Nodes() {
		if n.Mask != bezier.C0Mask {
			v.addError(id, i, "node has curve mask %d", n.Mask)
		}
	}

	v.checkNodeCount(id, linerName, c)

	if linerName == "elbow" {
		v.checkOrthogonal(id, path)
	}

	if v.strictMode {
		for i, seg := range path.Segments() {
			if seg.Length() <= v.tolerance {
				v.addError(id, i, "zero-length segment")
			}
		}
	}

	return v.errors
}

// checkNodeCount enforces the node counts each liner produces.
func (v *PathValidator) checkNodeCount(id int, linerName string, c *connections.Connection) {
	n := c.Path.Len()
	loop := c.IsSelfLoop()

	switch linerName {
	case "elbow":
		if loop && n != 5 {
			v.addError(id, -1, "elbow self-loop has %d nodes, want 5", n)
		}
		if !loop && (n < 3 || n > 4) {
			v.addError(id, -1, "elbow connection has %d nodes, want 3 or 4", n)
		}
	case "slanted":
		if loop && n != 5 {
			v.addError(id, -1, "slanted self-loop has %d nodes, want 5", n)
		}
		if !loop && n != 4 {
			v.addError(id, -1, "slanted connection has %d nodes, want 4", n)
		}
	case "straight":
		if n != 2 {
			v.addError(id, -1, "straight connection has %d nodes, want 2", n)
		}
	}
}

// checkOrthogonal flags segments that are neither horizontal nor vertical.
func (v *PathValidator) checkOrthogonal(id int, path *bezier.Path) {
	for i, seg := range path.Segments() {
		if !geometry.IsAxisAligned(seg.From, seg.To, v.tolerance) {
			v.addError(id, i, "segment %v-%v is not axis aligned", seg.From, seg.To)
		}
	}
}

func (v *PathValidator) addError(id, node int, format string, args ...any) {
	v.errors = append(v.errors, ValidationError{
		Connection: id,
		Node:       node,
		Message:    fmt.Sprintf(format, args...),
	})
}
