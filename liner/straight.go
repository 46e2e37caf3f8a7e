package liner

import "liner/connections"

// Straight joins the two anchors with a single segment.
type Straight struct{}

// NewStraight creates a straight liner.
func NewStraight() *Straight { return &Straight{} }

// Name returns "straight".
func (l *Straight) Name() string { return "straight" }

// Lineout replaces the path with the two anchors.
func (l *Straight) Lineout(c *connections.Connection) {
	if !c.Routable() {
		return
	}
	c.Path.Reset(c.Start.FindStart(c), c.End.FindEnd(c))
	c.Path.Finalize()
}
