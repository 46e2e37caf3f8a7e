package export

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// DefaultStroke is the colour of routed paths when none is configured
const DefaultStroke = "#1f6feb"

// ParseColor parses a "#rrggbb" or "#rgb" hex colour. An empty string
// selects DefaultStroke.
func ParseColor(s string) (colorful.Color, error) {
	if s == "" {
		s = DefaultStroke
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	return c, nil
}
