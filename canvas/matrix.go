package canvas

import (
	"errors"
	"fmt"
	"strings"
)

// Common errors
var (
	ErrOutOfBounds = errors.New("position out of bounds")
	ErrInvalidSize = errors.New("invalid canvas size")
)

// MatrixCanvas is a rune matrix with line drawing primitives.
//
// MatrixCanvas is NOT thread-safe. Line characters drawn over existing lines
// are merged into junctions.
type MatrixCanvas struct {
	matrix [][]rune
	width  int
	height int
	merger *CharacterMerger
}

// NewMatrixCanvas creates a new canvas with the specified dimensions.
func NewMatrixCanvas(width, height int) (*MatrixCanvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}

	matrix := make([][]rune, height)
	for y := range matrix {
		matrix[y] = make([]rune, width)
		for x := range matrix[y] {
			matrix[y][x] = ' '
		}
	}

	return &MatrixCanvas{
		matrix: matrix,
		width:  width,
		height: height,
		merger: NewCharacterMerger(),
	}, nil
}

// Size returns the width and height of the canvas.
func (c *MatrixCanvas) Size() (width, height int) {
	return c.width, c.height
}

// Get returns the character at the given position, or ' ' when out of bounds.
func (c *MatrixCanvas) Get(p Cell) rune {
	if !c.inBounds(p.X, p.Y) {
		return ' '
	}
	return c.matrix[p.Y][p.X]
}

// Set merges a character into the given position.
func (c *MatrixCanvas) Set(p Cell, char rune) error {
	if !c.inBounds(p.X, p.Y) {
		return ErrOutOfBounds
	}
	c.matrix[p.Y][p.X] = c.merger.Merge(c.matrix[p.Y][p.X], char)
	return nil
}

// Clear resets the canvas to all spaces.
func (c *MatrixCanvas) Clear() {
	for y := range c.matrix {
		for x := range c.matrix[y] {
			c.matrix[y][x] = ' '
		}
	}
}

// String returns the canvas rows joined by newlines, with trailing spaces
// removed from every row.
func (c *MatrixCanvas) String() string {
	var sb strings.Builder
	sb.Grow(c.height * (c.width + 1))

	for y, row := range c.matrix {
		sb.WriteString(strings.TrimRight(string(row), " "))
		if y < c.height-1 {
			sb.WriteRune('\n')
		}
	}
	return sb.String()
}

// DrawBox draws a rectangle with the specified style.
func (c *MatrixCanvas) DrawBox(x, y, width, height int, style BoxStyle) error {
	if width < 2 || height < 2 {
		return fmt.Errorf("invalid box dimensions %dx%d", width, height)
	}
	if !c.inBounds(x, y) || !c.inBounds(x+width-1, y+height-1) {
		return fmt.Errorf("box exceeds canvas bounds: %w", ErrOutOfBounds)
	}

	c.Set(Cell{x, y}, style.TopLeft)
	c.Set(Cell{x + width - 1, y}, style.TopRight)
	c.Set(Cell{x, y + height - 1}, style.BottomLeft)
	c.Set(Cell{x + width - 1, y + height - 1}, style.BottomRight)

	for i := 1; i < width-1; i++ {
		c.Set(Cell{x + i, y}, style.Horizontal)
		c.Set(Cell{x + i, y + height - 1}, style.Horizontal)
	}
	for i := 1; i < height-1; i++ {
		c.Set(Cell{x, y + i}, style.Vertical)
		c.Set(Cell{x + width - 1, y + i}, style.Vertical)
	}
	return nil
}

// DrawHorizontalLine draws a horizontal line, clipped to the canvas.
func (c *MatrixCanvas) DrawHorizontalLine(x1, y, x2 int, char rune) {
	if y < 0 || y >= c.height {
		return
	}
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := max(x1, 0); x <= min(x2, c.width-1); x++ {
		c.matrix[y][x] = c.merger.Merge(c.matrix[y][x], char)
	}
}

// DrawVerticalLine draws a vertical line, clipped to the canvas.
func (c *MatrixCanvas) DrawVerticalLine(x, y1, y2 int, char rune) {
	if x < 0 || x >= c.width {
		return
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := max(y1, 0); y <= min(y2, c.height-1); y++ {
		c.matrix[y][x] = c.merger.Merge(c.matrix[y][x], char)
	}
}

// DrawLine draws a line between two cells using Bresenham's algorithm.
func (c *MatrixCanvas) DrawLine(p1, p2 Cell, char rune) {
	dx := abs(p2.X - p1.X)
	dy := abs(p2.Y - p1.Y)
	x, y := p1.X, p1.Y

	xInc := 1
	if p1.X > p2.X {
		xInc = -1
	}
	yInc := 1
	if p1.Y > p2.Y {
		yInc = -1
	}

	if dx > dy {
		err := dx / 2
		for x != p2.X {
			c.setClipped(x, y, char)
			err -= dy
			if err < 0 {
				y += yInc
				err += dx
			}
			x += xInc
		}
	} else {
		err := dy / 2
		for y != p2.Y {
			c.setClipped(x, y, char)
			err -= dx
			if err < 0 {
				x += xInc
				err += dy
			}
			y += yInc
		}
	}
	c.setClipped(p2.X, p2.Y, char)
}

// DrawText writes text starting at (x, y), overwriting what is there.
// Characters falling outside the canvas are dropped.
func (c *MatrixCanvas) DrawText(x, y int, text string) error {
	if y < 0 || y >= c.height {
		return ErrOutOfBounds
	}
	for i, r := range []rune(text) {
		c.setClipped(x+i, y, r)
	}
	return nil
}

// DrawPath draws the polyline through cells. Axis-aligned segments get line
// characters and rounded corners; other segments are drawn with
// style.Diagonal. Where the path leaves a box edge a junction is drawn, and
// the last cell gets an arrow head when style.Arrows is set.
func (c *MatrixCanvas) DrawPath(cells []Cell, style PathStyle) error {
	points := dedupe(cells)
	if len(points) < 2 {
		return fmt.Errorf("path must have at least 2 distinct cells")
	}
	startExisting := c.Get(points[0])

	for i := 0; i < len(points)-1; i++ {
		p1, p2 := points[i], points[i+1]
		switch {
		case p1.Y == p2.Y:
			c.DrawHorizontalLine(p1.X, p1.Y, p2.X, style.Horizontal)
		case p1.X == p2.X:
			c.DrawVerticalLine(p1.X, p1.Y, p2.Y, style.Vertical)
		default:
			c.DrawLine(p1, p2, style.Diagonal)
		}
	}

	for i := 1; i < len(points)-1; i++ {
		prev, curr, next := points[i-1], points[i], points[i+1]
		if !aligned(prev, curr) || !aligned(curr, next) {
			continue
		}
		c.setClipped(curr.X, curr.Y, selectCorner(prev, curr, next, style.ASCII))
	}

	start, first := points[0], points[1]
	if aligned(start, first) {
		if j, ok := exitJunction(startExisting, getDirection(start, first), style.ASCII); ok {
			c.setClipped(start.X, start.Y, j)
		}
	}

	if style.Arrows {
		end := points[len(points)-1]
		last := points[len(points)-2]
		c.setClipped(end.X, end.Y, arrowHead(getDirection(last, end), style.ASCII))
	}
	return nil
}

// selectCorner chooses the corner character joining prev-curr and curr-next.
func selectCorner(prev, curr, next Cell, ascii bool) rune {
	fromDir := getDirection(prev, curr)
	toDir := getDirection(curr, next)

	if fromDir == toDir {
		if ascii {
			if fromDir == 'E' || fromDir == 'W' {
				return '-'
			}
			return '|'
		}
		if fromDir == 'E' || fromDir == 'W' {
			return '─'
		}
		return '│'
	}
	if ascii {
		return '+'
	}

	switch {
	case fromDir == 'E' && toDir == 'S', fromDir == 'N' && toDir == 'W':
		return '╮'
	case fromDir == 'E' && toDir == 'N', fromDir == 'S' && toDir == 'W':
		return '╯'
	case fromDir == 'W' && toDir == 'S', fromDir == 'N' && toDir == 'E':
		return '╭'
	case fromDir == 'W' && toDir == 'N', fromDir == 'S' && toDir == 'E':
		return '╰'
	default:
		// Reversal: the path doubles back on itself
		return '┼'
	}
}

// exitJunction returns the junction for a path leaving a box edge in dir.
func exitJunction(existing rune, dir rune, ascii bool) (rune, bool) {
	if ascii {
		if existing == '|' || existing == '-' {
			return '+', true
		}
		return 0, false
	}
	switch {
	case existing == '│' && dir == 'E':
		return '├', true
	case existing == '│' && dir == 'W':
		return '┤', true
	case existing == '─' && dir == 'S':
		return '┬', true
	case existing == '─' && dir == 'N':
		return '┴', true
	}
	return 0, false
}

func arrowHead(dir rune, ascii bool) rune {
	switch dir {
	case 'E':
		if ascii {
			return '>'
		}
		return '▶'
	case 'W':
		if ascii {
			return '<'
		}
		return '◀'
	case 'S':
		if ascii {
			return 'v'
		}
		return '▼'
	default:
		if ascii {
			return '^'
		}
		return '▲'
	}
}

// getDirection returns the compass direction from p1 to p2.
func getDirection(p1, p2 Cell) rune {
	if p2.X > p1.X {
		return 'E'
	} else if p2.X < p1.X {
		return 'W'
	} else if p2.Y > p1.Y {
		return 'S'
	}
	return 'N'
}

func aligned(a, b Cell) bool {
	return a.X == b.X || a.Y == b.Y
}

// dedupe drops consecutive duplicate cells.
func dedupe(cells []Cell) []Cell {
	out := make([]Cell, 0, len(cells))
	for i, p := range cells {
		if i > 0 && p == out[len(out)-1] {
			continue
		}
		out = append(out, p)
	}
	return out
}

func (c *MatrixCanvas) inBounds(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// setClipped overwrites a character with bounds checking (no error).
func (c *MatrixCanvas) setClipped(x, y int, char rune) {
	if c.inBounds(x, y) {
		c.matrix[y][x] = char
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
