// Package canvas provides a character grid for drawing shapes and routed paths.
package canvas

// Cell is a position on the character grid. Origin (0,0) is top-left,
// X increases rightward and Y downward.
type Cell struct {
	X, Y int
}

// BoxStyle defines the characters used to draw a box.
type BoxStyle struct {
	TopLeft, TopRight, BottomLeft, BottomRight rune
	Horizontal, Vertical                       rune
}

// DefaultBoxStyle draws boxes with rounded corners.
var DefaultBoxStyle = BoxStyle{
	TopLeft:     '╭',
	TopRight:    '╮',
	BottomLeft:  '╰',
	BottomRight: '╯',
	Horizontal:  '─',
	Vertical:    '│',
}

// ASCIIBoxStyle draws boxes using plain ASCII.
var ASCIIBoxStyle = BoxStyle{
	TopLeft:     '+',
	TopRight:    '+',
	BottomLeft:  '+',
	BottomRight: '+',
	Horizontal:  '-',
	Vertical:    '|',
}

// PathStyle defines the characters used to draw a routed path.
type PathStyle struct {
	Horizontal rune
	Vertical   rune
	Diagonal   rune
	Arrows     bool
	ASCII      bool
}

// DefaultPathStyle draws paths with box-drawing lines and an arrow head.
var DefaultPathStyle = PathStyle{
	Horizontal: '─',
	Vertical:   '│',
	Diagonal:   '·',
	Arrows:     true,
}

// ASCIIPathStyle draws paths using plain ASCII.
var ASCIIPathStyle = PathStyle{
	Horizontal: '-',
	Vertical:   '|',
	Diagonal:   '*',
	Arrows:     true,
	ASCII:      true,
}
