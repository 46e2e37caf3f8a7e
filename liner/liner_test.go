package liner

import (
	"bytes"
	"errors"
	"log/slog"
	"reflect"
	"strings"
	"testing"

	"liner/bezier"
	"liner/connections"
	"liner/core"
)

// fixed returns a connection between fixed anchors on a and b.
func fixed(a *connections.Box, ax, ay float64, b *connections.Box, bx, by float64) *connections.Connection {
	return connections.NewConnection(
		connections.NewFixedConnector(a, ax, ay),
		connections.NewFixedConnector(b, bx, by),
	)
}

// chop returns a connection between chop-box connectors on a and b.
func chop(a, b *connections.Box) *connections.Connection {
	return connections.NewConnection(
		connections.NewChopBoxConnector(a),
		connections.NewChopBoxConnector(b),
	)
}

func pts(c *connections.Connection) []core.Point {
	return c.Path.Points()
}

func TestNew(t *testing.T) {
	for _, name := range Names() {
		l, err := New(name, 0)
		if err != nil {
			t.Fatalf("New(%q) failed: %v", name, err)
		}
		if l.Name() != name {
			t.Errorf("New(%q).Name() = %q", name, l.Name())
		}
	}

	if _, err := New("bezier", 10); !errors.Is(err, ErrUnknownLiner) {
		t.Errorf("Expected ErrUnknownLiner, got %v", err)
	}
}

func TestNamesSorted(t *testing.T) {
	want := []string{"elbow", "slanted", "straight"}
	if got := Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}

func TestDefaultSize(t *testing.T) {
	if NewElbow(0).ShoulderSize != DefaultSize {
		t.Error("Elbow should fall back to DefaultSize")
	}
	if NewSlanted(-3).SlantSize != DefaultSize {
		t.Error("Slanted should fall back to DefaultSize")
	}
	if NewElbow(7).ShoulderSize != 7 {
		t.Error("Elbow should keep an explicit size")
	}
}

func TestLineoutMissingPiecesIsNoop(t *testing.T) {
	a := connections.NewBox(0, 0, 10, 10)

	for _, name := range Names() {
		l, _ := New(name, 0)
		t.Run(name, func(t *testing.T) {
			c := connections.NewConnection(connections.NewChopBoxConnector(a), nil)
			before := c.Path.Nodes()
			l.Lineout(c)
			if !reflect.DeepEqual(before, c.Path.Nodes()) {
				t.Errorf("Path changed for a connection without an end")
			}

			// No path at all must not panic
			l.Lineout(&connections.Connection{
				Start: connections.NewChopBoxConnector(a),
				End:   connections.NewChopBoxConnector(a),
			})
			l.Lineout(nil)
		})
	}
}

func TestElbowDifferentFigures(t *testing.T) {
	a := connections.NewBox(0, 0, 20, 20)
	b := connections.NewBox(60, 40, 20, 20)

	tests := []struct {
		name   string
		conn   *connections.Connection
		branch string
		want   []core.Point
	}{
		{
			name: "both vertical bends at mid y",
			conn: fixed(a, 0.5, 1, b, 0.5, 0),
			want: []core.Point{{X: 10, Y: 20}, {X: 10, Y: 30}, {X: 70, Y: 30}, {X: 70, Y: 40}},
		},
		{
			name: "both horizontal bends at mid x",
			conn: fixed(a, 1, 0.5, b, 0, 0.5),
			want: []core.Point{{X: 20, Y: 10}, {X: 40, Y: 10}, {X: 40, Y: 50}, {X: 60, Y: 50}},
		},
		{
			name: "vertical start turns once at end y",
			conn: fixed(a, 0.5, 1, b, 0, 0.5),
			want: []core.Point{{X: 10, Y: 20}, {X: 10, Y: 50}, {X: 60, Y: 50}},
		},
		{
			name: "horizontal start turns once at end x",
			conn: fixed(a, 1, 0.5, b, 0.5, 0),
			want: []core.Point{{X: 20, Y: 10}, {X: 70, Y: 10}, {X: 70, Y: 40}},
		},
	}

	l := NewElbow(DefaultSize)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l.Lineout(tt.conn)
			if got := pts(tt.conn); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Path = %v, want %v", got, tt.want)
			}
			assertOrthogonal(t, tt.conn.Path)
		})
	}
}

// TestElbowHorizontalNeighbours is the two-boxes-in-a-row layout: both anchors
// classify horizontally, so the horizontal-midpoint branch fires and the path
// has four nodes with a zero-length middle segment.
func TestLineoutSeedsEmptyPath(t *testing.T) {
	a := connections.NewBox(0, 0, 20, 20)
	b := connections.NewBox(60, 0, 20, 20)

	for _, name := range Names() {
		for _, loop := range []bool{false, true} {
			end := b
			if loop {
				end = a
			}
			c := &connections.Connection{
				Start: connections.NewChopBoxConnector(a),
				End:   connections.NewChopBoxConnector(end),
				Path:  &bezier.Path{},
			}
			l, _ := New(name, DefaultSize)
			l.Lineout(c)

			if c.Path.Len() < 2 {
				t.Errorf("%s (loop %v): expected a routed path, got %d nodes", name, loop, c.Path.Len())
				continue
			}
			if sp := c.Start.FindStart(c); c.Path.Start() != sp {
				t.Errorf("%s (loop %v): start %v, want %v", name, loop, c.Path.Start(), sp)
			}
		}
	}
}

func TestElbowHorizontalNeighbours(t *testing.T) {
	a := connections.NewBox(0, 0, 10, 10)
	b := connections.NewBox(50, 0, 10, 10)
	c := chop(a, b)

	NewElbow(DefaultSize).Lineout(c)

	want := []core.Point{{X: 10, Y: 5}, {X: 30, Y: 5}, {X: 30, Y: 5}, {X: 50, Y: 5}}
	if got := pts(c); !reflect.DeepEqual(got, want) {
		t.Errorf("Path = %v, want %v", got, want)
	}
}

func TestElbowDiagonalNeighbours(t *testing.T) {
	a := connections.NewBox(0, 0, 10, 10)
	b := connections.NewBox(50, 50, 10, 10)
	c := chop(a, b)

	NewElbow(DefaultSize).Lineout(c)

	// Both anchors sit on corners, so both outcodes carry a vertical bit
	want := []core.Point{{X: 10, Y: 10}, {X: 10, Y: 30}, {X: 50, Y: 30}, {X: 50, Y: 50}}
	if got := pts(c); !reflect.DeepEqual(got, want) {
		t.Errorf("Path = %v, want %v", got, want)
	}
	assertOrthogonal(t, c.Path)
}

// TestElbowCenterAnchorsUseBoxDirection pins anchors to the figure centers,
// inside the inset boxes, so each side comes from where the other box lies.
func TestElbowCenterAnchorsUseBoxDirection(t *testing.T) {
	a := connections.NewBox(0, 0, 20, 20)

	tests := []struct {
		name     string
		b        *connections.Box
		branch   string
		outcodes string
		want     []core.Point
	}{
		{
			name:     "row",
			b:        connections.NewBox(60, 0, 20, 20),
			branch:   "horizontal-midpoint",
			outcodes: "soutcode=right eoutcode=left",
			want:     []core.Point{{X: 10, Y: 10}, {X: 40, Y: 10}, {X: 40, Y: 10}, {X: 70, Y: 10}},
		},
		{
			name:     "column",
			b:        connections.NewBox(0, 60, 20, 20),
			branch:   "vertical-midpoint",
			outcodes: "soutcode=bottom eoutcode=top",
			want:     []core.Point{{X: 10, Y: 10}, {X: 10, Y: 40}, {X: 10, Y: 40}, {X: 10, Y: 70}},
		},
		{
			name:     "diagonal",
			b:        connections.NewBox(60, 40, 20, 20),
			branch:   "vertical-midpoint",
			outcodes: "soutcode=bottom|right eoutcode=top|left",
			want:     []core.Point{{X: 10, Y: 10}, {X: 10, Y: 30}, {X: 70, Y: 30}, {X: 70, Y: 50}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
			defer SetLogger(nil)

			c := fixed(a, 0.5, 0.5, tt.b, 0.5, 0.5)
			NewElbow(DefaultSize).Lineout(c)

			if got := pts(c); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Path = %v, want %v", got, tt.want)
			}
			out := buf.String()
			if !strings.Contains(out, "branch="+tt.branch) {
				t.Errorf("Expected branch %s, got %q", tt.branch, out)
			}
			if !strings.Contains(out, tt.outcodes) {
				t.Errorf("Expected %q in log, got %q", tt.outcodes, out)
			}
		})
	}
}

func TestElbowDifferentFiguresReplacesOldPath(t *testing.T) {
	a := connections.NewBox(0, 0, 20, 20)
	b := connections.NewBox(60, 40, 20, 20)
	c := fixed(a, 0.5, 1, b, 0, 0.5)
	c.Path.EnsureSize(9)

	NewElbow(DefaultSize).Lineout(c)
	if c.Path.Len() != 3 {
		t.Errorf("Expected 3 nodes, got %d", c.Path.Len())
	}
}

func TestElbowSelfLoop(t *testing.T) {
	a := connections.NewBox(0, 0, 20, 20)
	c := chop(a, a)
	c.Path.EnsureSize(8)

	NewElbow(DefaultSize).Lineout(c)

	// Anchors on the edge resolve to no side, so the default turn applies:
	// leave to the right, come back from the top.
	want := []core.Point{
		{X: 20, Y: 10},
		{X: 40, Y: 10},
		{X: 40, Y: -20},
		{X: 10, Y: -20},
		{X: 10, Y: 0},
	}
	if got := pts(c); !reflect.DeepEqual(got, want) {
		t.Errorf("Path = %v, want %v", got, want)
	}
	assertOrthogonal(t, c.Path)
}

func TestElbowSelfLoopTurnTable(t *testing.T) {
	tests := []struct {
		name      string
		sx, sy    float64
		ex, ey    float64
		wantNodes []core.Point
	}{
		{
			name: "top start returns from the left",
			sx:   0.5, sy: -0.5, ex: 0, ey: 0.5,
			wantNodes: []core.Point{{X: 10, Y: -10}, {X: 10, Y: -30}, {X: -20, Y: -30}, {X: -20, Y: 10}, {X: 0, Y: 10}},
		},
		{
			name: "right start returns from the top",
			sx:   1.5, sy: 0.5, ex: 0.5, ey: 0,
			wantNodes: []core.Point{{X: 30, Y: 10}, {X: 50, Y: 10}, {X: 50, Y: -20}, {X: 10, Y: -20}, {X: 10, Y: 0}},
		},
		{
			name: "bottom start returns from the right",
			sx:   0.5, sy: 1.5, ex: 1, ey: 0.5,
			wantNodes: []core.Point{{X: 10, Y: 30}, {X: 10, Y: 50}, {X: 40, Y: 50}, {X: 40, Y: 10}, {X: 20, Y: 10}},
		},
		{
			name: "left start returns from the bottom",
			sx:   -0.5, sy: 0.5, ex: 0.5, ey: 1,
			wantNodes: []core.Point{{X: -10, Y: 10}, {X: -30, Y: 10}, {X: -30, Y: 40}, {X: 10, Y: 40}, {X: 10, Y: 20}},
		},
	}

	l := NewElbow(DefaultSize)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := connections.NewBox(0, 0, 20, 20)
			c := fixed(a, tt.sx, tt.sy, a, tt.ex, tt.ey)
			l.Lineout(c)
			if got := pts(c); !reflect.DeepEqual(got, tt.wantNodes) {
				t.Errorf("Path = %v, want %v", got, tt.wantNodes)
			}
			assertOrthogonal(t, c.Path)
		})
	}
}

// TestElbowSelfLoopIgnoresComputedEndSide pins the turn table: the end side is
// derived from the start side even when the end anchor clearly lies elsewhere.
func TestElbowSelfLoopIgnoresComputedEndSide(t *testing.T) {
	a := connections.NewBox(0, 0, 20, 20)
	// Start right of the box, end left of the box (computed end side is LEFT)
	c := fixed(a, 1.5, 0.5, a, -0.5, 0.5)

	NewElbow(DefaultSize).Lineout(c)

	// The end shoulder goes up (TOP), not left
	if got := c.Path.Node(3).Point(); got != (core.Point{X: -10, Y: -10}) {
		t.Errorf("End shoulder = %v, want (-10,-10)", got)
	}
}

func TestSlantedDifferentFigures(t *testing.T) {
	tests := []struct {
		name string
		a, b *connections.Box
		want []core.Point
	}{
		{
			name: "side by side",
			a:    connections.NewBox(0, 0, 10, 10),
			b:    connections.NewBox(50, 0, 10, 10),
			want: []core.Point{{X: 10, Y: 5}, {X: 30, Y: 5}, {X: 30, Y: 5}, {X: 50, Y: 5}},
		},
		{
			name: "diagonal",
			a:    connections.NewBox(0, 0, 10, 10),
			b:    connections.NewBox(50, 50, 10, 10),
			want: []core.Point{{X: 10, Y: 10}, {X: 30, Y: 10}, {X: 30, Y: 50}, {X: 50, Y: 50}},
		},
		{
			name: "stacked",
			a:    connections.NewBox(0, 0, 10, 10),
			b:    connections.NewBox(0, 100, 10, 10),
			want: []core.Point{{X: 5, Y: 10}, {X: 5, Y: 30}, {X: 5, Y: 80}, {X: 5, Y: 100}},
		},
	}

	l := NewSlanted(DefaultSize)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := chop(tt.a, tt.b)
			c.Path.EnsureSize(6)
			l.Lineout(c)
			if got := pts(c); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Path = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSlantedSelfLoopTurnTable(t *testing.T) {
	tests := []struct {
		name      string
		sx, sy    float64
		ex, ey    float64
		wantNodes []core.Point
	}{
		{
			name: "edge anchors default to right then top",
			sx:   1, sy: 0.5, ex: 0.5, ey: 0,
			wantNodes: []core.Point{{X: 20, Y: 10}, {X: 40, Y: 10}, {X: 40, Y: -20}, {X: 10, Y: -20}, {X: 10, Y: 0}},
		},
		{
			name: "top start leaves right and returns from the top",
			sx:   0.5, sy: -0.5, ex: 0, ey: 0.5,
			wantNodes: []core.Point{{X: 10, Y: -10}, {X: 30, Y: -10}, {X: 30, Y: -10}, {X: 0, Y: -10}, {X: 0, Y: 10}},
		},
		{
			name: "right start leaves up and returns from the left",
			sx:   1.5, sy: 0.5, ex: 0.5, ey: 0,
			wantNodes: []core.Point{{X: 30, Y: 10}, {X: 30, Y: -10}, {X: -10, Y: -10}, {X: -10, Y: 0}, {X: 10, Y: 0}},
		},
		{
			name: "left start leaves down and returns from the right",
			sx:   -0.5, sy: 0.5, ex: 0.5, ey: 1,
			wantNodes: []core.Point{{X: -10, Y: 10}, {X: -10, Y: 30}, {X: 30, Y: 30}, {X: 30, Y: 20}, {X: 10, Y: 20}},
		},
		{
			name: "bottom start leaves right and returns from the top",
			sx:   0.5, sy: 1.5, ex: 1, ey: 0.5,
			wantNodes: []core.Point{{X: 10, Y: 30}, {X: 30, Y: 30}, {X: 30, Y: -10}, {X: 20, Y: -10}, {X: 20, Y: 10}},
		},
	}

	l := NewSlanted(DefaultSize)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := connections.NewBox(0, 0, 20, 20)
			c := fixed(a, tt.sx, tt.sy, a, tt.ex, tt.ey)
			l.Lineout(c)
			if got := pts(c); !reflect.DeepEqual(got, tt.wantNodes) {
				t.Errorf("Path = %v, want %v", got, tt.wantNodes)
			}
		})
	}
}

func TestStraight(t *testing.T) {
	a := connections.NewBox(0, 0, 10, 10)
	b := connections.NewBox(50, 0, 10, 10)
	c := chop(a, b)
	c.Path.EnsureSize(5)

	NewStraight().Lineout(c)

	want := []core.Point{{X: 10, Y: 5}, {X: 50, Y: 5}}
	if got := pts(c); !reflect.DeepEqual(got, want) {
		t.Errorf("Path = %v, want %v", got, want)
	}
}

func TestNodeCounts(t *testing.T) {
	a := connections.NewBox(0, 0, 20, 20)
	b := connections.NewBox(60, 40, 20, 20)

	layouts := []struct {
		name string
		conn func() *connections.Connection
		loop bool
	}{
		{"loop", func() *connections.Connection { return chop(a, a) }, true},
		{"pair", func() *connections.Connection { return chop(a, b) }, false},
		{"pair vertical", func() *connections.Connection { return fixed(a, 0.5, 1, b, 0, 0.5) }, false},
	}

	for _, lay := range layouts {
		for _, name := range []string{"elbow", "slanted"} {
			t.Run(lay.name+"/"+name, func(t *testing.T) {
				l, _ := New(name, 0)
				c := lay.conn()
				l.Lineout(c)
				n := c.Path.Len()
				switch {
				case lay.loop && n != 5:
					t.Errorf("Self-loop should have 5 nodes, got %d", n)
				case !lay.loop && name == "slanted" && n != 4:
					t.Errorf("Slanted pair should have 4 nodes, got %d", n)
				case !lay.loop && name == "elbow" && (n < 3 || n > 4):
					t.Errorf("Elbow pair should have 3 or 4 nodes, got %d", n)
				}
			})
		}
	}
}

func TestLineoutIsIdempotentAndKeepsEndpoints(t *testing.T) {
	a := connections.NewBox(0, 0, 20, 20)
	b := connections.NewBox(60, 40, 20, 20)

	conns := map[string]func() *connections.Connection{
		"loop":  func() *connections.Connection { return chop(a, a) },
		"pair":  func() *connections.Connection { return chop(a, b) },
		"fixed": func() *connections.Connection { return fixed(a, 0.5, 1, b, 0, 0.5) },
	}

	for _, name := range Names() {
		for cname, mk := range conns {
			t.Run(name+"/"+cname, func(t *testing.T) {
				l, _ := New(name, 0)
				c := mk()

				l.Lineout(c)
				first := c.Path.Nodes()
				l.Lineout(c)
				second := c.Path.Nodes()

				if !reflect.DeepEqual(first, second) {
					t.Errorf("Second lineout changed the path:\n%v\n%v", first, second)
				}
				if got, want := c.Path.Start(), c.Start.FindStart(c); got != want {
					t.Errorf("Start node %v, anchor %v", got, want)
				}
				if got, want := c.Path.End(), c.End.FindEnd(c); got != want {
					t.Errorf("End node %v, anchor %v", got, want)
				}
				for i, n := range second {
					if n.Mask != bezier.C0Mask {
						t.Errorf("Node %d is not a straight corner", i)
					}
				}
			})
		}
	}
}

func TestLineoutFollowsMovedFigure(t *testing.T) {
	a := connections.NewBox(0, 0, 20, 20)
	b := connections.NewBox(60, 40, 20, 20)
	c := chop(a, b)
	l := NewElbow(DefaultSize)

	l.Lineout(c)
	b.Rect.X, b.Rect.Y = 200, 0
	l.Lineout(c)

	if got := c.Path.End(); got != (core.Point{X: 200, Y: 10}) {
		t.Errorf("End did not follow the figure: %v", got)
	}
	assertOrthogonal(t, c.Path)
}

func TestLoggerRecordsBranch(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	a := connections.NewBox(0, 0, 10, 10)
	b := connections.NewBox(50, 0, 10, 10)
	NewElbow(DefaultSize).Lineout(chop(a, b))

	out := buf.String()
	if !strings.Contains(out, "branch=horizontal-midpoint") {
		t.Errorf("Expected branch in log output, got %q", out)
	}
	if !strings.Contains(out, "soutcode=right") {
		t.Errorf("Expected start outcode in log output, got %q", out)
	}
}

func assertOrthogonal(t *testing.T, p *bezier.Path) {
	t.Helper()
	for i, seg := range p.Segments() {
		if seg.From.X != seg.To.X && seg.From.Y != seg.To.Y {
			t.Errorf("Segment %d %v-%v is not axis aligned", i, seg.From, seg.To)
		}
	}
}
