// Package terminal runs an interactive preview of a routed scene. Shapes can
// be moved with the arrow keys; every move reroutes the connections touching
// the moved shape.
package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"liner/canvas"
	"liner/diagram"
	"liner/liner"
)

// Settings configures the preview.
type Settings struct {
	Scale float64 // drawing units per cell
	Step  float64 // drawing units moved per key press
	Size  float64 // shoulder/slant size for liners switched to
}

// DefaultSettings returns the settings used by the CLI.
func DefaultSettings() Settings {
	return Settings{Scale: 5, Step: 5, Size: liner.DefaultSize}
}

var (
	styleDefault  = tcell.StyleDefault
	styleSelected = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleStatus   = tcell.StyleDefault.Reverse(true)
)

// Preview draws a scene on a tcell screen and reacts to key events.
type Preview struct {
	screen   tcell.Screen
	scene    *diagram.Scene
	settings Settings
	viewport canvas.Viewport
	selected int
	liners   []string
	message  string
}

// NewPreview creates a preview of scene on screen. The viewport is fixed at
// creation so moved shapes visibly move.
func NewPreview(screen tcell.Screen, scene *diagram.Scene, settings Settings) *Preview {
	return &Preview{
		screen:   screen,
		scene:    scene,
		settings: settings,
		viewport: canvas.Frame(scene.Bounds(), settings.Scale, 2),
		liners:   liner.Names(),
	}
}

// Selected returns the currently selected shape.
func (p *Preview) Selected() *diagram.Shape {
	return p.scene.Shapes[p.selected]
}

// Run initialises the terminal, loops until the user quits and restores the
// terminal on return.
func Run(scene *diagram.Scene, settings Settings) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialise screen: %w", err)
	}
	defer screen.Fini()

	return NewPreview(screen, scene, settings).Loop()
}

// Loop processes events until the user quits or the screen is finalised.
func (p *Preview) Loop() error {
	p.Draw()
	for {
		ev := p.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if p.HandleEvent(ev) {
			return nil
		}
		p.Draw()
	}
}

// HandleEvent applies one event and reports whether the preview should quit.
func (p *Preview) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		p.screen.Sync()
	case *tcell.EventKey:
		return p.handleKey(ev)
	}
	return false
}

func (p *Preview) handleKey(ev *tcell.EventKey) bool {
	step := p.settings.Step
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		p.move(0, -step)
	case tcell.KeyDown:
		p.move(0, step)
	case tcell.KeyLeft:
		p.move(-step, 0)
	case tcell.KeyRight:
		p.move(step, 0)
	case tcell.KeyTab:
		p.selected = (p.selected + 1) % len(p.scene.Shapes)
	case tcell.KeyBacktab:
		p.selected = (p.selected + len(p.scene.Shapes) - 1) % len(p.scene.Shapes)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true
		case 'l':
			p.nextLiner()
		}
	}
	return false
}

func (p *Preview) move(dx, dy float64) {
	if err := p.scene.MoveShape(p.Selected().ID, dx, dy); err != nil {
		p.message = err.Error()
		return
	}
	liner.Logger().Debug("shape moved", "id", p.Selected().ID, "dx", dx, "dy", dy)
}

// nextLiner switches the scene to the next registered liner.
func (p *Preview) nextLiner() {
	current := p.scene.Liner().Name()
	next := p.liners[0]
	for i, name := range p.liners {
		if name == current {
			next = p.liners[(i+1)%len(p.liners)]
			break
		}
	}
	l, err := liner.New(next, p.settings.Size)
	if err != nil {
		p.message = err.Error()
		return
	}
	p.scene.SetLiner(l)
}

// Draw renders the scene and the status line.
func (p *Preview) Draw() {
	p.screen.Clear()
	w, h := p.screen.Size()
	if w <= 0 || h <= 1 {
		p.screen.Show()
		return
	}

	c, err := canvas.NewMatrixCanvas(w, h-1)
	if err != nil {
		p.screen.Show()
		return
	}
	canvas.DrawScene(c, p.viewport, p.scene, canvas.DefaultSceneStyle)

	sx, sy, sw, sh := canvas.ShapeCells(p.viewport, p.Selected())
	for y := 0; y < h-1; y++ {
		for x := 0; x < w; x++ {
			style := styleDefault
			onSelected := x >= sx && x < sx+sw && y >= sy && y < sy+sh &&
				(x == sx || x == sx+sw-1 || y == sy || y == sy+sh-1)
			if onSelected {
				style = styleSelected
			}
			p.screen.SetContent(x, y, c.Get(canvas.Cell{X: x, Y: y}), nil, style)
		}
	}

	p.drawStatus(w, h-1)
	p.screen.Show()
}

func (p *Preview) drawStatus(w, y int) {
	status := fmt.Sprintf(" shape %d %q  liner: %s  arrows move  tab select  l liner  q quit ",
		p.Selected().ID, p.Selected().Label, p.scene.Liner().Name())
	if p.message != "" {
		status = " " + p.message + " "
	}
	runes := []rune(status)
	for x := 0; x < w; x++ {
		r := ' '
		if x < len(runes) {
			r = runes[x]
		}
		p.screen.SetContent(x, y, r, nil, styleStatus)
	}
}
