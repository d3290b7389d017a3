// Package window implements a desktop UI for the search, using ebiten.
//
// Keys: Esc deselects the tool; W, S and E select the wall, start and end tools while the grid is
// being prepared; Enter starts the search (one tick per press, plus the timer); Space resets the
// grid. Clicking or dragging with the left mouse button applies the selected tool.
package window

import (
	"fmt"
	"image/color"
	"time"

	"github.com/gomlx/exceptions"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/janpfeifer/astarGo/internal/app"
	"github.com/janpfeifer/astarGo/internal/grid"
	"github.com/janpfeifer/astarGo/internal/layout"
	"golang.org/x/image/colornames"
	"k8s.io/klog/v2"
)

// Size of the characters of ebitenutil.DebugPrintAt, in pixels.
const (
	charWidth  = 6
	charHeight = 16
)

var (
	colorGreen = color.RGBA{R: 0x22, G: 0xdd, B: 0x22, A: 0xff}
	colorBlue  = color.RGBA{R: 0x44, G: 0x44, B: 0xdd, A: 0xff}
	colorRed   = color.RGBA{R: 0xdd, G: 0x22, B: 0x22, A: 0xff}
)

// keyBindings maps ebiten keys to the App keys.
var keyBindings = []struct {
	key    ebiten.Key
	appKey app.Key
}{
	{ebiten.KeyEscape, app.KeyEscape},
	{ebiten.KeyW, app.KeyW},
	{ebiten.KeyS, app.KeyS},
	{ebiten.KeyE, app.KeyE},
	{ebiten.KeyEnter, app.KeyEnter},
	{ebiten.KeyNumpadEnter, app.KeyEnter},
	{ebiten.KeySpace, app.KeySpace},
}

// Game implements ebiten.Game over an App.
type Game struct {
	app           *app.App
	width, height int

	// layoutChanges delivers the path of the layout file when it changes.
	layoutChanges <-chan string

	// dragging is set while the left button is pressed, and lastCell is the last cell clicked.
	dragging bool
	lastCell grid.Pos
}

// New creates the Game for the App, in a window of the given size.
// If layoutChanges is not nil, the layout file is reloaded every time its path is received.
func New(a *app.App, width, height int, layoutChanges <-chan string) *Game {
	return &Game{
		app:           a,
		width:         width,
		height:        height,
		layoutChanges: layoutChanges,
	}
}

// Run opens the window and blocks until it is closed.
func (g *Game) Run(title string) error {
	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowTitle(title)
	return ebiten.RunGame(g)
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	g.reloadLayout()
	for _, binding := range keyBindings {
		if inpututil.IsKeyJustPressed(binding.key) {
			g.handleError(g.app.Key(binding.appKey))
		}
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.mouse(ebiten.CursorPosition())
	} else {
		g.dragging = false
	}
	_, err := g.app.Update(time.Now())
	g.handleError(err)
	return nil
}

// mouse applies the tool at the cursor position, once per cell while dragging.
func (g *Game) mouse(x, y int) {
	px, py := float64(x), float64(y)
	gr := g.app.Grid()
	if !gr.ContainsPixel(px, py) {
		return
	}
	cell := gr.CellAt(px, py).Pos()
	if g.dragging && cell == g.lastCell {
		return
	}
	g.dragging = true
	g.lastCell = cell
	g.app.Click(px, py)
}

func (g *Game) reloadLayout() {
	if g.layoutChanges == nil {
		return
	}
	select {
	case path, ok := <-g.layoutChanges:
		if !ok {
			g.layoutChanges = nil
			return
		}
		l, err := layout.Load(path)
		if err == nil {
			err = g.app.SetLayout(l)
		}
		if err != nil {
			klog.Errorf("Failed to reload layout: %+v", err)
			return
		}
		klog.Infof("Layout %q reloaded", path)
	default:
	}
}

// handleError logs errors of the search: the App already reset the grid.
func (g *Game) handleError(err error) {
	if err != nil {
		klog.Errorf("Search failed: %v", err)
	}
}

// Layout implements ebiten.Game.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Black)
	gr := g.app.Grid()
	size := float32(gr.CellSize())
	for node := range gr.Nodes() {
		px, py := gr.CellOrigin(node.X(), node.Y())
		drawNode(screen, node, float32(px), float32(py), size)
	}
	status := fmt.Sprintf("%s  [W]all [S]tart [E]nd [Esc] no tool, [Enter] search, [Space] reset", g.app.Status())
	ebitenutil.DebugPrintAt(screen, status, charWidth, g.height-charHeight-2)
}

// nodeColor returns the fill color of the node, or nil if it is not filled.
func nodeColor(kind grid.Kind) color.Color {
	switch kind {
	case grid.KindEmpty:
		return nil
	case grid.KindWall:
		return colornames.White
	case grid.KindStart, grid.KindEnd, grid.KindSelected:
		return colorGreen
	case grid.KindPotential:
		return colorBlue
	case grid.KindChecked:
		return colorRed
	default:
		exceptions.Panicf("unknown node kind %s", kind)
	}
	return nil
}

// label is a text drawn in a cell, relative to its top-left corner.
type label struct {
	text string
	x, y int
}

// nodeLabels returns the texts drawn over the node: the name of the start and end nodes, and the
// costs of the search nodes, with g on the top-left, h on the top-right and f in the center.
func nodeLabels(node *grid.Node, size int) []label {
	centered := func(text string) label {
		return label{text, (size - len(text)*charWidth) / 2, (size - charHeight) / 2}
	}
	switch node.Kind() {
	case grid.KindStart:
		return []label{centered("START")}
	case grid.KindEnd:
		return []label{centered("END")}
	case grid.KindPotential, grid.KindChecked, grid.KindSelected:
		g, h := fmt.Sprint(node.GCost()), fmt.Sprint(node.HCost())
		return []label{
			{g, 2, 0},
			{h, size - len(h)*charWidth - 2, 0},
			centered(fmt.Sprint(node.FCost())),
		}
	default:
		return nil
	}
}

func drawNode(screen *ebiten.Image, node *grid.Node, x, y, size float32) {
	if fill := nodeColor(node.Kind()); fill != nil {
		vector.FillRect(screen, x, y, size, size, fill, false)
	}
	vector.StrokeRect(screen, x, y, size, size, 1, colornames.White, false)
	for _, l := range nodeLabels(node, int(size)) {
		ebitenutil.DebugPrintAt(screen, l.text, int(x)+l.x, int(y)+l.y)
	}
}
