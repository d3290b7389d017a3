// Package cli implements a command-line UI for the search.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gomlx/exceptions"
	"github.com/janpfeifer/astarGo/internal/app"
	"github.com/janpfeifer/astarGo/internal/grid"
	"golang.org/x/term"
)

const (
	// CharsPerCell when only the kind of the node is displayed.
	CharsPerCell = 3

	// CharsPerCellWithCosts when the f-cost of the search nodes is displayed.
	CharsPerCellWithCosts = 5
)

var ansiFilter = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// displayWidth of s removes its color/control sequences and returns the length of what is left.
func displayWidth(s string) int {
	return len(ansiFilter.ReplaceAllString(s, ""))
}

func centerString(s string, fit int) string {
	if len(s) >= fit {
		return s
	}
	marginLeft := (fit - len(s)) / 2
	marginRight := fit - len(s) - marginLeft
	return strings.Repeat(" ", marginLeft) + s + strings.Repeat(" ", marginRight)
}

// UI renders grids to a terminal and reads commands from the user.
type UI struct {
	color, clearScreen, showCosts bool
	reader                        *bufio.Reader
	out                           io.Writer

	// terminalWidth is queried from stdout if 0.
	terminalWidth int
}

// New creates a UI reading from stdin and writing to stdout.
// If showCosts is set, search nodes display their f-cost.
func New(color, clearScreen, showCosts bool) *UI {
	return NewWithIO(os.Stdin, os.Stdout, color, clearScreen, showCosts)
}

// NewWithIO creates a UI over the given input and output. Used for testing.
func NewWithIO(in io.Reader, out io.Writer, color, clearScreen, showCosts bool) *UI {
	ui := &UI{
		color:       color,
		clearScreen: clearScreen,
		showCosts:   showCosts,
		reader:      bufio.NewReader(in),
		out:         out,
	}
	if out != os.Stdout {
		ui.terminalWidth = 80
	}
	return ui
}

func (ui *UI) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(ui.out, format, args...)
}

func (ui *UI) println(args ...any) {
	_, _ = fmt.Fprintln(ui.out, args...)
}

func (ui *UI) width() int {
	if ui.terminalWidth > 0 {
		return ui.terminalWidth
	}
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

func (ui *UI) printCentered(block string) {
	lines := strings.Split(strings.TrimRight(block, "\n"), "\n")
	blockWidth := 0
	for _, line := range lines {
		blockWidth = max(blockWidth, displayWidth(line))
	}
	indent := max((ui.width()-blockWidth)/2, 0)
	for _, line := range lines {
		if len(line) == 0 {
			ui.println()
			continue
		}
		ui.printf("%s%s\n", strings.Repeat(" ", indent), line)
	}
}

// Print the status of the App and its grid.
func (ui *UI) Print(a *app.App) {
	if ui.clearScreen {
		ui.printf("\033c")
	}
	g := a.Grid()
	title := fmt.Sprintf("Tick #%d - %s", g.Ticks(), a.Status())
	if ui.color {
		title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Render(title)
	}
	ui.printf("\n%s\n\n", title)
	ui.PrintGrid(g)
	ui.println()
	if g.Done() {
		ui.PrintPath(g)
	}
}

// PrintGrid draws the grid, with the column numbers on top and the row numbers on the left.
func (ui *UI) PrintGrid(g *grid.Grid) {
	cellWidth := CharsPerCell
	if ui.showCosts {
		cellWidth = CharsPerCellWithCosts
	}
	var sb strings.Builder
	sb.WriteString("    ")
	for x := range g.Cols() {
		label := fmt.Sprintf("%d", x)
		if !ui.showCosts {
			// Only the last digit fits.
			label = fmt.Sprintf("%d", x%10)
		}
		sb.WriteString(centerString(label, cellWidth))
	}
	sb.WriteString("\n")
	for node := range g.Nodes() {
		if node.X() == 0 {
			sb.WriteString(fmt.Sprintf("%3d ", node.Y()))
		}
		sb.WriteString(ui.renderCell(node, cellWidth))
		if node.X() == g.Cols()-1 {
			sb.WriteString("\n")
		}
	}
	ui.printCentered(sb.String())
}

// cellText is the content of a cell of the given width.
func (ui *UI) cellText(node *grid.Node, width int) string {
	var text string
	switch kind := node.Kind(); kind {
	case grid.KindEmpty:
		text = "."
	case grid.KindWall:
		text = "#"
	case grid.KindStart:
		text = "S"
		if ui.showCosts {
			text = "START"
		}
	case grid.KindEnd:
		text = "E"
		if ui.showCosts {
			text = "END"
		}
	case grid.KindPotential, grid.KindChecked, grid.KindSelected:
		text = kindLetters[kind]
		if ui.showCosts {
			text = fmt.Sprintf("%d", node.FCost())
		}
	default:
		exceptions.Panicf("unknown node kind %s", kind)
	}
	if ui.color && text == "." {
		// Colored empty cells are drawn by their background only.
		text = ""
	}
	return centerString(text, width)
}

var kindLetters = map[grid.Kind]string{
	grid.KindPotential: "p",
	grid.KindChecked:   "c",
	grid.KindSelected:  "*",
}

// cellStyle returns the colors of each kind of node, the same as the window UI.
func cellStyle(kind grid.Kind) lipgloss.Style {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color("#000000"))
	switch kind {
	case grid.KindEmpty:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	case grid.KindWall:
		return style.Background(lipgloss.Color("#ffffff"))
	case grid.KindStart, grid.KindEnd, grid.KindSelected:
		return style.Background(lipgloss.Color("#22dd22")).Bold(true)
	case grid.KindPotential:
		return style.Background(lipgloss.Color("#4444dd"))
	case grid.KindChecked:
		return style.Background(lipgloss.Color("#dd2222"))
	default:
		exceptions.Panicf("unknown node kind %s", kind)
	}
	return style
}

func (ui *UI) renderCell(node *grid.Node, width int) string {
	text := ui.cellText(node, width)
	if !ui.color {
		return text
	}
	return cellStyle(node.Kind()).Width(width).Render(text)
}

// PrintPath lists the nodes of the path found, with their costs.
func (ui *UI) PrintPath(g *grid.Grid) {
	path := g.Path()
	parts := make([]string, 0, len(path))
	for _, node := range path {
		parts = append(parts, fmt.Sprintf("%s g=%d", node.Pos(), node.GCost()))
	}
	ui.printf("Path with %d nodes, cost %d:\n  %s\n", len(path), g.End().GCost(), strings.Join(parts, " -> "))
}

// PrintHelp lists the available commands.
func (ui *UI) PrintHelp() {
	ui.println(`Commands:
  w X Y      place a wall at cell (X, Y); negative values count from the right/bottom
  s X Y      move the start to cell (X, Y)
  e X Y      move the end to cell (X, Y)
  <enter>    advance the search one tick (same as "n")
  n [N]      advance the search N ticks
  run        run the search until it ends, animated with --tick_interval
  esc        deselect the current tool
  reset      reset the grid and go back to preparing it
  save FILE  save the current start, end and walls as a layout file
  load FILE  load a layout file and reset the grid with it
  help       print this message
  q          quit`)
}
