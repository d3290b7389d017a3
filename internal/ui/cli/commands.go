package cli

import (
	"context"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/janpfeifer/astarGo/internal/app"
	"github.com/janpfeifer/astarGo/internal/grid"
	"github.com/janpfeifer/astarGo/internal/layout"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Op is the operation of a Command.
type Op uint8

const (
	OpPlace Op = iota
	OpStep
	OpRun
	OpEscape
	OpReset
	OpSave
	OpLoad
	OpHelp
	OpQuit
)

// Command read from the user.
type Command struct {
	Op Op

	// Tool and Pos for OpPlace.
	Tool app.Tool
	Pos  grid.Pos

	// N is the number of ticks for OpStep.
	N int

	// Path of the layout file for OpSave and OpLoad.
	Path string
}

var placeTools = map[string]app.Tool{
	"w": app.ToolWall,
	"s": app.ToolStart,
	"e": app.ToolEnd,
}

// ParseCommand parses one line of input. An empty line is a one tick step.
func ParseCommand(line string) (cmd Command, err error) {
	fields := strings.FieldsFunc(line, func(r rune) bool { return r == ' ' || r == '\t' || r == ',' })
	if len(fields) == 0 {
		return Command{Op: OpStep, N: 1}, nil
	}
	name, args := strings.ToLower(fields[0]), fields[1:]
	wantArgs := func(n int) error {
		if len(args) != n {
			return errors.Errorf("%q takes %d arguments, got %d", name, n, len(args))
		}
		return nil
	}
	switch name {
	case "w", "s", "e":
		if err = wantArgs(2); err != nil {
			return
		}
		cmd = Command{Op: OpPlace, Tool: placeTools[name]}
		for ii := range 2 {
			if cmd.Pos[ii], err = strconv.Atoi(args[ii]); err != nil {
				return cmd, errors.Errorf("failed to parse coordinate %q", args[ii])
			}
		}
	case "n", "next", "step":
		cmd = Command{Op: OpStep, N: 1}
		if len(args) > 1 {
			return cmd, wantArgs(1)
		}
		if len(args) == 1 {
			if cmd.N, err = strconv.Atoi(args[0]); err != nil || cmd.N <= 0 {
				return cmd, errors.Errorf("invalid number of ticks %q", args[0])
			}
		}
	case "run", "r":
		cmd, err = Command{Op: OpRun}, wantArgs(0)
	case "esc", "escape":
		cmd, err = Command{Op: OpEscape}, wantArgs(0)
	case "reset":
		cmd, err = Command{Op: OpReset}, wantArgs(0)
	case "save", "load":
		if err = wantArgs(1); err != nil {
			return
		}
		cmd = Command{Op: OpSave, Path: args[0]}
		if name == "load" {
			cmd.Op = OpLoad
		}
	case "help", "h", "?":
		cmd, err = Command{Op: OpHelp}, wantArgs(0)
	case "q", "quit", "exit":
		cmd, err = Command{Op: OpQuit}, wantArgs(0)
	default:
		err = errors.Errorf("unknown command %q, type \"help\" for the list of commands", name)
	}
	return
}

// ReadCommand prompts and reads commands until one is parsed correctly.
// It only returns an error if reading fails (io.EOF at the end of the input).
func (ui *UI) ReadCommand() (Command, error) {
	// ANSI escape codes for:
	// - \033[30;45;2m: black over a dim magenta background
	// - \033[39;49;0m: reset all attributes to defaults
	// - \033[0K: clear to the end-of-line
	const (
		inputAreaColor = "\033[30;45;2m"
		inputAreaReset = "\033[39;49;0m\033[0K"
		inputWidth     = 14
	)
	for {
		ui.printf("    command > ")
		if ui.color {
			// Print the "input area" and move the cursor back to its beginning.
			ui.printf("%s%s\033[%dD", inputAreaColor, strings.Repeat(" ", inputWidth), inputWidth-1)
		}
		text, err := ui.reader.ReadString('\n')
		if ui.color {
			ui.printf(inputAreaReset)
		}
		if err != nil && (err != io.EOF || text == "") {
			return Command{}, err
		}
		cmd, err := ParseCommand(strings.TrimSpace(text))
		if err != nil {
			ui.printf("    * %v\n", err)
			continue
		}
		return cmd, nil
	}
}

// Execute runs the command over the App. It returns quit=true for OpQuit.
// Errors are only returned for failures that should stop the UI: a broken search, a file that
// can't be read or written or a cancelled context.
func (ui *UI) Execute(ctx context.Context, a *app.App, cmd Command) (quit bool, err error) {
	switch cmd.Op {
	case OpPlace:
		ui.place(a, cmd.Tool, cmd.Pos)
	case OpStep:
		_, err = a.Step(cmd.N)
	case OpRun:
		err = ui.Animate(ctx, a, 0)
	case OpEscape:
		err = a.Key(app.KeyEscape)
	case OpReset:
		err = a.Key(app.KeySpace)
	case OpSave:
		if err = layout.Save(cmd.Path, layout.FromGrid(a.Grid())); err == nil {
			ui.printf("    Layout saved to %q\n", cmd.Path)
		}
	case OpLoad:
		var l *grid.Layout
		if l, err = layout.Load(cmd.Path); err == nil {
			err = a.SetLayout(l)
		}
	case OpHelp:
		ui.PrintHelp()
	case OpQuit:
		quit = true
	default:
		err = errors.Errorf("unknown command op %d", cmd.Op)
	}
	return
}

var keyForTool = map[app.Tool]app.Key{
	app.ToolWall:  app.KeyW,
	app.ToolStart: app.KeyS,
	app.ToolEnd:   app.KeyE,
}

// place selects the tool, as the key would, and clicks on the center of the cell.
func (ui *UI) place(a *app.App, tool app.Tool, pos grid.Pos) {
	if !a.Preparing() {
		ui.printf("    * The search already started, \"reset\" to edit the grid again.\n")
		return
	}
	// Selecting a tool never ticks, so it can't fail.
	_ = a.Key(keyForTool[tool])
	g := a.Grid()
	cell, ok := g.Resolve(pos.X(), pos.Y())
	if !ok {
		ui.printf("    * Cell %s is outside of the %dx%d grid.\n", pos, g.Cols(), g.Rows())
		return
	}
	if !a.Click(g.CellCenter(cell.X(), cell.Y())) {
		ui.printf("    * Can't place %s over the %s node at %s.\n", tool, g.GetNode(cell.X(), cell.Y()).Kind(), cell)
	}
}

// Animate runs the search until it ends or stalls, printing the grid after every tick if the
// App has a tick interval. If maxTicks > 0, it returns an error wrapping grid.ErrTickLimit after
// that many ticks.
func (ui *UI) Animate(ctx context.Context, a *app.App, maxTicks int) error {
	interval := a.TickInterval()
	var ticker *time.Ticker
	if interval > 0 {
		ticker = time.NewTicker(interval)
		defer ticker.Stop()
	}
	// Leaves the preparation without ticking.
	_, _ = a.Step(0)
	g := a.Grid()
	ticks := 0
	for !g.Done() && !g.Stalled() {
		if maxTicks > 0 && ticks >= maxTicks {
			return errors.Wrapf(grid.ErrTickLimit, "search not finished after %d ticks", ticks)
		}
		if ticker != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-ticker.C:
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := a.Step(1); err != nil {
			return err
		}
		ticks++
		if ticker != nil {
			ui.Print(a)
		}
	}
	klog.V(1).Infof("Animate: %d ticks, %s", ticks, a.Status())
	return nil
}
