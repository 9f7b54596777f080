// Package render draws search progress on a terminal screen.
package render

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	astar "github.com/pdrpinto/gridastar"
)

// ErrAborted is returned by Play when the user quits before the search ends.
var ErrAborted = errors.New("aborted by user")

const (
	glyphEmpty    = '.'
	glyphObstacle = '#'
	glyphClosed   = 'o'
	glyphOpen     = '+'
	glyphCurrent  = '@'
	glyphPath     = '*'
	glyphStart    = 'S'
	glyphGoal     = 'G'
)

// Theme holds the style of every glyph kind.
type Theme struct {
	Empty    tcell.Style
	Obstacle tcell.Style
	Closed   tcell.Style
	Open     tcell.Style
	Current  tcell.Style
	Path     tcell.Style
	Endpoint tcell.Style
	Status   tcell.Style
}

var DefaultTheme = Theme{
	Empty:    tcell.StyleDefault.Foreground(tcell.ColorGray),
	Obstacle: tcell.StyleDefault.Foreground(tcell.NewRGBColor(238, 130, 238)),
	Closed:   tcell.StyleDefault.Foreground(tcell.ColorWhite),
	Open:     tcell.StyleDefault.Foreground(tcell.ColorBlue),
	Current:  tcell.StyleDefault.Foreground(tcell.ColorYellow),
	Path:     tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true),
	Endpoint: tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true),
	Status:   tcell.StyleDefault,
}

// Terminal renders one grid and its endpoints. Each cell takes two columns;
// y grows upwards so the top row is y = height.
type Terminal struct {
	screen tcell.Screen
	grid   *astar.Grid
	start  astar.Cell
	goal   astar.Cell
	theme  Theme

	pump   sync.Once
	events chan tcell.Event
}

func NewTerminal(screen tcell.Screen, grid *astar.Grid, start, goal astar.Cell) *Terminal {
	return &Terminal{screen: screen, grid: grid, start: start, goal: goal, theme: DefaultTheme}
}

// Position maps a grid cell to screen column and row.
func (t *Terminal) Position(c astar.Cell) (int, int) {
	return (c.X - 1) * 2, t.grid.Height() - c.Y
}

func (t *Terminal) put(c astar.Cell, glyph rune, style tcell.Style) {
	x, y := t.Position(c)
	t.screen.SetContent(x, y, glyph, nil, style)
}

// Draw renders one frame from a step snapshot.
func (t *Terminal) Draw(snap astar.StepSnapshot) {
	t.screen.Clear()
	for x := 1; x <= t.grid.Width(); x++ {
		for y := 1; y <= t.grid.Height(); y++ {
			c := astar.Cell{X: x, Y: y}
			switch {
			case t.grid.IsObstacle(c):
				t.put(c, glyphObstacle, t.theme.Obstacle)
			case snap.Closed[c]:
				t.put(c, glyphClosed, t.theme.Closed)
			case snap.Open[c]:
				t.put(c, glyphOpen, t.theme.Open)
			default:
				t.put(c, glyphEmpty, t.theme.Empty)
			}
		}
	}
	if snap.StepIndex > 0 && !snap.Found {
		t.put(snap.Current, glyphCurrent, t.theme.Current)
	}
	for _, c := range snap.Path {
		t.put(c, glyphPath, t.theme.Path)
	}
	t.put(t.start, glyphStart, t.theme.Endpoint)
	t.put(t.goal, glyphGoal, t.theme.Endpoint)
	t.status(snap)
	t.screen.Show()
}

func (t *Terminal) status(snap astar.StepSnapshot) {
	line := fmt.Sprintf("step %d  open %d  closed %d", snap.StepIndex, len(snap.Open), len(snap.Closed))
	switch {
	case snap.Found:
		line = fmt.Sprintf("%s  cost %.3f", line, snap.TotalCost)
	case snap.Done:
		line += "  no path"
	}
	row := t.grid.Height() + 1
	for i, r := range line {
		t.screen.SetContent(i, row, r, nil, t.theme.Status)
	}
}

// Play steps the search once per frame, drawing every snapshot, until it is
// done, ctx ends, or the user presses Esc, q or Ctrl-C.
func (t *Terminal) Play(ctx context.Context, stepper *astar.Stepper, frame time.Duration) (astar.StepSnapshot, error) {
	events := t.pollEvents()
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	var last astar.StepSnapshot
	t.Draw(last)
	for {
		select {
		case <-ctx.Done():
			return last, ctx.Err()
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if isQuit(ev) {
					return last, ErrAborted
				}
			case *tcell.EventResize:
				t.screen.Sync()
			}
		case <-ticker.C:
			snap, err := stepper.Step()
			if err != nil {
				return last, err
			}
			last = snap
			t.Draw(snap)
			if snap.Done {
				return snap, nil
			}
		}
	}
}

// Hold keeps the final frame up until a key is pressed, ctx ends, or d elapses.
func (t *Terminal) Hold(ctx context.Context, d time.Duration) {
	events := t.pollEvents()
	timer := time.NewTimer(d)
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
			return
		case ev := <-events:
			if _, ok := ev.(*tcell.EventKey); ok {
				return
			}
		}
	}
}

// pollEvents starts a single goroutine forwarding screen events. It exits
// when the screen is finalized.
func (t *Terminal) pollEvents() <-chan tcell.Event {
	t.pump.Do(func() {
		t.events = make(chan tcell.Event, 16)
		go func() {
			for {
				ev := t.screen.PollEvent()
				if ev == nil {
					return
				}
				t.events <- ev
			}
		}()
	})
	return t.events
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}
