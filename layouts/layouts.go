// Package layouts holds the built-in map definitions. Obstacles are expressed
// as inequalities over cell coordinates and rasterised once per grid.
package layouts

import (
	"fmt"
	"sort"

	astar "github.com/pdrpinto/gridastar"
)

// Layout is a named map with default endpoints.
type Layout struct {
	Name        string
	Description string
	Width       int
	Height      int
	Start       astar.Cell
	Goal        astar.Cell
	Blocked     func(x, y int) bool
}

// Grid rasterises the layout's obstacle predicate.
func (l Layout) Grid() (*astar.Grid, error) {
	blocked := l.Blocked
	if blocked == nil {
		blocked = func(int, int) bool { return false }
	}
	return astar.NewGridFunc(l.Width, l.Height, func(c astar.Cell) bool { return blocked(c.X, c.Y) })
}

var registry = map[string]Layout{}

func register(l Layout) { registry[l.Name] = l }

// Get returns the layout with the given name.
func Get(name string) (Layout, error) {
	l, ok := registry[name]
	if !ok {
		return Layout{}, fmt.Errorf("unknown map %q (available: %v)", name, Names())
	}
	return l, nil
}

// Names lists the registered layouts alphabetically.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns every layout ordered by name.
func All() []Layout {
	names := Names()
	all := make([]Layout, 0, len(names))
	for _, name := range names {
		all = append(all, registry[name])
	}
	return all
}

func inCircle(x, y, cx, cy, r int) bool {
	dx, dy := x-cx, y-cy
	return dx*dx+dy*dy <= r*r
}

func inRect(x, y, minX, maxX, minY, maxY int) bool {
	return x >= minX && x <= maxX && y >= minY && y <= maxY
}

func init() {
	register(Layout{
		Name:        "empty",
		Description: "10x10 map without obstacles",
		Width:       10,
		Height:      10,
		Start:       astar.Cell{X: 6, Y: 6},
		Goal:        astar.Cell{X: 10, Y: 10},
	})
	register(Layout{
		Name:        "circles",
		Description: "10x10 map with three circular obstacles",
		Width:       10,
		Height:      10,
		Start:       astar.Cell{X: 1, Y: 10},
		Goal:        astar.Cell{X: 10, Y: 1},
		Blocked: func(x, y int) bool {
			return inCircle(x, y, 3, 7, 1) ||
				inCircle(x, y, 5, 3, 2) ||
				inCircle(x, y, 9, 7, 1)
		},
	})
	register(Layout{
		Name:        "walls",
		Description: "10x10 map with three rectangular walls",
		Width:       10,
		Height:      10,
		Start:       astar.Cell{X: 1, Y: 10},
		Goal:        astar.Cell{X: 10, Y: 1},
		Blocked: func(x, y int) bool {
			return inRect(x, y, 2, 3, 3, 10) ||
				inRect(x, y, 6, 7, 1, 8) ||
				inRect(x, y, 9, 10, 3, 10)
		},
	})
	register(Layout{
		Name:        "ring",
		Description: "10x10 map whose goal is sealed inside a ring of obstacles",
		Width:       10,
		Height:      10,
		Start:       astar.Cell{X: 1, Y: 1},
		Goal:        astar.Cell{X: 8, Y: 8},
		Blocked: func(x, y int) bool {
			return inRect(x, y, 7, 9, 7, 9) && !(x == 8 && y == 8)
		},
	})
	register(Layout{
		Name:        "maze",
		Description: "16x8 maze of one-cell corridors",
		Width:       16,
		Height:      8,
		Start:       astar.Cell{X: 16, Y: 1},
		Goal:        astar.Cell{X: 3, Y: 6},
		Blocked:     mazeWall,
	})
}

// segment is an inclusive run of wall cells along one axis.
type segment struct{ minX, maxX, minY, maxY int }

var mazeSegments = []segment{
	// vertical
	{2, 2, 5, 7},
	{2, 2, 1, 3},
	{5, 5, 5, 8},
	{7, 7, 2, 7},
	{9, 9, 4, 7},
	{11, 11, 4, 5},
	{12, 12, 1, 2},
	{13, 13, 5, 7},
	{16, 16, 2, 3},
	{13, 13, 2, 3},
	{14, 14, 2, 3},
	// horizontal
	{2, 5, 3, 3},
	{2, 5, 5, 5},
	{2, 3, 7, 7},
	{9, 14, 2, 2},
	{9, 11, 4, 4},
	{7, 15, 7, 7},
	{13, 16, 5, 5},
}

func mazeWall(x, y int) bool {
	for _, s := range mazeSegments {
		if inRect(x, y, s.minX, s.maxX, s.minY, s.maxY) {
			return true
		}
	}
	return false
}
