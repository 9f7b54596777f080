package astar

import (
	"fmt"
	"sort"
)

// Cell is a 1-indexed grid coordinate.
type Cell struct {
	X, Y int
}

func (c Cell) String() string { return fmt.Sprintf("(%d,%d)", c.X, c.Y) }

// Grid holds the bounds and the static obstacle set of a map.
// It is read-only once built and safe to share between searches.
type Grid struct {
	width     int
	height    int
	obstacles map[Cell]struct{}
}

// NewGrid builds a width x height grid. Obstacle cells outside the bounds are ignored.
func NewGrid(width, height int, obstacles ...Cell) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid grid size %dx%d", width, height)
	}
	grid := &Grid{width: width, height: height, obstacles: make(map[Cell]struct{}, len(obstacles))}
	for _, cell := range obstacles {
		if grid.InBounds(cell) {
			grid.obstacles[cell] = struct{}{}
		}
	}
	return grid, nil
}

// NewGridFunc builds a grid whose obstacle set is every cell for which blocked returns true.
// The predicate is evaluated once per cell.
func NewGridFunc(width, height int, blocked func(Cell) bool) (*Grid, error) {
	grid, err := NewGrid(width, height)
	if err != nil {
		return nil, err
	}
	for x := 1; x <= width; x++ {
		for y := 1; y <= height; y++ {
			if cell := (Cell{X: x, Y: y}); blocked(cell) {
				grid.obstacles[cell] = struct{}{}
			}
		}
	}
	return grid, nil
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// InBounds reports whether c lies in [1,width] x [1,height].
func (g *Grid) InBounds(c Cell) bool {
	return c.X >= 1 && c.X <= g.width && c.Y >= 1 && c.Y <= g.height
}

// IsObstacle reports whether c is in the obstacle set.
func (g *Grid) IsObstacle(c Cell) bool {
	_, blocked := g.obstacles[c]
	return blocked
}

// IsTraversable reports whether c is in bounds and free.
func (g *Grid) IsTraversable(c Cell) bool {
	return g.InBounds(c) && !g.IsObstacle(c)
}

// Obstacles returns the obstacle cells ordered by X then Y.
func (g *Grid) Obstacles() []Cell {
	cells := make([]Cell, 0, len(g.obstacles))
	for c := range g.obstacles {
		cells = append(cells, c)
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].X != cells[j].X {
			return cells[i].X < cells[j].X
		}
		return cells[i].Y < cells[j].Y
	})
	return cells
}
