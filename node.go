package astar

import (
	"math"

	"github.com/pdrpinto/gridastar/internal"
)

const noParent = -1

// searchNode is a cell as discovered during one search. Nodes live in a dense
// arena owned by the searcher and refer to their parent by arena index.
type searchNode struct {
	cell   Cell
	parent int
	g      float64
	h      float64
	f      float64
	item   *PriorityQueueItem // nil once dequeued
}

type move struct {
	dx, dy int
	cost   float64
}

// moves lists the 8 candidate moves clockwise from up. The order decides which
// of several equal-f nodes is queued first.
var moves = [8]move{
	{dx: 0, dy: 1, cost: 1},            // up
	{dx: 1, dy: 1, cost: math.Sqrt2},   // up-right
	{dx: 1, dy: 0, cost: 1},            // right
	{dx: 1, dy: -1, cost: math.Sqrt2},  // down-right
	{dx: 0, dy: -1, cost: 1},           // down
	{dx: -1, dy: -1, cost: math.Sqrt2}, // down-left
	{dx: -1, dy: 0, cost: 1},           // left
	{dx: -1, dy: 1, cost: math.Sqrt2},  // up-left
}

// MoveCost returns the cost of a single step between two adjacent cells, or
// false when the cells are not one of the 8 legal moves apart.
func MoveCost(from, to Cell) (float64, bool) {
	for _, m := range moves {
		if from.X+m.dx == to.X && from.Y+m.dy == to.Y {
			return m.cost, true
		}
	}
	return 0, false
}

func newSearchNode(cell Cell, parent int, g float64, goal Cell) searchNode {
	h := internal.Round(internal.Euclidean(cell.X, cell.Y, goal.X, goal.Y))
	return searchNode{
		cell:   cell,
		parent: parent,
		g:      g,
		h:      h,
		f:      internal.Round(g + h),
	}
}
