package astar

import (
	"container/heap"

	"github.com/pdrpinto/gridastar/internal"
	"github.com/sirupsen/logrus"
)

type stepStatus int

const (
	stepContinue stepStatus = iota
	stepFound
	stepExhausted
)

// searcher owns the state of one search. It is driven one iteration at a time
// by Search and by Stepper.
type searcher struct {
	grid    *Grid
	start   Cell
	goal    Cell
	options Options
	log     logrus.FieldLogger

	nodes    []searchNode
	visited  map[Cell]int
	openSet  PriorityQueue
	sequence uint64

	expanded    []Cell
	relaxations int
	current     int
	goalIndex   int
	status      stepStatus
}

func newSearcher(grid *Grid, start, goal Cell, options Options) (*searcher, error) {
	if err := ValidateEndpoints(grid, start, goal); err != nil {
		return nil, err
	}
	s := &searcher{
		grid:      grid,
		start:     start,
		goal:      goal,
		options:   options,
		log:       options.Logger.WithFields(logrus.Fields{"start": start, "goal": goal}),
		visited:   make(map[Cell]int),
		openSet:   make(PriorityQueue, 0),
		current:   noParent,
		goalIndex: noParent,
	}
	heap.Init(&s.openSet)
	s.push(newSearchNode(start, noParent, 0, goal))
	return s, nil
}

func (s *searcher) push(node searchNode) {
	index := len(s.nodes)
	node.item = &PriorityQueueItem{NodeIndex: index, FCost: node.f, Sequence: s.sequence}
	s.sequence++
	s.nodes = append(s.nodes, node)
	s.visited[node.cell] = index
	heap.Push(&s.openSet, node.item)
}

func (s *searcher) step() stepStatus {
	if s.status != stepContinue {
		return s.status
	}
	if s.openSet.Len() == 0 {
		s.status = stepExhausted
		s.log.WithField("expanded", len(s.expanded)).Info("open list exhausted")
		return s.status
	}

	item := heap.Pop(&s.openSet).(*PriorityQueueItem)
	s.current = item.NodeIndex
	s.nodes[s.current].item = nil
	node := s.nodes[s.current]
	s.expanded = append(s.expanded, node.cell)

	s.log.WithFields(logrus.Fields{
		"step": len(s.expanded),
		"cell": node.cell,
		"g":    node.g,
		"f":    node.f,
	}).Debug("expand")
	if s.options.Observer != nil {
		s.options.Observer.OnExpand(Expansion{
			Step:     len(s.expanded),
			Cell:     node.cell,
			G:        node.g,
			H:        node.h,
			F:        node.f,
			OpenSize: s.openSet.Len(),
			Visited:  len(s.visited),
		})
	}

	if node.cell == s.goal {
		s.goalIndex = s.current
		s.status = stepFound
		s.log.WithFields(logrus.Fields{
			"cost":     node.g,
			"expanded": len(s.expanded),
		}).Info("goal reached")
		return s.status
	}

	for _, m := range moves {
		next := Cell{X: node.cell.X + m.dx, Y: node.cell.Y + m.dy}
		if !s.grid.InBounds(next) || s.grid.IsObstacle(next) {
			continue
		}
		g := internal.Round(node.g + m.cost)
		if existing, seen := s.visited[next]; seen {
			s.relax(existing, s.current, g)
			continue
		}
		s.push(newSearchNode(next, s.current, g, s.goal))
	}
	return stepContinue
}

// relax lowers the cost-to-come of an already discovered node when reaching it
// through parent is cheaper. The node is never queued a second time.
func (s *searcher) relax(index, parent int, g float64) {
	node := &s.nodes[index]
	if node.parent == parent || node.g <= g {
		return
	}
	node.g = g
	node.f = internal.Round(g + node.h)
	node.parent = parent
	s.relaxations++
	if s.options.Relaxation == RelaxDecreaseKey && node.item != nil {
		node.item.FCost = node.f
		heap.Fix(&s.openSet, node.item.IndexInQueue)
	}
}

// backtrack follows parent indices from the goal and returns the path from
// start to goal with the cost-to-come of each cell.
func (s *searcher) backtrack() ([]Cell, []float64) {
	if s.goalIndex == noParent {
		return nil, nil
	}
	var (
		path  []Cell
		costs []float64
	)
	for index := s.goalIndex; index != noParent; index = s.nodes[index].parent {
		path = append(path, s.nodes[index].cell)
		costs = append(costs, s.nodes[index].g)
	}
	internal.Reverse(path)
	internal.Reverse(costs)
	return path, costs
}

func (s *searcher) result() Result {
	expanded := make([]Cell, len(s.expanded))
	copy(expanded, s.expanded)
	result := Result{
		Expanded:      expanded,
		ExpandedNodes: len(expanded),
		Relaxations:   s.relaxations,
		Found:         s.status == stepFound,
	}
	if result.Found {
		result.Path, result.Costs = s.backtrack()
		result.TotalCost = s.nodes[s.goalIndex].g
	}
	return result
}
