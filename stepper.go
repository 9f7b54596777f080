package astar

import (
	"context"
)

// StepSnapshot exposes the per-iteration state of the search
type StepSnapshot struct {
	Current   Cell
	Open      map[Cell]bool
	Closed    map[Cell]bool
	Done      bool
	Found     bool
	Path      []Cell
	Costs     []float64
	TotalCost float64
	StepIndex int
}

// Stepper runs a search one expansion at a time so a caller can render the
// frontier between iterations.
type Stepper struct {
	ctx    context.Context
	cancel context.CancelFunc
	search *searcher
}

// NewStepper validates the endpoints and prepares a search without expanding anything.
func NewStepper(
	parent context.Context,
	grid *Grid,
	startNode Cell,
	goalNode Cell,
	options ...Option,
) (*Stepper, error) {
	s, err := newSearcher(grid, startNode, goalNode, applyOptions(options))
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithCancel(parent)
	return &Stepper{ctx: ctx, cancel: cancel, search: s}, nil
}

// Close aborts the search; subsequent Step calls return the context error.
func (s *Stepper) Close() {
	if s.cancel != nil {
		s.cancel()
	}
}

// Step advances the search by one node expansion and returns a snapshot.
// Once the search is done further calls return the final snapshot again.
func (s *Stepper) Step() (StepSnapshot, error) {
	if err := s.ctx.Err(); err != nil {
		return StepSnapshot{Done: true, StepIndex: len(s.search.expanded)}, err
	}
	status := s.search.step()
	return s.snapshot(status), nil
}

// Result returns the search outcome so far.
func (s *Stepper) Result() Result {
	return s.search.result()
}

func (s *Stepper) snapshot(status stepStatus) StepSnapshot {
	snap := StepSnapshot{
		Open:      make(map[Cell]bool, s.search.openSet.Len()),
		Closed:    make(map[Cell]bool, len(s.search.expanded)),
		Done:      status != stepContinue,
		Found:     status == stepFound,
		StepIndex: len(s.search.expanded),
	}
	if s.search.current != noParent {
		snap.Current = s.search.nodes[s.search.current].cell
	}
	for _, item := range s.search.openSet {
		snap.Open[s.search.nodes[item.NodeIndex].cell] = true
	}
	for _, cell := range s.search.expanded {
		snap.Closed[cell] = true
	}
	if snap.Found {
		snap.Path, snap.Costs = s.search.backtrack()
		snap.TotalCost = s.search.nodes[s.search.goalIndex].g
	}
	return snap
}
