package astar

import (
	"context"
	"io"
	"runtime"

	"github.com/sirupsen/logrus"
)

// Result contains the outcome of a search
type Result struct {
	// Path runs from start to goal inclusive.
	Path []Cell
	// Costs[i] is the rounded cost-to-come of Path[i].
	Costs     []float64
	TotalCost float64
	// Expanded lists cells in the order they were taken off the open list.
	Expanded      []Cell
	ExpandedNodes int
	Relaxations   int
	Found         bool
}

// Relaxation selects what happens when a cheaper route to an already
// discovered cell is found.
type Relaxation int

const (
	// RelaxLegacy lowers the node's cost and re-parents it in place but leaves
	// its open-list entry at the old priority.
	RelaxLegacy Relaxation = iota
	// RelaxDecreaseKey also repositions the open-list entry under the new priority.
	RelaxDecreaseKey
)

func (r Relaxation) String() string {
	switch r {
	case RelaxLegacy:
		return "legacy"
	case RelaxDecreaseKey:
		return "decrease-key"
	}
	return "unknown"
}

// Options defines parameters for the search.
type Options struct {
	NumberOfWorkers int
	Relaxation      Relaxation
	Observer        Observer
	Logger          logrus.FieldLogger
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithWorkers specifies how many worker goroutines SearchBatch runs.
func WithWorkers(numberOfWorkers int) Option {
	return func(options *Options) { options.NumberOfWorkers = numberOfWorkers }
}

// WithRelaxation selects the relaxation policy.
func WithRelaxation(relaxation Relaxation) Option {
	return func(options *Options) { options.Relaxation = relaxation }
}

// WithObserver registers an observer called after every expansion.
// Observers shared by a SearchBatch must be safe for concurrent use.
func WithObserver(observer Observer) Option {
	return func(options *Options) { options.Observer = observer }
}

// WithLogger sets the logger used for per-expansion debug records.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(options *Options) { options.Logger = logger }
}

var discardLogger = func() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}()

func applyOptions(options []Option) Options {
	searchOptions := Options{
		NumberOfWorkers: runtime.NumCPU(),
		Relaxation:      RelaxLegacy,
		Logger:          discardLogger,
	}
	for _, option := range options {
		option(&searchOptions)
	}
	if searchOptions.NumberOfWorkers < 1 {
		searchOptions.NumberOfWorkers = 1
	}
	if searchOptions.Logger == nil {
		searchOptions.Logger = discardLogger
	}
	return searchOptions
}

// Search runs A* from start to goal to completion.
//
// Invalid endpoints fail with an *EndpointError before any search work. When
// the open list empties without reaching the goal the error is ErrUnreachable
// and the Result still carries the expansion order. ctx is checked between
// iterations only.
func Search(
	contextObject context.Context,
	grid *Grid,
	startNode Cell,
	goalNode Cell,
	options ...Option,
) (Result, error) {
	s, err := newSearcher(grid, startNode, goalNode, applyOptions(options))
	if err != nil {
		return Result{}, err
	}
	for {
		if err := contextObject.Err(); err != nil {
			return s.result(), err
		}
		switch s.step() {
		case stepFound:
			return s.result(), nil
		case stepExhausted:
			return s.result(), ErrUnreachable
		}
	}
}
