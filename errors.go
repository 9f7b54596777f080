package astar

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidEndpoint is returned before any search work when the start or goal
	// is out of bounds, on an obstacle, or when start equals goal.
	ErrInvalidEndpoint = errors.New("invalid endpoint")

	// ErrUnreachable is returned when the open list empties without reaching the goal.
	ErrUnreachable = errors.New("no path found")

	ErrNoGrid = errors.New("nil grid")
)

// Endpoint names which end of the search an EndpointError is about.
type Endpoint string

const (
	StartEndpoint Endpoint = "start"
	GoalEndpoint  Endpoint = "goal"
)

// Reasons an endpoint can be rejected.
const (
	ReasonOutOfBounds = "outside map"
	ReasonObstacle    = "inside obstacle"
	ReasonSameCell    = "equals goal"
)

// EndpointError describes a rejected start or goal cell.
type EndpointError struct {
	Endpoint Endpoint
	Cell     Cell
	Reason   string
}

func (e *EndpointError) Error() string {
	return fmt.Sprintf("%s cell %s %s", e.Endpoint, e.Cell, e.Reason)
}

func (e *EndpointError) Is(target error) bool { return target == ErrInvalidEndpoint }

// ValidateEndpoints runs the checks Search and NewStepper perform before searching.
// Checks run in order: start bounds, goal bounds, start obstacle, goal obstacle, equality.
func ValidateEndpoints(grid *Grid, start, goal Cell) error {
	switch {
	case grid == nil:
		return ErrNoGrid
	case !grid.InBounds(start):
		return &EndpointError{Endpoint: StartEndpoint, Cell: start, Reason: ReasonOutOfBounds}
	case !grid.InBounds(goal):
		return &EndpointError{Endpoint: GoalEndpoint, Cell: goal, Reason: ReasonOutOfBounds}
	case grid.IsObstacle(start):
		return &EndpointError{Endpoint: StartEndpoint, Cell: start, Reason: ReasonObstacle}
	case grid.IsObstacle(goal):
		return &EndpointError{Endpoint: GoalEndpoint, Cell: goal, Reason: ReasonObstacle}
	case start == goal:
		return &EndpointError{Endpoint: StartEndpoint, Cell: start, Reason: ReasonSameCell}
	}
	return nil
}
