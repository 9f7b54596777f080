package astar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGrid_RejectsNonPositiveSize(t *testing.T) {
	_, err := NewGrid(0, 10)
	assert.Error(t, err)
	_, err = NewGrid(10, -1)
	assert.Error(t, err)
}

func TestGrid_InBoundsIsOneIndexed(t *testing.T) {
	grid, err := NewGrid(10, 8)
	require.NoError(t, err)

	assert.True(t, grid.InBounds(Cell{1, 1}))
	assert.True(t, grid.InBounds(Cell{10, 8}))
	assert.False(t, grid.InBounds(Cell{0, 1}))
	assert.False(t, grid.InBounds(Cell{1, 0}))
	assert.False(t, grid.InBounds(Cell{11, 8}))
	assert.False(t, grid.InBounds(Cell{10, 9}))
}

func TestGrid_Traversable(t *testing.T) {
	grid, err := NewGrid(5, 5, Cell{2, 2}, Cell{9, 9})
	require.NoError(t, err)

	assert.True(t, grid.IsObstacle(Cell{2, 2}))
	assert.False(t, grid.IsTraversable(Cell{2, 2}))
	assert.True(t, grid.IsTraversable(Cell{3, 3}))
	assert.False(t, grid.IsTraversable(Cell{6, 1}))
	// out-of-bounds obstacles are dropped
	assert.False(t, grid.IsObstacle(Cell{9, 9}))
	assert.Equal(t, []Cell{{2, 2}}, grid.Obstacles())
}

func TestNewGridFunc_CircleObstacle(t *testing.T) {
	grid, err := NewGridFunc(10, 10, func(c Cell) bool {
		dx, dy := c.X-3, c.Y-7
		return dx*dx+dy*dy <= 1
	})
	require.NoError(t, err)

	assert.Equal(t, []Cell{{2, 7}, {3, 6}, {3, 7}, {3, 8}, {4, 7}}, grid.Obstacles())
}

func TestValidateEndpoints(t *testing.T) {
	grid, err := NewGrid(10, 10, Cell{4, 4})
	require.NoError(t, err)

	cases := []struct {
		name     string
		start    Cell
		goal     Cell
		endpoint Endpoint
		reason   string
	}{
		{"start outside", Cell{0, 5}, Cell{5, 5}, StartEndpoint, ReasonOutOfBounds},
		{"goal outside", Cell{1, 1}, Cell{11, 5}, GoalEndpoint, ReasonOutOfBounds},
		{"start on obstacle", Cell{4, 4}, Cell{5, 5}, StartEndpoint, ReasonObstacle},
		{"goal on obstacle", Cell{1, 1}, Cell{4, 4}, GoalEndpoint, ReasonObstacle},
		{"start equals goal", Cell{5, 5}, Cell{5, 5}, StartEndpoint, ReasonSameCell},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateEndpoints(grid, tc.start, tc.goal)
			require.ErrorIs(t, err, ErrInvalidEndpoint)
			var endpointErr *EndpointError
			require.ErrorAs(t, err, &endpointErr)
			assert.Equal(t, tc.endpoint, endpointErr.Endpoint)
			assert.Equal(t, tc.reason, endpointErr.Reason)
		})
	}

	assert.NoError(t, ValidateEndpoints(grid, Cell{1, 1}, Cell{10, 10}))
	assert.ErrorIs(t, ValidateEndpoints(nil, Cell{1, 1}, Cell{2, 2}), ErrNoGrid)
}
