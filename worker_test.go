package astar

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchBatch_ResultsInJobOrder(t *testing.T) {
	open := mustGrid(t, 10, 10)
	ring := mustGrid(t, 10, 10, Cell{4, 4}, Cell{4, 5}, Cell{4, 6}, Cell{5, 4}, Cell{5, 6}, Cell{6, 4}, Cell{6, 5}, Cell{6, 6})

	var jobs []Job
	for i := 1; i <= 9; i++ {
		jobs = append(jobs, Job{Name: fmt.Sprintf("diag-%d", i), Grid: open, Start: Cell{1, 1}, Goal: Cell{i + 1, i + 1}})
	}
	jobs = append(jobs,
		Job{Name: "enclosed", Grid: ring, Start: Cell{1, 1}, Goal: Cell{5, 5}},
		Job{Name: "same", Grid: open, Start: Cell{3, 3}, Goal: Cell{3, 3}},
	)

	results := SearchBatch(context.Background(), jobs, WithWorkers(3))
	require.Len(t, results, len(jobs))

	for i := 0; i < 9; i++ {
		r := results[i]
		assert.Equal(t, jobs[i], r.Job)
		require.NoError(t, r.Err)
		assert.Len(t, r.Result.Path, i+2)

		want, err := Search(context.Background(), open, jobs[i].Start, jobs[i].Goal)
		require.NoError(t, err)
		assert.Equal(t, want, r.Result)
	}
	assert.ErrorIs(t, results[9].Err, ErrUnreachable)
	assert.ErrorIs(t, results[10].Err, ErrInvalidEndpoint)
}

func TestSearchBatch_CanceledContext(t *testing.T) {
	open := mustGrid(t, 10, 10)
	jobs := []Job{
		{Name: "a", Grid: open, Start: Cell{1, 1}, Goal: Cell{10, 10}},
		{Name: "b", Grid: open, Start: Cell{10, 10}, Goal: Cell{1, 1}},
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := SearchBatch(ctx, jobs, WithWorkers(1))
	require.Len(t, results, 2)
	for i, r := range results {
		assert.Equal(t, jobs[i], r.Job)
		assert.ErrorIs(t, r.Err, context.Canceled)
		assert.False(t, r.Result.Found)
	}
}

func TestSearchBatch_Empty(t *testing.T) {
	assert.Empty(t, SearchBatch(context.Background(), nil))
}
