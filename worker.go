package astar

import (
	"context"
	"sync"
)

// Job is one independent search request for SearchBatch.
type Job struct {
	Name  string
	Grid  *Grid
	Start Cell
	Goal  Cell
}

// BatchResult pairs a Job with its outcome.
type BatchResult struct {
	Job    Job
	Result Result
	Err    error
}

// SearchBatch runs every job on a pool of worker goroutines. Each search owns
// its own state, so searches never share anything but the read-only grids.
// Results are returned in job order; jobs not started before ctx is done carry
// ctx.Err().
func SearchBatch(contextObject context.Context, jobs []Job, options ...Option) []BatchResult {
	searchOptions := applyOptions(options)
	results := make([]BatchResult, len(jobs))
	taskChannel := make(chan int)

	var wg sync.WaitGroup
	for i := 0; i < searchOptions.NumberOfWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for index := range taskChannel {
				job := jobs[index]
				result, err := Search(contextObject, job.Grid, job.Start, job.Goal, options...)
				results[index] = BatchResult{Job: job, Result: result, Err: err}
			}
		}()
	}

dispatch:
	for index := range jobs {
		select {
		case <-contextObject.Done():
			for rest := index; rest < len(jobs); rest++ {
				results[rest] = BatchResult{Job: jobs[rest], Err: contextObject.Err()}
			}
			break dispatch
		case taskChannel <- index:
		}
	}
	close(taskChannel)
	wg.Wait()
	return results
}
