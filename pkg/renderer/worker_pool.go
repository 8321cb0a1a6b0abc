package renderer

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// RowTask is one framebuffer row to render
type RowTask struct {
	TaskID int // Index into the result slice, for deterministic ordering
	Y      int // Centered y coordinate of the row
}

// RowFunc renders a single row and reports its statistics
type RowFunc func(task RowTask) RenderStats

// WorkerPool runs row tasks on a bounded number of goroutines.
// Each task must write only to the cells of its own row.
type WorkerPool struct {
	numWorkers int
}

// NewWorkerPool creates a worker pool with the specified number of workers.
// numWorkers <= 0 uses the CPU count.
func NewWorkerPool(numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &WorkerPool{numWorkers: numWorkers}
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// Run executes every task and returns the results indexed by TaskID.
// Scheduling stops once ctx is cancelled and ctx.Err() is returned.
func (wp *WorkerPool) Run(ctx context.Context, tasks []RowTask, fn RowFunc) ([]RenderStats, error) {
	results := make([]RenderStats, len(tasks))

	if wp.numWorkers == 1 {
		for _, task := range tasks {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			results[task.TaskID] = fn(task)
		}
		return results, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(wp.numWorkers)

	for _, task := range tasks {
		task := task
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[task.TaskID] = fn(task)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
