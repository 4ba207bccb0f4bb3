// Package service runs long-living tasks of the demo command.
package service

import (
	"context"
	"sync"
)

type GroupTask func(ctx context.Context) error

// RunGroup starts every task in its own goroutine.
// The channel receives the result of every task and is closed when all tasks are finished.
// cancel stops the context passed to the tasks.
func RunGroup(parent context.Context, tasks ...GroupTask) (_ <-chan error, cancel func()) {

	var (
		wg    sync.WaitGroup
		ctx   context.Context
		chErr = make(chan error, len(tasks))
	)

	ctx, cancel = context.WithCancel(parent)

	for _, task := range tasks {
		wg.Add(1)
		go func(fn GroupTask) {
			defer wg.Done()
			chErr <- fn(ctx)
		}(task)
	}

	go func() {
		wg.Wait()
		close(chErr)
	}()

	return chErr, cancel
}
