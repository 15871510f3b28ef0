package utils

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// Task is a named unit of work that can run alongside others.
type Task struct {
	Name string
	Run  func(ctx context.Context) error
}

// RunParallelTasks runs every task in its own goroutine and waits for all of
// them. The returned error joins the failures, each prefixed with the task
// name; it is nil when every task succeeded.
func RunParallelTasks(ctx context.Context, tasks []Task) error {
	var wg sync.WaitGroup
	errs := make([]error, len(tasks))

	wg.Add(len(tasks))
	for i, task := range tasks {
		go func(index int, t Task) {
			defer wg.Done()
			if err := t.Run(ctx); err != nil {
				errs[index] = fmt.Errorf("%s: %w", t.Name, err)
			}
		}(i, task)
	}

	wg.Wait()
	return errors.Join(errs...)
}
