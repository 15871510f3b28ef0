package app

import (
	"context"

	"github.com/arzan03/musicland/internal/utils"
	"go.uber.org/zap"
)

// RunStartup runs the start-up tasks in parallel. Failures of required tasks
// are returned and must stop the server; failures of optional tasks are only
// logged.
func RunStartup(ctx context.Context, log *zap.Logger, required, optional []utils.Task) error {
	tasks := make([]utils.Task, 0, len(required)+len(optional))
	tasks = append(tasks, required...)
	for _, task := range optional {
		task := task
		tasks = append(tasks, utils.Task{
			Name: task.Name,
			Run: func(ctx context.Context) error {
				if err := task.Run(ctx); err != nil {
					log.Warn("Optional start-up task failed", zap.String("task", task.Name), zap.Error(err))
				}
				return nil
			},
		})
	}
	return utils.RunParallelTasks(ctx, tasks)
}
