package utils

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunParallelTasks_AllSucceed(t *testing.T) {
	var ran int32
	task := func(ctx context.Context) error {
		atomic.AddInt32(&ran, 1)
		return nil
	}

	err := RunParallelTasks(context.Background(), []Task{{Name: "a", Run: task}, {Name: "b", Run: task}, {Name: "c", Run: task}})
	assert.NoError(t, err)
	assert.EqualValues(t, 3, ran)
}

func TestRunParallelTasks_CollectsFailures(t *testing.T) {
	boom := errors.New("boom")
	err := RunParallelTasks(context.Background(), []Task{
		{Name: "indexes", Run: func(ctx context.Context) error { return boom }},
		{Name: "bucket", Run: func(ctx context.Context) error { return nil }},
	})

	assert.ErrorIs(t, err, boom)
	assert.ErrorContains(t, err, "indexes: boom")
	assert.NotContains(t, err.Error(), "bucket")
}

func TestRunParallelTasks_Empty(t *testing.T) {
	assert.NoError(t, RunParallelTasks(context.Background(), nil))
}
