package app

import (
	"context"
	"errors"
	"testing"

	"github.com/arzan03/musicland/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func returning(err error) func(context.Context) error {
	return func(context.Context) error { return err }
}

func TestRunStartup_RequiredFailureIsReturned(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	indexErr := errors.New("E11000 duplicate key")

	err := RunStartup(context.Background(), zap.New(core),
		[]utils.Task{{Name: "indexes", Run: returning(indexErr)}},
		[]utils.Task{{Name: "image bucket", Run: returning(nil)}},
	)

	assert.ErrorIs(t, err, indexErr)
	assert.ErrorContains(t, err, "indexes")
	assert.Zero(t, logs.Len())
}

func TestRunStartup_OptionalFailureIsLogged(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)

	err := RunStartup(context.Background(), zap.New(core),
		[]utils.Task{{Name: "indexes", Run: returning(nil)}},
		[]utils.Task{{Name: "image bucket", Run: returning(errors.New("minio unreachable"))}},
	)

	require.NoError(t, err)
	entries := logs.FilterMessage("Optional start-up task failed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Equal(t, "image bucket", entries[0].ContextMap()["task"])
}
