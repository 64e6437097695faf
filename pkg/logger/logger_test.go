package logger_test

import (
	"context"
	"coursesearch/pkg/logger"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name        string
		environment string
		level       string
		want        zapcore.Level
	}{
		{name: "development defaults to debug", environment: logger.DevelopmentEnvironment, want: zap.DebugLevel},
		{name: "production defaults to info", environment: logger.ProductionEnvironment, want: zap.InfoLevel},
		{name: "level overrides environment", environment: logger.DevelopmentEnvironment, level: "warn", want: zap.WarnLevel},
		{name: "empty level keeps default", environment: logger.ProductionEnvironment, level: "", want: zap.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, logger.Setup(tt.environment, tt.level))
			require.Equal(t, tt.want, logger.Get(context.Background()).Level())
		})
	}

	require.Error(t, logger.Setup(logger.ProductionEnvironment, "loud"))
}

func TestGet_PrefersContextLogger(t *testing.T) {
	require.NoError(t, logger.Setup(logger.DevelopmentEnvironment))

	core, _ := observer.New(zap.InfoLevel)
	custom := zap.New(core)

	require.NotNil(t, logger.Get(context.Background()))
	require.Same(t, custom, logger.Get(logger.WithLogger(context.Background(), custom)))
}

func TestWithFields_AreCarried(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	ctx = logger.WithFields(ctx, zap.String("run_id", "run-1"))
	ctx = logger.WithFields(ctx, zap.String("endpoint", "courses/12/quizzes"))
	logger.Warn(ctx, "harvest fetch failed", zap.Int("status", 403))

	entries := logs.FilterMessage("harvest fetch failed").All()
	require.Len(t, entries, 1)
	require.Equal(t, zap.WarnLevel, entries[0].Level)

	fields := entries[0].ContextMap()
	require.Equal(t, "run-1", fields["run_id"])
	require.Equal(t, "courses/12/quizzes", fields["endpoint"])
	require.EqualValues(t, 403, fields["status"])
}

func TestIsDebug(t *testing.T) {
	debugCore, _ := observer.New(zap.DebugLevel)
	infoCore, _ := observer.New(zap.InfoLevel)

	require.True(t, logger.IsDebug(logger.WithLogger(context.Background(), zap.New(debugCore))))
	require.False(t, logger.IsDebug(logger.WithLogger(context.Background(), zap.New(infoCore))))
}

func TestLevels(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	logger.Debug(ctx, "debug")
	logger.Info(ctx, "info")
	logger.Warn(ctx, "warn")
	logger.Error(ctx, "error")

	require.Equal(t, 3, logs.Len())
	require.Zero(t, logs.FilterMessage("debug").Len())
}
