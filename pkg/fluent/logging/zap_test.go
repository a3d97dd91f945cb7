package logging

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ib-77/fluent/pkg/fluent/chain"
	"github.com/ib-77/fluent/pkg/fluent/config"
)

func observed(t *testing.T) (*config.Configuration, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	cfg := Install(config.Instance("logging/"+t.Name()), zap.New(core))
	return cfg, logs
}

func TestInstall_EnablesLogging(t *testing.T) {
	t.Parallel()

	cfg, _ := observed(t)
	assert.True(t, cfg.Logging())
	assert.NotNil(t, cfg.InfoLogger())
	assert.NotNil(t, cfg.ErrorLogger())
	assert.NotNil(t, cfg.ExceptionLogger())
}

func TestLoggers_WriteThroughZap(t *testing.T) {
	t.Parallel()

	cfg, logs := observed(t)
	boom := errors.New("boom")

	chain.LetWith(cfg, 3).
		Log("calc").Info("started").
		Log("calc").Error("slow").
		Log("calc").Exception(boom)

	entries := logs.All()
	require.Len(t, entries, 3)

	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "started", entries[0].Message)
	assert.Equal(t, "calc", entries[0].ContextMap()["tag"])

	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Equal(t, "slow", entries[1].Message)

	assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)
	assert.Equal(t, "failure", entries[2].Message)
	assert.Equal(t, "boom", entries[2].ContextMap()["error"])
}

func TestGuard_ReportsThroughZap(t *testing.T) {
	t.Parallel()

	cfg, logs := observed(t)
	chain.LetWith(cfg, 0).Guard(func(int) error { return errors.New("guarded") })

	found := logs.FilterField(zap.String("tag", chain.GuardTag)).All()
	require.Len(t, found, 1)
	assert.Equal(t, "guarded", found[0].ContextMap()["error"])
}
