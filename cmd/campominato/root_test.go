package main

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/campominato/internal/logging"
)

func TestDefaultOptionsFromEnv(t *testing.T) {
	t.Setenv("CAMPOMINATO_SEED", "42")
	t.Setenv("CAMPOMINATO_LOG_FILE", "/tmp/mines.log")
	t.Setenv("CAMPOMINATO_LOG_LEVEL", "debug")

	opts := defaultOptions()

	assert.Equal(t, int64(42), opts.seed)
	assert.Equal(t, "/tmp/mines.log", opts.logFile)
	assert.Equal(t, "debug", opts.logLevel)
	assert.False(t, opts.noTelemetry)
}

func TestDefaultOptionsFallbacks(t *testing.T) {
	t.Setenv("CAMPOMINATO_SEED", "not-a-number")
	t.Setenv("CAMPOMINATO_LOG_FILE", "")
	t.Setenv("CAMPOMINATO_LOG_LEVEL", "")

	opts := defaultOptions()

	assert.Zero(t, opts.seed)
	assert.Equal(t, logging.DefaultFile, opts.logFile)
	assert.Equal(t, logging.DefaultLevel, opts.logLevel)
}

func TestRootCmdFlags(t *testing.T) {
	t.Setenv("CAMPOMINATO_SEED", "")

	cmd := newRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--seed", "7", "--log-level", "warn", "--no-telemetry"}))

	seed, err := cmd.Flags().GetInt64("seed")
	require.NoError(t, err)
	assert.Equal(t, int64(7), seed)

	level, err := cmd.Flags().GetString("log-level")
	require.NoError(t, err)
	assert.Equal(t, "warn", level)

	noTelemetry, err := cmd.Flags().GetBool("no-telemetry")
	require.NoError(t, err)
	assert.True(t, noTelemetry)
}

func TestRootCmdRejectsArgs(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"extra"})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)

	assert.Error(t, cmd.Execute())
}
