package logger

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type failingHandler struct{ slog.Handler }

func (failingHandler) Handle(context.Context, slog.Record) error { return errors.New("sink down") }

func TestFanout(t *testing.T) {
	t.Parallel()

	var warnOnly, all bytes.Buffer
	h := fanout{
		slog.NewJSONHandler(&warnOnly, &slog.HandlerOptions{Level: slog.LevelWarn}),
		failingHandler{slog.NewJSONHandler(&bytes.Buffer{}, nil)},
		slog.NewJSONHandler(&all, &slog.HandlerOptions{Level: slog.LevelDebug}),
	}
	log := slog.New(h).With("component", "test")

	require.True(t, h.Enabled(context.Background(), slog.LevelDebug))

	log.Debug("debug")
	require.Empty(t, warnOnly.String())
	require.Contains(t, all.String(), `"msg":"debug"`)

	err := h.Handle(context.Background(), slog.NewRecord(testTime, slog.LevelWarn, "warn", 0))
	require.EqualError(t, err, "sink down")
	require.Contains(t, warnOnly.String(), `"msg":"warn"`)
	require.Contains(t, all.String(), `"msg":"warn"`)
	require.Contains(t, all.String(), `"component":"test"`)
}

var testTime = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
