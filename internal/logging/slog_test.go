package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func newBufferLogger(level slog.Level) (*SlogLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: level})
	return NewSlogLogger(slog.New(h)), &buf
}

func TestSlogLogger_WritesAttributes(t *testing.T) {
	log, buf := newBufferLogger(slog.LevelDebug)
	ctx := context.Background()

	log.Debug(ctx, "request sent", "method", "GET", "url", "http://x/y")
	out := buf.String()
	require.Contains(t, out, "request sent")
	require.Contains(t, out, "method=GET")
	require.Contains(t, out, "url=http://x/y")
}

func TestSlogLogger_WithAddsContext(t *testing.T) {
	log, buf := newBufferLogger(slog.LevelInfo)

	child := log.With("component", "api")
	child.Info(context.Background(), "hello")
	require.Contains(t, buf.String(), "component=api")
}

func TestSlogLogger_LevelFiltering(t *testing.T) {
	log, buf := newBufferLogger(slog.LevelInfo)

	log.Debug(context.Background(), "hidden")
	require.Empty(t, buf.String())

	log.Warn(context.Background(), "visible")
	require.Contains(t, buf.String(), "visible")
}

func TestParseLevel(t *testing.T) {
	require.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	require.Equal(t, slog.LevelError, ParseLevel("ERROR"))
	require.Equal(t, slog.LevelInfo, ParseLevel("bogus"))
}
