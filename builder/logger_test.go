package builder

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlogAdapter(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogAdapter(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	d := New(WithLogger(logger.With("component", "test")))
	_, err := d.RegisterType(comment{})
	require.NoError(t, err)
	_, err = d.RegisterType(comment{})
	require.NoError(t, err)
	d.Path("/comments/{id}", "")

	out := buf.String()
	assert.Contains(t, out, "registered schema component")
	assert.Contains(t, out, "name=comment")
	assert.Contains(t, out, "name=author")
	assert.Contains(t, out, "schema component already registered")
	assert.Contains(t, out, "created path")
	assert.Contains(t, out, "component=test")
}

func TestSlogAdapter_Levels(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogAdapter(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	logger.Debug("d", "k", 1)
	logger.Info("i")
	logger.Warn("w")
	logger.Error("e")

	out := buf.String()
	assert.Contains(t, out, "level=DEBUG msg=d k=1")
	assert.Contains(t, out, "level=INFO msg=i")
	assert.Contains(t, out, "level=WARN msg=w")
	assert.Contains(t, out, "level=ERROR msg=e")
}

func TestSlogAdapter_NilUsesDefault(t *testing.T) {
	assert.NotNil(t, NewSlogAdapter(nil).logger)
}

func TestNopLogger(t *testing.T) {
	var l Logger = NopLogger{}
	l.Debug("x")
	l.Info("x")
	l.Warn("x")
	l.Error("x")
	assert.Equal(t, NopLogger{}, l.With("k", "v"))
}
