package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSlogLoggerWritesAttributes(t *testing.T) {
	var buf bytes.Buffer
	logger := New(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	logger.With("contract", "1.0").Error(context.Background(), "status code not recognised", "code", -999)

	out := buf.String()
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, `msg="status code not recognised"`)
	assert.Contains(t, out, "contract=1.0")
	assert.Contains(t, out, "code=-999")
}

func TestNewNilUsesDefault(t *testing.T) {
	require.NotNil(t, New(nil))
	require.NotNil(t, NewZap(nil))
}

func TestZapLoggerConvertsSlogAttr(t *testing.T) {
	core, observed := observer.New(zapcore.DebugLevel)
	logger := NewZap(zap.New(core))

	logger.With("contract", "1.0").Warn(context.Background(), "status has no equivalent code", slog.String("error", "DataCorrupt"), "code", -132)

	entries := observed.All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Equal(t, "status has no equivalent code", entries[0].Message)

	fields := entries[0].ContextMap()
	assert.Equal(t, "1.0", fields["contract"])
	assert.Equal(t, "DataCorrupt", fields["error"])
	assert.EqualValues(t, -132, fields["code"])
}

func TestBuildLevelOff(t *testing.T) {
	for _, backend := range []string{"", BackendSlog, BackendZap} {
		var buf bytes.Buffer
		logger, err := Build(Options{Backend: backend, Level: "OFF", Format: "json"}, &buf)
		require.NoError(t, err, backend)
		assert.Equal(t, Nop(), logger, backend)

		logger = logger.With("contract", "1.0")
		logger.Debug(context.Background(), "x")
		logger.Info(context.Background(), "x")
		logger.Warn(context.Background(), "x")
		logger.Error(context.Background(), "status code not recognised", "code", 1)
		assert.Empty(t, buf.String(), backend)
	}

	_, err := Build(Options{Backend: "logrus", Level: LevelOff}, nil)
	assert.ErrorIs(t, err, ErrInvalidOptions)
}

func TestBuildSlogJSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := Build(Options{Format: "json", Level: "warn"}, &buf)
	require.NoError(t, err)

	logger.Info(context.Background(), "dropped")
	logger.Error(context.Background(), "kept", "code", 7)

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var record map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &record))
	assert.Equal(t, "kept", record["msg"])
	assert.EqualValues(t, 7, record["code"])
}

func TestBuildZapJSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := Build(Options{Backend: "zap", Format: "json", Level: "error"}, &buf)
	require.NoError(t, err)

	logger.Warn(context.Background(), "dropped")
	logger.Error(context.Background(), "kept", "code", -132)

	var record map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &record))
	assert.Equal(t, "kept", record["msg"])
	assert.EqualValues(t, -132, record["code"])
}

func TestBuildRejectsUnknownOptions(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"backend", Options{Backend: "logrus"}},
		{"format", Options{Format: "xml"}},
		{"slog level", Options{Level: "loud"}},
		{"zap level", Options{Backend: "zap", Level: "loud"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			logger, err := Build(tc.opts, &bytes.Buffer{})
			require.ErrorIs(t, err, ErrInvalidOptions)
			assert.Nil(t, logger)
		})
	}
}
