package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ErrInvalidOptions reports an Options value Build cannot satisfy.
var ErrInvalidOptions = errors.New("logging: invalid options")

// Backend names accepted by Options.Backend.
const (
	BackendSlog = "slog"
	BackendZap  = "zap"
)

// LevelOff silences the diagnostic sink entirely.
const LevelOff = "off"

// Format names accepted by Options.Format.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Options selects and tunes a logging backend. Empty fields fall back to
// slog, info and text. Level is a level name of the backend or LevelOff.
type Options struct {
	Backend string `toml:"backend" yaml:"backend"`
	Level   string `toml:"level" yaml:"level"`
	Format  string `toml:"format" yaml:"format"`
}

// Build constructs a Logger writing to w. A nil w writes to os.Stderr.
func Build(opts Options, w io.Writer) (Logger, error) {
	if w == nil {
		w = os.Stderr
	}

	level := strings.ToLower(strings.TrimSpace(opts.Level))
	if level == "" {
		level = "info"
	}
	format := strings.ToLower(strings.TrimSpace(opts.Format))
	if format == "" {
		format = FormatText
	}
	if format != FormatText && format != FormatJSON {
		return nil, fmt.Errorf("%w: unknown format %q", ErrInvalidOptions, opts.Format)
	}

	backend := strings.ToLower(strings.TrimSpace(opts.Backend))
	if backend != "" && backend != BackendSlog && backend != BackendZap {
		return nil, fmt.Errorf("%w: unknown backend %q", ErrInvalidOptions, opts.Backend)
	}
	if level == LevelOff {
		return Nop(), nil
	}

	switch backend {
	case "", BackendSlog:
		return buildSlog(level, format, w)
	default:
		return buildZap(level, format, w)
	}
}

func buildSlog(level, format string, w io.Writer) (Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOptions, err)
	}

	handlerOpts := &slog.HandlerOptions{Level: lvl}
	var handler slog.Handler
	if format == FormatJSON {
		handler = slog.NewJSONHandler(w, handlerOpts)
	} else {
		handler = slog.NewTextHandler(w, handlerOpts)
	}
	return New(slog.New(handler)), nil
}

func buildZap(level, format string, w io.Writer) (Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOptions, err)
	}

	var encoder zapcore.Encoder
	if format == FormatJSON {
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	} else {
		encoder = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(w), lvl)
	return NewZap(zap.New(core)), nil
}
