package logging

import (
	"context"
	"log/slog"

	"go.uber.org/zap"
)

// NewZap returns a Logger backed by the provided zap.Logger. Passing nil
// yields a no-op zap logger.
//
// Arguments follow the slog convention of alternating keys and values;
// slog.Attr values are converted to zap fields.
func NewZap(logger *zap.Logger) Logger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &zapLogger{logger: logger.Sugar()}
}

type zapLogger struct {
	logger *zap.SugaredLogger
}

func (l *zapLogger) Debug(_ context.Context, msg string, args ...any) {
	l.logger.Debugw(msg, zapArgs(args)...)
}

func (l *zapLogger) Info(_ context.Context, msg string, args ...any) {
	l.logger.Infow(msg, zapArgs(args)...)
}

func (l *zapLogger) Warn(_ context.Context, msg string, args ...any) {
	l.logger.Warnw(msg, zapArgs(args)...)
}

func (l *zapLogger) Error(_ context.Context, msg string, args ...any) {
	l.logger.Errorw(msg, zapArgs(args)...)
}

func (l *zapLogger) With(args ...any) Logger {
	return &zapLogger{logger: l.logger.With(zapArgs(args)...)}
}

func zapArgs(args []any) []any {
	out := make([]any, 0, len(args))
	for _, arg := range args {
		if attr, ok := arg.(slog.Attr); ok {
			out = append(out, zap.Any(attr.Key, attr.Value.Resolve().Any()))
			continue
		}
		out = append(out, arg)
	}
	return out
}
