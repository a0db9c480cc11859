package logger

import (
	"context"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func New() *zap.SugaredLogger {
	var (
		logger *zap.Logger
		err    error
	)
	opts := []zap.Option{
		zap.AddStacktrace(zap.ErrorLevel),
	}

	env := os.Getenv("APP_ENV")
	switch strings.ToLower(env) {
	case "dev", "test":
		logger, err = zap.NewDevelopment(opts...)
	default:
		opts = append(opts, zap.Fields(zap.Field{
			Key:    "APP_ENV",
			Type:   zapcore.StringType,
			String: env,
		}))
		logger, err = zap.NewProduction(opts...)
	}

	if err != nil {
		panic(fmt.Errorf("failed to initialize logger: %w", err))
	}

	return logger.Sugar()
}

type contextKey struct{}

// ContextKey is the context key under which the request logger lives.
var ContextKey = contextKey{}

func WithContext(ctx context.Context, log *zap.SugaredLogger) context.Context {
	return context.WithValue(ctx, ContextKey, log)
}

// FromContext returns the logger stored in ctx, falling back to the
// global logger when none was attached.
func FromContext(ctx context.Context) *zap.SugaredLogger {
	if ctx != nil {
		if log, ok := ctx.Value(ContextKey).(*zap.SugaredLogger); ok && log != nil {
			return log
		}
	}
	return zap.S()
}

func init() {
	logger := New()
	zap.ReplaceGlobals(logger.Desugar())
}
