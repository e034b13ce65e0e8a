package iterables

import (
	"context"
	"log/slog"
)

type ContextKey string

const (
	LoggerContextKey           ContextKey = "logger"
	ExecutionContextContextKey ContextKey = "execution_context"
)

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, LoggerContextKey, logger)
}

func WithExecutionContext(ctx context.Context, execContext ExecutionContext) context.Context {
	return context.WithValue(ctx, ExecutionContextContextKey, execContext)
}

func GetLoggerFromContext(ctx context.Context) (*slog.Logger, bool) {
	logger, ok := ctx.Value(LoggerContextKey).(*slog.Logger)
	return logger, ok
}

func GetExecutionContextFromContext(ctx context.Context) (ExecutionContext, bool) {
	execContext, ok := ctx.Value(ExecutionContextContextKey).(ExecutionContext)
	return execContext, ok
}
