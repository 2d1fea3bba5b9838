package observability

import (
	"context"
	"log/slog"
	"os"
)

type ctxKey string

const (
	ctxKeyRequestID ctxKey = "request_id"
	ctxKeyWorkflow  ctxKey = "workflow"
)

// global logger, JSON to stdout; every service logs through here.
var logger = slog.New(slog.NewJSONHandler(os.Stdout, nil))

func Logger() *slog.Logger {
	return logger
}

// WithFields returns a logger with additional fields.
func WithFields(kv ...any) *slog.Logger {
	return logger.With(kv...)
}

// WithRequestID stores a request_id in the context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ctxKeyRequestID, requestID)
}

// WithWorkflow tags the context with the workflow being executed so that
// nested calls (LLM client, extractor) log under the same workflow name.
func WithWorkflow(ctx context.Context, workflow string) context.Context {
	return context.WithValue(ctx, ctxKeyWorkflow, workflow)
}

// LoggerFromContext returns the global logger enriched with request_id and
// workflow when present in the context.
func LoggerFromContext(ctx context.Context) *slog.Logger {
	log := logger
	if reqID, _ := ctx.Value(ctxKeyRequestID).(string); reqID != "" {
		log = log.With("request_id", reqID)
	}
	if wf, _ := ctx.Value(ctxKeyWorkflow).(string); wf != "" {
		log = log.With("workflow", wf)
	}
	return log
}
