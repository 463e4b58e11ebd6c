package logger

import (
	"context"
	"log/slog"
	"os"

	"go-form-relay/internal/domain"
)

// Log is replaced by Init; until then it writes through slog's default handler.
var Log = slog.Default()

func Init(level slog.Level) {
	// JSON handler for production-ready logging
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})
	Log = slog.New(handler)
}

// FromContext returns Log annotated with the request ID carried by ctx, if any.
func FromContext(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return Log
	}
	if id, ok := ctx.Value(domain.KeyRequestID).(string); ok && id != "" {
		return Log.With("request_id", id)
	}
	return Log
}
