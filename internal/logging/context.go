package logging

import (
	"context"
	"log/slog"

	"mixcut/internal/services"
)

// WithContext returns the logger enriched with any job, component, or track
// annotations carried by the context.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil || ctx == nil {
		return logger
	}
	if id, ok := services.JobIDFromContext(ctx); ok {
		logger = logger.With(slog.String("job_id", id))
	}
	if component, ok := services.ComponentFromContext(ctx); ok {
		logger = logger.With(slog.String("component", component))
	}
	if title, ok := services.TrackFromContext(ctx); ok {
		logger = logger.With(slog.String("track", title))
	}
	return logger
}
