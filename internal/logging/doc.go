// Package logging assembles the structured slog loggers used across mixcut.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes a context-aware helper so pipeline code automatically
// tags log lines with job IDs and track titles. A no-op logger is provided for
// tests and wiring code that cannot fail.
package logging
