// Package services defines shared utilities consumed across the splitting
// pipeline.
//
// Key responsibilities:
//   - Structured error markers plus the Wrap helper so every failure carries
//     its component, operation, and classification for the caller to act on.
//   - Context helpers that stamp job IDs, component names, and track titles
//     for logging.
//
// A resolver decline is deliberately not part of the error taxonomy: it is an
// expected outcome, modeled as a value in internal/resolve.
package services
