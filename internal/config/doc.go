// Package config loads, normalizes, and validates mixcut configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. The Config type centralizes every knob the
// CLI and pipeline need: working/output directories, the ffmpeg binary and its
// per-invocation timeout, resolver thresholds, and log output settings.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
