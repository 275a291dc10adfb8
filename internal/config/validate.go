package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateSplit(); err != nil {
		return err
	}
	if err := c.validateResolver(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if c.Paths.WorkDir == "" {
		return errors.New("paths.work_dir must be set")
	}
	if c.Paths.OutputDir == "" {
		return errors.New("paths.output_dir must be set")
	}
	if c.Paths.WorkDir == c.Paths.OutputDir {
		return errors.New("paths.work_dir and paths.output_dir must differ")
	}
	return nil
}

func (c *Config) validateSplit() error {
	if c.Split.ToolTimeout <= 0 {
		return errors.New("split.tool_timeout must be positive")
	}
	return nil
}

func (c *Config) validateResolver() error {
	if c.Resolver.AcceptThreshold < 0 || c.Resolver.AcceptThreshold > 1 {
		return errors.New("resolver.accept_threshold must be between 0 and 1")
	}
	if c.Resolver.ResultLimit < 1 {
		return errors.New("resolver.result_limit must be at least 1")
	}
	if c.Resolver.FetchTimeout <= 0 {
		return errors.New("resolver.fetch_timeout must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
