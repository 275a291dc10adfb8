package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeSplit()
	c.normalizeResolver()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if c.Paths.WorkDir, err = expandPath(c.Paths.WorkDir); err != nil {
		return fmt.Errorf("paths.work_dir: %w", err)
	}
	if c.Paths.OutputDir, err = expandPath(c.Paths.OutputDir); err != nil {
		return fmt.Errorf("paths.output_dir: %w", err)
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeSplit() {
	c.Split.FFmpegBinary = strings.TrimSpace(c.Split.FFmpegBinary)
	if c.Split.FFmpegBinary == "" {
		c.Split.FFmpegBinary = defaultFFmpegBinary
	}
	c.Split.CoverFileName = strings.TrimSpace(c.Split.CoverFileName)
	if c.Split.CoverFileName == "" {
		c.Split.CoverFileName = defaultCoverFileName
	}
	c.Split.AudioExtension = strings.TrimSpace(c.Split.AudioExtension)
	if c.Split.AudioExtension == "" {
		c.Split.AudioExtension = defaultAudioExtension
	}
	if !strings.HasPrefix(c.Split.AudioExtension, ".") {
		c.Split.AudioExtension = "." + c.Split.AudioExtension
	}
}

func (c *Config) normalizeResolver() {
	if c.Resolver.ResultLimit == 0 {
		c.Resolver.ResultLimit = defaultResolverResultLimit
	}
	if c.Resolver.FetchTimeout == 0 {
		c.Resolver.FetchTimeout = defaultResolverFetchTimeout
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
