package main

import (
	"log/slog"
	"strings"
	"sync"

	"mixcut/internal/artwork"
	"mixcut/internal/config"
	"mixcut/internal/extract"
	"mixcut/internal/ffmpeg"
	"mixcut/internal/ledger"
	"mixcut/internal/logging"
	"mixcut/internal/resolve"
	"mixcut/internal/splitter"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// buildSplitter assembles the full pipeline from configuration. The resolver
// runs with no search collaborator wired, so it declines every track and the
// pipeline extracts from the master recording; a collaborator binary or
// embedding service supplies Searcher and MediaFetcher implementations.
func (c *commandContext) buildSplitter(cfg *config.Config, logger *slog.Logger) (*splitter.Splitter, error) {
	client, err := ffmpeg.New(cfg.Split.FFmpegBinary, cfg.Split.ToolTimeout)
	if err != nil {
		return nil, err
	}
	cropper := artwork.NewCropper(client, cfg.Split.CoverFileName)
	resolver := resolve.New(nil, nil, client, cropper, cfg.Resolver, cfg.Split.AudioExtension, logger)
	extractor := extract.NewExtractor(client, cfg.Split.AudioExtension)
	repo := ledger.NewRepository(cfg.Split.AudioExtension)
	return splitter.New(client, repo, cropper, resolver, extractor, logger), nil
}

func (c *commandContext) buildLogger(cfg *config.Config) *slog.Logger {
	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		return logging.NewNop()
	}
	return logger
}
