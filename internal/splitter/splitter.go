package splitter

import (
	"context"
	"fmt"
	"log/slog"

	"mixcut/internal/artwork"
	"mixcut/internal/extract"
	"mixcut/internal/ffmpeg"
	"mixcut/internal/ledger"
	"mixcut/internal/logging"
	"mixcut/internal/resolve"
	"mixcut/internal/services"
	"mixcut/internal/source"
	"mixcut/internal/track"
)

// Splitter sequences the full split pipeline for one job: reconcile the
// chapter list, drop already-produced titles via the ledger, crop the master
// thumbnail once, then produce each remaining track through the resolver or
// the segment extractor. The pipeline is synchronous; a failure on any track
// aborts the batch.
type Splitter struct {
	client    *ffmpeg.Client
	ledger    *ledger.Repository
	cropper   *artwork.Cropper
	resolver  *resolve.Resolver
	extractor *extract.Extractor
	logger    *slog.Logger
}

// New wires the pipeline stages together.
func New(client *ffmpeg.Client, repo *ledger.Repository, cropper *artwork.Cropper, resolver *resolve.Resolver, extractor *extract.Extractor, logger *slog.Logger) *Splitter {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Splitter{
		client:    client,
		ledger:    repo,
		cropper:   cropper,
		resolver:  resolver,
		extractor: extractor,
		logger:    logger,
	}
}

// Split runs the pipeline over already-acquired media and returns the
// produced file paths in processing order. Callers targeting the same output
// directory are serialized by the ledger's advisory lock; distinct output
// directories are safe to process concurrently.
func (s *Splitter) Split(ctx context.Context, media source.Media, workDir, outputDir string) ([]string, error) {
	if !s.client.Available() {
		return nil, services.Wrap(services.ErrToolUnavailable, "splitter", "preflight", s.client.Binary(),
			fmt.Errorf("%s not found on PATH", s.client.Binary()))
	}

	tracks := track.Reconcile(media.Chapters)
	remaining, err := s.ledger.FilterUnprocessed(outputDir, tracks)
	if err != nil {
		return nil, err
	}
	s.logger.Info("split plan ready",
		"chapters", len(media.Chapters),
		"reconciled", len(tracks),
		"remaining", len(remaining))
	if len(remaining) == 0 {
		return nil, nil
	}

	if media.ThumbnailPath == "" {
		return nil, services.Wrap(services.ErrInvalidSource, "splitter", "thumbnail", media.AudioPath,
			fmt.Errorf("source provides no thumbnail"))
	}
	croppedThumbnail, err := s.cropper.Crop(ctx, media.ThumbnailPath, workDir)
	if err != nil {
		return nil, err
	}

	produced := make([]string, 0, len(remaining))
	for _, t := range remaining {
		trackCtx := services.WithTrack(ctx, t.Title)

		resolution, err := s.resolver.Resolve(trackCtx, t, workDir, outputDir)
		if err != nil {
			return nil, err
		}
		if resolution.Accepted {
			produced = append(produced, resolution.OutputPath)
			continue
		}

		path, err := s.extractor.Extract(trackCtx, media.AudioPath, t, croppedThumbnail, outputDir)
		if err != nil {
			return nil, err
		}
		produced = append(produced, path)
	}

	s.logger.Info("split complete", "produced", len(produced), "output_dir", outputDir)
	return produced, nil
}

// Process acquires media through the downloader and splits it. This is the
// one-call entry point the CLI and job runner use.
func (s *Splitter) Process(ctx context.Context, downloader source.Downloader, sourceID, workDir, outputDir string) ([]string, error) {
	media, err := downloader.Download(ctx, sourceID, workDir)
	if err != nil {
		return nil, err
	}
	return s.Split(ctx, media, workDir, outputDir)
}
