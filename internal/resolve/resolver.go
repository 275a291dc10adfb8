package resolve

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"mixcut/internal/artwork"
	"mixcut/internal/config"
	"mixcut/internal/ffmpeg"
	"mixcut/internal/ledger"
	"mixcut/internal/logging"
	"mixcut/internal/services"
	"mixcut/internal/source"
	"mixcut/internal/textutil"
	"mixcut/internal/track"
)

// Resolution is the outcome of one resolver attempt. Declining is an expected
// result and carries no error; Accepted distinguishes the two variants.
type Resolution struct {
	Accepted   bool
	OutputPath string
	Candidate  source.Candidate
	Score      float64
}

// Declined is the negative resolution.
func Declined() Resolution {
	return Resolution{}
}

// Resolved builds the positive resolution for an already produced output file.
func Resolved(outputPath string, candidate source.Candidate, score float64) Resolution {
	return Resolution{Accepted: true, OutputPath: outputPath, Candidate: candidate, Score: score}
}

// Resolver tries to satisfy a track with an independently sourced full-length
// version before the segment extractor is consulted. It searches by track
// title, scores candidate titles by similarity, and accepts at or above the
// configured threshold.
type Resolver struct {
	searcher     source.Searcher
	fetcher      source.MediaFetcher
	client       *ffmpeg.Client
	cropper      *artwork.Cropper
	audioExt     string
	limit        int
	threshold    float64
	fetchTimeout time.Duration
	logger       *slog.Logger
}

// New constructs a resolver. A nil searcher or fetcher yields a resolver that
// declines every track, which is how a disabled configuration is expressed.
func New(searcher source.Searcher, fetcher source.MediaFetcher, client *ffmpeg.Client, cropper *artwork.Cropper, cfg config.Resolver, audioExt string, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = logging.NewNop()
	}
	if !cfg.Enabled {
		searcher = nil
		fetcher = nil
	}
	return &Resolver{
		searcher:     searcher,
		fetcher:      fetcher,
		client:       client,
		cropper:      cropper,
		audioExt:     audioExt,
		limit:        cfg.ResultLimit,
		threshold:    cfg.AcceptThreshold,
		fetchTimeout: time.Duration(cfg.FetchTimeout) * time.Second,
		logger:       logger,
	}
}

// Resolve searches for an external version of the track. When the best
// candidate scores at or above the threshold it fetches that candidate's own
// audio and thumbnail into a scope under workDir, crops the thumbnail, and encodes a
// full-length tagged file into outputDir named by the candidate's title.
// Otherwise it declines and the caller falls back to segment extraction.
// Search and fetch failures propagate as errors; they never masquerade as a
// decline.
func (r *Resolver) Resolve(ctx context.Context, t track.Track, workDir, outputDir string) (Resolution, error) {
	if r == nil || r.searcher == nil || r.fetcher == nil {
		return Declined(), nil
	}

	candidates, err := r.searcher.Search(ctx, t.Title, r.limit)
	if err != nil {
		return Declined(), services.Wrap(services.ErrTransient, "resolve", "search", t.Title, err)
	}
	if len(candidates) > r.limit {
		candidates = candidates[:r.limit]
	}

	best, score, ok := pickBest(candidates, t.Title)
	if !ok || score < r.threshold {
		r.logger.Debug("resolver declined",
			"track", t.Title,
			"candidates", len(candidates),
			"best_score", score)
		return Declined(), nil
	}

	// Candidate media gets its own scope under the work directory so the
	// fixed-name cropped cover never clobbers the master's.
	fetchDir := filepath.Join(workDir, "resolve")
	if err := os.MkdirAll(fetchDir, 0o755); err != nil {
		return Declined(), services.Wrap(services.ErrTransient, "resolve", "prepare", fetchDir, err)
	}

	fetchCtx := ctx
	if r.fetchTimeout > 0 {
		var cancel context.CancelFunc
		fetchCtx, cancel = context.WithTimeout(ctx, r.fetchTimeout)
		defer cancel()
	}

	audioPath, err := r.fetcher.FetchAudio(fetchCtx, best, fetchDir)
	if err != nil {
		return Declined(), fetchError(fetchCtx, "fetch audio", best.Title, err)
	}
	thumbnailPath, err := r.fetcher.FetchThumbnail(fetchCtx, best, fetchDir)
	if err != nil {
		return Declined(), fetchError(fetchCtx, "fetch thumbnail", best.Title, err)
	}

	croppedPath, err := r.cropper.Crop(ctx, thumbnailPath, fetchDir)
	if err != nil {
		return Declined(), err
	}

	artist, title := track.SplitTitle(best.Title)
	outputPath := filepath.Join(outputDir, ledger.Key(best.Title)+r.audioExt)
	tags := ffmpeg.Tags{Title: title, Artist: artist}
	if err := r.client.EncodeFull(ctx, audioPath, croppedPath, tags, outputPath); err != nil {
		marker := services.ErrExtraction
		if errors.Is(err, context.DeadlineExceeded) {
			marker = services.ErrTimeout
		}
		return Declined(), services.Wrap(marker, "resolve", "encode", best.Title, err)
	}
	if _, err := os.Stat(outputPath); err != nil {
		return Declined(), services.Wrap(services.ErrExtraction, "resolve", "verify output", best.Title,
			fmt.Errorf("encoder reported success but %s does not exist: %w", outputPath, err))
	}

	r.logger.Info("resolver accepted candidate",
		"track", t.Title,
		"candidate", best.Title,
		"score", score)
	return Resolved(outputPath, best, score), nil
}

// pickBest returns the highest-similarity candidate against the wanted title.
// Ties keep the earlier (higher-ranked) candidate.
func pickBest(candidates []source.Candidate, wanted string) (source.Candidate, float64, bool) {
	var best source.Candidate
	bestScore := -1.0
	for _, candidate := range candidates {
		score := textutil.Ratio(candidate.Title, wanted)
		if score > bestScore {
			best = candidate
			bestScore = score
		}
	}
	if bestScore < 0 {
		return source.Candidate{}, 0, false
	}
	return best, bestScore, true
}

func fetchError(ctx context.Context, op, subject string, err error) error {
	marker := services.ErrTransient
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		marker = services.ErrTimeout
	}
	return services.Wrap(marker, "resolve", op, subject, err)
}
