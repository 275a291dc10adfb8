package extract

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"mixcut/internal/ffmpeg"
	"mixcut/internal/ledger"
	"mixcut/internal/services"
	"mixcut/internal/track"
)

// Extractor cuts a timed slice out of the master audio and writes it as a
// tagged MP3. The output filename always uses the pre-split track title so the
// ledger and the directory agree on the same key; the derived artist/title
// pair only lands in the tags.
type Extractor struct {
	client   *ffmpeg.Client
	audioExt string
}

// NewExtractor constructs an extractor producing files with the given
// extension.
func NewExtractor(client *ffmpeg.Client, audioExt string) *Extractor {
	if audioExt == "" {
		audioExt = ".mp3"
	}
	return &Extractor{client: client, audioExt: audioExt}
}

// OutputPath returns the file the extractor would produce for a track.
func (e *Extractor) OutputPath(outputDir string, t track.Track) string {
	return filepath.Join(outputDir, ledger.Key(t.Title)+e.audioExt)
}

// Extract produces the tagged segment file and returns its path. A non-zero
// tool exit always surfaces as an extraction failure carrying the exit
// status; a path is only returned for a file that exists.
func (e *Extractor) Extract(ctx context.Context, masterAudioPath string, t track.Track, artworkPath, outputDir string) (string, error) {
	artist, title := track.SplitTitle(t.Title)
	outputPath := e.OutputPath(outputDir, t)

	spec := ffmpeg.SegmentSpec{
		AudioPath:   masterAudioPath,
		ArtworkPath: artworkPath,
		Start:       t.Start,
		Duration:    t.Duration,
		Tags:        ffmpeg.Tags{Title: title, Artist: artist},
		OutputPath:  outputPath,
	}
	if err := e.client.ExtractSegment(ctx, spec); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", services.Wrap(services.ErrTimeout, "extractor", "cut", t.Title, err)
		}
		return "", services.Wrap(services.ErrExtraction, "extractor", "cut", t.Title, err)
	}

	if _, err := os.Stat(outputPath); err != nil {
		return "", services.Wrap(services.ErrExtraction, "extractor", "verify", t.Title,
			fmt.Errorf("tool reported success but %s is missing: %w", outputPath, err))
	}
	return outputPath, nil
}
