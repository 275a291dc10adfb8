package extract

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mixcut/internal/ffmpeg"
	"mixcut/internal/services"
	"mixcut/internal/track"
)

// producingExecutor mimics a successful tool run by creating the output file
// named by the final argument.
type producingExecutor struct {
	calls [][]string
	err   error
	skip  bool // succeed without creating the output file
}

func (p *producingExecutor) Run(ctx context.Context, binary string, args []string) (string, error) {
	p.calls = append(p.calls, append([]string{binary}, args...))
	if p.err != nil {
		return "tool output", p.err
	}
	if !p.skip {
		if err := os.WriteFile(args[len(args)-1], []byte("mp3"), 0o644); err != nil {
			return "", err
		}
	}
	return "", nil
}

func newTestExtractor(t *testing.T, exec ffmpeg.Executor) *Extractor {
	t.Helper()
	client, err := ffmpeg.New("ffmpeg", 10, ffmpeg.WithExecutor(exec))
	if err != nil {
		t.Fatalf("ffmpeg.New: %v", err)
	}
	return NewExtractor(client, ".mp3")
}

func TestExtractNamesFileByPreSplitTitle(t *testing.T) {
	dir := t.TempDir()
	exec := &producingExecutor{}
	extractor := newTestExtractor(t, exec)

	tr := track.Track{Title: " Artist - Song Name ", Start: 30, Duration: 45}
	got, err := extractor.Extract(context.Background(), "/tmp/audio.mp3", tr, "/tmp/cover.jpg", dir)
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}

	// File keyed by the whole trimmed title, tags by the derived split.
	want := filepath.Join(dir, "Artist - Song Name.mp3")
	if got != want {
		t.Fatalf("Extract path = %q, want %q", got, want)
	}
	args := strings.Join(exec.calls[0], " ")
	if !strings.Contains(args, "title=Song Name") || !strings.Contains(args, "artist=Artist") {
		t.Fatalf("expected derived tags in %q", args)
	}
	if !strings.Contains(args, "-ss 30 -t 45") {
		t.Fatalf("expected time range in %q", args)
	}
}

func TestExtractSoloTitleTagsArtistAndTitleEqually(t *testing.T) {
	dir := t.TempDir()
	exec := &producingExecutor{}
	extractor := newTestExtractor(t, exec)

	_, err := extractor.Extract(context.Background(), "/tmp/audio.mp3",
		track.Track{Title: "SoloTitle", Duration: 10}, "/tmp/cover.jpg", dir)
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	args := strings.Join(exec.calls[0], " ")
	if !strings.Contains(args, "title=SoloTitle") || !strings.Contains(args, "artist=SoloTitle") {
		t.Fatalf("expected solo title used for both tags in %q", args)
	}
}

func TestExtractClassifiesToolFailure(t *testing.T) {
	dir := t.TempDir()
	exec := &producingExecutor{err: errors.New("exit status 1")}
	extractor := newTestExtractor(t, exec)

	_, err := extractor.Extract(context.Background(), "/tmp/audio.mp3",
		track.Track{Title: "Song", Duration: 10}, "/tmp/cover.jpg", dir)
	if !errors.Is(err, services.ErrExtraction) {
		t.Fatalf("expected ErrExtraction, got %v", err)
	}
}

func TestExtractRejectsMissingOutput(t *testing.T) {
	dir := t.TempDir()
	exec := &producingExecutor{skip: true}
	extractor := newTestExtractor(t, exec)

	_, err := extractor.Extract(context.Background(), "/tmp/audio.mp3",
		track.Track{Title: "Song", Duration: 10}, "/tmp/cover.jpg", dir)
	if !errors.Is(err, services.ErrExtraction) {
		t.Fatalf("expected ErrExtraction for missing output, got %v", err)
	}
}
