package resolve

import (
	"context"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mixcut/internal/artwork"
	"mixcut/internal/config"
	"mixcut/internal/ffmpeg"
	"mixcut/internal/services"
	"mixcut/internal/source"
	"mixcut/internal/testsupport"
	"mixcut/internal/track"
)

type fakeSearcher struct {
	candidates []source.Candidate
	err        error
	queries    []string
}

func (f *fakeSearcher) Search(_ context.Context, query string, _ int) ([]source.Candidate, error) {
	f.queries = append(f.queries, query)
	return f.candidates, f.err
}

// fakeFetcher writes a real decodable thumbnail so the cropper can read its
// dimensions, and a placeholder audio file.
type fakeFetcher struct {
	fetched []string
}

func (f *fakeFetcher) FetchAudio(_ context.Context, candidate source.Candidate, destDir string) (string, error) {
	f.fetched = append(f.fetched, "audio:"+candidate.Title)
	path := filepath.Join(destDir, "candidate_audio.mp3")
	return path, os.WriteFile(path, []byte("mp3"), 0o644)
}

func (f *fakeFetcher) FetchThumbnail(_ context.Context, candidate source.Candidate, destDir string) (string, error) {
	f.fetched = append(f.fetched, "thumb:"+candidate.Title)
	path := filepath.Join(destDir, "candidate_thumb.png")
	return path, writePNG(path, 1200, 800)
}

func writePNG(path string, width, height int) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()
	return png.Encode(out, image.NewRGBA(image.Rect(0, 0, width, height)))
}

type producingExecutor struct {
	calls [][]string
	err   error
}

func (p *producingExecutor) Run(_ context.Context, binary string, args []string) (string, error) {
	p.calls = append(p.calls, append([]string{binary}, args...))
	if p.err != nil {
		return "tool output", p.err
	}
	return "", os.WriteFile(args[len(args)-1], []byte("out"), 0o644)
}

func newTestResolver(t *testing.T, searcher source.Searcher, fetcher source.MediaFetcher, exec ffmpeg.Executor, threshold float64) *Resolver {
	t.Helper()
	client, err := ffmpeg.New("ffmpeg", 10, ffmpeg.WithExecutor(exec))
	if err != nil {
		t.Fatalf("ffmpeg.New: %v", err)
	}
	cfg := testsupport.NewConfig(t, testsupport.WithResolver(threshold))
	return New(searcher, fetcher, client, artwork.NewCropper(client, "cover_16x9.jpg"), cfg.Resolver, ".mp3", nil)
}

func TestResolveAcceptsStrongCandidate(t *testing.T) {
	workDir := t.TempDir()
	outputDir := t.TempDir()
	searcher := &fakeSearcher{candidates: []source.Candidate{
		{Title: "Other Thing Entirely", Ref: "r1"},
		{Title: "Artist - Song A", Ref: "r2"},
	}}
	fetcher := &fakeFetcher{}
	exec := &producingExecutor{}
	resolver := newTestResolver(t, searcher, fetcher, exec, 0.6)

	res, err := resolver.Resolve(context.Background(), track.Track{Title: "Artist - Song A", Start: 0, Duration: 30}, workDir, outputDir)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if !res.Accepted {
		t.Fatal("expected acceptance")
	}
	if res.Candidate.Ref != "r2" {
		t.Fatalf("picked wrong candidate: %+v", res.Candidate)
	}
	want := filepath.Join(outputDir, "Artist - Song A.mp3")
	if res.OutputPath != want {
		t.Fatalf("OutputPath = %q, want %q", res.OutputPath, want)
	}
	if _, err := os.Stat(want); err != nil {
		t.Fatalf("output file missing: %v", err)
	}

	// Two tool runs: the crop and the full-length encode. The encode carries
	// tags derived from the candidate's own title and no time range.
	if len(exec.calls) != 2 {
		t.Fatalf("expected 2 tool invocations, got %d", len(exec.calls))
	}
	crop := strings.Join(exec.calls[0], " ")
	if !strings.Contains(crop, "crop=1200:675:0:62") {
		t.Fatalf("expected crop filter in %q", crop)
	}
	encode := strings.Join(exec.calls[1], " ")
	if !strings.Contains(encode, "title=Song A") || !strings.Contains(encode, "artist=Artist") {
		t.Fatalf("expected candidate-derived tags in %q", encode)
	}
	if strings.Contains(encode, "-ss") || strings.Contains(encode, "-t ") {
		t.Fatalf("full-length encode must not carry a time range: %q", encode)
	}
}

func TestResolveThresholdBoundary(t *testing.T) {
	// Ratio("abcxy", "abcde") = 2*3/(5+5) = 0.6 exactly.
	tests := []struct {
		name      string
		candidate string
		accepted  bool
	}{
		{"exact threshold accepted", "abcxy", true},
		{"below threshold declined", "abxyz", false}, // ratio 0.4
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			searcher := &fakeSearcher{candidates: []source.Candidate{{Title: tt.candidate}}}
			resolver := newTestResolver(t, searcher, &fakeFetcher{}, &producingExecutor{}, 0.6)

			res, err := resolver.Resolve(context.Background(), track.Track{Title: "abcde", Duration: 10},
				t.TempDir(), t.TempDir())
			if err != nil {
				t.Fatalf("Resolve returned error: %v", err)
			}
			if res.Accepted != tt.accepted {
				t.Fatalf("Accepted = %v (score %v), want %v", res.Accepted, res.Score, tt.accepted)
			}
		})
	}
}

func TestResolveDeclinesWithoutCandidates(t *testing.T) {
	resolver := newTestResolver(t, &fakeSearcher{}, &fakeFetcher{}, &producingExecutor{}, 0.6)
	res, err := resolver.Resolve(context.Background(), track.Track{Title: "Song", Duration: 10},
		t.TempDir(), t.TempDir())
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if res.Accepted {
		t.Fatal("expected decline for empty search result")
	}
}

func TestResolveDisabledAlwaysDeclines(t *testing.T) {
	searcher := &fakeSearcher{candidates: []source.Candidate{{Title: "Song"}}}
	client, err := ffmpeg.New("ffmpeg", 10, ffmpeg.WithExecutor(&producingExecutor{}))
	if err != nil {
		t.Fatalf("ffmpeg.New: %v", err)
	}
	cfg := config.Resolver{Enabled: false, ResultLimit: 5, AcceptThreshold: 0.6}
	resolver := New(searcher, &fakeFetcher{}, client, artwork.NewCropper(client, ""), cfg, ".mp3", nil)

	res, err := resolver.Resolve(context.Background(), track.Track{Title: "Song", Duration: 10},
		t.TempDir(), t.TempDir())
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if res.Accepted {
		t.Fatal("disabled resolver must decline")
	}
	if len(searcher.queries) != 0 {
		t.Fatal("disabled resolver must not search")
	}
}

func TestResolveSearchFailurePropagates(t *testing.T) {
	searcher := &fakeSearcher{err: errors.New("connection refused")}
	resolver := newTestResolver(t, searcher, &fakeFetcher{}, &producingExecutor{}, 0.6)

	_, err := resolver.Resolve(context.Background(), track.Track{Title: "Song", Duration: 10},
		t.TempDir(), t.TempDir())
	if !errors.Is(err, services.ErrTransient) {
		t.Fatalf("expected ErrTransient, got %v", err)
	}
	if !services.Retryable(err) {
		t.Fatal("search failure should be retryable")
	}
}

func TestResolveEncodeFailureClassified(t *testing.T) {
	searcher := &fakeSearcher{candidates: []source.Candidate{{Title: "Song"}}}
	resolver := newTestResolver(t, searcher, &fakeFetcher{}, &producingExecutor{err: errors.New("exit status 1")}, 0.6)

	_, err := resolver.Resolve(context.Background(), track.Track{Title: "Song", Duration: 10},
		t.TempDir(), t.TempDir())
	if !errors.Is(err, services.ErrCropTool) {
		t.Fatalf("expected ErrCropTool from failing crop step, got %v", err)
	}
}
