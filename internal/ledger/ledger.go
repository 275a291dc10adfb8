package ledger

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"

	"mixcut/internal/services"
	"mixcut/internal/textutil"
	"mixcut/internal/track"
)

const (
	recordFileName = ".mixcut_processed"
	lockFileName   = ".mixcut_processed.lock"
)

// Repository manages processed-title records, one per output directory. Each
// record is a UTF-8 text file with one title per line, newline-terminated and
// append-only. Titles are keyed exactly like output basenames (trimmed and
// sanitized) so the record and the files in the directory always agree.
//
// Every operation runs under a per-directory advisory file lock, so distinct
// invocations sharing an output directory serialize instead of racing.
type Repository struct {
	audioExt string
}

// NewRepository returns a repository that seeds absent records from files
// carrying the given audio extension (e.g. ".mp3").
func NewRepository(audioExt string) *Repository {
	audioExt = strings.TrimSpace(audioExt)
	if audioExt == "" {
		audioExt = ".mp3"
	}
	if !strings.HasPrefix(audioExt, ".") {
		audioExt = "." + audioExt
	}
	return &Repository{audioExt: audioExt}
}

// Key converts a track title to its ledger key, which is also the output
// basename the extractor will use.
func Key(title string) string {
	return textutil.SanitizeFileName(strings.TrimSpace(title))
}

// FilterUnprocessed returns the subset of tracks whose titles are not yet in
// the directory's record, preserving input order, and immediately claims the
// returned titles by appending them. The claim happens before extraction, so
// a failed run can leave entries for titles never produced; Repair rebuilds
// the record from the files actually present.
func (r *Repository) FilterUnprocessed(dir string, tracks []track.Track) ([]track.Track, error) {
	lock, err := r.acquire(dir)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = lock.Unlock()
	}()

	seen, err := r.loadLocked(dir)
	if err != nil {
		return nil, err
	}

	remaining := make([]track.Track, 0, len(tracks))
	claims := make([]string, 0, len(tracks))
	for _, t := range tracks {
		key := Key(t.Title)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		remaining = append(remaining, t)
		claims = append(claims, key)
	}

	if len(claims) > 0 {
		if err := r.appendLocked(dir, claims); err != nil {
			return nil, err
		}
	}
	return remaining, nil
}

// Load returns the set of titles recorded for the directory, seeding the
// record from existing audio files when absent.
func (r *Repository) Load(dir string) (map[string]struct{}, error) {
	lock, err := r.acquire(dir)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = lock.Unlock()
	}()
	return r.loadLocked(dir)
}

// Append records the given titles for the directory.
func (r *Repository) Append(dir string, titles []string) error {
	if len(titles) == 0 {
		return nil
	}
	lock, err := r.acquire(dir)
	if err != nil {
		return err
	}
	defer func() {
		_ = lock.Unlock()
	}()
	return r.appendLocked(dir, titles)
}

// Repair rewrites the directory's record to exactly the titles derived from
// audio files actually present, discarding phantom claims left by failed
// runs. The resulting titles are returned sorted by directory order.
func (r *Repository) Repair(dir string) ([]string, error) {
	lock, err := r.acquire(dir)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = lock.Unlock()
	}()

	titles, err := r.scanTitles(dir)
	if err != nil {
		return nil, err
	}
	if err := r.writeRecord(dir, titles); err != nil {
		return nil, err
	}
	return titles, nil
}

func (r *Repository) acquire(dir string) (*flock.Flock, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, services.Wrap(services.ErrLedger, "ledger", "prepare", dir, err)
	}
	lock := flock.New(filepath.Join(dir, lockFileName))
	if err := lock.Lock(); err != nil {
		return nil, services.Wrap(services.ErrLedger, "ledger", "lock", dir, err)
	}
	return lock, nil
}

// loadLocked reads the record, creating it from a directory scan when absent.
// Lines are opaque titles; blank lines and duplicates are tolerated.
func (r *Repository) loadLocked(dir string) (map[string]struct{}, error) {
	recordPath := filepath.Join(dir, recordFileName)
	data, err := os.ReadFile(recordPath)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, services.Wrap(services.ErrLedger, "ledger", "load", dir, err)
		}
		titles, scanErr := r.scanTitles(dir)
		if scanErr != nil {
			return nil, scanErr
		}
		if len(titles) > 0 {
			if writeErr := r.writeRecord(dir, titles); writeErr != nil {
				return nil, writeErr
			}
		}
		return toSet(titles), nil
	}

	var titles []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		titles = append(titles, line)
	}
	return toSet(titles), nil
}

func (r *Repository) appendLocked(dir string, titles []string) error {
	recordPath := filepath.Join(dir, recordFileName)
	file, err := os.OpenFile(recordPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return services.Wrap(services.ErrLedger, "ledger", "append", dir, err)
	}

	var b strings.Builder
	for _, title := range titles {
		b.WriteString(title)
		b.WriteByte('\n')
	}
	if _, err := file.WriteString(b.String()); err != nil {
		_ = file.Close()
		return services.Wrap(services.ErrLedger, "ledger", "append", dir, err)
	}
	if err := file.Close(); err != nil {
		return services.Wrap(services.ErrLedger, "ledger", "append", dir, err)
	}
	return nil
}

// scanTitles derives titles from audio file basenames in the directory.
func (r *Repository) scanTitles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, services.Wrap(services.ErrLedger, "ledger", "scan", dir, err)
	}
	var titles []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.EqualFold(filepath.Ext(name), r.audioExt) {
			continue
		}
		titles = append(titles, strings.TrimSuffix(name, filepath.Ext(name)))
	}
	return titles, nil
}

func (r *Repository) writeRecord(dir string, titles []string) error {
	var b strings.Builder
	for _, title := range titles {
		b.WriteString(title)
		b.WriteByte('\n')
	}
	recordPath := filepath.Join(dir, recordFileName)
	if err := os.WriteFile(recordPath, []byte(b.String()), 0o644); err != nil {
		return services.Wrap(services.ErrLedger, "ledger", "write", dir, fmt.Errorf("seed record: %w", err))
	}
	return nil
}

func toSet(titles []string) map[string]struct{} {
	set := make(map[string]struct{}, len(titles))
	for _, title := range titles {
		set[title] = struct{}{}
	}
	return set
}
