package jobs

import (
	"context"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := OpenPath(filepath.Join(t.TempDir(), "jobs.db"))
	if err != nil {
		t.Fatalf("OpenPath: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestJobLifecycle(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	job, err := store.Create(ctx, Request{SourceIdentifier: "mix-123", DestinationFolder: "/out"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if job.ID == "" || job.Status != StatusPending {
		t.Fatalf("unexpected new job: %+v", job)
	}
	if job.SourceIdentifier != "mix-123" || job.DestinationFolder != "/out" {
		t.Fatalf("request fields not persisted: %+v", job)
	}

	if err := store.MarkProcessing(ctx, job.ID); err != nil {
		t.Fatalf("MarkProcessing: %v", err)
	}
	produced := []string{"/out/Song A.mp3", "/out/Song B.mp3"}
	if err := store.MarkCompleted(ctx, job.ID, produced); err != nil {
		t.Fatalf("MarkCompleted: %v", err)
	}

	got, err := store.GetByID(ctx, job.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Status != StatusCompleted {
		t.Fatalf("status = %s, want completed", got.Status)
	}
	if len(got.ProducedFiles) != 2 || got.ProducedFiles[0] != produced[0] {
		t.Fatalf("produced files = %v", got.ProducedFiles)
	}
	if !got.UpdatedAt.After(got.CreatedAt) && !got.UpdatedAt.Equal(got.CreatedAt) {
		t.Fatalf("updated_at %v precedes created_at %v", got.UpdatedAt, got.CreatedAt)
	}

	result := got.Result()
	if result.SourceIdentifier != "mix-123" || len(result.ProducedFilePaths) != 2 {
		t.Fatalf("unexpected result shape: %+v", result)
	}
}

func TestJobFailureKeepsMessage(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	job, err := store.Create(ctx, Request{SourceIdentifier: "mix-err"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := store.MarkFailed(ctx, job.ID, "ffmpeg exited 1"); err != nil {
		t.Fatalf("MarkFailed: %v", err)
	}

	got, err := store.GetByID(ctx, job.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Status != StatusFailed || got.ErrorMessage != "ffmpeg exited 1" {
		t.Fatalf("unexpected failed job: %+v", got)
	}
}

func TestCreateRejectsEmptySource(t *testing.T) {
	store := newTestStore(t)
	if _, err := store.Create(context.Background(), Request{SourceIdentifier: "  "}); err == nil {
		t.Fatal("expected error for blank source identifier")
	}
}

func TestGetByIDMissingReturnsNil(t *testing.T) {
	store := newTestStore(t)
	job, err := store.GetByID(context.Background(), "no-such-id")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if job != nil {
		t.Fatalf("expected nil for missing job, got %+v", job)
	}
}

func TestListNewestFirst(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	first, err := store.Create(ctx, Request{SourceIdentifier: "older"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	second, err := store.Create(ctx, Request{SourceIdentifier: "newer"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	all, err := store.List(ctx, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("list returned %d jobs, want 2", len(all))
	}
	if all[0].ID != second.ID || all[1].ID != first.ID {
		t.Fatalf("unexpected order: %s then %s", all[0].SourceIdentifier, all[1].SourceIdentifier)
	}

	limited, err := store.List(ctx, 1)
	if err != nil {
		t.Fatalf("List limited: %v", err)
	}
	if len(limited) != 1 || limited[0].ID != second.ID {
		t.Fatalf("limited list = %v", limited)
	}
}

func TestReopenPreservesData(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "jobs.db")
	store, err := OpenPath(path)
	if err != nil {
		t.Fatalf("OpenPath: %v", err)
	}
	job, err := store.Create(context.Background(), Request{SourceIdentifier: "persisted"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	reopened, err := OpenPath(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()
	got, err := reopened.GetByID(context.Background(), job.ID)
	if err != nil {
		t.Fatalf("GetByID after reopen: %v", err)
	}
	if got == nil || got.SourceIdentifier != "persisted" {
		t.Fatalf("job not persisted across reopen: %+v", got)
	}
}
