package source

import (
	"context"

	"mixcut/internal/track"
)

// Media is what a downloader returns for one source identifier.
type Media struct {
	AudioPath     string        `json:"audioPath"`
	ThumbnailPath string        `json:"thumbnailPath"`
	Chapters      []track.Track `json:"chapters"`
}

// Downloader acquires the master audio, thumbnail, and chapter list for a
// source identifier. Acquisition is an external collaborator concern; the
// pipeline only depends on this seam.
type Downloader interface {
	Download(ctx context.Context, sourceID, destDir string) (Media, error)
}

// Candidate is one externally searched alternative for a requested track. Ref
// is an opaque audio-fetchable handle understood by the fetcher that produced
// the candidate.
type Candidate struct {
	Title        string
	ThumbnailURL string
	Ref          string
}

// Searcher issues a free-text search and returns candidates in rank order.
type Searcher interface {
	Search(ctx context.Context, query string, limit int) ([]Candidate, error)
}

// MediaFetcher retrieves a candidate's own full-length audio and thumbnail.
type MediaFetcher interface {
	FetchAudio(ctx context.Context, candidate Candidate, destDir string) (string, error)
	FetchThumbnail(ctx context.Context, candidate Candidate, destDir string) (string, error)
}
