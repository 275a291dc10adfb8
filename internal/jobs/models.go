package jobs

import "time"

// Status represents the lifecycle of a split job.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

var statusSet = map[Status]struct{}{
	StatusPending:    {},
	StatusProcessing: {},
	StatusCompleted:  {},
	StatusFailed:     {},
}

// Valid reports whether the status is a known lifecycle state.
func (s Status) Valid() bool {
	_, ok := statusSet[s]
	return ok
}

// Request is the job descriptor shape accepted from callers. The destination
// folder is optional; an empty value falls back to the configured output
// directory.
type Request struct {
	SourceIdentifier  string `json:"sourceIdentifier"`
	DestinationFolder string `json:"destinationFolder,omitempty"`
}

// Result is the completion notice shape reported for a finished job.
type Result struct {
	SourceIdentifier  string   `json:"sourceIdentifier"`
	ProducedFilePaths []string `json:"producedFilePaths"`
}

// Job is one split run persisted in SQLite.
type Job struct {
	ID                string
	SourceIdentifier  string
	DestinationFolder string
	Status            Status
	ProducedFiles     []string
	ErrorMessage      string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Result converts a completed job into its completion-notice shape.
func (j *Job) Result() Result {
	return Result{
		SourceIdentifier:  j.SourceIdentifier,
		ProducedFilePaths: j.ProducedFiles,
	}
}
