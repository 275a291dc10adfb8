package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrToolUnavailable indicates the external transcoding tool is missing.
	// Raised during preflight, before any track is touched.
	ErrToolUnavailable = errors.New("tool unavailable")
	// ErrInvalidSource indicates the job's source identifier cannot be used.
	ErrInvalidSource = errors.New("invalid source")
	// ErrExtraction indicates a cut-and-tag invocation exited non-zero or
	// produced no output file.
	ErrExtraction = errors.New("extraction failure")
	// ErrLedger indicates the processed-title record could not be read or written.
	ErrLedger = errors.New("ledger failure")
	// ErrImageDecode indicates the thumbnail could not be decoded.
	ErrImageDecode = errors.New("image decode failure")
	// ErrCropTool indicates the crop invocation itself failed.
	ErrCropTool = errors.New("crop tool failure")
	// ErrTimeout indicates an external tool exceeded its deadline. Retryable
	// by the caller; the batch it interrupted is still aborted.
	ErrTimeout = errors.New("timeout")
	// ErrTransient marks failures with no more specific classification.
	ErrTransient = errors.New("transient failure")
)

// Wrap builds an error message that includes pipeline context while tagging it
// with the provided marker for later classification. The marker should be one
// of the exported sentinel errors above.
func Wrap(marker error, component, operation, message string, err error) error {
	detail := buildDetail(component, operation, message)
	if marker == nil {
		marker = ErrTransient
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// Retryable reports whether the caller may usefully resubmit the whole job.
// Only deadline expiry and unclassified transient failures qualify; everything
// else reflects a deterministic problem with the source, the tools, or the
// output directory.
func Retryable(err error) bool {
	return errors.Is(err, ErrTimeout) || errors.Is(err, ErrTransient)
}

func buildDetail(component, operation, message string) string {
	parts := make([]string, 0, 3)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "service failure"
	}
	return strings.Join(parts, ": ")
}
