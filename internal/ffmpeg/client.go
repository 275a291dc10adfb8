package ffmpeg

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"time"
)

// Executor abstracts command execution for testability.
type Executor interface {
	Run(ctx context.Context, binary string, args []string) (output string, err error)
}

// Option configures the client.
type Option func(*Client)

// WithExecutor injects a custom executor (primarily for tests).
func WithExecutor(exec Executor) Option {
	return func(c *Client) {
		if exec != nil {
			c.exec = exec
		}
	}
}

// Client wraps ffmpeg CLI interactions. Every invocation runs under the
// configured timeout; a hung tool never blocks a split run indefinitely.
type Client struct {
	binary  string
	timeout time.Duration
	exec    Executor
}

// New constructs an ffmpeg client.
func New(binary string, timeoutSeconds int, opts ...Option) (*Client, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		return nil, errors.New("ffmpeg binary required")
	}
	client := &Client{
		binary:  binary,
		timeout: time.Duration(timeoutSeconds) * time.Second,
		exec:    commandExecutor{},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// Binary returns the configured ffmpeg command.
func (c *Client) Binary() string {
	return c.binary
}

// Available reports whether the configured binary resolves on PATH.
func (c *Client) Available() bool {
	_, err := exec.LookPath(c.binary)
	return err == nil
}

// ToolError reports a failed ffmpeg invocation with its exit status and the
// tail of the tool's diagnostic output.
type ToolError struct {
	Op       string
	ExitCode int
	Output   string
	Err      error
}

func (e *ToolError) Error() string {
	if e.Output != "" {
		return fmt.Sprintf("ffmpeg %s: exit status %d: %s", e.Op, e.ExitCode, e.Output)
	}
	return fmt.Sprintf("ffmpeg %s: %v", e.Op, e.Err)
}

func (e *ToolError) Unwrap() error {
	return e.Err
}

// run executes ffmpeg with the per-invocation timeout applied. Deadline expiry
// is surfaced as context.DeadlineExceeded so callers can classify it as
// retryable; every other failure becomes a ToolError.
func (c *Client) run(ctx context.Context, op string, args []string) error {
	runCtx := ctx
	if c.timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	output, err := c.exec.Run(runCtx, c.binary, args)
	if err == nil {
		return nil
	}
	if runCtx.Err() != nil {
		return fmt.Errorf("ffmpeg %s: %w", op, runCtx.Err())
	}

	exitCode := -1
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		exitCode = exitErr.ExitCode()
	}
	return &ToolError{Op: op, ExitCode: exitCode, Output: outputTail(output), Err: err}
}

// outputTail keeps the last few lines of tool output, which is where ffmpeg
// reports the actual failure.
func outputTail(output string) string {
	lines := strings.Split(strings.TrimSpace(output), "\n")
	const keep = 4
	if len(lines) > keep {
		lines = lines[len(lines)-keep:]
	}
	return strings.TrimSpace(strings.Join(lines, " | "))
}

type commandExecutor struct{}

func (commandExecutor) Run(ctx context.Context, binary string, args []string) (string, error) {
	cmd := exec.CommandContext(ctx, binary, args...) //nolint:gosec
	var buf bytes.Buffer
	cmd.Stdout = io.Discard
	cmd.Stderr = &buf
	err := cmd.Run()
	return buf.String(), err
}
