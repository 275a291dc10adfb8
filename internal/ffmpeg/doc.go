// Package ffmpeg wraps the external transcoding tool behind a small client.
//
// The command templates are a stable external contract: single-stream MP3
// output via libmp3lame, artwork mapped as cover art, prior metadata stripped,
// only title/artist set, id3v2.3 tags. The client adds what the raw tool does
// not give us: a per-invocation deadline, exit-status capture, and an Executor
// seam so the pipeline is testable without a real binary.
package ffmpeg
