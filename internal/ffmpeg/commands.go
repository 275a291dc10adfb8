package ffmpeg

import (
	"context"
	"errors"
	"fmt"
	"strconv"
)

// Tags carries the metadata written onto an output file. All prior metadata is
// stripped; title and artist are the only fields set.
type Tags struct {
	Title  string
	Artist string
}

// SegmentSpec describes one cut-and-tag invocation.
type SegmentSpec struct {
	AudioPath   string
	ArtworkPath string
	Start       float64 // seconds
	Duration    float64 // seconds
	Tags        Tags
	OutputPath  string
}

// ExtractSegment produces a single MP3 covering [Start, Start+Duration) of the
// master audio with the artwork embedded as cover art.
func (c *Client) ExtractSegment(ctx context.Context, spec SegmentSpec) error {
	if spec.AudioPath == "" || spec.OutputPath == "" {
		return errors.New("segment spec requires audio and output paths")
	}
	args := encodeArgs(spec.AudioPath, spec.ArtworkPath, spec.Tags, spec.OutputPath,
		"-ss", formatSeconds(spec.Start),
		"-t", formatSeconds(spec.Duration),
	)
	return c.run(ctx, "extract", args)
}

// EncodeFull produces a tagged MP3 of the entire input audio, used for
// resolver candidates that replace an in-mix segment.
func (c *Client) EncodeFull(ctx context.Context, audioPath, artworkPath string, tags Tags, outputPath string) error {
	if audioPath == "" || outputPath == "" {
		return errors.New("encode requires audio and output paths")
	}
	return c.run(ctx, "encode", encodeArgs(audioPath, artworkPath, tags, outputPath))
}

// CropWindow describes the pixel region retained by CropImage.
type CropWindow struct {
	Width   int
	Height  int
	OffsetX int
	OffsetY int
}

// CropImage rewrites src to dst keeping only the given window.
func (c *Client) CropImage(ctx context.Context, src, dst string, window CropWindow) error {
	if src == "" || dst == "" {
		return errors.New("crop requires source and destination paths")
	}
	if window.Width <= 0 || window.Height <= 0 {
		return fmt.Errorf("crop window %dx%d is empty", window.Width, window.Height)
	}
	args := []string{
		"-y",
		"-i", src,
		"-vf", fmt.Sprintf("crop=%d:%d:%d:%d", window.Width, window.Height, window.OffsetX, window.OffsetY),
		dst,
	}
	return c.run(ctx, "crop", args)
}

// encodeArgs builds the fixed cut-and-tag command template: first audio stream
// plus artwork as cover, all prior metadata stripped, libmp3lame, id3v2.3,
// MP3 container. extra holds output options such as -ss/-t.
func encodeArgs(audioPath, artworkPath string, tags Tags, outputPath string, extra ...string) []string {
	args := []string{
		"-y",
		"-i", audioPath,
		"-i", artworkPath,
	}
	args = append(args, extra...)
	args = append(args,
		"-c:a", "libmp3lame",
		"-map", "0:a:0",
		"-map", "1:0",
		"-map_metadata", "-1",
		"-metadata", "title="+tags.Title,
		"-metadata", "artist="+tags.Artist,
		"-id3v2_version", "3",
		"-f", "mp3",
		outputPath,
	)
	return args
}

func formatSeconds(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
