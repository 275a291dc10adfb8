package artwork

import (
	"context"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"os"
	"path/filepath"

	_ "golang.org/x/image/webp" // register WebP decoder

	"mixcut/internal/ffmpeg"
	"mixcut/internal/services"
)

// Cropper normalizes arbitrary cover art to a centered 16:9 band. Dimensions
// are read in-process; the pixel work is delegated to the crop tool. Output
// always lands at a fixed name in the target directory and is overwritten on
// every invocation.
type Cropper struct {
	client   *ffmpeg.Client
	fileName string
}

// NewCropper constructs a cropper writing to the given fixed file name.
func NewCropper(client *ffmpeg.Client, fileName string) *Cropper {
	if fileName == "" {
		fileName = "cover_16x9.jpg"
	}
	return &Cropper{client: client, fileName: fileName}
}

// Crop writes the 16:9 crop of sourcePath into outputDir and returns the
// resulting path. Decode failures and tool failures are classified separately
// so callers can tell a bad image from a bad invocation.
func (c *Cropper) Crop(ctx context.Context, sourcePath, outputDir string) (string, error) {
	width, height, err := decodeDimensions(sourcePath)
	if err != nil {
		return "", services.Wrap(services.ErrImageDecode, "artwork", "decode", sourcePath, err)
	}

	window := Window(width, height)
	outputPath := filepath.Join(outputDir, c.fileName)
	if err := c.client.CropImage(ctx, sourcePath, outputPath, window); err != nil {
		return "", services.Wrap(services.ErrCropTool, "artwork", "crop", sourcePath, err)
	}
	return outputPath, nil
}

// Window computes the centered 16:9 crop region for a width×height image.
// Landscape sources keep full width and lose a vertical band; portrait and
// square sources keep full height and lose a horizontal band. All values are
// truncated to integers and clamped to the image bounds.
func Window(width, height int) ffmpeg.CropWindow {
	w := float64(width)
	h := float64(height)

	var window ffmpeg.CropWindow
	if w/h > 1 {
		target := 9 * (w / 16)
		window = ffmpeg.CropWindow{
			Width:   width,
			Height:  int(target),
			OffsetY: int((h - target) / 2),
		}
	} else {
		target := 9 * (h / 16)
		window = ffmpeg.CropWindow{
			Width:   int(target),
			Height:  height,
			OffsetX: int((w - target) / 2),
		}
	}
	return clamp(window, width, height)
}

func clamp(window ffmpeg.CropWindow, width, height int) ffmpeg.CropWindow {
	if window.Width > width {
		window.Width = width
	}
	if window.Height > height {
		window.Height = height
	}
	if window.OffsetX < 0 {
		window.OffsetX = 0
	}
	if window.OffsetY < 0 {
		window.OffsetY = 0
	}
	return window
}

func decodeDimensions(path string) (int, int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer file.Close()

	cfg, _, err := image.DecodeConfig(file)
	if err != nil {
		return 0, 0, err
	}
	return cfg.Width, cfg.Height, nil
}
