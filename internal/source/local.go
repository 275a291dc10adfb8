package source

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"mixcut/internal/services"
)

// LocalSource implements Downloader for media that is already on disk. The
// source identifier is the path of a JSON job descriptor carrying the audio
// path, thumbnail path, and chapter list, which lets the CLI run the full
// pipeline without any remote acquisition.
type LocalSource struct{}

// Download reads and validates the descriptor. destDir is unused; local media
// stays where it is.
func (LocalSource) Download(_ context.Context, sourceID, _ string) (Media, error) {
	data, err := os.ReadFile(sourceID)
	if err != nil {
		return Media{}, services.Wrap(services.ErrInvalidSource, "source", "read descriptor", sourceID, err)
	}

	var media Media
	if err := json.Unmarshal(data, &media); err != nil {
		return Media{}, services.Wrap(services.ErrInvalidSource, "source", "parse descriptor", sourceID, err)
	}

	if strings.TrimSpace(media.AudioPath) == "" {
		return Media{}, services.Wrap(services.ErrInvalidSource, "source", "validate", sourceID,
			fmt.Errorf("descriptor has no audioPath"))
	}
	for _, path := range []string{media.AudioPath, media.ThumbnailPath} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err != nil {
			return Media{}, services.Wrap(services.ErrInvalidSource, "source", "validate", sourceID, err)
		}
	}
	return media, nil
}
