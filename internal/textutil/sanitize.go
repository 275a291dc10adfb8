package textutil

import "strings"

// fileNameReplacer replaces filesystem-unsafe characters with safe alternatives.
var fileNameReplacer = strings.NewReplacer(
	"/", "-",
	"\\", "-",
	":", "-",
	"*", "-",
	"?", "",
	"\"", "",
	"<", "",
	">", "",
	"|", "",
)

// SanitizeFileName makes a track title safe for use as an output basename.
// Slashes, backslashes, colons, and asterisks become dashes; other unsafe
// characters are removed; surrounding whitespace is trimmed. A title that
// sanitizes to nothing becomes "untitled" so the extractor never produces a
// bare ".mp3" file.
func SanitizeFileName(name string) string {
	name = strings.TrimSpace(fileNameReplacer.Replace(strings.TrimSpace(name)))
	if name == "" {
		return "untitled"
	}
	return name
}
