package track

import (
	"regexp"
	"strings"
)

// ordinalPrefix matches a leading chapter number such as "01. " or "3 ".
var ordinalPrefix = regexp.MustCompile(`^\d+\.?\s*`)

// Merge collapses tracks that share an exact title into a single entry,
// preserving first-seen order of distinct titles. The retained entry carries
// the minimum start across the group together with the duration reported by
// the occurrence that supplied that start, so the pair always describes one
// real chapter boundary.
func Merge(tracks []Track) []Track {
	merged := make([]Track, 0, len(tracks))
	index := make(map[string]int, len(tracks))
	for _, t := range tracks {
		i, ok := index[t.Title]
		if !ok {
			index[t.Title] = len(merged)
			merged = append(merged, t)
			continue
		}
		if t.Start < merged[i].Start {
			merged[i].Start = t.Start
			merged[i].Duration = t.Duration
		}
	}
	return merged
}

// NormalizeTitle strips a leading ordinal prefix (digits, optional period,
// optional whitespace) that chapter lists commonly carry.
func NormalizeTitle(title string) string {
	return ordinalPrefix.ReplaceAllString(title, "")
}

// Reconcile turns a raw chapter list into the canonical track list: duplicates
// merged first, then titles normalized. Both steps are pure; no I/O happens
// before the result is handed to the ledger.
func Reconcile(tracks []Track) []Track {
	out := Merge(tracks)
	for i := range out {
		out[i].Title = NormalizeTitle(out[i].Title)
	}
	return out
}

// SplitTitle derives display artist and title from a raw track title. The
// first " - " wins, then the first " | "; a title with neither separator is
// used as both artist and title.
func SplitTitle(raw string) (artist, title string) {
	for _, sep := range []string{" - ", " | "} {
		if idx := strings.Index(raw, sep); idx >= 0 {
			return strings.TrimSpace(raw[:idx]), strings.TrimSpace(raw[idx+len(sep):])
		}
	}
	trimmed := strings.TrimSpace(raw)
	return trimmed, trimmed
}
