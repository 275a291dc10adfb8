// Package textutil provides the text helpers shared across the pipeline:
// filename sanitization for output basenames and a normalized similarity
// ratio used by the fallback resolver to score search candidates against a
// requested track title.
//
// The ratio operates on NFC-normalized, case-folded runes so that titles that
// differ only in Unicode composition or letter case compare as equal.
package textutil
