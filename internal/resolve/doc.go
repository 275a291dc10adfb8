// Package resolve implements the fallback track resolver. For each requested
// track it queries a search collaborator, scores candidate titles against the
// requested title, and when the match is strong enough substitutes the
// candidate's own full-length audio for the chapter-bounded slice of the
// master recording. A decline is an ordinary value that routes the caller to
// segment extraction.
package resolve
