// Package extract cuts chapter-bounded slices out of the master audio and
// tags them. It is the fallback path taken whenever the resolver declines a
// track.
package extract
