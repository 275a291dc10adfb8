// Package track defines the Track value type and the pure transformations
// applied to a raw chapter list before any I/O: duplicate merging, ordinal
// prefix normalization, and artist/title derivation shared by the segment
// extractor and the fallback resolver.
package track
