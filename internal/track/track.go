package track

// Track is one logical segment of a mix: a chapter title plus its position in
// the master recording. Two tracks with equal titles are the same logical
// track for merging and ledger purposes; there is no other identity.
type Track struct {
	Title    string
	Start    float64 // seconds from the beginning of the mix
	Duration float64 // seconds
}
