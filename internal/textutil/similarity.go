package textutil

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Ratio computes a normalized similarity between two strings in [0, 1] using
// the longest common subsequence of their folded rune sequences:
// 2*lcs/(len(a)+len(b)). Identical strings score 1, strings with no runes in
// common score 0. Two empty strings are considered identical.
func Ratio(a, b string) float64 {
	ra := foldRunes(a)
	rb := foldRunes(b)
	if len(ra) == 0 && len(rb) == 0 {
		return 1
	}
	if len(ra) == 0 || len(rb) == 0 {
		return 0
	}
	lcs := commonSubsequence(ra, rb)
	return 2 * float64(lcs) / float64(len(ra)+len(rb))
}

// foldRunes canonicalizes text for comparison: NFC composition, lowercasing,
// and whitespace trimming.
func foldRunes(s string) []rune {
	return []rune(strings.ToLower(norm.NFC.String(strings.TrimSpace(s))))
}

// commonSubsequence returns the longest common subsequence length using a
// two-row dynamic program. Track titles are short, so quadratic time is fine.
func commonSubsequence(a, b []rune) int {
	if len(b) < len(a) {
		a, b = b, a
	}
	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)
	for i := 1; i <= len(b); i++ {
		for j := 1; j <= len(a); j++ {
			if b[i-1] == a[j-1] {
				curr[j] = prev[j-1] + 1
			} else if prev[j] >= curr[j-1] {
				curr[j] = prev[j]
			} else {
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}
	return prev[len(a)]
}
