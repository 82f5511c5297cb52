package matcher

import (
	"math"
	"slices"
	"strings"
	"unicode"
)

// Score rates how closely two location names agree, from 0 to 100.
//
// Names are compared case-insensitively with punctuation dropped. Names of
// similar length are compared whole and with their words sorted; when one is
// at least half again as long as the other the shorter one is also slid along
// the longer, so "Laoag" scores well against "Laoag City".
func Score(a, b string) int {
	a, b = normalize(a), normalize(b)
	if a == "" || b == "" {
		return 0
	}

	ra, rb := []rune(a), []rune(b)
	best := ratio(ra, rb)

	shorter, longer := len(ra), len(rb)
	if shorter > longer {
		shorter, longer = longer, shorter
	}
	lengthRatio := float64(longer) / float64(shorter)

	sa, sb := []rune(sortTokens(a)), []rune(sortTokens(b))
	if lengthRatio < 1.5 {
		best = math.Max(best, ratio(sa, sb)*0.95)
		return int(math.Round(best))
	}

	scale := 0.9
	if lengthRatio > 8 {
		scale = 0.6
	}
	best = math.Max(best, partialRatio(ra, rb)*scale)
	best = math.Max(best, partialRatio(sa, sb)*0.95*scale)
	return int(math.Round(best))
}

func normalize(s string) string {
	mapped := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}
		return ' '
	}, s)
	return strings.Join(strings.Fields(mapped), " ")
}

func sortTokens(s string) string {
	tokens := strings.Fields(s)
	slices.Sort(tokens)
	return strings.Join(tokens, " ")
}

// ratio is 100 * 2*LCS / (len(a)+len(b)).
func ratio(a, b []rune) float64 {
	total := len(a) + len(b)
	if total == 0 {
		return 0
	}
	return 100 * float64(2*lcs(a, b)) / float64(total)
}

// partialRatio is the best ratio of the shorter string against every
// equally long window of the longer one.
func partialRatio(a, b []rune) float64 {
	if len(a) > len(b) {
		a, b = b, a
	}
	if len(a) == 0 {
		return 0
	}

	best := 0.0
	for start := 0; start+len(a) <= len(b); start++ {
		best = math.Max(best, ratio(a, b[start:start+len(a)]))
		if best == 100 {
			break
		}
	}
	return best
}

// lcs returns the length of the longest common subsequence of a and b.
func lcs(a, b []rune) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)

	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1] + 1
			} else {
				curr[j] = max(prev[j], curr[j-1])
			}
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
