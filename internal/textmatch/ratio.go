// Package textmatch scores the character-level similarity of two strings.
//
// The score is the classic matching-blocks ratio: find the longest common
// substring, recurse on the pieces to its left and right, and report
// 2*M/T where M is the total matched character count and T the combined
// length of both inputs. Identical strings score 1.0; strings with no
// characters in common score 0.0.
package textmatch

// Ratio returns the similarity of a and b in [0, 1]. Comparison is by rune,
// so multi-byte characters count once.
func Ratio(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	total := len(ra) + len(rb)
	if total == 0 {
		return 1.0
	}
	matched := matchTotal(ra, rb)
	return 2.0 * float64(matched) / float64(total)
}

// matchTotal sums the lengths of the matching blocks shared by a and b.
func matchTotal(a, b []rune) int {
	i, j, size := longestCommonBlock(a, b)
	if size == 0 {
		return 0
	}
	return matchTotal(a[:i], b[:j]) + size + matchTotal(a[i+size:], b[j+size:])
}

// longestCommonBlock finds the longest common substring of a and b,
// returning its start in each plus its length. Earliest occurrence in a
// (then in b) wins ties, matching the usual sequence-matcher behavior.
func longestCommonBlock(a, b []rune) (besti, bestj, bestSize int) {
	if len(a) == 0 || len(b) == 0 {
		return 0, 0, 0
	}
	// lengths[j] is the length of the common suffix ending at a[i-1], b[j-1]
	// for the current row i.
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] != b[j-1] {
				cur[j] = 0
				continue
			}
			cur[j] = prev[j-1] + 1
			if cur[j] > bestSize {
				bestSize = cur[j]
				besti = i - bestSize
				bestj = j - bestSize
			}
		}
		prev, cur = cur, prev
	}
	return besti, bestj, bestSize
}
