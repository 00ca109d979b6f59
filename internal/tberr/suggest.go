package tberr

import (
	"fmt"
	"strings"
)

// SuggestSimilar returns a "did you mean 'X'?" help line when input looks
// like a misspelling of one of the candidates, or "" when nothing is close.
func SuggestSimilar(input string, candidates []string) string {
	if match, ok := Closest(input, candidates); ok {
		return fmt.Sprintf("did you mean '%s'?", match)
	}
	return ""
}

// Closest returns the candidate with the fewest edits from input. The number
// of edits tolerated scales with the input length, one per three runes plus
// one, so a short keyword like "txt" cannot drift to half the type registry
// while a long one like "refrences" still reaches its target.
func Closest(input string, candidates []string) (string, bool) {
	in := strings.ToLower(input)
	budget := len(in)/3 + 1

	best := ""
	bestDist := budget + 1
	for _, c := range candidates {
		// A length gap wider than the remaining budget can never win.
		if gap := len(c) - len(in); gap >= bestDist || -gap >= bestDist {
			continue
		}
		if d := editDistance(in, strings.ToLower(c)); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best, best != ""
}

// editDistance computes the Levenshtein distance over bytes in a single
// reused row.
func editDistance(a, b string) int {
	if a == b {
		return 0
	}

	row := make([]int, len(b)+1)
	for j := range row {
		row[j] = j
	}

	for i := 1; i <= len(a); i++ {
		diag := row[0]
		row[0] = i
		for j := 1; j <= len(b); j++ {
			next := row[j]
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			row[j] = min(row[j]+1, row[j-1]+1, diag+cost)
			diag = next
		}
	}
	return row[len(b)]
}
