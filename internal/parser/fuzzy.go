package parser

import (
	"strings"
	"unicode/utf8"

	"github.com/hbollon/go-edlib"
)

// similarity is the longest common subsequence of a and b over the rune count of the longer one.
func similarity(a, b string) float64 {
	if a == b {
		return 1
	}
	longest := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	if longest == 0 {
		return 0
	}
	return float64(edlib.LCS(a, b)) / float64(longest)
}

// closestCity ranks candidates against the head of input. The input is cut to the longest candidate
// so trailing block numbers do not dilute the score. Ties keep the earlier candidate.
func closestCity(input string, candidates []string) (string, float64, bool) {
	longest := 0
	for _, c := range candidates {
		longest = max(longest, utf8.RuneCountInString(c))
	}
	head := truncateRunes(input, longest)

	var (
		best      string
		bestScore float64
		found     bool
	)
	for _, c := range candidates {
		if c == "" {
			continue
		}
		if score := similarity(head, c); score > bestScore {
			best, bestScore, found = c, score, true
		}
	}
	return best, bestScore, found
}

// complementCountyName finds the city the input most likely names with its county omitted and
// puts the county back. The matched candidate must contain 郡; otherwise nothing is rewritten.
func complementCountyName(input string, candidates []string, matcher VariantMatcher) (string, string, bool) {
	city, _, ok := closestCity(input, candidates)
	if !ok {
		return "", "", false
	}
	county, _, found := strings.Cut(city, countySuffix)
	if !found {
		return "", "", false
	}
	completed := county + countySuffix + input
	if rest, ok := strings.CutPrefix(completed, city); ok {
		return city, rest, true
	}
	return matcher.Match(completed, city)
}

func truncateRunes(s string, n int) string {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
