// Package ariastr holds the small string utilities spec.md §6 lists as
// external collaborators ("String utilities (consumed): escapeRegExp,
// longestCommonSubstring, normalizeWhiteSpace"). Every engine package that
// needs them imports this one instead of reimplementing them, keeping them
// sitting below ariatree/ariamatch/ariascore/ariarender in the dependency
// graph rather than inside any one of them.
package ariastr

import "strings"

// NormalizeWhiteSpace collapses runs of whitespace to a single space and
// trims the ends.
func NormalizeWhiteSpace(s string) string {
	var b strings.Builder
	lastSpace := true
	for _, r := range s {
		switch r {
		case ' ', '\t', '\n', '\r', '\f', '\v':
			if !lastSpace {
				b.WriteByte(' ')
			}
			lastSpace = true
		default:
			b.WriteRune(r)
			lastSpace = false
		}
	}
	return strings.TrimRight(b.String(), " ")
}

// EscapeRegExp escapes s so it can be inserted into a regular expression and
// match only the literal characters of s.
func EscapeRegExp(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '.', '*', '+', '?', '^', '$', '{', '}', '(', ')', '|', '[', ']', '\\', '/':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// LongestCommonSubstring returns the longest contiguous run of runes common
// to both a and b (not a subsequence — dynamic-programming substring match).
func LongestCommonSubstring(a, b string) string {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 || len(rb) == 0 {
		return ""
	}
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	bestLen, bestEnd := 0, 0
	for i := 1; i <= len(ra); i++ {
		for j := 1; j <= len(rb); j++ {
			if ra[i-1] == rb[j-1] {
				curr[j] = prev[j-1] + 1
				if curr[j] > bestLen {
					bestLen = curr[j]
					bestEnd = i
				}
			} else {
				curr[j] = 0
			}
		}
		prev, curr = curr, prev
		for j := range curr {
			curr[j] = 0
		}
	}
	return string(ra[bestEnd-bestLen : bestEnd])
}
