package ariarender

import (
	"regexp"
	"strings"

	"github.com/kitetree/ariascope/internal/ariastr"
)

var (
	dynamicContentRe = regexp.MustCompile(`(?i)\d+(?:\.\d+)?\s?(?:kb|mb|gb|tb|b|ms|s|m|h|d)\b|\d+\.\d+|\d{2,}`)
	unitSpanRe       = regexp.MustCompile(`(?i)^\d+(?:\.\d+)?\s?(?:kb|mb|gb|tb|b|ms|s|m|h|d)$`)
	decimalSpanRe    = regexp.MustCompile(`^\d+\.\d+$`)
)

// convertToBestGuessRegex substitutes numeric dynamic content (byte sizes,
// durations, decimals, multi-digit integers) with regex equivalents and
// returns the stringified pattern including its surrounding slashes. Text
// with no dynamic content is returned unchanged as a literal, JSON-quoted
// string (spec.md §4.5 "Regex mode transformations").
func convertToBestGuessRegex(text string) string {
	matches := dynamicContentRe.FindAllStringIndex(text, -1)
	if len(matches) == 0 {
		return jsonQuoteName(text)
	}

	var b strings.Builder
	last := 0
	for _, m := range matches {
		start, end := m[0], m[1]
		b.WriteString(ariastr.EscapeRegExp(text[last:start]))
		span := text[start:end]
		switch {
		case unitSpanRe.MatchString(span):
			b.WriteString(`\d+(?:\.\d+)?\s?\w+`)
		case decimalSpanRe.MatchString(span):
			b.WriteString(`\d+\.\d+`)
		default:
			b.WriteString(`\d+`)
		}
		last = end
	}
	b.WriteString(ariastr.EscapeRegExp(text[last:]))

	return "/" + b.String() + "/"
}

// textContributesInfo decides whether a text child adds information beyond
// what its parent's accessible name already says, to avoid rendering
// visually-redundant text in regex mode. It repeatedly strips the longest
// common substring shared with the parent name and keeps the text only if
// more than 10% of it survives.
func textContributesInfo(parentName, text string) bool {
	if parentName == "" || text == "" {
		return text != ""
	}
	if len(parentName) > 200 || len(text) > 200 {
		return true
	}

	remainder := text
	for {
		common := ariastr.LongestCommonSubstring(parentName, remainder)
		if common == "" {
			break
		}
		remainder = strings.Replace(remainder, common, "", 1)
	}

	return float64(len(remainder))/float64(len(text)) > 0.1
}
