package qlocalexml

import "strings"

// skipRepeatingPattern collapses any run of digit placeholders into a
// single '#', dropping the grouping and decimal markers. "#,##0.00"
// becomes "#".
func skipRepeatingPattern(pattern string) string {
	p := strings.NewReplacer("0", "#", ",", "", ".", "").Replace(pattern)
	var b strings.Builder
	b.Grow(len(p))
	seen := false
	for _, c := range p {
		if c == '#' {
			if seen {
				continue
			}
			seen = true
		} else {
			seen = false
		}
		b.WriteRune(c)
	}
	return b.String()
}

// parseNumberFormat converts a CLDR number or currency pattern into the
// output pattern syntax: the digit run becomes %1, the currency sign
// becomes %2, quote-escaped literal text is unquoted ('' round-trips to
// a single apostrophe) and the generic ASCII minus and plus signs are
// replaced by the locale's own glyphs. The positive and negative
// subpatterns are returned separately.
func parseNumberFormat(patterns, minus, plus string) []string {
	var result []string
	for _, pattern := range strings.Split(patterns, ";") {
		pattern = skipRepeatingPattern(pattern)
		pattern = strings.ReplaceAll(pattern, "#", "%1")
		pattern = strings.ReplaceAll(pattern, "¤", "%2")
		// There may be doubled or tripled currency signs per TR35, but
		// no locale uses them.
		pattern = strings.ReplaceAll(pattern, "''", "###")
		pattern = strings.ReplaceAll(pattern, "'", "")
		pattern = strings.ReplaceAll(pattern, "###", "'")
		pattern = strings.ReplaceAll(pattern, "-", minus)
		pattern = strings.ReplaceAll(pattern, "+", plus)
		result = append(result, pattern)
	}
	return result
}

// parseListPatternPart rewrites the three positional placeholders of a
// list-join template; no structural change.
func parseListPatternPart(pattern string) string {
	pattern = strings.ReplaceAll(pattern, "{0}", "%1")
	pattern = strings.ReplaceAll(pattern, "{1}", "%2")
	return strings.ReplaceAll(pattern, "{2}", "%3")
}
