package qlocalexml

import "strings"

// convertDatePattern rewrites an LDML date or time pattern
// (unicode.org/reports/tr35/#Date_Format_Patterns) into the target
// pattern syntax. Quoted literal text is kept verbatim; pattern letters
// without a target equivalent are dropped.
func convertDatePattern(pattern string) string {
	var b strings.Builder
	b.Grow(len(pattern))
	for i := 0; i < len(pattern); {
		c := pattern[i]
		if c == '\'' {
			j := i + 1
			for j < len(pattern) && pattern[j] != '\'' {
				j++
			}
			if j < len(pattern) {
				j++
			}
			b.WriteString(pattern[i:j])
			i = j
			continue
		}
		if !isPatternLetter(c) {
			b.WriteByte(c)
			i++
			continue
		}
		j := i + 1
		for j < len(pattern) && pattern[j] == c {
			j++
		}
		b.WriteString(convertDateField(c, j-i))
		i = j
	}
	return b.String()
}

func isPatternLetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

func convertDateField(c byte, n int) string {
	switch c {
	case 'y':
		if n == 2 {
			return "yy"
		}
		return "yyyy"
	case 'M', 'L':
		if 4 < n {
			n = 4 // no narrow month form
		}
		return strings.Repeat("M", n)
	case 'd':
		if n == 1 {
			return "d"
		}
		return "dd"
	case 'E', 'e', 'c':
		if 4 <= n {
			return "dddd"
		}
		return "ddd"
	case 'a', 'b', 'B':
		return "AP"
	case 'h', 'K':
		if n == 1 {
			return "h"
		}
		return "hh"
	case 'H', 'k':
		if n == 1 {
			return "H"
		}
		return "HH"
	case 'm':
		if n == 1 {
			return "m"
		}
		return "mm"
	case 's':
		if n == 1 {
			return "s"
		}
		return "ss"
	case 'S':
		return "z" // fractional seconds
	case 'z', 'v', 'V', 'Z', 'O', 'x', 'X':
		return "t"
	}
	// era, week and cyclic fields have no equivalent
	return ""
}
