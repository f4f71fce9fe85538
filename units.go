package qlocalexml

import "strings"

// The quantifier series stops at exa/exbi: 16 exbi = 2^64 < zetta =
// 1000^7 < zebi = 2^70, the next quantifiers up.
var siQuantifiers = [...]string{"kilo", "mega", "giga", "tera", "peta", "exa"}

func allEqual(known []string, s string) bool {
	for _, k := range known {
		if k != s {
			return false
		}
	}
	return true
}

// siQuantified works out the SI-quantified byte-unit names. The CLDR
// data only go up to terabytes; the quantifier letter is recognized as
// a prefix of each present name and the rest identifies the localized
// 'B' (French has ko, Mo, Go, To from which Po and Eo extrapolate).
// The rests are appended to known for iecQuantified to reuse.
func siQuantified(find func(unit string) string, known *[]string) []string {
	tail := "B"
	names := make([]string, 0, len(siQuantifiers))
	for _, q := range siQuantifiers {
		it := find("digital-" + q + "byte")
		// kB for kilobyte, in contrast with KiB for IEC:
		letter := strings.ToUpper(q[:1])
		if q == "kilo" {
			letter = "k"
		}
		if it == "" {
			it = letter + tail
		} else if strings.HasPrefix(it, letter) {
			rest := it[1:]
			if allEqual(*known, rest) {
				tail = rest
			} else {
				tail = "B"
			}
			*known = append(*known, rest)
		}
		names = append(names, it)
	}
	return names
}

// iecQuantified works out the IEC 60027-2 series (kibi..exbi), reusing
// the localized byte suffix siQuantified learned when it was
// consistent. The quantified names don't exist in CLDR, so the
// fallback is nearly always taken.
func iecQuantified(find func(unit, fallback string) string, known []string) []string {
	suffix := "iB"
	if 0 < len(known) {
		byteName := known[len(known)-1]
		if allEqual(known[:len(known)-1], byteName) {
			suffix = "i" + byteName
		}
	}
	names := make([]string, 0, len(siQuantifiers))
	for _, q := range siQuantifiers {
		names = append(names, find("digital-"+q[:2]+"bibyte", strings.ToUpper(q[:1])+suffix))
	}
	return names
}
