package qlocalexml

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/tdewolff/test"
)

func TestSplitLocale(t *testing.T) {
	tests := []struct {
		name     string
		language string
		script   string
		country  string
		single   bool
		cruft    string
	}{
		{"en", "en", "", "", true, ""},
		{"en_US", "en", "", "US", false, ""},
		{"zh_Hant_TW", "zh", "Hant", "TW", false, ""},
		{"sr_Latn", "sr", "Latn", "", false, ""},
		{"es_419", "es", "", "419", false, ""},
		{"en_US_POSIX", "en", "", "US", false, "POSIX"},
		{"ca_ES_VALENCIA", "ca", "", "ES", false, "VALENCIA"},
		{"und_Latn", "und", "Latn", "", false, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			language, script, country, single, cruft := SplitLocale(tt.name)
			test.T(t, language, tt.language)
			test.T(t, script, tt.script)
			test.T(t, country, tt.country)
			test.T(t, single, tt.single)
			test.T(t, cruft, tt.cruft)
		})
	}
}

func TestParseLocaleTriple(t *testing.T) {
	r := NewResolver(newTestSource())
	tests := []struct {
		name string
		r    Triple
	}{
		{"en", Triple{"English", "AnyScript", "AnyCountry"}},
		{"en_Latn_US", Triple{"English", "LatinScript", "UnitedStates"}},
		{"und_Latn", Triple{"AnyLanguage", "LatinScript", "AnyCountry"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			triple, err := r.parseLocaleTriple(tt.name)
			test.Error(t, err)
			test.T(t, triple, tt.r)
		})
	}

	_, err := r.parseLocaleTriple("und")
	var rej *RejectError
	test.That(t, errors.As(err, &rej), "bare und must be rejected, got", err)

	_, err = r.parseLocaleTriple("aax")
	var codeErr *CodeError
	test.That(t, errors.As(err, &codeErr), "expected a code error, got", err)
	test.T(t, codeErr.Code, "aax")
}

func TestLikelySubtags(t *testing.T) {
	src := newTestSource()
	s, err := LikelySubtags(src, NewResolver(src))
	test.Error(t, err)

	var pairs []SubtagPair
	for s.Scan() {
		pairs = append(pairs, s.Pair())
	}
	test.T(t, pairs, []SubtagPair{
		{Triple{"English", "AnyScript", "AnyCountry"}, Triple{"English", "LatinScript", "UnitedStates"}},
		// the underspecified "to" inherits GB from "from"
		{Triple{"English", "AnyScript", "UnitedKingdom"}, Triple{"English", "LatinScript", "UnitedKingdom"}},
		{Triple{"AnyLanguage", "LatinScript", "AnyCountry"}, Triple{"English", "LatinScript", "UnitedStates"}},
	})
	// aax is unknown and its expansion merely extends it: a known,
	// silently-collected skip. en_QQ fails on the territory instead and
	// is reported, not collected.
	test.T(t, s.Skipped(), []string{"aax_Latn_US"})
}
