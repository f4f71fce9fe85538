package qlocalexml

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestSkipRepeatingPattern(t *testing.T) {
	tests := []struct {
		pattern string
		r       string
	}{
		{"#,##0.00", "#"},
		{"#,##,##0.###", "#"},
		{"0", "#"},
		{"#,##0.00 ¤", "# ¤"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			test.T(t, skipRepeatingPattern(tt.pattern), tt.r)
		})
	}
}

func TestParseNumberFormat(t *testing.T) {
	tests := []struct {
		pattern string
		r       []string
	}{
		{"#,##0.###", []string{"%1"}},
		{"¤#,##0.00", []string{"%2%1"}},
		{"#,##0.00 ¤;(#,##0.00 ¤)", []string{"%1 %2", "(%1 %2)"}},
		{"#,##0.00¤;-#,##0.00¤", []string{"%1%2", "−%1%2"}},
		{"+#,##0.00 ¤", []string{"؜+%1 %2"}},
		{"#,##0.00'' ¤", []string{"%1' %2"}},
		{"'Kč' #,##0.00", []string{"Kč %1"}},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			test.T(t, parseNumberFormat(tt.pattern, "−", "؜+"), tt.r)
		})
	}
}

func TestParseListPatternPart(t *testing.T) {
	tests := []struct {
		pattern string
		r       string
	}{
		{"{0}, {1}", "%1, %2"},
		{"{0} and {1}", "%1 and %2"},
		{"{0}{1}{2}", "%1%2%3"},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			test.T(t, parseListPatternPart(tt.pattern), tt.r)
		})
	}
}
