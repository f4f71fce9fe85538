package qlocalexml

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestConvertDatePattern(t *testing.T) {
	tests := []struct {
		pattern string
		r       string
	}{
		{"EEEE, MMMM d, y", "dddd, MMMM d, yyyy"},
		{"M/d/yy", "M/d/yy"},
		{"d. MMMM y", "d. MMMM yyyy"},
		{"EEE, d MMM y", "ddd, d MMM yyyy"},
		{"yyyy-MM-dd", "yyyy-MM-dd"},
		{"h:mm:ss a zzzz", "h:mm:ss AP t"},
		{"h:mm a", "h:mm AP"},
		{"HH:mm:ss v", "HH:mm:ss t"},
		{"HH:mm 'Uhr'", "HH:mm 'Uhr'"},
		{"hh:mm B", "hh:mm AP"},
		{"ss.SSS", "ss.z"},
		{"MMMMM", "MMMM"}, // no narrow month form
		{"kk:mm", "HH:mm"},
		{"cccc", "dddd"},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			test.T(t, convertDatePattern(tt.pattern), tt.r)
		})
	}
}
