package qlocalexml

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestQuantifiedByteUnits(t *testing.T) {
	tests := []struct {
		name  string
		units map[string]string
		si    []string
		iec   []string
	}{
		{"no data", nil,
			[]string{"kB", "MB", "GB", "TB", "PB", "EB"},
			[]string{"KiB", "MiB", "GiB", "TiB", "PiB", "EiB"}},
		{"english", map[string]string{
			"digital-kilobyte": "kB", "digital-megabyte": "MB",
			"digital-gigabyte": "GB", "digital-terabyte": "TB"},
			[]string{"kB", "MB", "GB", "TB", "PB", "EB"},
			[]string{"KiB", "MiB", "GiB", "TiB", "PiB", "EiB"}},
		// French spells byte "octet"; Po and Eo extrapolate from the
		// consistent ko..To suffix, and so does the IEC series.
		{"french", map[string]string{
			"digital-kilobyte": "ko", "digital-megabyte": "Mo",
			"digital-gigabyte": "Go", "digital-terabyte": "To"},
			[]string{"ko", "Mo", "Go", "To", "Po", "Eo"},
			[]string{"Kio", "Mio", "Gio", "Tio", "Pio", "Eio"}},
		// An inconsistent suffix falls back to the plain B forms.
		{"mixed", map[string]string{
			"digital-kilobyte": "ko", "digital-megabyte": "Mb"},
			[]string{"ko", "Mb", "GB", "TB", "PB", "EB"},
			[]string{"KiB", "MiB", "GiB", "TiB", "PiB", "EiB"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var known []string
			si := siQuantified(func(unit string) string {
				return tt.units[unit]
			}, &known)
			test.T(t, si, tt.si)
			iec := iecQuantified(func(unit, fallback string) string {
				if v, ok := tt.units[unit]; ok {
					return v
				}
				return fallback
			}, known)
			test.T(t, iec, tt.iec)
		})
	}
}
