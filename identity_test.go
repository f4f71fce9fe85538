package qlocalexml

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/tdewolff/test"
)

func TestResolver(t *testing.T) {
	r := NewResolver(newTestSource())
	tests := []struct {
		form string
		code string
		id   int
	}{
		{"language", "en", 32},
		{"language", "fr", 39},
		{"script", "", 0},
		{"script", "Latn", 21},
		{"country", "GB", 162},
		{"country", "US", 163},
	}
	for _, tt := range tests {
		t.Run(tt.form+" "+tt.code, func(t *testing.T) {
			var id int
			var err error
			switch tt.form {
			case "language":
				id, err = r.Language(tt.code)
			case "script":
				id, err = r.Script(tt.code)
			case "country":
				id, err = r.Country(tt.code)
			}
			test.Error(t, err)
			test.T(t, id, tt.id)

			// resolution is a pure table lookup, so it must repeat
			switch tt.form {
			case "language":
				id, _ = r.Language(tt.code)
			case "script":
				id, _ = r.Script(tt.code)
			case "country":
				id, _ = r.Country(tt.code)
			}
			test.T(t, id, tt.id)
		})
	}
}

func TestUnknownCode(t *testing.T) {
	r := NewResolver(newTestSource())

	// tlh is not in the vocabulary tables, but the repository's own
	// en.xml names it; the error should pass the name along.
	_, err := r.Language("tlh")
	var codeErr *CodeError
	test.That(t, errors.As(err, &codeErr), "expected a code error, got", err)
	test.T(t, codeErr.Form, "language")
	test.T(t, codeErr.Code, "tlh")
	test.T(t, codeErr.Name, "Klingon")
	test.That(t, strings.Contains(err.Error(), `could use "Klingon"`), "got", err.Error())

	_, err = r.Language("aax")
	test.That(t, errors.As(err, &codeErr), "expected a code error, got", err)
	test.T(t, codeErr.Code, "aax")
}
