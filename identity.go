package qlocalexml

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// CodeError reports a language, script or country code the vocabulary
// tables do not know. Name, when non-empty, is a display name recovered
// for the code, worth mentioning so the tables can be extended.
type CodeError struct {
	Form string // "language", "script" or "country"
	Code string
	Name string
}

func (e *CodeError) Error() string {
	msg := fmt.Sprintf("unknown %s code %q", e.Form, e.Code)
	if e.Name != "" {
		msg += fmt.Sprintf(" - could use %q", e.Name)
	}
	return msg
}

// RejectError marks a locale file that is structurally out of scope:
// an alias to another locale, the root placeholder or a variant locale.
type RejectError struct {
	Reason string
}

func (e *RejectError) Error() string {
	return e.Reason
}

// Resolver maps raw locale identifier tags to the numeric identity
// codes of the vocabulary tables. Unknown codes come back as a
// *CodeError that names the code when either the repository's own
// en.xml tables or the x/text display tables know it.
type Resolver struct {
	src *Source
}

func NewResolver(src *Source) *Resolver {
	return &Resolver{src: src}
}

func (r *Resolver) Language(code string) (int, error) {
	if id := languageCodeToId(code); 0 < id {
		return id, nil
	}
	return 0, r.unknownCode("language", code)
}

func (r *Resolver) Script(code string) (int, error) {
	if id := scriptCodeToId(code); id != -1 {
		return id, nil
	}
	return 0, r.unknownCode("script", code)
}

func (r *Resolver) Country(code string) (int, error) {
	if id := countryCodeToId(code); 0 < id {
		return id, nil
	}
	return 0, r.unknownCode("country", code)
}

func (r *Resolver) unknownCode(form, code string) *CodeError {
	name := r.src.codeName(form, code)
	if name == "" {
		name = englishName(form, code)
	}
	return &CodeError{Form: form, Code: code, Name: name}
}

// englishName asks the x/text display tables for an English name, for
// codes that en.xml does not cover either.
func englishName(form, code string) string {
	switch form {
	case "language":
		if b, err := language.ParseBase(code); err == nil {
			return display.English.Languages().Name(b)
		}
	case "script":
		if s, err := language.ParseScript(code); err == nil {
			return display.English.Scripts().Name(s)
		}
	case "country":
		if reg, err := language.ParseRegion(code); err == nil {
			return display.English.Regions().Name(reg)
		}
	}
	return ""
}
