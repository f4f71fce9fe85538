package qlocalexml

import (
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Triple is a (language, script, country) identity by canonical name,
// with Any* placeholder names for unspecified positions.
type Triple struct {
	Language string
	Script   string
	Country  string
}

// SubtagPair is one resolved likely-subtag rule: From may be
// underspecified, To is fully specified.
type SubtagPair struct {
	From Triple
	To   Triple
}

// SplitLocale splits a locale tag on underscores. Script is a
// capitalised four-letter token, territory is upper-case or numeric;
// either is left empty when unspecified. single is true when the name
// is a bare language tag; cruft holds any unparsed trailing fields.
func SplitLocale(name string) (language, script, country string, single bool, cruft string) {
	parts := strings.Split(name, "_")
	language = parts[0]
	if len(parts) == 1 {
		single = true
		return
	}
	rest := parts[1:]
	if isScriptTag(rest[0]) {
		script = rest[0]
		rest = rest[1:]
	}
	if 0 < len(rest) && isTerritoryTag(rest[0]) {
		country = rest[0]
		rest = rest[1:]
	}
	cruft = strings.Join(rest, "_")
	return
}

func isScriptTag(tag string) bool {
	if len(tag) != 4 || tag[0] < 'A' || 'Z' < tag[0] {
		return false
	}
	for i := 1; i < 4; i++ {
		if tag[i] < 'a' || 'z' < tag[i] {
			return false
		}
	}
	return true
}

func isTerritoryTag(tag string) bool {
	if tag == "" {
		return false
	}
	upper, digit := true, true
	for i := 0; i < len(tag); i++ {
		if tag[i] < 'A' || 'Z' < tag[i] {
			upper = false
		}
		if tag[i] < '0' || '9' < tag[i] {
			digit = false
		}
	}
	return upper || digit
}

// parseLocaleTriple resolves a locale tag into canonical names, using
// the Any* placeholders for unspecified positions. A bare "und" is
// rejected; "und" as the language of a longer tag means AnyLanguage.
func (r *Resolver) parseLocaleTriple(name string) (Triple, error) {
	if name == "und" {
		return Triple{}, &RejectError{Reason: "we treat unknown locale like C"}
	}
	t := Triple{Language: "AnyLanguage", Script: "AnyScript", Country: "AnyCountry"}
	language, script, country, _, cruft := SplitLocale(name)
	if cruft != "" && r.src.Log != nil {
		r.src.Log.Warnf("ignoring unparsed cruft %q in %q", cruft, name)
	}
	if language != "und" {
		id := languageCodeToId(language)
		if id == -1 {
			return Triple{}, &CodeError{Form: "language", Code: language}
		}
		t.Language = languageList[id].Name
	}
	if script != "" {
		id := scriptCodeToId(script)
		if id == -1 {
			return Triple{}, &CodeError{Form: "script", Code: script}
		}
		t.Script = scriptList[id].Name
	}
	if country != "" {
		id := countryCodeToId(country)
		if id == -1 {
			return Triple{}, &CodeError{Form: "country", Code: country}
		}
		t.Country = countryList[id].Name
	}
	return t, nil
}

// SubtagScanner produces the resolved likely-subtag pairs one at a
// time. It is single-pass: consumed exactly once by the output stage.
type SubtagScanner struct {
	res   *Resolver
	log   *zap.SugaredLogger
	tags  []Tag
	i     int
	pair  SubtagPair
	skips []string
}

// LikelySubtags reads the supplemental likely-subtag inheritance table
// and returns a scanner over its resolved pairs.
func LikelySubtags(src *Source, res *Resolver) (*SubtagScanner, error) {
	d, err := src.Supplemental("likelySubtags.xml")
	if err != nil {
		return nil, errors.Wrap(err, "likely subtags")
	}
	tags, err := d.leaves("likelySubtags")
	if err != nil {
		return nil, err
	}
	return &SubtagScanner{res: res, log: src.Log, tags: tags}, nil
}

// Scan advances to the next resolvable pair. Entries whose "from"
// language is unknown are silently recorded as skips when "to"
// textually extends "from" (the known incomplete-tag convention), and
// reported individually otherwise.
func (s *SubtagScanner) Scan() bool {
	for s.i < len(s.tags) {
		tag := s.tags[s.i]
		s.i++
		if tag.Name != "likelySubtag" {
			continue
		}
		from, to := tag.Attr["from"], tag.Attr["to"]
		fromTriple, err := s.res.parseLocaleTriple(from)
		var toTriple Triple
		if err == nil {
			toTriple, err = s.res.parseLocaleTriple(to)
		}
		if err != nil {
			var codeErr *CodeError
			if errors.As(err, &codeErr) && codeErr.Form == "language" &&
				codeErr.Code == from && strings.HasPrefix(to, from) {
				s.skips = append(s.skips, to)
			} else {
				s.log.Warnf("skipping likelySubtag %q -> %q (%v)", from, to, err)
			}
			continue
		}
		// Substitute per unicode.org/reports/tr35/#Likely_Subtags.
		if toTriple.Country == "AnyCountry" && fromTriple.Country != toTriple.Country {
			toTriple.Country = fromTriple.Country
		}
		if toTriple.Script == "AnyScript" && fromTriple.Script != toTriple.Script {
			toTriple.Script = fromTriple.Script
		}
		s.pair = SubtagPair{From: fromTriple, To: toTriple}
		return true
	}
	return false
}

// Pair returns the pair Scan last advanced to.
func (s *SubtagScanner) Pair() SubtagPair {
	return s.pair
}

// Skipped lists the entries recorded as structurally-expected skips.
func (s *SubtagScanner) Skipped() []string {
	return s.skips
}
