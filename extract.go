package qlocalexml

import (
	"fmt"
	"strings"
	"unicode"
)

// extractor performs the field lookups for one locale file, carrying
// the locale's default numbering system for symbol queries.
type extractor struct {
	src          *Source
	name         string // locale file base name, e.g. "en_US"
	numberSystem string
}

func (x *extractor) findEntry(query string, minDraft Draft) (string, error) {
	return x.src.FindEntry(x.name, query, minDraft)
}

func (x *extractor) findEntryOrDefault(query, def string) string {
	if v, err := x.findEntry(query, DraftUnconfirmed); err == nil {
		return v
	}
	return def
}

// firstOf evaluates queries left to right and returns the first
// non-empty result.
func (x *extractor) firstOf(queries ...string) string {
	for _, q := range queries {
		if v := x.findEntryOrDefault(q, ""); v != "" {
			return v
		}
	}
	return ""
}

// numberSymbol looks a symbol up scoped to the default numbering
// system, retries with the scope on the symbols table itself (the
// post-1.9 layout), and finally falls back to the unscoped query.
func (x *extractor) numberSymbol(query string) (string, error) {
	if x.numberSystem != "" {
		if v, err := x.findEntry(query+"[numberSystem="+x.numberSystem+"]", DraftUnconfirmed); err == nil {
			return v, nil
		}
		if alt := strings.Replace(query, "/symbols/", "/symbols[numberSystem="+x.numberSystem+"]/", 1); alt != query {
			if v, err := x.findEntry(alt, DraftUnconfirmed); err == nil {
				return v, nil
			}
		}
	}
	return x.findEntry(query, DraftUnconfirmed)
}

// namings spans the two context dimensions of month and day names.
var namings = []struct {
	key     string
	context string
	width   string
}{
	{"standaloneLong", "stand-alone", "wide"},
	{"standaloneShort", "stand-alone", "abbreviated"},
	{"standaloneNarrow", "stand-alone", "narrow"},
	{"long", "format", "wide"},
	{"short", "format", "abbreviated"},
	{"narrow", "format", "narrow"},
}

var weekDays = [...]string{"sun", "mon", "tue", "wed", "thu", "fri", "sat"}

// monthNames returns the twelve month names for a calendar, context and
// width, semicolon-joined with a trailing separator.
func (x *extractor) monthNames(calendar, context, width string) (string, error) {
	var b strings.Builder
	for i := 1; i <= 12; i++ {
		v, err := x.findEntry(fmt.Sprintf(
			"dates/calendars/calendar[%s]/months/monthContext[%s]/monthWidth[%s]/month[%d]",
			calendar, context, width, i), DraftUnconfirmed)
		if err != nil {
			return "", err
		}
		b.WriteString(v)
		b.WriteByte(';')
	}
	return b.String(), nil
}

// dayNames returns the seven day names, Sunday first, semicolon-joined
// with a trailing separator.
func (x *extractor) dayNames(calendar, context, width string) (string, error) {
	var b strings.Builder
	for _, day := range weekDays {
		v, err := x.findEntry(fmt.Sprintf(
			"dates/calendars/calendar[%s]/days/dayContext[%s]/dayWidth[%s]/day[%s]",
			calendar, context, width, day), DraftUnconfirmed)
		if err != nil {
			return "", err
		}
		b.WriteString(v)
		b.WriteByte(';')
	}
	return b.String(), nil
}

// endonym finds the language's name for itself, trying four query
// specificities from most to least qualified.
func (x *extractor) endonym(languageCode, scriptCode, countryCode string) string {
	const stem = "localeDisplayNames/languages/language[type=%s]"
	var queries []string
	if scriptCode != "" && countryCode != "" {
		queries = append(queries, fmt.Sprintf(stem, languageCode+"_"+scriptCode+"_"+countryCode))
	}
	if scriptCode != "" {
		queries = append(queries, fmt.Sprintf(stem, languageCode+"_"+scriptCode))
	}
	if countryCode != "" {
		queries = append(queries, fmt.Sprintf(stem, languageCode+"_"+countryCode))
	}
	queries = append(queries, fmt.Sprintf(stem, languageCode))
	return x.firstOf(queries...)
}

var unitCounts = [...]string{"many", "few", "two", "other", "zero", "one"}

// findUnitDef prefers a plural-count unit pattern over the generic
// display name; en.xml's displayName for a quantified unit is kByte
// rather than kB. A leading count placeholder is stripped.
func (x *extractor) findUnitDef(stem, fallback string) string {
	for _, count := range unitCounts {
		ans, err := x.findEntry(stem+"unitPattern[count="+count+"]", DraftUnconfirmed)
		if err != nil {
			continue
		}
		if strings.HasPrefix(ans, "{0}") {
			ans = strings.TrimLeftFunc(ans[3:], unicode.IsSpace)
		}
		if ans != "" {
			return ans
		}
	}
	return x.findEntryOrDefault(stem+"displayName", fallback)
}
