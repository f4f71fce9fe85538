package qlocalexml

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	parseStrconv "github.com/tdewolff/parse/v2/strconv"
)

// LocaleKey uniquely keys the locale database. Later-processed files
// sharing a key overwrite earlier entries.
type LocaleKey struct {
	LanguageID int
	ScriptID   int
	CountryID  int
	Variant    string
}

// Locale is one fully normalized locale record.
type Locale struct {
	Language        string
	LanguageCode    string
	LanguageID      int
	LanguageEndonym string
	Script          string
	ScriptCode      string
	ScriptID        int
	Country         string
	CountryCode     string
	CountryID       int
	CountryEndonym  string
	Variant         string

	Decimal string
	Group   string
	List    string
	Percent string
	Zero    string
	Minus   string
	Plus    string
	Exp     string

	QuotationStart          string
	QuotationEnd            string
	AlternateQuotationStart string
	AlternateQuotationEnd   string

	ListPatternPartStart  string
	ListPatternPartMiddle string
	ListPatternPartEnd    string
	ListPatternPartTwo    string

	AM string
	PM string

	LongDateFormat  string
	ShortDateFormat string
	LongTimeFormat  string
	ShortTimeFormat string

	CurrencyISOCode        string
	CurrencySymbol         string
	CurrencyDisplayName    string
	CurrencyDigits         int
	CurrencyRounding       int
	CurrencyFormat         string
	CurrencyNegativeFormat string

	ByteUnit          string
	ByteSIQuantified  string
	ByteIECQuantified string

	// Back-filled by IntegrateWeekData once all records exist.
	FirstDayOfWeek string
	WeekendStart   string
	WeekendEnd     string

	Months map[string]string // naming key + "_" + calendar
	Days   map[string]string // naming key
}

func (l *Locale) Key() LocaleKey {
	return LocaleKey{l.LanguageID, l.ScriptID, l.CountryID, l.Variant}
}

// Database is the assembled locale database, exclusively owning its
// records.
type Database map[LocaleKey]*Locale

// Builder builds one normalized record per locale file.
type Builder struct {
	Src       *Source
	Resolver  *Resolver
	Calendars []string
}

var DefaultCalendars = []string{"gregorian", "persian", "islamic"}

func NewBuilder(src *Source, calendars []string) *Builder {
	return &Builder{Src: src, Resolver: NewResolver(src), Calendars: calendars}
}

// GenerateLocaleInfo builds the record for one locale file named by its
// base name. A (nil, nil) return means the file carries no locale info
// (the root placeholder, or no territory); an error is fatal to this
// file only.
func (b *Builder) GenerateLocaleInfo(name string) (*Locale, error) {
	d, err := b.Src.Locale(name)
	if err != nil {
		return nil, err
	}
	if alias := d.alias(); alias != "" {
		return nil, &RejectError{Reason: fmt.Sprintf("alias to %q", alias)}
	}
	code := func(tag string) string {
		v, _ := d.attrOf("identity/"+tag, "type")
		return v
	}
	return b.Generate(name, code("language"), code("script"), code("territory"), code("variant"))
}

// Generate builds the record for a locale whose identity codes are
// already known, as for default-content locales.
func (b *Builder) Generate(name, languageCode, scriptCode, countryCode, variantCode string) (*Locale, error) {
	if languageCode == "root" {
		return nil, nil
	}
	// Only en_US_POSIX has a variant; nobody cares about it at all.
	if variantCode != "" {
		return nil, &RejectError{Reason: fmt.Sprintf("we do not support variants (%q)", variantCode)}
	}

	languageID, err := b.Resolver.Language(languageCode)
	if err != nil {
		return nil, err
	}
	scriptID, err := b.Resolver.Script(scriptCode)
	if err != nil {
		return nil, err
	}
	if countryCode == "" {
		// only fully qualified names with a territory
		return nil, nil
	}
	countryID, err := b.Resolver.Country(countryCode)
	if err != nil {
		return nil, err
	}

	result := &Locale{
		Language:     languageList[languageID].Name,
		LanguageCode: languageCode,
		LanguageID:   languageID,
		Script:       scriptList[scriptID].Name,
		ScriptCode:   scriptCode,
		ScriptID:     scriptID,
		Country:      countryList[countryID].Name,
		CountryCode:  countryCode,
		CountryID:    countryID,
		Variant:      variantCode,
		Months:       map[string]string{},
		Days:         map[string]string{},
	}

	if err := b.resolveCurrency(result, countryCode); err != nil {
		return nil, err
	}

	x := &extractor{src: b.Src, name: name}
	x.numberSystem = x.findEntryOrDefault("numbers/defaultNumberingSystem", "")

	if result.Decimal, err = x.numberSymbol("numbers/symbols/decimal"); err != nil {
		return nil, err
	}
	if result.Group, err = x.numberSymbol("numbers/symbols/group"); err != nil {
		return nil, err
	}
	if result.Decimal == result.Group {
		return nil, errors.Errorf("decimal symbol %q equals group separator", result.Decimal)
	}
	if result.List, err = x.numberSymbol("numbers/symbols/list"); err != nil {
		return nil, err
	}
	if result.Percent, err = x.numberSymbol("numbers/symbols/percentSign"); err != nil {
		return nil, err
	}

	systems, err := b.Src.NumberSystems()
	if err != nil {
		return nil, err
	}
	if sys, ok := systems[x.numberSystem]; ok && sys.Digits != "" {
		_, size := utf8.DecodeRuneInString(sys.Digits)
		result.Zero = sys.Digits[:size]
	} else {
		b.Src.Log.Warnf("native zero detection problem for %q [number system %q]", name, x.numberSystem)
		if result.Zero, err = x.numberSymbol("numbers/symbols/nativeZeroDigit"); err != nil {
			return nil, err
		}
	}

	if result.Minus, err = x.numberSymbol("numbers/symbols/minusSign"); err != nil {
		return nil, err
	}
	if result.Plus, err = x.numberSymbol("numbers/symbols/plusSign"); err != nil {
		return nil, err
	}
	exp, err := x.numberSymbol("numbers/symbols/exponential")
	if err != nil {
		return nil, err
	}
	result.Exp = strings.ToLower(exp)

	if result.QuotationStart, err = x.findEntry("delimiters/quotationStart", DraftUnconfirmed); err != nil {
		return nil, err
	}
	if result.QuotationEnd, err = x.findEntry("delimiters/quotationEnd", DraftUnconfirmed); err != nil {
		return nil, err
	}
	if result.AlternateQuotationStart, err = x.findEntry("delimiters/alternateQuotationStart", DraftUnconfirmed); err != nil {
		return nil, err
	}
	if result.AlternateQuotationEnd, err = x.findEntry("delimiters/alternateQuotationEnd", DraftUnconfirmed); err != nil {
		return nil, err
	}

	listPart := func(part string) (string, error) {
		v, err := x.findEntry("listPatterns/listPattern/listPatternPart["+part+"]", DraftUnconfirmed)
		if err != nil {
			return "", err
		}
		return parseListPatternPart(v), nil
	}
	if result.ListPatternPartStart, err = listPart("start"); err != nil {
		return nil, err
	}
	if result.ListPatternPartMiddle, err = listPart("middle"); err != nil {
		return nil, err
	}
	if result.ListPatternPartEnd, err = listPart("end"); err != nil {
		return nil, err
	}
	if result.ListPatternPartTwo, err = listPart("2"); err != nil {
		return nil, err
	}

	// We accept only "contributed" or "approved" resolution for these;
	// see unicode.org/cldr/process.html.
	const dayPeriods = "dates/calendars/calendar[gregorian]/dayPeriods/dayPeriodContext[format]/dayPeriodWidth[wide]/dayPeriod"
	if result.AM, err = x.findEntry(dayPeriods+"[am]", DraftContributed); err != nil {
		return nil, err
	}
	if result.PM, err = x.findEntry(dayPeriods+"[pm]", DraftContributed); err != nil {
		return nil, err
	}

	dateTime := func(kind, length string) (string, error) {
		v, err := x.findEntry(fmt.Sprintf(
			"dates/calendars/calendar[gregorian]/%sFormats/%sFormatLength[%s]/%sFormat/pattern",
			kind, kind, length, kind), DraftUnconfirmed)
		if err != nil {
			return "", err
		}
		return convertDatePattern(v), nil
	}
	if result.LongDateFormat, err = dateTime("date", "full"); err != nil {
		return nil, err
	}
	if result.ShortDateFormat, err = dateTime("date", "short"); err != nil {
		return nil, err
	}
	if result.LongTimeFormat, err = dateTime("time", "full"); err != nil {
		return nil, err
	}
	if result.ShortTimeFormat, err = dateTime("time", "short"); err != nil {
		return nil, err
	}

	result.LanguageEndonym = x.endonym(languageCode, scriptCode, countryCode)
	result.CountryEndonym = x.findEntryOrDefault(
		"localeDisplayNames/territories/territory[type="+countryCode+"]", "")

	currencyFormat, err := x.numberSymbol("numbers/currencyFormats/currencyFormatLength/currencyFormat/pattern")
	if err != nil {
		return nil, err
	}
	formats := parseNumberFormat(currencyFormat, result.Minus, result.Plus)
	result.CurrencyFormat = formats[0]
	if 1 < len(formats) {
		result.CurrencyNegativeFormat = formats[1]
	}

	if result.CurrencyISOCode != "" {
		stem := "numbers/currencies/currency[" + result.CurrencyISOCode + "]/"
		result.CurrencySymbol = x.findEntryOrDefault(stem+"symbol", "")
		var names strings.Builder
		for _, tail := range []string{"", "[count=zero]", "[count=one]", "[count=two]",
			"[count=few]", "[count=many]", "[count=other]"} {
			names.WriteString(x.findEntryOrDefault(stem+"displayName"+tail, ""))
			names.WriteByte(';')
		}
		result.CurrencyDisplayName = names.String()
	}

	// Without quantifier first, then quantified each way.
	result.ByteUnit = x.findUnitDef("units/unitLength[type=long]/unit[type=digital-byte]/", "bytes")
	findShort := func(unit string) string {
		return x.findUnitDef("units/unitLength[type=short]/unit[type="+unit+"]/", "")
	}
	var known []string
	result.ByteSIQuantified = strings.Join(siQuantified(findShort, &known), ";")
	result.ByteIECQuantified = strings.Join(iecQuantified(func(unit, fallback string) string {
		return x.findUnitDef("units/unitLength[type=short]/unit[type="+unit+"]/", fallback)
	}, known), ";")

	// Month names for 12-month calendars, day names for Gregorian.
	for _, cal := range b.Calendars {
		for _, naming := range namings {
			months, err := x.monthNames(cal, naming.context, naming.width)
			if err != nil {
				return nil, err
			}
			result.Months[naming.key+"_"+cal] = months
		}
	}
	for _, naming := range namings {
		days, err := x.dayNames("gregorian", naming.context, naming.width)
		if err != nil {
			return nil, err
		}
		result.Days[naming.key] = days
	}

	return result, nil
}

// resolveCurrency scans the supplemental region-to-currency table for
// the country's current legal tender and its fraction conventions.
func (b *Builder) resolveCurrency(result *Locale, countryCode string) error {
	supp, err := b.Src.Supplemental("supplementalData.xml")
	if err != nil {
		return errors.Wrap(err, "supplemental data")
	}
	result.CurrencyDigits = 2
	result.CurrencyRounding = 1
	tags, err := supp.leaves("currencyData/region[iso3166=" + countryCode + "]")
	if err != nil {
		return nil // no currency data for this territory
	}
	for _, e := range tags {
		if e.Name != "currency" {
			continue
		}
		if e.Attr["tender"] == "false" {
			continue
		}
		if _, ended := e.Attr["to"]; !ended {
			result.CurrencyISOCode = e.Attr["iso4217"]
			break
		}
	}
	if result.CurrencyISOCode == "" {
		return nil
	}
	infos, err := supp.leaves("currencyData/fractions/info[iso4217=" + result.CurrencyISOCode + "]")
	if err != nil {
		return nil // defaults of 2 digits, rounding 1
	}
	for _, e := range infos {
		if e.Name != "info" {
			continue
		}
		if v, n := parseStrconv.ParseInt([]byte(e.Attr["digits"])); 0 < n {
			result.CurrencyDigits = int(v)
		}
		if v, n := parseStrconv.ParseInt([]byte(e.Attr["rounding"])); 0 < n {
			result.CurrencyRounding = int(v)
		}
		break
	}
	return nil
}

// IntegrateWeekData back-fills the week conventions of every record
// from the supplemental week-data table, falling back to the "001"
// world territory for unmapped countries.
func (b *Builder) IntegrateWeekData(db Database) error {
	d, err := b.Src.Supplemental("supplementalData.xml")
	if err != nil {
		return errors.Wrap(err, "week data")
	}
	lookup := func(query string) []string {
		v, err := d.attrOf(query, "territories")
		if err != nil {
			return nil
		}
		return strings.Fields(v)
	}

	firstDay := map[string]string{}
	weekendStart := map[string]string{}
	weekendEnd := map[string]string{}
	for _, day := range [...]string{"mon", "tue", "wed", "thu", "fri", "sat", "sun"} {
		for _, cc := range lookup("weekData/firstDay[day=" + day + "]") {
			firstDay[cc] = day
		}
		for _, cc := range lookup("weekData/weekendStart[day=" + day + "]") {
			weekendStart[cc] = day
		}
		for _, cc := range lookup("weekData/weekendEnd[day=" + day + "]") {
			weekendEnd[cc] = day
		}
	}

	byCountry := func(m map[string]string, cc string) string {
		if day, ok := m[cc]; ok {
			return day
		}
		return m["001"]
	}
	for _, locale := range db {
		locale.FirstDayOfWeek = byCountry(firstDay, locale.CountryCode)
		locale.WeekendStart = byCountry(weekendStart, locale.CountryCode)
		locale.WeekendEnd = byCountry(weekendEnd, locale.CountryCode)
	}
	return nil
}
