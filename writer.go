package qlocalexml

import (
	"bufio"
	"encoding/xml"
	"io"
	"strconv"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Writer serializes the normalized locale data as a QLocaleXML
// document. Sections must be written in order: Version, EnumData,
// LikelySubtags, Locales, Close.
type Writer struct {
	w      *bufio.Writer
	indent int
}

func NewWriter(w io.Writer) *Writer {
	out := &Writer{w: bufio.NewWriter(w)}
	out.open("localeDatabase")
	return out
}

func (w *Writer) line(s string) {
	for i := 0; i < w.indent; i++ {
		w.w.WriteString("    ")
	}
	w.w.WriteString(s)
	w.w.WriteByte('\n')
}

func (w *Writer) open(name string) {
	w.line("<" + name + ">")
	w.indent++
}

func (w *Writer) close(name string) {
	w.indent--
	w.line("</" + name + ">")
}

func (w *Writer) elem(name, value string) {
	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(name)
	b.WriteByte('>')
	xml.EscapeText(&b, []byte(value))
	b.WriteString("</")
	b.WriteString(name)
	b.WriteByte('>')
	w.line(b.String())
}

func (w *Writer) elemInt(name string, value int) {
	w.elem(name, strconv.Itoa(value))
}

func (w *Writer) Version(version string) {
	w.elem("version", version)
}

// EnumData writes the three vocabulary tables, sorted by id.
func (w *Writer) EnumData() {
	table := func(listName, entryName string, list map[int]enumEntry) {
		w.open(listName)
		ids := maps.Keys(list)
		slices.Sort(ids)
		for _, id := range ids {
			w.open(entryName)
			w.elem("name", list[id].Name)
			w.elemInt("id", id)
			w.elem("code", list[id].Code)
			w.close(entryName)
		}
		w.close(listName)
	}
	table("languageList", "language", languageList)
	table("scriptList", "script", scriptList)
	table("countryList", "country", countryList)
}

// LikelySubtags consumes the scanner, writing each resolved pair.
func (w *Writer) LikelySubtags(s *SubtagScanner) {
	w.open("likelySubtags")
	for s.Scan() {
		pair := s.Pair()
		w.open("likelySubtag")
		w.triple("from", pair.From)
		w.triple("to", pair.To)
		w.close("likelySubtag")
	}
	w.close("likelySubtags")
}

func (w *Writer) triple(name string, t Triple) {
	w.open(name)
	w.elem("language", t.Language)
	w.elem("script", t.Script)
	w.elem("country", t.Country)
	w.close(name)
}

// Locales writes the database sorted by identity key, month names
// grouped by the supported calendars.
func (w *Writer) Locales(db Database, calendars []string) {
	keys := maps.Keys(db)
	slices.SortFunc(keys, func(a, b LocaleKey) int {
		if a.LanguageID != b.LanguageID {
			return a.LanguageID - b.LanguageID
		}
		if a.ScriptID != b.ScriptID {
			return a.ScriptID - b.ScriptID
		}
		if a.CountryID != b.CountryID {
			return a.CountryID - b.CountryID
		}
		return strings.Compare(a.Variant, b.Variant)
	})
	w.open("localeList")
	for _, key := range keys {
		l := db[key]
		w.open("locale")
		w.elem("language", l.Language)
		w.elem("languageCode", l.LanguageCode)
		w.elem("languageEndonym", l.LanguageEndonym)
		w.elem("script", l.Script)
		w.elem("scriptCode", l.ScriptCode)
		w.elem("country", l.Country)
		w.elem("countryCode", l.CountryCode)
		w.elem("countryEndonym", l.CountryEndonym)
		w.elem("decimal", l.Decimal)
		w.elem("group", l.Group)
		w.elem("list", l.List)
		w.elem("percent", l.Percent)
		w.elem("zero", l.Zero)
		w.elem("minus", l.Minus)
		w.elem("plus", l.Plus)
		w.elem("exp", l.Exp)
		w.elem("quotationStart", l.QuotationStart)
		w.elem("quotationEnd", l.QuotationEnd)
		w.elem("alternateQuotationStart", l.AlternateQuotationStart)
		w.elem("alternateQuotationEnd", l.AlternateQuotationEnd)
		w.elem("listPatternPartStart", l.ListPatternPartStart)
		w.elem("listPatternPartMiddle", l.ListPatternPartMiddle)
		w.elem("listPatternPartEnd", l.ListPatternPartEnd)
		w.elem("listPatternPartTwo", l.ListPatternPartTwo)
		w.elem("am", l.AM)
		w.elem("pm", l.PM)
		w.elem("firstDayOfWeek", l.FirstDayOfWeek)
		w.elem("weekendStart", l.WeekendStart)
		w.elem("weekendEnd", l.WeekendEnd)
		w.elem("longDateFormat", l.LongDateFormat)
		w.elem("shortDateFormat", l.ShortDateFormat)
		w.elem("longTimeFormat", l.LongTimeFormat)
		w.elem("shortTimeFormat", l.ShortTimeFormat)
		w.elem("currencyIsoCode", l.CurrencyISOCode)
		w.elem("currencySymbol", l.CurrencySymbol)
		w.elem("currencyDisplayName", l.CurrencyDisplayName)
		w.elemInt("currencyDigits", l.CurrencyDigits)
		w.elemInt("currencyRounding", l.CurrencyRounding)
		w.elem("currencyFormat", l.CurrencyFormat)
		w.elem("currencyNegativeFormat", l.CurrencyNegativeFormat)
		w.elem("byteUnit", l.ByteUnit)
		w.elem("byteSiQuantified", l.ByteSIQuantified)
		w.elem("byteIecQuantified", l.ByteIECQuantified)
		for _, cal := range calendars {
			for _, naming := range namings {
				w.elem(naming.key+"Months_"+cal, l.Months[naming.key+"_"+cal])
			}
		}
		for _, naming := range namings {
			w.elem(naming.key+"Days", l.Days[naming.key])
		}
		w.close("locale")
	}
	w.close("localeList")
}

// Close ends the document and flushes.
func (w *Writer) Close() error {
	w.close("localeDatabase")
	return w.w.Flush()
}
