package qlocalexml

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/tdewolff/test"
)

func TestGenerateLocaleInfo(t *testing.T) {
	b := NewBuilder(newTestSource(), []string{"gregorian"})
	l, err := b.GenerateLocaleInfo("en_US")
	test.Error(t, err)
	test.That(t, l != nil, "expected a locale record")

	test.T(t, l.Language, "English")
	test.T(t, l.LanguageCode, "en")
	test.T(t, l.LanguageID, 32)
	test.T(t, l.LanguageEndonym, "American English")
	test.T(t, l.Script, "AnyScript")
	test.T(t, l.ScriptID, 0)
	test.T(t, l.Country, "UnitedStates")
	test.T(t, l.CountryCode, "US")
	test.T(t, l.CountryID, 163)
	test.T(t, l.CountryEndonym, "United States")
	test.T(t, l.Key(), LocaleKey{32, 0, 163, ""})

	test.T(t, l.Decimal, ".")
	test.T(t, l.Group, ",")
	test.T(t, l.List, ";")
	test.T(t, l.Percent, "%")
	test.T(t, l.Zero, "0")
	test.T(t, l.Minus, "-")
	test.T(t, l.Plus, "+")
	test.T(t, l.Exp, "e")

	test.T(t, l.QuotationStart, "“")
	test.T(t, l.QuotationEnd, "”")
	test.T(t, l.AlternateQuotationStart, "‘")
	test.T(t, l.AlternateQuotationEnd, "’")

	test.T(t, l.ListPatternPartStart, "%1, %2")
	test.T(t, l.ListPatternPartMiddle, "%1, %2")
	test.T(t, l.ListPatternPartEnd, "%1, and %2")
	test.T(t, l.ListPatternPartTwo, "%1 and %2")

	// en_US's own "a.m." is only unconfirmed; root's AM wins
	test.T(t, l.AM, "AM")
	test.T(t, l.PM, "PM")

	test.T(t, l.LongDateFormat, "dddd, MMMM d, yyyy")
	test.T(t, l.ShortDateFormat, "M/d/yy")
	test.T(t, l.LongTimeFormat, "h:mm:ss AP t")
	test.T(t, l.ShortTimeFormat, "h:mm AP")

	test.T(t, l.CurrencyISOCode, "USD")
	test.T(t, l.CurrencySymbol, "$")
	test.T(t, l.CurrencyDisplayName, "US Dollar;;US dollar;;;;US dollars;")
	test.T(t, l.CurrencyDigits, 2)
	test.T(t, l.CurrencyRounding, 1)
	test.T(t, l.CurrencyFormat, "%1 %2")
	test.T(t, l.CurrencyNegativeFormat, "(%1 %2)")

	test.T(t, l.ByteUnit, "bytes")
	test.T(t, l.ByteSIQuantified, "kB;MB;GB;TB;PB;EB")
	test.T(t, l.ByteIECQuantified, "KiB;MiB;GiB;TiB;PiB;EiB")

	test.T(t, l.Months["long_gregorian"],
		"January;February;March;April;May;June;July;August;September;October;November;December;")
	test.T(t, l.Months["short_gregorian"],
		"Jan;Feb;Mar;Apr;May;Jun;Jul;Aug;Sep;Oct;Nov;Dec;")
	// stand-alone names alias to the format context in root
	test.T(t, l.Months["standaloneNarrow_gregorian"], "J;F;M;A;M;J;J;A;S;O;N;D;")
	test.T(t, l.Days["long"], "Sunday;Monday;Tuesday;Wednesday;Thursday;Friday;Saturday;")
	test.T(t, l.Days["short"], "Sun;Mon;Tue;Wed;Thu;Fri;Sat;")
	test.T(t, l.Days["standaloneNarrow"], "S;M;T;W;T;F;S;")
}

func TestGenerateSkips(t *testing.T) {
	tests := []struct {
		name   string
		reject bool
	}{
		{"root", false}, // the root placeholder has no locale info
		{"en", false},   // nor does a file without a territory
		{"en_US_POSIX", true},
		{"in", true}, // legacy alias file
	}
	b := NewBuilder(newTestSource(), []string{"gregorian"})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := b.GenerateLocaleInfo(tt.name)
			test.That(t, l == nil, "expected no locale record, got", l)
			if tt.reject {
				var rej *RejectError
				test.That(t, errors.As(err, &rej), "expected a reject error, got", err)
			} else {
				test.Error(t, err)
			}
		})
	}
}

func TestIntegrateWeekData(t *testing.T) {
	b := NewBuilder(newTestSource(), []string{"gregorian"})
	l, err := b.GenerateLocaleInfo("en_US")
	test.Error(t, err)
	db := Database{l.Key(): l}
	test.Error(t, b.IntegrateWeekData(db))

	// US is not mapped in the fixture week data; the 001 world
	// territory backs it up
	test.T(t, l.FirstDayOfWeek, "mon")
	test.T(t, l.WeekendStart, "sat")
	test.T(t, l.WeekendEnd, "sun")
}
