package qlocalexml

import (
	"testing"

	"github.com/tdewolff/test"
	"go.uber.org/zap"
)

func newTestSource() *Source {
	return NewSource("testdata/cldr/main", zap.NewNop().Sugar())
}

func TestParseDraft(t *testing.T) {
	tests := []struct {
		level string
		r     Draft
	}{
		{"", DraftApproved},
		{"approved", DraftApproved},
		{"contributed", DraftContributed},
		{"provisional", DraftProvisional},
		{"unconfirmed", DraftUnconfirmed},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			d, err := ParseDraft(tt.level)
			test.Error(t, err)
			test.T(t, d, tt.r)
		})
	}
	_, err := ParseDraft("bogus")
	test.That(t, err != nil, "bogus draft level must error")
}

func TestFindEntry(t *testing.T) {
	const dayPeriods = "dates/calendars/calendar[gregorian]/dayPeriods/dayPeriodContext[format]/dayPeriodWidth[wide]/dayPeriod"
	tests := []struct {
		name     string
		locale   string
		query    string
		minDraft Draft
		r        string
	}{
		// inherited from root through the en_US -> en -> root chain
		{"chain", "en_US", "numbers/symbols[numberSystem=latn]/decimal", DraftUnconfirmed, "."},
		{"own file", "en", "localeDisplayNames/languages/language[type=tlh]", DraftUnconfirmed, "Klingon"},
		// the unconfirmed en_US entry is passed over for root's
		{"draft filtered", "en_US", dayPeriods + "[am]", DraftContributed, "AM"},
		{"draft accepted", "en_US", dayPeriods + "[am]", DraftUnconfirmed, "a.m."},
		{"contributed kept", "en_US", dayPeriods + "[pm]", DraftContributed, "PM"},
		// stand-alone month names alias to the format context in root
		{"alias", "en_US", "dates/calendars/calendar[gregorian]/months/monthContext[stand-alone]/monthWidth[wide]/month[1]", DraftUnconfirmed, "January"},
		{"calendar alias", "en_US", "dates/calendars/calendar[persian]/months/monthContext[format]/monthWidth[abbreviated]/month[12]", DraftUnconfirmed, "Dec"},
	}
	src := newTestSource()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := src.FindEntry(tt.locale, tt.query, tt.minDraft)
			test.Error(t, err)
			test.T(t, v, tt.r)
		})
	}

	_, err := src.FindEntry("en_US", "numbers/symbols/noSuchSymbol", DraftUnconfirmed)
	test.That(t, IsNotFound(err), "expected a not-found error, got", err)
}

func TestDocumentAlias(t *testing.T) {
	src := newTestSource()
	d, err := src.Locale("in")
	test.Error(t, err)
	test.T(t, d.alias(), "id")
	d, err = src.Locale("en")
	test.Error(t, err)
	test.T(t, d.alias(), "")
}

func TestLeaves(t *testing.T) {
	src := newTestSource()
	d, err := src.Supplemental("supplementalData.xml")
	test.Error(t, err)
	tags, err := d.leaves("currencyData/region[iso3166=US]")
	test.Error(t, err)
	test.T(t, len(tags), 3)
	test.T(t, tags[0].Name, "currency")
	test.T(t, tags[0].Attr["iso4217"], "USS")
	test.T(t, tags[2].Attr["iso4217"], "USD")
}

func TestDefaultContentLocales(t *testing.T) {
	src := newTestSource()
	locales, err := src.DefaultContentLocales()
	test.Error(t, err)
	test.T(t, locales, []string{"en_US", "fr_FR", "en"})
}

func TestNumberSystems(t *testing.T) {
	src := newTestSource()
	systems, err := src.NumberSystems()
	test.Error(t, err)
	test.T(t, systems["latn"].Digits, "0123456789")
	test.T(t, systems["roman"].Type, "algorithmic")
	// brah's zero is an astral-plane digit and must be excluded
	_, ok := systems["brah"]
	test.That(t, !ok, "brah must be skipped")
	test.T(t, len(systems), 3)
}
