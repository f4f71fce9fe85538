package qlocalexml

import (
	"unicode/utf8"

	"github.com/pkg/errors"
)

// NumberSystem describes one numbering system from the supplemental
// numberingSystems table: its digit glyphs and declared type.
type NumberSystem struct {
	ID     string
	Digits string
	Type   string
}

// NumberSystems loads the numbering-system table on first use and
// caches it for the rest of the run. Systems whose zero digit does not
// fit a single UTF-16 code unit are excluded with a diagnostic, as the
// output encoding stores digits in basic character units.
func (s *Source) NumberSystems() (map[string]NumberSystem, error) {
	if s.numberSystems != nil {
		return s.numberSystems, nil
	}
	d, err := s.Supplemental("numberingSystems.xml")
	if err != nil {
		return nil, errors.Wrap(err, "numbering systems")
	}
	tags, err := d.leaves("numberingSystems")
	if err != nil {
		return nil, err
	}
	systems := map[string]NumberSystem{}
	for _, tag := range tags {
		if tag.Name != "numberingSystem" {
			continue
		}
		ns := NumberSystem{
			ID:     tag.Attr["id"],
			Digits: tag.Attr["digits"],
			Type:   tag.Attr["type"],
		}
		if ns.ID == "" {
			continue
		}
		if ns.Digits != "" {
			if zero, _ := utf8.DecodeRuneInString(ns.Digits); 0xFFFF < zero {
				s.Log.Warnf("skipping number system %q [can't represent its zero, U+%X]", ns.ID, zero)
				continue
			}
		}
		systems[ns.ID] = ns
	}
	s.numberSystems = systems
	return systems, nil
}
