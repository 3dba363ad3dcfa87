package category

import (
	"time"

	"golang.org/x/text/language"
)

// Label is an age-category name as shown on rosters and competition forms.
type Label string

// Category labels, youngest to oldest.
const (
	MiniPoussin Label = "مصغر"
	Poussin     Label = "براعم صغار"
	Benjamin    Label = "براعم"
	Minime      Label = "أصاغر"
	Cadet       Label = "صغار"
	Junior      Label = "ناشئين"
	Espoir      Label = "أواسط"
	Senior      Label = "أكابر"
)

// noMaximumAge marks the open-ended oldest band.
const noMaximumAge = 0

// Ordered lists every label, youngest first.
var Ordered = []Label{MiniPoussin, Poussin, Benjamin, Minime, Cadet, Junior, Espoir, Senior}

// Band maps an inclusive age range to a label. MaxAge 0 means open-ended.
type Band struct {
	Label  Label
	MinAge int
	MaxAge int
}

// Table is a closed lookup of age bands. Bands must not overlap.
type Table []Band

// DefaultTable is the federation's current age grid.
var DefaultTable = Table{
	{MiniPoussin, 5, 7},
	{Poussin, 8, 9},
	{Benjamin, 10, 11},
	{Minime, 12, 13},
	{Cadet, 14, 15},
	{Junior, 16, 17},
	{Espoir, 18, 20},
	{Senior, 21, noMaximumAge},
}

// Lookup returns the label for an age, if any band covers it.
func (t Table) Lookup(age int) (Label, bool) {
	for _, b := range t {
		if age < b.MinAge {
			continue
		}
		if b.MaxAge != noMaximumAge && age > b.MaxAge {
			continue
		}
		return b.Label, true
	}
	return "", false
}

// BirthYears returns the inclusive birth-year range a band covers for a
// competition year, counting age as competition year minus birth year.
// Open-ended bands report 0 as the earliest year.
func (b Band) BirthYears(competitionYear int) (from, to int) {
	to = competitionYear - b.MinAge
	if b.MaxAge != noMaximumAge {
		from = competitionYear - b.MaxAge
	}
	return from, to
}

// Classifier classifies athletes against a lookup table.
type Classifier struct {
	Table Table
}

// AgeOn returns the age in whole years on asOf.
// The year is not counted until the birth month/day has been reached.
func AgeOn(dob, asOf time.Time) int {
	age := asOf.Year() - dob.Year()
	if asOf.Month() < dob.Month() || (asOf.Month() == dob.Month() && asOf.Day() < dob.Day()) {
		age--
	}
	return age
}

// Classify returns the category label for a birth date on a given day.
// PRE: none
// POST: Returns false when dob is nil or no band covers the age
func (c Classifier) Classify(dob *time.Time, asOf time.Time) (Label, bool) {
	if dob == nil || dob.IsZero() {
		return "", false
	}
	table := c.Table
	if table == nil {
		table = DefaultTable
	}
	return table.Lookup(AgeOn(*dob, asOf))
}

// Classify uses DefaultTable.
func Classify(dob *time.Time, asOf time.Time) (Label, bool) {
	return Classifier{Table: DefaultTable}.Classify(dob, asOf)
}

// Index returns the label's position in Ordered, or -1.
func Index(l Label) int {
	for i, o := range Ordered {
		if o == l {
			return i
		}
	}
	return -1
}

var frenchNames = map[Label]string{
	MiniPoussin: "Mini-poussins",
	Poussin:     "Poussins",
	Benjamin:    "Benjamins",
	Minime:      "Minimes",
	Cadet:       "Cadets",
	Junior:      "Juniors",
	Espoir:      "Espoirs",
	Senior:      "Seniors",
}

// Supported locales; the first is the default.
var Supported = []language.Tag{language.Arabic, language.French}

var matcher = language.NewMatcher(Supported)

// MatchTag picks the supported locale closest to the requested tags.
func MatchTag(requested ...language.Tag) language.Tag {
	_, idx, _ := matcher.Match(requested...)
	return Supported[idx]
}

// DisplayName returns the label in the given locale. Arabic is the stored form.
func DisplayName(l Label, tag language.Tag) string {
	base, _ := MatchTag(tag).Base()
	if fr, _ := language.French.Base(); base == fr {
		if name, ok := frenchNames[l]; ok {
			return name
		}
	}
	return string(l)
}
