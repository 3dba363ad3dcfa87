package weightclass

import (
	"strconv"
	"strings"
	"unicode"

	"clubdesk/internal/domain/category"
)

// Gender values accepted on athlete profiles.
type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
)

// ParseGender normalizes a stored gender value. Unknown values yield "".
func ParseGender(s string) Gender {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male", "m", "ذكر":
		return Male
	case "female", "f", "أنثى":
		return Female
	}
	return ""
}

// Key identifies one (category, gender) row of the table.
type Key struct {
	Category category.Label
	Gender   Gender
}

// Table maps a category and gender to its ordered weight-class labels.
type Table map[Key][]string

var (
	youngMale     = []string{"-30", "-34", "-38", "-42", "-46", "-50", "-55", "+55"}
	youngFemale   = []string{"-28", "-32", "-36", "-40", "-44", "-48", "-52", "+52"}
	minimeMale    = []string{"-34", "-38", "-42", "-46", "-50", "-55", "-60", "-66", "+66"}
	minimeFemale  = []string{"-32", "-36", "-40", "-44", "-48", "-52", "-57", "-63", "+63"}
	juniorMale    = []string{"-50", "-55", "-60", "-66", "-73", "-81", "-90", "+90"}
	juniorFemale  = []string{"-40", "-44", "-48", "-52", "-57", "-63", "-70", "+70"}
	olympicMale   = []string{"-60", "-66", "-73", "-81", "-90", "-100", "+100"}
	olympicFemale = []string{"-48", "-52", "-57", "-63", "-70", "-78", "+78"}
)

// DefaultTable is the federation's weight grid. Mini-poussins and poussins
// compete without predefined classes.
var DefaultTable = Table{
	{category.Benjamin, Male}:   youngMale,
	{category.Benjamin, Female}: youngFemale,
	{category.Minime, Male}:     minimeMale,
	{category.Minime, Female}:   minimeFemale,
	{category.Cadet, Male}:      minimeMale,
	{category.Cadet, Female}:    minimeFemale,
	{category.Junior, Male}:     juniorMale,
	{category.Junior, Female}:   juniorFemale,
	{category.Espoir, Male}:     olympicMale,
	{category.Espoir, Female}:   olympicFemale,
	{category.Senior, Male}:     olympicMale,
	{category.Senior, Female}:   olympicFemale,
}

// Resolver answers weight-class questions against a table.
type Resolver struct {
	Table Table
}

// Classes returns the ordered labels for a category and gender.
// An empty result means the weight is entered freely.
func (r Resolver) Classes(cat category.Label, gender Gender) []string {
	table := r.Table
	if table == nil {
		table = DefaultTable
	}
	labels := table[Key{Category: cat, Gender: gender}]
	out := make([]string, len(labels))
	copy(out, labels)
	return out
}

// Classes uses DefaultTable.
func Classes(cat category.Label, gender Gender) []string {
	return Resolver{Table: DefaultTable}.Classes(cat, gender)
}

// LabelToBoundary returns the unsigned numeric boundary of a label such as
// "-66", "+100" or "-73 kg". Characters other than digits are ignored.
// POST: Returns false when the label holds no digits
func LabelToBoundary(label string) (int, bool) {
	var digits strings.Builder
	for _, r := range label {
		if r < unicode.MaxASCII && unicode.IsDigit(r) {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(digits.String())
	if err != nil {
		return 0, false
	}
	return n, true
}

// MatchWeight returns the first label whose boundary equals the stored weight.
func MatchWeight(labels []string, weight float64) (string, bool) {
	for _, l := range labels {
		if b, ok := LabelToBoundary(l); ok && float64(b) == weight {
			return l, true
		}
	}
	return "", false
}

// SelectLabel converts a chosen label into the weight value stored on the athlete.
func SelectLabel(label string) (float64, bool) {
	b, ok := LabelToBoundary(label)
	if !ok {
		return 0, false
	}
	return float64(b), true
}
