package language

import "strings"

// Label is the language tag attached to subtitle filenames.
type Label string

const (
	Unknown            Label = ""
	English            Label = "eng"
	Simplified         Label = "chs"
	Traditional        Label = "cht"
	SimplifiedEnglish  Label = "chs+eng"
	TraditionalEnglish Label = "cht+eng"
)

// Labels lists every known non-empty label.
var Labels = []Label{English, Simplified, Traditional, SimplifiedEnglish, TraditionalEnglish}

// ParseLabel accepts exactly one of the known labels.
func ParseLabel(value string) (Label, bool) {
	for _, label := range Labels {
		if value == string(label) {
			return label, true
		}
	}
	return Unknown, false
}

// IsLabel reports whether value is a known non-empty label.
func IsLabel(value string) bool {
	_, ok := ParseLabel(value)
	return ok
}

func (l Label) String() string {
	return string(l)
}

// Known reports whether l is one of the non-empty labels.
func (l Label) Known() bool {
	return IsLabel(string(l))
}

// HasEnglish reports whether the label carries an English track.
func (l Label) HasEnglish() bool {
	return l == English || l == SimplifiedEnglish || l == TraditionalEnglish
}

// ToTraditional swaps the Simplified component for Traditional.
func (l Label) ToTraditional() Label {
	switch l {
	case Simplified, Unknown:
		return Traditional
	case SimplifiedEnglish:
		return TraditionalEnglish
	default:
		return l
	}
}

// ToSimplified swaps the Traditional component for Simplified.
func (l Label) ToSimplified() Label {
	switch l {
	case Traditional, Unknown:
		return Simplified
	case TraditionalEnglish:
		return SimplifiedEnglish
	default:
		return l
	}
}

// HintFromFilename returns the label carried by the second-to-last segment of
// name, splitting on ".", "-" and space. Only exact label matches count.
func HintFromFilename(name string) Label {
	segments := strings.FieldsFunc(name, func(r rune) bool {
		return r == '.' || r == '-' || r == ' '
	})
	if len(segments) < 3 {
		return Unknown
	}
	label, _ := ParseLabel(segments[len(segments)-2])
	return label
}
