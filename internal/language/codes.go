package language

import (
	"strings"

	"github.com/abadojack/whatlanggo"
	xlanguage "golang.org/x/text/language"
)

type entry struct {
	code2   string   // ISO 639-1
	code3   string   // ISO 639-2 primary
	alt     []string // alternate codes and abbreviations
	display string
}

var languages = []entry{
	{"en", "eng", []string{"english"}, "English"},
	{"zh", "zho", []string{"chi", "chinese", "chs", "cht"}, "Chinese"},
	{"ja", "jpn", []string{"jap", "japanese"}, "Japanese"},
	{"ko", "kor", []string{"korean"}, "Korean"},
	{"fr", "fra", []string{"fre", "french"}, "French"},
	{"de", "deu", []string{"ger", "german"}, "German"},
	{"es", "spa", []string{"spanish"}, "Spanish"},
	{"it", "ita", []string{"italian"}, "Italian"},
	{"pt", "por", []string{"portuguese"}, "Portuguese"},
	{"ru", "rus", []string{"russian"}, "Russian"},
	{"nl", "nld", []string{"dut", "dutch"}, "Dutch"},
	{"cs", "ces", []string{"cze", "czech"}, "Czech"},
	{"el", "ell", []string{"gre", "greek"}, "Greek"},
	{"pl", "pol", []string{"polish"}, "Polish"},
	{"sv", "swe", []string{"swedish"}, "Swedish"},
	{"da", "dan", []string{"danish"}, "Danish"},
	{"fi", "fin", []string{"finnish"}, "Finnish"},
}

var index map[string]*entry

func init() {
	index = make(map[string]*entry, len(languages)*4)
	for i := range languages {
		e := &languages[i]
		index[e.code2] = e
		index[e.code3] = e
		for _, alt := range e.alt {
			index[alt] = e
		}
	}
}

// ToISO2 converts a recognized code, abbreviation or word to ISO 639-1.
// Unknown two-letter codes pass through; anything else yields "".
func ToISO2(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return ""
	}
	if e, ok := index[code]; ok {
		return e.code2
	}
	if len(code) == 2 {
		return code
	}
	return ""
}

// DisplayName returns a human-readable name for a code or label.
func DisplayName(code string) string {
	code = strings.TrimSpace(code)
	switch Label(code) {
	case Unknown:
		return "Unknown"
	case Simplified:
		return "Chinese (Simplified)"
	case Traditional:
		return "Chinese (Traditional)"
	case SimplifiedEnglish:
		return "Chinese (Simplified) + English"
	case TraditionalEnglish:
		return "Chinese (Traditional) + English"
	}
	if e, ok := index[strings.ToLower(code)]; ok {
		return e.display
	}
	return strings.ToUpper(code)
}

// EngineCode maps a label, ISO code or language word to the BCP 47 tag sent
// to translation engines. "auto" and "" pass through as "auto".
func EngineCode(code string) string {
	code = strings.TrimSpace(code)
	switch strings.ToLower(code) {
	case "", "auto":
		return "auto"
	case string(Simplified):
		return "zh-CN"
	case string(Traditional):
		return "zh-TW"
	}
	if tag, err := xlanguage.Parse(code); err == nil {
		return tag.String()
	}
	if iso := ToISO2(code); iso != "" {
		return iso
	}
	return code
}

// LabelForCode returns the filename label for a target language code:
// Chinese tags map to chs or cht by script, English to eng, and other codes
// to their lower-case ISO 639-1 form.
func LabelForCode(code string) string {
	code = strings.TrimSpace(code)
	if label, ok := ParseLabel(strings.ToLower(code)); ok {
		return string(label)
	}
	tag, err := xlanguage.Parse(code)
	if err != nil {
		if iso := ToISO2(code); iso != "" {
			return iso
		}
		return strings.ToLower(code)
	}
	base, _ := tag.Base()
	switch base.String() {
	case "zh":
		if script, _ := tag.Script(); script.String() == "Hant" {
			return string(Traditional)
		}
		return string(Simplified)
	case "en":
		return string(English)
	}
	return base.String()
}

// DetectText guesses the ISO 639-1 code of free text. It returns "" when the
// detector has no answer.
func DetectText(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	return whatlanggo.DetectLang(text).Iso6391()
}
