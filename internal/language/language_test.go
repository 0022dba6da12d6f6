package language

import (
	"errors"
	"strings"
	"testing"
)

type fakeScripts struct {
	simplified  string
	traditional string
}

func (f fakeScripts) IsSimplifiedOnly(r rune) bool  { return strings.ContainsRune(f.simplified, r) }
func (f fakeScripts) IsTraditionalOnly(r rune) bool { return strings.ContainsRune(f.traditional, r) }

var scripts = fakeScripts{simplified: "国发后", traditional: "國發後"}

func TestParseLabel(t *testing.T) {
	for _, label := range Labels {
		if got, ok := ParseLabel(string(label)); !ok || got != label {
			t.Fatalf("ParseLabel(%q) = %q, %v", label, got, ok)
		}
	}
	for _, value := range []string{"", "en", "ENG", "english", "chs+", "xeng"} {
		if _, ok := ParseLabel(value); ok {
			t.Fatalf("ParseLabel(%q) accepted", value)
		}
	}
}

func TestHintFromFilename(t *testing.T) {
	tests := []struct {
		name string
		want Label
	}{
		{"Alpha.S01E01.Pilot.1080p.eng.srt", English},
		{"Alpha.S01E01.chs+eng.ass", SimplifiedEnglish},
		{"Alpha S01E01 cht.srt", Traditional},
		{"eng.srt", Unknown},
		{"Alpha.S01E01.1080p.srt", Unknown},
		{"Alpha.S01E01.english.srt", Unknown},
		{"Alpha.S01E01.engsub.srt", Unknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HintFromFilename(tt.name); got != tt.want {
				t.Fatalf("HintFromFilename(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestLabelFromCountsThresholds(t *testing.T) {
	tests := []struct {
		name   string
		counts Counts
		want   Label
	}{
		{"traditional over threshold", Counts{Traditional: 101}, Traditional},
		{"traditional at threshold", Counts{Traditional: 100}, Unknown},
		{"simplified over threshold", Counts{Simplified: 501}, Simplified},
		{"simplified at threshold", Counts{Simplified: 500}, Unknown},
		{"traditional wins over simplified", Counts{Traditional: 101, Simplified: 5000}, Traditional},
		{"english only", Counts{Latin: 501}, English},
		{"dual simplified", Counts{Simplified: 600, Latin: 600}, SimplifiedEnglish},
		{"dual traditional", Counts{Traditional: 200, Latin: 600}, TraditionalEnglish},
		{"nothing", Counts{}, Unknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LabelFromCounts(tt.counts); got != tt.want {
				t.Fatalf("LabelFromCounts(%+v) = %q, want %q", tt.counts, got, tt.want)
			}
		})
	}
}

func TestCount(t *testing.T) {
	got := Count("Hello 國發 国 中文 123 é", scripts)
	want := Counts{Latin: 6, Simplified: 1, Traditional: 2}
	if got != want {
		t.Fatalf("Count = %+v, want %+v", got, want)
	}
}

func TestClassifierBoundary(t *testing.T) {
	classifier := NewClassifier(scripts)
	content := func(text string) ContentFunc {
		return func() (string, error) { return text, nil }
	}

	label, err := classifier.Classify("episode.srt", content(strings.Repeat("國", 101)))
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if label != Traditional {
		t.Fatalf("101 traditional characters classified as %q", label)
	}

	label, err = classifier.Classify("episode.srt", content(strings.Repeat("國", 100)))
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if label != Unknown {
		t.Fatalf("100 traditional characters classified as %q", label)
	}
}

func TestClassifierPrefersHint(t *testing.T) {
	classifier := NewClassifier(scripts)
	called := false
	label, err := classifier.Classify("Show.S01E01.eng.srt", func() (string, error) {
		called = true
		return strings.Repeat("國", 500), nil
	})
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if label != English || called {
		t.Fatalf("label=%q content read=%v, want eng without reading", label, called)
	}
}

func TestClassifierContentError(t *testing.T) {
	classifier := NewClassifier(scripts)
	boom := errors.New("boom")
	_, err := classifier.Classify("Show.S01E01.srt", func() (string, error) { return "", boom })
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped read error, got %v", err)
	}
}

func TestLabelConversions(t *testing.T) {
	if Simplified.ToTraditional() != Traditional || SimplifiedEnglish.ToTraditional() != TraditionalEnglish {
		t.Fatal("ToTraditional mapping wrong")
	}
	if Traditional.ToSimplified() != Simplified || TraditionalEnglish.ToSimplified() != SimplifiedEnglish {
		t.Fatal("ToSimplified mapping wrong")
	}
	if English.ToTraditional() != English {
		t.Fatal("English should be unchanged")
	}
}

func TestEngineCode(t *testing.T) {
	tests := map[string]string{
		"":      "auto",
		"auto":  "auto",
		"chs":   "zh-CN",
		"cht":   "zh-TW",
		"en":    "en",
		"eng":   "en",
		"ja":    "ja",
		"zh-TW": "zh-TW",
	}
	for input, want := range tests {
		if got := EngineCode(input); got != want {
			t.Errorf("EngineCode(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestLabelForCode(t *testing.T) {
	tests := map[string]string{
		"zh-CN":   "chs",
		"zh":      "chs",
		"zh-TW":   "cht",
		"zh-Hant": "cht",
		"en":      "eng",
		"eng":     "eng",
		"cht":     "cht",
		"ja":      "ja",
	}
	for input, want := range tests {
		if got := LabelForCode(input); got != want {
			t.Errorf("LabelForCode(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestToISO2AndDisplayName(t *testing.T) {
	if got := ToISO2("fre"); got != "fr" {
		t.Fatalf("ToISO2(fre) = %q", got)
	}
	if got := ToISO2("xyz"); got != "" {
		t.Fatalf("ToISO2(xyz) = %q", got)
	}
	if got := DisplayName("cht+eng"); got != "Chinese (Traditional) + English" {
		t.Fatalf("DisplayName(cht+eng) = %q", got)
	}
	if got := DisplayName(""); got != "Unknown" {
		t.Fatalf("DisplayName(\"\") = %q", got)
	}
}
