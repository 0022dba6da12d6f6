package subtitles_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"golang.org/x/text/encoding/simplifiedchinese"

	"github.com/SayCV/subspy/internal/language"
	"github.com/SayCV/subspy/internal/subtitles"
	"github.com/SayCV/subspy/internal/testsupport"
)

const styleSource = `[Script Info]
ScriptType: v4.00+

[V4+ Styles]
Format: Name, Fontname, Fontsize, PrimaryColour, SecondaryColour, OutlineColour, BackColour, Bold, Italic, Underline, StrikeOut, ScaleX, ScaleY, Spacing, Angle, BorderStyle, Outline, Shadow, Alignment, MarginL, MarginR, MarginV, Encoding
Style: Default,Arial,20,&H00FFFFFF,&H000000FF,&H00000000,&H00000000,0,0,0,0,100,100,0,0,1,2,2,2,10,10,10,1
Style: Sign,Arial,16,&H00FFFFFF,&H000000FF,&H00000000,&H00000000,0,0,0,0,100,100,0,0,1,2,2,8,10,10,10,1

[Events]
Format: Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text
Dialogue: 0,0:00:01.00,0:00:02.00,Default,,0,0,0,,Hello
`

func parse(t *testing.T, text string, format subtitles.Format) *subtitles.Document {
	t.Helper()
	doc, err := subtitles.Parse(text, format)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return doc
}

func render(t *testing.T, doc *subtitles.Document, format subtitles.Format) string {
	t.Helper()
	var buf bytes.Buffer
	if err := doc.Write(&buf, format); err != nil {
		t.Fatalf("Write: %v", err)
	}
	return buf.String()
}

func TestLoadDetectsLegacyEncoding(t *testing.T) {
	line := strings.Repeat("我们今天去学校上课，老师说这是一个非常重要的问题。", 5)
	encoded, err := simplifiedchinese.GB18030.NewEncoder().String(testsupport.SRT(line, line, line, line))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	path := filepath.Join(t.TempDir(), "episode.srt")
	if err := os.WriteFile(path, []byte(encoded), 0o644); err != nil {
		t.Fatal(err)
	}

	doc, err := subtitles.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := doc.Texts(); !reflect.DeepEqual(got, []string{line, line, line, line}) {
		t.Fatalf("texts = %q (charset %s)", got, doc.Charset)
	}
}

func TestSaveConvertsContainer(t *testing.T) {
	dir := t.TempDir()
	doc := parse(t, testsupport.SRT("One", "Two"), subtitles.FormatSRT)
	out := filepath.Join(dir, "episode.vtt")
	if err := doc.Save(out, ""); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if content := testsupport.ReadFile(t, out); !strings.HasPrefix(content, "WEBVTT") {
		t.Fatalf("expected WebVTT output, got %q", content)
	}
	reloaded, err := subtitles.Load(out)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := reloaded.Texts(); !reflect.DeepEqual(got, []string{"One", "Two"}) {
		t.Fatalf("texts = %q", got)
	}
}

func TestShift(t *testing.T) {
	doc := parse(t, testsupport.SRT("One"), subtitles.FormatSRT)
	doc.Shift(2 * time.Second)
	if out := render(t, doc, subtitles.FormatSRT); !strings.Contains(out, "00:00:02,000 --> 00:00:03,000") {
		t.Fatalf("unexpected shifted output:\n%s", out)
	}
}

func TestImportStyles(t *testing.T) {
	source := parse(t, styleSource, subtitles.FormatASS)

	doc := parse(t, testsupport.SRT("One"), subtitles.FormatSRT)
	if err := doc.ImportStyles(source, subtitles.StyleReplace); err != nil {
		t.Fatalf("ImportStyles: %v", err)
	}
	if got := doc.StyleIDs(); !reflect.DeepEqual(got, []string{"Default", "Sign"}) {
		t.Fatalf("styles = %v", got)
	}
	out := render(t, doc, subtitles.FormatASS)
	if !strings.Contains(out, "Style: Default") || !strings.Contains(out, ",Default,") {
		t.Fatalf("expected cue bound to Default style:\n%s", out)
	}
}

func TestImportStylesMergeKeepsExisting(t *testing.T) {
	source := parse(t, styleSource, subtitles.FormatASS)
	own := strings.Replace(styleSource, "Style: Sign,", "Style: Top,", 1)
	doc := parse(t, own, subtitles.FormatASS)

	if err := doc.ImportStyles(source, subtitles.StyleMerge); err != nil {
		t.Fatalf("ImportStyles: %v", err)
	}
	if got := doc.StyleIDs(); !reflect.DeepEqual(got, []string{"Default", "Sign", "Top"}) {
		t.Fatalf("styles = %v", got)
	}
}

func TestImportStylesRequiresStyles(t *testing.T) {
	doc := parse(t, testsupport.SRT("One"), subtitles.FormatSRT)
	empty := parse(t, testsupport.SRT("Two"), subtitles.FormatSRT)
	if err := doc.ImportStyles(empty, subtitles.StyleReplace); err == nil {
		t.Fatal("expected error for style source without styles")
	}
}

func TestMergeDual(t *testing.T) {
	primary := parse(t, testsupport.SRT("A", "B", "C"), subtitles.FormatSRT)
	secondary := parse(t, `1
00:00:00,500 --> 00:00:00,900
X

2
00:00:10,000 --> 00:00:11,000
Y
`, subtitles.FormatSRT)

	if attached := subtitles.MergeDual(primary, secondary); attached != 1 {
		t.Fatalf("attached = %d, want 1", attached)
	}
	want := []string{"A\nX", "B", "C", "Y"}
	if got := primary.Texts(); !reflect.DeepEqual(got, want) {
		t.Fatalf("texts = %q, want %q", got, want)
	}
}

func TestRemoveAdvertisements(t *testing.T) {
	doc := parse(t, testsupport.SRT("www.OpenSubtitles.org", "Hello there!", "Subtitle by AwesomeSubs"), subtitles.FormatSRT)
	if removed := doc.RemoveAdvertisements(); removed != 2 {
		t.Fatalf("removed = %d, want 2", removed)
	}
	if got := doc.Texts(); !reflect.DeepEqual(got, []string{"Hello there!"}) {
		t.Fatalf("texts = %q", got)
	}
}

func TestSetTexts(t *testing.T) {
	doc := parse(t, testsupport.SRT("Hello", "Bye"), subtitles.FormatSRT)
	if err := doc.SetTexts([]string{"only one"}, false); err == nil {
		t.Fatal("expected count mismatch error")
	}
	if err := doc.SetTexts([]string{"你好", "再见"}, true); err != nil {
		t.Fatalf("SetTexts: %v", err)
	}
	if got := doc.Texts(); !reflect.DeepEqual(got, []string{"你好\nHello", "再见\nBye"}) {
		t.Fatalf("texts = %q", got)
	}
}

func TestParseFormat(t *testing.T) {
	if f, err := subtitles.ParseFormat(".SRT"); err != nil || f != subtitles.FormatSRT {
		t.Fatalf("ParseFormat(.SRT) = %q, %v", f, err)
	}
	if _, err := subtitles.ParseFormat("smi"); !errors.Is(err, subtitles.ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestOutputNaming(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"output in place", subtitles.OutputPath("/a/Show.S01E01.srt", "", ".ass"), "/a/Show.S01E01.ass"},
		{"output elsewhere", subtitles.OutputPath("/a/Show.S01E01.srt", "/b", ".vtt"), "/b/Show.S01E01.vtt"},
		{"label replaced", subtitles.LabeledPath("/a/Show.S01E01.chs.srt", language.Traditional, ""), "/a/Show.S01E01.cht.srt"},
		{"label appended", subtitles.LabeledPath("/a/Show.S01E01.srt", language.Traditional, ".ass"), "/a/Show.S01E01.cht.ass"},
		{"composite label", subtitles.LabeledPath("/a/Show.S01E01.chs+eng.ass", language.TraditionalEnglish, ""), "/a/Show.S01E01.cht+eng.ass"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Fatalf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}
