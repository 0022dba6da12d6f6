package textutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/text/encoding/simplifiedchinese"
)

func TestDecodeUTF8WithBOM(t *testing.T) {
	text, charset := Decode(append([]byte{0xEF, 0xBB, 0xBF}, []byte("1\n00:00:01,000 --> 00:00:02,000\n你好\n")...))
	if charset != "UTF-8" {
		t.Fatalf("charset = %q, want UTF-8", charset)
	}
	if !strings.HasPrefix(text, "1\n") || !strings.Contains(text, "你好") {
		t.Fatalf("unexpected text %q", text)
	}
}

func TestDecodeGB18030(t *testing.T) {
	source := strings.Repeat("我们今天去学校上课，老师说这是一个非常重要的问题。", 20)
	encoded, err := simplifiedchinese.GB18030.NewEncoder().String(source)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	text, charset := Decode([]byte(encoded))
	if charset == "UTF-8" {
		t.Fatalf("expected a non UTF-8 charset")
	}
	if text != source {
		t.Fatalf("decoded text mismatch (charset %s)", charset)
	}
}

func TestReadText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.srt")
	if err := os.WriteFile(path, []byte("hello"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	text, err := ReadText(path)
	if err != nil || text != "hello" {
		t.Fatalf("ReadText = %q, %v", text, err)
	}
	if _, err := ReadText(filepath.Join(t.TempDir(), "missing.srt")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestSanitizeFileName(t *testing.T) {
	if got := SanitizeFileName("  Who: What/Why?  "); got != "Who- What-Why" {
		t.Fatalf("SanitizeFileName = %q", got)
	}
}
