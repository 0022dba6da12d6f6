package subtitles

import (
	"path/filepath"
	"strings"

	"github.com/SayCV/subspy/internal/filename"
	"github.com/SayCV/subspy/internal/language"
)

// OutputPath returns <dir>/<stem of in><ext>. An empty dir keeps the
// directory of in.
func OutputPath(in, dir, ext string) string {
	if dir == "" {
		dir = filepath.Dir(in)
	}
	base := filepath.Base(in)
	return filepath.Join(dir, strings.TrimSuffix(base, filepath.Ext(base))+ext)
}

// LabeledPath replaces the language segment of in with label, or appends one
// when in has none. An empty ext keeps the extension of in.
func LabeledPath(in string, label language.Label, ext string) string {
	base := filepath.Base(in)
	if ext == "" {
		ext = filepath.Ext(base)
	}
	stripped, _ := filename.StripLanguageSegment(base, language.IsLabel)
	stem := strings.TrimSuffix(stripped, filepath.Ext(stripped))
	if label != language.Unknown {
		stem += "." + label.String()
	}
	return filepath.Join(filepath.Dir(in), stem+ext)
}
