package subtitles

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/asticode/go-astisub"

	"github.com/SayCV/subspy/internal/fileutil"
	"github.com/SayCV/subspy/internal/textutil"
)

// Format names a subtitle container.
type Format string

const (
	FormatSRT  Format = "srt"
	FormatASS  Format = "ass"
	FormatSSA  Format = "ssa"
	FormatVTT  Format = "vtt"
	FormatTTML Format = "ttml"
)

// ErrUnsupportedFormat reports a container the package cannot read or write.
var ErrUnsupportedFormat = errors.New("unsupported subtitle format")

// ParseFormat accepts a format name with or without a leading dot.
func ParseFormat(value string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimPrefix(strings.TrimSpace(value), "."))); f {
	case FormatSRT, FormatASS, FormatSSA, FormatVTT, FormatTTML:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, value)
	}
}

// FormatOf derives the format from the extension of path.
func FormatOf(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// Ext returns the file extension for f, including the dot.
func (f Format) Ext() string {
	return "." + string(f)
}

// Document is a parsed subtitle file.
type Document struct {
	Path    string
	Format  Format
	Charset string
	subs    *astisub.Subtitles
}

// Load reads and parses path, detecting its character set.
func Load(path string) (*Document, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read subtitle: %w", err)
	}
	text, charset := textutil.Decode(data)
	doc, err := Parse(text, format)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	doc.Path = path
	doc.Charset = charset
	return doc, nil
}

// Parse parses already decoded text.
func Parse(text string, format Format) (*Document, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	reader := strings.NewReader(text)
	var (
		subs *astisub.Subtitles
		err  error
	)
	switch format {
	case FormatSRT:
		subs, err = astisub.ReadFromSRT(reader)
	case FormatASS, FormatSSA:
		subs, err = astisub.ReadFromSSA(reader)
	case FormatVTT:
		subs, err = astisub.ReadFromWebVTT(reader)
	case FormatTTML:
		subs, err = astisub.ReadFromTTML(reader)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, err
	}
	return &Document{Format: format, Charset: "UTF-8", subs: subs}, nil
}

// Len returns the number of cues.
func (d *Document) Len() int {
	return len(d.subs.Items)
}

// Write serializes the document as format.
func (d *Document) Write(w io.Writer, format Format) error {
	switch format {
	case FormatSRT:
		return d.subs.WriteToSRT(w)
	case FormatASS, FormatSSA:
		return d.subs.WriteToSSA(w)
	case FormatVTT:
		return d.subs.WriteToWebVTT(w)
	case FormatTTML:
		return d.subs.WriteToTTML(w)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// Save writes the document to path atomically. An empty format is derived
// from the extension of path.
func (d *Document) Save(path string, format Format) error {
	if format == "" {
		var err error
		if format, err = FormatOf(path); err != nil {
			return err
		}
	}
	if err := fileutil.WriteAtomic(path, 0o644, func(w io.Writer) error {
		return d.Write(w, format)
	}); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// Shift moves every cue by delta. Cues pushed entirely before zero are dropped.
func (d *Document) Shift(delta time.Duration) {
	d.subs.Add(delta)
}

// Texts returns the dialogue of each cue with its lines joined by "\n".
func (d *Document) Texts() []string {
	texts := make([]string, len(d.subs.Items))
	for i, item := range d.subs.Items {
		texts[i] = itemText(item)
	}
	return texts
}

// SetTexts replaces the dialogue of each cue. With keepOriginal the previous
// lines are kept below the new ones.
func (d *Document) SetTexts(texts []string, keepOriginal bool) error {
	if len(texts) != len(d.subs.Items) {
		return fmt.Errorf("text count %d does not match cue count %d", len(texts), len(d.subs.Items))
	}
	for i, item := range d.subs.Items {
		lines := textLines(texts[i])
		if keepOriginal {
			lines = append(lines, item.Lines...)
		}
		item.Lines = lines
	}
	return nil
}

func itemText(item *astisub.Item) string {
	parts := make([]string, 0, len(item.Lines))
	for _, line := range item.Lines {
		parts = append(parts, line.String())
	}
	return strings.Join(parts, "\n")
}

func textLines(text string) []astisub.Line {
	var lines []astisub.Line
	for _, part := range strings.Split(text, "\n") {
		if part = strings.TrimSpace(part); part == "" {
			continue
		}
		lines = append(lines, astisub.Line{Items: []astisub.LineItem{{Text: part}}})
	}
	return lines
}
