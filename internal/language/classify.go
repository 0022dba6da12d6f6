package language

import (
	"fmt"
	"strings"
	"unicode"
)

const (
	// TraditionalThreshold is exceeded when more Traditional-only characters are present.
	TraditionalThreshold = 100
	SimplifiedThreshold  = 500
	EnglishThreshold     = 500
)

// ScriptIdentifier tells Simplified-only and Traditional-only Han characters
// apart. Characters shared by both scripts satisfy neither method.
type ScriptIdentifier interface {
	IsSimplifiedOnly(r rune) bool
	IsTraditionalOnly(r rune) bool
}

// ContentFunc returns the decoded text of a subtitle file.
type ContentFunc func() (string, error)

// Counts holds character statistics for a text.
type Counts struct {
	Latin       int
	Simplified  int
	Traditional int
}

// Count tallies Latin letters and script-exclusive Han characters in text.
func Count(text string, ids ScriptIdentifier) Counts {
	var c Counts
	for _, r := range text {
		switch {
		case unicode.Is(unicode.Latin, r):
			c.Latin++
		case ids == nil || !unicode.Is(unicode.Han, r):
		case ids.IsTraditionalOnly(r):
			c.Traditional++
		case ids.IsSimplifiedOnly(r):
			c.Simplified++
		}
	}
	return c
}

// LabelFromCounts applies the thresholds. Traditional wins over Simplified
// when both are exceeded.
func LabelFromCounts(c Counts) Label {
	parts := make([]string, 0, 2)
	if c.Traditional > TraditionalThreshold {
		parts = append(parts, string(Traditional))
	} else if c.Simplified > SimplifiedThreshold {
		parts = append(parts, string(Simplified))
	}
	if c.Latin > EnglishThreshold {
		parts = append(parts, string(English))
	}
	label, _ := ParseLabel(strings.Join(parts, "+"))
	return label
}

// Classifier resolves subtitle labels from filenames and content.
type Classifier struct {
	ids ScriptIdentifier
}

// NewClassifier returns a Classifier backed by ids.
func NewClassifier(ids ScriptIdentifier) *Classifier {
	return &Classifier{ids: ids}
}

// Classify prefers the filename hint and falls back to counting the text
// returned by content. An empty Label means the language is unknown.
func (c *Classifier) Classify(name string, content ContentFunc) (Label, error) {
	if label := HintFromFilename(name); label != Unknown {
		return label, nil
	}
	if content == nil {
		return Unknown, nil
	}
	text, err := content()
	if err != nil {
		return Unknown, fmt.Errorf("read subtitle text %s: %w", name, err)
	}
	return LabelFromCounts(Count(text, c.ids)), nil
}
