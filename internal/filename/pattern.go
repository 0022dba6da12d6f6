package filename

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

const (
	// PatternEnv overrides every other pattern source when set.
	PatternEnv = "TVS_FILENAME_PATTERN"

	GroupName         = "p_video_name"
	GroupSeason       = "p_video_season"
	GroupEpisode      = "p_video_episode"
	GroupEpisodeTitle = "p_video_episode_name"
	GroupExtra        = "p_video_extra"
)

// DefaultPattern recognizes "<name> S<season>E<episode> [title] [NNNp tags]<ext>"
// with ".", "-" or space as delimiters.
const DefaultPattern = `^(?P<p_video_name>.+?)[\.\- ]+[sS](?P<p_video_season>\d{2})[\.\- ]?[eE](?P<p_video_episode>\d{2})` +
	`(?:[\.\- ]+(?P<p_video_episode_name>.*?))??` +
	`(?:[\.\- ]+(?P<p_video_extra>\d{3,5}[pP].*)|\.[^.]+)$`

var (
	// ErrPatternMismatch reports a filename the configured pattern cannot parse.
	ErrPatternMismatch = errors.New("filename does not match pattern")
	// ErrFieldArity reports a pattern or field set that does not carry all five fields.
	ErrFieldArity = errors.New("filename field count mismatch")
)

var requiredGroups = []string{GroupName, GroupSeason, GroupEpisode, GroupEpisodeTitle, GroupExtra}

// MismatchError identifies the filename and pattern of a failed match.
type MismatchError struct {
	Name    string
	Pattern string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%s: %q (pattern %s)", ErrPatternMismatch, e.Name, e.Pattern)
}

// Is lets errors.Is match ErrPatternMismatch.
func (e *MismatchError) Is(target error) bool {
	return target == ErrPatternMismatch
}

// Fields holds the values captured from one filename.
type Fields struct {
	SeriesName   string
	Season       string
	Episode      string
	EpisodeTitle string
	TagBlock     string
	// Suffix is the file extension including its leading dot.
	Suffix string
}

// HasTitle reports whether an episode title was captured.
func (f Fields) HasTitle() bool {
	return f.EpisodeTitle != ""
}

// Pattern is a compiled filename pattern.
type Pattern struct {
	source  string
	re      *regexp.Regexp
	indexes map[string]int
}

// ResolvePattern returns the first non-empty candidate, or DefaultPattern.
// Callers pass candidates in precedence order (environment, flag, config).
func ResolvePattern(candidates ...string) string {
	for _, candidate := range candidates {
		if strings.TrimSpace(candidate) != "" {
			return candidate
		}
	}
	return DefaultPattern
}

// Compile parses expr and checks that it defines every field group.
func Compile(expr string) (*Pattern, error) {
	if strings.TrimSpace(expr) == "" {
		expr = DefaultPattern
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("compile filename pattern: %w", err)
	}
	indexes := make(map[string]int, len(requiredGroups))
	for i, name := range re.SubexpNames() {
		if name != "" {
			indexes[name] = i
		}
	}
	var missing []string
	for _, group := range requiredGroups {
		if _, ok := indexes[group]; !ok {
			missing = append(missing, group)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: pattern defines %d of %d groups, missing %s",
			ErrFieldArity, len(requiredGroups)-len(missing), len(requiredGroups), strings.Join(missing, ", "))
	}
	return &Pattern{source: expr, re: re, indexes: indexes}, nil
}

// MustCompile is Compile for patterns known to be valid.
func MustCompile(expr string) *Pattern {
	p, err := Compile(expr)
	if err != nil {
		panic(err)
	}
	return p
}

// String returns the pattern source.
func (p *Pattern) String() string {
	return p.source
}

// Classify extracts fields from the base name of path. The pattern must match
// the entire name.
func (p *Pattern) Classify(path string) (Fields, error) {
	name := filepath.Base(path)
	loc := p.re.FindStringSubmatchIndex(name)
	if loc == nil || loc[0] != 0 || loc[1] != len(name) {
		return Fields{}, &MismatchError{Name: name, Pattern: p.source}
	}
	group := func(key string) string {
		i := p.indexes[key]
		start, end := loc[2*i], loc[2*i+1]
		if start < 0 {
			return ""
		}
		return name[start:end]
	}

	fields := Fields{
		SeriesName:   group(GroupName),
		Season:       group(GroupSeason),
		Episode:      group(GroupEpisode),
		EpisodeTitle: strings.TrimRight(group(GroupEpisodeTitle), "."),
		Suffix:       filepath.Ext(name),
	}
	if fields.Season == "" || fields.Episode == "" || fields.SeriesName == "" {
		return Fields{}, &MismatchError{Name: name, Pattern: p.source}
	}
	if extra := group(GroupExtra); extra != "" {
		if ext := filepath.Ext(extra); ext != "" {
			fields.Suffix = ext
			extra = strings.TrimSuffix(extra, ext)
		}
		fields.TagBlock = strings.TrimRight(extra, ".")
	}
	return fields, nil
}

// ClassifySubtitle classifies a subtitle name after removing its language
// segment, returning the fields and the removed segment ("" when absent).
func (p *Pattern) ClassifySubtitle(path string, isLabel func(string) bool) (Fields, string, error) {
	name := filepath.Base(path)
	stripped, segment := StripLanguageSegment(name, isLabel)
	fields, err := p.Classify(stripped)
	if err != nil {
		if segment == "" {
			return Fields{}, "", err
		}
		return Fields{}, "", &MismatchError{Name: name, Pattern: p.source}
	}
	return fields, segment, nil
}

// StripLanguageSegment removes a ".<label>" segment sitting directly before
// the extension when isLabel accepts it. Names without such a segment are
// returned unchanged.
func StripLanguageSegment(name string, isLabel func(string) bool) (string, string) {
	if isLabel == nil {
		return name, ""
	}
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	idx := strings.LastIndexAny(stem, ".- ")
	if idx <= 0 {
		return name, ""
	}
	segment := stem[idx+1:]
	if !isLabel(segment) {
		return name, ""
	}
	return stem[:idx] + ext, segment
}
