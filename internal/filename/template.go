package filename

import "strings"

const (
	PlaceholderName         = "@VIDEO_NAME@"
	PlaceholderSeason       = "@VIDEO_SEASON@"
	PlaceholderEpisode      = "@VIDEO_EPISODE@"
	PlaceholderEpisodeTitle = "@VIDEO_EPISODE_NAME@"
	PlaceholderExtra        = "@VIDEO_EXTRA@"

	// DefaultTemplate reproduces the layout DefaultPattern parses.
	DefaultTemplate = PlaceholderName + "." + PlaceholderSeason + PlaceholderEpisode + "." +
		PlaceholderEpisodeTitle + "." + PlaceholderExtra
)

const delimiters = ".- "

// Synthesize renders template with the values in f and returns the stem
// without an extension. Empty title or tag values drop their placeholder and
// the delimiter in front of it, so no doubled delimiters remain.
func Synthesize(template string, f Fields) string {
	out := template
	if f.EpisodeTitle == "" {
		out = dropPlaceholder(out, PlaceholderEpisodeTitle)
	}
	if f.TagBlock == "" {
		out = dropPlaceholder(out, PlaceholderExtra)
	}
	out = strings.NewReplacer(
		PlaceholderName, f.SeriesName,
		PlaceholderSeason, "S"+f.Season,
		PlaceholderEpisode, "E"+f.Episode,
		PlaceholderEpisodeTitle, f.EpisodeTitle,
		PlaceholderExtra, f.TagBlock,
	).Replace(out)
	return strings.TrimSpace(strings.Trim(out, "."))
}

// SubtitleName appends ".<label><suffix>" to a synthesized stem.
func SubtitleName(stem, label, suffix string) string {
	return stem + "." + label + suffix
}

func dropPlaceholder(template, placeholder string) string {
	for {
		idx := strings.Index(template, placeholder)
		if idx < 0 {
			return template
		}
		start, end := idx, idx+len(placeholder)
		if start > 0 && isDelimiter(template[start-1]) {
			for start > 0 && isDelimiter(template[start-1]) {
				start--
			}
		} else {
			for end < len(template) && isDelimiter(template[end]) {
				end++
			}
		}
		template = template[:start] + template[end:]
	}
}

func isDelimiter(b byte) bool {
	return strings.IndexByte(delimiters, b) >= 0
}
