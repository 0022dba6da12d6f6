package catalog

import (
	"sort"
	"strconv"
	"strings"

	"github.com/SayCV/subspy/internal/filename"
	"github.com/SayCV/subspy/internal/language"
)

// Family groups subtitle extensions that share a track set.
type Family int

const (
	FamilySRT Family = iota
	FamilyASS
)

func (f Family) String() string {
	if f == FamilyASS {
		return "ass"
	}
	return "srt"
}

// FamilyOf maps a subtitle suffix to its track family.
func FamilyOf(suffix string) (Family, bool) {
	switch strings.ToLower(suffix) {
	case ".srt", ".vtt", ".smi":
		return FamilySRT, true
	case ".ass", ".ssa":
		return FamilyASS, true
	default:
		return 0, false
	}
}

// Track references one subtitle file.
type Track struct {
	Path string
}

// TrackSet maps a language label to the subtitle file carrying it.
type TrackSet map[language.Label]Track

// Labels returns the labels present in the set in a stable order.
func (s TrackSet) Labels() []language.Label {
	labels := make([]language.Label, 0, len(s))
	for label := range s {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool { return labels[i] < labels[j] })
	return labels
}

// EpisodeRecord aggregates everything observed for one episode number.
type EpisodeRecord struct {
	Episode  string
	Title    string
	TagBlock string
	Videos   []string
	SRT      TrackSet
	ASS      TrackSet
}

func newEpisodeRecord(episode string) *EpisodeRecord {
	return &EpisodeRecord{
		Episode: episode,
		SRT:     TrackSet{},
		ASS:     TrackSet{},
	}
}

// Tracks returns the track set for family.
func (r *EpisodeRecord) Tracks(family Family) TrackSet {
	if family == FamilyASS {
		return r.ASS
	}
	return r.SRT
}

// SeriesCatalog is the reconciled view of one video directory and its
// subtitle directory.
type SeriesCatalog struct {
	SeriesName string
	Season     string
	Episodes   map[string]*EpisodeRecord
}

// New returns an empty catalog.
func New() *SeriesCatalog {
	return &SeriesCatalog{Episodes: make(map[string]*EpisodeRecord)}
}

// Episode looks up the record for an episode number. The number is
// normalized, so "1" and "01" address the same record.
func (c *SeriesCatalog) Episode(episode string) (*EpisodeRecord, bool) {
	rec, ok := c.Episodes[NormalizeNumber(episode)]
	return rec, ok
}

// EpisodeKeys returns the episode keys in ascending order.
func (c *SeriesCatalog) EpisodeKeys() []string {
	keys := make([]string, 0, len(c.Episodes))
	for key := range c.Episodes {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, errA := strconv.Atoi(keys[i])
		b, errB := strconv.Atoi(keys[j])
		if errA == nil && errB == nil && a != b {
			return a < b
		}
		return keys[i] < keys[j]
	})
	return keys
}

// Synthesize renders the canonical stem for rec using the catalog's series
// name and season.
func (c *SeriesCatalog) Synthesize(template string, rec *EpisodeRecord, override string) string {
	return Synthesize(template, c.SeriesName, c.Season, rec, override)
}

// Synthesize renders template for one episode. A non-empty override replaces
// seriesName.
func Synthesize(template, seriesName, season string, rec *EpisodeRecord, override string) string {
	if override = strings.TrimSpace(override); override != "" {
		seriesName = override
	}
	if template == "" {
		template = filename.DefaultTemplate
	}
	fields := filename.Fields{
		SeriesName: seriesName,
		Season:     season,
	}
	if rec != nil {
		fields.Episode = rec.Episode
		fields.EpisodeTitle = rec.Title
		fields.TagBlock = rec.TagBlock
	}
	return filename.Synthesize(template, fields)
}

// NormalizeNumber zero-pads purely numeric season and episode values to two
// digits. Other values are returned trimmed.
func NormalizeNumber(value string) string {
	value = strings.TrimSpace(value)
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return value
	}
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
