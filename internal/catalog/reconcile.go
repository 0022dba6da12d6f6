package catalog

import (
	"fmt"
	"log/slog"

	"github.com/SayCV/subspy/internal/filename"
	"github.com/SayCV/subspy/internal/language"
	"github.com/SayCV/subspy/internal/logging"
)

// ErrFieldArity reports an observation missing one of the required fields.
var ErrFieldArity = filename.ErrFieldArity

// VideoObservation is one classified video file.
type VideoObservation struct {
	Path   string
	Fields filename.Fields
}

// SubtitleObservation is one classified subtitle file and its language.
type SubtitleObservation struct {
	Path   string
	Fields filename.Fields
	Label  language.Label
}

// MergeField applies first-writer-wins to one field. The zero value counts as
// unset. It returns the value to keep and whether observed disagreed with an
// established value.
func MergeField[T comparable](current, observed T) (T, bool) {
	var zero T
	switch {
	case current == zero:
		return observed, false
	case observed == zero || observed == current:
		return current, false
	default:
		return current, true
	}
}

// Reconcile builds a catalog from all video observations followed by all
// subtitle observations. Conflicts are logged and never fatal; an observation
// without series name, season or episode aborts the run.
func Reconcile(videos []VideoObservation, subtitles []SubtitleObservation, logger *slog.Logger) (*SeriesCatalog, error) {
	r := &reconciler{catalog: New(), logger: logging.NewComponentLogger(logger, "catalog")}
	for _, obs := range videos {
		if err := r.addVideo(obs); err != nil {
			return nil, err
		}
	}
	for _, obs := range subtitles {
		if err := r.addSubtitle(obs); err != nil {
			return nil, err
		}
	}
	return r.catalog, nil
}

type reconciler struct {
	catalog *SeriesCatalog
	logger  *slog.Logger
}

func (r *reconciler) addVideo(obs VideoObservation) error {
	fields, err := checkArity(obs.Path, obs.Fields)
	if err != nil {
		return err
	}
	r.mergeSeries(obs.Path, fields)

	rec := r.record(obs.Path, fields)
	rec.Videos = append(rec.Videos, obs.Path)
	return nil
}

func (r *reconciler) addSubtitle(obs SubtitleObservation) error {
	fields, err := checkArity(obs.Path, obs.Fields)
	if err != nil {
		return err
	}
	r.mergeSeries(obs.Path, fields)

	if !obs.Label.Known() {
		r.logger.Debug("subtitle language unknown; not attached",
			logging.String(logging.FieldFile, obs.Path),
			logging.String(logging.FieldEpisode, fields.Episode),
		)
		return nil
	}
	family, ok := FamilyOf(fields.Suffix)
	if !ok {
		r.logger.Debug("subtitle suffix has no track family; not attached",
			logging.String(logging.FieldFile, obs.Path),
			logging.String("suffix", fields.Suffix),
		)
		return nil
	}

	rec := r.record(obs.Path, fields)
	tracks := rec.Tracks(family)
	if existing, dup := tracks[obs.Label]; dup {
		logging.WarnWithContext(r.logger, "duplicate subtitle track", "duplicate_track",
			logging.String(logging.FieldFile, obs.Path),
			logging.String(logging.FieldEpisode, rec.Episode),
			logging.String("label", obs.Label.String()),
			logging.String("kept", existing.Path),
			logging.String(logging.FieldErrorHint, "remove or relabel one of the subtitle files"),
			logging.String(logging.FieldImpact, "only the first file is attached to the episode"),
		)
		return nil
	}
	tracks[obs.Label] = Track{Path: obs.Path}
	return nil
}

// record returns the episode record for fields, creating it from the observed
// title and tag block when absent and merging them otherwise.
func (r *reconciler) record(path string, fields filename.Fields) *EpisodeRecord {
	rec, ok := r.catalog.Episodes[fields.Episode]
	if !ok {
		rec = newEpisodeRecord(fields.Episode)
		rec.Title = fields.EpisodeTitle
		rec.TagBlock = fields.TagBlock
		r.catalog.Episodes[fields.Episode] = rec
		return rec
	}

	var conflict bool
	rec.Title, conflict = MergeField(rec.Title, fields.EpisodeTitle)
	if conflict {
		r.conflict(path, "episode_title", rec.Title, fields.EpisodeTitle, rec.Episode)
	}
	rec.TagBlock, conflict = MergeField(rec.TagBlock, fields.TagBlock)
	if conflict {
		r.logger.Debug("tag block differs from episode record",
			logging.String(logging.FieldFile, path),
			logging.String(logging.FieldEpisode, rec.Episode),
			logging.String("expected", rec.TagBlock),
			logging.String("observed", fields.TagBlock),
		)
	}
	return rec
}

func (r *reconciler) mergeSeries(path string, fields filename.Fields) {
	var conflict bool
	observedName := fields.SeriesName
	r.catalog.SeriesName, conflict = MergeField(r.catalog.SeriesName, observedName)
	if conflict {
		r.conflict(path, "series_name", r.catalog.SeriesName, observedName, fields.Episode)
	}
	r.catalog.Season, conflict = MergeField(r.catalog.Season, fields.Season)
	if conflict {
		r.conflict(path, "season", r.catalog.Season, fields.Season, fields.Episode)
	}
}

func (r *reconciler) conflict(path, field, expected, observed, episode string) {
	logging.WarnWithContext(r.logger, "metadata conflict; keeping first observed value", "metadata_conflict",
		logging.String("field", field),
		logging.String("expected", expected),
		logging.String("observed", observed),
		logging.String(logging.FieldFile, path),
		logging.String(logging.FieldEpisode, episode),
		logging.String(logging.FieldErrorHint, "check the filename for a typo or pass --name to force the series name"),
		logging.String(logging.FieldImpact, "the file is renamed using the first observed value"),
	)
}

// checkArity normalizes the numeric fields and rejects observations missing
// series name, season or episode.
func checkArity(path string, fields filename.Fields) (filename.Fields, error) {
	fields.Season = NormalizeNumber(fields.Season)
	fields.Episode = NormalizeNumber(fields.Episode)
	var missing []string
	if fields.SeriesName == "" {
		missing = append(missing, "series name")
	}
	if fields.Season == "" {
		missing = append(missing, "season")
	}
	if fields.Episode == "" {
		missing = append(missing, "episode")
	}
	if len(missing) > 0 {
		return filename.Fields{}, fmt.Errorf("%w: %s: missing %v", ErrFieldArity, path, missing)
	}
	return fields, nil
}
