package renamer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/SayCV/subspy/internal/catalog"
	"github.com/SayCV/subspy/internal/filename"
	"github.com/SayCV/subspy/internal/language"
	"github.com/SayCV/subspy/internal/logging"
	"github.com/SayCV/subspy/internal/mediafile"
	"github.com/SayCV/subspy/internal/textutil"
)

// ErrDestinationExists reports a rename whose target is already taken.
var ErrDestinationExists = errors.New("destination already exists")

// Kind distinguishes video renames from subtitle renames.
type Kind string

const (
	KindVideo    Kind = "video"
	KindSubtitle Kind = "subtitle"
)

// Rename is one planned or applied filesystem move.
type Rename struct {
	Kind    Kind
	Episode string
	Label   language.Label
	Old     string
	New     string
}

// Options configures a rename run.
type Options struct {
	VideoDir     string
	SubsDir      string
	Template     string
	Pattern      *filename.Pattern
	NameOverride string
	Recursive    bool
	Exclude      []string
	DryRun       bool
}

// Scan holds the classified observations and the catalog built from them.
type Scan struct {
	Catalog   *catalog.SeriesCatalog
	Videos    []catalog.VideoObservation
	Subtitles []catalog.SubtitleObservation
}

// Result summarizes a run.
type Result struct {
	Planned   []Rename
	Applied   []Rename
	Unchanged int
}

// Service runs the locate, classify, reconcile, plan and apply pipeline.
type Service struct {
	opts      Options
	languages *language.Classifier
	logger    *slog.Logger
}

// New validates opts and returns a Service.
func New(opts Options, languages *language.Classifier, logger *slog.Logger) (*Service, error) {
	if strings.TrimSpace(opts.VideoDir) == "" {
		return nil, errors.New("video directory is required")
	}
	if opts.SubsDir == "" {
		opts.SubsDir = opts.VideoDir
	}
	if opts.Template == "" {
		opts.Template = filename.DefaultTemplate
	}
	if !strings.Contains(opts.Template, filename.PlaceholderEpisode) {
		return nil, fmt.Errorf("template %q must contain %s", opts.Template, filename.PlaceholderEpisode)
	}
	if opts.Pattern == nil {
		opts.Pattern = filename.MustCompile(filename.DefaultPattern)
	}
	if languages == nil {
		return nil, errors.New("language classifier is required")
	}
	if err := (mediafile.Locator{Exclude: opts.Exclude}).Validate(); err != nil {
		return nil, err
	}
	return &Service{
		opts:      opts,
		languages: languages,
		logger:    logging.NewComponentLogger(logger, "renamer"),
	}, nil
}

// Run scans, plans and, unless DryRun is set, applies the renames.
func (s *Service) Run(ctx context.Context) (Result, error) {
	logger := logging.WithContext(ctx, s.logger)

	var result Result
	if !s.opts.DryRun {
		lock, err := acquireLock(s.opts.VideoDir)
		if err != nil {
			return result, err
		}
		defer func() {
			if err := lock.Unlock(); err != nil {
				logger.Warn("failed to release rename lock", logging.Error(err))
			}
		}()
	}

	scan, err := s.Scan(ctx)
	if err != nil {
		return result, err
	}
	planned, unchanged := Plan(scan, s.opts.Template, s.opts.NameOverride, logger)
	result.Planned = planned
	result.Unchanged = unchanged
	if err := checkCollisions(planned); err != nil {
		return result, err
	}
	logger.Info("rename plan ready",
		logging.Int("renames", len(planned)),
		logging.Int("unchanged", unchanged),
		logging.Bool("dry_run", s.opts.DryRun),
	)
	if s.opts.DryRun {
		return result, nil
	}
	result.Applied, err = Apply(ctx, planned, logger)
	return result, err
}

// Scan locates and classifies every video and subtitle and reconciles them.
func (s *Service) Scan(ctx context.Context) (*Scan, error) {
	logger := logging.WithContext(ctx, s.logger)
	locator := mediafile.Locator{Recursive: s.opts.Recursive, Exclude: s.opts.Exclude}

	videoPaths, err := locator.Videos(s.opts.VideoDir)
	if err != nil {
		return nil, fmt.Errorf("locate videos: %w", err)
	}
	subtitlePaths, err := locator.Subtitles(s.opts.SubsDir)
	if err != nil {
		return nil, fmt.Errorf("locate subtitles: %w", err)
	}
	logger.Debug("located media files",
		logging.String("video_dir", s.opts.VideoDir),
		logging.String("subs_dir", s.opts.SubsDir),
		logging.Int("videos", len(videoPaths)),
		logging.Int("subtitles", len(subtitlePaths)),
	)

	scan := &Scan{}
	for _, path := range videoPaths {
		fields, err := s.opts.Pattern.Classify(path)
		if err != nil {
			return nil, err
		}
		scan.Videos = append(scan.Videos, catalog.VideoObservation{Path: path, Fields: fields})
	}
	for _, path := range subtitlePaths {
		obs, err := s.classifySubtitle(path)
		if err != nil {
			return nil, err
		}
		scan.Subtitles = append(scan.Subtitles, obs)
	}

	scan.Catalog, err = catalog.Reconcile(scan.Videos, scan.Subtitles, logger)
	if err != nil {
		return nil, err
	}
	return scan, nil
}

func (s *Service) classifySubtitle(path string) (catalog.SubtitleObservation, error) {
	fields, _, err := s.opts.Pattern.ClassifySubtitle(path, language.IsLabel)
	if err != nil {
		return catalog.SubtitleObservation{}, err
	}
	label, err := s.languages.Classify(filepath.Base(path), func() (string, error) {
		return textutil.ReadText(path)
	})
	if err != nil {
		return catalog.SubtitleObservation{}, err
	}
	return catalog.SubtitleObservation{Path: path, Fields: fields, Label: label}, nil
}

// Plan computes the rename for every observation in scan. Files whose
// canonical name equals the current name ignoring case are counted as
// unchanged. Subtitles with an unknown language, and subtitles the catalog did
// not attach because an earlier file already carries the same track, are
// skipped.
func Plan(scan *Scan, template, override string, logger *slog.Logger) ([]Rename, int) {
	if logger == nil {
		logger = logging.NewNop()
	}
	var (
		renames   []Rename
		unchanged int
	)
	add := func(r Rename) {
		if strings.EqualFold(filepath.Base(r.Old), filepath.Base(r.New)) {
			unchanged++
			return
		}
		renames = append(renames, r)
	}

	for _, obs := range scan.Videos {
		rec, ok := scan.Catalog.Episode(obs.Fields.Episode)
		if !ok {
			continue
		}
		stem := scan.Catalog.Synthesize(template, rec, override)
		add(Rename{
			Kind:    KindVideo,
			Episode: rec.Episode,
			Old:     obs.Path,
			New:     filepath.Join(filepath.Dir(obs.Path), stem+filepath.Ext(obs.Path)),
		})
	}
	for _, obs := range scan.Subtitles {
		if !obs.Label.Known() {
			logger.Info("subtitle language unknown; leaving name unchanged",
				logging.String(logging.FieldFile, obs.Path),
			)
			continue
		}
		rec, ok := scan.Catalog.Episode(obs.Fields.Episode)
		if !ok {
			continue
		}
		family, ok := catalog.FamilyOf(filepath.Ext(obs.Path))
		track, attached := rec.Tracks(family)[obs.Label]
		if !ok || !attached || track.Path != obs.Path {
			logger.Info("duplicate subtitle track; leaving name unchanged",
				logging.String(logging.FieldFile, obs.Path),
				logging.String(logging.FieldEpisode, rec.Episode),
				logging.String("label", obs.Label.String()),
			)
			continue
		}
		stem := scan.Catalog.Synthesize(template, rec, override)
		add(Rename{
			Kind:    KindSubtitle,
			Episode: rec.Episode,
			Label:   obs.Label,
			Old:     obs.Path,
			New:     filepath.Join(filepath.Dir(obs.Path), filename.SubtitleName(stem, obs.Label.String(), filepath.Ext(obs.Path))),
		})
	}
	return renames, unchanged
}

// checkCollisions rejects plans that move two files to the same name.
func checkCollisions(renames []Rename) error {
	seen := make(map[string]string, len(renames))
	for _, r := range renames {
		key := strings.ToLower(r.New)
		if prev, ok := seen[key]; ok {
			return fmt.Errorf("%w: %s is the target of both %s and %s", ErrDestinationExists, r.New, prev, r.Old)
		}
		seen[key] = r.Old
	}
	return nil
}

// Apply performs renames in order and stops at the first failure. The renames
// completed before the failure are returned and are not undone.
func Apply(ctx context.Context, renames []Rename, logger *slog.Logger) ([]Rename, error) {
	if logger == nil {
		logger = logging.NewNop()
	}
	applied := make([]Rename, 0, len(renames))
	for _, r := range renames {
		if err := ctx.Err(); err != nil {
			return applied, err
		}
		if err := moveNoReplace(r.Old, r.New); err != nil {
			logging.ErrorWithContext(logger, "rename failed", "rename_failed",
				logging.String(logging.FieldFile, r.Old),
				logging.String("target", r.New),
				logging.Int("applied", len(applied)),
				logging.String(logging.FieldErrorHint, "move the existing file out of the way and run again"),
				logging.Error(err),
			)
			return applied, fmt.Errorf("rename %s: %w", r.Old, err)
		}
		logger.Info("renamed",
			logging.String("kind", string(r.Kind)),
			logging.String(logging.FieldEpisode, r.Episode),
			logging.String("from", filepath.Base(r.Old)),
			logging.String("to", filepath.Base(r.New)),
		)
		applied = append(applied, r)
	}
	return applied, nil
}
