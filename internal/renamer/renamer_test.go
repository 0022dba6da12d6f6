package renamer_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/SayCV/subspy/internal/filename"
	"github.com/SayCV/subspy/internal/language"
	"github.com/SayCV/subspy/internal/renamer"
	"github.com/SayCV/subspy/internal/testsupport"
)

func newService(t *testing.T, opts renamer.Options) *renamer.Service {
	t.Helper()
	svc, err := renamer.New(opts, language.NewClassifier(nil), nil)
	if err != nil {
		t.Fatalf("renamer.New: %v", err)
	}
	return svc
}

func fixture(t *testing.T, videos, subs []string) (string, string) {
	t.Helper()
	dir := t.TempDir()
	subsDir := filepath.Join(dir, "subs")
	if err := os.MkdirAll(subsDir, 0o755); err != nil {
		t.Fatal(err)
	}
	testsupport.Touch(t, dir, videos...)
	testsupport.Touch(t, subsDir, subs...)
	return dir, subsDir
}

func TestRunCanonicalNamesAreUntouched(t *testing.T) {
	dir, subsDir := fixture(t,
		[]string{"Alpha.S01E01.Pilot.1080p.mkv"},
		[]string{"Alpha.S01E01.Pilot.1080p.eng.srt"},
	)
	svc := newService(t, renamer.Options{VideoDir: dir, SubsDir: subsDir})

	result, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(result.Planned) != 0 || len(result.Applied) != 0 {
		t.Fatalf("expected no renames, got %+v", result)
	}
	if result.Unchanged != 2 {
		t.Fatalf("unchanged = %d, want 2", result.Unchanged)
	}
}

func TestRunSkipsCaseOnlyDifferences(t *testing.T) {
	dir, subsDir := fixture(t, []string{"Show.s01e02.mkv"}, nil)
	svc := newService(t, renamer.Options{VideoDir: dir, SubsDir: subsDir})

	result, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(result.Planned) != 0 {
		t.Fatalf("expected zero renames, got %+v", result.Planned)
	}
	if got := testsupport.ListNames(t, dir); !reflect.DeepEqual(got, []string{"Show.s01e02.mkv"}) {
		t.Fatalf("directory changed: %v", got)
	}
}

func TestRunRenamesFromReconciledMetadata(t *testing.T) {
	dir, subsDir := fixture(t,
		[]string{"Alpha.S01E02.1080p.mkv"},
		[]string{"Alpha - S01E02 - Second.eng.srt"},
	)
	svc := newService(t, renamer.Options{VideoDir: dir, SubsDir: subsDir})

	result, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(result.Applied) != 2 {
		t.Fatalf("applied = %+v", result.Applied)
	}
	if got := testsupport.ListNames(t, dir); !reflect.DeepEqual(got, []string{"Alpha.S01E02.Second.1080p.mkv"}) {
		t.Fatalf("videos = %v", got)
	}
	if got := testsupport.ListNames(t, subsDir); !reflect.DeepEqual(got, []string{"Alpha.S01E02.Second.1080p.eng.srt"}) {
		t.Fatalf("subtitles = %v", got)
	}

	second, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("second Run: %v", err)
	}
	if len(second.Planned) != 0 {
		t.Fatalf("second run should be a no-op, planned %+v", second.Planned)
	}
}

func TestRunNameOverrideAndTemplate(t *testing.T) {
	dir, subsDir := fixture(t, []string{"alpha.S01E03.720p.mkv"}, nil)
	svc := newService(t, renamer.Options{
		VideoDir:     dir,
		SubsDir:      subsDir,
		Template:     "@VIDEO_NAME@ - @VIDEO_SEASON@@VIDEO_EPISODE@ - @VIDEO_EPISODE_NAME@",
		NameOverride: "Alpha Show",
	})

	if _, err := svc.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := testsupport.ListNames(t, dir); !reflect.DeepEqual(got, []string{"Alpha Show - S01E03.mkv"}) {
		t.Fatalf("videos = %v", got)
	}
}

func TestRunDryRunMakesNoChanges(t *testing.T) {
	dir, subsDir := fixture(t, []string{"Alpha S01E04 1080p.mkv"}, nil)
	svc := newService(t, renamer.Options{VideoDir: dir, SubsDir: subsDir, DryRun: true})

	result, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(result.Planned) != 1 || len(result.Applied) != 0 {
		t.Fatalf("result = %+v", result)
	}
	if want := filepath.Join(dir, "Alpha.S01E04.1080p.mkv"); result.Planned[0].New != want {
		t.Fatalf("planned %q, want %q", result.Planned[0].New, want)
	}
	if got := testsupport.ListNames(t, dir); !reflect.DeepEqual(got, []string{"Alpha S01E04 1080p.mkv"}) {
		t.Fatalf("dry run touched files: %v", got)
	}
}

func TestRunPatternMismatchIsFatal(t *testing.T) {
	dir, subsDir := fixture(t, []string{"Alpha.S01E01.mkv", "holiday.mkv"}, nil)
	svc := newService(t, renamer.Options{VideoDir: dir, SubsDir: subsDir})

	_, err := svc.Run(context.Background())
	if !errors.Is(err, filename.ErrPatternMismatch) {
		t.Fatalf("expected pattern mismatch, got %v", err)
	}
	if !strings.Contains(err.Error(), "holiday.mkv") {
		t.Fatalf("error should name the file: %v", err)
	}
}

func TestRunRefusesToOverwrite(t *testing.T) {
	dir, subsDir := fixture(t, []string{"Show - S01E03.mkv", "Show.S01E03.mkv"}, nil)
	svc := newService(t, renamer.Options{
		VideoDir: dir,
		SubsDir:  subsDir,
		Exclude:  []string{"Show.S01E03.mkv"},
	})

	_, err := svc.Run(context.Background())
	if !errors.Is(err, renamer.ErrDestinationExists) {
		t.Fatalf("expected ErrDestinationExists, got %v", err)
	}
	if got := testsupport.ListNames(t, dir); len(got) != 2 {
		t.Fatalf("files = %v", got)
	}
}

func TestRunUnknownLanguageIsSkipped(t *testing.T) {
	dir, subsDir := fixture(t, []string{"Show.S01E01.mkv"}, nil)
	testsupport.WriteFile(t, filepath.Join(subsDir, "Show.S01E01.srt"), testsupport.SRT("hi"))
	svc := newService(t, renamer.Options{VideoDir: dir, SubsDir: subsDir})

	result, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(result.Planned) != 0 {
		t.Fatalf("planned = %+v", result.Planned)
	}
}

func TestRunLeavesDuplicateTrackAndRenamesTheRest(t *testing.T) {
	dir, subsDir := fixture(t,
		[]string{"Alpha.S01E01.Pilot.1080p.mkv", "Alpha.S01E02.1080p.mkv"},
		[]string{
			"Alpha - S01E01 - Pilot.eng.srt",
			"Alpha - S01E01.eng.srt",
			"Alpha - S01E02 - Second.eng.srt",
		},
	)
	svc := newService(t, renamer.Options{VideoDir: dir, SubsDir: subsDir})

	result, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	for _, r := range result.Planned {
		if filepath.Base(r.Old) == "Alpha - S01E01.eng.srt" {
			t.Fatalf("duplicate track was planned: %+v", r)
		}
	}
	want := []string{
		"Alpha - S01E01.eng.srt",
		"Alpha.S01E01.Pilot.1080p.eng.srt",
		"Alpha.S01E02.Second.1080p.eng.srt",
	}
	if got := testsupport.ListNames(t, subsDir); !reflect.DeepEqual(got, want) {
		t.Fatalf("subtitles = %v, want %v", got, want)
	}
}

func TestRunLabelsSubtitleFromContent(t *testing.T) {
	dir, subsDir := fixture(t, []string{"Show.S01E01.mkv"}, nil)
	line := strings.Repeat("Hello there friend ", 5)
	var lines []string
	for i := 0; i < 10; i++ {
		lines = append(lines, line)
	}
	testsupport.WriteFile(t, filepath.Join(subsDir, "Show.S01E01.srt"), testsupport.SRT(lines...))
	svc := newService(t, renamer.Options{VideoDir: dir, SubsDir: subsDir})

	if _, err := svc.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := testsupport.ListNames(t, subsDir); !reflect.DeepEqual(got, []string{"Show.S01E01.eng.srt"}) {
		t.Fatalf("subtitles = %v", got)
	}
}

func TestApplyStopsAtFirstFailureWithoutRollback(t *testing.T) {
	dir := t.TempDir()
	testsupport.Touch(t, dir, "a.mkv", "c.mkv", "d.mkv")
	renames := []renamer.Rename{
		{Kind: renamer.KindVideo, Old: filepath.Join(dir, "a.mkv"), New: filepath.Join(dir, "b.mkv")},
		{Kind: renamer.KindVideo, Old: filepath.Join(dir, "c.mkv"), New: filepath.Join(dir, "d.mkv")},
	}

	applied, err := renamer.Apply(context.Background(), renames, nil)
	if !errors.Is(err, renamer.ErrDestinationExists) {
		t.Fatalf("expected ErrDestinationExists, got %v", err)
	}
	if len(applied) != 1 {
		t.Fatalf("applied = %+v", applied)
	}
	if got := testsupport.ListNames(t, dir); !reflect.DeepEqual(got, []string{"b.mkv", "c.mkv", "d.mkv"}) {
		t.Fatalf("files = %v", got)
	}
	if testsupport.ReadFile(t, filepath.Join(dir, "d.mkv")) != "x" {
		t.Fatal("destination was modified")
	}
}

func TestNewRejectsTemplateWithoutEpisode(t *testing.T) {
	_, err := renamer.New(renamer.Options{VideoDir: t.TempDir(), Template: "@VIDEO_NAME@"}, language.NewClassifier(nil), nil)
	if err == nil {
		t.Fatal("expected error")
	}
}
