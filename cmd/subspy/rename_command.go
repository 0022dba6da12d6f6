package main

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SayCV/subspy/internal/config"
	"github.com/SayCV/subspy/internal/filename"
	"github.com/SayCV/subspy/internal/hanzi"
	"github.com/SayCV/subspy/internal/language"
	"github.com/SayCV/subspy/internal/renamer"
)

type scanFlags struct {
	inDir       string
	subsDir     string
	namePattern string
	exclude     []string
	recursive   bool
}

func (f *scanFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.inDir, "in-dir", "", "Directory containing the episode videos")
	cmd.Flags().StringVar(&f.subsDir, "subs-dir", "", "Directory containing the subtitles (default <in-dir>/subs, else <in-dir>)")
	cmd.Flags().StringVar(&f.namePattern, "name-pattern", "", "Filename regex with p_video_* named groups (TVS_FILENAME_PATTERN takes precedence)")
	cmd.Flags().StringSliceVar(&f.exclude, "exclude", nil, "Glob of base names to ignore (repeatable)")
	cmd.Flags().BoolVarP(&f.recursive, "recursive", "r", false, "Descend into subdirectories")
	_ = cmd.MarkFlagRequired("in-dir")
}

// options resolves the flags against cfg into renamer options.
func (f *scanFlags) options(cfg *config.Config) (renamer.Options, error) {
	inDir := strings.TrimSpace(f.inDir)
	abs, err := filepath.Abs(inDir)
	if err != nil {
		return renamer.Options{}, fmt.Errorf("resolve input directory: %w", err)
	}
	pattern, err := filename.Compile(cfg.FilenamePattern(f.namePattern))
	if err != nil {
		return renamer.Options{}, err
	}
	exclude := append(append([]string{}, cfg.Rename.Exclude...), f.exclude...)
	return renamer.Options{
		VideoDir:  abs,
		SubsDir:   cfg.SubsDir(abs, f.subsDir),
		Template:  cfg.Rename.Template,
		Pattern:   pattern,
		Recursive: f.recursive || cfg.Rename.Recursive,
		Exclude:   exclude,
	}, nil
}

func newRenameService(opts renamer.Options, logger *slog.Logger) (*renamer.Service, error) {
	ids, err := hanzi.NewIdentifier()
	if err != nil {
		return nil, err
	}
	return renamer.New(opts, language.NewClassifier(ids), logger)
}

func newRenameCommand(ctx *commandContext) *cobra.Command {
	var (
		flags    scanFlags
		name     string
		newStyle string
		dryRun   bool
	)

	cmd := &cobra.Command{
		Use:   "rename",
		Short: "Rename episode videos and subtitles to one naming template",
		Long: `Rename matches every video and subtitle in the input directories against
the filename pattern, reconciles them by episode number and renames them to
the naming template. Placeholders: @VIDEO_NAME@ @VIDEO_SEASON@
@VIDEO_EPISODE@ @VIDEO_EPISODE_NAME@ @VIDEO_EXTRA@.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, runCtx, stop, err := ctx.setup(cmd, "rename")
			if err != nil {
				return err
			}
			defer stop()

			opts, err := flags.options(cfg)
			if err != nil {
				return err
			}
			if style := strings.TrimSpace(newStyle); style != "" {
				opts.Template = style
			}
			opts.NameOverride = strings.TrimSpace(name)
			opts.DryRun = dryRun

			service, err := newRenameService(opts, logger)
			if err != nil {
				return err
			}
			result, err := service.Run(runCtx)
			out := cmd.OutOrStdout()
			if dryRun {
				printRenames(out, result.Planned, "would rename")
			} else {
				printRenames(out, result.Applied, "renamed")
			}
			if err != nil {
				return err
			}
			if len(result.Planned) == 0 {
				fmt.Fprintf(out, "Nothing to rename (%d files already canonical)\n", result.Unchanged)
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&name, "name", "", "Series name override")
	cmd.Flags().StringVar(&newStyle, "new-style", "", "Naming template (default from config)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the plan without renaming")
	return cmd
}

func printRenames(w io.Writer, renames []renamer.Rename, verb string) {
	if len(renames) == 0 {
		return
	}
	if isTerminal(w) {
		rows := make([][]string, 0, len(renames))
		for _, r := range renames {
			rows = append(rows, []string{string(r.Kind), r.Episode, r.Label.String(), filepath.Base(r.Old), filepath.Base(r.New)})
		}
		fmt.Fprintln(w, renderTable([]string{"Kind", "Episode", "Lang", "From", "To"}, rows,
			[]columnAlignment{alignLeft, alignRight, alignLeft, alignLeft, alignLeft}))
		return
	}
	for _, r := range renames {
		fmt.Fprintf(w, "%s %s -> %s\n", verb, filepath.Base(r.Old), filepath.Base(r.New))
	}
}
