package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/SayCV/subspy/internal/filename"
)

func newInfoCommand(ctx *commandContext) *cobra.Command {
	var flags scanFlags

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show how each video and subtitle is parsed without renaming",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, runCtx, stop, err := ctx.setup(cmd, "info")
			if err != nil {
				return err
			}
			defer stop()

			opts, err := flags.options(cfg)
			if err != nil {
				return err
			}
			service, err := newRenameService(opts, logger)
			if err != nil {
				return err
			}
			scan, err := service.Scan(runCtx)
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(scan.Videos)+len(scan.Subtitles))
			for _, v := range scan.Videos {
				rows = append(rows, infoRow("video", v.Path, v.Fields, "-"))
			}
			for _, s := range scan.Subtitles {
				rows = append(rows, infoRow("subtitle", s.Path, s.Fields, s.Label.String()))
			}
			writeRows(cmd.OutOrStdout(),
				[]string{"Kind", "File", "Series", "Season", "Episode", "Title", "Tags", "Lang"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignLeft, alignLeft, alignLeft},
			)
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

func infoRow(kind, path string, f filename.Fields, label string) []string {
	if label == "" {
		label = "unknown"
	}
	return []string{kind, filepath.Base(path), f.SeriesName, f.Season, f.Episode, f.EpisodeTitle, f.TagBlock, label}
}
