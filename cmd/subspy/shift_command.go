package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/SayCV/subspy/internal/logging"
	"github.com/SayCV/subspy/internal/services"
	"github.com/SayCV/subspy/internal/subtitles"
)

func newShiftCommand(ctx *commandContext) *cobra.Command {
	var (
		input  string
		by     time.Duration
		output string
	)

	cmd := &cobra.Command{
		Use:   "shift",
		Short: "Move every cue of a subtitle by a fixed offset",
		Example: `  subspy shift -i episode.srt --by 1.5s
  subspy shift -i episode.ass --by -800ms -o fixed.ass`,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, logger, runCtx, stop, err := ctx.setup(cmd, "shift")
			if err != nil {
				return err
			}
			defer stop()

			input = strings.TrimSpace(input)
			if input == "" {
				return services.Wrap(services.ErrValidation, "shift", "arguments", "--input is required", nil)
			}
			doc, err := subtitles.Load(input)
			if err != nil {
				return err
			}
			doc.Shift(by)
			dest := strings.TrimSpace(output)
			if dest == "" {
				dest = input
			}
			if err := doc.Save(dest, ""); err != nil {
				return err
			}
			logging.WithContext(runCtx, logger).Info("shifted subtitle",
				logging.String(logging.FieldFile, input),
				logging.Duration("offset", by),
				logging.String("output", dest),
			)
			fmt.Fprintln(cmd.OutOrStdout(), dest)
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "Subtitle file to shift")
	cmd.Flags().DurationVar(&by, "by", 0, "Offset such as 2s or -750ms")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default rewrites the input)")
	return cmd
}
