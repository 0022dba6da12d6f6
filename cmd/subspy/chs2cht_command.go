package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SayCV/subspy/internal/fileutil"
	"github.com/SayCV/subspy/internal/hanzi"
	"github.com/SayCV/subspy/internal/language"
	"github.com/SayCV/subspy/internal/logging"
	"github.com/SayCV/subspy/internal/services"
	"github.com/SayCV/subspy/internal/subtitles"
	"github.com/SayCV/subspy/internal/textutil"
)

func newChs2ChtCommand(ctx *commandContext) *cobra.Command {
	var (
		input  string
		mode   string
		output string
	)

	cmd := &cobra.Command{
		Use:   "chs2cht",
		Short: "Convert a subtitle between Simplified and Traditional Chinese",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, logger, runCtx, stop, err := ctx.setup(cmd, "chs2cht")
			if err != nil {
				return err
			}
			defer stop()
			logger = logging.WithContext(runCtx, logger)

			input = strings.TrimSpace(input)
			if input == "" {
				return services.Wrap(services.ErrValidation, "chs2cht", "arguments", "--input is required", nil)
			}
			direction, err := hanzi.ParseMode(mode)
			if err != nil {
				return services.Wrap(services.ErrValidation, "chs2cht", "mode", "", err)
			}
			text, err := textutil.ReadText(input)
			if err != nil {
				return services.Wrap(services.ErrNotFound, "chs2cht", "input", input, err)
			}
			if strings.TrimSpace(text) == "" {
				return services.Wrap(services.ErrValidation, "chs2cht", "input", input+" is empty", nil)
			}

			converter, err := hanzi.NewConverter(direction)
			if err != nil {
				return err
			}
			converted, err := converter.Convert(text)
			if err != nil {
				return err
			}

			dest := strings.TrimSpace(output)
			if dest == "" {
				hint := language.HintFromFilename(filepath.Base(input))
				label := hint.ToTraditional()
				if direction == hanzi.ToSimplified {
					label = hint.ToSimplified()
				}
				dest = subtitles.LabeledPath(input, label, "")
			}
			if filepath.Clean(dest) == filepath.Clean(input) {
				return services.Wrap(services.ErrValidation, "chs2cht", "output",
					"output would overwrite the input; pass --output", nil)
			}
			if err := fileutil.WriteFileAtomic(dest, []byte(converted), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", dest, err)
			}
			logger.Info("converted script",
				logging.String(logging.FieldFile, input),
				logging.String("mode", string(direction)),
				logging.String("output", dest),
			)
			fmt.Fprintln(cmd.OutOrStdout(), dest)
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "Subtitle file to convert")
	cmd.Flags().StringVar(&mode, "mode", string(hanzi.ToTraditional), "Conversion direction (chs2cht, cht2chs)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default relabels the input name)")
	return cmd
}
