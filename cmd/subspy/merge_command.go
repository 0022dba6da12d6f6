package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SayCV/subspy/internal/language"
	"github.com/SayCV/subspy/internal/logging"
	"github.com/SayCV/subspy/internal/services"
	"github.com/SayCV/subspy/internal/subtitles"
)

func newMergeCommand(ctx *commandContext) *cobra.Command {
	var (
		primary   string
		secondary string
		output    string
	)

	cmd := &cobra.Command{
		Use:   "merge",
		Short: "Merge two subtitle tracks into one dual-language track",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, logger, runCtx, stop, err := ctx.setup(cmd, "merge")
			if err != nil {
				return err
			}
			defer stop()

			primary = strings.TrimSpace(primary)
			secondary = strings.TrimSpace(secondary)
			if primary == "" || secondary == "" {
				return services.Wrap(services.ErrValidation, "merge", "arguments", "--primary and --secondary are required", nil)
			}
			first, err := subtitles.Load(primary)
			if err != nil {
				return err
			}
			second, err := subtitles.Load(secondary)
			if err != nil {
				return err
			}
			attached := subtitles.MergeDual(first, second)

			dest := strings.TrimSpace(output)
			if dest == "" {
				dest = subtitles.LabeledPath(primary, dualLabel(primary, secondary), "")
			}
			if err := first.Save(dest, ""); err != nil {
				return err
			}
			logging.WithContext(runCtx, logger).Info("merged subtitles",
				logging.String("primary", primary),
				logging.String("secondary", secondary),
				logging.Int("attached", attached),
				logging.Int("cues", first.Len()),
				logging.String("output", dest),
			)
			fmt.Fprintln(cmd.OutOrStdout(), dest)
			return nil
		},
	}

	cmd.Flags().StringVar(&primary, "primary", "", "Subtitle whose timing and styles are kept")
	cmd.Flags().StringVar(&secondary, "secondary", "", "Subtitle whose lines are attached to the primary cues")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default <primary stem>.<label><ext>)")
	return cmd
}

// dualLabel combines the Chinese label of one input with English in the
// other. Any other pairing yields no label.
func dualLabel(a, b string) language.Label {
	la := language.HintFromFilename(a)
	lb := language.HintFromFilename(b)
	if la == language.English {
		la, lb = lb, la
	}
	if lb != language.English {
		return language.Unknown
	}
	switch la {
	case language.Simplified:
		return language.SimplifiedEnglish
	case language.Traditional:
		return language.TraditionalEnglish
	}
	return language.Unknown
}
