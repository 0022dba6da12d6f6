package main

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/SayCV/subspy/internal/logging"
	"github.com/SayCV/subspy/internal/services"
	"github.com/SayCV/subspy/internal/subtitles"
)

func newConvCommand(ctx *commandContext) *cobra.Command {
	var (
		in        inputFlags
		from      string
		to        string
		outDir    string
		assStyle  string
		styleMode string
		clean     bool
	)

	cmd := &cobra.Command{
		Use:   "conv",
		Short: "Convert subtitles between srt, ass, vtt and ttml",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, runCtx, stop, err := ctx.setup(cmd, "conv")
			if err != nil {
				return err
			}
			defer stop()
			logger = logging.WithContext(runCtx, logger)

			target, err := subtitles.ParseFormat(to)
			if err != nil {
				return services.Wrap(services.ErrValidation, "conv", "to", "", err)
			}
			var source subtitles.Format
			if strings.TrimSpace(from) != "" {
				if source, err = subtitles.ParseFormat(from); err != nil {
					return services.Wrap(services.ErrValidation, "conv", "from", "", err)
				}
			}
			if assStyle == "" {
				assStyle = cfg.Convert.ASSStyle
			}
			if styleMode == "" {
				styleMode = cfg.Convert.ASSStyleMode
			}
			mode, err := subtitles.ParseStyleMode(styleMode)
			if err != nil {
				return services.Wrap(services.ErrValidation, "conv", "ass-style-mode", "", err)
			}
			var styles *subtitles.Document
			if assStyle != "" {
				if styles, err = subtitles.Load(assStyle); err != nil {
					return services.Wrap(services.ErrValidation, "conv", "ass-style", assStyle, err)
				}
			}

			files, err := in.resolve("conv", func(path string) bool {
				format, err := subtitles.FormatOf(path)
				if err != nil {
					return false
				}
				return source == "" || format == source
			})
			if err != nil {
				return err
			}

			var mu sync.Mutex
			out := cmd.OutOrStdout()
			return forEachFile(runCtx, files, func(_ context.Context, path string) error {
				doc, err := subtitles.Load(path)
				if err != nil {
					return err
				}
				if clean {
					if removed := doc.RemoveAdvertisements(); removed > 0 {
						logger.Info("removed advertisement cues",
							logging.String(logging.FieldFile, path),
							logging.Int("cues", removed),
						)
					}
				}
				if styles != nil && (target == subtitles.FormatASS || target == subtitles.FormatSSA) {
					if err := doc.ImportStyles(styles, mode); err != nil {
						return err
					}
				}
				dest := subtitles.OutputPath(path, outDir, target.Ext())
				if err := doc.Save(dest, target); err != nil {
					return err
				}
				logger.Debug("converted subtitle",
					logging.String(logging.FieldFile, path),
					logging.String("charset", doc.Charset),
					logging.String("output", dest),
				)
				mu.Lock()
				fmt.Fprintln(out, dest)
				mu.Unlock()
				return nil
			})
		},
	}

	in.register(cmd)
	cmd.Flags().StringVarP(&from, "from", "f", "", "Only convert inputs in this format (batch mode)")
	cmd.Flags().StringVarP(&to, "to", "t", "srt", "Output format (srt, ass, ssa, vtt, ttml)")
	cmd.Flags().StringVarP(&outDir, "out-dir", "o", "", "Output directory (default next to the input)")
	cmd.Flags().StringVar(&assStyle, "ass-style", "", "ASS file whose styles are applied to ass output")
	cmd.Flags().StringVar(&styleMode, "ass-style-mode", "", "How --ass-style is applied (replace, merge)")
	cmd.Flags().BoolVar(&clean, "clean", false, "Drop advertisement cues")
	return cmd
}
