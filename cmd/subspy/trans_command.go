package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SayCV/subspy/internal/language"
	"github.com/SayCV/subspy/internal/logging"
	"github.com/SayCV/subspy/internal/subtitles"
	"github.com/SayCV/subspy/internal/translate"
)

func newTransCommand(ctx *commandContext) *cobra.Command {
	var (
		in        inputFlags
		engine    string
		from      string
		to        string
		bilingual bool
	)

	cmd := &cobra.Command{
		Use:   "trans",
		Short: "Machine-translate the dialogue of subtitle files",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, runCtx, stop, err := ctx.setup(cmd, "trans")
			if err != nil {
				return err
			}
			defer stop()

			files, err := in.resolve("trans", func(path string) bool {
				_, err := subtitles.FormatOf(path)
				return err == nil
			})
			if err != nil {
				return err
			}
			eng, err := translate.NewEngine(cfg, strings.ToLower(strings.TrimSpace(engine)))
			if err != nil {
				return err
			}
			translator := translate.New(eng, translate.OptionsFromConfig(cfg), logger)
			log := logging.WithContext(runCtx, logger)

			if from == "" {
				from = cfg.Translate.From
			}
			if to == "" {
				to = cfg.Translate.To
			}

			for _, path := range files {
				doc, err := subtitles.Load(path)
				if err != nil {
					return err
				}
				texts := doc.Texts()
				source := from
				if strings.EqualFold(source, "auto") {
					if detected := language.DetectText(strings.Join(texts, "\n")); detected != "" {
						source = detected
						log.Debug("detected source language",
							logging.String(logging.FieldFile, path),
							logging.String("language", detected),
						)
					}
				}
				translated, err := translator.Translate(runCtx, texts, source, to)
				if err != nil {
					return fmt.Errorf("translate %s: %w", path, err)
				}
				if err := doc.SetTexts(translated, bilingual); err != nil {
					return err
				}
				dest := subtitles.LabeledPath(path, outputLabel(source, to, bilingual), "")
				if err := doc.Save(dest, doc.Format); err != nil {
					return err
				}
				log.Info("translated subtitle",
					logging.String(logging.FieldFile, path),
					logging.Int("cues", doc.Len()),
					logging.String("output", dest),
				)
				fmt.Fprintln(cmd.OutOrStdout(), dest)
			}
			return nil
		},
	}

	in.register(cmd)
	cmd.Flags().StringVar(&engine, "engine", "", "Translation engine (google, llm); default from config")
	cmd.Flags().StringVar(&from, "from", "", "Source language code or auto; default from config")
	cmd.Flags().StringVar(&to, "to", "", "Target language code or label; default from config")
	cmd.Flags().BoolVar(&bilingual, "bilingual", false, "Keep the original line below each translation")
	return cmd
}

// outputLabel names the translated track. Bilingual English-to-Chinese output
// carries the combined label.
func outputLabel(from, to string, bilingual bool) language.Label {
	label := language.Label(language.LabelForCode(to))
	if !bilingual || language.LabelForCode(from) != string(language.English) {
		return label
	}
	switch label {
	case language.Simplified:
		return language.SimplifiedEnglish
	case language.Traditional:
		return language.TraditionalEnglish
	}
	return label
}
