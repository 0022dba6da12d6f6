package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/SayCV/subspy/internal/mediafile"
	"github.com/SayCV/subspy/internal/services"
)

type inputFlags struct {
	input string
	inDir string
}

func (f *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.input, "input", "i", "", "Subtitle file to process")
	cmd.Flags().StringVarP(&f.inDir, "in-dir", "d", "", "Process every matching subtitle in this directory")
}

// resolve returns the single input file, or the subtitles in the input
// directory accepted by keep. Exactly one of the two flags must be set.
func (f *inputFlags) resolve(command string, keep func(string) bool) ([]string, error) {
	input := strings.TrimSpace(f.input)
	dir := strings.TrimSpace(f.inDir)
	switch {
	case input != "" && dir != "":
		return nil, services.Wrap(services.ErrValidation, command, "arguments", "use either --input or --in-dir, not both", nil)
	case input != "":
		info, err := os.Stat(input)
		if err != nil {
			return nil, services.Wrap(services.ErrNotFound, command, "input", input, err)
		}
		if info.IsDir() {
			return nil, services.Wrap(services.ErrValidation, command, "input", input+" is a directory; use --in-dir", nil)
		}
		return []string{input}, nil
	case dir != "":
		files, err := mediafile.FindSubtitleFiles(dir, false)
		if err != nil {
			return nil, services.Wrap(services.ErrNotFound, command, "in-dir", dir, err)
		}
		var kept []string
		for _, path := range files {
			if keep == nil || keep(path) {
				kept = append(kept, path)
			}
		}
		if len(kept) == 0 {
			return nil, services.Wrap(services.ErrNotFound, command, "in-dir", "no matching subtitles in "+dir, nil)
		}
		return kept, nil
	default:
		return nil, services.Wrap(services.ErrValidation, command, "arguments", "--input or --in-dir is required", nil)
	}
}

// forEachFile runs fn over files with bounded concurrency. Every file is
// attempted; the failures are joined.
func forEachFile(ctx context.Context, files []string, fn func(context.Context, string) error) error {
	var (
		g    errgroup.Group
		errs = make([]error, len(files))
	)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return nil
			}
			if err := fn(ctx, path); err != nil {
				errs[i] = fmt.Errorf("%s: %w", path, err)
			}
			return nil
		})
	}
	_ = g.Wait()
	return errors.Join(errs...)
}
