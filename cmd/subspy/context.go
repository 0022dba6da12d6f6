package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/SayCV/subspy/internal/config"
	"github.com/SayCV/subspy/internal/logging"
	"github.com/SayCV/subspy/internal/services"
)

type globalFlags struct {
	config    string
	logLevel  string
	logFormat string
	debug     bool
}

type commandContext struct {
	flags *globalFlags

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(flags *globalFlags) *commandContext {
	return &commandContext{flags: flags}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, _, _, err := config.Load(strings.TrimSpace(c.flags.config))
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) configValue() *config.Config {
	cfg, _ := c.ensureConfig()
	return cfg
}

// logger builds the command logger. Flags override the [logging] section and
// output follows the command's stderr writer.
func (c *commandContext) logger(cmd *cobra.Command) (*slog.Logger, error) {
	opts := logging.Options{Writer: cmd.ErrOrStderr()}
	if cfg := c.configValue(); cfg != nil {
		opts.Level = cfg.Logging.Level
		opts.Format = cfg.Logging.Format
		opts.MaxSizeMB = cfg.Logging.MaxSizeMB
		opts.MaxBackups = cfg.Logging.MaxBackups
		if cfg.Logging.File != "" {
			opts.OutputPaths = []string{cfg.Logging.File}
		}
	}
	if level := strings.TrimSpace(c.flags.logLevel); level != "" {
		opts.Level = level
	}
	if format := strings.TrimSpace(c.flags.logFormat); format != "" {
		opts.Format = format
	}
	if c.flags.debug {
		opts.Level = "debug"
	}
	return logging.New(opts)
}

// runContext tags the command context with a fresh run id and cancels it on
// SIGINT or SIGTERM.
func runContext(cmd *cobra.Command, name string) (context.Context, context.CancelFunc) {
	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx := services.WithRunID(parent, uuid.NewString())
	ctx = services.WithCommand(ctx, name)
	return signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
}

// setup returns the loaded config, the command logger and the run context.
// Loggers pick up run_id and component from the context via
// logging.WithContext.
func (c *commandContext) setup(cmd *cobra.Command, name string) (*config.Config, *slog.Logger, context.Context, context.CancelFunc, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, nil, nil, nil, err
	}
	logger, err := c.logger(cmd)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	ctx, stop := runContext(cmd, name)
	return cfg, logger, ctx, stop, nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
