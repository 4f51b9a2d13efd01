// Package main implements the rtd CLI tool.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/amonks/rtd/internal/config"
	"github.com/amonks/rtd/internal/logging"
	"github.com/amonks/rtd/internal/paths"
	"github.com/amonks/rtd/internal/ui"
	"github.com/amonks/rtd/task"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		var exitErr interface{ ExitCode() int }
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.ExitCode())
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rtd",
	Short: "A simple personal todo list",
	Long: `rtd keeps a personal todo list in a single file.

Tasks live in ~/.rtd.csv unless --file, RTD_FILE or the [store] path
setting in ~/.config/rtd/config.toml points somewhere else.`,
	SilenceUsage: true,
}

var (
	rootFile     string
	rootLogLevel string
	rootColor    = colorValue(ui.ColorAuto)
)

func init() {
	rootCmd.PersistentFlags().StringVar(&rootFile, "file", "", "Task file path (default ~/.rtd.csv)")
	rootCmd.PersistentFlags().StringVar(&rootLogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Var(&rootColor, "color", "Color output: auto, always or never")
}

// taskEnv is everything a task command needs, resolved from flags,
// environment and config.
type taskEnv struct {
	config  *config.Config
	logger  *logrus.Logger
	styles  ui.Styles
	service *task.Service
}

// loadEnv resolves settings and opens the task store. Errors from config
// or flag values are returned as-is; store errors are wrapped so callers
// can report them the same way as service errors.
func loadEnv(cmd *cobra.Command) (*taskEnv, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	level := cfg.Log.Level
	if cmd.Flags().Changed("log-level") {
		level = rootLogLevel
	}
	logger, err := logging.New(cmd.ErrOrStderr(), level)
	if err != nil {
		return nil, err
	}

	mode, err := resolveColorMode(cmd, cfg)
	if err != nil {
		return nil, err
	}
	out := cmd.OutOrStdout()
	styles := ui.NewStyles(out, mode.Enabled(outputFile(out)))

	env := &taskEnv{config: cfg, logger: logger, styles: styles}

	path, err := resolveStorePath(cmd, cfg)
	if err != nil {
		return env, &storeOpenError{err: err}
	}
	logger.WithField("path", path).Debug("opening task store")

	store, err := task.OpenOrCreate(path, task.OpenOptions{Logger: logger})
	if err != nil {
		return env, &storeOpenError{err: err}
	}
	env.service = task.NewService(store, task.ServiceOptions{
		Render: prettyRenderer(styles, cfg.Display.Width, cfg.Display.TimeFormat),
	})
	return env, nil
}

// storeOpenError marks failures that happen after configuration was
// loaded, so they are reported like any other task failure.
type storeOpenError struct {
	err error
}

func (e *storeOpenError) Error() string { return e.err.Error() }

func (e *storeOpenError) Unwrap() error { return e.err }

func resolveStorePath(cmd *cobra.Command, cfg *config.Config) (string, error) {
	if cmd.Flags().Changed("file") {
		return paths.ExpandHome(rootFile)
	}
	if cfg.Store.Path != "" {
		return cfg.Store.Path, nil
	}
	return task.DefaultPath()
}

func resolveColorMode(cmd *cobra.Command, cfg *config.Config) (ui.ColorMode, error) {
	if cmd.Flags().Changed("color") {
		return ui.ColorMode(rootColor), nil
	}
	mode, err := ui.ParseColorMode(cfg.Display.Color)
	if err != nil {
		return "", fmt.Errorf("config display.color: %w", err)
	}
	return mode, nil
}

func outputFile(w io.Writer) *os.File {
	if f, ok := w.(*os.File); ok {
		return f
	}
	return nil
}
