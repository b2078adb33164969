package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/specialistvlad/age/internal/calendar"
	"github.com/specialistvlad/age/internal/clock"
	"github.com/specialistvlad/age/internal/ctxlog"
	"github.com/specialistvlad/age/internal/records"
	"github.com/specialistvlad/age/internal/settings"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *AppConfig
	clock  clock.Clock
	source records.Source
}

// Option customizes NewApp. Tests use these to pin the clock and the home
// directory.
type Option func(*appOptions)

type appOptions struct {
	clock   clock.Clock
	homeDir func() (string, error)
	getenv  func(string) string
	stdin   io.Reader
	source  records.Source
}

// WithClock replaces the system clock.
func WithClock(c clock.Clock) Option {
	return func(o *appOptions) { o.clock = c }
}

// WithHomeDir replaces os.UserHomeDir.
func WithHomeDir(fn func() (string, error)) Option {
	return func(o *appOptions) { o.homeDir = fn }
}

// WithEnv replaces os.Getenv.
func WithEnv(getenv func(string) string) Option {
	return func(o *appOptions) { o.getenv = getenv }
}

// WithStdin replaces os.Stdin for a DataFile of StdinPath.
func WithStdin(r io.Reader) Option {
	return func(o *appOptions) { o.stdin = r }
}

// WithSource reads records from src instead of the configured data file.
func WithSource(src records.Source) Option {
	return func(o *appOptions) { o.source = src }
}

// NewApp merges flags with the environment and the settings file,
// validates the result and wires the logger, clock and record source.
// Output goes to outW, logs to logW.
func NewApp(outW, logW io.Writer, flags *AppConfig, opts ...Option) (*App, error) {
	o := appOptions{homeDir: os.UserHomeDir, getenv: os.Getenv, stdin: os.Stdin}
	for _, opt := range opts {
		opt(&o)
	}
	merged := applyEnv(*flags, o.getenv)

	home, err := o.homeDir()
	if err != nil {
		home = ""
	}

	// The settings file may change the log level, so loading it is logged
	// with what flags and environment asked for.
	bootLogger := newLogger(merged.LogLevel, merged.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), bootLogger)

	file, err := loadSettings(ctx, merged.SettingsFile, home)
	if err != nil {
		return nil, err
	}

	cfg, err := NewConfig(mergeSettings(merged, file), home)
	if err != nil {
		return nil, err
	}

	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.", "data_file", cfg.DataFile)

	c := o.clock
	if c == nil {
		c = clock.NewSystem(nil)
	}
	if cfg.Today != "" {
		// Validated by NewConfig.
		today, _ := calendar.Parse(cfg.Today)
		c = clock.NewFixed(today)
		logger.Debug("Using fixed date.", "today", cfg.Today)
	}

	src := o.source
	if src == nil {
		src = records.FileSource{Path: cfg.DataFile}
		if cfg.DataFile == StdinPath {
			src = records.ReaderSource{Name: "stdin", R: o.stdin}
		}
	}

	return &App{
		outW:   outW,
		logger: logger,
		config: cfg,
		clock:  c,
		source: src,
	}, nil
}

// Config returns the effective configuration. This is primarily for testing.
func (a *App) Config() AppConfig {
	return *a.config
}

// loadSettings reads an explicit settings path, or the default one in home
// if it exists. An explicit path that does not exist is an error.
func loadSettings(ctx context.Context, path, home string) (*settings.File, error) {
	explicit := path != ""
	if !explicit {
		if home == "" {
			return nil, nil
		}
		path = filepath.Join(home, settings.DefaultFileName)
	}

	file, err := settings.Load(ctx, path, settings.Vars{Home: home})
	switch {
	case err == nil:
		return file, nil
	case !explicit && errors.Is(err, fs.ErrNotExist):
		return nil, nil
	default:
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
}
