package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/bytedance/sonic"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/ossyrian/crosshair-switcher/internal/catalog"
	"github.com/ossyrian/crosshair-switcher/internal/config"
	"github.com/ossyrian/crosshair-switcher/internal/crosshair"
	"github.com/ossyrian/crosshair-switcher/internal/logging"
	"github.com/ossyrian/crosshair-switcher/internal/switcher"
)

// app carries what every command needs.
type app struct {
	fs     afero.Fs
	cfg    *config.Config
	out    io.Writer
	logger *slog.Logger
}

// newApp loads the configuration and sets up logging for cmd.
func newApp(cmd *cobra.Command) (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	if err := logging.Setup(cfg.LogLevel, cfg.LogOutputDir); err != nil {
		return nil, fmt.Errorf("could not set up logging: %w", err)
	}

	return &app{
		fs:     afero.NewOsFs(),
		cfg:    cfg,
		out:    cmd.OutOrStdout(),
		logger: slog.Default(),
	}, nil
}

// service loads every weapon script in the catalog.
func (a *app) service() (*switcher.Service, error) {
	cat, err := catalog.Load()
	if err != nil {
		return nil, err
	}

	svc := switcher.New(a.fs, cat, switcher.Options{
		ScriptsDir: a.cfg.ScriptsDir,
		Workers:    a.cfg.WorkerCount(),
		DryRun:     a.cfg.DryRun,
		Logger:     a.logger.With("component", "switcher"),
	})

	if _, err := svc.LoadAll(); err != nil {
		return nil, err
	}

	return svc, nil
}

// crosshairs scans the thumbnails directory.
func (a *app) crosshairs() ([]crosshair.Item, error) {
	return crosshair.Scan(a.fs, a.cfg.ThumbnailsDir, a.cfg.WorkerCount(), a.logger.With("component", "crosshair"))
}

func (a *app) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

// printJSON outputs data as indented JSON
func (a *app) printJSON(v any) error {
	data, err := sonic.ConfigStd.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode json: %w", err)
	}
	a.printf("%s\n", data)
	return nil
}
