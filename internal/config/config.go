package config

import "path/filepath"

// Config holds app configuration
type Config struct {
	// ScriptsDir holds one weapon script per weapon id (<id>.txt)
	ScriptsDir string `mapstructure:"scripts_dir" toml:"scripts_dir"`

	// ThumbnailsDir holds the .vtf crosshair textures offered as replacements
	ThumbnailsDir string `mapstructure:"thumbnails_dir" toml:"thumbnails_dir"`

	// Workers bounds the number of files loaded or decoded at once
	Workers int `mapstructure:"workers" toml:"workers"`

	DryRun       bool   `mapstructure:"dry_run" toml:"dry_run"`
	LogLevel     string `mapstructure:"log_level" toml:"log_level"`
	LogOutputDir string `mapstructure:"log_output_dir" toml:"log_output_dir"`
}

// WorkerCount returns the configured worker count, falling back to 1
// for zero or negative values.
func (c *Config) WorkerCount() int {
	if c.Workers < 1 {
		return 1
	}
	return c.Workers
}

// Default locations relative to the executable.
const (
	DefaultScriptsDir    = "scripts"
	DefaultThumbnailsDir = "materials/vgui/replay/thumbnails"
	DefaultWorkers       = 4
	DefaultLogLevel      = "info"
)

// Defaults returns the configuration used when nothing is set, with
// directories resolved against baseDir.
func Defaults(baseDir string) Config {
	return Config{
		ScriptsDir:    filepath.Join(baseDir, DefaultScriptsDir),
		ThumbnailsDir: filepath.Join(baseDir, filepath.FromSlash(DefaultThumbnailsDir)),
		Workers:       DefaultWorkers,
		LogLevel:      DefaultLogLevel,
	}
}
