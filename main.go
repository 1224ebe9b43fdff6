package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ossyrian/crosshair-switcher/internal/config"
)

var cfgFile string

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "crosshair-switcher",
	Short: "Change weapon crosshairs and explosion effects in TF2 weapon scripts",
	Long: `crosshair-switcher rewrites the crosshair and explosion effect values of
Team Fortress 2 weapon scripts. Only the targeted values change; everything
else in a script is kept byte for byte.

By default scripts are read from "scripts" and crosshair textures from
"materials/vgui/replay/thumbnails" next to the executable.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to config file")

	// directories
	rootCmd.PersistentFlags().String("scripts-dir", "", "directory holding the weapon scripts")
	rootCmd.PersistentFlags().String("thumbnails-dir", "", "directory holding the .vtf crosshair textures")

	// other opts
	rootCmd.PersistentFlags().Int("workers", config.DefaultWorkers, "number of files loaded or decoded at once")
	rootCmd.PersistentFlags().String("log-level", config.DefaultLogLevel, "log level (trace, debug, info, warn, error, fatal)")
	rootCmd.PersistentFlags().String("log-output-dir", "", "directory to write log files (if set, logs are written to both stderr and file)")
	rootCmd.PersistentFlags().Bool("dry-run", false, "compute changes without writing any script")

	viper.BindPFlag("scripts_dir", rootCmd.PersistentFlags().Lookup("scripts-dir"))
	viper.BindPFlag("thumbnails_dir", rootCmd.PersistentFlags().Lookup("thumbnails-dir"))
	viper.BindPFlag("workers", rootCmd.PersistentFlags().Lookup("workers"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log_output_dir", rootCmd.PersistentFlags().Lookup("log-output-dir"))
	viper.BindPFlag("dry_run", rootCmd.PersistentFlags().Lookup("dry-run"))
}

// initConfig reads in config file and environment variables if set
func initConfig() {
	defaults := config.Defaults(executableDir())
	viper.SetDefault("scripts_dir", defaults.ScriptsDir)
	viper.SetDefault("thumbnails_dir", defaults.ThumbnailsDir)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "crosshair-switcher"))
		}
		viper.AddConfigPath("/etc/crosshair-switcher")
		viper.SetConfigName("config")
		viper.SetConfigType("toml")
	}

	viper.SetEnvPrefix("CROSSHAIR_SWITCHER")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// executableDir returns the directory of the running binary, or the
// working directory if it cannot be determined.
func executableDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe)
}

// loadConfig unmarshals the effective configuration.
func loadConfig() (*config.Config, error) {
	cfg := &config.Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
