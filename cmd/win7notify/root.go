package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/win7notify"
	"github.com/jmylchreest/win7notify/internal/config"
)

// Build-time variables (set via ldflags)
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

var (
	cfg        *config.Config
	globalOpts struct {
		verbose    bool
		configPath string
	}
	logger   *slog.Logger
	logLevel = new(slog.LevelVar)
)

var rootCmd = &cobra.Command{
	Use:   "win7notify",
	Short: "Windows 10 style notifications for Windows 7 and later",
	Long: `win7notify shows borderless notification popups stacked in the
bottom-right corner of the primary monitor. Each popup closes when its
timeout expires or when its close button is clicked.`,
	Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildTime),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(globalOpts.configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		setupLogger(cfg)
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&globalOpts.verbose, "verbose", "v", false,
		"Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&globalOpts.configPath, "config", "",
		"Path to config file (default: <user config dir>/win7notify/config.toml)")
}

// setupLogger configures the global slog logger. The level follows the
// config file unless --verbose is set.
func setupLogger(c *config.Config) {
	applyLogLevel(c)

	// log to stderr so stdout stays clean for output
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})
	logger = slog.New(handler)
	slog.SetDefault(logger)
	win7notify.SetLogger(logger)
}

func applyLogLevel(c *config.Config) {
	if globalOpts.verbose {
		logLevel.Set(slog.LevelDebug)
		return
	}
	level, err := c.Log.SlogLevel()
	if err != nil {
		level = slog.LevelInfo
	}
	logLevel.Set(level)
}
