// galaxy generates deterministic planet coordinates for a new game.
//
// Usage:
//
//	galaxy generate          - Generate a galaxy and print its planets
//	galaxy browse            - Generate a galaxy and browse it interactively
//	galaxy shapes            - List galaxy shapes and how density affects them
//	galaxy config            - Print the effective configuration
//
// Global flags:
//
//	--seed <value>      - Set RNG seed for a reproducible galaxy (0 = random)
//	--config <path>     - Use a specific config file
//	--log-level <level> - Override the configured log level
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/galaxy-gen/internal/config"
)

var (
	// Global flags
	flagSeed       int64
	flagConfigPath string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "galaxy",
	Short: "Galaxy generator - deterministic planet layouts for new games",
	Long: `galaxy lays out the planets of a new game. The same planet count,
player count, density, shape and seed always produce the same coordinates.

Available commands:
  generate - Generate a galaxy and print its planets
  browse   - Generate a galaxy and browse it in the terminal
  shapes   - List galaxy shapes
  config   - Print the effective configuration

Examples:
  galaxy generate --planets 200 --players 4 --density 0.5 --shape circle --seed 42
  galaxy generate --shape grid --planets 100 --format csv > grid.csv
  galaxy browse --shape spiral --players 6 --names
  galaxy shapes`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random, printed so the run can be repeated)")
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "Path to config YAML (default: ~/.galaxy/config.yaml, then ./configs/galaxy.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(shapesCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig reads an optional .env file, then the configuration, then
// applies --log-level.
func loadConfig() (config.GalaxyConfig, error) {
	// .env is optional; variables already set in the environment win.
	_ = godotenv.Load()

	cfg, err := config.Load(flagConfigPath)
	if err != nil {
		return cfg, err
	}
	if flagLogLevel != "" {
		cfg.Logging.Level = flagLogLevel
		if _, err := cfg.LogLevel(); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

// newLogger builds the CLI logger. Logs go to stderr so stdout stays
// clean for piped output.
func newLogger(cfg config.GalaxyConfig) *log.Logger {
	level, err := cfg.LogLevel()
	if err != nil {
		level = log.InfoLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "galaxy",
		Level:           level,
	})
}

// fail prints err and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
