package main

import (
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration after the search order and GALAXY_* environment
overrides are applied, as YAML. Save the output to ~/.galaxy/config.yaml to
use it as a starting point.

Search order:
  --config <path>
  ~/.galaxy/config.yaml
  ./configs/galaxy.yaml
  built-in defaults`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		fail("encoding config: %v", err)
	}
	if err := enc.Close(); err != nil {
		fail("encoding config: %v", err)
	}
}
