package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/galaxy-gen/internal/config"
	"github.com/vovakirdan/galaxy-gen/internal/galaxy"
)

var (
	flagPlanets       int
	flagPlayers       int
	flagDensity       float64
	flagShape         string
	flagPreset        string
	flagNormalize     bool
	flagGridRounding  string
	flagMinSeparation float64
	flagNames         bool
	flagFormat        string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a galaxy and print its planets",
	Long: `Generate the planet coordinates of a galaxy.

Flags not given fall back to the configuration (see 'galaxy config').

Density presets:
  sparse - density 0.2, at least 6 units between planets
  normal - density 0.5
  dense  - density 0.85, at most 3 units between planets

Output formats:
  table - aligned columns (default on a terminal)
  csv   - index,name,x,y,home (default when piped)
  json  - full layout document
  yaml  - full layout document

Examples:
  galaxy generate --planets 200 --players 4 --density 0.5 --shape circle --seed 42
  galaxy generate --shape cluster --preset dense --names --format json
  galaxy generate --shape grid --planets 10 --grid-rounding floor`,
	Args: cobra.NoArgs,
	Run:  runGenerate,
}

func init() {
	addLayoutFlags(generateCmd)
	generateCmd.Flags().StringVar(&flagFormat, "format", "", "Output format: table, csv, json, yaml (default: table on a terminal, csv otherwise)")
}

// addLayoutFlags registers the flags shared by commands that generate a layout.
func addLayoutFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&flagPlanets, "planets", 0, "Number of planets")
	cmd.Flags().IntVar(&flagPlayers, "players", 0, "Number of players")
	cmd.Flags().Float64Var(&flagDensity, "density", 0, "Density in [0, 1]; higher packs planets tighter")
	cmd.Flags().StringVar(&flagShape, "shape", "", "Shape: random, spiral, circle, ring, cluster, grid")
	cmd.Flags().StringVar(&flagPreset, "preset", "", "Density preset: sparse, normal, dense")
	cmd.Flags().BoolVar(&flagNormalize, "normalize", false, "Rescale coordinates to [-1, 1]")
	cmd.Flags().StringVar(&flagGridRounding, "grid-rounding", "", "GRID point count policy: exact, floor, ceil")
	cmd.Flags().Float64Var(&flagMinSeparation, "min-separation", 0, "Minimum distance between planets of stochastic shapes")
	cmd.Flags().BoolVar(&flagNames, "names", false, "Assign planet names")
}

// generation is a generated layout with the request that produced it.
type generation struct {
	req        galaxy.Request
	layout     *galaxy.Layout
	normalized bool
}

// generateFromFlags resolves config and flags into a request and runs it.
func generateFromFlags(cmd *cobra.Command) (*generation, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	logger := newLogger(cfg)

	if flagPreset != "" {
		preset, err := config.ParseDensityPreset(flagPreset)
		if err != nil {
			return nil, err
		}
		config.ApplyDensityPreset(&cfg, preset)
	}
	applyLayoutFlags(cmd, &cfg)

	shape, err := galaxy.ParseShape(cfg.Defaults.Shape)
	if err != nil {
		return nil, err
	}

	seed := flagSeed
	if seed == 0 {
		if seed, err = newSeed(); err != nil {
			return nil, err
		}
		logger.Info("using random seed", "seed", seed)
	}

	var names []string
	if cfg.Defaults.Names {
		if names, err = config.LoadNames(cfg.Generator.NamesFile); err != nil {
			return nil, err
		}
	}
	opts, err := cfg.Options(names, logger)
	if err != nil {
		return nil, err
	}

	req := galaxy.Request{
		Planets: cfg.Defaults.Planets,
		Players: cfg.Defaults.Players,
		Density: cfg.Defaults.Density,
		Shape:   shape,
		Seed:    seed,
	}
	layout, err := galaxy.New(opts).Generate(req)
	if err != nil {
		return nil, err
	}
	return &generation{req: req, layout: layout, normalized: opts.Normalize}, nil
}

// applyLayoutFlags copies explicitly set flags over the configured values.
func applyLayoutFlags(cmd *cobra.Command, cfg *config.GalaxyConfig) {
	flags := cmd.Flags()
	if flags.Changed("planets") {
		cfg.Defaults.Planets = flagPlanets
	}
	if flags.Changed("players") {
		cfg.Defaults.Players = flagPlayers
	}
	if flags.Changed("density") {
		cfg.Defaults.Density = flagDensity
	}
	if flags.Changed("shape") {
		cfg.Defaults.Shape = flagShape
	}
	if flags.Changed("names") {
		cfg.Defaults.Names = flagNames
	}
	if flags.Changed("normalize") {
		cfg.Generator.Normalize = flagNormalize
	}
	if flags.Changed("grid-rounding") {
		cfg.Generator.GridRounding = flagGridRounding
	}
	if flags.Changed("min-separation") {
		cfg.Generator.MinSeparation = flagMinSeparation
	}
}

func runGenerate(cmd *cobra.Command, _ []string) {
	gen, err := generateFromFlags(cmd)
	if err != nil {
		fail("%v", err)
	}

	isTTY := term.IsTerminal(int(os.Stdout.Fd()))
	format := flagFormat
	if format == "" {
		format = formatCSV
		if isTTY {
			format = formatTable
		}
	}

	doc := newDocument(gen)
	if err := writeDocument(os.Stdout, format, doc, isTTY); err != nil {
		fail("%v", err)
	}
}
