// ABOUTME: Root command and global flags for the wordlink CLI
// ABOUTME: Wires config loading and the zap logger shared by subcommands
package commands

import (
	"errors"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/harper/wordlink/internal/config"
	"github.com/harper/wordlink/internal/diag"
)

var (
	verbose      bool
	quiet        bool
	outputFormat string
	configPath   string
)

// NewRootCmd creates the root command with every subcommand attached
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wordlink",
		Short: "Relate puzzle difficulty to word-association connectivity",
		Long: `wordlink reads shared puzzle-result grids, encodes each grid into a
sequence of per-guess states, builds a first-order Markov transition
chain over those states, and correlates average guess counts with how
strongly each answer word is evoked in a free-association lexicon.

Inputs are static delimited files. Configuration comes from an optional
YAML file (--config), then WORDLINK_* environment variables (a .env file
is honored), then command flags.

Examples:
  wordlink analyze
  wordlink analyze --posts tweets.csv --plot-dir plots
  wordlink chain --probabilities --format json
  wordlink encode "Wordle 210 3/6 ..."
  wordlink associations cigar rebut`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose && quiet {
				return errors.New("--verbose and --quiet are mutually exclusive")
			}
			switch outputFormat {
			case "auto", "text", "json":
			default:
				return fmt.Errorf("--format must be auto, text or json, got %q", outputFormat)
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Only log warnings and suppress progress lines")
	cmd.PersistentFlags().StringVar(&outputFormat, "format", "auto", "Output format: auto, text, json")
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file")

	cmd.AddCommand(NewAnalyzeCmd())
	cmd.AddCommand(NewEncodeCmd())
	cmd.AddCommand(NewChainCmd())
	cmd.AddCommand(NewAssociationsCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}

// loadConfig reads .env, the optional YAML file and the environment
func loadConfig() (*config.Config, error) {
	_ = godotenv.Load()

	var cfg *config.Config
	var err error
	if configPath == "" {
		cfg, err = config.Load()
	} else {
		cfg, err = config.LoadFile(configPath)
	}
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// newCollector builds the logger and diagnostic channel for one command
func newCollector() (*diag.Collector, func(), error) {
	logger, err := diag.NewLogger(verbose, quiet)
	if err != nil {
		return nil, nil, err
	}
	return diag.NewCollector(logger), func() { _ = logger.Sync() }, nil
}

func jsonOutput() bool {
	return outputFormat == "json"
}
