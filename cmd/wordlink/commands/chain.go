// ABOUTME: CLI command to build and print the state transition chain
// ABOUTME: Lists counts per transition, optionally with row-normalized probabilities
package commands

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/harper/wordlink/internal/pipeline"
)

var (
	chainPosts         string
	chainGranularity   string
	chainProbabilities bool
	chainFrom          string
)

// NewChainCmd creates chain command
func NewChainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chain",
		Short: "Build the state transition chain from posts",
		Long: `Encode every post and fold the grids into a first-order Markov chain.

Each sequence contributes a transition from <START> to its first state,
one transition between each pair of adjacent states, and one from its
last state to <END>. States are whole rows ("21000") by default, or
single cells with --granularity cell.

Examples:
  wordlink chain
  wordlink chain --from "<START>" --probabilities
  wordlink chain --granularity cell --format json`,
		RunE: runChain,
	}

	cmd.Flags().StringVar(&chainPosts, "posts", "", "Posts table (overrides config)")
	cmd.Flags().StringVar(&chainGranularity, "granularity", "", "Chain state granularity: row or cell")
	cmd.Flags().BoolVar(&chainProbabilities, "probabilities", false, "Show row-normalized transition probabilities")
	cmd.Flags().StringVar(&chainFrom, "from", "", "Only show transitions leaving this state")

	return cmd
}

func runChain(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if chainPosts != "" {
		cfg.PostsPath = chainPosts
	}
	if chainGranularity != "" {
		cfg.Granularity = chainGranularity
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	collector, sync, err := newCollector()
	if err != nil {
		return err
	}
	defer sync()

	p := pipeline.New(pipeline.OptionsFromConfig(cfg), collector, nil)
	rc, err := pipeline.File(cfg.PostsPath)()
	if err != nil {
		return err
	}
	pr, err := p.EncodePosts(rc)
	rc.Close()
	if err != nil {
		return err
	}
	chain := pr.Chain

	if jsonOutput() {
		jsonData, err := json.MarshalIndent(chain, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
		return nil
	}

	transitions := chain.Transitions()
	if chainFrom != "" {
		transitions = chain.Outgoing(chainFrom)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	if chainProbabilities {
		fmt.Fprintf(w, "FROM\tTO\tCOUNT\tP\n")
		fmt.Fprintf(w, "----\t--\t-----\t-\n")
	} else {
		fmt.Fprintf(w, "FROM\tTO\tCOUNT\n")
		fmt.Fprintf(w, "----\t--\t-----\n")
	}
	for _, t := range transitions {
		if chainProbabilities {
			fmt.Fprintf(w, "%s\t%s\t%d\t%.4f\n", stateLabel(t.From), stateLabel(t.To), t.Count, chain.Probability(t.From, t.To))
		} else {
			fmt.Fprintf(w, "%s\t%s\t%d\n", stateLabel(t.From), stateLabel(t.To), t.Count)
		}
	}
	w.Flush()

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "\nSequences: %d, transitions: %d, unique transitions: %d\n",
			chain.Sequences(), chain.Total(), chain.Distinct())
	}
	return nil
}
