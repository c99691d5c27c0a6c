// ABOUTME: CLI command to list the cues that evoke a word
// ABOUTME: Loads the lexicon and prints associations sorted by count
package commands

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/harper/wordlink/internal/models"
	"github.com/harper/wordlink/internal/pipeline"
)

var (
	associationsLexicon string
	associationsLimit   int
)

// NewAssociationsCmd creates associations command
func NewAssociationsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "associations <word> [word...]",
		Short: "Show which cue words evoke a word",
		Long: `Load the free-association lexicon, invert it, and list the cue words
that evoked each given word, highest count first. Ties keep the order
in which the cues first appeared in the lexicon.

Examples:
  wordlink associations cigar
  wordlink associations --limit 5 cigar rebut
  wordlink associations --format json sissy`,
		Args: cobra.MinimumNArgs(1),
		RunE: runAssociations,
	}

	cmd.Flags().StringVar(&associationsLexicon, "lexicon", "", "Association lexicon (overrides config)")
	cmd.Flags().IntVar(&associationsLimit, "limit", 10, "Maximum cues to show per word")

	return cmd
}

func runAssociations(cmd *cobra.Command, args []string) error {
	if err := validatePositiveInt(associationsLimit, "limit"); err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if associationsLexicon != "" {
		cfg.LexiconPath = associationsLexicon
	}

	collector, sync, err := newCollector()
	if err != nil {
		return err
	}
	defer sync()

	p := pipeline.New(pipeline.OptionsFromConfig(cfg), collector, nil)
	rc, err := pipeline.File(cfg.LexiconPath)()
	if err != nil {
		return err
	}
	ai, err := p.LoadLexicon(rc)
	rc.Close()
	if err != nil {
		return err
	}

	words := make([]string, len(args))
	summaries := make(map[string]models.AssociationSummary, len(args))
	results := make(map[string][]models.Association, len(args))
	for i, word := range args {
		word = strings.ToLower(word)
		words[i] = word
		assocs := ai.Associations(word)
		summaries[word] = models.Summarize(assocs)
		if len(assocs) > associationsLimit {
			assocs = assocs[:associationsLimit]
		}
		results[word] = assocs
	}

	if jsonOutput() {
		jsonData, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
		return nil
	}

	for i, word := range words {
		if i > 0 {
			fmt.Fprintln(cmd.OutOrStdout())
		}
		sum := summaries[word]
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d unique, %d total\n", strings.ToUpper(word), sum.Unique, sum.Total)

		if len(results[word]) == 0 {
			continue
		}
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "CUE\tCOUNT\n")
		fmt.Fprintf(w, "---\t-----\n")
		for _, a := range results[word] {
			fmt.Fprintf(w, "%s\t%d\n", truncate(a.Cue, 30), a.Count)
		}
		w.Flush()
	}
	return nil
}
