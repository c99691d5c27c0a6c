// ABOUTME: CLI command running the full correlation analysis
// ABOUTME: Encodes posts, builds the chain, joins answers with the lexicon and plots
package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/harper/wordlink/internal/config"
	"github.com/harper/wordlink/internal/diag"
	"github.com/harper/wordlink/internal/models"
	"github.com/harper/wordlink/internal/pipeline"
	"github.com/harper/wordlink/internal/plot"
)

var (
	analyzePosts         string
	analyzeAnswers       string
	analyzeLexicon       string
	analyzePlotDir       string
	analyzeNoPlot        bool
	analyzeGranularity   string
	analyzeSkipMalformed bool
)

// analyzeReport is the JSON shape of an analysis run
type analyzeReport struct {
	RunID               string                    `json:"run_id"`
	Processed           int                       `json:"processed"`
	Skipped             int                       `json:"skipped"`
	Solutions           int                       `json:"solutions"`
	AssociationTargets  int                       `json:"association_targets"`
	DistinctTransitions int                       `json:"distinct_transitions"`
	Points              []models.CorrelationPoint `json:"points"`
	Series              []models.Series           `json:"series"`
	WarningCounts       map[diag.Kind]int         `json:"warning_counts"`
}

// NewAnalyzeCmd creates analyze command
func NewAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Correlate guess counts with answer-word associations",
		Long: `Run the full batch analysis.

Reads the posts table, encodes every emoji grid and builds the
transition chain, loads the answer key and the association lexicon,
then prints one line per answered puzzle and three scatter plots:
average guesses vs unique associations, average guesses vs total
associations, and total vs unique associations.

Posts without a grid are skipped and counted. Malformed rows abort
the load unless --skip-malformed is set.

Examples:
  wordlink analyze
  wordlink analyze --posts tweets.csv --answers answers.tsv --lexicon swow.csv
  wordlink analyze --plot-dir plots --no-plot
  wordlink analyze --format json`,
		RunE: runAnalyze,
	}

	cmd.Flags().StringVar(&analyzePosts, "posts", "", "Posts table (overrides config)")
	cmd.Flags().StringVar(&analyzeAnswers, "answers", "", "Answer key (overrides config)")
	cmd.Flags().StringVar(&analyzeLexicon, "lexicon", "", "Association lexicon (overrides config)")
	cmd.Flags().StringVar(&analyzePlotDir, "plot-dir", "", "Write each scatter series as TSV into this directory")
	cmd.Flags().BoolVar(&analyzeNoPlot, "no-plot", false, "Do not draw scatter plots in the terminal")
	cmd.Flags().StringVar(&analyzeGranularity, "granularity", "", "Chain state granularity: row or cell")
	cmd.Flags().BoolVar(&analyzeSkipMalformed, "skip-malformed", false, "Skip malformed rows instead of aborting")

	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := applyAnalyzeFlags(cfg); err != nil {
		return err
	}

	collector, sync, err := newCollector()
	if err != nil {
		return err
	}
	defer sync()

	out := cmd.OutOrStdout()
	progress := out
	if quiet || jsonOutput() {
		progress = io.Discard
	}

	p := pipeline.New(pipeline.OptionsFromConfig(cfg), collector, progress)
	res, err := p.Run(
		pipeline.File(cfg.PostsPath),
		pipeline.File(cfg.AnswersPath),
		pipeline.File(cfg.LexiconPath),
	)
	if err != nil {
		return err
	}
	collector.Logger().Info("Analysis complete",
		zap.String("run_id", res.RunID),
		zap.Int("points", len(res.Points)),
		zap.Int("warnings", len(res.Warnings)))

	var plotters plot.Multi
	if cfg.PlotDir != "" {
		tw, err := plot.NewTSVWriter(cfg.PlotDir)
		if err != nil {
			return err
		}
		plotters = append(plotters, tw)
	}
	if !analyzeNoPlot && !jsonOutput() {
		plotters = append(plotters, plot.NewTextPlotter(out, cfg.PlotWidth, cfg.PlotHeight))
	}
	if len(plotters) > 0 {
		if err := plot.All(plotters, res.Series); err != nil {
			return err
		}
	}

	if jsonOutput() {
		report := analyzeReport{
			RunID:               res.RunID,
			Processed:           res.Processed,
			Skipped:             res.Skipped,
			Solutions:           res.Solutions,
			AssociationTargets:  res.AssociationTargets,
			DistinctTransitions: res.Chain.Distinct(),
			Points:              res.Points,
			Series:              res.Series,
			WarningCounts:       collector.Summary(),
		}
		jsonData, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(out, "%s\n", jsonData)
		return nil
	}

	if !quiet {
		printWarningSummary(out, collector)
	}
	return nil
}

func applyAnalyzeFlags(cfg *config.Config) error {
	if analyzePosts != "" {
		cfg.PostsPath = analyzePosts
	}
	if analyzeAnswers != "" {
		cfg.AnswersPath = analyzeAnswers
	}
	if analyzeLexicon != "" {
		cfg.LexiconPath = analyzeLexicon
	}
	if analyzePlotDir != "" {
		cfg.PlotDir = analyzePlotDir
	}
	if analyzeGranularity != "" {
		cfg.Granularity = analyzeGranularity
	}
	if analyzeSkipMalformed {
		cfg.MalformedRows = "skip"
	}
	return cfg.Validate()
}
