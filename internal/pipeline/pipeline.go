// ABOUTME: Single-pass batch analysis: posts, answer key, lexicon, then the join
// ABOUTME: Each stage owns and returns its accumulator; nothing is shared globally
package pipeline

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/harper/wordlink/internal/config"
	"github.com/harper/wordlink/internal/core"
	"github.com/harper/wordlink/internal/diag"
	"github.com/harper/wordlink/internal/models"
	"github.com/harper/wordlink/internal/tables"
)

// Options controls parsing and modelling for one run
type Options struct {
	PostsHasHeader        bool
	AnswersHasHeader      bool
	LexiconHasHeader      bool
	Policy                tables.Policy
	Granularity           core.Granularity
	Glyphs                models.GlyphSet
	MissingResponseTokens []string
}

// OptionsFromConfig maps configuration onto pipeline options
func OptionsFromConfig(cfg *config.Config) Options {
	glyphs := models.StandardGlyphs()
	if cfg.HighContrast {
		glyphs = models.HighContrastGlyphs()
	}
	return Options{
		PostsHasHeader:        cfg.PostsHasHeader,
		AnswersHasHeader:      cfg.AnswersHasHeader,
		LexiconHasHeader:      cfg.LexiconHasHeader,
		Policy:                tables.Policy(cfg.MalformedRows),
		Granularity:           core.Granularity(cfg.Granularity),
		Glyphs:                glyphs,
		MissingResponseTokens: cfg.MissingResponseTokens,
	}
}

// PostsResult is everything the posts stage produces
type PostsResult struct {
	Chain     *core.Chain
	Guesses   *core.GuessCounts
	Processed int
	Skipped   int
}

// Result is the outcome of a full analysis run
type Result struct {
	RunID              string
	Processed          int
	Skipped            int
	Solutions          int
	AssociationTargets int
	Chain              *core.Chain
	Points             []models.CorrelationPoint
	Series             []models.Series
	Warnings           []diag.Warning
}

// Pipeline runs the stages in order, writing progress lines to out
type Pipeline struct {
	opts   Options
	diag   *diag.Collector
	logger *zap.Logger
	out    io.Writer
	runID  string
}

// New creates a pipeline; out receives human-readable progress lines
func New(opts Options, collector *diag.Collector, out io.Writer) *Pipeline {
	if collector == nil {
		collector = diag.NewCollector(nil)
	}
	if out == nil {
		out = io.Discard
	}
	if !opts.Policy.IsValid() {
		opts.Policy = tables.PolicyAbort
	}
	runID := uuid.New().String()
	return &Pipeline{
		opts:   opts,
		diag:   collector,
		logger: collector.Logger().With(zap.String("run_id", runID)),
		out:    out,
		runID:  runID,
	}
}

// Diagnostics returns the collector used by every stage
func (p *Pipeline) Diagnostics() *diag.Collector {
	return p.diag
}

// EncodePosts encodes every post, folding each sequence into the chain and
// tallying guess counts. Posts without a grid are skipped and counted.
func (p *Pipeline) EncodePosts(r io.Reader) (*PostsResult, error) {
	encoder := core.NewGridEncoder(p.opts.Glyphs, p.diag)
	builder := core.NewChainBuilder(p.opts.Granularity)
	guesses := core.NewGuessCounts()
	res := &PostsResult{}

	err := tables.ReadPosts(r, p.tableOptions(p.opts.PostsHasHeader), func(rec models.RawRecord) error {
		seq, err := encoder.Encode(rec.PuzzleID, rec.Text)
		if errors.Is(err, core.ErrMissingGrid) {
			res.Skipped++
			p.diag.Warn(diag.Warning{
				Kind:     diag.KindMissingGrid,
				PuzzleID: rec.PuzzleID,
				Detail:   fmt.Sprintf("post %s has no grid", rec.PostID),
			})
			return nil
		}
		if err != nil {
			return err
		}

		builder.Add(seq)
		guesses.Add(rec.PuzzleID, seq.Guesses())
		res.Processed++
		p.logger.Debug("Encoded post",
			zap.String("puzzle_id", rec.PuzzleID),
			zap.Int("guesses", seq.Guesses()))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("loading posts: %w", err)
	}

	res.Chain = builder.Build()
	res.Guesses = guesses
	p.logger.Info("Posts encoded",
		zap.Int("processed", res.Processed),
		zap.Int("skipped", res.Skipped),
		zap.Int("distinct_transitions", res.Chain.Distinct()))
	return res, nil
}

// LoadAnswers reads the answer key
func (p *Pipeline) LoadAnswers(r io.Reader) (*core.SolutionIndex, error) {
	si, err := tables.LoadAnswers(r, p.tableOptions(p.opts.AnswersHasHeader))
	if err != nil {
		return nil, fmt.Errorf("loading answers: %w", err)
	}
	p.logger.Info("Answers loaded", zap.Int("solutions", si.Len()))
	return si, nil
}

// LoadLexicon reads and inverts the association lexicon
func (p *Pipeline) LoadLexicon(r io.Reader) (*core.AssociationIndex, error) {
	ai, err := tables.LoadLexicon(r, p.tableOptions(p.opts.LexiconHasHeader), p.opts.MissingResponseTokens...)
	if err != nil {
		return nil, fmt.Errorf("loading lexicon: %w", err)
	}
	p.logger.Info("Lexicon loaded", zap.Int("targets", ai.Len()))
	return ai, nil
}

// Source opens one input table
type Source func() (io.ReadCloser, error)

// File opens path when the stage needs it
func File(path string) Source {
	return func() (io.ReadCloser, error) {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", path, err)
		}
		return f, nil
	}
}

// Reader wraps an already open reader
func Reader(r io.Reader) Source {
	return func() (io.ReadCloser, error) {
		return io.NopCloser(r), nil
	}
}

// Run executes every stage. Each source is opened, fully consumed and closed
// before the next one is touched.
func (p *Pipeline) Run(posts, answers, lexicon Source) (*Result, error) {
	var pr *PostsResult
	if err := consume(posts, func(r io.Reader) (err error) {
		pr, err = p.EncodePosts(r)
		return err
	}); err != nil {
		return nil, err
	}
	fmt.Fprintf(p.out, "Processed %d tweets\n", pr.Processed)
	if pr.Skipped > 0 {
		fmt.Fprintf(p.out, "Skipped %d tweets without a grid\n", pr.Skipped)
	}

	var si *core.SolutionIndex
	if err := consume(answers, func(r io.Reader) (err error) {
		si, err = p.LoadAnswers(r)
		return err
	}); err != nil {
		return nil, err
	}
	fmt.Fprintf(p.out, "Processed %d solutions\n", si.Len())
	fmt.Fprintf(p.out, "Found %d unique state transitions\n", pr.Chain.Distinct())

	var ai *core.AssociationIndex
	if err := consume(lexicon, func(r io.Reader) (err error) {
		ai, err = p.LoadLexicon(r)
		return err
	}); err != nil {
		return nil, err
	}
	fmt.Fprintf(p.out, "Loaded %d association targets\n", ai.Len())

	return p.join(pr, si, ai), nil
}

func (p *Pipeline) join(pr *PostsResult, si *core.SolutionIndex, ai *core.AssociationIndex) *Result {
	for _, id := range pr.Guesses.Puzzles() {
		if _, err := si.Lookup(id); errors.Is(err, core.ErrKeyNotFound) {
			p.diag.Warn(diag.Warning{
				Kind:     diag.KindKeyNotFound,
				PuzzleID: id,
				Detail:   "posted puzzle missing from answer key",
			})
		}
	}

	reporter := core.NewCorrelationReporter(si, ai, p.diag)
	points := reporter.Report(pr.Guesses)
	for _, pt := range points {
		fmt.Fprintf(p.out, "%s -- Associations: %d unique, %d total; average guesses: %s\n",
			strings.ToUpper(pt.Word), pt.UniqueAssociations, pt.TotalAssociations, formatAverage(pt.AverageGuesses))
	}

	return &Result{
		RunID:              p.runID,
		Processed:          pr.Processed,
		Skipped:            pr.Skipped,
		Solutions:          si.Len(),
		AssociationTargets: ai.Len(),
		Chain:              pr.Chain,
		Points:             points,
		Series:             core.Series(points),
		Warnings:           p.diag.Warnings(),
	}
}

func (p *Pipeline) tableOptions(hasHeader bool) tables.Options {
	return tables.Options{HasHeader: hasHeader, Policy: p.opts.Policy, Diag: p.diag}
}

// formatAverage prints the shortest exact decimal, always with a fractional part
func formatAverage(v float64) string {
	out := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(out, ".") {
		out += ".0"
	}
	return out
}

func consume(src Source, fn func(io.Reader) error) error {
	rc, err := src()
	if err != nil {
		return err
	}
	defer rc.Close()
	return fn(rc)
}
