// ABOUTME: End-to-end tests for the batch pipeline over in-memory tables
// ABOUTME: Checks progress output, chain invariants and recoverable errors
package pipeline

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harper/wordlink/internal/config"
	"github.com/harper/wordlink/internal/core"
	"github.com/harper/wordlink/internal/diag"
	"github.com/harper/wordlink/internal/models"
	"github.com/harper/wordlink/internal/tables"
)

const postsCSV = `wordle_id,tweet_id,tweet_date,tweet_username,tweet_text
1234,t1,2022-01-01,u,"blah 🟩🟨⬛
⬛⬛⬛
"
1234,t2,2022-01-01,v,"Wordle 1234 1/6

🟩🟩🟩"
1235,t3,2022-01-02,w,"no grid today"
1235,t4,2022-01-02,x,"⬛🟨⬛
🟩🟩🟩"
9999,t5,2022-01-03,y,"🟩🟩🟩"
`

const answersTSV = "date\twordle_id\tanswer\n" +
	"2022-01-01\t1234\tCIGAR\n" +
	"2022-01-02\t1235\tQUXXY\n" +
	"2022-01-03\t1236\tREBUT\n"

func lexRow(cue, r1, r2, r3 string) string {
	f := make([]string, tables.LexiconColumns)
	f[tables.LexiconCue] = cue
	f[tables.LexiconR1] = r1
	f[tables.LexiconR2] = r2
	f[tables.LexiconR3] = r3
	return strings.Join(f, ",") + "\n"
}

func lexicon() string {
	return lexRow("cue", "R1", "R2", "R3") +
		lexRow("tobacco", "cigar", "smoke", "") +
		lexRow("cuba", "cigar", "", "") +
		lexRow("tobacco", "cigar", "", "") +
		lexRow("argue", "rebut", "", "")
}

func defaultOptions() Options {
	return OptionsFromConfig(config.Default())
}

func run(t *testing.T, opts Options, posts, answers, lex string) (*Result, *diag.Collector, string) {
	t.Helper()
	var out bytes.Buffer
	c := diag.NewCollector(nil)
	p := New(opts, c, &out)

	res, err := p.Run(
		Reader(strings.NewReader(posts)),
		Reader(strings.NewReader(answers)),
		Reader(strings.NewReader(lex)),
	)
	require.NoError(t, err)
	return res, c, out.String()
}

func TestRun_EndToEnd(t *testing.T) {
	res, c, out := run(t, defaultOptions(), postsCSV, answersTSV, lexicon())

	assert.Equal(t, 4, res.Processed)
	assert.Equal(t, 1, res.Skipped)
	assert.Equal(t, 3, res.Solutions)
	assert.NotEmpty(t, res.RunID)

	// Boundary invariants
	assert.Equal(t, res.Processed, res.Chain.OutTotal(models.StartMarker))
	assert.Equal(t, res.Processed, res.Chain.InTotal(models.EndMarker))
	assert.Equal(t, 1, res.Chain.Count(models.StartMarker, "210"))
	assert.Equal(t, 1, res.Chain.Count("210", "000"))
	assert.Equal(t, 3, res.Chain.Count("222", models.EndMarker))

	// 1236 was never posted; 9999 has no answer
	require.Len(t, res.Points, 2)
	assert.Equal(t, "cigar", res.Points[0].Word)
	assert.Equal(t, 1.5, res.Points[0].AverageGuesses)
	assert.Equal(t, 2, res.Points[0].UniqueAssociations)
	assert.Equal(t, 3, res.Points[0].TotalAssociations)

	assert.Equal(t, "quxxy", res.Points[1].Word)
	assert.Zero(t, res.Points[1].TotalAssociations)
	assert.Zero(t, res.Points[1].UniqueAssociations)
	assert.Equal(t, 2.0, res.Points[1].AverageGuesses)

	require.Len(t, res.Series, 3)
	assert.Equal(t, []string{"cigar", "quxxy"}, res.Series[0].Labels)

	assert.Equal(t, 1, c.Count(diag.KindMissingGrid))
	assert.Equal(t, 1, c.Count(diag.KindMissingAssociations))
	assert.Equal(t, 1, c.Count(diag.KindKeyNotFound))
	assert.Equal(t, "9999", res.Warnings[1].PuzzleID)
	assert.Len(t, res.Warnings, 3)

	assert.Contains(t, out, "Processed 4 tweets\n")
	assert.Contains(t, out, "Skipped 1 tweets without a grid\n")
	assert.Contains(t, out, "Processed 3 solutions\n")
	assert.Contains(t, out, "unique state transitions\n")
	assert.Contains(t, out, "CIGAR -- Associations: 2 unique, 3 total; average guesses: 1.5\n")
	assert.Contains(t, out, "QUXXY -- Associations: 0 unique, 0 total; average guesses: 2.0\n")
}

func TestRun_CellGranularity(t *testing.T) {
	opts := defaultOptions()
	opts.Granularity = core.GranularityCell

	res, _, _ := run(t, opts, postsCSV, answersTSV, lexicon())

	assert.Equal(t, 1, res.Chain.Count(models.StartMarker, "0"))
	assert.Equal(t, 3, res.Chain.Count(models.StartMarker, "2"))
	assert.Equal(t, 4, res.Chain.InTotal(models.EndMarker))
}

func TestRun_AnswersWithoutHeader(t *testing.T) {
	opts := defaultOptions()
	opts.AnswersHasHeader = false

	answers := "2022-01-01\t1234\tcigar\n2022-01-01\t1234\trebut\n"
	res, _, _ := run(t, opts, postsCSV, answers, lexicon())

	require.Len(t, res.Points, 1)
	assert.Equal(t, "rebut", res.Points[0].Word)
	assert.Equal(t, 1, res.Solutions)
}

func TestRun_MalformedAbortsByDefault(t *testing.T) {
	c := diag.NewCollector(nil)
	p := New(defaultOptions(), c, nil)

	bad := answersTSV + "2022-01-04\t1237\n"
	_, err := p.Run(
		Reader(strings.NewReader(postsCSV)),
		Reader(strings.NewReader(bad)),
		Reader(strings.NewReader(lexicon())),
	)
	require.Error(t, err)
	assert.True(t, errors.Is(err, tables.ErrMalformedRow))
	assert.Contains(t, err.Error(), "loading answers")
}

func TestRun_MalformedSkipPolicy(t *testing.T) {
	opts := defaultOptions()
	opts.Policy = tables.PolicySkip

	bad := answersTSV + "2022-01-04\t1237\n"
	res, c, _ := run(t, opts, postsCSV, bad, lexicon())

	assert.Equal(t, 3, res.Solutions)
	assert.Equal(t, 1, c.Count(diag.KindMalformedRow))
}

func TestRun_Files(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		return path
	}

	posts := write("posts.csv", postsCSV)
	answers := write("answers.tsv", answersTSV)
	lex := write("lexicon.csv", lexicon())

	p := New(defaultOptions(), nil, nil)
	res, err := p.Run(File(posts), File(answers), File(lex))
	require.NoError(t, err)
	assert.Len(t, res.Points, 2)

	_, err = p.Run(File(filepath.Join(dir, "missing.csv")), File(answers), File(lex))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestOptionsFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.HighContrast = true
	cfg.MalformedRows = "skip"
	cfg.Granularity = "cell"
	cfg.MissingResponseTokens = []string{"NA"}

	opts := OptionsFromConfig(cfg)
	assert.Equal(t, tables.PolicySkip, opts.Policy)
	assert.Equal(t, core.GranularityCell, opts.Granularity)
	assert.Equal(t, []string{"NA"}, opts.MissingResponseTokens)

	_, ok := opts.Glyphs.Lookup(models.GlyphOrange)
	assert.True(t, ok)
}

func TestFormatAverage(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{3, "3.0"},
		{1.5, "1.5"},
		{0, "0.0"},
		{10.0 / 3, "3.3333333333333335"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatAverage(tt.in))
	}
}
