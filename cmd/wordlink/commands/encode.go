// ABOUTME: CLI command to encode one post's emoji grid
// ABOUTME: Prints the per-row state keys and guess count
package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/harper/wordlink/internal/core"
	"github.com/harper/wordlink/internal/models"
)

var (
	encodeHighContrast bool
)

// encodeResult is the JSON shape of one encoded grid
type encodeResult struct {
	Guesses  int      `json:"guesses"`
	Rows     []string `json:"rows"`
	Sequence [][]int  `json:"sequence"`
	Warnings int      `json:"warnings"`
}

// NewEncodeCmd creates encode command
func NewEncodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode [text]",
		Short: "Encode the emoji grid in a post",
		Long: `Extract the emoji grid from a post and print its state sequence.

Each row becomes a digit string: 0 for a miss, 1 for a letter present
elsewhere, 2 for an exact match. Reads the text from stdin when no
argument is given.

Examples:
  wordlink encode "$(pbpaste)"
  echo "🟩🟨⬛" | wordlink encode
  wordlink encode --high-contrast --format json "🟧🟦⬛"`,
		Args: cobra.MaximumNArgs(1),
		RunE: runEncode,
	}

	cmd.Flags().BoolVar(&encodeHighContrast, "high-contrast", false, "Recognize the high-contrast palette (orange/blue)")

	return cmd
}

func runEncode(cmd *cobra.Command, args []string) error {
	var text string
	if len(args) == 1 {
		text = args[0]
	} else {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		text = string(data)
	}

	collector, sync, err := newCollector()
	if err != nil {
		return err
	}
	defer sync()

	glyphs := models.StandardGlyphs()
	if encodeHighContrast {
		glyphs = models.HighContrastGlyphs()
	}
	enc := core.NewGridEncoder(glyphs, collector)

	seq, err := enc.Encode("-", text)
	if errors.Is(err, core.ErrMissingGrid) {
		return errors.New("no emoji grid found in input")
	}
	if err != nil {
		return err
	}

	if jsonOutput() {
		result := encodeResult{
			Guesses:  seq.Guesses(),
			Rows:     seq.RowKeys(),
			Sequence: make([][]int, len(seq)),
			Warnings: len(collector.Warnings()),
		}
		for i, row := range seq {
			result.Sequence[i] = make([]int, len(row))
			for j, state := range row {
				result.Sequence[i][j] = int(state)
			}
		}
		jsonData, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
		return nil
	}

	for i, key := range seq.RowKeys() {
		if key == "" {
			key = "(empty)"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d: %s\n", i+1, key)
	}
	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "\nGuesses: %d\n", seq.Guesses())
	}
	return nil
}
