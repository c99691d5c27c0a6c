// ABOUTME: Free-association lexicon reader
// ABOUTME: 18 comma-delimited columns; only the cue and three responses are used
package tables

import (
	"io"
	"strings"

	"github.com/harper/wordlink/internal/core"
)

// Lexicon column layout, zero-indexed
const (
	LexiconColumns = 18
	LexiconCue     = 11
	LexiconR1      = 15
	LexiconR2      = 16
	LexiconR3      = 17
)

// LoadLexicon inverts the lexicon into an AssociationIndex
func LoadLexicon(r io.Reader, opts Options, missingTokens ...string) (*core.AssociationIndex, error) {
	ai := core.NewAssociationIndex(opts.Diag, missingTokens...)
	layout := Layout{Name: "lexicon", Comma: ',', Columns: LexiconColumns, HasHeader: opts.HasHeader}
	err := each(r, layout, opts, func(_ int, f []string) error {
		ai.Add(strings.TrimSpace(f[LexiconCue]),
			strings.TrimSpace(f[LexiconR1]),
			strings.TrimSpace(f[LexiconR2]),
			strings.TrimSpace(f[LexiconR3]))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ai, nil
}
