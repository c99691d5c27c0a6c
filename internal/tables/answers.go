// ABOUTME: Answer-key reader
// ABOUTME: date, puzzle_id, answer_word; tab-delimited
package tables

import (
	"io"
	"strings"

	"github.com/harper/wordlink/internal/core"
)

// AnswersColumns is the fixed width of the answer key
const AnswersColumns = 3

// LoadAnswers fills a SolutionIndex; later duplicates overwrite earlier ones
func LoadAnswers(r io.Reader, opts Options) (*core.SolutionIndex, error) {
	si := core.NewSolutionIndex()
	layout := Layout{Name: "answers", Comma: '\t', Columns: AnswersColumns, HasHeader: opts.HasHeader}
	err := each(r, layout, opts, func(_ int, f []string) error {
		si.Put(strings.TrimSpace(f[1]), strings.TrimSpace(f[2]))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return si, nil
}
