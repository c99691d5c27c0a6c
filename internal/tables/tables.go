// ABOUTME: Readers for the three delimited inputs: posts, answer key, lexicon
// ABOUTME: Column-count mismatches abort the load or are skipped per policy
package tables

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/harper/wordlink/internal/diag"
)

// ErrMalformedRow is wrapped by every MalformedRowError
var ErrMalformedRow = errors.New("malformed row")

// MalformedRowError reports a column-count mismatch
type MalformedRowError struct {
	Table string
	Line  int
	Got   int
	Want  int
}

func (e *MalformedRowError) Error() string {
	return fmt.Sprintf("%s line %d: got %d columns, want %d", e.Table, e.Line, e.Got, e.Want)
}

func (e *MalformedRowError) Unwrap() error {
	return ErrMalformedRow
}

// Policy decides what a malformed row does to its enclosing load
type Policy string

const (
	PolicyAbort Policy = "abort"
	PolicySkip  Policy = "skip"
)

// IsValid checks if the policy is supported
func (p Policy) IsValid() bool {
	return p == PolicyAbort || p == PolicySkip
}

// Layout describes one table's delimiter and shape
type Layout struct {
	Name      string
	Comma     rune
	Columns   int
	HasHeader bool
}

// Options shared by every reader
type Options struct {
	HasHeader bool
	Policy    Policy
	Diag      *diag.Collector
}

// each streams every well-formed row of r to fn along with its line number
func each(r io.Reader, layout Layout, opts Options, fn func(line int, fields []string) error) error {
	cr := csv.NewReader(r)
	cr.Comma = layout.Comma
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	first := true
	for {
		record, err := cr.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading %s: %w", layout.Name, err)
		}
		line, _ := cr.FieldPos(0)

		if first {
			first = false
			if layout.HasHeader {
				continue
			}
		}

		if len(record) != layout.Columns {
			malformed := &MalformedRowError{Table: layout.Name, Line: line, Got: len(record), Want: layout.Columns}
			if opts.Policy != PolicySkip {
				return malformed
			}
			opts.Diag.Warn(diag.Warning{
				Kind:   diag.KindMalformedRow,
				Line:   line,
				Detail: malformed.Error(),
			})
			continue
		}

		if err := fn(line, record); err != nil {
			return err
		}
	}
}
