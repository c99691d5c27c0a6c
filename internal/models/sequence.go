// ABOUTME: RawRecord and AttemptSequence model one shared result and its encoding
// ABOUTME: A sequence holds one Row of cell states per guess
package models

import "strings"

// RawRecord is one post as read from the posts table
type RawRecord struct {
	PuzzleID string `json:"puzzle_id"`
	PostID   string `json:"post_id"`
	PostDate string `json:"post_date"`
	Username string `json:"username"`
	Text     string `json:"text"`
}

// Row is the cell states of one guess; it may be empty if no cell was recognized
type Row []State

// Key renders the row as its digit string, e.g. "21000"
func (r Row) Key() string {
	var b strings.Builder
	b.Grow(len(r))
	for _, s := range r {
		b.WriteByte(s.Digit())
	}
	return b.String()
}

// AttemptSequence is the ordered rows of one puzzle attempt
type AttemptSequence []Row

// Guesses is the number of guesses taken
func (seq AttemptSequence) Guesses() int {
	return len(seq)
}

// RowKeys returns one digit-string state per row
func (seq AttemptSequence) RowKeys() []string {
	keys := make([]string, len(seq))
	for i, row := range seq {
		keys[i] = row.Key()
	}
	return keys
}

// CellKeys flattens every cell of every row into single-digit states
func (seq AttemptSequence) CellKeys() []string {
	var keys []string
	for _, row := range seq {
		for _, s := range row {
			keys = append(keys, string(s.Digit()))
		}
	}
	return keys
}
