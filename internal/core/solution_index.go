// ABOUTME: SolutionIndex maps puzzle ids to answer words
// ABOUTME: Last write wins on duplicate ids; iteration keeps first-seen order
package core

import (
	"fmt"
	"strings"

	"github.com/harper/wordlink/internal/models"
)

// SolutionIndex is an insertion-ordered puzzle id → answer map
type SolutionIndex struct {
	words map[string]string
	order []string
}

// NewSolutionIndex creates an empty index
func NewSolutionIndex() *SolutionIndex {
	return &SolutionIndex{words: make(map[string]string)}
}

// Put stores an answer. A duplicate id overwrites the earlier word but keeps
// its original position in iteration order.
func (si *SolutionIndex) Put(puzzleID, word string) {
	if _, exists := si.words[puzzleID]; !exists {
		si.order = append(si.order, puzzleID)
	}
	si.words[puzzleID] = word
}

// Lookup returns the lower-cased answer for a puzzle id
func (si *SolutionIndex) Lookup(puzzleID string) (string, error) {
	word, ok := si.words[puzzleID]
	if !ok {
		return "", fmt.Errorf("puzzle %s: %w", puzzleID, ErrKeyNotFound)
	}
	return strings.ToLower(word), nil
}

// IDs returns puzzle ids in first-seen order
func (si *SolutionIndex) IDs() []string {
	out := make([]string, len(si.order))
	copy(out, si.order)
	return out
}

// Solutions returns all entries in iteration order
func (si *SolutionIndex) Solutions() []models.Solution {
	out := make([]models.Solution, 0, len(si.order))
	for _, id := range si.order {
		out = append(out, models.Solution{PuzzleID: id, Word: strings.ToLower(si.words[id])})
	}
	return out
}

// Len returns the number of distinct puzzle ids
func (si *SolutionIndex) Len() int {
	return len(si.order)
}
