// ABOUTME: GuessCounts records how many guesses each post for a puzzle took
// ABOUTME: Provides the per-puzzle arithmetic mean used in correlation
package core

import "golang.org/x/exp/constraints"

// GuessCounts maps puzzle id → observed guess counts in arrival order
type GuessCounts struct {
	counts map[string][]int
	order  []string
}

// NewGuessCounts creates an empty tally
func NewGuessCounts() *GuessCounts {
	return &GuessCounts{counts: make(map[string][]int)}
}

// Add records one post's guess count
func (g *GuessCounts) Add(puzzleID string, guesses int) {
	if _, ok := g.counts[puzzleID]; !ok {
		g.order = append(g.order, puzzleID)
	}
	g.counts[puzzleID] = append(g.counts[puzzleID], guesses)
}

// Counts returns the raw list for a puzzle
func (g *GuessCounts) Counts(puzzleID string) []int {
	return g.counts[puzzleID]
}

// Average returns the mean guess count; ok is false if the puzzle was never seen
func (g *GuessCounts) Average(puzzleID string) (avg float64, ok bool) {
	xs, ok := g.counts[puzzleID]
	if !ok || len(xs) == 0 {
		return 0, false
	}
	return Mean(xs), true
}

// Puzzles returns puzzle ids in first-seen order
func (g *GuessCounts) Puzzles() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)
	return out
}

// Len returns the number of distinct puzzles
func (g *GuessCounts) Len() int {
	return len(g.order)
}

// Mean is the arithmetic mean at full float64 precision; zero for no values
func Mean[T constraints.Integer | constraints.Float](xs []T) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += float64(x)
	}
	return sum / float64(len(xs))
}
