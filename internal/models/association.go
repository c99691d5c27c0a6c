// ABOUTME: Solution and association types for the answer key and reverse lexicon
// ABOUTME: AssociationSummary is the per-solution connectivity used in correlation
package models

// Solution is one answer-key entry
type Solution struct {
	PuzzleID string `json:"puzzle_id"`
	Word     string `json:"word"`
}

// Association is one cue that evokes a response word, with its observation count
type Association struct {
	Cue   string `json:"cue"`
	Count int    `json:"count"`
}

// AssociationSummary aggregates all associations pointing at a solution word
type AssociationSummary struct {
	Total  int `json:"total"`
	Unique int `json:"unique"`
}

// Summarize folds an association list into totals
func Summarize(assocs []Association) AssociationSummary {
	sum := AssociationSummary{Unique: len(assocs)}
	for _, a := range assocs {
		sum.Total += a.Count
	}
	return sum
}
