// ABOUTME: CorrelationPoint pairs a solution's guess difficulty with its connectivity
// ABOUTME: Series is the x/y/label triple handed to the plotting collaborator
package models

// CorrelationPoint is one qualifying puzzle in the correlation report
type CorrelationPoint struct {
	PuzzleID           string  `json:"puzzle_id"`
	Word               string  `json:"word"`
	UniqueAssociations int     `json:"unique_associations"`
	TotalAssociations  int     `json:"total_associations"`
	AverageGuesses     float64 `json:"average_guesses"`
	Samples            int     `json:"samples"`
}

// Series is a labelled scatter series with fixed axis titles
type Series struct {
	Title  string    `json:"title"`
	XLabel string    `json:"x_label"`
	YLabel string    `json:"y_label"`
	X      []float64 `json:"x"`
	Y      []float64 `json:"y"`
	Labels []string  `json:"labels"`
}

// Len returns the number of points
func (s Series) Len() int {
	return len(s.Labels)
}
