// ABOUTME: CorrelationReporter joins guess difficulty with lexical connectivity
// ABOUTME: Emits one point per puzzle present in both the answer key and the posts
package core

import (
	"fmt"

	"github.com/harper/wordlink/internal/diag"
	"github.com/harper/wordlink/internal/models"
)

// Axis titles and plot titles for the three fixed scatter views
const (
	AxisAverageGuesses     = "Average number of guesses"
	AxisUniqueAssociations = "Number of unique associations"
	AxisTotalAssociations  = "Number of total associations"

	TitleUniqueVsGuesses = "Unique associations versus average guesses"
	TitleTotalVsGuesses  = "Total associations versus average guesses"
	TitleUniqueVsTotal   = "Unique versus total associations"
)

// CorrelationReporter owns the join of the three independent sources
type CorrelationReporter struct {
	solutions    *SolutionIndex
	associations *AssociationIndex
	diag         *diag.Collector
}

// NewCorrelationReporter creates a reporter over loaded indexes
func NewCorrelationReporter(solutions *SolutionIndex, associations *AssociationIndex, collector *diag.Collector) *CorrelationReporter {
	return &CorrelationReporter{
		solutions:    solutions,
		associations: associations,
		diag:         collector,
	}
}

// Summaries computes the association summary of every solution, keyed by
// puzzle id. Words outside the lexicon get a zero summary.
func (r *CorrelationReporter) Summaries() map[string]models.AssociationSummary {
	out := make(map[string]models.AssociationSummary, r.solutions.Len())
	for _, sol := range r.solutions.Solutions() {
		if !r.associations.Has(sol.Word) {
			r.diag.Warn(diag.Warning{
				Kind:     diag.KindMissingAssociations,
				PuzzleID: sol.PuzzleID,
				Detail:   fmt.Sprintf("no associations for %s", sol.Word),
			})
			out[sol.PuzzleID] = models.AssociationSummary{}
			continue
		}
		out[sol.PuzzleID] = models.Summarize(r.associations.Associations(sol.Word))
	}
	return out
}

// Report emits points in answer-key order, skipping puzzles nobody posted
func (r *CorrelationReporter) Report(guesses *GuessCounts) []models.CorrelationPoint {
	summaries := r.Summaries()

	var points []models.CorrelationPoint
	for _, sol := range r.solutions.Solutions() {
		avg, ok := guesses.Average(sol.PuzzleID)
		if !ok {
			continue
		}
		sum := summaries[sol.PuzzleID]
		points = append(points, models.CorrelationPoint{
			PuzzleID:           sol.PuzzleID,
			Word:               sol.Word,
			UniqueAssociations: sum.Unique,
			TotalAssociations:  sum.Total,
			AverageGuesses:     avg,
			Samples:            len(guesses.Counts(sol.PuzzleID)),
		})
	}
	return points
}

// Series converts points into the three fixed scatter views
func Series(points []models.CorrelationPoint) []models.Series {
	n := len(points)
	avg := make([]float64, n)
	unique := make([]float64, n)
	total := make([]float64, n)
	labels := make([]string, n)
	for i, p := range points {
		avg[i] = p.AverageGuesses
		unique[i] = float64(p.UniqueAssociations)
		total[i] = float64(p.TotalAssociations)
		labels[i] = p.Word
	}

	return []models.Series{
		{Title: TitleUniqueVsGuesses, XLabel: AxisAverageGuesses, YLabel: AxisUniqueAssociations, X: avg, Y: unique, Labels: labels},
		{Title: TitleTotalVsGuesses, XLabel: AxisAverageGuesses, YLabel: AxisTotalAssociations, X: avg, Y: total, Labels: labels},
		{Title: TitleUniqueVsTotal, XLabel: AxisTotalAssociations, YLabel: AxisUniqueAssociations, X: total, Y: unique, Labels: labels},
	}
}
