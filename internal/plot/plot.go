// ABOUTME: Plotting collaborator for correlation scatter series
// ABOUTME: Plotter implementations render to a terminal or write TSV files
package plot

import (
	"errors"
	"fmt"

	"github.com/harper/wordlink/internal/models"
)

// Plotter consumes one labelled scatter series
type Plotter interface {
	Scatter(series models.Series) error
}

// Multi fans a series out to several plotters
type Multi []Plotter

// Scatter sends the series to every plotter and joins their errors
func (m Multi) Scatter(series models.Series) error {
	var errs []error
	for _, p := range m {
		if err := p.Scatter(series); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// All plots every series in order
func All(p Plotter, series []models.Series) error {
	for _, s := range series {
		if err := validate(s); err != nil {
			return err
		}
		if err := p.Scatter(s); err != nil {
			return fmt.Errorf("plotting %q: %w", s.Title, err)
		}
	}
	return nil
}

func validate(s models.Series) error {
	if len(s.X) != len(s.Y) || len(s.X) != len(s.Labels) {
		return fmt.Errorf("series %q: x=%d y=%d labels=%d must match", s.Title, len(s.X), len(s.Y), len(s.Labels))
	}
	return nil
}
