// ABOUTME: Writes each scatter series as a TSV file for external charting tools
// ABOUTME: File names are derived from the series title
package plot

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/harper/wordlink/internal/models"
)

// TSVWriter writes x, y, label rows into a directory
type TSVWriter struct {
	dir     string
	written []string
}

// NewTSVWriter creates the output directory if needed
func NewTSVWriter(dir string) (*TSVWriter, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating plot dir: %w", err)
	}
	return &TSVWriter{dir: dir}, nil
}

// Scatter writes one file per series
func (tw *TSVWriter) Scatter(s models.Series) error {
	if err := validate(s); err != nil {
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n", s.Title)
	fmt.Fprintf(&b, "%s\t%s\tlabel\n", s.XLabel, s.YLabel)
	for i := range s.X {
		b.WriteString(strconv.FormatFloat(s.X[i], 'g', -1, 64))
		b.WriteByte('\t')
		b.WriteString(strconv.FormatFloat(s.Y[i], 'g', -1, 64))
		b.WriteByte('\t')
		b.WriteString(s.Labels[i])
		b.WriteByte('\n')
	}

	path := filepath.Join(tw.dir, Slug(s.Title)+".tsv")
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	tw.written = append(tw.written, path)
	return nil
}

// Written lists the files produced so far
func (tw *TSVWriter) Written() []string {
	return tw.written
}

// Slug lower-cases a title and joins its words with dashes
func Slug(title string) string {
	words := strings.FieldsFunc(strings.ToLower(title), func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9')
	})
	return strings.Join(words, "-")
}
