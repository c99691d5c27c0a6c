// ABOUTME: Terminal scatter renderer
// ABOUTME: Draws labelled points on a character grid with lipgloss-styled titles
package plot

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/harper/wordlink/internal/models"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	axisStyle  = lipgloss.NewStyle().Faint(true)
)

// TextPlotter renders scatter plots as character grids
type TextPlotter struct {
	w      io.Writer
	width  int
	height int
}

// NewTextPlotter creates a renderer of the given plot area size
func NewTextPlotter(w io.Writer, width, height int) *TextPlotter {
	return &TextPlotter{w: w, width: width, height: height}
}

// Scatter draws the series; overlapping points are shown as '#'. Each label is
// written beside its point when the row has room, otherwise listed under the axis.
func (tp *TextPlotter) Scatter(s models.Series) error {
	if err := validate(s); err != nil {
		return err
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(s.Title))
	b.WriteString("\n")

	if s.Len() == 0 {
		b.WriteString("(no data)\n")
		_, err := io.WriteString(tp.w, b.String())
		return err
	}

	xmin, xmax := bounds(s.X)
	ymin, ymax := bounds(s.Y)

	grid := make([][]rune, tp.height)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", tp.width))
	}
	cols := make([]int, s.Len())
	rows := make([]int, s.Len())
	for i := range s.X {
		cols[i] = scale(s.X[i], xmin, xmax, tp.width)
		rows[i] = tp.height - 1 - scale(s.Y[i], ymin, ymax, tp.height)
		if grid[rows[i]][cols[i]] == ' ' {
			grid[rows[i]][cols[i]] = '*'
		} else {
			grid[rows[i]][cols[i]] = '#'
		}
	}

	var legend []int
	for i, label := range s.Labels {
		if !annotate(grid[rows[i]], cols[i], label) {
			legend = append(legend, i)
		}
	}

	yTop := fmt.Sprintf("%g", ymax)
	yBottom := fmt.Sprintf("%g", ymin)
	pad := max(len(yTop), len(yBottom))

	b.WriteString(axisStyle.Render(s.YLabel))
	b.WriteString("\n")
	for i, line := range grid {
		label := ""
		switch i {
		case 0:
			label = yTop
		case len(grid) - 1:
			label = yBottom
		}
		fmt.Fprintf(&b, "%*s |%s\n", pad, label, string(line))
	}
	fmt.Fprintf(&b, "%*s +%s\n", pad, "", strings.Repeat("-", tp.width))

	xLeft := fmt.Sprintf("%g", xmin)
	xRight := fmt.Sprintf("%g", xmax)
	gap := max(1, tp.width-len(xLeft)-len(xRight))
	fmt.Fprintf(&b, "%*s  %s%s%s\n", pad, "", xLeft, strings.Repeat(" ", gap), xRight)
	fmt.Fprintf(&b, "%*s  %s\n", pad, "", axisStyle.Render(s.XLabel))
	for _, i := range legend {
		fmt.Fprintf(&b, "%*s  %s (%g, %g)\n", pad, "", s.Labels[i], s.X[i], s.Y[i])
	}

	_, err := io.WriteString(tp.w, b.String())
	return err
}

// annotate writes label one cell right of col if every cell it needs is blank
func annotate(line []rune, col int, label string) bool {
	text := []rune(label)
	start := col + 2
	if len(text) == 0 {
		return true
	}
	if start+len(text) > len(line) {
		return false
	}
	for _, c := range line[col+1 : start+len(text)] {
		if c != ' ' {
			return false
		}
	}
	copy(line[start:], text)
	return true
}

func bounds(xs []float64) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, x := range xs {
		lo = math.Min(lo, x)
		hi = math.Max(hi, x)
	}
	return lo, hi
}

// scale maps v in [lo, hi] onto a cell index in [0, n)
func scale(v, lo, hi float64, n int) int {
	if hi == lo {
		return n / 2
	}
	idx := int(math.Round((v - lo) / (hi - lo) * float64(n-1)))
	return min(max(idx, 0), n-1)
}
