// ABOUTME: GridEncoder turns a free-text post into an AttemptSequence
// ABOUTME: Extracts the first run of grid glyphs, splits rows, maps cells to states
package core

import (
	"fmt"
	"strings"

	"github.com/harper/wordlink/internal/diag"
	"github.com/harper/wordlink/internal/models"
)

// noise may continue a grid run but never starts one; dropped with a warning
var noise = map[rune]bool{
	'\uFE0F': true, // variation selector-16
	'\u200D': true, // zero-width joiner
	'\r':     true,
}

// GridEncoder encodes emoji grids into state sequences
type GridEncoder struct {
	glyphs models.GlyphSet
	diag   *diag.Collector
}

// NewGridEncoder creates an encoder over a glyph set; diagnostics may be nil
func NewGridEncoder(glyphs models.GlyphSet, collector *diag.Collector) *GridEncoder {
	if glyphs == nil {
		glyphs = models.StandardGlyphs()
	}
	return &GridEncoder{glyphs: glyphs, diag: collector}
}

// Extract returns the grid substring of text, from the first line holding a
// glyph through the last one
func (e *GridEncoder) Extract(text string) (string, error) {
	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		if !e.inRun(runes[i]) || noise[runes[i]] {
			continue
		}
		j := i
		hasSquare := false
		for j < len(runes) && e.inRun(runes[j]) {
			if _, ok := e.glyphs.Lookup(runes[j]); ok {
				hasSquare = true
			}
			j++
		}
		if hasSquare {
			return e.trimRun(string(runes[i:j])), nil
		}
		i = j
	}
	return "", ErrMissingGrid
}

// Encode extracts and encodes the grid in text
func (e *GridEncoder) Encode(puzzleID, text string) (models.AttemptSequence, error) {
	grid, err := e.Extract(text)
	if err != nil {
		return nil, fmt.Errorf("puzzle %s: %w", puzzleID, err)
	}
	return e.EncodeGrid(puzzleID, grid), nil
}

// EncodeGrid maps an already extracted grid, one Row per line
func (e *GridEncoder) EncodeGrid(puzzleID, grid string) models.AttemptSequence {
	lines := strings.Split(grid, "\n")
	if n := len(lines); n > 1 && lines[n-1] == "" {
		lines = lines[:n-1]
	}

	seq := make(models.AttemptSequence, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		row := make(models.Row, 0, len(line)/4)
		for _, r := range line {
			state, ok := e.glyphs.Lookup(r)
			if !ok {
				e.diag.Warn(diag.Warning{
					Kind:     diag.KindUnrecognizedGlyph,
					PuzzleID: puzzleID,
					Detail:   fmt.Sprintf("unknown character %q", r),
				})
				continue
			}
			row = append(row, state)
		}
		seq = append(seq, row)
	}
	return seq
}

// trimRun drops leading and trailing lines that hold only newlines or noise
func (e *GridEncoder) trimRun(run string) string {
	first := strings.IndexFunc(run, e.isGlyph)
	last := strings.LastIndexFunc(run, e.isGlyph)
	start := strings.LastIndexByte(run[:first], '\n') + 1
	end := len(run)
	if n := strings.IndexByte(run[last:], '\n'); n >= 0 {
		end = last + n
	}
	return run[start:end]
}

func (e *GridEncoder) isGlyph(r rune) bool {
	_, ok := e.glyphs.Lookup(r)
	return ok
}

func (e *GridEncoder) inRun(r rune) bool {
	return r == '\n' || noise[r] || e.isGlyph(r)
}
