// ABOUTME: State is the per-cell feedback category of one guessed letter
// ABOUTME: Also defines the glyph sets that map grid emoji onto states
package models

import "fmt"

// State is the canonical feedback for one cell of a grid row
type State uint8

const (
	StateMiss    State = 0
	StatePresent State = 1
	StateExact   State = 2
)

// Synthetic chain markers placed before the first and after the last element
const (
	StartMarker = "<START>"
	EndMarker   = "<END>"
)

// Digit returns the single-digit symbol used in row keys
func (s State) Digit() byte {
	return '0' + byte(s)
}

func (s State) String() string {
	switch s {
	case StateMiss:
		return "miss"
	case StatePresent:
		return "present"
	case StateExact:
		return "exact"
	}
	return fmt.Sprintf("State(%d)", uint8(s))
}

// Grid glyphs as they appear in shared results
const (
	GlyphBlack  = '⬛'
	GlyphWhite  = '⬜'
	GlyphYellow = '🟨'
	GlyphGreen  = '🟩'
	GlyphOrange = '🟧'
	GlyphBlue   = '🟦'
)

// GlyphSet maps recognized square glyphs to states
type GlyphSet map[rune]State

// StandardGlyphs covers both light and dark theme grids
func StandardGlyphs() GlyphSet {
	return GlyphSet{
		GlyphBlack:  StateMiss,
		GlyphWhite:  StateMiss,
		GlyphYellow: StatePresent,
		GlyphGreen:  StateExact,
	}
}

// HighContrastGlyphs adds the accessibility palette (orange exact, blue present)
func HighContrastGlyphs() GlyphSet {
	gs := StandardGlyphs()
	gs[GlyphOrange] = StateExact
	gs[GlyphBlue] = StatePresent
	return gs
}

// Lookup returns the state for a glyph and whether it is recognized
func (gs GlyphSet) Lookup(r rune) (State, bool) {
	s, ok := gs[r]
	return s, ok
}
