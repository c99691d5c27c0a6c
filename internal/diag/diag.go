// ABOUTME: Structured diagnostic channel for recoverable data-quality problems
// ABOUTME: Collects typed warnings in arrival order and mirrors them to zap
package diag

import (
	"sync"

	"go.uber.org/zap"
)

// Kind classifies a recoverable problem
type Kind string

const (
	KindUnrecognizedGlyph   Kind = "unrecognized_glyph"
	KindMissingGrid         Kind = "missing_grid"
	KindMissingAssociations Kind = "missing_associations"
	KindKeyNotFound         Kind = "key_not_found"
	KindMalformedRow        Kind = "malformed_row"
)

// Warning is one collected diagnostic
type Warning struct {
	Kind     Kind   `json:"kind"`
	PuzzleID string `json:"puzzle_id,omitempty"`
	Line     int    `json:"line,omitempty"`
	Detail   string `json:"detail"`
}

// Collector accumulates warnings for a single run
type Collector struct {
	mu       sync.Mutex
	logger   *zap.Logger
	warnings []Warning
}

// NewCollector creates a collector; a nil logger discards log output
func NewCollector(logger *zap.Logger) *Collector {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Collector{logger: logger}
}

// Warn records a warning and logs it
func (c *Collector) Warn(w Warning) {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.warnings = append(c.warnings, w)
	c.mu.Unlock()

	fields := []zap.Field{zap.String("kind", string(w.Kind))}
	if w.PuzzleID != "" {
		fields = append(fields, zap.String("puzzle_id", w.PuzzleID))
	}
	if w.Line > 0 {
		fields = append(fields, zap.Int("line", w.Line))
	}
	c.logger.Warn(w.Detail, fields...)
}

// Warnings returns a copy of everything collected so far
func (c *Collector) Warnings() []Warning {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Warning, len(c.warnings))
	copy(out, c.warnings)
	return out
}

// Count returns how many warnings of a kind were collected
func (c *Collector) Count(kind Kind) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, w := range c.warnings {
		if w.Kind == kind {
			n++
		}
	}
	return n
}

// Summary returns per-kind counts
func (c *Collector) Summary() map[Kind]int {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[Kind]int)
	for _, w := range c.warnings {
		out[w.Kind]++
	}
	return out
}

// Logger exposes the underlying logger for stage-level info/debug output
func (c *Collector) Logger() *zap.Logger {
	return c.logger
}
