// ABOUTME: Tests for the diagnostic collector
// ABOUTME: Asserts on warning order, counts and log mirroring
package diag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestCollector_WarnAndCount(t *testing.T) {
	c := NewCollector(nil)

	c.Warn(Warning{Kind: KindUnrecognizedGlyph, PuzzleID: "210", Detail: "unknown character"})
	c.Warn(Warning{Kind: KindMissingGrid, PuzzleID: "211", Detail: "no grid"})
	c.Warn(Warning{Kind: KindUnrecognizedGlyph, PuzzleID: "212", Detail: "unknown character"})

	assert.Equal(t, 2, c.Count(KindUnrecognizedGlyph))
	assert.Equal(t, 1, c.Count(KindMissingGrid))
	assert.Equal(t, 0, c.Count(KindKeyNotFound))

	ws := c.Warnings()
	require.Len(t, ws, 3)
	assert.Equal(t, "211", ws[1].PuzzleID)

	assert.Equal(t, map[Kind]int{KindUnrecognizedGlyph: 2, KindMissingGrid: 1}, c.Summary())
}

func TestCollector_WarningsIsCopy(t *testing.T) {
	c := NewCollector(nil)
	c.Warn(Warning{Kind: KindKeyNotFound, Detail: "missing"})

	ws := c.Warnings()
	ws[0].Detail = "changed"

	assert.Equal(t, "missing", c.Warnings()[0].Detail)
}

func TestCollector_MirrorsToLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	c := NewCollector(zap.New(core))

	c.Warn(Warning{Kind: KindMissingAssociations, PuzzleID: "300", Line: 4, Detail: "no associations for word"})

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Equal(t, "no associations for word", entries[0].Message)

	ctx := entries[0].ContextMap()
	assert.Equal(t, "missing_associations", ctx["kind"])
	assert.Equal(t, "300", ctx["puzzle_id"])
	assert.Equal(t, int64(4), ctx["line"])
}

func TestCollector_NilSafeWarn(t *testing.T) {
	var c *Collector
	assert.NotPanics(t, func() {
		c.Warn(Warning{Kind: KindMissingGrid})
	})
}

func TestNewLogger_Levels(t *testing.T) {
	tests := []struct {
		name    string
		verbose bool
		quiet   bool
		debug   bool
		info    bool
	}{
		{"default", false, false, false, true},
		{"verbose", true, false, true, true},
		{"quiet", false, true, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := NewLogger(tt.verbose, tt.quiet)
			require.NoError(t, err)
			assert.Equal(t, tt.debug, logger.Core().Enabled(zapcore.DebugLevel))
			assert.Equal(t, tt.info, logger.Core().Enabled(zapcore.InfoLevel))
			assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))
		})
	}
}
