// ABOUTME: Tests for shared utility functions used by CLI commands
// ABOUTME: Verifies truncate, stateLabel, validation and warning summary helpers

package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/harper/wordlink/internal/diag"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{
			name:   "short string unchanged",
			input:  "hello",
			maxLen: 10,
			want:   "hello",
		},
		{
			name:   "exact length unchanged",
			input:  "hello",
			maxLen: 5,
			want:   "hello",
		},
		{
			name:   "long string truncated",
			input:  "hello world",
			maxLen: 8,
			want:   "hello...",
		},
		{
			name:   "very short maxLen",
			input:  "hello",
			maxLen: 2,
			want:   "he",
		},
		{
			name:   "multibyte runes",
			input:  "🟩🟩🟩🟩🟩",
			maxLen: 4,
			want:   "🟩...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncate(tt.input, tt.maxLen); got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
			}
		})
	}
}

func TestStateLabel(t *testing.T) {
	if got := stateLabel(""); got != "(empty)" {
		t.Errorf("stateLabel(\"\") = %q, want (empty)", got)
	}
	if got := stateLabel("22222"); got != "22222" {
		t.Errorf("stateLabel(22222) = %q, want 22222", got)
	}
}

func TestValidatePositiveInt(t *testing.T) {
	if err := validatePositiveInt(1, "limit"); err != nil {
		t.Errorf("validatePositiveInt(1) error = %v", err)
	}
	err := validatePositiveInt(0, "limit")
	if err == nil || !strings.Contains(err.Error(), "limit must be positive") {
		t.Errorf("validatePositiveInt(0) error = %v, want positive error", err)
	}
}

func TestPrintWarningSummary(t *testing.T) {
	c := diag.NewCollector(nil)

	var empty bytes.Buffer
	printWarningSummary(&empty, c)
	if empty.Len() != 0 {
		t.Errorf("expected no output without warnings, got %q", empty.String())
	}

	c.Warn(diag.Warning{Kind: diag.KindMissingGrid})
	c.Warn(diag.Warning{Kind: diag.KindMissingGrid})
	c.Warn(diag.Warning{Kind: diag.KindMissingAssociations})

	var out bytes.Buffer
	printWarningSummary(&out, c)
	got := out.String()

	if !strings.Contains(got, "missing_grid: 2") {
		t.Errorf("summary missing grid count:\n%s", got)
	}
	if strings.Index(got, "missing_associations") > strings.Index(got, "missing_grid") {
		t.Errorf("summary should be sorted by kind:\n%s", got)
	}
}
