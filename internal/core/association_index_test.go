// ABOUTME: Tests for AssociationIndex inversion and ordering
// ABOUTME: Verifies deterministic tie-breaking and missing-word warnings
package core

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/harper/wordlink/internal/diag"
	"github.com/harper/wordlink/internal/models"
)

func TestAssociationIndex_Inverts(t *testing.T) {
	ai := NewAssociationIndex(nil)
	ai.Add("tobacco", "cigar", "smoke", "pipe")
	ai.Add("cuba", "cigar", "", "")
	ai.Add("tobacco", "cigar", "leaf", "")
	ai.Add("fire", "smoke", "hot", "red")

	assert.Equal(t, 2, ai.Count("cigar", "tobacco"))
	assert.Equal(t, 1, ai.Count("cigar", "cuba"))
	assert.Equal(t, 0, ai.Count("cigar", "fire"))
	assert.False(t, ai.Has(""))
	assert.Equal(t, 6, ai.Len())

	want := []models.Association{{Cue: "tobacco", Count: 2}, {Cue: "cuba", Count: 1}}
	assert.Equal(t, want, ai.Associations("cigar"))
}

func TestAssociationIndex_TiesKeepFirstSeenOrder(t *testing.T) {
	ai := NewAssociationIndex(nil)
	ai.Add("zebra", "stripe")
	ai.Add("apple", "stripe")
	ai.Add("mango", "stripe")
	ai.Add("mango", "stripe")

	got := ai.Associations("stripe")
	want := []models.Association{
		{Cue: "mango", Count: 2},
		{Cue: "zebra", Count: 1},
		{Cue: "apple", Count: 1},
	}
	assert.Equal(t, want, got)

	// Repeated queries are identical
	assert.Equal(t, got, ai.Associations("stripe"))
}

func TestAssociationIndex_MissingWord(t *testing.T) {
	c := diag.NewCollector(nil)
	ai := NewAssociationIndex(c)

	got := ai.Associations("zzzzz")
	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.Equal(t, 1, c.Count(diag.KindMissingAssociations))
}

func TestAssociationIndex_MissingTokens(t *testing.T) {
	ai := NewAssociationIndex(nil, "NA")
	ai.Add("cue", "NA", "word", "")

	assert.False(t, ai.Has("NA"))
	assert.True(t, ai.Has("word"))
}
