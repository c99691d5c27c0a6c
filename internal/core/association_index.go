// ABOUTME: AssociationIndex inverts a free-association lexicon
// ABOUTME: For each response word it counts which cues evoked it
package core

import (
	"fmt"
	"sort"

	"github.com/harper/wordlink/internal/diag"
	"github.com/harper/wordlink/internal/models"
)

// cueCounts keeps counts plus first-seen order so ties sort deterministically
type cueCounts struct {
	counts map[string]int
	order  []string
}

// AssociationIndex maps response → cue → count
type AssociationIndex struct {
	responses map[string]*cueCounts
	skip      map[string]bool
	diag      *diag.Collector
}

// NewAssociationIndex creates an empty index. Responses equal to any of the
// missing tokens (and empty responses) are ignored.
func NewAssociationIndex(collector *diag.Collector, missingTokens ...string) *AssociationIndex {
	skip := map[string]bool{"": true}
	for _, tok := range missingTokens {
		skip[tok] = true
	}
	return &AssociationIndex{
		responses: make(map[string]*cueCounts),
		skip:      skip,
		diag:      collector,
	}
}

// Add records one lexicon row: cue evoked each non-empty response
func (ai *AssociationIndex) Add(cue string, responses ...string) {
	for _, r := range responses {
		if ai.skip[r] {
			continue
		}
		cc, ok := ai.responses[r]
		if !ok {
			cc = &cueCounts{counts: make(map[string]int)}
			ai.responses[r] = cc
		}
		if _, seen := cc.counts[cue]; !seen {
			cc.order = append(cc.order, cue)
		}
		cc.counts[cue]++
	}
}

// Associations returns every cue for word, highest count first with ties in
// first-seen order. An unknown word yields an empty slice and a warning.
func (ai *AssociationIndex) Associations(word string) []models.Association {
	cc, ok := ai.responses[word]
	if !ok {
		ai.diag.Warn(diag.Warning{
			Kind:   diag.KindMissingAssociations,
			Detail: fmt.Sprintf("no associations for %s", word),
		})
		return []models.Association{}
	}

	out := make([]models.Association, len(cc.order))
	for i, cue := range cc.order {
		out[i] = models.Association{Cue: cue, Count: cc.counts[cue]}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}

// Count returns how often cue evoked word
func (ai *AssociationIndex) Count(word, cue string) int {
	if cc, ok := ai.responses[word]; ok {
		return cc.counts[cue]
	}
	return 0
}

// Has reports whether word has any recorded associations
func (ai *AssociationIndex) Has(word string) bool {
	_, ok := ai.responses[word]
	return ok
}

// Len returns the number of distinct response words
func (ai *AssociationIndex) Len() int {
	return len(ai.responses)
}
