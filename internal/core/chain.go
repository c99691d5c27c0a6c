// ABOUTME: Chain is a sparse first-order Markov count model over grid states
// ABOUTME: ChainBuilder folds attempt sequences into it with START/END boundaries
package core

import (
	"encoding/json"
	"sort"

	"github.com/harper/wordlink/internal/models"
)

// Granularity selects what a chain state is
type Granularity string

const (
	// GranularityRow uses one state per guess row, keyed by its digit string
	GranularityRow Granularity = "row"
	// GranularityCell flattens every cell into a single-digit state
	GranularityCell Granularity = "cell"
)

// IsValid checks if the granularity is supported
func (g Granularity) IsValid() bool {
	return g == GranularityRow || g == GranularityCell
}

// Transition is one observed (from, to) pair and its count
type Transition struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Count int    `json:"count"`
}

// Chain maps from-state → to-state → count
type Chain struct {
	counts    map[string]map[string]int
	distinct  int
	sequences int
}

// NewChain creates an empty chain
func NewChain() *Chain {
	return &Chain{counts: make(map[string]map[string]int)}
}

// Increment adds one observation of from → to
func (c *Chain) Increment(from, to string) {
	row, ok := c.counts[from]
	if !ok {
		row = make(map[string]int)
		c.counts[from] = row
	}
	if _, seen := row[to]; !seen {
		c.distinct++
	}
	row[to]++
}

// Count returns the number of observed from → to transitions
func (c *Chain) Count(from, to string) int {
	return c.counts[from][to]
}

// Distinct is the number of distinct (from, to) pairs ever observed
func (c *Chain) Distinct() int {
	return c.distinct
}

// Sequences is the number of sequences folded into the chain
func (c *Chain) Sequences() int {
	return c.sequences
}

// OutTotal sums all counts leaving from
func (c *Chain) OutTotal(from string) int {
	total := 0
	for _, n := range c.counts[from] {
		total += n
	}
	return total
}

// InTotal sums all counts arriving at to
func (c *Chain) InTotal(to string) int {
	total := 0
	for _, row := range c.counts {
		total += row[to]
	}
	return total
}

// Total sums every count in the chain
func (c *Chain) Total() int {
	total := 0
	for from := range c.counts {
		total += c.OutTotal(from)
	}
	return total
}

// Probability is the row-normalized transition probability from → to
func (c *Chain) Probability(from, to string) float64 {
	out := c.OutTotal(from)
	if out == 0 {
		return 0
	}
	return float64(c.counts[from][to]) / float64(out)
}

// Outgoing lists transitions leaving from, highest count first then by target
func (c *Chain) Outgoing(from string) []Transition {
	row := c.counts[from]
	out := make([]Transition, 0, len(row))
	for to, n := range row {
		out = append(out, Transition{From: from, To: to, Count: n})
	}
	sortTransitions(out)
	return out
}

// States returns every from-state: START first, then the rest sorted
func (c *Chain) States() []string {
	states := make([]string, 0, len(c.counts))
	hasStart := false
	for from := range c.counts {
		if from == models.StartMarker {
			hasStart = true
			continue
		}
		states = append(states, from)
	}
	sort.Strings(states)
	if hasStart {
		states = append([]string{models.StartMarker}, states...)
	}
	return states
}

// Transitions lists every observed pair in States() order
func (c *Chain) Transitions() []Transition {
	out := make([]Transition, 0, c.distinct)
	for _, from := range c.States() {
		out = append(out, c.Outgoing(from)...)
	}
	return out
}

// Map returns a deep copy of the raw counts
func (c *Chain) Map() map[string]map[string]int {
	out := make(map[string]map[string]int, len(c.counts))
	for from, row := range c.counts {
		cp := make(map[string]int, len(row))
		for to, n := range row {
			cp[to] = n
		}
		out[from] = cp
	}
	return out
}

// MarshalJSON renders the chain as nested counts with summary fields
func (c *Chain) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Sequences   int                       `json:"sequences"`
		Distinct    int                       `json:"distinct_transitions"`
		Transitions map[string]map[string]int `json:"transitions"`
	}{
		Sequences:   c.sequences,
		Distinct:    c.distinct,
		Transitions: c.Map(),
	})
}

func sortTransitions(ts []Transition) {
	sort.Slice(ts, func(i, j int) bool {
		if ts[i].Count != ts[j].Count {
			return ts[i].Count > ts[j].Count
		}
		return ts[i].To < ts[j].To
	})
}

// ChainBuilder accumulates sequences into a Chain it owns until Build
type ChainBuilder struct {
	granularity Granularity
	chain       *Chain
}

// NewChainBuilder creates a builder; an invalid granularity falls back to rows
func NewChainBuilder(granularity Granularity) *ChainBuilder {
	if !granularity.IsValid() {
		granularity = GranularityRow
	}
	return &ChainBuilder{granularity: granularity, chain: NewChain()}
}

// Add folds one sequence in, including the START and END boundary transitions
func (b *ChainBuilder) Add(seq models.AttemptSequence) {
	var states []string
	if b.granularity == GranularityCell {
		states = seq.CellKeys()
	} else {
		states = seq.RowKeys()
	}
	b.AddStates(states)
}

// AddStates folds an already keyed state sequence in
func (b *ChainBuilder) AddStates(states []string) {
	for i := 0; i <= len(states); i++ {
		from := models.StartMarker
		if i > 0 {
			from = states[i-1]
		}
		to := models.EndMarker
		if i < len(states) {
			to = states[i]
		}
		b.chain.Increment(from, to)
	}
	b.chain.sequences++
}

// Build returns the accumulated chain and resets the builder
func (b *ChainBuilder) Build() *Chain {
	chain := b.chain
	b.chain = NewChain()
	return chain
}

// BuildChain folds every sequence into a new chain
func BuildChain(sequences []models.AttemptSequence, granularity Granularity) *Chain {
	b := NewChainBuilder(granularity)
	for _, seq := range sequences {
		b.Add(seq)
	}
	return b.Build()
}
