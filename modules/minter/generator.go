package minter

import "math/rand/v2"

// Generator yields the token ids of a run. It is lazy and can be restarted with Reset.
//
// In sequential mode it yields startID, startID+1, ... exactly totalCount times.
// In random mode every id is drawn uniformly from [0, MaxTokenID] and duplicates are kept.
type Generator struct {
	startID    TokenID
	totalCount int
	randomize  bool
	rng        *rand.Rand
	next       int
}

// NewGenerator creates a generator. rng is only used in random mode, nil uses the global source.
// The range must have been checked with ValidateRange.
func NewGenerator(startID TokenID, totalCount int, randomize bool, rng *rand.Rand) *Generator {
	return &Generator{
		startID:    startID,
		totalCount: max(totalCount, 0),
		randomize:  randomize,
		rng:        rng,
	}
}

// Next returns the next id, false once totalCount ids have been yielded.
func (g *Generator) Next() (TokenID, bool) {
	if g.next >= g.totalCount {
		return 0, false
	}
	i := g.next
	g.next++

	if g.randomize {
		return g.draw(), true
	}
	return g.startID + TokenID(i), true
}

func (g *Generator) draw() TokenID {
	if g.rng != nil {
		return TokenID(g.rng.Uint32N(uint32(MaxTokenID) + 1))
	}
	return TokenID(rand.Uint32N(uint32(MaxTokenID) + 1))
}

// Reset restarts the sequence from the beginning.
func (g *Generator) Reset() {
	g.next = 0
}

// Len returns the number of ids of a full sequence.
func (g *Generator) Len() int {
	return g.totalCount
}
