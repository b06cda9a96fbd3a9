// Package sorting implements the trash-sorting game: an item appears, the
// player drops it into one of four bins, and correct drops add score and an
// estimate of real waste diverted.
package sorting

import (
	"errors"
	"math/rand"
)

const (
	// ItemsPerLevel ends the round once reached
	ItemsPerLevel = 10

	// ImpactPerItem is the simulated kilograms diverted per correct drop
	ImpactPerItem = 0.5

	// FactChance is the probability of showing a fact after a correct drop
	FactChance = 0.3
)

var (
	ErrRoundOver   = errors.New("round over")
	ErrNoItem      = errors.New("no active item")
	ErrUnknownKind = errors.New("unknown item kind")
)

// Result is the outcome of a drop
type Result struct {
	Correct  bool
	Item     Item
	Fact     string // Empty when no fact is shown
	Finished bool   // Level complete after this drop
}

// Round tracks one level of the sorting game
type Round struct {
	rng *rand.Rand

	score    int
	impactKg float64
	sorted   int

	active    Item
	hasActive bool
}

// NewRound starts a round using rng for item and fact selection
func NewRound(rng *rand.Rand) *Round {
	return &Round{rng: rng}
}

// Score returns correct drops so far
func (r *Round) Score() int { return r.score }

// ImpactKg returns the simulated kilograms diverted
func (r *Round) ImpactKg() float64 { return r.impactKg }

// Sorted returns the level progress
func (r *Round) Sorted() int { return r.sorted }

// Over reports whether the level is complete
func (r *Round) Over() bool { return r.sorted >= ItemsPerLevel }

// Active returns the item waiting to be sorted
func (r *Round) Active() (Item, bool) {
	return r.active, r.hasActive
}

// Spawn replaces the active item with a random one from the catalog
func (r *Round) Spawn() (Item, error) {
	if r.Over() {
		r.hasActive = false
		return Item{}, ErrRoundOver
	}
	r.active = Catalog[r.rng.Intn(len(Catalog))]
	r.hasActive = true
	return r.active, nil
}

// Drop places the active item into bin. A wrong bin leaves the item active
// and the round unchanged.
func (r *Round) Drop(bin Kind) (Result, error) {
	if !r.hasActive {
		return Result{}, ErrNoItem
	}
	if bin >= kindCount {
		return Result{}, ErrUnknownKind
	}

	item := r.active
	if item.Kind != bin {
		return Result{Item: item}, nil
	}

	r.score++
	r.impactKg += ImpactPerItem
	r.sorted++
	r.hasActive = false

	res := Result{Correct: true, Item: item, Finished: r.Over()}
	if r.rng.Float64() < FactChance {
		res.Fact = Facts[r.rng.Intn(len(Facts))]
	}
	return res, nil
}

// Reset starts a new level
func (r *Round) Reset() {
	r.score = 0
	r.impactKg = 0
	r.sorted = 0
	r.hasActive = false
	r.active = Item{}
}
