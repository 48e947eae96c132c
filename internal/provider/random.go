// Package provider holds the decision providers: who or what makes the choices of a seat
package provider

import (
	"tarot/internal/rng"
	"tarot/pkg/deck"
	"tarot/pkg/tarot"
)

// slamWeights makes a random player announce a slam once in a hundred bids
var slamWeights = []int{99, 1}

// Random picks uniformly among the legal choices
type Random struct {
	gen rng.Generator
}

var _ tarot.DecisionProvider = (*Random)(nil)

// NewRandom returns a random provider. The generator is not shared with other seats
// when it is not safe for concurrent use.
func NewRandom(gen rng.Generator) *Random {
	return &Random{gen: gen}
}

// ChooseContract picks any contract
func (r *Random) ChooseContract(v tarot.View, choices []tarot.Contract) (int, error) {
	return r.gen.Intn(len(choices)), nil
}

// AnnounceSlam rarely announces a slam
func (r *Random) AnnounceSlam(v tarot.View) (bool, error) {
	i, err := weightedIndex(r.gen, slamWeights)
	if err != nil {
		return false, err
	}

	return i == 1, nil
}

// CallCard picks any callable card
func (r *Random) CallCard(v tarot.View, choices deck.Hand) (int, error) {
	return r.gen.Intn(len(choices)), nil
}

// Discard picks any discardable card
func (r *Random) Discard(v tarot.View, choices deck.Hand, remaining int) (int, error) {
	return r.gen.Intn(len(choices)), nil
}

// DeclareHandle picks any handle
func (r *Random) DeclareHandle(v tarot.View, choices []tarot.Handle) (int, error) {
	return r.gen.Intn(len(choices)), nil
}

// HideTrump picks any trump
func (r *Random) HideTrump(v tarot.View, choices deck.Hand, remaining int) (int, error) {
	return r.gen.Intn(len(choices)), nil
}

// PlayCard picks any legal card
func (r *Random) PlayCard(v tarot.View, choices deck.Hand) (int, error) {
	return r.gen.Intn(len(choices)), nil
}
