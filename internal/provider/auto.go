package provider

import (
	"tarot/pkg/deck"
	"tarot/pkg/tarot"
)

// Auto answers by itself when there is only one legal choice and asks the
// wrapped provider otherwise
type Auto struct {
	tarot.DecisionProvider
}

// NewAuto wraps a provider
func NewAuto(p tarot.DecisionProvider) *Auto {
	return &Auto{DecisionProvider: p}
}

// ChooseContract is only forwarded when a bid is possible
func (a *Auto) ChooseContract(v tarot.View, choices []tarot.Contract) (int, error) {
	if len(choices) == 1 {
		return 0, nil
	}

	return a.DecisionProvider.ChooseContract(v, choices)
}

// CallCard is forwarded unless one card can be called
func (a *Auto) CallCard(v tarot.View, choices deck.Hand) (int, error) {
	if len(choices) == 1 {
		return 0, nil
	}

	return a.DecisionProvider.CallCard(v, choices)
}

// Discard is forwarded unless the remaining cards are forced
func (a *Auto) Discard(v tarot.View, choices deck.Hand, remaining int) (int, error) {
	if len(choices) == 1 {
		return 0, nil
	}

	return a.DecisionProvider.Discard(v, choices, remaining)
}

// DeclareHandle is forwarded unless refusing is the only choice
func (a *Auto) DeclareHandle(v tarot.View, choices []tarot.Handle) (int, error) {
	if len(choices) == 1 {
		return 0, nil
	}

	return a.DecisionProvider.DeclareHandle(v, choices)
}

// HideTrump is forwarded unless one trump can be hidden
func (a *Auto) HideTrump(v tarot.View, choices deck.Hand, remaining int) (int, error) {
	if len(choices) == 1 || len(choices) == remaining {
		return 0, nil
	}

	return a.DecisionProvider.HideTrump(v, choices, remaining)
}

// PlayCard is forwarded unless one card can be played
func (a *Auto) PlayCard(v tarot.View, choices deck.Hand) (int, error) {
	if len(choices) == 1 {
		return 0, nil
	}

	return a.DecisionProvider.PlayCard(v, choices)
}
