package tarot

import (
	"tarot/pkg/deck"
)

// Bid is a single bidding action
type Bid struct {
	Seat     int      `json:"seat"`
	Player   string   `json:"player"`
	Contract Contract `json:"contract"`
}

// View is what a player is allowed to know when a decision is asked
type View struct {
	Player      string
	Seat        int
	Names       []string // names of every seat
	Mode        Mode
	Hand        deck.Hand
	Contract    Contract
	Taker       int // -1 while nobody bid
	Bids        []Bid
	Callee      *deck.Card
	TrickNumber int
	Trick       []Play
}

// DecisionProvider makes the choices of one seat. Every method returns an index
// into the choices it was given. The engine never reads input or draws random
// numbers itself, everything goes through a provider.
// A provider is only asked one question at a time.
type DecisionProvider interface {
	// ChooseContract picks a contract, choices[0] is always Pass
	ChooseContract(v View, choices []Contract) (int, error)

	// AnnounceSlam is asked to a player right after they bid
	AnnounceSlam(v View) (bool, error)

	// CallCard picks the card whose owner becomes the ally (five players only)
	CallCard(v View, choices deck.Hand) (int, error)

	// Discard picks one card to put aside, remaining is the number of cards still to discard
	Discard(v View, choices deck.Hand, remaining int) (int, error)

	// DeclareHandle picks a handle, choices[0] is always HandleRefused
	DeclareHandle(v View, choices []Handle) (int, error)

	// HideTrump picks a trump to leave out of a declared handle, remaining is the number still to hide
	HideTrump(v View, choices deck.Hand, remaining int) (int, error)

	// PlayCard picks the card to play among the legal ones
	PlayCard(v View, choices deck.Hand) (int, error)
}

// checkChoice returns an error if the index returned by a provider is out of range
func checkChoice(player, what string, choice, max int) error {
	if choice < 0 || choice >= max {
		return IllegalChoiceError{
			Player: player,
			What:   what,
			Choice: choice,
			Max:    max,
		}
	}

	return nil
}
