package tarot

import (
	"strings"

	"tarot/pkg/deck"
)

// Play is a card played by a seat
type Play struct {
	Seat int       `json:"seat"`
	Card deck.Card `json:"card"`
}

// Trick is one round where every player plays a card
type Trick struct {
	Number int    `json:"number"`
	Plays  []Play `json:"plays"`

	master       int // index of the best card, the Fool excluded. -1 when none
	foolWins     bool
	foolReturned bool
}

func newTrick(number, players int) *Trick {
	return &Trick{
		Number: number,
		Plays:  make([]Play, 0, players),
		master: -1,
	}
}

// Called returns the first card that is not the Fool, it decides the suit to follow
func (t *Trick) Called() (deck.Card, bool) {
	for _, play := range t.Plays {
		if !play.Card.IsFool() {
			return play.Card, true
		}
	}

	return deck.Card{}, false
}

// MasterCard returns the best card played so far, the Fool excluded
func (t *Trick) MasterCard() (deck.Card, bool) {
	if t.master < 0 {
		return deck.Card{}, false
	}

	return t.Plays[t.master].Card, true
}

// Winner returns the seat taking the trick
func (t *Trick) Winner() (int, bool) {
	if t.foolWins {
		for _, play := range t.Plays {
			if play.Card.IsFool() {
				return play.Seat, true
			}
		}
	}

	if t.master < 0 {
		return -1, false
	}

	return t.Plays[t.master].Seat, true
}

// Cards returns every card of the trick
func (t *Trick) Cards() deck.Hand {
	cards := make(deck.Hand, len(t.Plays))
	for i, play := range t.Plays {
		cards[i] = play.Card
	}

	return cards
}

// wonCards returns the cards going to the winner, a Fool given back to its owner excluded
func (t *Trick) wonCards() deck.Hand {
	cards := make(deck.Hand, 0, len(t.Plays))
	for _, play := range t.Plays {
		if play.Card.IsFool() && t.foolReturned {
			continue
		}
		cards = append(cards, play.Card)
	}

	return cards
}

// put adds a card to the trick and updates the master
func (t *Trick) put(seat int, card deck.Card) {
	t.Plays = append(t.Plays, Play{Seat: seat, Card: card})
	if card.IsFool() {
		return
	}

	if t.master < 0 || !t.Plays[t.master].Card.Master(card) {
		t.master = len(t.Plays) - 1
	}
}

func (t *Trick) String() string {
	cards := make([]string, len(t.Plays))
	for i, play := range t.Plays {
		cards[i] = play.Card.String()
	}

	return strings.Join(cards, " ")
}

// LegalPlays returns the indexes of the cards of hand that may be played on the trick.
// callee is the called card of a five player deal, only used for the opening lead.
func LegalPlays(hand deck.Hand, t *Trick, callee *deck.Card) []int {
	called, ok := t.Called()
	if !ok {
		return openingLead(hand, t, callee)
	}

	fool := -1
	trumps := make([]int, 0, len(hand))
	higher := make([]int, 0, len(hand))
	followers := make([]int, 0, len(hand))

	master, _ := t.MasterCard()
	for i, c := range hand {
		switch {
		case c.IsFool():
			fool = i
		case c.IsTrump():
			trumps = append(trumps, i)
			if !master.IsTrump() || c.Rank > master.Rank {
				higher = append(higher, i)
			}
		case !called.IsTrump() && c.Suit == called.Suit:
			followers = append(followers, i)
		}
	}

	var choices []int
	switch {
	case len(followers) > 0:
		choices = followers
	case len(higher) > 0:
		choices = higher
	case len(trumps) > 0:
		choices = trumps
	default:
		return allIndexes(hand)
	}

	if fool >= 0 {
		choices = append(choices, fool)
	}

	return choices
}

// openingLead allows any card, except that the called suit cannot be led in
// the first trick of a five player deal unless the called card itself is played
func openingLead(hand deck.Hand, t *Trick, callee *deck.Card) []int {
	if callee == nil || t.Number != 1 || len(t.Plays) > 0 {
		return allIndexes(hand)
	}

	choices := make([]int, 0, len(hand))
	for i, c := range hand {
		if c.IsTrump() || c.Suit != callee.Suit || c == *callee {
			choices = append(choices, i)
		}
	}

	if len(choices) == 0 {
		return allIndexes(hand)
	}

	return choices
}

func allIndexes(hand deck.Hand) []int {
	choices := make([]int, len(hand))
	for i := range hand {
		choices[i] = i
	}

	return choices
}
