package deck

import (
	"fmt"
	"sort"
	"strings"
)

// OudlersCountError is returned when a pile holds more oudlers than exist
type OudlersCountError int

func (o OudlersCountError) Error() string {
	return fmt.Sprintf("invalid number of oudlers: %d", int(o))
}

// Hand represents an ordered collection of cards: a hand, the dog, a won pile...
type Hand []Card

func (h Hand) Len() int {
	return len(h)
}

func (h Hand) Less(i, j int) bool {
	return h[i].Less(h[j])
}

func (h Hand) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

// Sort sorts the hand for display: trumps first, then suits
func (h Hand) Sort() {
	sort.Sort(h)
}

// AddCard adds a card to the hand
func (h *Hand) AddCard(card Card) {
	*h = append(*h, card)
}

// Extend adds all cards to the hand
func (h *Hand) Extend(cards Hand) {
	*h = append(*h, cards...)
}

// HasCard returns true if the hand contains the specified card
func (h Hand) HasCard(card Card) bool {
	return h.IndexOf(card) >= 0
}

// IndexOf returns the index of the card or -1 if absent
func (h Hand) IndexOf(card Card) int {
	for i, c := range h {
		if c == card {
			return i
		}
	}

	return -1
}

// Discard removes the specified card, returns false if it was not in the hand
func (h *Hand) Discard(card Card) bool {
	i := h.IndexOf(card)
	if i < 0 {
		return false
	}

	h.Remove(i)
	return true
}

// Remove removes and returns the card at index i
func (h *Hand) Remove(i int) Card {
	card := (*h)[i]
	*h = append((*h)[:i:i], (*h)[i+1:]...)
	return card
}

// Give removes the first n cards and returns them
func (h *Hand) Give(n int) Hand {
	if n > len(*h) {
		n = len(*h)
	}

	given := make(Hand, n)
	copy(given, (*h)[:n])
	*h = append(Hand{}, (*h)[n:]...)
	return given
}

// GiveAll removes every card and returns them
func (h *Hand) GiveAll() Hand {
	return h.Give(len(*h))
}

// GiveLow removes and returns the first card worth half a point.
// The second return value is false if there is no such card.
func (h *Hand) GiveLow() (Card, bool) {
	for i, c := range *h {
		if c.Points() == 0.5 {
			return h.Remove(i), true
		}
	}

	return Card{}, false
}

// Points returns the total of the card points, with two exceptions used for slams:
// a pile holding only the Fool is worth 4 and a pile holding every card but the Fool is worth 87.
func (h Hand) Points() float64 {
	if len(h) == MaxCards-1 && !h.HasFool() {
		return MaxPointsWithoutFool
	}

	if h.OnlyFool() {
		return 4.0
	}

	total := 0.0
	for _, c := range h {
		total += c.Points()
	}

	return total
}

// IsChelem returns true if the pile is a grand slam, with or without the Fool
func (h Hand) IsChelem() bool {
	points := h.Points()
	return points == MaxPoints || points == MaxPointsWithoutFool
}

// PointsForOudlers returns the points the taker must reach given the oudlers won
func (h Hand) PointsForOudlers() (float64, error) {
	switch n := h.CountOudlers(); n {
	case 0:
		return 56.0, nil
	case 1:
		return 51.0, nil
	case 2:
		return 41.0, nil
	case 3:
		return 36.0, nil
	default:
		return 0, OudlersCountError(n)
	}
}

// Discardables returns the indexes of the cards that may be discarded.
// If fewer than n cards are normally discardable, the forced rules apply.
func (h Hand) Discardables(n int) []int {
	choices := make([]int, 0, len(h))
	for i, c := range h {
		if c.Discardable() {
			choices = append(choices, i)
		}
	}

	if len(choices) >= n {
		return choices
	}

	choices = choices[:0]
	for i, c := range h {
		if c.DiscardableForced() {
			choices = append(choices, i)
		}
	}

	return choices
}

// TrumpsAndSuited partitions the hand
func (h Hand) TrumpsAndSuited() (trumps Hand, suited Hand) {
	trumps = Hand{}
	suited = Hand{}
	for _, c := range h {
		if c.IsTrump() {
			trumps = append(trumps, c)
		} else {
			suited = append(suited, c)
		}
	}

	return trumps, suited
}

// Trumps returns the trumps of the hand, Fool included
func (h Hand) Trumps() Hand {
	trumps, _ := h.TrumpsAndSuited()
	return trumps
}

// CountTrumps returns the number of trumps, Fool included
func (h Hand) CountTrumps() int {
	count := 0
	for _, c := range h {
		if c.IsTrump() {
			count++
		}
	}

	return count
}

// CountOudlers returns the number of oudlers
func (h Hand) CountOudlers() int {
	count := 0
	for _, c := range h {
		if c.IsOudler() {
			count++
		}
	}

	return count
}

// CountRank returns how many suited cards of the rank the hand holds
func (h Hand) CountRank(rank int) int {
	count := 0
	for _, c := range h {
		if c.Kind == KindSuited && c.Rank == rank {
			count++
		}
	}

	return count
}

// HasFool returns true if the hand holds the Fool
func (h Hand) HasFool() bool {
	return h.HasCard(Trump(Fool))
}

// HasPetit returns true if the hand holds the Petit
func (h Hand) HasPetit() bool {
	return h.HasCard(Trump(Petit))
}

// OnlyFool returns true if the Fool is the only card
func (h Hand) OnlyFool() bool {
	return len(h) == 1 && h[0].IsFool()
}

// PetitSec returns true if the Petit is the only trump, the Fool aside
func (h Hand) PetitSec() bool {
	sum := 0
	for _, c := range h {
		if c.IsTrump() {
			sum += c.Rank
		}
	}

	return sum == 1
}

func (h Hand) String() string {
	parts := make([]string, len(h))
	for i, c := range h {
		parts[i] = c.String()
	}

	return strings.Join(parts, " ")
}

// FullRepr draws the cards side by side
func (h Hand) FullRepr() string {
	if len(h) == 0 {
		return ""
	}

	var rows []string
	for _, c := range h {
		for i, line := range strings.Split(c.FullRepr(), "\n") {
			if i >= len(rows) {
				rows = append(rows, line)
			} else {
				rows[i] += " " + line
			}
		}
	}

	return strings.Join(rows, "\n")
}

// Clone returns a clone of the hand
func (h Hand) Clone() Hand {
	h2 := make(Hand, len(h))
	copy(h2, h)

	return h2
}
