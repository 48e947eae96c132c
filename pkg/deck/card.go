package deck

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidCard is an error when a card cannot be parsed or built
var ErrInvalidCard = errors.New("card is invalid")

// Suit represents a card suit
type Suit string

// suit constants
const (
	Hearts   Suit = "hearts"
	Spades   Suit = "spades"
	Diamonds Suit = "diamonds"
	Clubs    Suit = "clubs"
)

// Suits returns the four suits in deck order
func Suits() []Suit {
	return []Suit{Hearts, Spades, Diamonds, Clubs}
}

// Symbol returns the unicode symbol of the suit
func (s Suit) Symbol() string {
	switch s {
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	default:
		panic("unknown suit")
	}
}

// Color returns the display color name of the suit
func (s Suit) Color() string {
	switch s {
	case Hearts:
		return "red"
	case Spades:
		return "blue"
	case Diamonds:
		return "yellow"
	case Clubs:
		return "green"
	default:
		panic("unknown suit")
	}
}

func (s Suit) order() int {
	switch s {
	case Hearts:
		return 0
	case Spades:
		return 1
	case Diamonds:
		return 2
	case Clubs:
		return 3
	default:
		panic("unknown suit")
	}
}

// Kind tells the two card variants apart
type Kind int

// kind constants
const (
	KindSuited Kind = iota
	KindTrump
)

// face cards
const (
	Jack   = 11
	Knight = 12
	Queen  = 13
	King   = 14
)

// special trumps
const (
	Fool      = 0
	Petit     = 1
	TwentyOne = 21
)

// Card is an individual tarot card. It is a value type: either one of the
// 22 trumps (Fool included) or one of the 56 suited cards.
type Card struct {
	Kind Kind `json:"kind"`
	Suit Suit `json:"suit,omitempty"`
	Rank int  `json:"rank"`
}

// Trump returns the trump of the given rank (0 is the Fool)
func Trump(rank int) Card {
	if rank < Fool || rank > TwentyOne {
		panic(fmt.Sprintf("invalid trump rank: %d", rank))
	}

	return Card{Kind: KindTrump, Rank: rank}
}

// Suited returns the suited card of the given suit and rank
func Suited(suit Suit, rank int) Card {
	if rank < 1 || rank > King {
		panic(fmt.Sprintf("invalid suited rank: %d", rank))
	}

	return Card{Kind: KindSuited, Suit: suit, Rank: rank}
}

// IsTrump returns true for the 22 trumps, Fool included
func (c Card) IsTrump() bool {
	return c.Kind == KindTrump
}

// IsFool returns true if the card is the Fool (the excuse)
func (c Card) IsFool() bool {
	return c.Kind == KindTrump && c.Rank == Fool
}

// IsPetit returns true if the card is trump 1
func (c Card) IsPetit() bool {
	return c.Kind == KindTrump && c.Rank == Petit
}

// IsOudler returns true for the Fool, the Petit and trump 21
func (c Card) IsOudler() bool {
	if c.Kind != KindTrump {
		return false
	}

	return c.Rank == Fool || c.Rank == Petit || c.Rank == TwentyOne
}

// Points returns the point value of the card
func (c Card) Points() float64 {
	switch c.Kind {
	case KindTrump:
		if c.IsOudler() {
			return 4.5
		}
		return 0.5
	case KindSuited:
		switch c.Rank {
		case King:
			return 4.5
		case Queen:
			return 3.5
		case Knight:
			return 2.5
		case Jack:
			return 1.5
		}
		return 0.5
	default:
		panic("unknown card kind")
	}
}

// Master returns true if c stays ahead of other when other is played after it.
// The Fool never masters anything; callers handle it before comparing.
func (c Card) Master(other Card) bool {
	switch {
	case c.Kind == KindTrump && other.Kind == KindSuited:
		return !c.IsFool()
	case c.Kind == KindSuited && other.Kind == KindTrump:
		return other.IsFool()
	case c.Kind == KindSuited && other.Kind == KindSuited:
		return c.Suit != other.Suit || c.Rank > other.Rank
	default:
		return c.Rank > other.Rank
	}
}

// Discardable returns true if the card may be put aside with the dog.
// Trumps and kings never can.
func (c Card) Discardable() bool {
	if c.Kind == KindTrump {
		return false
	}

	return c.Rank != King
}

// DiscardableForced relaxes Discardable for trumps when there are not enough
// other cards to discard. Oudlers and kings are still protected.
func (c Card) DiscardableForced() bool {
	if c.Kind == KindTrump {
		return !c.IsOudler()
	}

	return c.Rank != King
}

// Less gives the display order: trumps first, then suits in deck order
func (c Card) Less(other Card) bool {
	if c.Kind != other.Kind {
		return c.Kind == KindTrump
	}

	if c.Kind == KindSuited && c.Suit != other.Suit {
		return c.Suit.order() < other.Suit.order()
	}

	return c.Rank < other.Rank
}

// Color returns the display color name of the card
func (c Card) Color() string {
	if c.Kind == KindTrump {
		return "cyan"
	}

	return c.Suit.Color()
}

// RankSymbol returns the rank as printed on the card
func (c Card) RankSymbol() string {
	if c.Kind == KindTrump {
		if c.IsFool() {
			return "*"
		}
		return strconv.Itoa(c.Rank)
	}

	switch c.Rank {
	case Jack:
		return "V"
	case Knight:
		return "C"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		return strconv.Itoa(c.Rank)
	}
}

func (c Card) String() string {
	if c.Kind == KindTrump {
		if c.IsFool() {
			return "🃏"
		}
		return "#" + c.RankSymbol()
	}

	return c.RankSymbol() + c.Suit.Symbol()
}

// FullRepr returns a multi-line drawing of the card
func (c Card) FullRepr() string {
	border := "*"
	symbol := "#"
	if c.Kind == KindSuited {
		symbol = c.Suit.Symbol()
	} else {
		border = "#"
	}

	label := c.RankSymbol()
	if c.IsFool() {
		label = "FOOL"
	}

	lines := []string{
		strings.Repeat(border, 9),
		fmt.Sprintf("%s%-6s %s", border, label, border),
		fmt.Sprintf("%s       %s", border, border),
		fmt.Sprintf("%s   %s   %s", border, symbol, border),
		fmt.Sprintf("%s       %s", border, border),
		fmt.Sprintf("%s %6s%s", border, label, border),
		strings.Repeat(border, 9),
	}

	return strings.Join(lines, "\n")
}

var cardRx = regexp.MustCompile(`(?i)^([0-9]|1[0-9]|2[01])([cdhst])\z`)

// CardFromString returns a Card from the string.
// The string must be in the format of <rank><suit> where suit in [cdhs] for suited
// cards (rank 1-14) and t for trumps (rank 0-21, 0 being the Fool)
func CardFromString(s string) (Card, error) {
	match := cardRx.FindStringSubmatch(s)
	if match == nil {
		return Card{}, fmt.Errorf("could not parse card %q: %w", s, ErrInvalidCard)
	}

	rank, err := strconv.Atoi(match[1])
	if err != nil {
		return Card{}, fmt.Errorf("could not parse card %q: %w", s, err)
	}

	var suit Suit
	switch strings.ToLower(match[2]) {
	case "t":
		return Card{Kind: KindTrump, Rank: rank}, nil
	case "c":
		suit = Clubs
	case "d":
		suit = Diamonds
	case "h":
		suit = Hearts
	case "s":
		suit = Spades
	}

	if rank < 1 || rank > King {
		return Card{}, fmt.Errorf("could not parse card %q: %w", s, ErrInvalidCard)
	}

	return Card{Kind: KindSuited, Suit: suit, Rank: rank}, nil
}

// MustCardFromString is like CardFromString but panics on error. Meant for tests and constants.
func MustCardFromString(s string) Card {
	card, err := CardFromString(s)
	if err != nil {
		panic(err)
	}

	return card
}

// CardsFromString will returns a hand from a comma separated list of cards
func CardsFromString(s string) Hand {
	if s == "" {
		return Hand{}
	}

	cardStrings := strings.Split(s, ",")
	cards := make(Hand, len(cardStrings))
	for i, card := range cardStrings {
		cards[i] = MustCardFromString(strings.TrimSpace(card))
	}

	return cards
}

// CardToString converts a card (King of Clubs) to a string (14c)
func CardToString(card Card) string {
	if card.Kind == KindTrump {
		return fmt.Sprintf("%dt", card.Rank)
	}

	var suit string
	switch card.Suit {
	case Clubs:
		suit = "c"
	case Hearts:
		suit = "h"
	case Diamonds:
		suit = "d"
	case Spades:
		suit = "s"
	}

	return fmt.Sprintf("%d%s", card.Rank, suit)
}

// CardsToString will convert a slice of cards to a string in the format of 1t,14h,3s,...
func CardsToString(cards []Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = CardToString(card)
	}

	return strings.Join(c, ",")
}
