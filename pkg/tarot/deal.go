package tarot

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"tarot/pkg/deck"
)

// Phase is a step of a deal
type Phase int

// phase constants, a deal moves forward only
const (
	PhaseSetup Phase = iota
	PhaseBidding
	PhaseDiscarding
	PhasePlaying
	PhaseScored
	PhaseVoid
)

func (p Phase) String() string {
	switch p {
	case PhaseSetup:
		return "setup"
	case PhaseBidding:
		return "bidding"
	case PhaseDiscarding:
		return "discarding"
	case PhasePlaying:
		return "playing"
	case PhaseScored:
		return "scored"
	case PhaseVoid:
		return "void"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Deal is one hand of tarot, from the distribution to the scoring
type Deal struct {
	number  int
	mode    Mode
	options Options
	logger  logrus.FieldLogger

	players      []*Player
	participants []*Participant
	phase        Phase
	seed         int64

	// first is the seat that speaks first in the bidding and leads the next trick
	first int

	dog      deck.Hand
	revealed deck.Hand
	bids     []Bid
	contract Contract
	taker    int
	callee   *deck.Card

	tricks        []*Trick
	attackTricks  int
	defenseTricks int
	petitAuBout   Team

	result *Result
	log    *DealLog
}

// NewDeal creates a deal. The seed shuffles the deck, first is the seat speaking first.
func NewDeal(logger logrus.FieldLogger, players []*Player, opts Options, number, first int, seed int64) (*Deal, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	if len(players) != opts.Mode.Players() {
		return nil, PlayerCountError(len(players))
	}

	if first < 0 || first >= len(players) {
		return nil, fmt.Errorf("first seat %d: %w", first, ErrInvalidCase)
	}

	participants := make([]*Participant, len(players))
	for i, player := range players {
		participants[i] = newParticipant(i, player, opts.Mode)
	}

	d := &Deal{
		number:       number,
		mode:         opts.Mode,
		options:      opts,
		logger:       logger.WithField("deal", number),
		players:      players,
		participants: participants,
		phase:        PhaseSetup,
		seed:         seed,
		first:        first,
		taker:        -1,
	}
	d.log = newDealLog(d)

	return d, nil
}

// Number returns the number of the deal in the session
func (d *Deal) Number() int {
	return d.number
}

// Phase returns the current phase
func (d *Deal) Phase() Phase {
	return d.phase
}

// Seed returns the seed the deck was shuffled with
func (d *Deal) Seed() int64 {
	return d.seed
}

// Participants returns the participants in seat order
func (d *Deal) Participants() []*Participant {
	return d.participants
}

// Contract returns the contract and the seat of the taker. The seat is -1 when nobody bid.
func (d *Deal) Contract() (Contract, int) {
	return d.contract, d.taker
}

// Callee returns the called card, nil unless the deal has five players
func (d *Deal) Callee() *deck.Card {
	return d.callee
}

// Dog returns a copy of the cards still in the dog
func (d *Deal) Dog() deck.Hand {
	return d.dog.Clone()
}

// Revealed returns the trumps the taker put in the discard, which are shown to everyone
func (d *Deal) Revealed() deck.Hand {
	return d.revealed.Clone()
}

// Tricks returns the completed tricks
func (d *Deal) Tricks() []*Trick {
	return d.tricks
}

// Result returns the result once the deal is scored
func (d *Deal) Result() *Result {
	return d.result
}

// Log returns the log of the deal
func (d *Deal) Log() *DealLog {
	return d.log
}

// Finished returns true when every hand is empty
func (d *Deal) Finished() bool {
	if d.phase != PhasePlaying {
		return false
	}

	for _, p := range d.participants {
		if len(p.hand) > 0 {
			return false
		}
	}

	return true
}

// seats returns the seats in playing order starting with the first one
func (d *Deal) seats() []int {
	seats := make([]int, len(d.participants))
	for i := range seats {
		seats[i] = (d.first + i) % len(d.participants)
	}

	return seats
}

// Distribute shuffles the deck, deals the cards and sets the dog aside.
// The deal is void with ErrPetitSec when a hand holds the Petit as its only trump.
func (d *Deal) Distribute() error {
	if d.phase != PhaseSetup {
		return ErrWrongPhase
	}

	cards := deck.New()
	cards.Shuffle(d.seed)
	d.log.Seed = cards.GetSeed()
	d.log.DeckHash = cards.HashCode()

	dog, err := cards.Give(d.mode.DogSize())
	if err != nil {
		return err
	}
	dog.Sort()
	d.dog = dog

	for _, seat := range d.seats() {
		hand, err := cards.Give(d.mode.CardsPerPlayer())
		if err != nil {
			return err
		}
		hand.Sort()
		d.participants[seat].hand = hand
	}

	if cards.CardsLeft() != 0 {
		return InvalidDeckError{Count: deck.MaxCards - cards.CardsLeft(), Where: "after distribution"}
	}

	return d.start()
}

// start is called once the cards are dealt
func (d *Deal) start() error {
	d.log.Dog = d.dog.Clone()

	for _, p := range d.participants {
		if p.hand.PetitSec() {
			d.phase = PhaseVoid
			d.logger.WithField("player", p.name).Info("petit sec, deal is void")
			return ErrPetitSec
		}
	}

	if err := d.checkCards("after distribution"); err != nil {
		return err
	}

	d.phase = PhaseBidding
	return nil
}

// checkCards makes sure the 78 cards are all somewhere exactly once
func (d *Deal) checkCards(where string) error {
	seen := make(map[deck.Card]bool, deck.MaxCards)
	count := 0
	duplicates := 0
	add := func(cards deck.Hand) {
		for _, c := range cards {
			count++
			if seen[c] {
				duplicates++
			}
			seen[c] = true
		}
	}

	add(d.dog)
	for _, p := range d.participants {
		add(p.hand)
		add(p.owned)
		add(p.discard)
	}

	if count != deck.MaxCards || duplicates > 0 {
		return InvalidDeckError{Count: count, Duplicates: duplicates, Where: where}
	}

	return nil
}

// CardCount returns an error if the cards of the deal are not exactly the 78 cards of the deck
func (d *Deal) CardCount() error {
	return d.checkCards(fmt.Sprintf("in phase %s", d.phase))
}

// view builds what a seat is allowed to see
func (d *Deal) view(seat int, trick *Trick) View {
	p := d.participants[seat]
	names := make([]string, len(d.participants))
	for i, other := range d.participants {
		names[i] = other.name
	}

	v := View{
		Player:   p.name,
		Seat:     seat,
		Names:    names,
		Mode:     d.mode,
		Hand:     p.hand.Clone(),
		Contract: d.contract,
		Taker:    d.taker,
		Bids:     append([]Bid(nil), d.bids...),
		Callee:   d.callee,
	}

	if trick != nil {
		v.TrickNumber = trick.Number
		v.Trick = append([]Play(nil), trick.Plays...)
	}

	return v
}

// Run plays the deal from the distribution to the scoring
func (d *Deal) Run() (*Result, error) {
	if err := d.Distribute(); err != nil {
		return nil, err
	}

	if err := d.Bid(); err != nil {
		return nil, err
	}

	if err := d.ResolveDog(); err != nil {
		return nil, err
	}

	for !d.Finished() {
		if err := d.PlayTrick(); err != nil {
			return nil, err
		}
	}

	return d.CountPoints()
}
