package tarot

import (
	"fmt"

	"tarot/pkg/deck"
)

// Participant is the state of a player for the duration of one deal
type Participant struct {
	seat     int
	name     string
	mode     Mode
	provider DecisionProvider

	hand    deck.Hand
	owned   deck.Hand
	discard deck.Hand

	role   Role
	team   Team
	slam   bool
	handle Handle
	shown  deck.Hand
}

func newParticipant(seat int, player *Player, mode Mode) *Participant {
	return &Participant{
		seat:     seat,
		name:     player.Name,
		mode:     mode,
		provider: player.provider,
		hand:     make(deck.Hand, 0, mode.MaxCardsForTaker()),
		owned:    make(deck.Hand, 0, deck.MaxCards),
	}
}

// Seat returns the seat index of the participant
func (p *Participant) Seat() int {
	return p.seat
}

// Name returns the name of the player
func (p *Participant) Name() string {
	return p.name
}

// Hand returns a copy of the cards still in hand
func (p *Participant) Hand() deck.Hand {
	return p.hand.Clone()
}

// Owned returns a copy of the cards won in tricks
func (p *Participant) Owned() deck.Hand {
	return p.owned.Clone()
}

// Discarded returns a copy of the cards put aside before the first trick
func (p *Participant) Discarded() deck.Hand {
	return p.discard.Clone()
}

// Role returns the role in the deal
func (p *Participant) Role() Role {
	return p.role
}

// Team returns the team in the deal
func (p *Participant) Team() Team {
	return p.team
}

// Slam returns true if the participant announced a slam
func (p *Participant) Slam() bool {
	return p.slam
}

// Handle returns the declared handle and the trumps that were shown
func (p *Participant) Handle() (Handle, deck.Hand) {
	return p.handle, p.shown.Clone()
}

// setRole sets the role and the matching team
func (p *Participant) setRole(role Role) {
	p.role = role
	switch role {
	case RoleTaker, RoleAlly:
		p.team = TeamAttack
	case RoleDefenser:
		p.team = TeamDefense
	default:
		p.team = TeamNone
	}
}

// oweCard returns true when the participant kept the Fool but lost the trick it was played in,
// so they owe a low card to the winner of that trick
func (p *Participant) oweCard() bool {
	players := p.mode.Players()
	return p.owned.HasFool() && len(p.owned) > 1 && len(p.owned)%players == 1
}

// missingCard returns true when the participant won the trick the Fool was played in without getting it
func (p *Participant) missingCard() bool {
	players := p.mode.Players()
	return !p.owned.HasFool() && len(p.owned) > 1 && len(p.owned)%players == players-1
}

// slamBonus returns the slam points of a taker whose team won every trick or not
func (p *Participant) slamBonus(achieved bool) float64 {
	switch {
	case achieved && p.slam:
		return 400
	case achieved:
		return 200
	case p.slam:
		return -200
	default:
		return 0
	}
}

func (p *Participant) String() string {
	return fmt.Sprintf("%s (%s)", p.name, p.role)
}
