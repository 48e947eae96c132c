package tarot

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"tarot/pkg/deck"
)

// PlayTrick plays one full trick starting with the seat that won the previous one.
// Handles are declared before the first card of each player in the first trick.
func (d *Deal) PlayTrick() error {
	if d.phase != PhasePlaying || d.Finished() {
		return ErrWrongPhase
	}

	if d.contract == Pass {
		return ErrNoContract
	}

	number := len(d.tricks) + 1
	last := number == d.mode.CardsPerPlayer()
	trick := newTrick(number, len(d.participants))
	logger := d.logger.WithField("trick", number)

	for _, seat := range d.seats() {
		p := d.participants[seat]
		if p.role == RoleNone {
			return NoRoleError(p.name)
		}

		if p.team == TeamNone {
			return NoTeamError(p.name)
		}

		if number == 1 {
			if err := d.declareHandle(p); err != nil {
				return err
			}
		}

		card, err := d.playCard(p, trick)
		if err != nil {
			return err
		}

		trick.put(seat, card)
		if card.IsFool() {
			if last {
				trick.foolWins = number > 1 && d.tricksWon(p.team) == number-1
			} else {
				trick.foolReturned = true
				p.owned.AddCard(card)
			}
		}

		logger.WithFields(logrus.Fields{
			"player": p.name,
			"card":   card.String(),
		}).Debug("card played")
	}

	seat, ok := trick.Winner()
	if !ok {
		return fmt.Errorf("trick %d has no winner: %w", number, ErrInvalidCase)
	}

	winner := d.participants[seat]
	cards := trick.wonCards()
	sweep := d.tricksWon(winner.team) == number-1
	if cards.HasPetit() && (last || (number == d.mode.CardsPerPlayer()-1 && sweep)) {
		d.petitAuBout = winner.team
		logger.WithField("team", winner.team.String()).Info("petit au bout")
	}

	winner.owned.Extend(cards)
	if winner.team == TeamAttack {
		d.attackTricks++
	} else {
		d.defenseTricks++
	}

	d.first = seat
	d.tricks = append(d.tricks, trick)
	d.log.addTrick(trick, seat)

	logger.WithFields(logrus.Fields{
		"player": winner.name,
		"cards":  trick.String(),
	}).Debug("trick won")

	return d.checkCards(fmt.Sprintf("after trick %d", number))
}

// tricksWon returns the number of tricks won by the team so far
func (d *Deal) tricksWon(team Team) int {
	switch team {
	case TeamAttack:
		return d.attackTricks
	case TeamDefense:
		return d.defenseTricks
	default:
		return 0
	}
}

// playCard asks the participant for a legal card and removes it from their hand
func (d *Deal) playCard(p *Participant, trick *Trick) (deck.Card, error) {
	indexes := LegalPlays(p.hand, trick, d.callee)
	if len(indexes) == 0 {
		return deck.Card{}, fmt.Errorf("%s has no card to play: %w", p.name, ErrInvalidCase)
	}

	choices := make(deck.Hand, len(indexes))
	for j, index := range indexes {
		choices[j] = p.hand[index]
	}

	i, err := p.provider.PlayCard(d.view(p.seat, trick), choices)
	if err != nil {
		return deck.Card{}, fmt.Errorf("could not get card of %s: %w", p.name, err)
	}

	if err := checkChoice(p.name, "card", i, len(choices)); err != nil {
		return deck.Card{}, err
	}

	return p.hand.Remove(indexes[i]), nil
}

// declareHandle offers a handle to a participant holding enough trumps. The Fool is
// only shown when it is needed to reach the limit, oudlers are never hidden.
func (d *Deal) declareHandle(p *Participant) error {
	trumps := p.hand.Trumps()
	best, ok := d.mode.Handle(len(trumps))
	if !ok {
		return nil
	}

	choices := best.upTo()
	i, err := p.provider.DeclareHandle(d.view(p.seat, nil), choices)
	if err != nil {
		return fmt.Errorf("could not get handle of %s: %w", p.name, err)
	}

	if err := checkChoice(p.name, "handle", i, len(choices)); err != nil {
		return err
	}

	handle := choices[i]
	if handle == HandleRefused {
		return nil
	}

	limit := d.mode.HandleLimit(handle)
	shown := trumps.Clone()
	if len(shown) > limit && shown.HasFool() {
		shown.Discard(deck.Trump(deck.Fool))
	}

	for len(shown) > limit {
		indexes := make([]int, 0, len(shown))
		hideable := make(deck.Hand, 0, len(shown))
		for j, c := range shown {
			if !c.IsOudler() {
				indexes = append(indexes, j)
				hideable = append(hideable, c)
			}
		}

		j, err := p.provider.HideTrump(d.view(p.seat, nil), hideable, len(shown)-limit)
		if err != nil {
			return fmt.Errorf("could not get hidden trump of %s: %w", p.name, err)
		}

		if err := checkChoice(p.name, "hidden trump", j, len(hideable)); err != nil {
			return err
		}

		shown.Remove(indexes[j])
	}

	p.handle = handle
	p.shown = shown
	d.logger.WithFields(logrus.Fields{
		"player": p.name,
		"handle": handle.String(),
		"trumps": shown.String(),
	}).Info("handle declared")

	return nil
}
