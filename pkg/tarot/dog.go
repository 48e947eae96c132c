package tarot

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"tarot/pkg/deck"
)

// ResolveDog calls the partner in a five player deal, assigns the roles and
// hands the dog over according to the contract. With a petite or a garde the
// taker takes the dog and discards the same number of cards. With a garde sans
// the dog goes to the taker's pile unseen, and with a garde contre to the defense.
func (d *Deal) ResolveDog() error {
	if d.phase != PhaseDiscarding {
		return ErrWrongPhase
	}

	if d.taker < 0 {
		return ErrNoTaker
	}

	taker := d.participants[d.taker]
	if d.mode == ModeFive {
		if err := d.callCard(taker); err != nil {
			return err
		}
	}

	d.assignRoles()

	switch d.contract {
	case Petite, Garde:
		d.logger.WithField("dog", d.dog.String()).Info("dog revealed")
		taker.hand.Extend(d.dog.GiveAll())
		taker.hand.Sort()
		if err := d.discard(taker); err != nil {
			return err
		}
	case GardeSans:
		taker.discard.Extend(d.dog.GiveAll())
	case GardeContre:
		for _, seat := range d.seats() {
			if p := d.participants[seat]; p.role == RoleDefenser {
				p.discard.Extend(d.dog.GiveAll())
				break
			}
		}
	default:
		return ErrNoContract
	}

	if err := d.checkCards("after the dog"); err != nil {
		return err
	}

	d.phase = PhasePlaying
	return nil
}

// callableCards returns the kings, or the queens if the hand holds every king, and so on
func callableCards(hand deck.Hand) (deck.Hand, error) {
	choices := make(deck.Hand, 0, 16)
	for _, rank := range []int{deck.King, deck.Queen, deck.Knight, deck.Jack} {
		for _, suit := range deck.Suits() {
			choices = append(choices, deck.Suited(suit, rank))
		}

		if hand.CountRank(rank) < len(deck.Suits()) {
			return choices, nil
		}
	}

	return nil, ImpossibleCallError{}
}

// callCard asks the taker which card to call. The owner of that card becomes the ally,
// unless it is the taker or the card lies in the dog.
func (d *Deal) callCard(taker *Participant) error {
	choices, err := callableCards(taker.hand)
	if err != nil {
		return err
	}

	i, err := taker.provider.CallCard(d.view(taker.seat, nil), choices)
	if err != nil {
		return fmt.Errorf("could not get called card of %s: %w", taker.name, err)
	}

	if err := checkChoice(taker.name, "call", i, len(choices)); err != nil {
		return err
	}

	callee := choices[i]
	d.callee = &callee
	d.log.Callee = d.callee
	d.logger.WithFields(logrus.Fields{
		"player": taker.name,
		"card":   callee.String(),
	}).Info("card called")

	return nil
}

// assignRoles gives a role to everyone once the taker and the callee are known
func (d *Deal) assignRoles() {
	for _, p := range d.participants {
		switch {
		case p.seat == d.taker:
			p.setRole(RoleTaker)
		case d.callee != nil && p.hand.HasCard(*d.callee):
			p.setRole(RoleAlly)
		default:
			p.setRole(RoleDefenser)
		}
	}
}

// discard asks the taker to put aside as many cards as the dog held
func (d *Deal) discard(taker *Participant) error {
	for remaining := d.mode.DogSize(); remaining > 0; remaining-- {
		indexes := taker.hand.Discardables(remaining)
		if len(indexes) == 0 {
			return fmt.Errorf("no discardable card for %s: %w", taker.name, ErrInvalidCase)
		}

		choices := make(deck.Hand, len(indexes))
		for j, index := range indexes {
			choices[j] = taker.hand[index]
		}

		i, err := taker.provider.Discard(d.view(taker.seat, nil), choices, remaining)
		if err != nil {
			return fmt.Errorf("could not get discard of %s: %w", taker.name, err)
		}

		if err := checkChoice(taker.name, "discard", i, len(choices)); err != nil {
			return err
		}

		card := taker.hand.Remove(indexes[i])
		taker.discard.AddCard(card)
		if card.IsTrump() {
			d.revealed.AddCard(card)
			d.logger.WithFields(logrus.Fields{
				"player": taker.name,
				"card":   card.String(),
			}).Info("trump discarded")
		}
	}

	return nil
}
