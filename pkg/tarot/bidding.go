package tarot

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Bid asks every seat for a contract, once each, starting with the first seat.
// A player may only bid above the current contract. The deal is void with
// ErrEveryonePassed when nobody bids.
func (d *Deal) Bid() error {
	if d.phase != PhaseBidding {
		return ErrWrongPhase
	}

	slammer := -1
	choices := Contracts()
	for _, seat := range d.seats() {
		p := d.participants[seat]
		i, err := p.provider.ChooseContract(d.view(seat, nil), choices)
		if err != nil {
			return fmt.Errorf("could not get contract of %s: %w", p.name, err)
		}

		if err := checkChoice(p.name, "contract", i, len(choices)); err != nil {
			return err
		}

		contract := choices[i]
		d.bids = append(d.bids, Bid{Seat: seat, Player: p.name, Contract: contract})
		d.logger.WithFields(logrus.Fields{
			"player":   p.name,
			"contract": contract.String(),
		}).Debug("bid")

		if contract == Pass {
			continue
		}

		d.contract = contract
		d.taker = seat
		choices = append([]Contract{Pass}, contract.Above()...)

		if d.options.NoSlam {
			continue
		}

		slam, err := p.provider.AnnounceSlam(d.view(seat, nil))
		if err != nil {
			return fmt.Errorf("could not get slam announce of %s: %w", p.name, err)
		}

		if slammer >= 0 {
			d.participants[slammer].slam = false
			slammer = -1
		}

		if slam {
			p.slam = true
			slammer = seat
			d.logger.WithField("player", p.name).Info("slam announced")
		}
	}

	d.log.Bids = append(d.log.Bids, d.bids...)

	if d.taker < 0 {
		d.phase = PhaseVoid
		d.logger.Info("everyone passed, deal is void")
		return ErrEveryonePassed
	}

	taker := d.participants[d.taker]
	taker.setRole(RoleTaker)
	d.log.Contract = d.contract
	d.log.Taker = d.taker

	if slammer >= 0 {
		d.first = slammer
	}

	d.logger.WithFields(logrus.Fields{
		"player":   taker.name,
		"contract": d.contract.String(),
	}).Info("contract won")

	d.phase = PhaseDiscarding
	return nil
}
