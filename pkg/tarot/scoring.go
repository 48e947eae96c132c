package tarot

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"tarot/pkg/deck"
)

// BaseContractPoints is added to (or removed from) the difference to the target
const BaseContractPoints = 25.0

// petitAuBoutPoints is multiplied by the contract multiplier
const petitAuBoutPoints = 10.0

// Result is the outcome of a scored deal
type Result struct {
	Contract       Contract   `json:"contract"`
	Taker          int        `json:"taker"`
	Ally           int        `json:"ally"`
	Oudlers        int        `json:"oudlers"`
	TakerPoints    float64    `json:"takerPoints"`
	Target         float64    `json:"target"`
	ContractPoints float64    `json:"contractPoints"`
	PetitAuBout    float64    `json:"petitAuBout"`
	Handle         float64    `json:"handle"`
	Slam           float64    `json:"slam"`
	Points         float64    `json:"points"`
	Ratio          float64    `json:"ratio"`
	Deltas         []float64  `json:"deltas"`
	OwedCard       *deck.Card `json:"owedCard,omitempty"`
}

// Won returns true if the taker made the contract
func (r *Result) Won() bool {
	return r.ContractPoints >= 0
}

// CountPoints scores a finished deal and adds the deltas to the players' scores
func (d *Deal) CountPoints() (*Result, error) {
	if d.phase != PhasePlaying {
		return nil, ErrWrongPhase
	}

	if !d.Finished() {
		return nil, ErrDealNotFinished
	}

	if d.taker < 0 {
		return nil, ErrNoTaker
	}

	result := &Result{
		Contract: d.contract,
		Taker:    d.taker,
		Ally:     -1,
		Deltas:   make([]float64, len(d.participants)),
	}

	result.OwedCard = d.exchangeOwedCard()

	taker := d.participants[d.taker]
	pile := taker.owned.Clone()
	for _, p := range d.participants {
		if p.role == RoleAlly {
			result.Ally = p.seat
			pile.Extend(p.owned)
		}
	}
	pile.Extend(taker.discard)

	result.Oudlers = pile.CountOudlers()
	target, err := pile.PointsForOudlers()
	if err != nil {
		return nil, err
	}

	result.Target = target
	result.TakerPoints = pile.Points()

	multiplier := d.contract.Multiplier()
	if result.TakerPoints >= target {
		result.ContractPoints = (result.TakerPoints - target + BaseContractPoints) * multiplier
	} else {
		result.ContractPoints = (result.TakerPoints - target - BaseContractPoints) * multiplier
	}

	switch d.petitAuBout {
	case TeamAttack:
		result.PetitAuBout = petitAuBoutPoints * multiplier
	case TeamDefense:
		result.PetitAuBout = -petitAuBoutPoints * multiplier
	}

	for _, p := range d.participants {
		result.Handle += p.handle.Points()
	}

	if !result.Won() {
		result.Handle = -result.Handle
	}

	tricks := d.mode.CardsPerPlayer()
	result.Slam = taker.slamBonus(d.attackTricks == tricks)
	if result.Slam == 0 && d.defenseTricks == tricks {
		result.Slam = -200
	}

	result.Points = result.ContractPoints + result.PetitAuBout + result.Handle + result.Slam
	result.Ratio = d.mode.Ratio(result.Ally >= 0)

	sum := 0.0
	for _, p := range d.participants {
		switch p.role {
		case RoleTaker:
			result.Deltas[p.seat] = result.Ratio * result.Points
		case RoleAlly:
			result.Deltas[p.seat] = result.Points
		case RoleDefenser:
			result.Deltas[p.seat] = -result.Points
		default:
			return nil, NoRoleError(p.name)
		}
		sum += result.Deltas[p.seat]
	}

	if sum != 0 || math.IsNaN(sum) {
		return nil, InvalidScoresError(sum)
	}

	for seat, delta := range result.Deltas {
		d.players[seat].addScore(delta)
	}

	d.result = result
	d.phase = PhaseScored
	d.log.end(result)

	d.logger.WithFields(logrus.Fields{
		"player":   taker.name,
		"contract": d.contract.String(),
		"points":   result.TakerPoints,
		"target":   result.Target,
		"total":    result.Points,
	}).Info("deal scored")

	return result, nil
}

// exchangeOwedCard gives a low card from the player who kept the Fool to the
// player who won the trick it was played in. It returns the card given, if any.
func (d *Deal) exchangeOwedCard() *deck.Card {
	var owing, missing *Participant
	for _, p := range d.participants {
		if p.oweCard() {
			owing = p
		}
		if p.missingCard() {
			missing = p
		}
	}

	if owing == nil && missing == nil {
		return nil
	}

	if owing == nil || missing == nil {
		d.logger.Warn("could not find both sides of the fool exchange")
		return nil
	}

	card, ok := owing.owned.GiveLow()
	if !ok {
		d.logger.WithField("player", owing.name).Warn("no low card to give for the fool")
		return nil
	}

	missing.owned.AddCard(card)
	d.logger.WithFields(logrus.Fields{
		"player": owing.name,
		"card":   card.String(),
		"to":     missing.name,
	}).Debug("fool exchange")

	return &card
}

func (r *Result) String() string {
	return fmt.Sprintf("%s: %v points for %v needed, total %v", r.Contract, r.TakerPoints, r.Target, r.Points)
}
