package tarot

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tarot/pkg/deck"
)

// finishedDeal returns a deal where every card has been played. Seat 0 is the taker.
func finishedDeal(t *testing.T, mode Mode, contract Contract, piles ...string) *Deal {
	t.Helper()

	d := testDeal(t, testPlayers(t, mode), nil, "")
	d.contract = contract
	d.taker = 0
	d.phase = PhasePlaying
	d.participants[0].setRole(RoleTaker)
	for _, p := range d.participants[1:] {
		p.setRole(RoleDefenser)
	}

	for i, pile := range piles {
		d.participants[i].owned = deck.CardsFromString(pile)
	}

	return d
}

func suits(suits ...deck.Suit) string {
	cards := make(deck.Hand, 0, 14*len(suits))
	for _, suit := range suits {
		for rank := 1; rank <= deck.King; rank++ {
			cards = append(cards, deck.Suited(suit, rank))
		}
	}

	return deck.CardsToString(cards)
}

func rest(piles ...string) string {
	hands := make([]deck.Hand, len(piles))
	for i, pile := range piles {
		hands[i] = deck.CardsFromString(pile)
	}

	return deck.CardsToString(cardsExcept(hands...))
}

func TestDeal_CountPoints_gardeOnTarget(t *testing.T) {
	a := assert.New(t)

	taker := suits(deck.Hearts, deck.Spades, deck.Diamonds) + ",2t,3t,4t,5t,6t,7t,8t,9t,10t,11t"
	d := finishedDeal(t, ModeFour, Garde, taker, rest(taker))
	d.attackTricks = 13
	d.defenseTricks = 5

	result, err := d.CountPoints()
	require.NoError(t, err)

	a.Equal(0, result.Oudlers)
	a.Equal(56.0, result.TakerPoints)
	a.Equal(56.0, result.Target)
	a.Equal(50.0, result.ContractPoints)
	a.Equal(0.0, result.PetitAuBout)
	a.Equal(0.0, result.Handle)
	a.Equal(0.0, result.Slam)
	a.Equal(3.0, result.Ratio)
	a.Equal(-1, result.Ally)
	a.Nil(result.OwedCard)
	a.True(result.Won())
	a.Equal([]float64{150, -50, -50, -50}, result.Deltas)

	for i, score := range []float64{150, -50, -50, -50} {
		a.Equal(score, d.players[i].Score())
	}

	a.Equal(PhaseScored, d.Phase())
	a.Equal(result, d.Result())
	a.Equal(result, d.Log().Result)
	a.False(d.Log().Void())

	_, err = d.CountPoints()
	a.Equal(ErrWrongPhase, err)
}

func TestDeal_CountPoints_lostWithBonuses(t *testing.T) {
	a := assert.New(t)

	taker := suits(deck.Hearts, deck.Spades) + ",21t,2t,3t,4t"
	d := finishedDeal(t, ModeFour, Petite, taker, rest(taker))
	d.attackTricks = 8
	d.defenseTricks = 10
	d.petitAuBout = TeamDefense
	d.participants[2].handle = HandleSimple

	result, err := d.CountPoints()
	require.NoError(t, err)

	a.Equal(40.0, result.TakerPoints)
	a.Equal(51.0, result.Target)
	a.Equal(-36.0, result.ContractPoints)
	a.Equal(-10.0, result.PetitAuBout)
	a.Equal(-20.0, result.Handle, "the handle goes to the winner of the deal")
	a.Equal(-66.0, result.Points)
	a.False(result.Won())
	a.Equal([]float64{-198, 66, 66, 66}, result.Deltas)
}

func TestDeal_CountPoints_fiveWithAlly(t *testing.T) {
	a := assert.New(t)

	taker := suits(deck.Hearts) + ",2t,3t,4t,5t,6t,7t"
	ally := "1s,2s,3s,4s,5s,6s,7s,8s,9s,10s"
	discard := "14s,13s,12s"
	d := finishedDeal(t, ModeFive, Garde, taker, ally, rest(taker, ally, discard))
	d.participants[0].discard = deck.CardsFromString(discard)
	d.participants[1].setRole(RoleAlly)
	d.attackTricks = 6
	d.defenseTricks = 9

	result, err := d.CountPoints()
	require.NoError(t, err)

	a.Equal(1, result.Ally)
	a.Equal(2.0, result.Ratio)
	a.Equal(35.5, result.TakerPoints, "the ally's pile and the discard count for the taker")
	a.Equal(-91.0, result.ContractPoints)
	a.Equal([]float64{-182, -91, 91, 91, 91}, result.Deltas)
}

func TestDeal_CountPoints_owedCard(t *testing.T) {
	a := assert.New(t)

	defender := "0t,2h,3h,4h,5h"
	other := "6h,7h"
	taker := rest(defender, other)
	d := finishedDeal(t, ModeFour, Garde, taker, defender, other)
	d.attackTricks = 10
	d.defenseTricks = 8

	a.True(d.participants[1].oweCard())
	a.True(d.participants[0].missingCard())
	a.False(d.participants[2].missingCard())

	result, err := d.CountPoints()
	require.NoError(t, err)

	a.Equal(deck.Suited(deck.Hearts, 2), *result.OwedCard)
	a.Equal(84.0, result.TakerPoints)
	a.Equal(2, result.Oudlers)
	a.Equal(136.0, result.ContractPoints)
	a.Equal([]float64{408, -136, -136, -136}, result.Deltas)
}

func TestDeal_CountPoints_owedCardMissing(t *testing.T) {
	logger, hook := test.NewNullLogger()

	defender := "0t,14h,13h,12h,11h"
	other := "6h,7h"
	taker := rest(defender, other)
	d := finishedDeal(t, ModeFour, Garde, taker, defender, other)
	d.logger = logger

	result, err := d.CountPoints()
	require.NoError(t, err)
	assert.Nil(t, result.OwedCard)

	warnings := 0
	for _, entry := range hook.AllEntries() {
		if entry.Level == logrus.WarnLevel {
			assert.Equal(t, "no low card to give for the fool", entry.Message)
			warnings++
		}
	}
	assert.Equal(t, 1, warnings)
}

func TestDeal_CountPoints_slam(t *testing.T) {
	a := assert.New(t)

	d := finishedDeal(t, ModeFour, Garde, rest())
	d.participants[0].slam = true
	d.attackTricks = 18

	result, err := d.CountPoints()
	require.NoError(t, err)
	a.Equal(91.0, result.TakerPoints)
	a.Equal(36.0, result.Target)
	a.Equal(400.0, result.Slam)
	a.Equal(560.0, result.Points)
	a.Equal([]float64{1680, -560, -560, -560}, result.Deltas)

	// the defense took every trick
	d = finishedDeal(t, ModeThree, Petite, "", rest())
	d.defenseTricks = 24
	result, err = d.CountPoints()
	require.NoError(t, err)
	a.Equal(-200.0, result.Slam)
	a.Equal(-281.0, result.Points)
}

func TestParticipant_slamBonus(t *testing.T) {
	p := &Participant{}
	assert.Equal(t, 200.0, p.slamBonus(true))
	assert.Equal(t, 0.0, p.slamBonus(false))

	p.slam = true
	assert.Equal(t, 400.0, p.slamBonus(true))
	assert.Equal(t, -200.0, p.slamBonus(false))
}

func TestDeal_CountPoints_errors(t *testing.T) {
	d := orderedDeal(t, testPlayers(t, ModeFour))
	_, err := d.CountPoints()
	assert.Equal(t, ErrWrongPhase, err)

	d.phase = PhasePlaying
	_, err = d.CountPoints()
	assert.Equal(t, ErrDealNotFinished, err)
}
