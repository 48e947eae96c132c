package tarot

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeal_Bid(t *testing.T) {
	a := assert.New(t)

	last := &testProvider{contract: Petite}
	players := testPlayers(t, ModeFour,
		&testProvider{contract: Petite},
		&testProvider{contract: Pass},
		&testProvider{contract: Garde},
		last,
	)
	d := testDeal(t, players, nil, "")

	a.NoError(d.Bid())
	a.Equal(PhaseDiscarding, d.Phase())

	contract, taker := d.Contract()
	a.Equal(Garde, contract)
	a.Equal(2, taker)
	a.Equal(RoleTaker, d.participants[2].Role())
	a.Len(d.bids, 4)
	a.Equal(Pass, d.bids[3].Contract, "petite is not available anymore")
	a.Equal([]Contract{Pass, GardeSans, GardeContre}, last.contractChoices[0])
	a.Equal(0, d.first)
	a.Equal(d.bids, d.Log().Bids)

	a.Equal(ErrWrongPhase, d.Bid())
}

func TestDeal_Bid_everyonePassed(t *testing.T) {
	d := testDeal(t, testPlayers(t, ModeThree), nil, "")

	err := d.Bid()
	assert.Equal(t, ErrEveryonePassed, err)
	assert.True(t, IsVoidDeal(err))
	assert.Equal(t, PhaseVoid, d.Phase())

	_, taker := d.Contract()
	assert.Equal(t, -1, taker)
}

func TestDeal_Bid_slam(t *testing.T) {
	a := assert.New(t)

	players := testPlayers(t, ModeFour,
		nil,
		&testProvider{contract: Garde, slam: true},
	)
	d := testDeal(t, players, nil, "")
	a.NoError(d.Bid())
	a.True(d.participants[1].Slam())
	a.Equal(1, d.first, "the slammer leads the first trick")

	// an outbid cancels the announce
	players = testPlayers(t, ModeFour,
		&testProvider{contract: Petite, slam: true},
		&testProvider{contract: Garde},
	)
	d = testDeal(t, players, nil, "")
	a.NoError(d.Bid())
	a.False(d.participants[0].Slam())
	a.False(d.participants[1].Slam())
	a.Equal(0, d.first)
}

func TestDeal_Bid_noSlam(t *testing.T) {
	players := testPlayers(t, ModeFour, &testProvider{contract: Garde, slam: true})

	opts := DefaultOptions()
	opts.NoSlam = true
	d, err := NewDeal(logrus.StandardLogger(), players, opts, 1, 0, 1)
	require.NoError(t, err)
	d.phase = PhaseBidding

	assert.NoError(t, d.Bid())
	assert.False(t, d.participants[0].Slam())
}

func TestDeal_Bid_illegalChoice(t *testing.T) {
	players := testPlayers(t, ModeThree)
	players[0].provider = &outOfRange{}
	d := testDeal(t, players, nil, "")

	err := d.Bid()
	assert.Equal(t, IllegalChoiceError{Player: "East", What: "contract", Choice: 5, Max: 5}, err)
	assert.True(t, IsFatal(err))
}
