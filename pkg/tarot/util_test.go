package tarot

import (
	"math/rand"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"tarot/pkg/deck"
)

// testProvider answers with fixed choices, falling back to the first legal one
type testProvider struct {
	contract Contract
	slam     bool
	call     *deck.Card
	handle   Handle
	cards    []deck.Card

	contractChoices [][]Contract
	discards        int
	hidden          int
}

func (p *testProvider) ChooseContract(v View, choices []Contract) (int, error) {
	p.contractChoices = append(p.contractChoices, choices)
	for i, c := range choices {
		if c == p.contract {
			return i, nil
		}
	}

	return 0, nil
}

func (p *testProvider) AnnounceSlam(v View) (bool, error) {
	return p.slam, nil
}

func (p *testProvider) CallCard(v View, choices deck.Hand) (int, error) {
	if p.call != nil {
		if i := choices.IndexOf(*p.call); i >= 0 {
			return i, nil
		}
	}

	return 0, nil
}

func (p *testProvider) Discard(v View, choices deck.Hand, remaining int) (int, error) {
	p.discards++
	return 0, nil
}

func (p *testProvider) DeclareHandle(v View, choices []Handle) (int, error) {
	for i, h := range choices {
		if h == p.handle {
			return i, nil
		}
	}

	return 0, nil
}

func (p *testProvider) HideTrump(v View, choices deck.Hand, remaining int) (int, error) {
	p.hidden++
	return 0, nil
}

func (p *testProvider) PlayCard(v View, choices deck.Hand) (int, error) {
	for _, card := range p.cards {
		if i := choices.IndexOf(card); i >= 0 {
			return i, nil
		}
	}

	return 0, nil
}

// outOfRange always answers an illegal index
type outOfRange struct {
	testProvider
}

func (outOfRange) ChooseContract(v View, choices []Contract) (int, error) {
	return len(choices), nil
}

func testPlayers(t *testing.T, mode Mode, providers ...*testProvider) []*Player {
	t.Helper()

	players, err := NewPlayers(mode, func(seat int) DecisionProvider {
		if seat < len(providers) && providers[seat] != nil {
			return providers[seat]
		}
		return &testProvider{}
	})
	require.NoError(t, err)
	return players
}

// testDeal returns a deal in the bidding phase with the given hands and dog
func testDeal(t *testing.T, players []*Player, hands []string, dog string) *Deal {
	t.Helper()

	opts := DefaultOptions()
	opts.Mode = Mode(len(players))
	d, err := NewDeal(logrus.StandardLogger(), players, opts, 1, 0, 1)
	require.NoError(t, err)

	for i, hand := range hands {
		d.participants[i].hand = deck.CardsFromString(hand)
	}
	d.dog = deck.CardsFromString(dog)
	d.phase = PhaseBidding

	return d
}

// cardsExcept returns every card of the deck except the ones listed
func cardsExcept(cards ...deck.Hand) deck.Hand {
	rest := deck.New().Cards
	for _, hand := range cards {
		for _, c := range hand {
			rest.Discard(c)
		}
	}

	return rest
}

// orderedDeal deals the unshuffled deck: the dog first, then each seat in turn
func orderedDeal(t *testing.T, players []*Player) *Deal {
	t.Helper()

	mode := Mode(len(players))
	cards := deck.New().Cards
	dog := cards.Give(mode.DogSize())
	hands := make([]string, len(players))
	for i := range hands {
		hands[i] = deck.CardsToString(cards.Give(mode.CardsPerPlayer()))
	}

	return testDeal(t, players, hands, deck.CardsToString(dog))
}

// lateDeal returns a four player deal where seat 0 took a garde alone and the
// given hands are all that is left to play. The other cards are in the taker's pile.
func lateDeal(t *testing.T, players []*Player, hands []string, attackTricks, defenseTricks int) *Deal {
	t.Helper()

	d := testDeal(t, players, hands, "")
	d.contract = Garde
	d.taker = 0
	d.participants[0].setRole(RoleTaker)
	for _, p := range d.participants[1:] {
		p.setRole(RoleDefenser)
	}

	held := make([]deck.Hand, 0, len(d.participants))
	for _, p := range d.participants {
		held = append(held, p.hand)
	}
	d.participants[0].owned = cardsExcept(held...)

	for i := 0; i < attackTricks+defenseTricks; i++ {
		d.tricks = append(d.tricks, newTrick(i+1, len(players)))
	}
	d.attackTricks = attackTricks
	d.defenseTricks = defenseTricks
	d.phase = PhasePlaying

	require.NoError(t, d.CardCount())
	return d
}

func play(cards string) *testProvider {
	return &testProvider{cards: deck.CardsFromString(cards)}
}

// randomProvider picks any legal choice
type randomProvider struct {
	rng *rand.Rand
}

func newRandomProviders(seed int64) func(seat int) DecisionProvider {
	return func(seat int) DecisionProvider {
		return &randomProvider{rng: rand.New(rand.NewSource(seed + int64(seat)))} // nolint:gosec
	}
}

func (r *randomProvider) ChooseContract(v View, choices []Contract) (int, error) {
	return r.rng.Intn(len(choices)), nil
}

func (r *randomProvider) AnnounceSlam(v View) (bool, error) {
	return r.rng.Intn(100) == 0, nil
}

func (r *randomProvider) CallCard(v View, choices deck.Hand) (int, error) {
	return r.rng.Intn(len(choices)), nil
}

func (r *randomProvider) Discard(v View, choices deck.Hand, remaining int) (int, error) {
	return r.rng.Intn(len(choices)), nil
}

func (r *randomProvider) DeclareHandle(v View, choices []Handle) (int, error) {
	return r.rng.Intn(len(choices)), nil
}

func (r *randomProvider) HideTrump(v View, choices deck.Hand, remaining int) (int, error) {
	return r.rng.Intn(len(choices)), nil
}

func (r *randomProvider) PlayCard(v View, choices deck.Hand) (int, error) {
	return r.rng.Intn(len(choices)), nil
}
