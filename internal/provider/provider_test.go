package provider

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tarot/internal/rng"
	"tarot/pkg/deck"
	"tarot/pkg/tarot"
)

func init() {
	pterm.DisableColor()
}

// fixed always returns the same number
type fixed int

func (f fixed) Intn(n int) int {
	return int(f) % n
}

func TestWeightedIndex(t *testing.T) {
	i, err := weightedIndex(fixed(0), []int{99, 1})
	assert.NoError(t, err)
	assert.Equal(t, 0, i)

	i, err = weightedIndex(fixed(99), []int{99, 1})
	assert.NoError(t, err)
	assert.Equal(t, 1, i)

	i, err = weightedIndex(fixed(3), []int{0, 2, 2})
	assert.NoError(t, err)
	assert.Equal(t, 2, i)

	_, err = weightedIndex(fixed(0), []int{0, 0})
	assert.Equal(t, WeightError{0, 0}, err)

	_, err = weightedIndex(fixed(0), []int{-1, 3})
	assert.EqualError(t, err, "invalid weights: [-1 3]")
}

func TestRandom(t *testing.T) {
	r := NewRandom(rng.NewSeeded(1))
	hand := deck.CardsFromString("1t,2t,3t")

	for n := 0; n < 100; n++ {
		i, err := r.PlayCard(tarot.View{}, hand)
		require.NoError(t, err)
		assert.True(t, i >= 0 && i < len(hand))

		i, err = r.ChooseContract(tarot.View{}, tarot.Contracts())
		require.NoError(t, err)
		assert.True(t, i >= 0 && i < 5)
	}

	slam, err := NewRandom(fixed(99)).AnnounceSlam(tarot.View{})
	assert.NoError(t, err)
	assert.True(t, slam)

	slam, err = NewRandom(fixed(5)).AnnounceSlam(tarot.View{})
	assert.NoError(t, err)
	assert.False(t, slam)
}

func TestAuto(t *testing.T) {
	script := NewScripted([]int{2, 1})
	auto := NewAuto(script)

	i, err := auto.PlayCard(tarot.View{}, deck.CardsFromString("5h"))
	assert.NoError(t, err)
	assert.Equal(t, 0, i)
	assert.Equal(t, 2, script.Remaining(), "single choices are not forwarded")

	i, err = auto.HideTrump(tarot.View{}, deck.CardsFromString("5t,6t"), 2)
	assert.NoError(t, err)
	assert.Equal(t, 0, i)
	assert.Equal(t, 2, script.Remaining())

	i, err = auto.PlayCard(tarot.View{}, deck.CardsFromString("5h,6h,7h"))
	assert.NoError(t, err)
	assert.Equal(t, 2, i)

	i, err = auto.ChooseContract(tarot.View{}, tarot.Contracts())
	assert.NoError(t, err)
	assert.Equal(t, 1, i)

	slam, err := auto.AnnounceSlam(tarot.View{})
	assert.NoError(t, err)
	assert.False(t, slam)
}

func TestScripted(t *testing.T) {
	s := NewScripted([]int{1, 0}, true)

	i, err := s.Discard(tarot.View{}, deck.CardsFromString("5h,6h"), 2)
	assert.NoError(t, err)
	assert.Equal(t, 1, i)

	slam, _ := s.AnnounceSlam(tarot.View{})
	assert.True(t, slam)
	slam, _ = s.AnnounceSlam(tarot.View{})
	assert.False(t, slam)

	_, err = s.CallCard(tarot.View{}, deck.CardsFromString("14h"))
	assert.NoError(t, err)

	_, err = s.PlayCard(tarot.View{}, deck.CardsFromString("14h"))
	assert.ErrorIs(t, err, ErrScriptExhausted)
	assert.EqualError(t, err, "card: no scripted answer left")
}

func TestInteractive(t *testing.T) {
	out := &bytes.Buffer{}
	in := strings.NewReader("x\n7\n1\n")
	p := NewInteractive(in, out, 0)

	v := tarot.View{
		Player:      "East",
		Mode:        tarot.ModeFour,
		Hand:        deck.CardsFromString("1t,14h"),
		Names:       []string{"East", "North"},
		TrickNumber: 2,
		Trick:       []tarot.Play{{Seat: 1, Card: deck.Suited(deck.Hearts, 3)}},
	}

	i, err := p.PlayCard(v, deck.CardsFromString("1t,14h"))
	require.NoError(t, err)
	assert.Equal(t, 1, i)

	output := out.String()
	assert.Contains(t, output, "Hand: #1 K♥")
	assert.Contains(t, output, "Trick: North 3♥")
	assert.Contains(t, output, `invalid choice "x", expected a number from 0 to 1`)
	assert.Contains(t, output, `invalid choice "7"`)
	assert.Equal(t, 3, strings.Count(output, "Trick 2, your card?"))
}

func TestInteractive_cardAnswer(t *testing.T) {
	out := &bytes.Buffer{}
	in := strings.NewReader("3c\n14H\n")
	p := NewInteractive(in, out, 0)

	i, err := p.Discard(tarot.View{Mode: tarot.ModeFour}, deck.CardsFromString("13s,14h,2d"), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, i)

	output := out.String()
	assert.Contains(t, output, "0: Q♠  1: K♥  2: 2♦")
	assert.Contains(t, output, `invalid choice "3c"`, "a card missing from the choices is refused")
	assert.Equal(t, 2, strings.Count(output, "Discard a card (1 left)"))
}

func TestInteractive_noInput(t *testing.T) {
	p := NewInteractive(strings.NewReader("9"), &bytes.Buffer{}, 0)
	_, err := p.ChooseContract(tarot.View{}, tarot.Contracts())
	assert.Equal(t, ErrNoInput, err)

	p = NewInteractive(strings.NewReader("1"), &bytes.Buffer{}, 0)
	slam, err := p.AnnounceSlam(tarot.View{})
	assert.NoError(t, err)
	assert.True(t, slam)
}

func TestProviders_playGame(t *testing.T) {
	for _, mode := range tarot.Modes() {
		players, err := tarot.NewPlayers(mode, func(seat int) tarot.DecisionProvider {
			return NewAuto(NewRandom(rng.NewSeeded(int64(seat) + 1)))
		})
		require.NoError(t, err)

		opts := tarot.DefaultOptions()
		opts.Mode = mode
		opts.Deals = 5
		game, err := tarot.NewGame(nullLogger(), players, opts, rng.NewSeeded(9))
		require.NoError(t, err)
		require.NoError(t, game.Play())
		assert.NoError(t, game.IsConsistent())
	}
}
