package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDeck(t *testing.T) {
	deck := New()

	assert.Equal(t, MaxCards, deck.CardsLeft())
	assert.Equal(t, Trump(Fool), deck.Cards[0])
	assert.Equal(t, Suited(Clubs, King), deck.Cards[77])
	assert.Equal(t, MaxPoints, deck.Cards.Points())

	original := deck.HashCode()

	deck.Shuffle(1)
	assert.Equal(t, int64(1), deck.GetSeed())
	assert.Equal(t, MaxCards, deck.CardsLeft())
	shuffled := deck.HashCode()
	assert.NotEqual(t, original, shuffled)

	// same seed, same order
	other := New()
	other.Shuffle(1)
	assert.Equal(t, shuffled, other.HashCode())

	other.Shuffle(2)
	assert.NotEqual(t, shuffled, other.HashCode())
}

func TestRandom(t *testing.T) {
	for i := 0; i < 20; i++ {
		d := Random()
		assert.Equal(t, MaxCards, d.CardsLeft())
		assert.Equal(t, MaxPoints, d.Cards.Points())

		seen := make(map[Card]bool)
		for _, c := range d.Cards {
			assert.False(t, seen[c], "duplicate card %s", c)
			seen[c] = true
		}
	}
}

func TestDeck_Draw(t *testing.T) {
	deck := New()

	assert.True(t, deck.CanDraw(78))
	assert.False(t, deck.CanDraw(79))

	for i := 0; i < 78; i++ {
		_, err := deck.Draw()
		assert.NoError(t, err)
	}

	_, err := deck.Draw()
	assert.Equal(t, ErrEndOfDeck, err)
}

func TestDeck_Give(t *testing.T) {
	deck := New()

	dog, err := deck.Give(6)
	assert.NoError(t, err)
	assert.Equal(t, CardsFromString("0t,1t,2t,3t,4t,5t"), dog)
	assert.Equal(t, 72, deck.CardsLeft())

	_, err = deck.Give(73)
	assert.Equal(t, ErrEndOfDeck, err)
	assert.Equal(t, 72, deck.CardsLeft())
}
