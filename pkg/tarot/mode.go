package tarot

import (
	"fmt"
	"strings"
)

// Mode is the variant of the game, keyed by the number of players
type Mode int

// mode constants, the value is the number of players
const (
	ModeThree Mode = 3
	ModeFour  Mode = 4
	ModeFive  Mode = 5
)

// Modes returns every supported mode
func Modes() []Mode {
	return []Mode{ModeThree, ModeFour, ModeFive}
}

// ModeFromPlayers returns the mode for a number of players
func ModeFromPlayers(players int) (Mode, error) {
	switch players {
	case 3, 4, 5:
		return Mode(players), nil
	default:
		return 0, PlayerCountError(players)
	}
}

// ParseMode parses "3", "three", "4", "four", "5" or "five"
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "3", "three":
		return ModeThree, nil
	case "4", "four":
		return ModeFour, nil
	case "5", "five":
		return ModeFive, nil
	default:
		return 0, InvalidModeError(s)
	}
}

func (m Mode) String() string {
	switch m {
	case ModeThree:
		return fmt.Sprintf("%d players, 1 vs 2 (easy)", m.Players())
	case ModeFour:
		return fmt.Sprintf("%d players, 1 vs 3 (standard)", m.Players())
	case ModeFive:
		return fmt.Sprintf("%d players, 2 vs 3 (call a king)", m.Players())
	default:
		return fmt.Sprintf("invalid mode (%d)", int(m))
	}
}

// Valid returns true for the three supported modes
func (m Mode) Valid() bool {
	return m == ModeThree || m == ModeFour || m == ModeFive
}

// Players returns the number of players
func (m Mode) Players() int {
	return int(m)
}

// Ratio is the multiplier of the taker's score. It equals the number of
// defenders minus the ally so that a deal always sums to zero.
func (m Mode) Ratio(withAlly bool) float64 {
	switch m {
	case ModeThree:
		return 2
	case ModeFour:
		return 3
	default:
		if withAlly {
			return 2
		}
		return 4
	}
}

// DogSize returns the number of cards set aside in the dog
func (m Mode) DogSize() int {
	if m == ModeFive {
		return 3
	}

	return 6
}

// CardsPerPlayer returns the number of cards dealt to each player, which is also the number of tricks
func (m Mode) CardsPerPlayer() int {
	switch m {
	case ModeThree:
		return 24
	case ModeFour:
		return 18
	default:
		return 15
	}
}

// MaxCardsForTaker is the size of the taker's hand once the dog is merged
func (m Mode) MaxCardsForTaker() int {
	return m.DogSize() + m.CardsPerPlayer()
}

var seatNames = []string{"East", "North", "South", "West", "Compass"}

// PlayerName returns the default name of the seat
func (m Mode) PlayerName(index int) (string, error) {
	if index < 0 || index >= m.Players() {
		return "", fmt.Errorf("mode with %d players does not support seat %d: %w", m.Players(), index, ErrInvalidCase)
	}

	return seatNames[index], nil
}

// Handle returns the best handle a player may declare with that many trumps.
// The second return value is false when the count is too low for any handle.
func (m Mode) Handle(trumps int) (Handle, bool) {
	for _, h := range []Handle{HandleTriple, HandleDouble, HandleSimple} {
		if trumps >= m.HandleLimit(h) {
			return h, true
		}
	}

	return HandleRefused, false
}

// HandleLimit returns how many trumps must be shown for the handle
func (m Mode) HandleLimit(h Handle) int {
	switch h {
	case HandleSimple:
		switch m {
		case ModeThree:
			return 13
		case ModeFour:
			return 10
		default:
			return 8
		}
	case HandleDouble:
		switch m {
		case ModeThree:
			return 15
		case ModeFour:
			return 13
		default:
			return 10
		}
	case HandleTriple:
		switch m {
		case ModeThree:
			return 18
		case ModeFour:
			return 15
		default:
			return 13
		}
	default:
		return 0
	}
}
