package tarot

import (
	"fmt"
)

// Player is a seat at the table. It lives for the whole session and keeps the score.
type Player struct {
	Name     string
	score    float64
	provider DecisionProvider
}

// NewPlayer returns a new player
func NewPlayer(name string, provider DecisionProvider) *Player {
	return &Player{
		Name:     name,
		provider: provider,
	}
}

// NewPlayers returns one player per seat of the mode, named after the seat
func NewPlayers(mode Mode, provider func(seat int) DecisionProvider) ([]*Player, error) {
	players := make([]*Player, mode.Players())
	for seat := range players {
		name, err := mode.PlayerName(seat)
		if err != nil {
			return nil, err
		}

		players[seat] = NewPlayer(name, provider(seat))
	}

	return players, nil
}

// Score returns the accumulated score
func (p *Player) Score() float64 {
	return p.score
}

// Provider returns the decision provider of the player
func (p *Player) Provider() DecisionProvider {
	return p.provider
}

// addScore is only called by the scoring
func (p *Player) addScore(points float64) {
	p.score += points
}

func (p *Player) String() string {
	return fmt.Sprintf("%s (score: %v)", p.Name, p.score)
}
