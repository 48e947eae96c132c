package tarot

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"tarot/internal/rng"
)

// Game is a session of tarot: the same players play several deals and accumulate points
type Game struct {
	ID      string
	options Options
	players []*Player
	gen     rng.Generator
	logger  logrus.FieldLogger

	// dealer rotates after every deal, void ones included
	dealer  int
	deals   int
	redeals int
	logs    []*DealLog
}

// NewGame returns a new game. The generator provides the seeds of the deals.
func NewGame(logger logrus.FieldLogger, players []*Player, opts Options, gen rng.Generator) (*Game, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	if len(players) != opts.Mode.Players() {
		return nil, PlayerCountError(len(players))
	}

	for i, p := range players {
		if p == nil || p.provider == nil {
			return nil, fmt.Errorf("player %d has no decision provider: %w", i, ErrInvalidCase)
		}
	}

	if opts.Deals <= 0 {
		opts.Deals = 1
	}

	if opts.MaxRedeals <= 0 {
		opts.MaxRedeals = DefaultOptions().MaxRedeals
	}

	id := uuid.New().String()
	return &Game{
		ID:      id,
		options: opts,
		players: players,
		gen:     gen,
		logger:  logger.WithField("game", id),
		dealer:  len(players) - 1,
	}, nil
}

// Players returns the players in seat order
func (g *Game) Players() []*Player {
	return g.players
}

// Deals returns the number of scored deals
func (g *Game) Deals() int {
	return g.deals
}

// Redeals returns the number of void deals
func (g *Game) Redeals() int {
	return g.redeals
}

// Logs returns the log of every deal, void ones included
func (g *Game) Logs() []*DealLog {
	return g.logs
}

// NewDeal prepares the next deal, the player after the dealer speaks first
func (g *Game) NewDeal() (*Deal, error) {
	first := (g.dealer + 1) % len(g.players)
	return NewDeal(g.logger, g.players, g.options, g.deals+g.redeals+1, first, rng.Seed(g.gen))
}

// PlayDeal plays deals until one is scored. Void deals are redealt with the next dealer.
func (g *Game) PlayDeal() (*Result, error) {
	for void := 0; ; void++ {
		if void >= g.options.MaxRedeals {
			return nil, ErrTooManyRedeals
		}

		d, err := g.NewDeal()
		if err != nil {
			return nil, err
		}

		result, err := d.Run()
		g.logs = append(g.logs, d.Log())
		g.dealer = (g.dealer + 1) % len(g.players)

		if IsVoidDeal(err) {
			g.redeals++
			g.logger.WithError(err).Debug("redeal")
			continue
		}

		if err != nil {
			return nil, err
		}

		g.deals++
		if err := g.IsConsistent(); err != nil {
			return nil, err
		}

		return result, nil
	}
}

// Play plays every deal of the session
func (g *Game) Play() error {
	for g.deals < g.options.Deals {
		if _, err := g.PlayDeal(); err != nil {
			return err
		}
	}

	g.logger.WithFields(logrus.Fields{
		"deals":   g.deals,
		"redeals": g.redeals,
	}).Info("game over")

	return nil
}

// IsConsistent returns an error if the scores of the players do not add up to zero
func (g *Game) IsConsistent() error {
	sum := 0.0
	for _, p := range g.players {
		sum += p.score
	}

	if sum != 0 {
		return InvalidScoresError(sum)
	}

	return nil
}

// Scores returns the scores in seat order
func (g *Game) Scores() []float64 {
	scores := make([]float64, len(g.players))
	for i, p := range g.players {
		scores[i] = p.score
	}

	return scores
}
