// Package simulation plays many games of random players in parallel
package simulation

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"tarot/internal/provider"
	"tarot/internal/rng"
	"tarot/pkg/tarot"
)

// Options are the options of a batch
type Options struct {
	Games       int
	Concurrency int
	Seed        int64 // 0 draws every seed from crypto/rand
	Game        tarot.Options
}

// Report aggregates the outcome of every game of a batch
type Report struct {
	Games     int                    `json:"games"`
	Failed    int                    `json:"failed"`
	Fatal     int                    `json:"fatal"`
	Deals     int                    `json:"deals"`
	Redeals   int                    `json:"redeals"`
	Won       int                    `json:"won"`
	Slams     int                    `json:"slams"`
	Contracts map[tarot.Contract]int `json:"contracts"`
	Scores    []float64              `json:"scores"`
	Errors    []string               `json:"errors,omitempty"`
	Duration  time.Duration          `json:"duration"`
}

// maxErrors is the number of error messages kept in a report
const maxErrors = 10

type outcome struct {
	game *tarot.Game
	err  error
}

// generator returns the generator of the nth game
func generator(seed int64, n int) rng.Generator {
	if seed == 0 {
		return rng.Crypto{}
	}

	return rng.NewSeeded(seed + int64(n))
}

// newGame builds a game where every seat is a random player. Each seat gets its
// own generator so a game never shares state with another one.
func newGame(logger logrus.FieldLogger, opts Options, n int) (*tarot.Game, error) {
	gen := generator(opts.Seed, n)
	seeds := make([]int64, opts.Game.Mode.Players())
	for i := range seeds {
		seeds[i] = rng.Seed(gen)
	}

	players, err := tarot.NewPlayers(opts.Game.Mode, func(seat int) tarot.DecisionProvider {
		var seatGen rng.Generator = rng.Crypto{}
		if opts.Seed != 0 {
			seatGen = rng.NewSeeded(seeds[seat])
		}
		return provider.NewAuto(provider.NewRandom(seatGen))
	})
	if err != nil {
		return nil, err
	}

	return tarot.NewGame(logger, players, opts.Game, gen)
}

// Run plays opts.Games games on opts.Concurrency workers. A failing game does not stop
// the others, it is counted in the report. Run returns early if ctx is done.
func Run(ctx context.Context, logger logrus.FieldLogger, opts Options) (*Report, error) {
	if err := opts.Game.Validate(); err != nil {
		return nil, err
	}

	if opts.Concurrency <= 0 {
		opts.Concurrency = 1
	}

	start := time.Now()
	jobs := make(chan int)
	outcomes := make(chan outcome, opts.Concurrency)

	var wg sync.WaitGroup
	for w := 0; w < opts.Concurrency; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()

			log := logger.WithField("worker", worker)
			for n := range jobs {
				game, err := newGame(log, opts, n)
				if err == nil {
					err = game.Play()
				}

				if err != nil {
					log.WithError(err).Warn("game failed")
				}

				outcomes <- outcome{game: game, err: err}
			}
		}(w)
	}

	go func() {
		defer close(jobs)
		for n := 0; n < opts.Games; n++ {
			select {
			case jobs <- n:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outcomes)
	}()

	report := &Report{
		Contracts: make(map[tarot.Contract]int),
		Scores:    make([]float64, opts.Game.Mode.Players()),
	}

	for o := range outcomes {
		report.add(o)
		if report.Games%1000 == 0 {
			logger.WithField("games", report.Games).Info("simulation progress")
		}
	}

	report.Duration = time.Since(start)
	return report, ctx.Err()
}

func (r *Report) add(o outcome) {
	r.Games++
	if o.err != nil {
		r.Failed++
		if tarot.IsFatal(o.err) {
			r.Fatal++
		}
		if len(r.Errors) < maxErrors {
			r.Errors = append(r.Errors, o.err.Error())
		}
	}

	if o.game == nil {
		return
	}

	r.Redeals += o.game.Redeals()
	for _, log := range o.game.Logs() {
		if log.Void() {
			continue
		}

		r.Deals++
		r.Contracts[log.Result.Contract]++
		if log.Result.Won() {
			r.Won++
		}
		if log.Result.Slam > 0 {
			r.Slams++
		}
	}

	if o.err != nil {
		return
	}

	for i, score := range o.game.Scores() {
		r.Scores[i] += score
	}
}
