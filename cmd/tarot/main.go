package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"strings"

	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	"tarot/internal/config"
	"tarot/internal/provider"
	"tarot/internal/render"
	"tarot/internal/rng"
	"tarot/internal/simulation"
	"tarot/pkg/tarot"
)

func main() {
	flag.Parse()

	cfg := config.Instance()
	applyFlags(&cfg, flag.CommandLine)
	setupLogger(cfg)

	opts, err := cfg.Options()
	if err != nil {
		logrus.WithError(err).Fatal("invalid configuration")
	}

	if cfg.Games > 0 {
		simulate(cfg, opts)
		return
	}

	play(cfg, opts)
}

func setupLogger(cfg config.Config) {
	if lvl := cfg.Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if cfg.Quiet {
		logrus.SetLevel(logrus.WarnLevel)
	}

	if cfg.Verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" || cfg.Log.Format == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}

func generator(seed int64) rng.Generator {
	if seed == 0 {
		return rng.Crypto{}
	}

	return rng.NewSeeded(seed)
}

// play runs one session. The first seat is the human unless every player is random.
func play(cfg config.Config, opts tarot.Options) {
	stdin := int(os.Stdin.Fd())
	if !cfg.Random && !term.IsTerminal(stdin) {
		logrus.Fatal("interactive mode needs a terminal, use -random")
	}

	gen := generator(cfg.Seed)
	width := render.Width(int(os.Stdout.Fd()))
	players, err := tarot.NewPlayers(opts.Mode, func(seat int) tarot.DecisionProvider {
		var p tarot.DecisionProvider = provider.NewRandom(gen)
		if seat == 0 && !cfg.Random {
			p = provider.NewInteractive(os.Stdin, os.Stdout, width)
		}

		if cfg.Auto {
			p = provider.NewAuto(p)
		}

		return p
	})
	if err != nil {
		logrus.WithError(err).Fatal("could not create players")
	}

	game, err := tarot.NewGame(logrus.StandardLogger(), players, opts, gen)
	if err != nil {
		logrus.WithError(err).Fatal("could not create game")
	}

	names := make([]string, len(players))
	for i, p := range players {
		names[i] = p.Name
	}

	for game.Deals() < opts.Deals {
		result, err := game.PlayDeal()
		if err != nil {
			logrus.WithError(err).Fatal("deal failed")
		}

		if !cfg.Quiet {
			pterm.Println(render.Result(result, names))
		}
	}

	table, err := render.Scores(players)
	if err != nil {
		logrus.WithError(err).Fatal("could not render scores")
	}

	pterm.Println(table)
}

// simulate runs a batch of random games
func simulate(cfg config.Config, opts tarot.Options) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	report, err := simulation.Run(ctx, logrus.StandardLogger(), simulation.Options{
		Games:       cfg.Games,
		Concurrency: cfg.Concurrency,
		Seed:        cfg.Seed,
		Game:        opts,
	})
	if err != nil && report == nil {
		logrus.WithError(err).Fatal("simulation failed")
	}

	if err != nil {
		logrus.WithError(err).Warn("simulation interrupted")
	}

	pterm.Info.Printfln("%d games, %d deals, %d redeals, %d failed (%d fatal) in %s", report.Games, report.Deals, report.Redeals, report.Failed, report.Fatal, report.Duration)
	for _, contract := range tarot.Contracts()[1:] {
		pterm.Info.Printfln("%s: %d", contract, report.Contracts[contract])
	}
	pterm.Info.Printfln("won: %d, slams: %d", report.Won, report.Slams)

	for _, e := range report.Errors {
		pterm.Error.Println(e)
	}

	if report.Failed > 0 {
		os.Exit(1)
	}
}
