package main

import (
	"flag"

	"tarot/internal/config"
)

var (
	players     = flag.Int("players", 4, "number of players (3, 4 or 5)")
	random      = flag.Bool("random", false, "every player is random, nobody is asked")
	auto        = flag.Bool("auto", true, "play forced choices automatically")
	quiet       = flag.Bool("quiet", false, "only print the scores")
	verbose     = flag.Bool("verbose", false, "log every card")
	noSlam      = flag.Bool("no-slam", false, "never ask for a slam")
	deals       = flag.Int("deals", 1, "deals per session")
	games       = flag.Int("games", 0, "run a batch of random games instead of a session")
	concurrency = flag.Int("concurrency", 4, "number of games played at the same time")
	seed        = flag.Int64("seed", 0, "seed of the random players and of the deck, 0 is random")
)

// applyFlags overrides the configuration with the flags given on the command line
func applyFlags(cfg *config.Config, fs *flag.FlagSet) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "players":
			cfg.Players = *players
		case "random":
			cfg.Random = *random
		case "auto":
			cfg.Auto = *auto
		case "quiet":
			cfg.Quiet = *quiet
		case "verbose":
			cfg.Verbose = *verbose
		case "no-slam":
			cfg.NoSlam = *noSlam
		case "deals":
			cfg.Deals = *deals
		case "games":
			cfg.Games = *games
		case "concurrency":
			cfg.Concurrency = *concurrency
		case "seed":
			cfg.Seed = *seed
		}
	})
}
