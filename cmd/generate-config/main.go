package main

import (
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"tarot/internal/config"
	"tarot/pkg/tarot"
)

var players = flag.Int("players", 4, "number of players written to the file")

func main() {
	flag.Parse()

	if _, err := tarot.ModeFromPlayers(*players); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	cfg := config.DefaultConfig()
	cfg.Players = *players

	fmt.Println("# every value can be overridden with a TAROT_* environment variable")
	if err := yaml.NewEncoder(os.Stdout).Encode(cfg); err != nil {
		panic(err)
	}
}
