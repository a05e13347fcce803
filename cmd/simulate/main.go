package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"slices"
	"syscall"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog/log"

	"catan-engine/internal/config"
	"catan-engine/internal/game"
	"catan-engine/internal/logger"
	"catan-engine/internal/sim"
	"catan-engine/pkg/maps"
)

func main() {
	logger.Init()

	def := config.Default()
	layout := flag.String("layout", def.Layout, "Board layout: beginner, random or a registered layout ID")
	seed := flag.Int64("seed", def.Seed, "Seed for the board, dice and player choices")
	players := flag.Int("players", def.Players, "Number of computer players")
	rounds := flag.Int("rounds", def.MaxRounds, "Maximum rounds before the game is called")
	dbPath := flag.String("db", def.DBPath, "SQLite file to record the run in (optional)")
	export := flag.Bool("export", false, "Print the layout as JSON and exit")
	flag.Parse()

	// CATAN_* env vars win over flags
	cfg, err := config.Load(config.Config{
		Layout:    *layout,
		Seed:      *seed,
		Players:   *players,
		MaxRounds: *rounds,
		DBPath:    *dbPath,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	l, err := resolveLayout(cfg)
	if err != nil {
		log.Fatal().Err(err).Str("layout", cfg.Layout).Msg("Failed to load layout")
	}

	if *export {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(l.Raw()); err != nil {
			log.Fatal().Err(err).Msg("Failed to export layout")
		}
		return
	}

	b, err := l.NewBoard()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build board")
	}

	var events []sim.Event
	runner, err := sim.New(b, sim.Options{
		Players:   cfg.Players,
		MaxRounds: cfg.MaxRounds,
		Seed:      cfg.Seed,
		Settings:  game.DefaultSettings(),
		OnEvent: func(e sim.Event) {
			events = append(events, e)
		},
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to seat players")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info().
		Str("layout", l.Name).
		Int64("seed", cfg.Seed).
		Int("players", cfg.Players).
		Msg("Simulation starting")

	res, err := runner.Run(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal().Err(err).Msg("Simulation failed")
	}
	if res == nil {
		return
	}

	names := make(map[string]string)
	for _, p := range runner.Game().Players {
		names[p.ID] = p.Name
	}
	fmt.Println(maps.Debug(b, names))
	printStandings(runner.Game(), res)

	if cfg.DBPath != "" {
		if err := saveRun(cfg.DBPath, l.ID, cfg.Seed, runner.Game(), res, events); err != nil {
			log.Error().Err(err).Msg("Failed to save run")
		}
	}
}

func resolveLayout(cfg config.Config) (*maps.Layout, error) {
	if cfg.Layout == config.LayoutRandom {
		return maps.Random(cfg.Seed), nil
	}
	if err := maps.LoadAll(); err != nil {
		return nil, err
	}
	l := maps.Get(cfg.Layout)
	if l == nil {
		ids := make([]string, 0)
		for _, info := range maps.List() {
			ids = append(ids, info.ID)
		}
		return nil, fmt.Errorf("unknown layout %q, have %v and %s", cfg.Layout, ids, config.LayoutRandom)
	}
	return l, nil
}

func printStandings(g *game.GameState, res *sim.Result) {
	if res.Winner != nil {
		fmt.Printf("%s wins in the %s round after %d turns\n\n", res.Winner.Name, humanize.Ordinal(res.Rounds), res.Turns)
	} else {
		fmt.Printf("No winner after %d rounds\n\n", res.Rounds)
	}

	scores := slices.Clone(res.Scores)
	slices.SortStableFunc(scores, func(a, b sim.Score) int {
		return b.Points - a.Points
	})
	for i, s := range scores {
		extras := ""
		if g.LongestRoadOwner == s.Player.ID {
			extras += " [longest road]"
		}
		if g.LargestArmyOwner == s.Player.ID {
			extras += " [largest army]"
		}
		fmt.Printf("%-5s %-6s %-7s %2d points  %s%s\n",
			humanize.Ordinal(i+1), s.Player.Name, s.Player.Color, s.Points, s.Player.Hand, extras)
	}
}
