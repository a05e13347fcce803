package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog/log"

	"catan-engine/internal/database"
	"catan-engine/internal/game"
	"catan-engine/internal/sim"
)

// saveRun stores a finished run and its history, then reports how often
// each seat has won on this layout.
func saveRun(dbPath, layoutID string, seed int64, g *game.GameState, res *sim.Result, events []sim.Event) error {
	db, err := database.New(dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	row := &database.Game{
		ID:       g.ID,
		Layout:   layoutID,
		Seed:     seed,
		Rounds:   res.Rounds,
		Turns:    res.Turns,
		Settings: g.Settings,
	}
	if res.Winner != nil {
		row.WinnerID = res.Winner.ID
	}

	seats := make([]*database.GamePlayer, 0, len(res.Scores))
	for i, s := range res.Scores {
		seats = append(seats, &database.GamePlayer{
			GameID:      g.ID,
			PlayerID:    s.Player.ID,
			Slot:        i,
			Name:        s.Player.Name,
			Color:       string(s.Player.Color),
			Points:      s.Points,
			Knights:     s.Player.KnightsPlayed,
			LongestRoad: g.LongestRoadLength(s.Player.ID),
		})
	}
	if err := db.SaveGame(row, seats); err != nil {
		return fmt.Errorf("save game: %w", err)
	}

	history := make([]database.HistoryEvent, 0, len(events))
	for _, e := range events {
		h := database.HistoryEvent{
			Round:     e.Round,
			Phase:     e.Phase.String(),
			EventType: e.Type,
			Message:   e.Message,
		}
		if e.Player != nil {
			h.PlayerID = e.Player.ID
			h.PlayerName = e.Player.Name
		}
		history = append(history, h)
	}
	if err := db.AddHistoryEvents(g.ID, history); err != nil {
		return fmt.Errorf("save history: %w", err)
	}

	wins, err := db.SeatWins(layoutID)
	if err != nil {
		return err
	}
	for slot := range res.Scores {
		log.Info().
			Str("layout", layoutID).
			Int("wins", wins[slot]).
			Msgf("%s seat", humanize.Ordinal(slot+1))
	}

	log.Info().
		Str("game", g.ID).
		Int("events", len(history)).
		Str("db", dbPath).
		Msg("Run saved")
	return nil
}
