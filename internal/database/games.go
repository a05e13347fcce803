package database

import (
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"catan-engine/internal/game"
)

// Game is a finished simulation.
type Game struct {
	ID        string
	Layout    string
	Seed      int64
	Rounds    int
	Turns     int
	WinnerID  string // Empty when the round limit was reached
	Settings  game.Settings
	CreatedAt time.Time
}

// GamePlayer is one seat of a finished simulation.
type GamePlayer struct {
	GameID      string `db:"game_id"`
	PlayerID    string `db:"player_id"`
	Slot        int    `db:"slot"`
	Name        string `db:"name"`
	Color       string `db:"color"`
	Points      int    `db:"points"`
	Knights     int    `db:"knights"`
	LongestRoad int    `db:"longest_road"`
}

// gameRow is a games row as stored.
type gameRow struct {
	ID           string         `db:"id"`
	Layout       string         `db:"layout"`
	Seed         int64          `db:"seed"`
	Rounds       int            `db:"rounds"`
	Turns        int            `db:"turns"`
	WinnerID     sql.NullString `db:"winner_id"`
	SettingsJSON string         `db:"settings_json"`
	CreatedAt    time.Time      `db:"created_at"`
}

func (r *gameRow) toGame() (*Game, error) {
	g := &Game{
		ID:        r.ID,
		Layout:    r.Layout,
		Seed:      r.Seed,
		Rounds:    r.Rounds,
		Turns:     r.Turns,
		WinnerID:  r.WinnerID.String,
		CreatedAt: r.CreatedAt,
	}
	if err := json.Unmarshal([]byte(r.SettingsJSON), &g.Settings); err != nil {
		return nil, err
	}
	return g, nil
}

const gameColumns = `id, layout, seed, rounds, turns, winner_id, settings_json, created_at`

// ErrGameNotFound is returned when a game is not found.
var ErrGameNotFound = errors.New("game not found")

// SaveGame stores a game and its seats in one transaction.
func (db *DB) SaveGame(g *Game, players []*GamePlayer) error {
	settingsJSON, err := json.Marshal(g.Settings)
	if err != nil {
		return err
	}
	if g.CreatedAt.IsZero() {
		g.CreatedAt = time.Now()
	}

	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO games (`+gameColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, g.ID, g.Layout, g.Seed, g.Rounds, g.Turns, nullString(g.WinnerID), string(settingsJSON), g.CreatedAt)
	if err != nil {
		return err
	}

	for _, p := range players {
		_, err = tx.Exec(`
			INSERT INTO game_players (game_id, player_id, slot, name, color, points, knights, longest_road)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`, g.ID, p.PlayerID, p.Slot, p.Name, p.Color, p.Points, p.Knights, p.LongestRoad)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// GetGame retrieves a game by ID.
func (db *DB) GetGame(id string) (*Game, error) {
	var row gameRow
	err := db.conn.Get(&row, `SELECT `+gameColumns+` FROM games WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrGameNotFound
	}
	if err != nil {
		return nil, err
	}
	return row.toGame()
}

// ListGames returns stored games, newest first. An empty layout lists all.
func (db *DB) ListGames(layout string) ([]*Game, error) {
	var rows []gameRow
	err := db.conn.Select(&rows, `
		SELECT `+gameColumns+`
		FROM games
		WHERE ? = '' OR layout = ?
		ORDER BY created_at DESC, id
	`, layout, layout)
	if err != nil {
		return nil, err
	}

	games := make([]*Game, 0, len(rows))
	for i := range rows {
		g, err := rows[i].toGame()
		if err != nil {
			return nil, err
		}
		games = append(games, g)
	}
	return games, nil
}

// GetGamePlayers returns the seats of a game in slot order.
func (db *DB) GetGamePlayers(gameID string) ([]*GamePlayer, error) {
	var players []*GamePlayer
	err := db.conn.Select(&players, `
		SELECT game_id, player_id, slot, name, color, points, knights, longest_road
		FROM game_players
		WHERE game_id = ?
		ORDER BY slot
	`, gameID)
	return players, err
}

// SeatWins counts wins per seat slot. An empty layout counts every game.
func (db *DB) SeatWins(layout string) (map[int]int, error) {
	var rows []struct {
		Slot int `db:"slot"`
		Wins int `db:"wins"`
	}
	err := db.conn.Select(&rows, `
		SELECT gp.slot AS slot, COUNT(*) AS wins
		FROM games g
		JOIN game_players gp ON gp.game_id = g.id AND gp.player_id = g.winner_id
		WHERE ? = '' OR g.layout = ?
		GROUP BY gp.slot
	`, layout, layout)
	if err != nil {
		return nil, err
	}

	wins := make(map[int]int, len(rows))
	for _, r := range rows {
		wins[r.Slot] = r.Wins
	}
	return wins, nil
}

// DeleteGame removes a game along with its seats and history.
func (db *DB) DeleteGame(id string) error {
	res, err := db.conn.Exec(`DELETE FROM games WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrGameNotFound
	}
	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
