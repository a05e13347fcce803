package database

import "time"

// HistoryEvent represents a single game event in the history log.
type HistoryEvent struct {
	ID         int64     `db:"id"`
	GameID     string    `db:"game_id"`
	Round      int       `db:"round"`
	Phase      string    `db:"phase"`
	PlayerID   string    `db:"player_id"`
	PlayerName string    `db:"player_name"`
	EventType  string    `db:"event_type"`
	Message    string    `db:"message"`
	CreatedAt  time.Time `db:"created_at"`
}

// AddHistoryEvents appends events to a stored game's history in one
// transaction.
func (db *DB) AddHistoryEvents(gameID string, events []HistoryEvent) error {
	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Preparex(`
		INSERT INTO game_history (game_id, round, phase, player_id, player_name, event_type, message, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	now := time.Now()
	for _, e := range events {
		if _, err := stmt.Exec(gameID, e.Round, e.Phase, nullString(e.PlayerID), nullString(e.PlayerName), e.EventType, e.Message, now); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// GetGameHistory retrieves all history events for a game in the order they
// happened.
func (db *DB) GetGameHistory(gameID string) ([]*HistoryEvent, error) {
	return db.GetGameHistorySince(gameID, 0)
}

// GetGameHistorySince retrieves history events after a given ID.
func (db *DB) GetGameHistorySince(gameID string, afterID int64) ([]*HistoryEvent, error) {
	var events []*HistoryEvent
	err := db.conn.Select(&events, `
		SELECT id, game_id, round, phase,
		       COALESCE(player_id, '') AS player_id, COALESCE(player_name, '') AS player_name,
		       event_type, message, created_at
		FROM game_history
		WHERE game_id = ? AND id > ?
		ORDER BY id ASC
	`, gameID, afterID)
	return events, err
}
