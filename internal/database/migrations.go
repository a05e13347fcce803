package database

type migration struct {
	id   int
	name string
	sql  string
}

var migrations = []migration{
	{
		id:   1,
		name: "initial_schema",
		sql: `
			-- One row per simulated game
			CREATE TABLE games (
				id TEXT PRIMARY KEY,
				layout TEXT NOT NULL,
				seed INTEGER NOT NULL,
				rounds INTEGER NOT NULL,
				turns INTEGER NOT NULL,
				winner_id TEXT,
				settings_json TEXT NOT NULL,
				created_at DATETIME DEFAULT CURRENT_TIMESTAMP
			);
			CREATE INDEX idx_games_layout ON games(layout);

			-- Seats and final standings
			CREATE TABLE game_players (
				game_id TEXT NOT NULL,
				player_id TEXT NOT NULL,
				slot INTEGER NOT NULL,
				name TEXT NOT NULL,
				color TEXT NOT NULL,
				points INTEGER NOT NULL,
				knights INTEGER NOT NULL DEFAULT 0,
				longest_road INTEGER NOT NULL DEFAULT 0,
				PRIMARY KEY (game_id, player_id),
				FOREIGN KEY (game_id) REFERENCES games(id) ON DELETE CASCADE
			);
			CREATE INDEX idx_game_players_game ON game_players(game_id);
		`,
	},
	{
		id:   2,
		name: "add_game_history",
		sql: `
			CREATE TABLE game_history (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				game_id TEXT NOT NULL,
				round INTEGER NOT NULL,
				phase TEXT NOT NULL,
				player_id TEXT,
				player_name TEXT,
				event_type TEXT NOT NULL,
				message TEXT NOT NULL,
				created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
				FOREIGN KEY (game_id) REFERENCES games(id) ON DELETE CASCADE
			);
			CREATE INDEX idx_game_history_game ON game_history(game_id);
		`,
	},
}
