package storage

import (
	"context"
	"database/sql"
	"fmt"
)

func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS player (
			key TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			name TEXT NOT NULL,
			job TEXT,
			job_title TEXT,

			level INTEGER DEFAULT 1,
			current_xp INTEGER DEFAULT 0,
			required_xp INTEGER DEFAULT 500,
			total_xp INTEGER DEFAULT 0,
			daily_xp INTEGER DEFAULT 0,
			rank TEXT DEFAULT 'E',
			gold INTEGER DEFAULT 0,

			strength INTEGER DEFAULT 10,
			intelligence INTEGER DEFAULT 10,
			focus INTEGER DEFAULT 10,
			social INTEGER DEFAULT 10,
			willpower INTEGER DEFAULT 10,
			stat_updates TEXT,

			hp INTEGER DEFAULT 100,
			max_hp INTEGER DEFAULT 100,
			mp INTEGER DEFAULT 50,
			max_mp INTEGER DEFAULT 50,
			fatigue INTEGER DEFAULT 0,

			last_login_date TEXT,
			daily_quest_complete INTEGER DEFAULT 0,
			penalty_active INTEGER DEFAULT 0,
			penalty_ends_at DATETIME,

			vision TEXT,
			anti_vision TEXT
		);`,
		`CREATE TABLE IF NOT EXISTS quests (
			id TEXT PRIMARY KEY,
			player_key TEXT NOT NULL,
			title TEXT NOT NULL,
			description TEXT,
			rank TEXT NOT NULL,
			category TEXT NOT NULL,
			xp_reward INTEGER NOT NULL,
			is_completed INTEGER DEFAULT 0,
			created_at DATETIME NOT NULL,
			is_daily INTEGER DEFAULT 0
		);`,
		`CREATE TABLE IF NOT EXISTS history (
			player_key TEXT NOT NULL,
			date TEXT NOT NULL,
			stats TEXT NOT NULL,
			total_xp INTEGER NOT NULL,
			daily_xp INTEGER NOT NULL,
			position INTEGER NOT NULL,
			PRIMARY KEY (player_key, position)
		);`,
		`CREATE TABLE IF NOT EXISTS logs (
			id TEXT PRIMARY KEY,
			player_key TEXT NOT NULL,
			message TEXT NOT NULL,
			timestamp DATETIME NOT NULL,
			type TEXT NOT NULL,
			position INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS shop_items (
			id TEXT NOT NULL,
			player_key TEXT NOT NULL,
			name TEXT NOT NULL,
			description TEXT,
			cost INTEGER NOT NULL,
			PRIMARY KEY (player_key, id)
		);`,
		`CREATE TABLE IF NOT EXISTS health_profile (
			player_key TEXT PRIMARY KEY,
			age INTEGER,
			gender TEXT,
			height_cm REAL,
			weight_kg REAL,
			neck_cm REAL,
			waist_cm REAL,
			hip_cm REAL,
			activity TEXT,
			goal TEXT,
			equipment TEXT,
			session_minutes INTEGER,
			biometrics TEXT,
			plan TEXT
		);`,
		`CREATE INDEX IF NOT EXISTS idx_quests_player_key ON quests(player_key);`,
		`CREATE INDEX IF NOT EXISTS idx_logs_player_key ON logs(player_key, position);`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
