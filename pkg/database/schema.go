package database

import (
	"context"
	"fmt"

	"github.com/kickoff-elo/kickoff-backend/pkg/logger"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS players (
		id SERIAL PRIMARY KEY,
		name VARCHAR(100) UNIQUE NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS clubs (
		id SERIAL PRIMARY KEY,
		name VARCHAR(100) UNIQUE NOT NULL,
		tier INT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS matches (
		id SERIAL PRIMARY KEY,
		time TIMESTAMP NOT NULL DEFAULT NOW(),
		club_a VARCHAR(100),
		club_b VARCHAR(100),
		team_a TEXT,
		team_b TEXT,
		score_a INT,
		score_b INT
	)`,
	`CREATE INDEX IF NOT EXISTS idx_matches_time ON matches (time)`,
	`CREATE TABLE IF NOT EXISTS elo_settings (
		id SMALLINT PRIMARY KEY DEFAULT 1,
		k_factor INT NOT NULL DEFAULT 24,
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	)`,
}

// DefaultClub is a club row inserted into an empty clubs table.
type DefaultClub struct {
	Name string
	Tier int
}

// DefaultClubs 초기 클럽 목록
var DefaultClubs = []DefaultClub{
	{"Liverpool", 1},
	{"Arsenal", 1},
	{"City", 1},
	{"Psg", 1},
	{"Bayern", 1},
	{"Barca", 1},
	{"Inter", 1},
	{"Aston Villa", 2},
	{"Chelsea", 2},
	{"Manu", 2},
	{"Newcastle", 2},
	{"Tottenham", 2},
	{"Atletico", 2},
	{"Napoli", 2},
	{"Leverkusen", 2},
}

// EnsureSchema 테이블 생성, 설정 행 및 기본 클럽 시드 (멱등)
func (db *DB) EnsureSchema(ctx context.Context, defaultKFactor int) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin schema transaction: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range schemaStatements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO elo_settings (id, k_factor) VALUES (1, $1) ON CONFLICT (id) DO NOTHING`,
		defaultKFactor,
	)
	if err != nil {
		return fmt.Errorf("failed to ensure elo settings row: %w", err)
	}

	var clubCount int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM clubs`).Scan(&clubCount); err != nil {
		return fmt.Errorf("failed to count clubs: %w", err)
	}

	if clubCount == 0 {
		for _, club := range DefaultClubs {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO clubs (name, tier) VALUES ($1, $2) ON CONFLICT (name) DO NOTHING`,
				club.Name, club.Tier,
			)
			if err != nil {
				return fmt.Errorf("failed to seed club %s: %w", club.Name, err)
			}
		}
		logger.Info("Clubs seeded", "count", len(DefaultClubs))
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit schema: %w", err)
	}

	logger.Info("Database schema ensured")
	return nil
}
