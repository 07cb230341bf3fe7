package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/kickoff-elo/kickoff-backend/internal/models"
	"github.com/kickoff-elo/kickoff-backend/pkg/database"
)

type PlayerRepository struct {
	db *database.DB
}

func NewPlayerRepository(db *database.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

// Create 새 플레이어 생성 (이미 존재하는 이름이면 기존 행 반환)
func (r *PlayerRepository) Create(ctx context.Context, name string) (*models.Player, bool, error) {
	query := `
		INSERT INTO players (name)
		VALUES ($1)
		ON CONFLICT (name) DO NOTHING
		RETURNING id, name, created_at
	`

	player := &models.Player{}
	err := r.db.QueryRowContext(ctx, query, name).Scan(
		&player.ID,
		&player.Name,
		&player.CreatedAt,
	)

	if err == sql.ErrNoRows {
		existing, findErr := r.FindByName(ctx, name)
		if findErr != nil {
			return nil, false, findErr
		}
		return existing, false, nil
	}

	if err != nil {
		return nil, false, fmt.Errorf("failed to create player: %w", err)
	}

	return player, true, nil
}

// FindByName 이름으로 플레이어 찾기
func (r *PlayerRepository) FindByName(ctx context.Context, name string) (*models.Player, error) {
	query := `SELECT id, name, created_at FROM players WHERE name = $1`

	player := &models.Player{}
	err := r.db.QueryRowContext(ctx, query, name).Scan(&player.ID, &player.Name, &player.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to find player: %w", err)
	}

	return player, nil
}

// FindAll 전체 플레이어 (id 오름차순)
func (r *PlayerRepository) FindAll(ctx context.Context) ([]*models.Player, error) {
	query := `SELECT id, name, created_at FROM players ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query players: %w", err)
	}
	defer rows.Close()

	players := []*models.Player{}
	for rows.Next() {
		player := &models.Player{}
		if err := rows.Scan(&player.ID, &player.Name, &player.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan player: %w", err)
		}
		players = append(players, player)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate players: %w", err)
	}

	return players, nil
}

// Delete 플레이어 삭제, 삭제된 행이 있으면 true
func (r *PlayerRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM players WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete player: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return affected > 0, nil
}
