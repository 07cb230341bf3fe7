package repository

import (
	"context"
	"fmt"

	"github.com/kickoff-elo/kickoff-backend/internal/models"
	"github.com/kickoff-elo/kickoff-backend/pkg/database"
)

type ClubRepository struct {
	db *database.DB
}

func NewClubRepository(db *database.DB) *ClubRepository {
	return &ClubRepository{db: db}
}

// FindAll 티어, 이름 순 클럽 목록
func (r *ClubRepository) FindAll(ctx context.Context) ([]*models.Club, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, tier FROM clubs ORDER BY tier, name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query clubs: %w", err)
	}
	defer rows.Close()

	clubs := []*models.Club{}
	for rows.Next() {
		club := &models.Club{}
		if err := rows.Scan(&club.ID, &club.Name, &club.Tier); err != nil {
			return nil, fmt.Errorf("failed to scan club: %w", err)
		}
		clubs = append(clubs, club)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate clubs: %w", err)
	}

	return clubs, nil
}
