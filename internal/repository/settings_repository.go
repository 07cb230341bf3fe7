package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/kickoff-elo/kickoff-backend/internal/models"
	"github.com/kickoff-elo/kickoff-backend/pkg/database"
)

// SettingsRepository elo_settings 싱글톤 행 관리
type SettingsRepository struct {
	db *database.DB
}

func NewSettingsRepository(db *database.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// GetElo 현재 ELO 설정 조회, 행이 없으면 nil
func (r *SettingsRepository) GetElo(ctx context.Context) (*models.EloSettings, error) {
	settings := &models.EloSettings{}
	err := r.db.QueryRowContext(ctx,
		`SELECT k_factor, updated_at FROM elo_settings WHERE id = 1`,
	).Scan(&settings.KFactor, &settings.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get elo settings: %w", err)
	}

	return settings, nil
}

// UpdateKFactor K-factor 변경 (행이 없으면 생성)
func (r *SettingsRepository) UpdateKFactor(ctx context.Context, kFactor int) (*models.EloSettings, error) {
	query := `
		INSERT INTO elo_settings (id, k_factor, updated_at)
		VALUES (1, $1, NOW())
		ON CONFLICT (id) DO UPDATE
		SET k_factor = EXCLUDED.k_factor, updated_at = NOW()
		RETURNING k_factor, updated_at
	`

	settings := &models.EloSettings{}
	if err := r.db.QueryRowContext(ctx, query, kFactor).Scan(&settings.KFactor, &settings.UpdatedAt); err != nil {
		return nil, fmt.Errorf("failed to update k-factor: %w", err)
	}

	return settings, nil
}
