package service

import (
	"context"
	"fmt"

	"github.com/kickoff-elo/kickoff-backend/internal/models"
	"github.com/kickoff-elo/kickoff-backend/pkg/logger"
)

// K-factor bounds accepted from the settings API.
const (
	MinKFactor = 8
	MaxKFactor = 64
)

type settingsStore interface {
	GetElo(ctx context.Context) (*models.EloSettings, error)
	UpdateKFactor(ctx context.Context, kFactor int) (*models.EloSettings, error)
}

// SettingsService ELO 설정 (K-factor) 관리
type SettingsService struct {
	store          settingsStore
	defaultKFactor int
	publisher      Publisher
}

func NewSettingsService(store settingsStore, defaultKFactor int, publisher Publisher) *SettingsService {
	return &SettingsService{
		store:          store,
		defaultKFactor: defaultKFactor,
		publisher:      publisherOrNoop(publisher),
	}
}

// GetKFactor 저장된 K-factor, 설정 행이 없으면 기본값
func (s *SettingsService) GetKFactor(ctx context.Context) (int, error) {
	settings, err := s.store.GetElo(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get k-factor: %w", err)
	}
	if settings == nil {
		return s.defaultKFactor, nil
	}

	return settings.KFactor, nil
}

// UpdateKFactor K-factor 변경 (MinKFactor..MaxKFactor)
func (s *SettingsService) UpdateKFactor(ctx context.Context, kFactor int) (*models.EloSettings, error) {
	if kFactor < MinKFactor || kFactor > MaxKFactor {
		return nil, fmt.Errorf("%w: %d not in [%d, %d]", ErrInvalidKFactor, kFactor, MinKFactor, MaxKFactor)
	}

	settings, err := s.store.UpdateKFactor(ctx, kFactor)
	if err != nil {
		return nil, fmt.Errorf("failed to update k-factor: %w", err)
	}

	logger.Info("K-factor updated", "kFactor", settings.KFactor)
	s.publisher.Broadcast(EventSettingsUpdated, settings)

	return settings, nil
}
