package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/kickoff-elo/kickoff-backend/internal/models"
	"github.com/kickoff-elo/kickoff-backend/pkg/logger"
)

type playerStore interface {
	Create(ctx context.Context, name string) (*models.Player, bool, error)
	FindAll(ctx context.Context) ([]*models.Player, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type PlayerService struct {
	playerRepo playerStore
	publisher  Publisher
}

func NewPlayerService(playerRepo playerStore, publisher Publisher) *PlayerService {
	return &PlayerService{
		playerRepo: playerRepo,
		publisher:  publisherOrNoop(publisher),
	}
}

// Create 플레이어 추가. 같은 이름이 이미 있으면 기존 플레이어와 false 반환
func (s *PlayerService) Create(ctx context.Context, name string) (*models.Player, bool, error) {
	name = strings.TrimSpace(name)
	// 쉼표와 괄호는 팀 문자열 구분자라서 이름에 쓸 수 없음
	if name == "" || strings.ContainsAny(name, ",{}()") {
		return nil, false, ErrInvalidName
	}

	player, created, err := s.playerRepo.Create(ctx, name)
	if err != nil {
		return nil, false, fmt.Errorf("failed to create player: %w", err)
	}

	if created {
		logger.Info("Player added", "playerId", player.ID, "name", player.Name)
		s.publisher.Broadcast(EventPlayerCreated, player)
	}

	return player, created, nil
}

// List 전체 플레이어 (id 오름차순)
func (s *PlayerService) List(ctx context.Context) ([]*models.Player, error) {
	players, err := s.playerRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}

	return players, nil
}

// Delete 플레이어 삭제 (기존 매치 기록은 유지)
func (s *PlayerService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.playerRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete player: %w", err)
	}
	if !deleted {
		return ErrPlayerNotFound
	}

	logger.Info("Player deleted", "playerId", id)
	s.publisher.Broadcast(EventPlayerDeleted, map[string]int64{"id": id})

	return nil
}
