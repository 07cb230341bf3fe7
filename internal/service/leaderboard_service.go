package service

import (
	"context"
	"fmt"
	"time"

	"github.com/kickoff-elo/kickoff-backend/internal/models"
)

type standingsSource interface {
	PlayerStandings(ctx context.Context, since time.Time) ([]*models.PlayerStanding, error)
	ClubStandings(ctx context.Context, since time.Time) ([]*models.ClubStanding, error)
	DuoStandings(ctx context.Context, since time.Time) ([]*models.DuoStanding, error)
}

// LeaderboardService 승률 기반 리더보드 (ELO와 별개)
type LeaderboardService struct {
	leaderboardRepo standingsSource
}

func NewLeaderboardService(leaderboardRepo standingsSource) *LeaderboardService {
	return &LeaderboardService{leaderboardRepo: leaderboardRepo}
}

// Players 플레이어 리더보드
func (s *LeaderboardService) Players(ctx context.Context, since time.Time) ([]*models.PlayerStanding, error) {
	standings, err := s.leaderboardRepo.PlayerStandings(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("failed to get player leaderboard: %w", err)
	}
	return standings, nil
}

// Clubs 클럽 리더보드
func (s *LeaderboardService) Clubs(ctx context.Context, since time.Time) ([]*models.ClubStanding, error) {
	standings, err := s.leaderboardRepo.ClubStandings(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("failed to get club leaderboard: %w", err)
	}
	return standings, nil
}

// Duos 2인 이상 라인업 리더보드
func (s *LeaderboardService) Duos(ctx context.Context, since time.Time) ([]*models.DuoStanding, error) {
	standings, err := s.leaderboardRepo.DuoStandings(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("failed to get duo leaderboard: %w", err)
	}
	return standings, nil
}
