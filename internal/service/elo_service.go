package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/kickoff-elo/kickoff-backend/internal/models"
	"github.com/kickoff-elo/kickoff-backend/pkg/elo"
	"github.com/kickoff-elo/kickoff-backend/pkg/logger"
)

type playerLister interface {
	FindAll(ctx context.Context) ([]*models.Player, error)
}

type chronologicalMatchLister interface {
	FindChronological(ctx context.Context) ([]*models.Match, error)
}

type kFactorSource interface {
	GetKFactor(ctx context.Context) (int, error)
}

// Ratings ELO 재계산 결과
type Ratings struct {
	KFactor int                   `json:"kFactor"`
	Ratings []models.PlayerRating `json:"ratings"`
}

// ELOService 저장된 전체 매치 기록으로 플레이어 ELO를 매번 처음부터 재계산
type ELOService struct {
	playerRepo playerLister
	matchRepo  chronologicalMatchLister
	settings   kFactorSource
	engine     *elo.Engine
}

// NewELOService ELO 서비스 생성
func NewELOService(playerRepo playerLister, matchRepo chronologicalMatchLister, settings kFactorSource) *ELOService {
	return &ELOService{
		playerRepo: playerRepo,
		matchRepo:  matchRepo,
		settings:   settings,
		engine:     elo.NewEngine(elo.DefaultParams),
	}
}

// ComputeRatings 현재 K-factor로 전체 레이팅 계산 (플레이어 id 오름차순)
func (s *ELOService) ComputeRatings(ctx context.Context) (*Ratings, error) {
	kFactor, err := s.settings.GetKFactor(ctx)
	if err != nil {
		return nil, err
	}

	players, err := s.playerRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load players: %w", err)
	}

	matches, err := s.matchRepo.FindChronological(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load matches: %w", err)
	}

	result, err := s.engine.Compute(toEloPlayers(players), toEloMatches(matches), kFactor)
	if err != nil {
		return nil, fmt.Errorf("failed to compute ratings: %w", err)
	}

	logger.Debug("Ratings computed",
		"players", len(players),
		"matches", len(matches),
		"processed", result.Processed,
		"skipped", result.Skipped,
		"kFactor", kFactor,
	)

	ratings := make([]models.PlayerRating, 0, len(players))
	for _, p := range players {
		ratings = append(ratings, models.PlayerRating{
			PlayerID: p.ID,
			Name:     p.Name,
			ELO:      result.Ratings[p.ID],
		})
	}
	sort.Slice(ratings, func(i, j int) bool {
		return ratings[i].PlayerID < ratings[j].PlayerID
	})

	return &Ratings{KFactor: kFactor, Ratings: ratings}, nil
}

func toEloPlayers(players []*models.Player) []elo.Player {
	out := make([]elo.Player, 0, len(players))
	for _, p := range players {
		out = append(out, elo.Player{ID: p.ID, Name: p.Name})
	}
	return out
}

func toEloMatches(matches []*models.Match) []elo.Match {
	out := make([]elo.Match, 0, len(matches))
	for _, m := range matches {
		out = append(out, elo.Match{
			Time:   m.Time,
			TeamA:  derefString(m.TeamA),
			TeamB:  derefString(m.TeamB),
			ScoreA: m.ScoreA,
			ScoreB: m.ScoreB,
		})
	}
	return out
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
