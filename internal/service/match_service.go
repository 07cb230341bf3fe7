package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/kickoff-elo/kickoff-backend/internal/models"
	"github.com/kickoff-elo/kickoff-backend/pkg/logger"
)

type matchStore interface {
	Create(ctx context.Context, clubA, clubB *string, teamA, teamB string, scoreA, scoreB *int) (*models.Match, error)
	FindRecent(ctx context.Context) ([]*models.Match, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type MatchService struct {
	matchRepo matchStore
	publisher Publisher
}

func NewMatchService(matchRepo matchStore, publisher Publisher) *MatchService {
	return &MatchService{
		matchRepo: matchRepo,
		publisher: publisherOrNoop(publisher),
	}
}

// Create 매치 결과 기록. 팀은 쉼표로 이어 붙여 저장
func (s *MatchService) Create(ctx context.Context, req models.CreateMatchRequest) (*models.Match, error) {
	teamA, err := joinTeam(req.TeamA)
	if err != nil {
		return nil, fmt.Errorf("team A: %w", err)
	}
	teamB, err := joinTeam(req.TeamB)
	if err != nil {
		return nil, fmt.Errorf("team B: %w", err)
	}
	if (req.ScoreA != nil && *req.ScoreA < 0) || (req.ScoreB != nil && *req.ScoreB < 0) {
		return nil, fmt.Errorf("%w: negative score", ErrInvalidInput)
	}

	match, err := s.matchRepo.Create(ctx, optionalString(req.ClubA), optionalString(req.ClubB), teamA, teamB, req.ScoreA, req.ScoreB)
	if err != nil {
		return nil, fmt.Errorf("failed to create match: %w", err)
	}

	logger.Info("Match added",
		"matchId", match.ID,
		"teamA", teamA,
		"teamB", teamB,
		"scoreA", match.ScoreA,
		"scoreB", match.ScoreB,
	)
	s.publisher.Broadcast(EventMatchCreated, match)

	return match, nil
}

// List 최신순 매치 목록
func (s *MatchService) List(ctx context.Context) ([]*models.Match, error) {
	matches, err := s.matchRepo.FindRecent(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}

	return matches, nil
}

// Delete 매치 삭제
func (s *MatchService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.matchRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete match: %w", err)
	}
	if !deleted {
		return ErrMatchNotFound
	}

	logger.Info("Match deleted", "matchId", id)
	s.publisher.Broadcast(EventMatchDeleted, map[string]int64{"id": id})

	return nil
}

func joinTeam(names []string) (string, error) {
	cleaned := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if strings.Contains(name, ",") {
			return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
		}
		cleaned = append(cleaned, name)
	}
	if len(cleaned) == 0 {
		return "", ErrEmptyTeam
	}

	return strings.Join(cleaned, ","), nil
}

func optionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
