package service

import (
	"context"
	"fmt"

	"github.com/kickoff-elo/kickoff-backend/internal/models"
)

type clubLister interface {
	FindAll(ctx context.Context) ([]*models.Club, error)
}

type ClubService struct {
	clubRepo clubLister
}

func NewClubService(clubRepo clubLister) *ClubService {
	return &ClubService{clubRepo: clubRepo}
}

// List 티어, 이름 순 클럽 목록
func (s *ClubService) List(ctx context.Context) ([]*models.Club, error) {
	clubs, err := s.clubRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list clubs: %w", err)
	}

	return clubs, nil
}
