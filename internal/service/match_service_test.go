package service

import (
	"context"
	"testing"

	"github.com/kickoff-elo/kickoff-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoinTeam(t *testing.T) {
	tests := []struct {
		name    string
		names   []string
		want    string
		wantErr error
	}{
		{"single", []string{"Alice"}, "Alice", nil},
		{"pair", []string{"Alice", "Bob"}, "Alice,Bob", nil},
		{"trims and skips blanks", []string{" Alice ", "", "  ", "Bob"}, "Alice,Bob", nil},
		{"all blank", []string{"", " "}, "", ErrEmptyTeam},
		{"empty", nil, "", ErrEmptyTeam},
		{"comma in name", []string{"Alice,Bob"}, "", ErrInvalidName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := joinTeam(tt.names)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMatchService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("저장 및 이벤트", func(t *testing.T) {
		repo := &fakeMatchRepo{}
		pub := &recordingPublisher{}
		svc := NewMatchService(repo, pub)

		match, err := svc.Create(ctx, models.CreateMatchRequest{
			ClubA:  "Arsenal",
			ClubB:  " ",
			TeamA:  []string{"Alice", "Bob"},
			TeamB:  []string{"Carol"},
			ScoreA: intPtr(2),
			ScoreB: intPtr(1),
		})
		require.NoError(t, err)

		assert.Equal(t, "Arsenal", *match.ClubA)
		assert.Nil(t, match.ClubB)
		assert.Equal(t, "Alice,Bob", *match.TeamA)
		assert.Equal(t, "Carol", *match.TeamB)
		assert.Equal(t, []string{EventMatchCreated}, pub.types())
	})

	t.Run("점수 없는 매치 허용", func(t *testing.T) {
		svc := NewMatchService(&fakeMatchRepo{}, nil)
		match, err := svc.Create(ctx, models.CreateMatchRequest{
			TeamA: []string{"Alice"},
			TeamB: []string{"Bob"},
		})
		require.NoError(t, err)
		assert.Nil(t, match.ScoreA)
		assert.Nil(t, match.ScoreB)
	})

	t.Run("빈 팀", func(t *testing.T) {
		repo := &fakeMatchRepo{}
		svc := NewMatchService(repo, nil)
		_, err := svc.Create(ctx, models.CreateMatchRequest{
			TeamA: []string{"Alice"},
			TeamB: []string{" "},
		})
		assert.ErrorIs(t, err, ErrEmptyTeam)
		assert.Empty(t, repo.matches)
	})

	t.Run("음수 점수", func(t *testing.T) {
		svc := NewMatchService(&fakeMatchRepo{}, nil)
		_, err := svc.Create(ctx, models.CreateMatchRequest{
			TeamA:  []string{"Alice"},
			TeamB:  []string{"Bob"},
			ScoreA: intPtr(-1),
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestMatchService_ListAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := &fakeMatchRepo{}
	pub := &recordingPublisher{}
	svc := NewMatchService(repo, pub)

	first, err := svc.Create(ctx, models.CreateMatchRequest{TeamA: []string{"A"}, TeamB: []string{"B"}})
	require.NoError(t, err)
	second, err := svc.Create(ctx, models.CreateMatchRequest{TeamA: []string{"C"}, TeamB: []string{"D"}})
	require.NoError(t, err)

	matches, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, second.ID, matches[0].ID)

	require.NoError(t, svc.Delete(ctx, first.ID))
	assert.ErrorIs(t, svc.Delete(ctx, first.ID), ErrMatchNotFound)
	assert.Equal(t, []string{EventMatchCreated, EventMatchCreated, EventMatchDeleted}, pub.types())
}
