package service

import (
	"context"
	"testing"

	"github.com/kickoff-elo/kickoff-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsService_GetKFactor(t *testing.T) {
	ctx := context.Background()

	t.Run("설정 행 없으면 기본값", func(t *testing.T) {
		svc := NewSettingsService(&fakeSettingsRepo{}, 24, nil)
		k, err := svc.GetKFactor(ctx)
		require.NoError(t, err)
		assert.Equal(t, 24, k)
	})

	t.Run("저장된 값", func(t *testing.T) {
		svc := NewSettingsService(&fakeSettingsRepo{settings: &models.EloSettings{KFactor: 40}}, 24, nil)
		k, err := svc.GetKFactor(ctx)
		require.NoError(t, err)
		assert.Equal(t, 40, k)
	})

	t.Run("저장소 오류", func(t *testing.T) {
		svc := NewSettingsService(&fakeSettingsRepo{err: errStore}, 24, nil)
		_, err := svc.GetKFactor(ctx)
		assert.ErrorIs(t, err, errStore)
	})
}

func TestSettingsService_UpdateKFactor(t *testing.T) {
	tests := []struct {
		name    string
		kFactor int
		wantErr error
	}{
		{"lower bound", MinKFactor, nil},
		{"upper bound", MaxKFactor, nil},
		{"typical", 32, nil},
		{"below range", MinKFactor - 1, ErrInvalidKFactor},
		{"above range", MaxKFactor + 1, ErrInvalidKFactor},
		{"zero", 0, ErrInvalidKFactor},
		{"negative", -24, ErrInvalidKFactor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeSettingsRepo{}
			pub := &recordingPublisher{}
			svc := NewSettingsService(repo, 24, pub)

			settings, err := svc.UpdateKFactor(context.Background(), tt.kFactor)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, repo.settings)
				assert.Empty(t, pub.types())
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.kFactor, settings.KFactor)
			assert.Equal(t, []string{EventSettingsUpdated}, pub.types())

			k, err := svc.GetKFactor(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.kFactor, k)
		})
	}
}
