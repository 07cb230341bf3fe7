package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayerService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("이름 앞뒤 공백 제거", func(t *testing.T) {
		pub := &recordingPublisher{}
		svc := NewPlayerService(&fakePlayerRepo{}, pub)

		player, created, err := svc.Create(ctx, "  Alice ")
		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, "Alice", player.Name)
		assert.Equal(t, []string{EventPlayerCreated}, pub.types())
	})

	t.Run("중복 이름은 기존 플레이어 반환", func(t *testing.T) {
		pub := &recordingPublisher{}
		svc := NewPlayerService(&fakePlayerRepo{}, pub)

		first, _, err := svc.Create(ctx, "Alice")
		require.NoError(t, err)
		second, created, err := svc.Create(ctx, "Alice")
		require.NoError(t, err)

		assert.False(t, created)
		assert.Equal(t, first.ID, second.ID)
		assert.Len(t, pub.types(), 1)
	})

	invalid := []string{"", "   ", "Alice,Bob", "{Alice}", "Bob (GK)"}
	for _, name := range invalid {
		t.Run("invalid "+name, func(t *testing.T) {
			svc := NewPlayerService(&fakePlayerRepo{}, nil)
			_, _, err := svc.Create(ctx, name)
			assert.ErrorIs(t, err, ErrInvalidName)
		})
	}

	t.Run("저장소 오류", func(t *testing.T) {
		svc := NewPlayerService(&fakePlayerRepo{err: errStore}, nil)
		_, _, err := svc.Create(ctx, "Alice")
		assert.ErrorIs(t, err, errStore)
	})
}

func TestPlayerService_Delete(t *testing.T) {
	ctx := context.Background()
	pub := &recordingPublisher{}
	repo := &fakePlayerRepo{}
	svc := NewPlayerService(repo, pub)

	player, _, err := svc.Create(ctx, "Alice")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, player.ID))
	assert.Empty(t, repo.players)
	assert.Equal(t, []string{EventPlayerCreated, EventPlayerDeleted}, pub.types())

	assert.ErrorIs(t, svc.Delete(ctx, player.ID), ErrPlayerNotFound)
}
