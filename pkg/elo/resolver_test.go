package elo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"Alice", "alice"},
		{"  Bob  ", "bob"},
		{"{Carol}", "carol"},
		{"(Dave)", "dave"},
		{"{ (Eve) }", "eve"},
		{"{}", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeName(tt.raw))
		})
	}
}

func TestResolver_ResolveTeam(t *testing.T) {
	resolver := NewResolver([]Player{
		{ID: 1, Name: "Alice"},
		{ID: 2, Name: "Bob"},
		{ID: 3, Name: " carol "},
	})

	t.Run("braced postgres style list", func(t *testing.T) {
		assert.Equal(t, []int64{1, 2}, resolver.ResolveTeam("{Alice,Bob}"))
	})

	t.Run("case and whitespace are ignored", func(t *testing.T) {
		assert.Equal(t, []int64{3, 1}, resolver.ResolveTeam(" CAROL , alice"))
	})

	t.Run("unknown tokens are dropped", func(t *testing.T) {
		assert.Equal(t, []int64{2}, resolver.ResolveTeam("Zed,Bob,,Yan"))
	})

	t.Run("empty field resolves to nothing", func(t *testing.T) {
		assert.Empty(t, resolver.ResolveTeam(""))
		assert.Empty(t, resolver.ResolveTeam("{}"))
	})
}

func TestResolver_LaterPlayerWinsNameCollision(t *testing.T) {
	resolver := NewResolver([]Player{
		{ID: 1, Name: "alex"},
		{ID: 7, Name: "{ALEX}"},
	})

	assert.Equal(t, []int64{7}, resolver.ResolveTeam("Alex"))
}
