package models

import "time"

type Player struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

type CreatePlayerRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// PlayerRating 재계산된 플레이어 ELO
type PlayerRating struct {
	PlayerID int64  `json:"playerId"`
	Name     string `json:"name"`
	ELO      int    `json:"elo"`
}
