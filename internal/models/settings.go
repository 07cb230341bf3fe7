package models

import "time"

// EloSettings elo_settings 싱글톤 행 (id = 1)
type EloSettings struct {
	KFactor   int       `json:"kFactor" db:"k_factor"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

type UpdateEloSettingsRequest struct {
	KFactor int `json:"kFactor" binding:"required"`
}
