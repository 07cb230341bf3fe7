package models

import "time"

type Match struct {
	ID     int64     `json:"id" db:"id"`
	Time   time.Time `json:"time" db:"time"`
	ClubA  *string   `json:"clubA" db:"club_a"`
	ClubB  *string   `json:"clubB" db:"club_b"`
	TeamA  *string   `json:"teamA" db:"team_a"`
	TeamB  *string   `json:"teamB" db:"team_b"`
	ScoreA *int      `json:"scoreA" db:"score_a"`
	ScoreB *int      `json:"scoreB" db:"score_b"`
}

type CreateMatchRequest struct {
	ClubA  string   `json:"clubA" binding:"max=100"`
	ClubB  string   `json:"clubB" binding:"max=100"`
	TeamA  []string `json:"teamA" binding:"required,min=1,dive,required"`
	TeamB  []string `json:"teamB" binding:"required,min=1,dive,required"`
	ScoreA *int     `json:"scoreA" binding:"omitempty,min=0"`
	ScoreB *int     `json:"scoreB" binding:"omitempty,min=0"`
}
