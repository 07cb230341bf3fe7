package models

// Standing 리더보드 공통 집계 필드 (승 3점, 무 1점)
type Standing struct {
	Wins          int     `json:"wins" db:"wins"`
	Draws         int     `json:"draws" db:"draws"`
	Losses        int     `json:"losses" db:"losses"`
	TotalMatches  int     `json:"totalMatches" db:"total_matches"`
	Points        int     `json:"points" db:"points"`
	WinPercentage float64 `json:"winPercentage" db:"win_percentage"`
	GoalsFor      int     `json:"goalsFor" db:"goals_for"`
	GoalsAgainst  int     `json:"goalsAgainst" db:"goals_against"`
}

type PlayerStanding struct {
	Name string `json:"name" db:"name"`
	Standing
}

type ClubStanding struct {
	Club string `json:"club" db:"club"`
	Standing
}

// DuoStanding 2인 이상 라인업 (이름 정렬 후 " & "로 연결)
type DuoStanding struct {
	Lineup string `json:"lineup" db:"lineup"`
	Standing
}
