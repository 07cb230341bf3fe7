package models

type Club struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
	Tier int    `json:"tier" db:"tier"`
}
