package models

import "time"

type Game struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string    `json:"name" gorm:"not null"`
	Description string    `json:"description" gorm:"not null"`
	CoverURL    string    `json:"cover_url" gorm:"not null"`
	ReleaseDate time.Time `json:"release_date" gorm:"not null;index"`
	CreatedAt   time.Time `json:"created_at,omitempty" gorm:"autoCreateTime"`
}

func (Game) TableName() string {
	return "games"
}

// GameSummary is one row of the grouped listing queries: game columns plus
// the aggregated average score. AvgScore is nil when the game has no scored
// interactions.
type GameSummary struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	CoverURL    string    `json:"cover_url"`
	ReleaseDate time.Time `json:"release_date"`
	AvgScore    *float64  `json:"avg_score"`
}
