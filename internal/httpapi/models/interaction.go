package models

import "time"

// Interaction is a user's relationship to a game: an optional 1-10 score, an
// optional review text and a played flag. At most one interaction may exist
// per (user, game) pair; the composite unique index backs the service-level
// duplicate check under concurrent submissions.
type Interaction struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    int64     `json:"user_id" gorm:"not null;uniqueIndex:idx_interactions_user_game"`
	GameID    int64     `json:"game_id" gorm:"not null;uniqueIndex:idx_interactions_user_game;index"`
	Score     *int      `json:"score,omitempty" gorm:"check:score >= 1 AND score <= 10"`
	Review    *string   `json:"review,omitempty" gorm:"size:2000"`
	Played    bool      `json:"played" gorm:"not null;default:false"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Associations
	User User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Game Game `json:"game,omitempty" gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE;"`
}

func (Interaction) TableName() string {
	return "interactions"
}
