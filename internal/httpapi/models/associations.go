package models

// Explicit join models: each row links one game to one platform, developer or
// genre. The schema has no uniqueness constraint per (game, target) pair;
// writers dedupe target ids before inserting.

type GamePlatform struct {
	ID         int64 `json:"id" gorm:"primaryKey;autoIncrement"`
	GameID     int64 `json:"game_id" gorm:"index;not null"`
	PlatformID int64 `json:"platform_id" gorm:"index;not null"`
}

func (GamePlatform) TableName() string {
	return "game_platforms"
}

type GameDeveloper struct {
	ID          int64 `json:"id" gorm:"primaryKey;autoIncrement"`
	GameID      int64 `json:"game_id" gorm:"index;not null"`
	DeveloperID int64 `json:"developer_id" gorm:"index;not null"`
}

func (GameDeveloper) TableName() string {
	return "game_developers"
}

type GameGenre struct {
	ID      int64 `json:"id" gorm:"primaryKey;autoIncrement"`
	GameID  int64 `json:"game_id" gorm:"index;not null"`
	GenreID int64 `json:"genre_id" gorm:"index;not null"`
}

func (GameGenre) TableName() string {
	return "game_genres"
}
