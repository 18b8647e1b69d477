package models

type Platform struct {
	ID           int64   `json:"id" gorm:"primaryKey;autoIncrement"`
	Name         string  `json:"name" gorm:"uniqueIndex;not null"`
	ReleaseYear  int     `json:"release_year" gorm:"not null"`
	Manufacturer string  `json:"manufacturer" gorm:"not null"`
	LogoURL      *string `json:"logo_url,omitempty"`
}

func (Platform) TableName() string {
	return "platforms"
}
