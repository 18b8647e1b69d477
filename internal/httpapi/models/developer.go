package models

import "time"

type Developer struct {
	ID      int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name    string    `json:"name" gorm:"uniqueIndex;not null"`
	Founded time.Time `json:"founded" gorm:"not null"`
	Country string    `json:"country" gorm:"not null"`
}

func (Developer) TableName() string {
	return "developers"
}
