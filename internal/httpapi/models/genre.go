package models

type Genre struct {
	ID          int64   `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string  `json:"name" gorm:"uniqueIndex;not null"`
	Description *string `json:"description,omitempty"`
}

func (Genre) TableName() string {
	return "genres"
}
