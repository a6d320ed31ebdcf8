package models

import "time"

// Character is a catalog character shared by any number of films.
// Name is the dedup key; it is not a database constraint.
type Character struct {
	ID        uint      `gorm:"primaryKey" json:"id" example:"1"`
	Name      string    `gorm:"not null;index" json:"name" example:"Luke Skywalker"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Character) TableName() string {
	return "characters"
}
