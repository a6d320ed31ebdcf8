package models

import "time"

type Film struct {
	ID          uint      `gorm:"primaryKey" json:"id" example:"1"`
	Title       string    `gorm:"not null;index" json:"title" example:"A New Hope"`
	ReleaseDate string    `json:"releaseDate" example:"1977-05-25"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	// Characters is kept in film_characters order and written by the
	// film repository, never by gorm associations.
	Characters []Character `gorm:"-" json:"characters"`
}

func (Film) TableName() string {
	return "films"
}

// FilmCharacter is the film <-> character join row.
type FilmCharacter struct {
	FilmID      uint `gorm:"primaryKey;autoIncrement:false" json:"film_id"`
	CharacterID uint `gorm:"primaryKey;autoIncrement:false;index" json:"character_id"`
	Position    int  `gorm:"not null" json:"position"`
}

func (FilmCharacter) TableName() string {
	return "film_characters"
}
