package models

import "time"

type List struct {
	ID        uint      `gorm:"primaryKey" json:"id" example:"1"`
	ListName  string    `gorm:"column:list_name;not null;index" json:"listName" example:"My List"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Films []Film `gorm:"-" json:"films"`
}

func (List) TableName() string {
	return "lists"
}

// ListFilm is the list <-> film join row.
type ListFilm struct {
	ListID   uint `gorm:"primaryKey;autoIncrement:false" json:"list_id"`
	FilmID   uint `gorm:"primaryKey;autoIncrement:false;index" json:"film_id"`
	Position int  `gorm:"not null" json:"position"`
}

func (ListFilm) TableName() string {
	return "list_films"
}

// ListSummary is the projection returned by list search.
type ListSummary struct {
	ID   uint   `json:"id" example:"1"`
	Name string `json:"name" example:"My List"`
}

// CharacterFilms is one row of a list export: a character and the
// comma-joined titles of the films it appears in.
type CharacterFilms struct {
	Character string `json:"character" example:"Leia Organa"`
	Movies    string `json:"movies" example:"A New Hope, The Empire Strikes Back"`
}
