package models

// CatalogFilm is the subset of a SWAPI film document the service relies on.
type CatalogFilm struct {
	Title       string   `json:"title" validate:"required"`
	ReleaseDate string   `json:"release_date" validate:"required"`
	Characters  []string `json:"characters" validate:"required,dive,required"`
}

type CatalogCharacter struct {
	Name string `json:"name" validate:"required"`
}
