package repository

import (
	"context"
	"errors"
	"time"

	"favorites-backend/internal/database"
	"favorites-backend/internal/models"

	"gorm.io/gorm"
)

type FilmRepository interface {
	// Create inserts the film and links its characters in slice order.
	// Every character must already be persisted.
	Create(ctx context.Context, film *models.Film) error
	FindByTitle(ctx context.Context, title string) (*models.Film, error)
	Count(ctx context.Context) (int64, error)
}

type filmRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewFilmRepository(db *database.Database) FilmRepository {
	return &filmRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *filmRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *filmRepository) Create(ctx context.Context, film *models.Film) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.Transaction(ctx, func(tx *database.Database) error {
		if err := tx.DB.Create(film).Error; err != nil {
			return err
		}

		links := make([]models.FilmCharacter, 0, len(film.Characters))
		seen := make(map[uint]bool, len(film.Characters))
		for _, character := range film.Characters {
			if seen[character.ID] {
				continue
			}
			seen[character.ID] = true
			links = append(links, models.FilmCharacter{
				FilmID:      film.ID,
				CharacterID: character.ID,
				Position:    len(links),
			})
		}
		if len(links) == 0 {
			return nil
		}
		return tx.DB.Create(&links).Error
	})
}

// FindByTitle returns the film with exactly this title and its characters, or nil.
func (r *filmRepository) FindByTitle(ctx context.Context, title string) (*models.Film, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	db := r.db.WithContext(ctx)

	var film models.Film
	err := db.Where("title = ?", title).First(&film).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	films := []models.Film{film}
	if err := attachCharacters(db, films); err != nil {
		return nil, err
	}
	return &films[0], nil
}

func (r *filmRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var total int64
	err := r.db.WithContext(ctx).Model(&models.Film{}).Count(&total).Error
	return total, err
}

// attachCharacters fills Characters on every film, in film_characters order.
func attachCharacters(db *gorm.DB, films []models.Film) error {
	if len(films) == 0 {
		return nil
	}

	filmIDs := make([]uint, 0, len(films))
	for _, film := range films {
		filmIDs = append(filmIDs, film.ID)
	}

	var links []models.FilmCharacter
	if err := db.Where("film_id IN ?", filmIDs).
		Order("film_id, position").
		Find(&links).Error; err != nil {
		return err
	}

	byID := make(map[uint]models.Character)
	if len(links) > 0 {
		characterIDs := make([]uint, 0, len(links))
		for _, link := range links {
			characterIDs = append(characterIDs, link.CharacterID)
		}

		var characters []models.Character
		if err := db.Where("id IN ?", characterIDs).Find(&characters).Error; err != nil {
			return err
		}
		for _, character := range characters {
			byID[character.ID] = character
		}
	}

	byFilm := make(map[uint][]models.Character, len(films))
	for _, link := range links {
		if character, ok := byID[link.CharacterID]; ok {
			byFilm[link.FilmID] = append(byFilm[link.FilmID], character)
		}
	}

	for i := range films {
		films[i].Characters = byFilm[films[i].ID]
		if films[i].Characters == nil {
			films[i].Characters = []models.Character{}
		}
	}
	return nil
}
