package repository

import (
	"context"
	"errors"
	"time"

	"favorites-backend/internal/database"
	"favorites-backend/internal/models"

	"gorm.io/gorm"
)

type ListRepository interface {
	// Create inserts the list and links its films in slice order. A film
	// repeated in list.Films is linked once, at its first position, and
	// list.Films is rewritten to match what was stored.
	Create(ctx context.Context, list *models.List) error
	FindAll(ctx context.Context, page, limit int, search string) ([]models.List, int64, error)
	FindByIDWithFilms(ctx context.Context, id uint) (*models.List, error)
	Count(ctx context.Context) (int64, error)
}

type listRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewListRepository(db *database.Database) ListRepository {
	return &listRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *listRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *listRepository) Create(ctx context.Context, list *models.List) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	films := make([]models.Film, 0, len(list.Films))
	seen := make(map[uint]bool, len(list.Films))
	for _, film := range list.Films {
		if seen[film.ID] {
			continue
		}
		seen[film.ID] = true
		films = append(films, film)
	}

	err := r.db.Transaction(ctx, func(tx *database.Database) error {
		if err := tx.DB.Create(list).Error; err != nil {
			return err
		}
		if len(films) == 0 {
			return nil
		}

		links := make([]models.ListFilm, 0, len(films))
		for i, film := range films {
			links = append(links, models.ListFilm{
				ListID:   list.ID,
				FilmID:   film.ID,
				Position: i,
			})
		}
		return tx.DB.Create(&links).Error
	})
	if err != nil {
		return err
	}

	list.Films = films
	return nil
}

// FindAll returns one page of lists ordered by id, optionally filtered by a
// substring of the list name, together with the total number of matches.
func (r *listRepository) FindAll(ctx context.Context, page, limit int, search string) ([]models.List, int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var lists []models.List
	var total int64

	query := r.db.WithContext(ctx).Model(&models.List{})

	if search != "" {
		query = query.Where("list_name LIKE ?", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.Order("id ASC").Offset(offset).Limit(limit).Find(&lists).Error; err != nil {
		return nil, 0, err
	}

	return lists, total, nil
}

// FindByIDWithFilms loads a list with its films and each film's characters,
// all in insertion order. It returns nil when the list does not exist.
func (r *listRepository) FindByIDWithFilms(ctx context.Context, id uint) (*models.List, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	db := r.db.WithContext(ctx)

	var list models.List
	err := db.First(&list, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var links []models.ListFilm
	if err := db.Where("list_id = ?", list.ID).Order("position").Find(&links).Error; err != nil {
		return nil, err
	}

	list.Films = []models.Film{}
	if len(links) == 0 {
		return &list, nil
	}

	filmIDs := make([]uint, 0, len(links))
	for _, link := range links {
		filmIDs = append(filmIDs, link.FilmID)
	}

	var films []models.Film
	if err := db.Where("id IN ?", filmIDs).Find(&films).Error; err != nil {
		return nil, err
	}

	byID := make(map[uint]models.Film, len(films))
	for _, film := range films {
		byID[film.ID] = film
	}
	for _, link := range links {
		if film, ok := byID[link.FilmID]; ok {
			list.Films = append(list.Films, film)
		}
	}

	if err := attachCharacters(db, list.Films); err != nil {
		return nil, err
	}
	return &list, nil
}

func (r *listRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var total int64
	err := r.db.WithContext(ctx).Model(&models.List{}).Count(&total).Error
	return total, err
}
