package services

import (
	"context"

	"favorites-backend/internal/config"
	"favorites-backend/internal/metrics"
	"favorites-backend/internal/models"
	"favorites-backend/internal/repository"

	"github.com/sirupsen/logrus"
)

type FavoritesService interface {
	// CreateList resolves every catalog film id, in order, into a stored Film
	// (reusing films by title and characters by name) and saves a new List.
	CreateList(ctx context.Context, listName string, filmIDs []int) (*models.List, error)
	// SearchLists pages through lists ordered by id. page below 1 means 1 and
	// limit below 1 means the configured default page size.
	SearchLists(ctx context.Context, search string, page, limit int) (*ListPage, error)
	GetList(ctx context.Context, id uint) (*models.List, error)
}

// ListPage is one page of list summaries with the paging actually applied.
type ListPage struct {
	Lists []models.ListSummary
	Total int64
	Page  int
	Limit int
}

type favoritesService struct {
	store           repository.Store
	catalog         CatalogClient
	defaultPageSize int
	atomicCreate    bool
	logger          *logrus.Logger
}

func NewFavoritesService(store repository.Store, catalog CatalogClient, cfg config.FavoritesConfig, logger *logrus.Logger) FavoritesService {
	pageSize := cfg.DefaultPageSize
	if pageSize < 1 {
		pageSize = 10
	}

	return &favoritesService{
		store:           store,
		catalog:         catalog,
		defaultPageSize: pageSize,
		atomicCreate:    cfg.AtomicCreate,
		logger:          logger,
	}
}

// CreateList is not atomic unless atomicCreate is set: films and characters
// stored for earlier ids survive a failure on a later id.
func (s *favoritesService) CreateList(ctx context.Context, listName string, filmIDs []int) (*models.List, error) {
	list := &models.List{ListName: listName}

	build := func(store repository.Store) error {
		films := make([]models.Film, 0, len(filmIDs))
		for _, filmID := range filmIDs {
			film, err := s.resolveFilm(ctx, store, filmID)
			if err != nil {
				return err
			}
			films = append(films, *film)
		}

		list.Films = films
		return store.Lists().Create(ctx, list)
	}

	var err error
	if s.atomicCreate {
		err = s.store.Atomic(ctx, build)
	} else {
		err = build(s.store)
	}
	if err != nil {
		return nil, err
	}

	metrics.ListsCreated.Inc()
	s.logger.WithFields(logrus.Fields{
		"list_id":   list.ID,
		"list_name": list.ListName,
		"films":     len(list.Films),
	}).Info("Favorite list created")

	return list, nil
}

func (s *favoritesService) resolveFilm(ctx context.Context, store repository.Store, filmID int) (*models.Film, error) {
	catalogFilm, err := s.catalog.GetFilm(ctx, filmID)
	if err != nil || catalogFilm == nil {
		return nil, ErrFilmNotFound
	}

	existing, err := store.Films().FindByTitle(ctx, catalogFilm.Title)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		metrics.EntitiesReused.WithLabelValues("film").Inc()
		return existing, nil
	}

	characters := make([]models.Character, 0, len(catalogFilm.Characters))
	for _, url := range catalogFilm.Characters {
		character, err := s.resolveCharacter(ctx, store, url)
		if err != nil {
			return nil, err
		}
		characters = append(characters, *character)
	}

	film := &models.Film{
		Title:       catalogFilm.Title,
		ReleaseDate: catalogFilm.ReleaseDate,
		Characters:  characters,
	}
	if err := store.Films().Create(ctx, film); err != nil {
		return nil, err
	}

	metrics.EntitiesCreated.WithLabelValues("film").Inc()
	s.logger.WithFields(logrus.Fields{
		"film_id":    film.ID,
		"title":      film.Title,
		"characters": len(film.Characters),
	}).Debug("Film stored")

	return film, nil
}

func (s *favoritesService) resolveCharacter(ctx context.Context, store repository.Store, url string) (*models.Character, error) {
	catalogCharacter, err := s.catalog.GetCharacter(ctx, url)
	if err != nil || catalogCharacter == nil {
		return nil, ErrFilmNotFound
	}

	existing, err := store.Characters().FindByName(ctx, catalogCharacter.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		metrics.EntitiesReused.WithLabelValues("character").Inc()
		return existing, nil
	}

	character := &models.Character{Name: catalogCharacter.Name}
	if err := store.Characters().Create(ctx, character); err != nil {
		return nil, err
	}

	metrics.EntitiesCreated.WithLabelValues("character").Inc()
	return character, nil
}

func (s *favoritesService) SearchLists(ctx context.Context, search string, page, limit int) (*ListPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = s.defaultPageSize
	}

	lists, total, err := s.store.Lists().FindAll(ctx, page, limit, search)
	if err != nil {
		return nil, err
	}

	summaries := make([]models.ListSummary, 0, len(lists))
	for _, list := range lists {
		summaries = append(summaries, models.ListSummary{
			ID:   list.ID,
			Name: list.ListName,
		})
	}
	return &ListPage{
		Lists: summaries,
		Total: total,
		Page:  page,
		Limit: limit,
	}, nil
}

func (s *favoritesService) GetList(ctx context.Context, id uint) (*models.List, error) {
	list, err := s.store.Lists().FindByIDWithFilms(ctx, id)
	if err != nil {
		return nil, err
	}
	if list == nil {
		return nil, ErrListNotFound
	}
	return list, nil
}
