package services

import (
	"context"
	"errors"
	"io"
	"sync"

	"favorites-backend/internal/models"
	"favorites-backend/internal/repository"

	"github.com/sirupsen/logrus"
)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// fakeCatalog serves films and characters from memory and counts lookups.
type fakeCatalog struct {
	mu         sync.Mutex
	films      map[int]*models.CatalogFilm
	characters map[string]*models.CatalogCharacter
	filmCalls  int
	charCalls  int
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{
		films:      make(map[int]*models.CatalogFilm),
		characters: make(map[string]*models.CatalogCharacter),
	}
}

func (f *fakeCatalog) addFilm(id int, title, releaseDate string, characters ...string) {
	urls := make([]string, 0, len(characters))
	for _, name := range characters {
		url := "https://catalog.test/people/" + name + "/"
		f.characters[url] = &models.CatalogCharacter{Name: name}
		urls = append(urls, url)
	}
	f.films[id] = &models.CatalogFilm{Title: title, ReleaseDate: releaseDate, Characters: urls}
}

func (f *fakeCatalog) GetFilm(_ context.Context, id int) (*models.CatalogFilm, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.filmCalls++

	film, ok := f.films[id]
	if !ok {
		return nil, ErrFilmNotFound
	}
	return film, nil
}

func (f *fakeCatalog) GetCharacter(_ context.Context, url string) (*models.CatalogCharacter, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.charCalls++

	character, ok := f.characters[url]
	if !ok {
		return nil, ErrFilmNotFound
	}
	return character, nil
}

var errMockNotImplemented = errors.New("mock: not implemented")

// mockStore wires function-field repositories for failure paths the SQLite
// store cannot produce on demand.
type mockStore struct {
	characters *mockCharacterRepository
	films      *mockFilmRepository
	lists      *mockListRepository
}

func newMockStore() *mockStore {
	return &mockStore{
		characters: &mockCharacterRepository{},
		films:      &mockFilmRepository{},
		lists:      &mockListRepository{},
	}
}

func (m *mockStore) Characters() repository.CharacterRepository { return m.characters }
func (m *mockStore) Films() repository.FilmRepository           { return m.films }
func (m *mockStore) Lists() repository.ListRepository           { return m.lists }

func (m *mockStore) Atomic(_ context.Context, fn func(repository.Store) error) error {
	return fn(m)
}

type mockCharacterRepository struct {
	CreateFunc     func(ctx context.Context, character *models.Character) error
	FindByNameFunc func(ctx context.Context, name string) (*models.Character, error)
}

func (m *mockCharacterRepository) Create(ctx context.Context, character *models.Character) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, character)
	}
	return errMockNotImplemented
}

func (m *mockCharacterRepository) FindByID(context.Context, uint) (*models.Character, error) {
	return nil, errMockNotImplemented
}

func (m *mockCharacterRepository) FindByName(ctx context.Context, name string) (*models.Character, error) {
	if m.FindByNameFunc != nil {
		return m.FindByNameFunc(ctx, name)
	}
	return nil, errMockNotImplemented
}

func (m *mockCharacterRepository) Count(context.Context) (int64, error) {
	return 0, errMockNotImplemented
}

type mockFilmRepository struct {
	CreateFunc      func(ctx context.Context, film *models.Film) error
	FindByTitleFunc func(ctx context.Context, title string) (*models.Film, error)
}

func (m *mockFilmRepository) Create(ctx context.Context, film *models.Film) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, film)
	}
	return errMockNotImplemented
}

func (m *mockFilmRepository) FindByTitle(ctx context.Context, title string) (*models.Film, error) {
	if m.FindByTitleFunc != nil {
		return m.FindByTitleFunc(ctx, title)
	}
	return nil, errMockNotImplemented
}

func (m *mockFilmRepository) Count(context.Context) (int64, error) {
	return 0, errMockNotImplemented
}

type mockListRepository struct {
	CreateFunc            func(ctx context.Context, list *models.List) error
	FindAllFunc           func(ctx context.Context, page, limit int, search string) ([]models.List, int64, error)
	FindByIDWithFilmsFunc func(ctx context.Context, id uint) (*models.List, error)
}

func (m *mockListRepository) Create(ctx context.Context, list *models.List) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, list)
	}
	return errMockNotImplemented
}

func (m *mockListRepository) FindAll(ctx context.Context, page, limit int, search string) ([]models.List, int64, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx, page, limit, search)
	}
	return nil, 0, errMockNotImplemented
}

func (m *mockListRepository) FindByIDWithFilms(ctx context.Context, id uint) (*models.List, error) {
	if m.FindByIDWithFilmsFunc != nil {
		return m.FindByIDWithFilmsFunc(ctx, id)
	}
	return nil, errMockNotImplemented
}

func (m *mockListRepository) Count(context.Context) (int64, error) {
	return 0, errMockNotImplemented
}

// fakeArchiver records uploads and returns url or err.
type fakeArchiver struct {
	url   string
	err   error
	calls int
	last  []byte
}

func (a *fakeArchiver) Archive(_ context.Context, _ uint, _ string, data []byte) (string, error) {
	a.calls++
	a.last = data
	if a.err != nil {
		return "", a.err
	}
	return a.url, nil
}
