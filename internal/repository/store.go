package repository

import (
	"context"

	"favorites-backend/internal/database"
)

// Store groups the repositories a request needs so that they can be
// swapped for transaction-bound copies as a unit.
type Store interface {
	Characters() CharacterRepository
	Films() FilmRepository
	Lists() ListRepository

	// Atomic runs fn with a Store whose repositories share one transaction.
	Atomic(ctx context.Context, fn func(Store) error) error
}

type gormStore struct {
	db         *database.Database
	characters CharacterRepository
	films      FilmRepository
	lists      ListRepository
}

func NewStore(db *database.Database) Store {
	return &gormStore{
		db:         db,
		characters: NewCharacterRepository(db),
		films:      NewFilmRepository(db),
		lists:      NewListRepository(db),
	}
}

func (s *gormStore) Characters() CharacterRepository { return s.characters }
func (s *gormStore) Films() FilmRepository           { return s.films }
func (s *gormStore) Lists() ListRepository           { return s.lists }

func (s *gormStore) Atomic(ctx context.Context, fn func(Store) error) error {
	return s.db.Transaction(ctx, func(tx *database.Database) error {
		return fn(NewStore(tx))
	})
}
