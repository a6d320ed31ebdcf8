package repository

import (
	"context"
	"errors"
	"time"

	"favorites-backend/internal/database"
	"favorites-backend/internal/models"

	"gorm.io/gorm"
)

type CharacterRepository interface {
	Create(ctx context.Context, character *models.Character) error
	FindByID(ctx context.Context, id uint) (*models.Character, error)
	FindByName(ctx context.Context, name string) (*models.Character, error)
	Count(ctx context.Context) (int64, error)
}

type characterRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewCharacterRepository(db *database.Database) CharacterRepository {
	return &characterRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *characterRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *characterRepository) Create(ctx context.Context, character *models.Character) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Create(character).Error
}

func (r *characterRepository) FindByID(ctx context.Context, id uint) (*models.Character, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var character models.Character
	err := r.db.WithContext(ctx).First(&character, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &character, nil
}

// FindByName returns the character with exactly this name, or nil.
func (r *characterRepository) FindByName(ctx context.Context, name string) (*models.Character, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var character models.Character
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&character).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &character, nil
}

func (r *characterRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var total int64
	err := r.db.WithContext(ctx).Model(&models.Character{}).Count(&total).Error
	return total, err
}
