package repositories

import (
	"context"
	"errors"

	"diet-server/entities"
)

// ErrNotFound is returned by point lookups that match no row.
var ErrNotFound = errors.New("record not found")

// ErrDuplicate is returned when an insert hits a unique constraint.
var ErrDuplicate = errors.New("record already exists")

type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetAll(ctx context.Context) ([]entities.User, error)
	GetByUsername(ctx context.Context, username string) (*entities.User, error)
	GetBySessionToken(ctx context.Context, token string) (*entities.User, error)
	SetSessionToken(ctx context.Context, userID, token string) (int64, error)
}

// MealRepository scopes every lookup and mutation by owner. Update and
// Delete are single conditional statements that report the affected rows.
type MealRepository interface {
	Create(ctx context.Context, meal *entities.Meal) error
	GetByID(ctx context.Context, id, ownerID string) (*entities.Meal, error)
	GetByUserID(ctx context.Context, ownerID string) ([]entities.Meal, error)
	Update(ctx context.Context, id, ownerID string, fields entities.MealFields) (int64, error)
	Delete(ctx context.Context, id, ownerID string) (int64, error)
}
