package repositories

import (
	"context"
	"errors"

	"diet-server/db"
	"diet-server/entities"

	"gorm.io/gorm"
)

type userPgRepository struct {
	db db.Database
}

func NewUserPgRepository(database db.Database) UserRepository {
	return &userPgRepository{db: database}
}

func (r *userPgRepository) Create(ctx context.Context, user *entities.User) error {
	err := r.db.GetDB().WithContext(ctx).Create(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicate
	}
	return err
}

func (r *userPgRepository) GetAll(ctx context.Context) ([]entities.User, error) {
	var users []entities.User
	err := r.db.GetDB().WithContext(ctx).Order("created_at ASC").Find(&users).Error
	return users, err
}

func (r *userPgRepository) GetByUsername(ctx context.Context, username string) (*entities.User, error) {
	return r.first(ctx, "username = ?", username)
}

func (r *userPgRepository) GetBySessionToken(ctx context.Context, token string) (*entities.User, error) {
	return r.first(ctx, "session_token = ?", token)
}

func (r *userPgRepository) SetSessionToken(ctx context.Context, userID, token string) (int64, error) {
	result := r.db.GetDB().WithContext(ctx).Model(&entities.User{}).Where("id = ?", userID).Update("session_token", token)
	return result.RowsAffected, result.Error
}

func (r *userPgRepository) first(ctx context.Context, query string, args ...interface{}) (*entities.User, error) {
	var user entities.User
	err := r.db.GetDB().WithContext(ctx).Where(query, args...).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}
