package repositories

import (
	"context"
	"errors"

	"diet-server/db"
	"diet-server/entities"

	"gorm.io/gorm"
)

type mealPgRepository struct {
	db db.Database
}

func NewMealPgRepository(database db.Database) MealRepository {
	return &mealPgRepository{db: database}
}

func (r *mealPgRepository) Create(ctx context.Context, meal *entities.Meal) error {
	return r.db.GetDB().WithContext(ctx).Create(meal).Error
}

func (r *mealPgRepository) GetByID(ctx context.Context, id, ownerID string) (*entities.Meal, error) {
	var meal entities.Meal
	err := r.db.GetDB().WithContext(ctx).Where("id = ? AND user_id = ?", id, ownerID).First(&meal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &meal, nil
}

// GetByUserID returns every meal of the owner, oldest first. The id
// tiebreaker keeps the order stable for meals recorded in the same instant.
func (r *mealPgRepository) GetByUserID(ctx context.Context, ownerID string) ([]entities.Meal, error) {
	var meals []entities.Meal
	err := r.db.GetDB().WithContext(ctx).Where("user_id = ?", ownerID).Order("recorded_at ASC, id ASC").Find(&meals).Error
	return meals, err
}

func (r *mealPgRepository) Update(ctx context.Context, id, ownerID string, fields entities.MealFields) (int64, error) {
	result := r.db.GetDB().WithContext(ctx).Model(&entities.Meal{}).
		Where("id = ? AND user_id = ?", id, ownerID).
		Updates(fields.Columns())
	return result.RowsAffected, result.Error
}

func (r *mealPgRepository) Delete(ctx context.Context, id, ownerID string) (int64, error) {
	result := r.db.GetDB().WithContext(ctx).Where("id = ? AND user_id = ?", id, ownerID).Delete(&entities.Meal{})
	return result.RowsAffected, result.Error
}
