package usecases

import (
	"context"
	"errors"
	"fmt"

	"diet-server/entities"
	"diet-server/repositories"
	"diet-server/services"
)

// MealInput is what an owner may set on a meal. There is deliberately no
// owner field: the owner comes from the session and never changes.
type MealInput struct {
	Name        string `validate:"required"`
	Description string
	Date        string `validate:"required,datetime=2006-01-02"`
	Time        string `validate:"required,datetime=15:04:05"`
	InDiet      bool
}

func (in MealInput) fields() entities.MealFields {
	return entities.MealFields{
		Name:        in.Name,
		Description: in.Description,
		OccurredOn:  in.Date,
		OccurredAt:  in.Time,
		InDiet:      in.InDiet,
	}
}

// MealUseCase runs every operation inside one owner's scope. Meals of
// other owners behave exactly like missing ones.
type MealUseCase struct {
	meals repositories.MealRepository
}

func NewMealUseCase(meals repositories.MealRepository) *MealUseCase {
	return &MealUseCase{meals: meals}
}

func (uc *MealUseCase) CreateMeal(ctx context.Context, ownerID string, in MealInput) (*entities.Meal, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	meal := &entities.Meal{
		UserID:      ownerID,
		Name:        in.Name,
		Description: in.Description,
		OccurredOn:  in.Date,
		OccurredAt:  in.Time,
		InDiet:      in.InDiet,
	}
	if err := uc.meals.Create(ctx, meal); err != nil {
		return nil, fmt.Errorf("create meal: %w", err)
	}
	return meal, nil
}

func (uc *MealUseCase) GetMeal(ctx context.Context, ownerID, id string) (*entities.Meal, error) {
	meal, err := uc.meals.GetByID(ctx, id, ownerID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrMealNotFound
		}
		return nil, fmt.Errorf("get meal: %w", err)
	}
	return meal, nil
}

func (uc *MealUseCase) ListMeals(ctx context.Context, ownerID string) ([]entities.Meal, error) {
	meals, err := uc.meals.GetByUserID(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list meals: %w", err)
	}
	return meals, nil
}

// UpdateMeal replaces the editable fields in one conditional statement and
// returns the stored meal.
func (uc *MealUseCase) UpdateMeal(ctx context.Context, ownerID, id string, in MealInput) (*entities.Meal, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	n, err := uc.meals.Update(ctx, id, ownerID, in.fields())
	if err != nil {
		return nil, fmt.Errorf("update meal: %w", err)
	}
	if n == 0 {
		return nil, ErrMealNotFound
	}
	return uc.GetMeal(ctx, ownerID, id)
}

func (uc *MealUseCase) DeleteMeal(ctx context.Context, ownerID, id string) error {
	n, err := uc.meals.Delete(ctx, id, ownerID)
	if err != nil {
		return fmt.Errorf("delete meal: %w", err)
	}
	if n == 0 {
		return ErrMealNotFound
	}
	return nil
}

// Summary recomputes the adherence report from the owner's full meal list.
func (uc *MealUseCase) Summary(ctx context.Context, ownerID string) (entities.MealSummary, error) {
	meals, err := uc.meals.GetByUserID(ctx, ownerID)
	if err != nil {
		return entities.MealSummary{}, fmt.Errorf("list meals: %w", err)
	}
	return services.Summarize(meals), nil
}
