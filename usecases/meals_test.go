package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndGetMeal(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	owner, _ := f.register(t, "owner")

	created, err := f.meals.CreateMeal(ctx, owner, detox())
	require.NoError(t, err)
	assert.Equal(t, owner, created.UserID)

	first, err := f.meals.GetMeal(ctx, owner, created.ID)
	require.NoError(t, err)
	second, err := f.meals.GetMeal(ctx, owner, created.ID)
	require.NoError(t, err)

	assert.Equal(t, first, second, "repeated reads without writes must be identical")
	assert.Equal(t, "Suco detox", first.Name)
	assert.Equal(t, "2023-10-20", first.OccurredOn)
	assert.Equal(t, "15:10:00", first.OccurredAt)
	assert.True(t, first.InDiet)
}

func TestCreateMeal_Validation(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	owner, _ := f.register(t, "owner")

	bad := []func(in *MealInput){
		func(in *MealInput) { in.Name = "" },
		func(in *MealInput) { in.Date = "" },
		func(in *MealInput) { in.Date = "20/10/2023" },
		func(in *MealInput) { in.Time = "3pm" },
	}
	for _, mutate := range bad {
		in := detox()
		mutate(&in)
		_, err := f.meals.CreateMeal(ctx, owner, in)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
}

func TestMeals_AreOwnerScoped(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	owner, _ := f.register(t, "owner")
	intruder, _ := f.register(t, "intruder")

	m, err := f.meals.CreateMeal(ctx, owner, detox())
	require.NoError(t, err)

	_, err = f.meals.GetMeal(ctx, intruder, m.ID)
	assert.ErrorIs(t, err, ErrMealNotFound)

	_, err = f.meals.UpdateMeal(ctx, intruder, m.ID, detox())
	assert.ErrorIs(t, err, ErrMealNotFound)

	assert.ErrorIs(t, f.meals.DeleteMeal(ctx, intruder, m.ID), ErrMealNotFound)

	list, err := f.meals.ListMeals(ctx, intruder)
	require.NoError(t, err)
	assert.Empty(t, list)

	list, err = f.meals.ListMeals(ctx, owner)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestUpdateMeal(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	owner, _ := f.register(t, "owner")

	m, err := f.meals.CreateMeal(ctx, owner, detox())
	require.NoError(t, err)

	updated, err := f.meals.UpdateMeal(ctx, owner, m.ID, MealInput{
		Name:        "Suco de Maça",
		Description: "Suco de maça adoçado",
		Date:        "2023-10-20",
		Time:        "15:10:00",
		InDiet:      false,
	})
	require.NoError(t, err)
	assert.Equal(t, "Suco de Maça", updated.Name)
	assert.False(t, updated.InDiet)
	assert.Equal(t, owner, updated.UserID)

	_, err = f.meals.UpdateMeal(ctx, owner, "missing", detox())
	assert.ErrorIs(t, err, ErrMealNotFound)
}

func TestDeleteMeal(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	owner, _ := f.register(t, "owner")

	m, err := f.meals.CreateMeal(ctx, owner, detox())
	require.NoError(t, err)

	require.NoError(t, f.meals.DeleteMeal(ctx, owner, m.ID))

	_, err = f.meals.GetMeal(ctx, owner, m.ID)
	assert.ErrorIs(t, err, ErrMealNotFound)

	assert.ErrorIs(t, f.meals.DeleteMeal(ctx, owner, m.ID), ErrMealNotFound)
}

func TestSummary(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	owner, _ := f.register(t, "owner")

	s, err := f.meals.Summary(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, 0, s.TotalMeals)
	assert.Nil(t, s.BestAdherenceDay)

	_, err = f.meals.CreateMeal(ctx, owner, detox())
	require.NoError(t, err)
	off := detox()
	off.Name, off.InDiet = "Hamburguer de picanha", false
	_, err = f.meals.CreateMeal(ctx, owner, off)
	require.NoError(t, err)

	s, err = f.meals.Summary(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, 2, s.TotalMeals)
	assert.Equal(t, 1, s.TotalInDiet)
	assert.Equal(t, 1, s.TotalNotInDiet)
	require.NotNil(t, s.BestAdherenceDay)
	assert.Equal(t, 1, s.BestAdherenceDay.DietSequence)
}
