package usecases

import (
	"context"
	"testing"

	"diet-server/cache"
	"diet-server/db/dbtest"
	"diet-server/repositories"
	"diet-server/services"

	"github.com/stretchr/testify/require"
)

type fixture struct {
	users    *UserUseCase
	meals    *MealUseCase
	sessions *services.SessionProvider
}

func setup(t *testing.T) fixture {
	t.Helper()
	database := dbtest.New(t)
	userRepo := repositories.NewUserPgRepository(database)
	sessions := services.NewSessionProvider(userRepo, cache.NewSessionTable())

	return fixture{
		users:    NewUserUseCase(userRepo, sessions),
		meals:    NewMealUseCase(repositories.NewMealPgRepository(database)),
		sessions: sessions,
	}
}

func (f fixture) register(t *testing.T, username string) (string, string) {
	t.Helper()
	user, token, err := f.users.Register(context.Background(), RegisterInput{
		Name:     "User Test",
		Username: username,
		Email:    username + "@example.com",
		Password: "12345",
	})
	require.NoError(t, err)
	return user.ID, token
}

func detox() MealInput {
	return MealInput{
		Name:        "Suco detox",
		Description: "Suco detox",
		Date:        "2023-10-20",
		Time:        "15:10:00",
		InDiet:      true,
	}
}
