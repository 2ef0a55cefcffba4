package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister_IssuesResolvableToken(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	userID, token := f.register(t, "UserTest")
	assert.NotEmpty(t, token)

	owner, ok, err := f.sessions.Resolve(ctx, token)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, userID, owner)
}

func TestRegister_DistinctUsersGetDistinctTokens(t *testing.T) {
	f := setup(t)

	_, t1 := f.register(t, "one")
	_, t2 := f.register(t, "two")
	assert.NotEqual(t, t1, t2)
}

func TestRegister_Validation(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	tests := []RegisterInput{
		{Username: "u", Email: "u@example.com", Password: "p"},
		{Name: "n", Email: "u@example.com", Password: "p"},
		{Name: "n", Username: "u", Email: "not-an-email", Password: "p"},
		{Name: "n", Username: "u", Email: "u@example.com"},
	}
	for _, in := range tests {
		_, _, err := f.users.Register(ctx, in)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
}

func TestListUsers(t *testing.T) {
	f := setup(t)

	f.register(t, "one")
	f.register(t, "two")

	users, err := f.users.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "one", users[0].Username)
}

func TestLogin(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	userID, first := f.register(t, "UserTest")

	user, second, err := f.users.Login(ctx, LoginInput{Username: "UserTest", Password: "12345"})
	require.NoError(t, err)
	assert.Equal(t, userID, user.ID)
	assert.NotEqual(t, first, second)

	_, ok, err := f.sessions.Resolve(ctx, first)
	require.NoError(t, err)
	assert.False(t, ok, "login must invalidate the previous token")

	owner, ok, err := f.sessions.Resolve(ctx, second)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, userID, owner)
}

func TestLogin_FailuresAreSubjectNotFound(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	f.register(t, "UserTest")

	_, _, err := f.users.Login(ctx, LoginInput{Username: "UserTest", Password: "wrong"})
	assert.ErrorIs(t, err, ErrSubjectNotFound)

	_, _, err = f.users.Login(ctx, LoginInput{Username: "nobody", Password: "12345"})
	assert.ErrorIs(t, err, ErrSubjectNotFound)

	_, _, err = f.users.Login(ctx, LoginInput{Username: "UserTest"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestRegister_UsernameTaken(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	firstID, _ := f.register(t, "dup")

	_, _, err := f.users.Register(ctx, RegisterInput{
		Name:     "Someone Else",
		Username: "dup",
		Email:    "else@example.com",
		Password: "other",
	})
	assert.ErrorIs(t, err, ErrUsernameTaken)

	// the first account still logs in, the rejected password does not
	user, _, err := f.users.Login(ctx, LoginInput{Username: "dup", Password: "12345"})
	require.NoError(t, err)
	assert.Equal(t, firstID, user.ID)

	_, _, err = f.users.Login(ctx, LoginInput{Username: "dup", Password: "other"})
	assert.ErrorIs(t, err, ErrSubjectNotFound)

	users, err := f.users.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}
