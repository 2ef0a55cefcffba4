package usecases

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"diet-server/entities"
	"diet-server/repositories"
	"diet-server/services"
)

type RegisterInput struct {
	Name     string `validate:"required"`
	Username string `validate:"required"`
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

type LoginInput struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

type UserUseCase struct {
	users    repositories.UserRepository
	sessions *services.SessionProvider
}

func NewUserUseCase(users repositories.UserRepository, sessions *services.SessionProvider) *UserUseCase {
	return &UserUseCase{users: users, sessions: sessions}
}

// Register creates the user and issues its first session token. Usernames
// are unique.
func (uc *UserUseCase) Register(ctx context.Context, in RegisterInput) (*entities.User, string, error) {
	if err := validateInput(in); err != nil {
		return nil, "", err
	}

	user := &entities.User{
		Name:     in.Name,
		Username: in.Username,
		Email:    in.Email,
		Password: in.Password,
	}
	token, err := uc.sessions.Register(ctx, user)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, "", ErrUsernameTaken
		}
		return nil, "", fmt.Errorf("create user: %w", err)
	}
	return user, token, nil
}

// Login checks the password and issues a new token; the previous token of
// the user stops resolving.
func (uc *UserUseCase) Login(ctx context.Context, in LoginInput) (*entities.User, string, error) {
	if err := validateInput(in); err != nil {
		return nil, "", err
	}

	user, err := uc.users.GetByUsername(ctx, in.Username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, "", ErrSubjectNotFound
		}
		return nil, "", fmt.Errorf("find user: %w", err)
	}
	if subtle.ConstantTimeCompare([]byte(user.Password), []byte(in.Password)) != 1 {
		return nil, "", ErrSubjectNotFound
	}

	token, err := uc.sessions.Issue(ctx, user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (uc *UserUseCase) ListUsers(ctx context.Context) ([]entities.User, error) {
	return uc.users.GetAll(ctx)
}
