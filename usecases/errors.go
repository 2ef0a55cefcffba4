package usecases

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrSubjectNotFound covers every credential problem: no session, an
	// unknown token, an unknown username or a wrong password. Clients see a
	// single failure class and cannot tell these apart.
	ErrSubjectNotFound = errors.New("user not found")

	ErrUsernameTaken = errors.New("username already taken")

	ErrMealNotFound = errors.New("meal not found")
	ErrInvalidInput = errors.New("invalid input")
)

var validate = validator.New()

func validateInput(v interface{}) error {
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}
	return nil
}
