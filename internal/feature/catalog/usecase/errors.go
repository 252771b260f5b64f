package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user referenced by a request does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrQuestionNotFound is returned when a question cannot be found by ID.
	ErrQuestionNotFound = errors.New("question not found")

	// ErrCategoryNotFound is returned when a question refers to a category that does not exist.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrInvalidCredentials is returned by Login for an unknown username or a wrong password.
	// The two cases are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrForbidden is returned when a user modifies a question written by someone else.
	ErrForbidden = errors.New("operation not permitted")
)
