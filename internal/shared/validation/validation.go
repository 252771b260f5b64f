// Package validation provides the field format checks and the password digest
// shared by the catalog entities.
//
// Every check fails with a *ValidationError naming the field and the constraint
// that was violated. All of them match ErrValidation with errors.Is.
package validation

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"regexp"

	"github.com/go-playground/validator/v10"
)

// PasswordHashLength is the length of a standard base64 encoded SHA-256 digest.
const PasswordHashLength = 44

// Field names reported by the entity checks.
const (
	FieldEmail        = "email"
	FieldUsername     = "username"
	FieldPasswordHash = "passwordHash"
	FieldDifficulty   = "difficulty"
	FieldCategoryID   = "categoryId"
	FieldQuestionID   = "questionId"
	FieldOffset       = "offset"
	FieldSize         = "size"
)

// ErrValidation is matched by every *ValidationError.
var ErrValidation = errors.New("validation failed")

// ValidationError reports a field that failed its format or range check.
type ValidationError struct {
	Field   string
	Message string
}

// New returns a ValidationError for field.
func New(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Is makes errors.Is(err, ErrValidation) true for any ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Field returns the failing field of the first ValidationError in err's chain,
// or an empty string if there is none.
func Field(err error) string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Field
	}
	return ""
}

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)

// validate is safe for concurrent use once the custom tags are registered.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return usernamePattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// ValidateEmail checks that email is a well-formed address.
func ValidateEmail(email string) error {
	if err := validate.Var(email, "required,email"); err != nil {
		return New(FieldEmail, "invalid email")
	}
	return nil
}

// ValidateUsername checks that username is made only of letters, digits, '_', '.' and '-'.
func ValidateUsername(username string) error {
	if err := validate.Var(username, "required,username"); err != nil {
		return New(FieldUsername, "invalid username")
	}
	return nil
}

// ValidatePasswordHash checks that hash looks like the output of HashPassword.
// Encoding and length are reported separately.
func ValidatePasswordHash(hash string) error {
	if err := validate.Var(hash, "base64"); err != nil {
		return New(FieldPasswordHash, "invalid password hash: not valid base64")
	}
	if len(hash) != PasswordHashLength {
		return New(FieldPasswordHash, "invalid password hash: must be 44 characters long")
	}
	return nil
}

// HashPassword returns the standard base64 encoding of the SHA-256 digest of password.
// The result is always PasswordHashLength characters.
//
// This is a plain digest, not a key derivation function.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return base64.StdEncoding.EncodeToString(sum[:])
}

// PasswordMatches reports whether password hashes to hash.
func PasswordMatches(hash, password string) bool {
	return subtle.ConstantTimeCompare([]byte(HashPassword(password)), []byte(hash)) == 1
}
