package entity

import "quiz_backend/internal/shared/validation"

// User is a registered author of questions and sets.
// PasswordHash always holds a digest produced by validation.HashPassword, never the raw password.
type User struct {
	Timestamped

	email        string
	username     string
	passwordHash string
	name         string
}

// NewUser builds a transient user, hashing password.
func NewUser(email, username, password, name string) (User, error) {
	var u User
	if err := u.SetEmail(email); err != nil {
		return User{}, err
	}
	if err := u.SetUsername(username); err != nil {
		return User{}, err
	}
	if err := u.SetPassword(password); err != nil {
		return User{}, err
	}
	u.SetName(name)
	return u, nil
}

// NewUserFromName builds a fixture user whose email, username and password are derived from name.
func NewUserFromName(name string) (User, error) {
	return NewUser(name+"@example.com", name, name, name)
}

// RestoreUser rebuilds a user from stored fields. The hash is validated but not recomputed.
func RestoreUser(email, username, passwordHash, name string) (User, error) {
	var u User
	if err := u.SetEmail(email); err != nil {
		return User{}, err
	}
	if err := u.SetUsername(username); err != nil {
		return User{}, err
	}
	if err := u.SetPasswordHash(passwordHash); err != nil {
		return User{}, err
	}
	u.SetName(name)
	return u, nil
}

func (u User) Email() string        { return u.email }
func (u User) Username() string     { return u.username }
func (u User) PasswordHash() string { return u.passwordHash }
func (u User) Name() string         { return u.name }

// SetEmail replaces the email after checking its format.
func (u *User) SetEmail(email string) error {
	if err := validation.ValidateEmail(email); err != nil {
		return err
	}
	u.email = email
	return nil
}

// SetUsername replaces the username after checking its character set.
func (u *User) SetUsername(username string) error {
	if err := validation.ValidateUsername(username); err != nil {
		return err
	}
	u.username = username
	return nil
}

// SetPasswordHash replaces the stored digest after checking its encoding and length.
func (u *User) SetPasswordHash(hash string) error {
	if err := validation.ValidatePasswordHash(hash); err != nil {
		return err
	}
	u.passwordHash = hash
	return nil
}

// SetPassword hashes password and stores the digest through SetPasswordHash.
func (u *User) SetPassword(password string) error {
	return u.SetPasswordHash(validation.HashPassword(password))
}

func (u *User) SetName(name string) {
	u.name = name
}

// CheckPassword reports whether password matches the stored digest.
func (u User) CheckPassword(password string) bool {
	return validation.PasswordMatches(u.passwordHash, password)
}

// Equal reports whether both users have the same id and fields. Timestamps are ignored.
func (u User) Equal(other User) bool {
	return u.ID() == other.ID() &&
		u.email == other.email &&
		u.username == other.username &&
		u.passwordHash == other.passwordHash &&
		u.name == other.name
}
