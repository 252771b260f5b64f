package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quiz_backend/internal/feature/catalog/domain/entity"
	"quiz_backend/internal/shared/validation"
)

func TestAuthUsecase_Signup(t *testing.T) {
	t.Parallel()

	valid := SignupInput{Email: "test@example.com", Username: "tester", Password: "password123", Name: "Test User"}

	t.Run("successful signup", func(t *testing.T) {
		t.Parallel()

		repo := &mockUserRepository{
			SaveFunc: func(_ context.Context, u *entity.User) (entity.User, error) {
				assert.NotEqual(t, "password123", u.PasswordHash(), "password must be hashed")
				assert.True(t, u.CheckPassword("password123"))
				saved := *u
				saved.Stamp(7, saved.CreatedAt(), saved.UpdatedAt())
				return saved, nil
			},
		}

		uc := NewAuthUsecase(repo, &mockJWTGenerator{})
		user, err := uc.Signup(context.Background(), valid)
		require.NoError(t, err)
		assert.Equal(t, uint(7), user.ID())
		assert.Equal(t, "tester", user.Username())
	})

	t.Run("invalid email is rejected before storage", func(t *testing.T) {
		t.Parallel()

		in := valid
		in.Email = "not-an-email"
		uc := NewAuthUsecase(&mockUserRepository{}, &mockJWTGenerator{})

		_, err := uc.Signup(context.Background(), in)
		require.ErrorIs(t, err, validation.ErrValidation)
		assert.Equal(t, validation.FieldEmail, validation.Field(err))
	})

	t.Run("repository failure is wrapped", func(t *testing.T) {
		t.Parallel()

		dbErr := errors.New("database error")
		repo := &mockUserRepository{
			SaveFunc: func(context.Context, *entity.User) (entity.User, error) { return entity.User{}, dbErr },
		}

		uc := NewAuthUsecase(repo, &mockJWTGenerator{})
		_, err := uc.Signup(context.Background(), valid)
		assert.ErrorIs(t, err, dbErr)
	})
}

// TestAuthUsecase_Login はユーザー名とパスワードの組み合わせごとのログイン結果を検証します。
func TestAuthUsecase_Login(t *testing.T) {
	t.Parallel()

	stored := persistedUser(3, "alice") // パスワードは"alice"

	tests := []struct {
		name      string
		username  string
		password  string
		lookupErr error
		tokenErr  error
		wantToken string
		wantErr   error
	}{
		{name: "successful login", username: "alice", password: "alice", wantToken: "mock-jwt-token"},
		{name: "wrong password", username: "alice", password: "bob", wantErr: ErrInvalidCredentials},
		{name: "unknown user", username: "nobody", password: "alice", wantErr: ErrInvalidCredentials},
		{name: "lookup failure", username: "alice", password: "alice", lookupErr: errors.New("conn reset")},
		{name: "token failure", username: "alice", password: "alice", tokenErr: errors.New("sign failed")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := &mockUserRepository{
				FindByUsernameFunc: func(_ context.Context, username string) (entity.User, bool, error) {
					if tt.lookupErr != nil {
						return entity.User{}, false, tt.lookupErr
					}
					if username == stored.Username() {
						return stored, true, nil
					}
					return entity.User{}, false, nil
				},
			}
			gen := &mockJWTGenerator{
				GenerateTokenFunc: func(userID uint, username string) (string, error) {
					assert.Equal(t, stored.ID(), userID)
					assert.Equal(t, stored.Username(), username)
					if tt.tokenErr != nil {
						return "", tt.tokenErr
					}
					return "mock-jwt-token", nil
				},
			}

			uc := NewAuthUsecase(repo, gen)
			token, err := uc.Login(context.Background(), tt.username, tt.password)

			switch {
			case tt.lookupErr != nil:
				assert.ErrorIs(t, err, tt.lookupErr)
			case tt.tokenErr != nil:
				assert.ErrorIs(t, err, tt.tokenErr)
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.wantToken, token)
			}
		})
	}
}
