package usecase

import (
	"context"
	"fmt"

	"quiz_backend/internal/feature/catalog/domain/entity"
	"quiz_backend/internal/shared/validation"
)

// dummyPasswordHash は存在しないユーザーに対してもパスワード比較を行うためのダミーハッシュです。
var dummyPasswordHash = validation.HashPassword("dummy password for unknown users")

// JWTGenerator はJWTトークン生成のインターフェースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（platform/jwt）ではなくコンシューマー（usecase）が定義します。
type JWTGenerator interface {
	// GenerateToken は指定されたユーザーの署名済みJWTトークンを生成します。
	GenerateToken(userID uint, username string) (string, error)
}

// SignupInput は新規登録に必要な項目です。
type SignupInput struct {
	Email    string
	Username string
	Password string
	Name     string
}

// authUsecase は認証ビジネスロジックを実装します。
type authUsecase struct {
	users        UserRepository
	jwtGenerator JWTGenerator
}

// NewAuthUsecase はauthUsecaseの新しいインスタンスを生成します。
func NewAuthUsecase(users UserRepository, jwtGenerator JWTGenerator) *authUsecase {
	return &authUsecase{
		users:        users,
		jwtGenerator: jwtGenerator,
	}
}

// Signup は新規ユーザーを登録します。
// 入力の検証に失敗した場合は*validation.ValidationErrorを、ユーザー名やメールアドレスの重複時はストレージのエラーをそのまま返します。
func (u *authUsecase) Signup(ctx context.Context, in SignupInput) (entity.User, error) {
	user, err := entity.NewUser(in.Email, in.Username, in.Password, in.Name)
	if err != nil {
		return entity.User{}, err
	}
	saved, err := u.users.Save(ctx, &user)
	if err != nil {
		return entity.User{}, fmt.Errorf("failed to save user: %w", err)
	}
	return saved, nil
}

// Login はユーザーを認証し、成功時にJWTトークンを返します。
// タイミング攻撃を防止するため、ユーザーが存在しない場合でもダミーハッシュとの比較を実行します。
func (u *authUsecase) Login(ctx context.Context, username, password string) (string, error) {
	user, found, err := u.users.FindByUsername(ctx, username)
	if err != nil {
		return "", fmt.Errorf("failed to look up user: %w", err)
	}

	// 常にパスワードを検証
	passwordHash := dummyPasswordHash
	if found {
		passwordHash = user.PasswordHash()
	}
	matches := validation.PasswordMatches(passwordHash, password)

	if !found || !matches {
		return "", ErrInvalidCredentials
	}

	token, err := u.jwtGenerator.GenerateToken(user.ID(), user.Username())
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}
