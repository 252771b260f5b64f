// Package usecase はcatalogフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"

	"quiz_backend/internal/feature/catalog/domain/entity"
)

// UserRepository はユーザーエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// Save は新しいユーザーを永続化し、データベースに格納された内容を返します。
	Save(ctx context.Context, u *entity.User) (entity.User, error)
	// Delete はユーザーを削除し、uのIDをクリアします。
	Delete(ctx context.Context, u *entity.User) error
	FindByID(ctx context.Context, id uint) (entity.User, bool, error)
	// FindByUsername はユーザー名でユーザーを取得します。存在しない場合はfalseを返します。
	FindByUsername(ctx context.Context, username string) (entity.User, bool, error)
	All(ctx context.Context) ([]entity.User, error)
	Questions(ctx context.Context, u entity.User) ([]entity.Question, error)
	Sets(ctx context.Context, u entity.User) ([]entity.Set, error)
}

// QuestionRepository は問題エンティティの永続化層を抽象化します。
type QuestionRepository interface {
	Save(ctx context.Context, q *entity.Question) (entity.Question, error)
	Delete(ctx context.Context, q *entity.Question) error
	FindByID(ctx context.Context, id uint) (entity.Question, bool, error)
	// All は全ての問題をIDの降順で返します。
	All(ctx context.Context) ([]entity.Question, error)
	// Limit はIDの降順でoffset件をスキップし、最大size件を返します。
	Limit(ctx context.Context, offset, size int) ([]entity.Question, error)
	User(ctx context.Context, q entity.Question) (entity.User, bool, error)
	Category(ctx context.Context, q entity.Question) (entity.Category, bool, error)
	Answers(ctx context.Context, q entity.Question) ([]entity.Answer, error)
	// AddAnswer はqに紐づく回答を永続化し、qをそのまま返します。
	AddAnswer(ctx context.Context, q entity.Question, text string, isCorrect bool) (entity.Question, error)
	Sets(ctx context.Context, q entity.Question) ([]entity.Set, error)
}

// CategoryRepository はカテゴリエンティティの永続化層を抽象化します。
type CategoryRepository interface {
	Save(ctx context.Context, c *entity.Category) (entity.Category, error)
	Delete(ctx context.Context, c *entity.Category) error
	FindByID(ctx context.Context, id uint) (entity.Category, bool, error)
	All(ctx context.Context) ([]entity.Category, error)
	Questions(ctx context.Context, c entity.Category) ([]entity.Question, error)
}

// AnswerRepository は回答エンティティの永続化層を抽象化します。
type AnswerRepository interface {
	Save(ctx context.Context, a *entity.Answer) (entity.Answer, error)
	Delete(ctx context.Context, a *entity.Answer) error
	FindByID(ctx context.Context, id uint) (entity.Answer, bool, error)
	Question(ctx context.Context, a entity.Answer) (entity.Question, bool, error)
}

// SetRepository は問題セットエンティティの永続化層を抽象化します。
type SetRepository interface {
	Save(ctx context.Context, s *entity.Set) (entity.Set, error)
	Delete(ctx context.Context, s *entity.Set) error
	FindByID(ctx context.Context, id uint) (entity.Set, bool, error)
	All(ctx context.Context) ([]entity.Set, error)
	User(ctx context.Context, s entity.Set) (entity.User, bool, error)
	Questions(ctx context.Context, s entity.Set) ([]entity.Question, error)
	// AddQuestion はqをセットに追加します。既に含まれている場合は一意制約違反になります。
	AddQuestion(ctx context.Context, s entity.Set, q entity.Question) error
	// RemoveQuestion はqをセットから外します。含まれていない場合は何もしません。
	RemoveQuestion(ctx context.Context, s entity.Set, q entity.Question) error
}
