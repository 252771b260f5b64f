package usecase

import (
	"context"
	"time"

	"quiz_backend/internal/feature/catalog/domain/entity"
)

// mockUserRepository はUserRepositoryのモック実装です。
// 設定されていないメソッドを呼び出すと埋め込みインターフェースがnilのためpanicします。
type mockUserRepository struct {
	UserRepository

	SaveFunc           func(ctx context.Context, u *entity.User) (entity.User, error)
	FindByIDFunc       func(ctx context.Context, id uint) (entity.User, bool, error)
	FindByUsernameFunc func(ctx context.Context, username string) (entity.User, bool, error)
}

func (m *mockUserRepository) Save(ctx context.Context, u *entity.User) (entity.User, error) {
	return m.SaveFunc(ctx, u)
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (entity.User, bool, error) {
	return m.FindByIDFunc(ctx, id)
}

func (m *mockUserRepository) FindByUsername(ctx context.Context, username string) (entity.User, bool, error) {
	return m.FindByUsernameFunc(ctx, username)
}

// mockQuestionRepository はQuestionRepositoryのモック実装です。
type mockQuestionRepository struct {
	QuestionRepository

	SaveFunc      func(ctx context.Context, q *entity.Question) (entity.Question, error)
	DeleteFunc    func(ctx context.Context, q *entity.Question) error
	FindByIDFunc  func(ctx context.Context, id uint) (entity.Question, bool, error)
	AllFunc       func(ctx context.Context) ([]entity.Question, error)
	LimitFunc     func(ctx context.Context, offset, size int) ([]entity.Question, error)
	AnswersFunc   func(ctx context.Context, q entity.Question) ([]entity.Answer, error)
	AddAnswerFunc func(ctx context.Context, q entity.Question, text string, isCorrect bool) (entity.Question, error)
	SetsFunc      func(ctx context.Context, q entity.Question) ([]entity.Set, error)
}

func (m *mockQuestionRepository) Save(ctx context.Context, q *entity.Question) (entity.Question, error) {
	return m.SaveFunc(ctx, q)
}

func (m *mockQuestionRepository) Delete(ctx context.Context, q *entity.Question) error {
	return m.DeleteFunc(ctx, q)
}

func (m *mockQuestionRepository) FindByID(ctx context.Context, id uint) (entity.Question, bool, error) {
	return m.FindByIDFunc(ctx, id)
}

func (m *mockQuestionRepository) All(ctx context.Context) ([]entity.Question, error) {
	return m.AllFunc(ctx)
}

func (m *mockQuestionRepository) Limit(ctx context.Context, offset, size int) ([]entity.Question, error) {
	return m.LimitFunc(ctx, offset, size)
}

func (m *mockQuestionRepository) Answers(ctx context.Context, q entity.Question) ([]entity.Answer, error) {
	return m.AnswersFunc(ctx, q)
}

func (m *mockQuestionRepository) AddAnswer(ctx context.Context, q entity.Question, text string, isCorrect bool) (entity.Question, error) {
	return m.AddAnswerFunc(ctx, q, text, isCorrect)
}

func (m *mockQuestionRepository) Sets(ctx context.Context, q entity.Question) ([]entity.Set, error) {
	return m.SetsFunc(ctx, q)
}

// mockCategoryRepository はCategoryRepositoryのモック実装です。
type mockCategoryRepository struct {
	CategoryRepository

	SaveFunc     func(ctx context.Context, c *entity.Category) (entity.Category, error)
	FindByIDFunc func(ctx context.Context, id uint) (entity.Category, bool, error)
	AllFunc      func(ctx context.Context) ([]entity.Category, error)
}

func (m *mockCategoryRepository) Save(ctx context.Context, c *entity.Category) (entity.Category, error) {
	return m.SaveFunc(ctx, c)
}

func (m *mockCategoryRepository) FindByID(ctx context.Context, id uint) (entity.Category, bool, error) {
	return m.FindByIDFunc(ctx, id)
}

func (m *mockCategoryRepository) All(ctx context.Context) ([]entity.Category, error) {
	return m.AllFunc(ctx)
}

// mockJWTGenerator はJWTGeneratorのモック実装です。
type mockJWTGenerator struct {
	GenerateTokenFunc func(userID uint, username string) (string, error)
}

func (m *mockJWTGenerator) GenerateToken(userID uint, username string) (string, error) {
	if m.GenerateTokenFunc != nil {
		return m.GenerateTokenFunc(userID, username)
	}
	return "mock-jwt-token", nil
}

// persistedQuestion はテスト用にIDを割り当てた問題を返します。
func persistedQuestion(id uint, author entity.OptionalID) entity.Question {
	q, err := entity.NewQuestionFromIDs(author, 1, "question", entity.DifficultyEasy)
	if err != nil {
		panic(err)
	}
	q.Stamp(id, time.Now(), time.Now())
	return q
}

func persistedUser(id uint, name string) entity.User {
	u, err := entity.NewUserFromName(name)
	if err != nil {
		panic(err)
	}
	u.Stamp(id, time.Now(), time.Now())
	return u
}
