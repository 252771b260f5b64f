package usecase

import (
	"context"
	"fmt"

	"quiz_backend/internal/feature/catalog/domain/entity"
)

// Page selects a window of the question list, newest first.
type Page struct {
	Offset int
	Size   int
}

// QuestionDetail is a question together with its answers.
type QuestionDetail struct {
	Question entity.Question
	Answers  []entity.Answer
}

// CreateQuestionInput は問題作成に必要な項目です。
type CreateQuestionInput struct {
	AuthorID   uint
	CategoryID uint
	Text       string
	Difficulty entity.Difficulty
}

// questionUsecase は問題の閲覧と編集を扱います。
type questionUsecase struct {
	questions  QuestionRepository
	categories CategoryRepository
	users      UserRepository
}

// NewQuestionUsecase はquestionUsecaseの新しいインスタンスを生成します。
func NewQuestionUsecase(questions QuestionRepository, categories CategoryRepository, users UserRepository) *questionUsecase {
	return &questionUsecase{questions: questions, categories: categories, users: users}
}

// List returns every question when page is nil, otherwise the requested window.
func (u *questionUsecase) List(ctx context.Context, page *Page) ([]entity.Question, error) {
	if page == nil {
		return u.questions.All(ctx)
	}
	return u.questions.Limit(ctx, page.Offset, page.Size)
}

// Get はIDで問題と回答を取得します。
func (u *questionUsecase) Get(ctx context.Context, id uint) (QuestionDetail, error) {
	q, err := u.find(ctx, id)
	if err != nil {
		return QuestionDetail{}, err
	}
	answers, err := u.questions.Answers(ctx, q)
	if err != nil {
		return QuestionDetail{}, fmt.Errorf("failed to load answers: %w", err)
	}
	return QuestionDetail{Question: q, Answers: answers}, nil
}

// Create は認証済みユーザーを作者として問題を登録します。
// カテゴリと作者が存在しない場合はそれぞれErrCategoryNotFound、ErrUserNotFoundを返します。
func (u *questionUsecase) Create(ctx context.Context, in CreateQuestionInput) (entity.Question, error) {
	q, err := entity.NewQuestionFromIDs(entity.IDOf(in.AuthorID), in.CategoryID, in.Text, in.Difficulty)
	if err != nil {
		return entity.Question{}, err
	}

	if _, ok, err := u.categories.FindByID(ctx, in.CategoryID); err != nil {
		return entity.Question{}, fmt.Errorf("failed to look up category: %w", err)
	} else if !ok {
		return entity.Question{}, ErrCategoryNotFound
	}
	if _, ok, err := u.users.FindByID(ctx, in.AuthorID); err != nil {
		return entity.Question{}, fmt.Errorf("failed to look up author: %w", err)
	} else if !ok {
		return entity.Question{}, ErrUserNotFound
	}

	saved, err := u.questions.Save(ctx, &q)
	if err != nil {
		return entity.Question{}, fmt.Errorf("failed to save question: %w", err)
	}
	return saved, nil
}

// AddAnswer は問題に回答を追加し、追加後の回答一覧を返します。
func (u *questionUsecase) AddAnswer(ctx context.Context, questionID uint, text string, isCorrect bool) ([]entity.Answer, error) {
	q, err := u.find(ctx, questionID)
	if err != nil {
		return nil, err
	}
	if _, err := u.questions.AddAnswer(ctx, q, text, isCorrect); err != nil {
		return nil, fmt.Errorf("failed to add answer: %w", err)
	}
	return u.questions.Answers(ctx, q)
}

// Delete は問題を削除します。作者のいる問題は作者本人のみが削除できます。
func (u *questionUsecase) Delete(ctx context.Context, requesterID, questionID uint) error {
	q, err := u.find(ctx, questionID)
	if err != nil {
		return err
	}
	if author, ok := q.UserID().Get(); ok && author != requesterID {
		return ErrForbidden
	}
	if err := u.questions.Delete(ctx, &q); err != nil {
		return fmt.Errorf("failed to delete question: %w", err)
	}
	return nil
}

// Sets は問題を含むセットの一覧を返します。
func (u *questionUsecase) Sets(ctx context.Context, questionID uint) ([]entity.Set, error) {
	q, err := u.find(ctx, questionID)
	if err != nil {
		return nil, err
	}
	return u.questions.Sets(ctx, q)
}

func (u *questionUsecase) find(ctx context.Context, id uint) (entity.Question, error) {
	q, ok, err := u.questions.FindByID(ctx, id)
	if err != nil {
		return entity.Question{}, fmt.Errorf("failed to look up question: %w", err)
	}
	if !ok {
		return entity.Question{}, ErrQuestionNotFound
	}
	return q, nil
}
