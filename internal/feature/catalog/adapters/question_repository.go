package adapters

import (
	"context"
	"database/sql"

	"quiz_backend/internal/feature/catalog/domain/entity"
	"quiz_backend/internal/feature/catalog/usecase"
	"quiz_backend/internal/platform/db"
	"quiz_backend/internal/shared/validation"
)

const (
	questionInsertSQL = `INSERT INTO questions ("userId", "categoryId", "text", "difficulty")` +
		` VALUES (@userId, @categoryId, @text, @difficulty) RETURNING "id"`
	questionDeleteSQL  = `DELETE FROM questions WHERE "id" = @id`
	questionByIDSQL    = `SELECT * FROM questions WHERE "id" = @id`
	questionAllSQL     = `SELECT * FROM questions ORDER BY "id" DESC`
	questionLimitSQL   = `SELECT * FROM questions ORDER BY "id" DESC LIMIT @size OFFSET @offset`
	questionAnswersSQL = `SELECT * FROM answers WHERE "questionId" = @id ORDER BY "id"`
	questionSetsSQL    = `SELECT sets.* FROM sets` +
		` INNER JOIN sets_questions ON sets_questions."setId" = sets."id"` +
		` WHERE sets_questions."questionId" = @id ORDER BY sets."id"`
)

// questionRepository はquestionsテーブルに対するリポジトリ実装です。
type questionRepository struct {
	gw      *db.Gateway
	answers *answerRepository
}

// questionRepositoryがQuestionRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.QuestionRepository = (*questionRepository)(nil)

// NewQuestionRepository は指定されたGatewayでquestionRepositoryの新しいインスタンスを生成します。
func NewQuestionRepository(gw *db.Gateway) *questionRepository {
	return &questionRepository{gw: gw, answers: NewAnswerRepository(gw)}
}

// Save inserts q and returns the stored row. A question without an author is stored with a NULL userId.
func (r *questionRepository) Save(ctx context.Context, q *entity.Question) (entity.Question, error) {
	var saved entity.Question
	err := r.gw.WriteScope(ctx, func(c db.Conn) error {
		id, err := c.Insert(questionInsertSQL,
			sql.Named("userId", nullable(q.UserID())),
			sql.Named("categoryId", q.CategoryID()),
			sql.Named("text", q.Text()),
			sql.Named("difficulty", int(q.Difficulty())),
		)
		if err != nil {
			return err
		}
		saved, err = findQuestion(c, questionByIDSQL, sql.Named("id", id))
		return err
	})
	if err != nil {
		return entity.Question{}, err
	}
	q.Stamp(saved.ID(), saved.CreatedAt(), saved.UpdatedAt())
	return saved, nil
}

// Delete removes q's row and clears its id. Answers and set memberships are left to the schema.
func (r *questionRepository) Delete(ctx context.Context, q *entity.Question) error {
	err := r.gw.Scope(ctx, func(c db.Conn) error {
		_, err := c.Exec(questionDeleteSQL, sql.Named("id", q.ID()))
		return err
	})
	if err != nil {
		return err
	}
	q.Detach()
	return nil
}

func (r *questionRepository) FindByID(ctx context.Context, id uint) (q entity.Question, ok bool, err error) {
	err = r.gw.Scope(ctx, func(c db.Conn) error {
		q, ok, err = firstQuestion(c, questionByIDSQL, sql.Named("id", id))
		return err
	})
	return q, ok, err
}

// All returns every question, newest id first.
func (r *questionRepository) All(ctx context.Context) ([]entity.Question, error) {
	var rows []QuestionModel
	if err := r.gw.Scope(ctx, func(c db.Conn) error {
		return c.Find(&rows, questionAllSQL)
	}); err != nil {
		return nil, err
	}
	return toQuestions(rows)
}

// Limit returns up to size questions, newest id first, after skipping offset of them.
// Pages are not stable across concurrent inserts.
func (r *questionRepository) Limit(ctx context.Context, offset, size int) ([]entity.Question, error) {
	if offset < 0 {
		return nil, validation.New(validation.FieldOffset, "offset must not be negative")
	}
	if size < 0 {
		return nil, validation.New(validation.FieldSize, "size must not be negative")
	}
	var rows []QuestionModel
	if err := r.gw.Scope(ctx, func(c db.Conn) error {
		return c.Find(&rows, questionLimitSQL, sql.Named("size", size), sql.Named("offset", offset))
	}); err != nil {
		return nil, err
	}
	return toQuestions(rows)
}

// User returns q's author. ok is false without a query when q has no author,
// and also when the author row no longer exists.
func (r *questionRepository) User(ctx context.Context, q entity.Question) (u entity.User, ok bool, err error) {
	userID, set := q.UserID().Get()
	if !set {
		return entity.User{}, false, nil
	}
	err = r.gw.Scope(ctx, func(c db.Conn) error {
		u, ok, err = firstUser(c, userByIDSQL, sql.Named("id", userID))
		return err
	})
	return u, ok, err
}

// Category returns q's category; ok is false when the row no longer exists.
func (r *questionRepository) Category(ctx context.Context, q entity.Question) (cat entity.Category, ok bool, err error) {
	err = r.gw.Scope(ctx, func(c db.Conn) error {
		cat, ok, err = firstCategory(c, categoryByIDSQL, sql.Named("id", q.CategoryID()))
		return err
	})
	return cat, ok, err
}

// Answers returns the answers to q in insertion order.
func (r *questionRepository) Answers(ctx context.Context, q entity.Question) ([]entity.Answer, error) {
	var rows []AnswerModel
	if err := r.gw.Scope(ctx, func(c db.Conn) error {
		return c.Find(&rows, questionAnswersSQL, sql.Named("id", q.ID()))
	}); err != nil {
		return nil, err
	}
	return toAnswers(rows)
}

// AddAnswer stores a new answer to q and returns q unchanged.
// q must already be saved.
func (r *questionRepository) AddAnswer(ctx context.Context, q entity.Question, text string, isCorrect bool) (entity.Question, error) {
	a, err := entity.NewAnswer(q.ID(), text, isCorrect)
	if err != nil {
		return q, err
	}
	if _, err := r.answers.Save(ctx, &a); err != nil {
		return q, err
	}
	return q, nil
}

// Sets returns the sets that contain q.
func (r *questionRepository) Sets(ctx context.Context, q entity.Question) ([]entity.Set, error) {
	var rows []SetModel
	if err := r.gw.Scope(ctx, func(c db.Conn) error {
		return c.Find(&rows, questionSetsSQL, sql.Named("id", q.ID()))
	}); err != nil {
		return nil, err
	}
	return toSets(rows), nil
}

func firstQuestion(c db.Conn, query string, args ...any) (entity.Question, bool, error) {
	var row QuestionModel
	found, err := c.First(&row, query, args...)
	if err != nil || !found {
		return entity.Question{}, false, err
	}
	q, err := toQuestion(row)
	if err != nil {
		return entity.Question{}, false, err
	}
	return q, true, nil
}

func findQuestion(c db.Conn, query string, args ...any) (entity.Question, error) {
	q, ok, err := firstQuestion(c, query, args...)
	if err != nil {
		return entity.Question{}, err
	}
	if !ok {
		return entity.Question{}, errRowVanished
	}
	return q, nil
}
