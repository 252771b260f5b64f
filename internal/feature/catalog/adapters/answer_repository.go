package adapters

import (
	"context"
	"database/sql"

	"quiz_backend/internal/feature/catalog/domain/entity"
	"quiz_backend/internal/feature/catalog/usecase"
	"quiz_backend/internal/platform/db"
)

const (
	answerInsertSQL = `INSERT INTO answers ("questionId", "text", "isCorrect")` +
		` VALUES (@questionId, @text, @isCorrect) RETURNING "id"`
	answerDeleteSQL = `DELETE FROM answers WHERE "id" = @id`
	answerByIDSQL   = `SELECT * FROM answers WHERE "id" = @id`
)

// answerRepository はanswersテーブルに対するリポジトリ実装です。
type answerRepository struct {
	gw *db.Gateway
}

var _ usecase.AnswerRepository = (*answerRepository)(nil)

// NewAnswerRepository は指定されたGatewayでanswerRepositoryの新しいインスタンスを生成します。
func NewAnswerRepository(gw *db.Gateway) *answerRepository {
	return &answerRepository{gw: gw}
}

func (r *answerRepository) Save(ctx context.Context, a *entity.Answer) (entity.Answer, error) {
	var saved entity.Answer
	err := r.gw.WriteScope(ctx, func(c db.Conn) error {
		id, err := c.Insert(answerInsertSQL,
			sql.Named("questionId", a.QuestionID()),
			sql.Named("text", a.Text()),
			sql.Named("isCorrect", a.IsCorrect()),
		)
		if err != nil {
			return err
		}
		saved, err = findAnswer(c, answerByIDSQL, sql.Named("id", id))
		return err
	})
	if err != nil {
		return entity.Answer{}, err
	}
	a.Stamp(saved.ID(), saved.CreatedAt(), saved.UpdatedAt())
	return saved, nil
}

func (r *answerRepository) Delete(ctx context.Context, a *entity.Answer) error {
	err := r.gw.Scope(ctx, func(c db.Conn) error {
		_, err := c.Exec(answerDeleteSQL, sql.Named("id", a.ID()))
		return err
	})
	if err != nil {
		return err
	}
	a.Detach()
	return nil
}

func (r *answerRepository) FindByID(ctx context.Context, id uint) (a entity.Answer, ok bool, err error) {
	err = r.gw.Scope(ctx, func(c db.Conn) error {
		a, ok, err = firstAnswer(c, answerByIDSQL, sql.Named("id", id))
		return err
	})
	return a, ok, err
}

// Question returns the question a answers; ok is false when it no longer exists.
func (r *answerRepository) Question(ctx context.Context, a entity.Answer) (q entity.Question, ok bool, err error) {
	err = r.gw.Scope(ctx, func(c db.Conn) error {
		q, ok, err = firstQuestion(c, questionByIDSQL, sql.Named("id", a.QuestionID()))
		return err
	})
	return q, ok, err
}

func firstAnswer(c db.Conn, query string, args ...any) (entity.Answer, bool, error) {
	var row AnswerModel
	found, err := c.First(&row, query, args...)
	if err != nil || !found {
		return entity.Answer{}, false, err
	}
	a, err := toAnswer(row)
	if err != nil {
		return entity.Answer{}, false, err
	}
	return a, true, nil
}

func findAnswer(c db.Conn, query string, args ...any) (entity.Answer, error) {
	v, ok, err := firstAnswer(c, query, args...)
	if err != nil {
		return entity.Answer{}, err
	}
	if !ok {
		return entity.Answer{}, errRowVanished
	}
	return v, nil
}
