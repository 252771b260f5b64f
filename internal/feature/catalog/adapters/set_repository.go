package adapters

import (
	"context"
	"database/sql"

	"quiz_backend/internal/feature/catalog/domain/entity"
	"quiz_backend/internal/feature/catalog/usecase"
	"quiz_backend/internal/platform/db"
)

const (
	setInsertSQL = `INSERT INTO sets ("userId", "interviewId", "set")` +
		` VALUES (@userId, @interviewId, @name) RETURNING "id"`
	setDeleteSQL    = `DELETE FROM sets WHERE "id" = @id`
	setByIDSQL      = `SELECT * FROM sets WHERE "id" = @id`
	setAllSQL       = `SELECT * FROM sets ORDER BY "id"`
	setQuestionsSQL = `SELECT questions.* FROM questions` +
		` INNER JOIN sets_questions ON sets_questions."questionId" = questions."id"` +
		` WHERE sets_questions."setId" = @id ORDER BY questions."id"`
	setAddQuestionSQL    = `INSERT INTO sets_questions ("setId", "questionId") VALUES (@setId, @questionId)`
	setRemoveQuestionSQL = `DELETE FROM sets_questions WHERE "setId" = @setId AND "questionId" = @questionId`
)

// setRepository はsetsテーブルと中間テーブルsets_questionsに対するリポジトリ実装です。
type setRepository struct {
	gw *db.Gateway
}

var _ usecase.SetRepository = (*setRepository)(nil)

// NewSetRepository は指定されたGatewayでsetRepositoryの新しいインスタンスを生成します。
func NewSetRepository(gw *db.Gateway) *setRepository {
	return &setRepository{gw: gw}
}

func (r *setRepository) Save(ctx context.Context, s *entity.Set) (entity.Set, error) {
	var saved entity.Set
	err := r.gw.WriteScope(ctx, func(c db.Conn) error {
		id, err := c.Insert(setInsertSQL,
			sql.Named("userId", nullable(s.UserID())),
			sql.Named("interviewId", nullable(s.InterviewID())),
			sql.Named("name", s.Name()),
		)
		if err != nil {
			return err
		}
		saved, err = findSet(c, setByIDSQL, sql.Named("id", id))
		return err
	})
	if err != nil {
		return entity.Set{}, err
	}
	s.Stamp(saved.ID(), saved.CreatedAt(), saved.UpdatedAt())
	return saved, nil
}

func (r *setRepository) Delete(ctx context.Context, s *entity.Set) error {
	err := r.gw.Scope(ctx, func(c db.Conn) error {
		_, err := c.Exec(setDeleteSQL, sql.Named("id", s.ID()))
		return err
	})
	if err != nil {
		return err
	}
	s.Detach()
	return nil
}

func (r *setRepository) FindByID(ctx context.Context, id uint) (s entity.Set, ok bool, err error) {
	err = r.gw.Scope(ctx, func(c db.Conn) error {
		s, ok, err = firstSet(c, setByIDSQL, sql.Named("id", id))
		return err
	})
	return s, ok, err
}

func (r *setRepository) All(ctx context.Context) ([]entity.Set, error) {
	var rows []SetModel
	if err := r.gw.Scope(ctx, func(c db.Conn) error {
		return c.Find(&rows, setAllSQL)
	}); err != nil {
		return nil, err
	}
	return toSets(rows), nil
}

// User returns the owner of s. ok is false without a query when s has no owner.
func (r *setRepository) User(ctx context.Context, s entity.Set) (u entity.User, ok bool, err error) {
	userID, set := s.UserID().Get()
	if !set {
		return entity.User{}, false, nil
	}
	err = r.gw.Scope(ctx, func(c db.Conn) error {
		u, ok, err = firstUser(c, userByIDSQL, sql.Named("id", userID))
		return err
	})
	return u, ok, err
}

// Questions returns the members of s in id order.
func (r *setRepository) Questions(ctx context.Context, s entity.Set) ([]entity.Question, error) {
	var rows []QuestionModel
	if err := r.gw.Scope(ctx, func(c db.Conn) error {
		return c.Find(&rows, setQuestionsSQL, sql.Named("id", s.ID()))
	}); err != nil {
		return nil, err
	}
	return toQuestions(rows)
}

func (r *setRepository) AddQuestion(ctx context.Context, s entity.Set, q entity.Question) error {
	return r.gw.Scope(ctx, func(c db.Conn) error {
		_, err := c.Exec(setAddQuestionSQL, sql.Named("setId", s.ID()), sql.Named("questionId", q.ID()))
		return err
	})
}

func (r *setRepository) RemoveQuestion(ctx context.Context, s entity.Set, q entity.Question) error {
	return r.gw.Scope(ctx, func(c db.Conn) error {
		_, err := c.Exec(setRemoveQuestionSQL, sql.Named("setId", s.ID()), sql.Named("questionId", q.ID()))
		return err
	})
}

func firstSet(c db.Conn, query string, args ...any) (entity.Set, bool, error) {
	var row SetModel
	found, err := c.First(&row, query, args...)
	if err != nil || !found {
		return entity.Set{}, false, err
	}
	return toSet(row), true, nil
}

func findSet(c db.Conn, query string, args ...any) (entity.Set, error) {
	v, ok, err := firstSet(c, query, args...)
	if err != nil {
		return entity.Set{}, err
	}
	if !ok {
		return entity.Set{}, errRowVanished
	}
	return v, nil
}
