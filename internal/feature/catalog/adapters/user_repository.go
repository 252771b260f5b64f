package adapters

import (
	"context"
	"database/sql"

	"quiz_backend/internal/feature/catalog/domain/entity"
	"quiz_backend/internal/feature/catalog/usecase"
	"quiz_backend/internal/platform/db"
)

const (
	userInsertSQL = `INSERT INTO users ("email", "username", "passwordHash", "name")` +
		` VALUES (@email, @username, @passwordHash, @name) RETURNING "id"`
	userDeleteSQL     = `DELETE FROM users WHERE "id" = @id`
	userByIDSQL       = `SELECT * FROM users WHERE "id" = @id`
	userByUsernameSQL = `SELECT * FROM users WHERE "username" = @username`
	userAllSQL        = `SELECT * FROM users ORDER BY "id"`
	userQuestionsSQL  = `SELECT * FROM questions WHERE "userId" = @id ORDER BY "id" DESC`
	userSetsSQL       = `SELECT * FROM sets WHERE "userId" = @id ORDER BY "id"`
)

// userRepository はusersテーブルに対するリポジトリ実装です。
type userRepository struct {
	gw *db.Gateway
}

// userRepositoryがUserRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.UserRepository = (*userRepository)(nil)

// NewUserRepository は指定されたGatewayでuserRepositoryの新しいインスタンスを生成します。
func NewUserRepository(gw *db.Gateway) *userRepository {
	return &userRepository{gw: gw}
}

// Save inserts u and returns the row as stored. u's id is set only when both the insert and the
// read-back succeed; on error u is left as it was.
func (r *userRepository) Save(ctx context.Context, u *entity.User) (entity.User, error) {
	var saved entity.User
	err := r.gw.WriteScope(ctx, func(c db.Conn) error {
		id, err := c.Insert(userInsertSQL,
			sql.Named("email", u.Email()),
			sql.Named("username", u.Username()),
			sql.Named("passwordHash", u.PasswordHash()),
			sql.Named("name", u.Name()),
		)
		if err != nil {
			return err
		}
		saved, err = findUser(c, userByIDSQL, sql.Named("id", id))
		return err
	})
	if err != nil {
		return entity.User{}, err
	}
	u.Stamp(saved.ID(), saved.CreatedAt(), saved.UpdatedAt())
	return saved, nil
}

// Delete removes u's row and clears its id. A transient user issues a delete that matches nothing.
func (r *userRepository) Delete(ctx context.Context, u *entity.User) error {
	err := r.gw.Scope(ctx, func(c db.Conn) error {
		_, err := c.Exec(userDeleteSQL, sql.Named("id", u.ID()))
		return err
	})
	if err != nil {
		return err
	}
	u.Detach()
	return nil
}

// FindByID returns the user with id; ok is false when there is none.
func (r *userRepository) FindByID(ctx context.Context, id uint) (u entity.User, ok bool, err error) {
	err = r.gw.Scope(ctx, func(c db.Conn) error {
		u, ok, err = firstUser(c, userByIDSQL, sql.Named("id", id))
		return err
	})
	return u, ok, err
}

// FindByUsername returns the user with username; ok is false when there is none.
func (r *userRepository) FindByUsername(ctx context.Context, username string) (u entity.User, ok bool, err error) {
	err = r.gw.Scope(ctx, func(c db.Conn) error {
		u, ok, err = firstUser(c, userByUsernameSQL, sql.Named("username", username))
		return err
	})
	return u, ok, err
}

// All returns every user in id order.
func (r *userRepository) All(ctx context.Context) ([]entity.User, error) {
	var rows []UserModel
	if err := r.gw.Scope(ctx, func(c db.Conn) error {
		return c.Find(&rows, userAllSQL)
	}); err != nil {
		return nil, err
	}
	return toUsers(rows)
}

// Questions returns the questions authored by u.
func (r *userRepository) Questions(ctx context.Context, u entity.User) ([]entity.Question, error) {
	var rows []QuestionModel
	if err := r.gw.Scope(ctx, func(c db.Conn) error {
		return c.Find(&rows, userQuestionsSQL, sql.Named("id", u.ID()))
	}); err != nil {
		return nil, err
	}
	return toQuestions(rows)
}

// Sets returns the sets owned by u.
func (r *userRepository) Sets(ctx context.Context, u entity.User) ([]entity.Set, error) {
	var rows []SetModel
	if err := r.gw.Scope(ctx, func(c db.Conn) error {
		return c.Find(&rows, userSetsSQL, sql.Named("id", u.ID()))
	}); err != nil {
		return nil, err
	}
	return toSets(rows), nil
}

func firstUser(c db.Conn, query string, args ...any) (entity.User, bool, error) {
	var row UserModel
	found, err := c.First(&row, query, args...)
	if err != nil || !found {
		return entity.User{}, false, err
	}
	u, err := toUser(row)
	if err != nil {
		return entity.User{}, false, err
	}
	return u, true, nil
}

// findUser is firstUser for a row that must exist, such as the read-back after an insert.
func findUser(c db.Conn, query string, args ...any) (entity.User, error) {
	u, ok, err := firstUser(c, query, args...)
	if err != nil {
		return entity.User{}, err
	}
	if !ok {
		return entity.User{}, errRowVanished
	}
	return u, nil
}
