package adapters

import (
	"context"
	"database/sql"

	"quiz_backend/internal/feature/catalog/domain/entity"
	"quiz_backend/internal/feature/catalog/usecase"
	"quiz_backend/internal/platform/db"
)

const (
	categoryInsertSQL    = `INSERT INTO categories ("name") VALUES (@name) RETURNING "id"`
	categoryDeleteSQL    = `DELETE FROM categories WHERE "id" = @id`
	categoryByIDSQL      = `SELECT * FROM categories WHERE "id" = @id`
	categoryAllSQL       = `SELECT * FROM categories ORDER BY "name", "id"`
	categoryQuestionsSQL = `SELECT * FROM questions WHERE "categoryId" = @id ORDER BY "id" DESC`
)

// categoryRepository はcategoriesテーブルに対するリポジトリ実装です。
type categoryRepository struct {
	gw *db.Gateway
}

var _ usecase.CategoryRepository = (*categoryRepository)(nil)

// NewCategoryRepository は指定されたGatewayでcategoryRepositoryの新しいインスタンスを生成します。
func NewCategoryRepository(gw *db.Gateway) *categoryRepository {
	return &categoryRepository{gw: gw}
}

func (r *categoryRepository) Save(ctx context.Context, cat *entity.Category) (entity.Category, error) {
	var saved entity.Category
	err := r.gw.WriteScope(ctx, func(c db.Conn) error {
		id, err := c.Insert(categoryInsertSQL, sql.Named("name", cat.Name()))
		if err != nil {
			return err
		}
		saved, err = findCategory(c, categoryByIDSQL, sql.Named("id", id))
		return err
	})
	if err != nil {
		return entity.Category{}, err
	}
	cat.Stamp(saved.ID(), saved.CreatedAt(), saved.UpdatedAt())
	return saved, nil
}

func (r *categoryRepository) Delete(ctx context.Context, cat *entity.Category) error {
	err := r.gw.Scope(ctx, func(c db.Conn) error {
		_, err := c.Exec(categoryDeleteSQL, sql.Named("id", cat.ID()))
		return err
	})
	if err != nil {
		return err
	}
	cat.Detach()
	return nil
}

func (r *categoryRepository) FindByID(ctx context.Context, id uint) (cat entity.Category, ok bool, err error) {
	err = r.gw.Scope(ctx, func(c db.Conn) error {
		cat, ok, err = firstCategory(c, categoryByIDSQL, sql.Named("id", id))
		return err
	})
	return cat, ok, err
}

// All returns every category ordered by name.
func (r *categoryRepository) All(ctx context.Context) ([]entity.Category, error) {
	var rows []CategoryModel
	if err := r.gw.Scope(ctx, func(c db.Conn) error {
		return c.Find(&rows, categoryAllSQL)
	}); err != nil {
		return nil, err
	}
	return toCategories(rows), nil
}

// Questions returns the questions filed under cat, newest id first.
func (r *categoryRepository) Questions(ctx context.Context, cat entity.Category) ([]entity.Question, error) {
	var rows []QuestionModel
	if err := r.gw.Scope(ctx, func(c db.Conn) error {
		return c.Find(&rows, categoryQuestionsSQL, sql.Named("id", cat.ID()))
	}); err != nil {
		return nil, err
	}
	return toQuestions(rows)
}

func firstCategory(c db.Conn, query string, args ...any) (entity.Category, bool, error) {
	var row CategoryModel
	found, err := c.First(&row, query, args...)
	if err != nil || !found {
		return entity.Category{}, false, err
	}
	return toCategory(row), true, nil
}

func findCategory(c db.Conn, query string, args ...any) (entity.Category, error) {
	v, ok, err := firstCategory(c, query, args...)
	if err != nil {
		return entity.Category{}, err
	}
	if !ok {
		return entity.Category{}, errRowVanished
	}
	return v, nil
}
