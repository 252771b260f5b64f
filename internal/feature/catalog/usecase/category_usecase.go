package usecase

import (
	"context"
	"fmt"

	"quiz_backend/internal/feature/catalog/domain/entity"
)

// categoryUsecase はカテゴリの一覧と作成を扱います。
type categoryUsecase struct {
	categories CategoryRepository
}

// NewCategoryUsecase はcategoryUsecaseの新しいインスタンスを生成します。
func NewCategoryUsecase(categories CategoryRepository) *categoryUsecase {
	return &categoryUsecase{categories: categories}
}

func (u *categoryUsecase) List(ctx context.Context) ([]entity.Category, error) {
	return u.categories.All(ctx)
}

func (u *categoryUsecase) Create(ctx context.Context, name string) (entity.Category, error) {
	c := entity.NewCategory(name)
	saved, err := u.categories.Save(ctx, &c)
	if err != nil {
		return entity.Category{}, fmt.Errorf("failed to save category: %w", err)
	}
	return saved, nil
}
