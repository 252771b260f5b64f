package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"quiz_backend/internal/feature/catalog/domain/entity"
	"quiz_backend/internal/feature/catalog/transport/http/dto"
)

// CategoryUsecase はカテゴリ操作のユースケースを定義します。
type CategoryUsecase interface {
	List(ctx context.Context) ([]entity.Category, error)
	Create(ctx context.Context, name string) (entity.Category, error)
}

// CategoryHandler はカテゴリ関連のHTTPリクエストを処理します。
type CategoryHandler struct {
	categories CategoryUsecase
}

// NewCategoryHandler はCategoryHandlerの新しいインスタンスを生成します。
func NewCategoryHandler(categories CategoryUsecase) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

// List は GET /categories を処理します。
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categories.List(c.Request.Context())
	if err != nil {
		respondError(c, "list categories", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewCategoryList(categories))
}

// Create は POST /categories を処理します。
func (h *CategoryHandler) Create(c *gin.Context) {
	var req dto.CreateCategoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, "create category", err)
		return
	}
	category, err := h.categories.Create(c.Request.Context(), req.Name)
	if err != nil {
		respondError(c, "create category", err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewCategoryRes(category))
}
