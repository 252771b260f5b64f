// Package handler はcatalogフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"quiz_backend/internal/feature/catalog/transport/http/dto"
	"quiz_backend/internal/feature/catalog/usecase"
	"quiz_backend/internal/platform/db"
	"quiz_backend/internal/shared/validation"
)

// respondError はユースケースのエラーをHTTPステータスに変換して返却します。
//   - 入力検証エラー: 400（対象フィールド付き）
//   - 対象が存在しない: 404
//   - 他人の問題の変更: 403
//   - 一意制約違反: 409
//   - それ以外: 500（詳細は公開しない）
func respondError(c *gin.Context, op string, err error) {
	var ve *validation.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: ve.Message, Field: ve.Field})
	case errors.Is(err, usecase.ErrQuestionNotFound),
		errors.Is(err, usecase.ErrCategoryNotFound),
		errors.Is(err, usecase.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorRes{Error: err.Error()})
	case errors.Is(err, usecase.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorRes{Error: err.Error()})
	case db.IsUniqueViolation(err):
		slog.Warn(op+" conflict", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusConflict, dto.ErrorRes{Error: "already exists"})
	default:
		slog.Error(op+" failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, dto.ErrorRes{Error: "internal server error"})
	}
}

// bindError はリクエストのバインドに失敗した場合に400を返却します。
func bindError(c *gin.Context, op string, err error) {
	slog.Warn(op+" validation failed", "error", err, "remote_addr", c.ClientIP())
	c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: err.Error()})
}
