// Package handler はプラットフォームレベルのエンドポイント用HTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const defaultPingTimeout = 2 * time.Second

// Pinger はデータベースの疎通確認を行います。*db.Gatewayが実装します。
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler は /healthz エンドポイントを処理します。
type HealthHandler struct {
	db      Pinger
	timeout time.Duration
}

// NewHealthHandler はHealthHandlerを生成します。timeoutが0以下の場合は既定値を使用します。
func NewHealthHandler(db Pinger, timeout time.Duration) *HealthHandler {
	if timeout <= 0 {
		timeout = defaultPingTimeout
	}
	return &HealthHandler{db: db, timeout: timeout}
}

// Health はサービスとデータベースの状態を返します。
// HTTPメソッドに応じて適切にレスポンスし、キャッシュを防止します。
func (h *HealthHandler) Health(c *gin.Context) {
	// 明示的にキャッシュを防止
	c.Header("Cache-Control", "no-store")

	if c.Request.Method == http.MethodOptions {
		c.Status(http.StatusNoContent)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	status, body := http.StatusOK, gin.H{"status": "ok", "database": "up"}
	if err := h.db.Ping(ctx); err != nil {
		slog.Error("health check failed", "error", err)
		status, body = http.StatusServiceUnavailable, gin.H{"status": "unavailable", "database": "down"}
	}

	if c.Request.Method == http.MethodHead {
		c.Status(status)
		return
	}
	c.JSON(status, body)
}
