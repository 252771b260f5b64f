// Package router wires the HTTP handlers into a gin engine.
package router

import (
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	cataloghandler "quiz_backend/internal/feature/catalog/transport/handler"
	"quiz_backend/internal/platform/http/handler"
	jwtmw "quiz_backend/internal/platform/jwt"
	"quiz_backend/internal/shared/ratelimiter"
)

// Handlers groups the handlers mounted by NewRouter.
type Handlers struct {
	Health     *handler.HealthHandler
	Auth       *cataloghandler.AuthHandler
	Questions  *cataloghandler.QuestionHandler
	Categories *cataloghandler.CategoryHandler
}

// Options configures the middleware stack.
type Options struct {
	JWTSecret string
	// CORSAllowedOrigins enables CORS for the listed origins. Empty disables it.
	CORSAllowedOrigins []string
	// AuthRateLimiter throttles /signup and /login per client IP. Nil disables it.
	AuthRateLimiter *ratelimiter.RateLimiter
	// TrustedProxies lists the proxies allowed to set X-Forwarded-For.
	// Empty trusts none, so the client IP is the socket peer.
	TrustedProxies []string
	// Logger receives one record per request. Nil uses slog.Default.
	Logger *slog.Logger
}

// NewRouter builds the engine. It fails only when a trusted proxy is not a valid IP or CIDR.
func NewRouter(h Handlers, opts Options) (*gin.Engine, error) {
	r := gin.New()
	// gin は既定で全てのプロキシを信頼するため、明示的に上書きする
	if err := r.SetTrustedProxies(opts.TrustedProxies); err != nil {
		return nil, fmt.Errorf("invalid trusted proxies: %w", err)
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	r.Use(gin.Recovery(), requestLogger(logger))

	if len(opts.CORSAllowedOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:  opts.CORSAllowedOrigins,
			AllowMethods:  []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowHeaders:  []string{"Authorization", "Content-Type"},
			ExposeHeaders: []string{"Content-Length"},
			MaxAge:        12 * time.Hour,
		}))
	}

	// 認証不要
	// 導通確認用
	r.GET("/healthz", h.Health.Health)
	r.HEAD("/healthz", h.Health.Health)
	r.OPTIONS("/healthz", h.Health.Health)
	credentials := r.Group("/")
	if opts.AuthRateLimiter != nil {
		credentials.Use(rateLimit(opts.AuthRateLimiter))
	}
	// 新規ユーザー登録
	credentials.POST("/signup", h.Auth.Signup)
	// ログイン（JWT 発行）
	credentials.POST("/login", h.Auth.Login)

	r.GET("/questions", h.Questions.List)
	r.GET("/questions/:id", h.Questions.Get)
	r.GET("/questions/:id/sets", h.Questions.Sets)
	r.GET("/categories", h.Categories.List)

	// 認証必須のルート
	auth := r.Group("/")
	auth.Use(jwtmw.AuthRequired(opts.JWTSecret))
	{
		auth.POST("/questions", h.Questions.Create)
		auth.POST("/questions/:id/answers", h.Questions.AddAnswer)
		auth.DELETE("/questions/:id", h.Questions.Delete)
		auth.POST("/categories", h.Categories.Create)
	}

	return r, nil
}

// requestLogger はリクエストごとにメソッド・パス・ステータス・処理時間を記録します。
func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		level := slog.LevelInfo
		if c.Writer.Status() >= 500 {
			level = slog.LevelError
		}
		attrs := []any{
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"elapsed", time.Since(start),
			"remote_addr", c.ClientIP(),
		}
		if user := c.GetString(jwtmw.ContextUsername); user != "" {
			attrs = append(attrs, "user", user)
		}
		logger.Log(c.Request.Context(), level, "request", attrs...)
	}
}

// rateLimit はクライアントIPごとにリクエスト数を制限し、超過時は429を返します。
func rateLimit(rl *ratelimiter.RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, retryAfter := rl.Allow(c.ClientIP())
		if !ok {
			c.Header("Retry-After", strconv.Itoa(int(math.Ceil(retryAfter.Seconds()))))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			return
		}
		c.Next()
	}
}
