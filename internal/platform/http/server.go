// Package http はHTTPサーバーの共通設定を提供します。
package http

import (
	"net/http"
	"time"
)

// ServerConfig はHTTPサーバーのタイムアウト設定を保持します。
type ServerConfig struct {
	Addr              string
	ReadHeaderTimeout time.Duration
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
}

// NewServer はタイムアウトを明示的に設定したHTTPサーバーを作成します。
//
// 設定:
//   - ReadHeaderTimeout: ヘッダー読み込みの最大時間（未設定時5秒、Slowloris対策）
//   - ReadTimeout / WriteTimeout: リクエスト全体の読み書きの最大時間
//   - IdleTimeout: keep-alive接続の維持期間（未設定時90秒）
//
// 注意:
//   - http.Serverのゼロ値にはタイムアウトがないため、常にこの関数を使用すること
func NewServer(cfg ServerConfig, handler http.Handler) *http.Server {
	readHeader := cfg.ReadHeaderTimeout
	if readHeader <= 0 {
		readHeader = 5 * time.Second
	}
	idle := cfg.IdleTimeout
	if idle <= 0 {
		idle = 90 * time.Second
	}
	return &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: readHeader,
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       idle,
	}
}
