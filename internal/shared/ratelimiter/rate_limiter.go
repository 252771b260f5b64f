// Package ratelimiter はクライアント単位の固定ウィンドウ方式のレート制限を提供します。
package ratelimiter

import (
	"sync"
	"time"
)

// RateLimiter は、キー（クライアントIPなど）ごとに interval あたり limit 回までの操作を許可します。
// 複数のゴルーチンから安全に使用できます。
type RateLimiter struct {
	limit    int           // ウィンドウあたりの上限
	interval time.Duration // どの単位でリセットするか
	now      func() time.Time

	mu      sync.Mutex
	windows map[string]*window
}

type window struct {
	count     int
	lastReset time.Time
}

// NewRateLimiter は新しいRateLimiterのインスタンスを生成します。
func NewRateLimiter(limit int, interval time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:    limit,
		interval: interval,
		now:      time.Now,
		windows:  make(map[string]*window),
	}
}

// Allow は key の操作を1回記録し、上限内であれば true を返します。
// 上限を超えた場合は false と、ウィンドウがリセットされるまでの時間を返します。
func (rl *RateLimiter) Allow(key string) (bool, time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	w, ok := rl.windows[key]
	// interval を過ぎたらカウントリセット
	if !ok || now.Sub(w.lastReset) >= rl.interval {
		w = &window{lastReset: now}
		rl.windows[key] = w
		rl.sweep(now)
	}

	w.count++
	if w.count > rl.limit {
		return false, rl.interval - now.Sub(w.lastReset)
	}
	return true, 0
}

// sweep は期限切れのウィンドウを破棄します。呼び出し側で mu を保持していること。
func (rl *RateLimiter) sweep(now time.Time) {
	for k, w := range rl.windows {
		if now.Sub(w.lastReset) >= rl.interval {
			delete(rl.windows, k)
		}
	}
}
