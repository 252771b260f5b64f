package db

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// ErrNoGeneratedKey is returned by Conn.Insert when the statement produced no id.
var ErrNoGeneratedKey = errors.New("insert returned no generated key")

// Gateway hands out scoped connections from the pool.
// Statements are hand-written SQL with named parameters (@name, bound with sql.Named).
type Gateway struct {
	db         *gorm.DB
	atomicSave bool
}

// Option configures a Gateway.
type Option func(*Gateway)

// WithAtomicSave runs WriteScope inside a transaction, so an insert whose read-back fails is rolled back.
func WithAtomicSave(atomic bool) Option {
	return func(g *Gateway) {
		g.atomicSave = atomic
	}
}

// NewGateway wraps an open gorm handle.
func NewGateway(db *gorm.DB, opts ...Option) *Gateway {
	g := &Gateway{db: db}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// AtomicSave reports whether WriteScope is transactional.
func (g *Gateway) AtomicSave() bool {
	return g.atomicSave
}

// Scope pins one pooled connection for the duration of fn and releases it on every exit path.
func (g *Gateway) Scope(ctx context.Context, fn func(Conn) error) error {
	return g.db.WithContext(ctx).Connection(func(tx *gorm.DB) error {
		return fn(newConn(tx))
	})
}

// WriteScope is Scope for an insert followed by its read-back.
// With atomic saves enabled the pair commits or rolls back together.
func (g *Gateway) WriteScope(ctx context.Context, fn func(Conn) error) error {
	if !g.atomicSave {
		return g.Scope(ctx, fn)
	}
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(newConn(tx))
	})
}

// Ping checks that the database is reachable.
func (g *Gateway) Ping(ctx context.Context) error {
	sqlDB, err := g.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close releases the pool. The gateway must not be used afterwards.
func (g *Gateway) Close() error {
	sqlDB, err := g.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Conn executes statements on a pinned connection. It is only valid inside the scope that created it.
type Conn struct {
	tx *gorm.DB
}

// newConn starts a session so each statement gets its own copy of the pinned handle's state.
func newConn(tx *gorm.DB) Conn {
	return Conn{tx: tx.Session(&gorm.Session{})}
}

// Insert runs an INSERT ... RETURNING "id" statement and returns the generated key.
func (c Conn) Insert(query string, args ...any) (uint, error) {
	var id uint
	res := c.tx.Raw(query, args...).Scan(&id)
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 || id == 0 {
		return 0, ErrNoGeneratedKey
	}
	return id, nil
}

// Exec runs an update or delete and returns the number of affected rows.
func (c Conn) Exec(query string, args ...any) (int64, error) {
	res := c.tx.Exec(query, args...)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

// First scans the first row of query into dest and reports whether a row was found.
func (c Conn) First(dest any, query string, args ...any) (bool, error) {
	res := c.tx.Raw(query, args...).Scan(dest)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// Find scans every row of query into dest, which must point to a slice.
func (c Conn) Find(dest any, query string, args ...any) error {
	return c.tx.Raw(query, args...).Scan(dest).Error
}
