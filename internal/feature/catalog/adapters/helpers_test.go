package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"quiz_backend/internal/feature/catalog/domain/entity"
	"quiz_backend/internal/platform/db"
)

// setupTestDB はテスト用のインメモリSQLiteデータベースを準備し、全テーブルを作成します。
// :memory: は接続ごとに別データベースになるため、接続数を1に固定します。
func setupTestDB(t *testing.T, opts ...db.Option) *db.Gateway {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err, "failed to initialize test database")

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.Migrate(gdb, Models()...), "failed to migrate test database")
	return db.NewGateway(gdb, opts...)
}

func mustSaveUser(t *testing.T, gw *db.Gateway, name string) entity.User {
	t.Helper()

	u, err := entity.NewUserFromName(name)
	require.NoError(t, err)
	_, err = NewUserRepository(gw).Save(context.Background(), &u)
	require.NoError(t, err)
	return u
}

func mustSaveCategory(t *testing.T, gw *db.Gateway, name string) entity.Category {
	t.Helper()

	c := entity.NewCategory(name)
	_, err := NewCategoryRepository(gw).Save(context.Background(), &c)
	require.NoError(t, err)
	return c
}

func mustSaveQuestion(t *testing.T, gw *db.Gateway, author *entity.User, category entity.Category, text string) entity.Question {
	t.Helper()

	q, err := entity.NewQuestion(author, category, text, entity.DifficultyMedium)
	require.NoError(t, err)
	_, err = NewQuestionRepository(gw).Save(context.Background(), &q)
	require.NoError(t, err)
	return q
}

func questionIDs(qs []entity.Question) []uint {
	ids := make([]uint, 0, len(qs))
	for _, q := range qs {
		ids = append(ids, q.ID())
	}
	return ids
}
