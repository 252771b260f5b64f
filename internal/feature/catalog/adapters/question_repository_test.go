package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quiz_backend/internal/feature/catalog/domain/entity"
	"quiz_backend/internal/platform/db"
	"quiz_backend/internal/shared/validation"
)

// TestQuestionRepository_SaveRoundTrip は保存した問題が同じ内容で読み戻せることを検証します。
func TestQuestionRepository_SaveRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		atomic bool
	}{
		{"scoped save", false},
		{"transactional save", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			gw := setupTestDB(t, db.WithAtomicSave(tt.atomic))
			repo := NewQuestionRepository(gw)
			ctx := context.Background()

			author := mustSaveUser(t, gw, "alice")
			cat := mustSaveCategory(t, gw, "databases")

			q, err := entity.NewQuestion(&author, cat, "What is an index?", entity.DifficultyHard)
			require.NoError(t, err)

			saved, err := repo.Save(ctx, &q)
			require.NoError(t, err)
			assert.NotZero(t, q.ID())
			assert.True(t, saved.Equal(q))

			got, ok, err := repo.FindByID(ctx, q.ID())
			require.NoError(t, err)
			require.True(t, ok)
			assert.True(t, got.Equal(q))
			assert.Equal(t, entity.DifficultyHard, got.Difficulty())
			assert.Equal(t, entity.IDOf(author.ID()), got.UserID())
		})
	}
}

// TestQuestionRepository_NoAuthor は作者なしの問題がNULLとして保存され、作者の取得が見つからない結果になることを検証します。
func TestQuestionRepository_NoAuthor(t *testing.T) {
	t.Parallel()

	gw := setupTestDB(t)
	repo := NewQuestionRepository(gw)
	ctx := context.Background()

	cat := mustSaveCategory(t, gw, "misc")
	q := mustSaveQuestion(t, gw, nil, cat, "Who wrote this?")

	got, ok, err := repo.FindByID(ctx, q.ID())
	require.NoError(t, err)
	require.True(t, ok)
	assert.False(t, got.UserID().IsSet())

	_, ok, err = repo.User(ctx, got)
	require.NoError(t, err)
	assert.False(t, ok)
}

// TestQuestionRepository_OrphanedAuthor は作者が削除された問題の作者取得が見つからない結果になることを検証します。
func TestQuestionRepository_OrphanedAuthor(t *testing.T) {
	t.Parallel()

	gw := setupTestDB(t)
	repo := NewQuestionRepository(gw)
	ctx := context.Background()

	author := mustSaveUser(t, gw, "ghost")
	cat := mustSaveCategory(t, gw, "misc")
	q := mustSaveQuestion(t, gw, &author, cat, "Still here?")

	u, ok, err := repo.User(ctx, q)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, u.Equal(author))

	require.NoError(t, NewUserRepository(gw).Delete(ctx, &author))

	_, ok, err = repo.User(ctx, q)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestQuestionRepository_Category(t *testing.T) {
	t.Parallel()

	gw := setupTestDB(t)
	repo := NewQuestionRepository(gw)
	ctx := context.Background()

	cat := mustSaveCategory(t, gw, "networking")
	q := mustSaveQuestion(t, gw, nil, cat, "What is TCP?")

	got, ok, err := repo.Category(ctx, q)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, got.Equal(cat))
}

// TestQuestionRepository_AllAndLimit はIDの降順で全件取得とページングができることを検証します。
func TestQuestionRepository_AllAndLimit(t *testing.T) {
	t.Parallel()

	gw := setupTestDB(t)
	repo := NewQuestionRepository(gw)
	ctx := context.Background()

	cat := mustSaveCategory(t, gw, "go")
	var ids []uint
	for _, text := range []string{"q1", "q2", "q3", "q4"} {
		ids = append(ids, mustSaveQuestion(t, gw, nil, cat, text).ID())
	}

	all, err := repo.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, []uint{ids[3], ids[2], ids[1], ids[0]}, questionIDs(all))

	tests := []struct {
		name   string
		offset int
		size   int
		want   []uint
	}{
		{"first page", 0, 2, []uint{ids[3], ids[2]}},
		{"second page", 2, 2, []uint{ids[1], ids[0]}},
		{"partial page", 3, 2, []uint{ids[0]}},
		{"past the end", 10, 2, []uint{}},
		{"zero size", 0, 0, []uint{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.Limit(ctx, tt.offset, tt.size)
			require.NoError(t, err)
			assert.Equal(t, tt.want, questionIDs(got))
		})
	}
}

func TestQuestionRepository_LimitRejectsNegative(t *testing.T) {
	t.Parallel()

	gw := setupTestDB(t)
	repo := NewQuestionRepository(gw)
	ctx := context.Background()

	_, err := repo.Limit(ctx, -1, 10)
	require.ErrorIs(t, err, validation.ErrValidation)
	assert.Equal(t, validation.FieldOffset, validation.Field(err))

	_, err = repo.Limit(ctx, 0, -5)
	require.ErrorIs(t, err, validation.ErrValidation)
	assert.Equal(t, validation.FieldSize, validation.Field(err))
}

// TestQuestionRepository_Answers は回答の追加と取得を検証します。
func TestQuestionRepository_Answers(t *testing.T) {
	t.Parallel()

	gw := setupTestDB(t)
	repo := NewQuestionRepository(gw)
	ctx := context.Background()

	cat := mustSaveCategory(t, gw, "go")
	q := mustSaveQuestion(t, gw, nil, cat, "Is Go garbage collected?")

	ret, err := repo.AddAnswer(ctx, q, "Yes", true)
	require.NoError(t, err)
	assert.True(t, ret.Equal(q))
	_, err = repo.AddAnswer(ctx, q, "No", false)
	require.NoError(t, err)

	answers, err := repo.Answers(ctx, q)
	require.NoError(t, err)
	require.Len(t, answers, 2)
	assert.Equal(t, "Yes", answers[0].Text())
	assert.True(t, answers[0].IsCorrect())
	assert.Equal(t, "No", answers[1].Text())
	assert.False(t, answers[1].IsCorrect())
	for _, a := range answers {
		assert.Equal(t, q.ID(), a.QuestionID())
	}
}

func TestQuestionRepository_AddAnswerToUnsavedQuestion(t *testing.T) {
	t.Parallel()

	gw := setupTestDB(t)
	repo := NewQuestionRepository(gw)

	q, err := entity.NewQuestionFromIDs(entity.NoID(), 1, "transient", entity.DifficultyEasy)
	require.NoError(t, err)

	_, err = repo.AddAnswer(context.Background(), q, "text", true)
	require.ErrorIs(t, err, validation.ErrValidation)
	assert.Equal(t, validation.FieldQuestionID, validation.Field(err))
}

// TestQuestionRepository_Sets は中間テーブルを介したセットの取得を検証します。
func TestQuestionRepository_Sets(t *testing.T) {
	t.Parallel()

	gw := setupTestDB(t)
	repo := NewQuestionRepository(gw)
	sets := NewSetRepository(gw)
	ctx := context.Background()

	owner := mustSaveUser(t, gw, "owner")
	cat := mustSaveCategory(t, gw, "go")
	q := mustSaveQuestion(t, gw, &owner, cat, "What is a map?")
	lonely := mustSaveQuestion(t, gw, &owner, cat, "In no set")

	s1 := entity.NewSetFor(owner, "first")
	s2 := entity.NewSetFor(owner, "second")
	_, err := sets.Save(ctx, &s1)
	require.NoError(t, err)
	_, err = sets.Save(ctx, &s2)
	require.NoError(t, err)
	require.NoError(t, sets.AddQuestion(ctx, s1, q))
	require.NoError(t, sets.AddQuestion(ctx, s2, q))

	got, err := repo.Sets(ctx, q)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.True(t, got[0].Equal(s1))
	assert.True(t, got[1].Equal(s2))

	none, err := repo.Sets(ctx, lonely)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestQuestionRepository_Delete(t *testing.T) {
	t.Parallel()

	gw := setupTestDB(t)
	repo := NewQuestionRepository(gw)
	ctx := context.Background()

	cat := mustSaveCategory(t, gw, "go")
	q := mustSaveQuestion(t, gw, nil, cat, "to be removed")
	id := q.ID()

	require.NoError(t, repo.Delete(ctx, &q))
	assert.Zero(t, q.ID())

	_, ok, err := repo.FindByID(ctx, id)
	require.NoError(t, err)
	assert.False(t, ok)
}
