package dao

import (
	"context"
	"errors"
	"testing"

	"github.com/haierkeys/notes-app-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestNoteRepository_CreateAndGet(t *testing.T) {
	repo := NewNoteRepository(newTestDB(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, &domain.Note{
		Title: "first",
		Body:  "hello",
		UID:   1,
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, int64(1), created.UID)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "first", got.Title)
	assert.Equal(t, "hello", got.Body)
}

// 列表只返回指定用户的笔记，最近更新的排在前面
func TestNoteRepository_ListByUID(t *testing.T) {
	repo := NewNoteRepository(newTestDB(t))
	ctx := context.Background()

	a, err := repo.Create(ctx, &domain.Note{Title: "a", UID: 1})
	require.NoError(t, err)
	b, err := repo.Create(ctx, &domain.Note{Title: "b", UID: 1})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &domain.Note{Title: "other", UID: 2})
	require.NoError(t, err)

	// 更新 b，b 应排在最前
	title := "b2"
	_, err = repo.Update(ctx, b.ID, &domain.NoteUpdate{Title: &title})
	require.NoError(t, err)

	notes, err := repo.ListByUID(ctx, 1, 1, 10)
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, b.ID, notes[0].ID)
	assert.Equal(t, a.ID, notes[1].ID)
	for _, n := range notes {
		assert.Equal(t, int64(1), n.UID)
	}

	count, err := repo.CountByUID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestNoteRepository_ListPagination(t *testing.T) {
	repo := NewNoteRepository(newTestDB(t))
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := repo.Create(ctx, &domain.Note{Title: "n", UID: 1})
		require.NoError(t, err)
	}

	page1, err := repo.ListByUID(ctx, 1, 1, 2)
	require.NoError(t, err)
	assert.Len(t, page1, 2)

	page3, err := repo.ListByUID(ctx, 1, 3, 2)
	require.NoError(t, err)
	assert.Len(t, page3, 1)
}

func TestNoteRepository_PartialUpdate(t *testing.T) {
	repo := NewNoteRepository(newTestDB(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, &domain.Note{Title: "title", Body: "body", UID: 1})
	require.NoError(t, err)

	// 只更新正文，标题保持不变
	body := "changed"
	updated, err := repo.Update(ctx, created.ID, &domain.NoteUpdate{Body: &body})
	require.NoError(t, err)
	assert.Equal(t, "title", updated.Title)
	assert.Equal(t, "changed", updated.Body)
	assert.Equal(t, created.UID, updated.UID)
}

func TestNoteRepository_UpdateMissingNote(t *testing.T) {
	repo := NewNoteRepository(newTestDB(t))
	ctx := context.Background()

	title := "x"
	_, err := repo.Update(ctx, 9999, &domain.NoteUpdate{Title: &title})
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestNoteRepository_Delete(t *testing.T) {
	repo := NewNoteRepository(newTestDB(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, &domain.Note{Title: "gone", UID: 1})
	require.NoError(t, err)

	deleted, err := repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = repo.GetByID(ctx, created.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	// 重复删除返回 false
	deleted, err = repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}
