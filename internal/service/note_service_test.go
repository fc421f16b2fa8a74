package service

import (
	"context"
	"testing"

	"github.com/haierkeys/notes-app-service/internal/dto"
	"github.com/haierkeys/notes-app-service/pkg/code"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	ownerUID    = int64(1)
	strangerUID = int64(2)
)

func newTestNoteService(t *testing.T) NoteService {
	_, noteRepo := newTestRepos(t)
	return NewNoteService(noteRepo, zap.NewNop())
}

func TestNoteService_CreateSetsOwner(t *testing.T) {
	svc := newTestNoteService(t)
	ctx := context.Background()

	note, err := svc.Create(ctx, ownerUID, &dto.NoteCreateRequest{Title: "hello", Body: "world"})
	require.NoError(t, err)
	assert.NotZero(t, note.ID)
	assert.Equal(t, ownerUID, note.UID)
	assert.Equal(t, "hello", note.Title)
}

func TestNoteService_GetEnforcesOwnership(t *testing.T) {
	svc := newTestNoteService(t)
	ctx := context.Background()

	note, err := svc.Create(ctx, ownerUID, &dto.NoteCreateRequest{Title: "private"})
	require.NoError(t, err)

	// 所有者可读
	got, err := svc.Get(ctx, ownerUID, note.ID)
	require.NoError(t, err)
	assert.Equal(t, note.ID, got.ID)

	// 非所有者读取返回 403
	_, err = svc.Get(ctx, strangerUID, note.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, code.ErrorNoteAccessForbidden)

	// 不存在的笔记返回 404
	_, err = svc.Get(ctx, ownerUID, 9999)
	require.Error(t, err)
	assert.ErrorIs(t, err, code.ErrorNoteNotFound)
}

func TestNoteService_ListIsOwnerScoped(t *testing.T) {
	svc := newTestNoteService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, ownerUID, &dto.NoteCreateRequest{Title: "mine-1"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, ownerUID, &dto.NoteCreateRequest{Title: "mine-2"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, strangerUID, &dto.NoteCreateRequest{Title: "theirs"})
	require.NoError(t, err)

	list, total, err := svc.List(ctx, ownerUID, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, list, 2)
	for _, n := range list {
		assert.Equal(t, ownerUID, n.UID)
	}
}

func TestNoteService_UpdateEnforcesOwnership(t *testing.T) {
	svc := newTestNoteService(t)
	ctx := context.Background()

	note, err := svc.Create(ctx, ownerUID, &dto.NoteCreateRequest{Title: "orig", Body: "body"})
	require.NoError(t, err)

	// 非所有者更新被拒绝，内容保持不变
	title := "hacked"
	_, err = svc.Update(ctx, strangerUID, note.ID, &dto.NoteUpdateRequest{Title: &title})
	require.Error(t, err)
	assert.ErrorIs(t, err, code.ErrorNoteAccessForbidden)

	unchanged, err := svc.Get(ctx, ownerUID, note.ID)
	require.NoError(t, err)
	assert.Equal(t, "orig", unchanged.Title)

	// 所有者局部更新，未提供的字段不变
	newTitle := "renamed"
	updated, err := svc.Update(ctx, ownerUID, note.ID, &dto.NoteUpdateRequest{Title: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Title)
	assert.Equal(t, "body", updated.Body)
}

func TestNoteService_DeleteEnforcesOwnership(t *testing.T) {
	svc := newTestNoteService(t)
	ctx := context.Background()

	note, err := svc.Create(ctx, ownerUID, &dto.NoteCreateRequest{Title: "target"})
	require.NoError(t, err)

	// 非所有者删除被拒绝
	err = svc.Delete(ctx, strangerUID, note.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, code.ErrorNoteAccessForbidden)

	// 笔记仍然存在
	_, err = svc.Get(ctx, ownerUID, note.ID)
	require.NoError(t, err)

	// 所有者删除成功，再次访问返回 404
	err = svc.Delete(ctx, ownerUID, note.ID)
	require.NoError(t, err)

	_, err = svc.Get(ctx, ownerUID, note.ID)
	assert.ErrorIs(t, err, code.ErrorNoteNotFound)

	err = svc.Delete(ctx, ownerUID, note.ID)
	assert.ErrorIs(t, err, code.ErrorNoteNotFound)
}
