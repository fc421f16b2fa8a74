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

func TestUserRepository_CreateAndGet(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, &domain.User{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "$2a$10$fakehash",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.UID)
	assert.False(t, created.CreatedAt.IsZero())

	byUID, err := repo.GetByUID(ctx, created.UID)
	require.NoError(t, err)
	assert.Equal(t, "alice", byUID.Username)
	assert.Equal(t, "alice@example.com", byUID.Email)

	byEmail, err := repo.GetByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.UID, byEmail.UID)
}

func TestUserRepository_GetNotFound(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	_, err := repo.GetByUID(ctx, 9999)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	_, err = repo.GetByEmail(ctx, "nobody@example.com")
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

// 邮箱精确匹配，大小写不同视为不同邮箱
func TestUserRepository_EmailExactMatch(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	_, err := repo.Create(ctx, &domain.User{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "x",
	})
	require.NoError(t, err)

	_, err = repo.GetByEmail(ctx, "Alice@Example.com")
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	_, err := repo.Create(ctx, &domain.User{Username: "a", Email: "dup@example.com", Password: "x"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, &domain.User{Username: "b", Email: "dup@example.com", Password: "y"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey))
}

func TestUserRepository_PartialUpdate(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, &domain.User{Username: "old", Email: "old@example.com", Password: "x"})
	require.NoError(t, err)

	// 只更新用户名，邮箱保持不变
	name := "renamed"
	updated, err := repo.Update(ctx, created.UID, &domain.UserUpdate{Username: &name})
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Username)
	assert.Equal(t, "old@example.com", updated.Email)
}

func TestUserRepository_UpdateMissingUser(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	name := "ghost"
	_, err := repo.Update(ctx, 12345, &domain.UserUpdate{Username: &name})
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}
