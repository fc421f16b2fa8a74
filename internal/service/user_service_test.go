package service

import (
	"context"
	"testing"

	"github.com/haierkeys/notes-app-service/internal/dto"
	"github.com/haierkeys/notes-app-service/pkg/code"
	"github.com/haierkeys/notes-app-service/pkg/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestUserService_Register(t *testing.T) {
	svc, _ := newTestUserService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, &dto.UserCreateRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.NotZero(t, user.UID)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "alice@example.com", user.Email)
}

// 注册响应不携带密码哈希
func TestUserService_RegisterDoesNotLeakPassword(t *testing.T) {
	svc, userRepo := newTestUserService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, &dto.UserCreateRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	// 存储的是 bcrypt 哈希而不是明文
	stored, err := userRepo.GetByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", stored.Password)
	assert.NotEmpty(t, stored.Password)
}

func TestUserService_RegisterDuplicateEmail(t *testing.T) {
	svc, _ := newTestUserService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, &dto.UserCreateRequest{Username: "a", Email: "dup@example.com", Password: "secret123"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, &dto.UserCreateRequest{Username: "b", Email: "dup@example.com", Password: "secret456"})
	require.Error(t, err)
	assert.ErrorIs(t, err, code.ErrorUserEmailAlreadyExists)
}

// 服务层自行拦截非法邮箱，不依赖传输层校验
func TestUserService_RegisterRejectsInvalidEmail(t *testing.T) {
	svc, _ := newTestUserService(t)
	ctx := context.Background()

	for _, email := range []string{"", "not-an-email", "a@b", "a @example.com"} {
		_, err := svc.Register(ctx, &dto.UserCreateRequest{Username: "a", Email: email, Password: "secret123"})
		require.Error(t, err, "email: %q", email)
		assert.ErrorIs(t, err, code.ErrorInvalidParams, "email: %q", email)
	}
}

func TestUserService_RegisterDisabled(t *testing.T) {
	userRepo, _ := newTestRepos(t)
	svc := NewUserService(userRepo, newTestTokenManager(), zap.NewNop(), &ServiceConfig{RegisterIsEnable: false})

	_, err := svc.Register(context.Background(), &dto.UserCreateRequest{Username: "a", Email: "a@example.com", Password: "secret123"})
	require.Error(t, err)
	assert.ErrorIs(t, err, code.ErrorUserRegister)
}

func TestUserService_LoginReturnsValidToken(t *testing.T) {
	userRepo, _ := newTestRepos(t)
	tm := newTestTokenManager()
	svc := NewUserService(userRepo, tm, zap.NewNop(), &ServiceConfig{RegisterIsEnable: true})
	ctx := context.Background()

	user, err := svc.Register(ctx, &dto.UserCreateRequest{Username: "alice", Email: "alice@example.com", Password: "secret123"})
	require.NoError(t, err)

	token, err := svc.Login(ctx, &dto.UserLoginRequest{Email: "alice@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "bearer", token.TokenType)

	claims, err := tm.Parse(token.Token)
	require.NoError(t, err)
	assert.Equal(t, user.UID, claims.UID)
	assert.Equal(t, "alice@example.com", claims.Email)
}

// 未知邮箱与密码错误必须返回同一个错误码，防止用户枚举
func TestUserService_LoginFailureIsUniform(t *testing.T) {
	svc, _ := newTestUserService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, &dto.UserCreateRequest{Username: "alice", Email: "alice@example.com", Password: "secret123"})
	require.NoError(t, err)

	_, errUnknown := svc.Login(ctx, &dto.UserLoginRequest{Email: "nobody@example.com", Password: "secret123"})
	_, errWrongPass := svc.Login(ctx, &dto.UserLoginRequest{Email: "alice@example.com", Password: "wrongpass"})

	require.Error(t, errUnknown)
	require.Error(t, errWrongPass)
	assert.ErrorIs(t, errUnknown, code.ErrorUserLoginFailed)
	assert.ErrorIs(t, errWrongPass, code.ErrorUserLoginFailed)
}

// 邮箱精确匹配，大小写变体不可登录
func TestUserService_LoginEmailCaseSensitive(t *testing.T) {
	svc, _ := newTestUserService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, &dto.UserCreateRequest{Username: "alice", Email: "alice@example.com", Password: "secret123"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, &dto.UserLoginRequest{Email: "Alice@Example.com", Password: "secret123"})
	require.Error(t, err)
	assert.ErrorIs(t, err, code.ErrorUserLoginFailed)
}

// 未知邮箱路径使用的哑哈希必须是合法 bcrypt 哈希，
// 保证该路径确实执行了一次与正常路径等价的比较
func TestUserService_LoginDummyHashIsComparable(t *testing.T) {
	require.NotEmpty(t, loginDummyHash)
	assert.False(t, util.CheckPasswordHash(loginDummyHash, "any-other-password"))
	assert.True(t, util.CheckPasswordHash(loginDummyHash, "login-timing-padding"))
}

func TestUserService_GetInfoNotFound(t *testing.T) {
	svc, _ := newTestUserService(t)

	_, err := svc.GetInfo(context.Background(), 9999)
	require.Error(t, err)
	assert.ErrorIs(t, err, code.ErrorUserNotFound)
}

func TestUserService_UpdateProfile(t *testing.T) {
	svc, _ := newTestUserService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, &dto.UserCreateRequest{Username: "alice", Email: "alice@example.com", Password: "secret123"})
	require.NoError(t, err)

	name := "alice2"
	updated, err := svc.UpdateProfile(ctx, user.UID, &dto.UserUpdateRequest{Username: &name})
	require.NoError(t, err)
	assert.Equal(t, "alice2", updated.Username)
	assert.Equal(t, "alice@example.com", updated.Email)
}

func TestUserService_UpdateProfileRejectsInvalidEmail(t *testing.T) {
	svc, _ := newTestUserService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, &dto.UserCreateRequest{Username: "alice", Email: "alice@example.com", Password: "secret123"})
	require.NoError(t, err)

	bad := "not-an-email"
	_, err = svc.UpdateProfile(ctx, user.UID, &dto.UserUpdateRequest{Email: &bad})
	require.Error(t, err)
	assert.ErrorIs(t, err, code.ErrorInvalidParams)

	// 原邮箱保持不变
	info, err := svc.GetInfo(ctx, user.UID)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", info.Email)
}

func TestUserService_UpdateProfileEmailConflict(t *testing.T) {
	svc, _ := newTestUserService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, &dto.UserCreateRequest{Username: "a", Email: "a@example.com", Password: "secret123"})
	require.NoError(t, err)
	userB, err := svc.Register(ctx, &dto.UserCreateRequest{Username: "b", Email: "b@example.com", Password: "secret123"})
	require.NoError(t, err)

	email := "a@example.com"
	_, err = svc.UpdateProfile(ctx, userB.UID, &dto.UserUpdateRequest{Email: &email})
	require.Error(t, err)
	assert.ErrorIs(t, err, code.ErrorUserEmailAlreadyExists)

	// 用户重新提交自己当前的邮箱不算冲突
	own := "b@example.com"
	updated, err := svc.UpdateProfile(ctx, userB.UID, &dto.UserUpdateRequest{Email: &own})
	require.NoError(t, err)
	assert.Equal(t, "b@example.com", updated.Email)
}
