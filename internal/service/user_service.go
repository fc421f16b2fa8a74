package service

import (
	"context"
	"errors"

	"github.com/haierkeys/notes-app-service/internal/domain"
	"github.com/haierkeys/notes-app-service/internal/dto"
	"github.com/haierkeys/notes-app-service/pkg/app"
	"github.com/haierkeys/notes-app-service/pkg/code"
	"github.com/haierkeys/notes-app-service/pkg/logger"
	"github.com/haierkeys/notes-app-service/pkg/util"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// UserService 定义用户业务服务接口
type UserService interface {
	// Register 用户注册
	Register(ctx context.Context, params *dto.UserCreateRequest) (*dto.UserDTO, error)

	// Login 用户登录，成功时返回 bearer 会话 Token
	Login(ctx context.Context, params *dto.UserLoginRequest) (*dto.TokenDTO, error)

	// GetInfo 获取用户信息
	GetInfo(ctx context.Context, uid int64) (*dto.UserDTO, error)

	// UpdateProfile 局部更新用户资料
	UpdateProfile(ctx context.Context, uid int64, params *dto.UserUpdateRequest) (*dto.UserDTO, error)
}

// userService 实现 UserService 接口
type userService struct {
	userRepo     domain.UserRepository
	tokenManager app.TokenManager
	logger       *zap.Logger
	config       *ServiceConfig
}

// NewUserService 创建 UserService 实例
func NewUserService(userRepo domain.UserRepository, tokenManager app.TokenManager, lg *zap.Logger, config *ServiceConfig) UserService {
	return &userService{
		userRepo:     userRepo,
		tokenManager: tokenManager,
		logger:       lg,
		config:       config,
	}
}

// loginDummyHash 未知邮箱路径也执行一次等价的 bcrypt 比较，
// 使两条失败路径耗时一致，避免通过响应时间探测账号是否存在
var loginDummyHash, _ = util.GeneratePasswordHash("login-timing-padding")

// Register 用户注册
// 邮箱精确匹配查重，同时兜底唯一索引冲突，保证并发下也只有一条记录
func (s *userService) Register(ctx context.Context, params *dto.UserCreateRequest) (*dto.UserDTO, error) {
	if s.config != nil && !s.config.RegisterIsEnable {
		return nil, code.ErrorUserRegister.WithDetails("registration is disabled")
	}

	// 服务层自行校验邮箱格式，不依赖传输层的绑定校验
	if !util.IsValidEmail(params.Email) {
		return nil, code.ErrorInvalidParams.WithDetails("invalid email format")
	}

	// 检查邮箱是否已存在
	existing, err := s.userRepo.GetByEmail(ctx, params.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, code.ErrorDBQuery
	}
	if existing != nil {
		return nil, code.ErrorUserEmailAlreadyExists
	}

	// 生成密码哈希
	password, err := util.GeneratePasswordHash(params.Password)
	if err != nil {
		return nil, code.ErrorPasswordNotValid
	}

	user, err := s.userRepo.Create(ctx, &domain.User{
		Username: params.Username,
		Email:    params.Email,
		Password: password,
	})
	if err != nil {
		// 并发注册时预检会漏掉冲突，由唯一索引兜底
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, code.ErrorUserEmailAlreadyExists
		}
		s.logger.Error("userService.Register create failed", zap.Error(err), zap.String(logger.FieldEmail, params.Email))
		return nil, code.ErrorUserRegister
	}

	return dto.UserToDTO(user), nil
}

// Login 用户登录
// 邮箱不存在与密码错误返回同一错误码，防止用户枚举
func (s *userService) Login(ctx context.Context, params *dto.UserLoginRequest) (*dto.TokenDTO, error) {
	user, err := s.userRepo.GetByEmail(ctx, params.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// 耗时对齐，见 loginDummyHash
			util.CheckPasswordHash(loginDummyHash, params.Password)
			return nil, code.ErrorUserLoginFailed
		}
		return nil, code.ErrorDBQuery
	}

	if !util.CheckPasswordHash(user.Password, params.Password) {
		return nil, code.ErrorUserLoginFailed
	}

	token, err := s.tokenManager.Generate(user.UID, user.Email)
	if err != nil {
		s.logger.Error("userService.Login token generate failed", zap.Error(err), zap.Int64(logger.FieldUID, user.UID))
		return nil, code.ErrorTokenGenerate
	}

	return &dto.TokenDTO{Token: token, TokenType: "bearer"}, nil
}

// GetInfo 获取用户信息
func (s *userService) GetInfo(ctx context.Context, uid int64) (*dto.UserDTO, error) {
	user, err := s.userRepo.GetByUID(ctx, uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.ErrorUserNotFound
		}
		return nil, code.ErrorDBQuery
	}
	return dto.UserToDTO(user), nil
}

// UpdateProfile 局部更新用户资料
// 邮箱变更时先查重，未提供的字段保持不变
func (s *userService) UpdateProfile(ctx context.Context, uid int64, params *dto.UserUpdateRequest) (*dto.UserDTO, error) {
	update := &domain.UserUpdate{
		Username: params.Username,
		Email:    params.Email,
	}

	if params.Email != nil {
		if !util.IsValidEmail(*params.Email) {
			return nil, code.ErrorInvalidParams.WithDetails("invalid email format")
		}
		existing, err := s.userRepo.GetByEmail(ctx, *params.Email)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.ErrorDBQuery
		}
		if existing != nil && existing.UID != uid {
			return nil, code.ErrorUserEmailAlreadyExists
		}
	}

	user, err := s.userRepo.Update(ctx, uid, update)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.ErrorUserNotFound
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, code.ErrorUserEmailAlreadyExists
		}
		s.logger.Error("userService.UpdateProfile failed", zap.Error(err), zap.Int64(logger.FieldUID, uid))
		return nil, code.ErrorUserUpdate
	}

	return dto.UserToDTO(user), nil
}
