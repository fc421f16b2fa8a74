package dao

import (
	"context"
	"time"

	"github.com/haierkeys/notes-app-service/internal/domain"
	"github.com/haierkeys/notes-app-service/internal/model"
	"github.com/haierkeys/notes-app-service/pkg/timex"

	"gorm.io/gorm"
)

// userRepository 实现 domain.UserRepository 接口
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository 创建 UserRepository 实例
func NewUserRepository(db *gorm.DB) domain.UserRepository {
	return &userRepository{db: db}
}

// toDomain 将数据库模型转换为领域模型
func (r *userRepository) toDomain(m *model.User) *domain.User {
	if m == nil {
		return nil
	}
	return &domain.User{
		UID:       m.UID,
		Username:  m.Username,
		Email:     m.Email,
		Password:  m.Password,
		CreatedAt: m.CreatedAt.Time(),
		UpdatedAt: m.UpdatedAt.Time(),
	}
}

// toModel 将领域模型转换为数据库模型
func (r *userRepository) toModel(user *domain.User) *model.User {
	if user == nil {
		return nil
	}
	return &model.User{
		UID:       user.UID,
		Username:  user.Username,
		Email:     user.Email,
		Password:  user.Password,
		CreatedAt: timex.Time(user.CreatedAt),
		UpdatedAt: timex.Time(user.UpdatedAt),
	}
}

// GetByUID 根据UID获取用户
func (r *userRepository) GetByUID(ctx context.Context, uid int64) (*domain.User, error) {
	var m model.User
	err := r.db.WithContext(ctx).Where("uid = ?", uid).First(&m).Error
	if err != nil {
		return nil, err
	}
	return r.toDomain(&m), nil
}

// GetByEmail 根据邮箱获取用户，精确匹配
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var m model.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&m).Error
	if err != nil {
		return nil, err
	}
	return r.toDomain(&m), nil
}

// Create 创建用户
// 邮箱唯一索引冲突经 TranslateError 转换为 gorm.ErrDuplicatedKey
func (r *userRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	m := r.toModel(user)
	m.CreatedAt = timex.Now()
	m.UpdatedAt = timex.Now()

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return r.toDomain(m), nil
}

// Update 局部更新用户，只更新提供的字段，刷新更新时间
func (r *userRepository) Update(ctx context.Context, uid int64, update *domain.UserUpdate) (*domain.User, error) {
	values := map[string]interface{}{
		"updated_at": timex.Time(time.Now()),
	}
	if update != nil {
		if update.Username != nil {
			values["username"] = *update.Username
		}
		if update.Email != nil {
			values["email"] = *update.Email
		}
	}

	res := r.db.WithContext(ctx).Model(&model.User{}).Where("uid = ?", uid).Updates(values)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	return r.GetByUID(ctx, uid)
}

// 确保 userRepository 实现了 domain.UserRepository 接口
var _ domain.UserRepository = (*userRepository)(nil)
