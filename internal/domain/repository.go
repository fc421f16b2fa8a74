// Package domain 定义领域模型和仓储接口
package domain

import "context"

// UserRepository 用户仓储接口
// 查询未命中时返回 gorm.ErrRecordNotFound，由调用方判定
type UserRepository interface {
	// GetByUID 根据用户ID获取用户
	GetByUID(ctx context.Context, uid int64) (*User, error)

	// GetByEmail 根据邮箱获取用户，邮箱精确匹配（区分大小写）
	GetByEmail(ctx context.Context, email string) (*User, error)

	// Create 创建用户，邮箱唯一约束冲突时返回 gorm.ErrDuplicatedKey
	Create(ctx context.Context, user *User) (*User, error)

	// Update 按 UserUpdate 局部更新用户并刷新更新时间
	Update(ctx context.Context, uid int64, update *UserUpdate) (*User, error)
}

// NoteRepository 笔记仓储接口
// 仓储层不做所有权检查，所有权由服务层（访问策略）负责
type NoteRepository interface {
	// Create 创建笔记
	Create(ctx context.Context, note *Note) (*Note, error)

	// GetByID 根据ID获取笔记
	GetByID(ctx context.Context, id int64) (*Note, error)

	// ListByUID 分页获取指定用户的笔记，按更新时间倒序
	ListByUID(ctx context.Context, uid int64, page, pageSize int) ([]*Note, error)

	// CountByUID 获取指定用户的笔记数量
	CountByUID(ctx context.Context, uid int64) (int64, error)

	// Update 按 NoteUpdate 局部更新笔记并刷新更新时间
	Update(ctx context.Context, id int64, update *NoteUpdate) (*Note, error)

	// Delete 物理删除笔记，返回是否有记录被删除
	Delete(ctx context.Context, id int64) (bool, error)
}
