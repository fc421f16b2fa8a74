// Package dto Defines data transfer objects (request parameters and response structs)
// Package dto 定义数据传输对象（请求参数和响应结构体）
package dto

import (
	"github.com/haierkeys/notes-app-service/internal/domain"
	"github.com/haierkeys/notes-app-service/pkg/timex"
)

// UserCreateRequest User signup request parameters
// 用户注册请求参数
type UserCreateRequest struct {
	Username string `json:"username" form:"username" binding:"required,max=100"`   // Display name // 用户名
	Email    string `json:"email" form:"email" binding:"required,email,max=100"`   // User email // 用户邮件
	Password string `json:"password" form:"password" binding:"required,min=6,max=64"` // User password // 用户密码
}

// UserLoginRequest User login request parameters
// 用户登录请求参数
type UserLoginRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"` // User email // 用户邮件
	Password string `json:"password" form:"password" binding:"required"` // Password // 密码
}

// UserUpdateRequest Partial profile update, absent fields stay unchanged
// 用户资料局部更新请求，未提供的字段保持不变
type UserUpdateRequest struct {
	Username *string `json:"username" form:"username" binding:"omitempty,min=1,max=100"`
	Email    *string `json:"email" form:"email" binding:"omitempty,email,max=100"`
}

// ---------------- DTO / Response ----------------

// UserDTO User data transfer object, never carries the password hash
// UserDTO 用户数据传输对象，绝不携带密码哈希
type UserDTO struct {
	UID       int64      `json:"uid"`       // User ID (primary key) // 用户唯一标识（主键）
	Username  string     `json:"username"`  // Display name // 用户名
	Email     string     `json:"email"`     // Email address // 邮件地址
	CreatedAt timex.Time `json:"createdAt"` // Account created time // 账号创建时间
	UpdatedAt timex.Time `json:"updatedAt"` // Last updated time // 最后更新时间
}

// TokenDTO Login response carrying the bearer session token
// TokenDTO 登录响应，携带 bearer 会话 Token
type TokenDTO struct {
	Token     string `json:"token"`
	TokenType string `json:"tokenType"`
}

// UserToDTO 将用户领域模型转换为 DTO
func UserToDTO(user *domain.User) *UserDTO {
	if user == nil {
		return nil
	}
	return &UserDTO{
		UID:       user.UID,
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: timex.Time(user.CreatedAt),
		UpdatedAt: timex.Time(user.UpdatedAt),
	}
}
