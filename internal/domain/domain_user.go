package domain

import "time"

// User 用户领域模型
type User struct {
	UID       int64
	Username  string
	Email     string
	Password  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UserUpdate carries the optional fields of a partial profile update.
// A nil pointer means the field was not provided and must stay unchanged.
// UserUpdate 承载局部更新的可选字段，nil 指针表示该字段未提供、保持不变
type UserUpdate struct {
	Username *string
	Email    *string
}

// IsEmpty reports whether no field was provided
// IsEmpty 判断是否没有任何字段需要更新
func (u *UserUpdate) IsEmpty() bool {
	return u == nil || (u.Username == nil && u.Email == nil)
}
