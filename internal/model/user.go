package model

import (
	"github.com/haierkeys/notes-app-service/pkg/timex"
)

// User 用户表模型
type User struct {
	UID       int64      `gorm:"column:uid;primaryKey;autoIncrement" json:"uid"`
	Username  string     `gorm:"column:username;size:100;not null" json:"username"`
	Email     string     `gorm:"column:email;size:100;not null;uniqueIndex:idx_user_email" json:"email"`
	Password  string     `gorm:"column:password;size:255;not null" json:"password"`
	CreatedAt timex.Time `gorm:"column:created_at;autoUpdateTime:false" json:"createdAt"`
	UpdatedAt timex.Time `gorm:"column:updated_at;autoUpdateTime:false" json:"updatedAt"`
}

func (User) TableName() string {
	return "user"
}
