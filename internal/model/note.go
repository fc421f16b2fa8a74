package model

import (
	"github.com/haierkeys/notes-app-service/pkg/timex"
)

// Note 笔记表模型
// UID 为所属用户，创建后不可变更
type Note struct {
	ID        int64      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Title     string     `gorm:"column:title;size:255;not null" json:"title"`
	Body      string     `gorm:"column:body;type:text" json:"body"`
	UID       int64      `gorm:"column:uid;not null;index:idx_note_uid" json:"uid"`
	CreatedAt timex.Time `gorm:"column:created_at;autoUpdateTime:false" json:"createdAt"`
	UpdatedAt timex.Time `gorm:"column:updated_at;autoUpdateTime:false" json:"updatedAt"`
}

func (Note) TableName() string {
	return "note"
}
