package domain

import "time"

// Note 笔记领域模型
// UID 为所有者，创建时设置且不可重新指派
type Note struct {
	ID        int64
	Title     string
	Body      string
	UID       int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// OwnedBy reports whether the note belongs to the given user
// OwnedBy 判断笔记是否属于指定用户
func (n *Note) OwnedBy(uid int64) bool {
	return n.UID == uid
}

// NoteUpdate carries the optional fields of a partial note update.
// A nil pointer means the field was not provided. There is deliberately
// no owner field here: ownership never changes after creation.
// NoteUpdate 承载笔记局部更新的可选字段，nil 指针表示未提供。
// 此处刻意不包含所有者字段：所有权在创建后不可变更。
type NoteUpdate struct {
	Title *string
	Body  *string
}

// IsEmpty reports whether no field was provided
// IsEmpty 判断是否没有任何字段需要更新
func (n *NoteUpdate) IsEmpty() bool {
	return n == nil || (n.Title == nil && n.Body == nil)
}
