package dto

import (
	"github.com/haierkeys/notes-app-service/internal/domain"
	"github.com/haierkeys/notes-app-service/pkg/timex"
)

// NoteCreateRequest Note creation request parameters
// 笔记创建请求参数
type NoteCreateRequest struct {
	Title string `json:"title" form:"title" binding:"required,max=255"` // Note title, required // 笔记标题，必填
	Body  string `json:"body" form:"body"`                              // Note body, optional // 笔记正文，可选
}

// NoteUpdateRequest Partial note update, absent fields stay unchanged
// 笔记局部更新请求，未提供的字段保持不变
// Title 一旦提供不允许为空串
type NoteUpdateRequest struct {
	Title *string `json:"title" form:"title" binding:"omitempty,min=1,max=255"`
	Body  *string `json:"body" form:"body"`
}

// NoteDTO Note data transfer object
// NoteDTO 笔记数据传输对象
type NoteDTO struct {
	ID        int64      `json:"id"`        // Note ID // 笔记唯一标识
	Title     string     `json:"title"`     // Title // 标题
	Body      string     `json:"body"`      // Body // 正文
	UID       int64      `json:"uid"`       // Owner user ID // 所有者用户 ID
	CreatedAt timex.Time `json:"createdAt"` // Created time // 创建时间
	UpdatedAt timex.Time `json:"updatedAt"` // Last updated time // 最后更新时间
}

// NoteToDTO 将笔记领域模型转换为 DTO
func NoteToDTO(note *domain.Note) *NoteDTO {
	if note == nil {
		return nil
	}
	return &NoteDTO{
		ID:        note.ID,
		Title:     note.Title,
		Body:      note.Body,
		UID:       note.UID,
		CreatedAt: timex.Time(note.CreatedAt),
		UpdatedAt: timex.Time(note.UpdatedAt),
	}
}
