package dao

import (
	"context"
	"time"

	"github.com/haierkeys/notes-app-service/internal/domain"
	"github.com/haierkeys/notes-app-service/internal/model"
	"github.com/haierkeys/notes-app-service/pkg/timex"

	"gorm.io/gorm"
)

// noteRepository 实现 domain.NoteRepository 接口
// 不做所有权检查，所有权由服务层负责
type noteRepository struct {
	db *gorm.DB
}

// NewNoteRepository 创建 NoteRepository 实例
func NewNoteRepository(db *gorm.DB) domain.NoteRepository {
	return &noteRepository{db: db}
}

// toDomain 将数据库模型转换为领域模型
func (r *noteRepository) toDomain(m *model.Note) *domain.Note {
	if m == nil {
		return nil
	}
	return &domain.Note{
		ID:        m.ID,
		Title:     m.Title,
		Body:      m.Body,
		UID:       m.UID,
		CreatedAt: m.CreatedAt.Time(),
		UpdatedAt: m.UpdatedAt.Time(),
	}
}

// Create 创建笔记
func (r *noteRepository) Create(ctx context.Context, note *domain.Note) (*domain.Note, error) {
	m := &model.Note{
		Title:     note.Title,
		Body:      note.Body,
		UID:       note.UID,
		CreatedAt: timex.Now(),
		UpdatedAt: timex.Now(),
	}

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return r.toDomain(m), nil
}

// GetByID 根据ID获取笔记
func (r *noteRepository) GetByID(ctx context.Context, id int64) (*domain.Note, error) {
	var m model.Note
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if err != nil {
		return nil, err
	}
	return r.toDomain(&m), nil
}

// ListByUID 分页获取指定用户的笔记
// 按更新时间倒序，更新时间相同时按 ID 倒序，保证顺序稳定
func (r *noteRepository) ListByUID(ctx context.Context, uid int64, page, pageSize int) ([]*domain.Note, error) {
	var ms []*model.Note
	query := r.db.WithContext(ctx).
		Where("uid = ?", uid).
		Order("updated_at DESC").
		Order("id DESC")

	if pageSize > 0 {
		offset := 0
		if page > 0 {
			offset = (page - 1) * pageSize
		}
		query = query.Offset(offset).Limit(pageSize)
	}

	if err := query.Find(&ms).Error; err != nil {
		return nil, err
	}

	notes := make([]*domain.Note, 0, len(ms))
	for _, m := range ms {
		notes = append(notes, r.toDomain(m))
	}
	return notes, nil
}

// CountByUID 获取指定用户的笔记数量
func (r *noteRepository) CountByUID(ctx context.Context, uid int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Note{}).Where("uid = ?", uid).Count(&count).Error
	return count, err
}

// Update 局部更新笔记，只更新提供的字段，刷新更新时间
// 单条 UPDATE 语句，由存储引擎保证原子性
func (r *noteRepository) Update(ctx context.Context, id int64, update *domain.NoteUpdate) (*domain.Note, error) {
	values := map[string]interface{}{
		"updated_at": timex.Time(time.Now()),
	}
	if update != nil {
		if update.Title != nil {
			values["title"] = *update.Title
		}
		if update.Body != nil {
			values["body"] = *update.Body
		}
	}

	res := r.db.WithContext(ctx).Model(&model.Note{}).Where("id = ?", id).Updates(values)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	return r.GetByID(ctx, id)
}

// Delete 物理删除笔记，返回是否有记录被删除
func (r *noteRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Note{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// 确保 noteRepository 实现了 domain.NoteRepository 接口
var _ domain.NoteRepository = (*noteRepository)(nil)
