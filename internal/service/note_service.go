package service

import (
	"context"
	"errors"

	"github.com/haierkeys/notes-app-service/internal/domain"
	"github.com/haierkeys/notes-app-service/internal/dto"
	"github.com/haierkeys/notes-app-service/pkg/code"
	"github.com/haierkeys/notes-app-service/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// NoteService 定义笔记业务服务接口
// 所有读写都以请求者 uid 为准执行所有者检查（访问策略层）
type NoteService interface {
	// Create 创建笔记，所有者为请求者
	Create(ctx context.Context, uid int64, params *dto.NoteCreateRequest) (*dto.NoteDTO, error)

	// Get 获取笔记，仅所有者可读
	Get(ctx context.Context, uid int64, id int64) (*dto.NoteDTO, error)

	// List 分页获取请求者自己的笔记，按更新时间倒序
	List(ctx context.Context, uid int64, page, pageSize int) ([]*dto.NoteDTO, int64, error)

	// Update 局部更新笔记，仅所有者可写
	Update(ctx context.Context, uid int64, id int64, params *dto.NoteUpdateRequest) (*dto.NoteDTO, error)

	// Delete 删除笔记，仅所有者可删
	Delete(ctx context.Context, uid int64, id int64) error
}

// noteService 实现 NoteService 接口
type noteService struct {
	noteRepo domain.NoteRepository
	logger   *zap.Logger
}

// NewNoteService 创建 NoteService 实例
func NewNoteService(noteRepo domain.NoteRepository, lg *zap.Logger) NoteService {
	return &noteService{
		noteRepo: noteRepo,
		logger:   lg,
	}
}

// loadOwned loads a note and enforces the owner-only access rule.
// The repository stays ownership-agnostic; this is the single place
// the policy is applied for read, update and delete.
// loadOwned 加载笔记并执行仅所有者可访问的规则。
// 仓储层不感知所有权，读/改/删的策略检查都集中在这里。
func (s *noteService) loadOwned(ctx context.Context, uid, id int64) (*domain.Note, error) {
	note, err := s.noteRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.ErrorNoteNotFound
		}
		return nil, code.ErrorDBQuery
	}
	if !note.OwnedBy(uid) {
		return nil, code.ErrorNoteAccessForbidden
	}
	return note, nil
}

// Create 创建笔记
func (s *noteService) Create(ctx context.Context, uid int64, params *dto.NoteCreateRequest) (*dto.NoteDTO, error) {
	note, err := s.noteRepo.Create(ctx, &domain.Note{
		Title: params.Title,
		Body:  params.Body,
		UID:   uid,
	})
	if err != nil {
		s.logger.Error("noteService.Create failed", zap.Error(err), zap.Int64(logger.FieldUID, uid))
		return nil, code.ErrorNoteCreateFailed
	}
	return dto.NoteToDTO(note), nil
}

// Get 获取笔记
func (s *noteService) Get(ctx context.Context, uid int64, id int64) (*dto.NoteDTO, error) {
	note, err := s.loadOwned(ctx, uid, id)
	if err != nil {
		return nil, err
	}
	return dto.NoteToDTO(note), nil
}

// List 分页获取请求者自己的笔记
// 只按所有者查询，绝不查询全量后再过滤
func (s *noteService) List(ctx context.Context, uid int64, page, pageSize int) ([]*dto.NoteDTO, int64, error) {
	notes, err := s.noteRepo.ListByUID(ctx, uid, page, pageSize)
	if err != nil {
		return nil, 0, code.ErrorDBQuery
	}

	count, err := s.noteRepo.CountByUID(ctx, uid)
	if err != nil {
		return nil, 0, code.ErrorDBQuery
	}

	list := make([]*dto.NoteDTO, 0, len(notes))
	for _, note := range notes {
		list = append(list, dto.NoteToDTO(note))
	}
	return list, count, nil
}

// Update 局部更新笔记
func (s *noteService) Update(ctx context.Context, uid int64, id int64, params *dto.NoteUpdateRequest) (*dto.NoteDTO, error) {
	if _, err := s.loadOwned(ctx, uid, id); err != nil {
		return nil, err
	}

	note, err := s.noteRepo.Update(ctx, id, &domain.NoteUpdate{
		Title: params.Title,
		Body:  params.Body,
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.ErrorNoteNotFound
		}
		s.logger.Error("noteService.Update failed", zap.Error(err), zap.Int64(logger.FieldNoteID, id))
		return nil, code.ErrorNoteUpdateFailed
	}
	return dto.NoteToDTO(note), nil
}

// Delete 删除笔记
func (s *noteService) Delete(ctx context.Context, uid int64, id int64) error {
	if _, err := s.loadOwned(ctx, uid, id); err != nil {
		return err
	}

	deleted, err := s.noteRepo.Delete(ctx, id)
	if err != nil {
		s.logger.Error("noteService.Delete failed", zap.Error(err), zap.Int64(logger.FieldNoteID, id))
		return code.ErrorNoteDeleteFailed
	}
	if !deleted {
		return code.ErrorNoteNotFound
	}
	return nil
}
