package api_router

import (
	"github.com/haierkeys/notes-app-service/internal/app"
	"github.com/haierkeys/notes-app-service/internal/dto"
	pkgapp "github.com/haierkeys/notes-app-service/pkg/app"
	"github.com/haierkeys/notes-app-service/pkg/code"
	"github.com/haierkeys/notes-app-service/pkg/convert"
	apperrors "github.com/haierkeys/notes-app-service/pkg/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NoteHandler note API router handler
// NoteHandler 笔记 API 路由处理器
type NoteHandler struct {
	*Handler
}

// NewNoteHandler 创建 NoteHandler 实例
func NewNoteHandler(a *app.App) *NoteHandler {
	return &NoteHandler{
		Handler: NewHandler(a),
	}
}

// noteID 从路径参数解析笔记 ID，非法 ID 返回 0
func noteID(c *gin.Context) int64 {
	return convert.StrTo(c.Param("id")).MustInt64()
}

// Create creates a note owned by the requester
// @Summary Create note
// @Description 创建一条属于当前用户的笔记。
// @Tags Note
// @Accept json
// @Produce json
// @Security UserAuthToken
// @Param params body dto.NoteCreateRequest true "Create Parameters"
// @Success 201 {object} pkgapp.Res{data=dto.NoteDTO} "Created"
// @Failure 401 {object} pkgapp.Res "Unauthorized"
// @Failure 422 {object} pkgapp.Res "Invalid Parameters"
// @Router /api/notes [post]
func (h *NoteHandler) Create(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.NoteCreateRequest{}

	// 参数绑定和验证
	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("NoteHandler.Create.BindAndValid errs", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.Errors()...).WithData(errs.Maps()))
		return
	}

	uid := pkgapp.GetUID(c)
	if uid == 0 {
		response.ToResponse(code.ErrorNotUserAuthToken)
		return
	}

	ctx := c.Request.Context()

	noteDTO, err := h.App.NoteService.Create(ctx, uid, params)
	if err != nil {
		h.logError(ctx, "NoteHandler.Create", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.SuccessCreated.WithData(noteDTO))
}

// List lists the requester's notes
// @Summary List notes
// @Description 分页获取当前用户自己的笔记，按更新时间倒序。
// @Tags Note
// @Produce json
// @Security UserAuthToken
// @Param page query int false "Page"
// @Param pageSize query int false "Page Size"
// @Success 200 {object} pkgapp.Res{data=pkgapp.ListRes} "Success"
// @Failure 401 {object} pkgapp.Res "Unauthorized"
// @Router /api/notes [get]
func (h *NoteHandler) List(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	uid := pkgapp.GetUID(c)
	if uid == 0 {
		response.ToResponse(code.ErrorNotUserAuthToken)
		return
	}

	ctx := c.Request.Context()

	paginationCfg := h.App.Config().GetPaginationConfig()
	page := pkgapp.GetPage(c)
	pageSize := pkgapp.GetPageSizeWithConfig(c, paginationCfg)

	list, total, err := h.App.NoteService.List(ctx, uid, page, pageSize)
	if err != nil {
		h.logError(ctx, "NoteHandler.List", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponseListWithConfig(code.Success, list, int(total), paginationCfg)
}

// Get retrieves a single note
// @Summary Get note
// @Description 获取单条笔记，仅所有者可读。
// @Tags Note
// @Produce json
// @Security UserAuthToken
// @Param id path int true "Note ID"
// @Success 200 {object} pkgapp.Res{data=dto.NoteDTO} "Success"
// @Failure 403 {object} pkgapp.Res "Forbidden"
// @Failure 404 {object} pkgapp.Res "Not Found"
// @Router /api/notes/{id} [get]
func (h *NoteHandler) Get(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	uid := pkgapp.GetUID(c)
	if uid == 0 {
		response.ToResponse(code.ErrorNotUserAuthToken)
		return
	}

	id := noteID(c)
	if id <= 0 {
		response.ToResponse(code.ErrorNoteNotFound)
		return
	}

	ctx := c.Request.Context()

	noteDTO, err := h.App.NoteService.Get(ctx, uid, id)
	if err != nil {
		h.logError(ctx, "NoteHandler.Get", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(noteDTO))
}

// Update partially updates a note
// @Summary Update note
// @Description 局部更新笔记，未提供的字段保持不变，仅所有者可写。
// @Tags Note
// @Accept json
// @Produce json
// @Security UserAuthToken
// @Param id path int true "Note ID"
// @Param params body dto.NoteUpdateRequest true "Update Parameters"
// @Success 200 {object} pkgapp.Res{data=dto.NoteDTO} "Success"
// @Failure 403 {object} pkgapp.Res "Forbidden"
// @Failure 404 {object} pkgapp.Res "Not Found"
// @Failure 422 {object} pkgapp.Res "Invalid Parameters"
// @Router /api/notes/{id} [put]
func (h *NoteHandler) Update(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.NoteUpdateRequest{}

	// 参数绑定和验证
	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("NoteHandler.Update.BindAndValid errs", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.Errors()...).WithData(errs.Maps()))
		return
	}

	uid := pkgapp.GetUID(c)
	if uid == 0 {
		response.ToResponse(code.ErrorNotUserAuthToken)
		return
	}

	id := noteID(c)
	if id <= 0 {
		response.ToResponse(code.ErrorNoteNotFound)
		return
	}

	ctx := c.Request.Context()

	noteDTO, err := h.App.NoteService.Update(ctx, uid, id, params)
	if err != nil {
		h.logError(ctx, "NoteHandler.Update", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(noteDTO))
}

// Delete deletes a note
// @Summary Delete note
// @Description 删除笔记，仅所有者可删，成功返回 204。
// @Tags Note
// @Security UserAuthToken
// @Param id path int true "Note ID"
// @Success 204 "No Content"
// @Failure 403 {object} pkgapp.Res "Forbidden"
// @Failure 404 {object} pkgapp.Res "Not Found"
// @Router /api/notes/{id} [delete]
func (h *NoteHandler) Delete(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	uid := pkgapp.GetUID(c)
	if uid == 0 {
		response.ToResponse(code.ErrorNotUserAuthToken)
		return
	}

	id := noteID(c)
	if id <= 0 {
		response.ToResponse(code.ErrorNoteNotFound)
		return
	}

	ctx := c.Request.Context()

	if err := h.App.NoteService.Delete(ctx, uid, id); err != nil {
		h.logError(ctx, "NoteHandler.Delete", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponseNoContent()
}
