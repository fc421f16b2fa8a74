package api_router

import (
	"github.com/haierkeys/notes-app-service/internal/app"
	"github.com/haierkeys/notes-app-service/internal/dto"
	pkgapp "github.com/haierkeys/notes-app-service/pkg/app"
	"github.com/haierkeys/notes-app-service/pkg/code"
	apperrors "github.com/haierkeys/notes-app-service/pkg/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler user API router handler
// UserHandler 用户 API 路由处理器
// Uses App Container to inject dependencies, supports unified error handling
// 使用 App Container 注入依赖，支持统一错误处理
type UserHandler struct {
	*Handler
}

// NewUserHandler creates UserHandler instance
// NewUserHandler 创建 UserHandler 实例
func NewUserHandler(a *app.App) *UserHandler {
	return &UserHandler{
		Handler: NewHandler(a),
	}
}

// Signup user registration
// @Summary User registration
// @Description 处理用户注册 HTTP 请求，验证参数并调用 UserService。邮箱重复返回 400。
// @Tags Auth
// @Accept json
// @Produce json
// @Param params body dto.UserCreateRequest true "Signup Parameters"
// @Success 201 {object} pkgapp.Res{data=dto.UserDTO} "Created"
// @Failure 400 {object} pkgapp.Res "Email Already Exists"
// @Failure 422 {object} pkgapp.Res "Invalid Parameters"
// @Router /api/auth/signup [post]
func (h *UserHandler) Signup(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.UserCreateRequest{}

	// 参数绑定和验证
	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("UserHandler.Signup.BindAndValid errs", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.Errors()...).WithData(errs.Maps()))
		return
	}

	ctx := c.Request.Context()

	userDTO, err := h.App.UserService.Register(ctx, params)
	if err != nil {
		h.logError(ctx, "UserHandler.Signup", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.SuccessCreated.WithData(userDTO))
}

// Login user login
// @Summary User login
// @Description 处理用户登录 HTTP 请求，凭证有效时返回 bearer 会话 Token。
// @Tags Auth
// @Accept json
// @Produce json
// @Param params body dto.UserLoginRequest true "Login Parameters"
// @Success 200 {object} pkgapp.Res{data=dto.TokenDTO} "Success"
// @Failure 401 {object} pkgapp.Res "Invalid Credentials"
// @Failure 422 {object} pkgapp.Res "Invalid Parameters"
// @Router /api/auth/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.UserLoginRequest{}

	// 参数绑定和验证
	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("UserHandler.Login.BindAndValid errs", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.Errors()...).WithData(errs.Maps()))
		return
	}

	ctx := c.Request.Context()

	tokenDTO, err := h.App.UserService.Login(ctx, params)
	if err != nil {
		h.logError(ctx, "UserHandler.Login", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(tokenDTO))
}

// Me retrieves current user info
// @Summary Get current user info
// @Description 处理获取当前认证用户信息的请求。
// @Tags Auth
// @Produce json
// @Security UserAuthToken
// @Success 200 {object} pkgapp.Res{data=dto.UserDTO} "Success"
// @Failure 401 {object} pkgapp.Res "Unauthorized"
// @Router /api/auth/me [get]
func (h *UserHandler) Me(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	uid := pkgapp.GetUID(c)
	if uid == 0 {
		h.App.Logger().Error("UserHandler.Me err uid=0")
		response.ToResponse(code.ErrorNotUserAuthToken)
		return
	}

	ctx := c.Request.Context()

	userDTO, err := h.App.UserService.GetInfo(ctx, uid)
	if err != nil {
		h.logError(ctx, "UserHandler.Me", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(userDTO))
}

// UpdateMe updates current user profile
// @Summary Update current user profile
// @Description 处理局部更新当前用户资料的请求，未提供的字段保持不变。
// @Tags Auth
// @Accept json
// @Produce json
// @Security UserAuthToken
// @Param params body dto.UserUpdateRequest true "Update Parameters"
// @Success 200 {object} pkgapp.Res{data=dto.UserDTO} "Success"
// @Failure 400 {object} pkgapp.Res "Email Already Exists"
// @Failure 401 {object} pkgapp.Res "Unauthorized"
// @Failure 422 {object} pkgapp.Res "Invalid Parameters"
// @Router /api/auth/me [put]
func (h *UserHandler) UpdateMe(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.UserUpdateRequest{}

	// 参数绑定和验证
	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("UserHandler.UpdateMe.BindAndValid errs", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.Errors()...).WithData(errs.Maps()))
		return
	}

	uid := pkgapp.GetUID(c)
	if uid == 0 {
		response.ToResponse(code.ErrorNotUserAuthToken)
		return
	}

	ctx := c.Request.Context()

	userDTO, err := h.App.UserService.UpdateProfile(ctx, uid, params)
	if err != nil {
		h.logError(ctx, "UserHandler.UpdateMe", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(userDTO))
}
