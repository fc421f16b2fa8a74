package middleware

import (
	"errors"
	"strings"

	"github.com/haierkeys/notes-app-service/internal/domain"
	"github.com/haierkeys/notes-app-service/pkg/app"
	"github.com/haierkeys/notes-app-service/pkg/code"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AuthUserKey gin.Context 中存储已认证用户实体的键
const AuthUserKey = "auth_user"

// UserAuthToken user token authentication middleware.
// Walks the request through: token present -> token valid -> subject resolved.
// Each failed transition maps to its own rejection code, always a 401.
// UserAuthToken 用户 Token 认证中间件。
// 按 携带 Token -> Token 有效 -> 主体可解析 逐级校验，
// 任一环节失败返回对应的 401 错误码。
func UserAuthToken(tokenManager app.TokenManager, userRepo domain.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		response := app.NewResponse(c)

		token := extractToken(c)
		if token == "" {
			response.ToResponse(code.ErrorNotUserAuthToken)
			c.Abort()
			return
		}

		claims, err := tokenManager.Parse(token)
		if err != nil {
			response.ToResponse(authErrorCode(err))
			c.Abort()
			return
		}

		// Token 有效但用户可能在签发后被删除
		user, err := userRepo.GetByUID(c.Request.Context(), claims.UID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				response.ToResponse(code.ErrorUserAuthUserNotFound)
			} else {
				response.ToResponse(code.ErrorDBQuery)
			}
			c.Abort()
			return
		}

		c.Set("user_token", claims)
		c.Set(AuthUserKey, user)

		c.Next()
	}
}

// extractToken reads the bearer token from the Authorization header,
// accepting both "Bearer <token>" and a bare token.
// extractToken 从 Authorization 头读取 Token，
// 兼容 "Bearer <token>" 与裸 Token 两种形式。
func extractToken(c *gin.Context) string {
	s := c.GetHeader("Authorization")
	if s == "" {
		s = c.GetHeader("authorization")
	}
	if s == "" {
		return ""
	}
	if token, found := strings.CutPrefix(s, "Bearer "); found {
		return strings.TrimSpace(token)
	}
	return strings.TrimSpace(s)
}

// authErrorCode maps a token validation failure to its rejection code
// authErrorCode 将 Token 校验失败映射为对应的错误码
func authErrorCode(err error) *code.Code {
	switch {
	case errors.Is(err, app.ErrTokenExpired):
		return code.ErrorUserAuthTokenExpired
	case errors.Is(err, app.ErrTokenSignatureInvalid):
		return code.ErrorUserAuthTokenSignature
	default:
		return code.ErrorUserAuthTokenMalformed
	}
}

// GetAuthUser 从请求上下文中获取已认证用户实体
func GetAuthUser(c *gin.Context) *domain.User {
	v, exist := c.Get(AuthUserKey)
	if !exist {
		return nil
	}
	if user, ok := v.(*domain.User); ok {
		return user
	}
	return nil
}
