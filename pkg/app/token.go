package app

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// 默认 Token 签发者
const DefaultTokenIssuer = "notes-app-service"

// DefaultTokenExpiry 默认 Token 过期时间
const DefaultTokenExpiry = 60 * time.Minute

// Typed validation failures, one per rejection reason
// 按拒绝原因区分的校验错误
var (
	// ErrTokenExpired Token 已过期
	ErrTokenExpired = errors.New("token has expired")
	// ErrTokenSignatureInvalid 签名与配置的密钥不匹配
	ErrTokenSignatureInvalid = errors.New("token signature is invalid")
	// ErrTokenMalformed Token 无法解析
	ErrTokenMalformed = errors.New("token is malformed")
)

// TokenConfig 定义 Token 管理器的配置
type TokenConfig struct {
	SecretKey string        `yaml:"secret-key"` // JWT 签名密钥
	Expiry    time.Duration `yaml:"expiry"`     // Token 过期时间，默认 60 分钟
	Issuer    string        `yaml:"issuer"`     // Token 签发者
}

// TokenManager 定义 Token 管理接口
type TokenManager interface {
	Generate(uid int64, email string) (string, error)
	Parse(token string) (*UserClaims, error)
	Validate(token string) error
}

// UserClaims is the claim set embedded in a session token
// UserClaims 是会话 Token 中携带的声明集合
type UserClaims struct {
	UID   int64  `json:"uid"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// tokenManager 实现 TokenManager 接口
type tokenManager struct {
	config TokenConfig
}

// NewTokenManager 创建一个新的 TokenManager 实例
func NewTokenManager(cfg TokenConfig) TokenManager {
	if cfg.Expiry == 0 {
		cfg.Expiry = DefaultTokenExpiry
	}
	if cfg.Issuer == "" {
		cfg.Issuer = DefaultTokenIssuer
	}
	return &tokenManager{config: cfg}
}

// Generate 生成一个新的 JWT Token，HS256 对称签名
func (t *tokenManager) Generate(uid int64, email string) (string, error) {
	now := time.Now()
	claims := &UserClaims{
		UID:   uid,
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(t.config.Expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    t.config.Issuer,
			Subject:   strconv.FormatInt(uid, 10),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(t.config.SecretKey))
}

// Parse 解析 JWT Token 并返回声明集合
// 失败时返回 ErrTokenExpired / ErrTokenSignatureInvalid / ErrTokenMalformed 之一
func (t *tokenManager) Parse(token string) (*UserClaims, error) {
	claims := &UserClaims{}

	parsedToken, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(t.config.SecretKey), nil
	})

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrTokenSignatureInvalid
		default:
			return nil, ErrTokenMalformed
		}
	}

	if !parsedToken.Valid {
		return nil, ErrTokenMalformed
	}

	return claims, nil
}

// Validate 验证 Token 是否有效
func (t *tokenManager) Validate(token string) error {
	_, err := t.Parse(token)
	return err
}

// GetUID extracts the authenticated user ID from the request context.
// GetUID 从请求上下文中获取已认证用户的 ID
func GetUID(ctx *gin.Context) (out int64) {
	claims, exist := ctx.Get("user_token")
	if exist {
		if userClaims, ok := claims.(*UserClaims); ok {
			out = userClaims.UID
		}
	}
	return
}
