// Package routers 装配 HTTP 路由和中间件链
package routers

import (
	"time"

	"github.com/haierkeys/notes-app-service/internal/app"
	"github.com/haierkeys/notes-app-service/internal/middleware"
	"github.com/haierkeys/notes-app-service/internal/routers/api_router"
	"github.com/haierkeys/notes-app-service/pkg/limiter"

	"github.com/gin-gonic/gin"
	ut "github.com/go-playground/universal-translator"
)

// NewRouter 创建公共 API 路由
// 所有依赖通过 App Container 注入
func NewRouter(appContainer *app.App, uni *ut.UniversalTranslator) *gin.Engine {

	// 获取配置
	cfg := appContainer.Config()

	// 认证接口限流，防止凭证爆破
	methodLimiters := limiter.NewMethodLimiter().AddBuckets(
		limiter.BucketRule{
			Key:          "/api/auth",
			FillInterval: cfg.GetAuthRateLimitInterval(),
			Capacity:     cfg.App.AuthRateLimitCapacity,
			Quantum:      cfg.App.AuthRateLimitCapacity,
		},
	)

	r := gin.New()

	api := r.Group("/api")
	{
		api.Use(middleware.AppInfoWithConfig(app.Name, app.Version))
		api.Use(middleware.TraceMiddlewareWithConfig(cfg.Tracer.Enabled, cfg.Tracer.Header)) // Trace ID 中间件
		api.Use(middleware.RateLimiter(methodLimiters))
		api.Use(middleware.ContextTimeout(time.Duration(cfg.App.DefaultContextTimeout) * time.Second))
		if cfg.Cors.Enabled {
			api.Use(middleware.CorsWithConfig(cfg.Cors.AllowOrigin))
		}
		api.Use(middleware.LangWithTranslator(uni))
		api.Use(middleware.AccessLogWithLogger(appContainer.Logger()))
		api.Use(middleware.RecoveryWithLogger(appContainer.Logger()))

		// 创建 Handlers（注入 App Container）
		userHandler := api_router.NewUserHandler(appContainer)
		noteHandler := api_router.NewNoteHandler(appContainer)
		healthHandler := api_router.NewHealthHandler(appContainer)

		// 无需认证的接口
		api.GET("/health", healthHandler.Check)
		api.POST("/auth/signup", userHandler.Signup)
		api.POST("/auth/login", userHandler.Login)

		// 认证接口
		authorized := api.Group("")
		authorized.Use(middleware.UserAuthToken(appContainer.TokenManager, appContainer.UserRepo))
		{
			authorized.GET("/auth/me", userHandler.Me)
			authorized.PUT("/auth/me", userHandler.UpdateMe)

			authorized.POST("/notes", noteHandler.Create)
			authorized.GET("/notes", noteHandler.List)
			authorized.GET("/notes/:id", noteHandler.Get)
			authorized.PUT("/notes/:id", noteHandler.Update)
			authorized.DELETE("/notes/:id", noteHandler.Delete)
		}
	}

	r.NoRoute(middleware.NoFound())

	return r
}
