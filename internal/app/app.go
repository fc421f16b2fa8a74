// Package app 提供应用容器，封装所有依赖和服务
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/haierkeys/notes-app-service/internal/dao"
	"github.com/haierkeys/notes-app-service/internal/domain"
	"github.com/haierkeys/notes-app-service/internal/service"
	pkgapp "github.com/haierkeys/notes-app-service/pkg/app"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// App 应用容器，封装所有依赖和服务
// 所有组件在 NewApp 内装配，路由层只依赖容器
type App struct {
	// 基础设施（注入的依赖）
	config *AppConfig
	logger *zap.Logger
	DB     *gorm.DB

	// Repository 层
	UserRepo domain.UserRepository
	NoteRepo domain.NoteRepository

	// Service 层
	UserService service.UserService
	NoteService service.NoteService

	// 基础设施组件
	TokenManager pkgapp.TokenManager

	// StartTime 进程启动时间，用于健康检查上报
	StartTime time.Time

	// 关闭控制
	shutdownCh chan struct{}
}

// NewApp 创建应用容器实例
// 初始化所有依赖并进行依赖注入
// cfg: 应用配置（必须）
// logger: zap 日志器（必须）
// db: 数据库连接（必须）
func NewApp(cfg *AppConfig, logger *zap.Logger, db *gorm.DB) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration is required")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if db == nil {
		return nil, fmt.Errorf("database is required")
	}

	a := &App{
		config:     cfg,
		logger:     logger,
		DB:         db,
		StartTime:  time.Now(),
		shutdownCh: make(chan struct{}),
	}

	// 初始化 TokenManager
	a.TokenManager = pkgapp.NewTokenManager(cfg.GetTokenConfig())

	// 初始化 Repository 层
	a.UserRepo = dao.NewUserRepository(db)
	a.NoteRepo = dao.NewNoteRepository(db)

	// 创建 ServiceConfig（从 AppConfig 提取 Service 层需要的配置）
	svcConfig := &service.ServiceConfig{
		RegisterIsEnable: cfg.User.RegisterIsEnable,
	}

	// 初始化 Service 层（依赖注入）
	a.UserService = service.NewUserService(a.UserRepo, a.TokenManager, logger, svcConfig)
	a.NoteService = service.NewNoteService(a.NoteRepo, logger)

	logger.Info("App container initialized successfully")

	return a, nil
}

// Close 释放应用容器持有的资源
func (a *App) Close() error {
	if a.DB != nil {
		sqlDB, err := a.DB.DB()
		if err != nil {
			return fmt.Errorf("failed to get sql.DB: %w", err)
		}
		if err := sqlDB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
		a.logger.Info("Database connection closed")
	}
	return nil
}

// Config 获取应用配置
func (a *App) Config() *AppConfig {
	return a.config
}

// Logger 获取日志器
func (a *App) Logger() *zap.Logger {
	return a.logger
}

// Uptime 进程已运行时长
func (a *App) Uptime() time.Duration {
	return time.Since(a.StartTime)
}

// DefaultShutdownTimeout 默认关闭超时时间
const DefaultShutdownTimeout = 30 * time.Second

// Shutdown 优雅关闭应用容器
// ctx 用于控制关闭超时，如果为 nil 则使用默认 30 秒超时
func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("App container shutting down...")

	if ctx == nil {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(context.Background(), DefaultShutdownTimeout)
		defer cancel()
	}

	// 标记关闭
	select {
	case <-a.shutdownCh:
		// 已经关闭
		return nil
	default:
		close(a.shutdownCh)
	}

	if err := a.Close(); err != nil {
		a.logger.Warn("App container shutdown completed with errors", zap.Error(err))
		return err
	}

	a.logger.Info("App container shutdown completed successfully")
	return nil
}

// IsShuttingDown 检查应用是否正在关闭
func (a *App) IsShuttingDown() bool {
	select {
	case <-a.shutdownCh:
		return true
	default:
		return false
	}
}

// ShutdownCh 返回关闭信号通道（用于监听关闭事件）
func (a *App) ShutdownCh() <-chan struct{} {
	return a.shutdownCh
}
