// Package dao 实现数据访问层
package dao

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/haierkeys/notes-app-service/internal/model"
	"github.com/haierkeys/notes-app-service/pkg/util"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

// DatabaseConfig 数据库配置
type DatabaseConfig struct {
	// Type 数据库类型: sqlite / mysql / postgres
	Type string
	// Path SQLite 数据库文件路径
	Path string
	// UserName 用户名
	UserName string
	// Password 密码
	Password string
	// Host 主机 (host:port)
	Host string
	// Name 数据库名
	Name string
	// TablePrefix 表前缀
	TablePrefix string
	// AutoMigrate 是否启用自动迁移
	AutoMigrate bool
	// Charset 字符集 (mysql)
	Charset string
	// ParseTime 是否解析时间 (mysql)
	ParseTime bool
	// MaxIdleConns 最大闲置连接数
	MaxIdleConns int
	// MaxOpenConns 最大打开连接数
	MaxOpenConns int
	// ConnMaxLifetime 连接最大生命周期，支持格式：30m（分钟）、1h（小时）
	ConnMaxLifetime string
	// RunMode 运行模式，debug 时输出 SQL 日志
	RunMode string
}

// NewDBEngineWithConfig creates the gorm engine for the configured database type
// NewDBEngineWithConfig 根据配置的数据库类型创建 gorm 引擎
func NewDBEngineWithConfig(c DatabaseConfig, lg *zap.Logger) (*gorm.DB, error) {
	dialector, err := newDialector(c)
	if err != nil {
		return nil, err
	}

	logMode := logger.Default.LogMode(logger.Silent)
	if c.RunMode == "debug" {
		logMode = logger.Default.LogMode(logger.Info)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logMode,
		NamingStrategy: schema.NamingStrategy{
			TablePrefix:   c.TablePrefix,
			SingularTable: true,
		},
		// 统一把方言层的唯一键冲突等错误翻译成 gorm 的 ErrDuplicatedKey 族
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(c.MaxIdleConns)
	sqlDB.SetMaxOpenConns(c.MaxOpenConns)

	connMaxLifetime := 30 * time.Minute
	if c.ConnMaxLifetime != "" {
		if d, err := util.ParseDuration(c.ConnMaxLifetime); err == nil {
			connMaxLifetime = d
		}
	}
	sqlDB.SetConnMaxLifetime(connMaxLifetime)

	if c.AutoMigrate {
		if err := model.AutoMigrate(db, ""); err != nil {
			return nil, fmt.Errorf("auto migrate: %w", err)
		}
	}

	if lg != nil {
		lg.Info("database engine ready", zap.String("type", c.Type))
	}

	return db, nil
}

func newDialector(c DatabaseConfig) (gorm.Dialector, error) {
	switch c.Type {
	case "mysql":
		return mysql.Open(fmt.Sprintf("%s:%s@tcp(%s)/%s?charset=%s&parseTime=%t&loc=Local",
			c.UserName,
			c.Password,
			c.Host,
			c.Name,
			c.Charset,
			c.ParseTime,
		)), nil
	case "postgres":
		return postgres.Open(fmt.Sprintf("host=%s user=%s password=%s dbname=%s sslmode=disable",
			c.Host,
			c.UserName,
			c.Password,
			c.Name,
		)), nil
	case "sqlite", "":
		if dir := filepath.Dir(c.Path); dir != "." && dir != "" {
			if err := os.MkdirAll(dir, os.ModePerm); err != nil {
				return nil, err
			}
		}
		return sqlite.Open(c.Path), nil
	}
	return nil, fmt.Errorf("unsupported database type: %s", c.Type)
}
