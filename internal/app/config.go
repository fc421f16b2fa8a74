// Package app 提供应用容器，封装所有依赖和服务
package app

import (
	"os"
	"path/filepath"
	"time"

	pkgapp "github.com/haierkeys/notes-app-service/pkg/app"
	"github.com/haierkeys/notes-app-service/pkg/util"

	"github.com/creasty/defaults"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// AppConfig 应用配置
type AppConfig struct {
	File     string         `yaml:"-"` // 配置文件路径，不序列化
	Server   ServerConfig   `yaml:"server"`
	Log      LogConfig      `yaml:"log"`
	Database DatabaseConfig `yaml:"database"`
	App      AppSettings    `yaml:"app"`
	User     UserConfig     `yaml:"user"`
	Security SecurityConfig `yaml:"security"`
	Cors     CorsConfig     `yaml:"cors"`
	Tracer   TracerConfig   `yaml:"tracer"`
}

// LogConfig 日志配置
type LogConfig struct {
	// Level 日志级别，参见 zapcore.ParseLevel
	Level string `yaml:"level" default:"info"`
	// File 日志文件路径，为空只输出到 stderr
	File string `yaml:"file" default:"storage/logs/log.log"`
	// Production 是否启用 JSON 输出
	Production bool `yaml:"production" default:"true"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	// RunMode 运行模式
	RunMode string `yaml:"run-mode" default:"release"`
	// HttpPort HTTP 端口
	HttpPort string `yaml:"http-port" default:":9000"`
	// ReadTimeout 读取超时（秒）
	ReadTimeout int `yaml:"read-timeout" default:"60"`
	// WriteTimeout 写入超时（秒）
	WriteTimeout int `yaml:"write-timeout" default:"60"`
	// PrivateHttpListen 私有 HTTP 监听地址，承载 pprof/expvar/metrics
	PrivateHttpListen string `yaml:"private-http-listen" default:":9001"`
}

// SecurityConfig 安全配置
type SecurityConfig struct {
	// AuthTokenKey 会话 Token 签名密钥，生产环境必须修改
	AuthTokenKey string `yaml:"auth-token-key" default:"notes-app-auth-token"`
	// TokenExpiry Token 过期时间，支持格式：7d（天）、24h（小时）、30m（分钟）
	TokenExpiry string `yaml:"token-expiry" default:"60m"`
}

// DatabaseConfig 数据库配置
type DatabaseConfig struct {
	// Type 数据库类型，sqlite / mysql / postgres
	Type string `yaml:"type" default:"sqlite"`
	// Path SQLite 数据库文件路径
	Path string `yaml:"path" default:"storage/database/db.sqlite3"`
	// UserName 用户名
	UserName string `yaml:"username"`
	// Password 密码
	Password string `yaml:"password"`
	// Host 主机
	Host string `yaml:"host"`
	// Name 数据库名
	Name string `yaml:"name"`
	// TablePrefix 表前缀
	TablePrefix string `yaml:"table-prefix"`
	// AutoMigrate 是否启用自动迁移
	AutoMigrate bool `yaml:"auto-migrate" default:"true"`
	// Charset 字符集
	Charset string `yaml:"charset"`
	// ParseTime 是否解析时间
	ParseTime bool `yaml:"parse-time"`
	// MaxIdleConns 最大闲置连接数，默认 10
	MaxIdleConns int `yaml:"max-idle-conns" default:"10"`
	// MaxOpenConns 最大打开连接数，默认 100
	MaxOpenConns int `yaml:"max-open-conns" default:"100"`
	// ConnMaxLifetime 连接最大生命周期，支持格式：30m（分钟）、1h（小时），默认 30m
	ConnMaxLifetime string `yaml:"conn-max-lifetime" default:"30m"`
}

// UserConfig 用户配置
type UserConfig struct {
	// RegisterIsEnable 注册是否启用
	RegisterIsEnable bool `yaml:"register-is-enable" default:"true"`
}

// AppSettings 应用设置
type AppSettings struct {
	// DefaultPageSize 默认页面大小
	DefaultPageSize int `yaml:"default-page-size" default:"10"`
	// MaxPageSize 最大页面大小
	MaxPageSize int `yaml:"max-page-size" default:"100"`
	// DefaultContextTimeout 默认上下文超时时间（秒）
	DefaultContextTimeout int `yaml:"default-context-timeout" default:"60"`
	// AuthRateLimitCapacity 认证接口令牌桶容量
	AuthRateLimitCapacity int64 `yaml:"auth-rate-limit-capacity" default:"20"`
	// AuthRateLimitInterval 认证接口令牌补充间隔
	AuthRateLimitInterval string `yaml:"auth-rate-limit-interval" default:"1s"`
}

// CorsConfig 跨域配置
type CorsConfig struct {
	// Enabled 是否启用跨域
	Enabled bool `yaml:"enabled" default:"true"`
	// AllowOrigin 允许的来源
	AllowOrigin string `yaml:"allow-origin" default:"*"`
}

// TracerConfig 请求追踪配置
type TracerConfig struct {
	// Enabled 是否启用追踪
	Enabled bool `yaml:"enabled" default:"true"`
	// Header 追踪 ID 请求头名称，默认 X-Trace-ID
	Header string `yaml:"header" default:"X-Trace-ID"`
}

// LoadConfig 从文件加载配置
// 返回配置实例和配置文件的绝对路径
func LoadConfig(f string) (*AppConfig, string, error) {
	realpath, err := filepath.Abs(f)
	if err != nil {
		return nil, "", err
	}
	realpath = filepath.Clean(realpath)

	c := new(AppConfig)
	c.File = realpath

	// 设置默认值
	if err := defaults.Set(c); err != nil {
		return nil, realpath, errors.Wrap(err, "set default config failed")
	}

	file, err := os.ReadFile(realpath)
	if err != nil {
		return nil, realpath, errors.Wrap(err, "read config file failed")
	}

	err = yaml.Unmarshal(file, c)
	if err != nil {
		return nil, realpath, errors.Wrap(err, "parse config file failed")
	}

	// 再次设置默认值，以填充 YAML 中存在但值为空的字段
	// defaults.Set 只有在字段为该类型的零值时才会填充
	if err := defaults.Set(c); err != nil {
		return nil, realpath, errors.Wrap(err, "re-set default config failed")
	}

	c.applyEnvOverrides()

	return c, realpath, nil
}

// applyEnvOverrides applies NOTES_* environment overrides so that
// containerized deployments can avoid editing the config file.
// applyEnvOverrides 应用 NOTES_* 环境变量覆盖，
// 容器化部署无需修改配置文件。
func (c *AppConfig) applyEnvOverrides() {
	if v := os.Getenv("NOTES_HTTP_PORT"); v != "" {
		c.Server.HttpPort = v
	}
	if v := os.Getenv("NOTES_RUN_MODE"); v != "" {
		c.Server.RunMode = v
	}
	if v := os.Getenv("NOTES_AUTH_TOKEN_KEY"); v != "" {
		c.Security.AuthTokenKey = v
	}
	if v := os.Getenv("NOTES_TOKEN_EXPIRY"); v != "" {
		c.Security.TokenExpiry = v
	}
	if v := os.Getenv("NOTES_DATABASE_TYPE"); v != "" {
		c.Database.Type = v
	}
	if v := os.Getenv("NOTES_DATABASE_PATH"); v != "" {
		c.Database.Path = v
	}
	if v := os.Getenv("NOTES_DATABASE_HOST"); v != "" {
		c.Database.Host = v
	}
	if v := os.Getenv("NOTES_DATABASE_USERNAME"); v != "" {
		c.Database.UserName = v
	}
	if v := os.Getenv("NOTES_DATABASE_PASSWORD"); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv("NOTES_DATABASE_NAME"); v != "" {
		c.Database.Name = v
	}
	if v := os.Getenv("NOTES_CORS_ALLOW_ORIGIN"); v != "" {
		c.Cors.AllowOrigin = v
	}
}

// Save 保存配置到文件
func (c *AppConfig) Save() error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "marshal config failed")
	}

	err = os.WriteFile(c.File, data, 0644)
	if err != nil {
		return errors.Wrap(err, "write config file failed")
	}

	return nil
}

// GetTokenExpiry 获取 Token 过期时间
func (c *AppConfig) GetTokenExpiry() time.Duration {
	if expiry, err := util.ParseDuration(c.Security.TokenExpiry); err == nil {
		return expiry
	}
	return pkgapp.DefaultTokenExpiry
}

// GetTokenConfig 构造 Token 配置
func (c *AppConfig) GetTokenConfig() pkgapp.TokenConfig {
	return pkgapp.TokenConfig{
		SecretKey: c.Security.AuthTokenKey,
		Expiry:    c.GetTokenExpiry(),
		Issuer:    pkgapp.DefaultTokenIssuer,
	}
}

// GetAuthRateLimitInterval 获取认证接口令牌补充间隔
func (c *AppConfig) GetAuthRateLimitInterval() time.Duration {
	if d, err := util.ParseDuration(c.App.AuthRateLimitInterval); err == nil {
		return d
	}
	return time.Second
}

// GetPaginationConfig 构造分页配置
func (c *AppConfig) GetPaginationConfig() pkgapp.PaginationConfig {
	cfg := pkgapp.DefaultPaginationConfig
	if c.App.DefaultPageSize > 0 {
		cfg.DefaultPageSize = c.App.DefaultPageSize
	}
	if c.App.MaxPageSize > 0 {
		cfg.MaxPageSize = c.App.MaxPageSize
	}
	return cfg
}
