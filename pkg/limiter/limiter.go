// Package limiter provides token-bucket rate limiting keyed by route prefix
// Package limiter 提供按路由前缀的令牌桶限流
package limiter

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/juju/ratelimit"
)

// LimiterIface 限流器接口
type LimiterIface interface {
	// Key 从请求中提取限流键
	Key(c *gin.Context) string
	// GetBucket 获取键对应的令牌桶
	GetBucket(key string) (*ratelimit.Bucket, bool)
	// AddBuckets 注册桶规则
	AddBuckets(rules ...BucketRule) LimiterIface
}

// BucketRule 令牌桶规则
type BucketRule struct {
	// Key 匹配的路由前缀
	Key string
	// FillInterval 放入令牌的间隔
	FillInterval time.Duration
	// Capacity 桶容量
	Capacity int64
	// Quantum 每次放入的令牌数
	Quantum int64
}

type Limiter struct {
	limiterBuckets map[string]*ratelimit.Bucket
}
