package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/DerrickJaguar/rent/internal/error/code"
	"github.com/DerrickJaguar/rent/internal/error/response"
)

// 简单的令牌桶限流器
type TokenBucket struct {
	rate       float64    // 每秒填充的令牌数
	capacity   int        // 桶的容量
	tokens     float64    // 当前令牌数
	lastRefill time.Time  // 上次填充时间
	mu         sync.Mutex // 互斥锁
}

// 创建新的令牌桶限流器
func NewTokenBucket(rate float64, capacity int) *TokenBucket {
	return &TokenBucket{
		rate:       rate,
		capacity:   capacity,
		tokens:     float64(capacity),
		lastRefill: time.Now(),
	}
}

// 尝试获取令牌
func (tb *TokenBucket) Allow() bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(tb.lastRefill).Seconds()
	tb.lastRefill = now

	// 填充令牌
	tb.tokens += elapsed * tb.rate
	if tb.tokens > float64(tb.capacity) {
		tb.tokens = float64(tb.capacity)
	}

	// 尝试获取令牌
	if tb.tokens >= 1 {
		tb.tokens--
		return true
	}

	return false
}

// idle 返回该桶自上次使用以来的空闲时长
func (tb *TokenBucket) idle(now time.Time) time.Duration {
	tb.mu.Lock()
	defer tb.mu.Unlock()
	return now.Sub(tb.lastRefill)
}

// limiterSet 是单个限流中间件实例持有的桶集合。
// 每个实例独立，公共组和认证组对同一IP各有各的桶，互不串配。
type limiterSet struct {
	mu       sync.RWMutex
	limiters map[string]*TokenBucket
}

// 所有实例注册到这里，供定期清理
var (
	limiterSets   []*limiterSet
	limiterSetsMu sync.Mutex
)

func newLimiterSet() *limiterSet {
	set := &limiterSet{limiters: make(map[string]*TokenBucket)}
	limiterSetsMu.Lock()
	limiterSets = append(limiterSets, set)
	limiterSetsMu.Unlock()
	return set
}

// get 获取指定键的限流器，不存在时按配置新建
func (s *limiterSet) get(key string, cfg RateLimiterConfig) *TokenBucket {
	s.mu.RLock()
	limiter, exists := s.limiters[key]
	s.mu.RUnlock()
	if exists {
		return limiter
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if limiter, exists = s.limiters[key]; !exists {
		limiter = NewTokenBucket(cfg.Rate, cfg.Burst)
		s.limiters[key] = limiter
	}
	return limiter
}

// cleanIdle 清理超过maxIdle未使用的桶
func (s *limiterSet) cleanIdle(now time.Time, maxIdle time.Duration) {
	s.mu.Lock()
	for key, limiter := range s.limiters {
		if limiter.idle(now) > maxIdle {
			delete(s.limiters, key)
		}
	}
	s.mu.Unlock()
}

// RateLimiterConfig 限流器配置
type RateLimiterConfig struct {
	Rate      float64 // 每秒允许的请求数
	Burst     int     // 允许的突发请求数
	LimitType string  // 限流类型: "ip", "path", "combined"
}

// DefaultRateLimiterConfig 默认限流器配置
var DefaultRateLimiterConfig = RateLimiterConfig{
	Rate:      1,    // 每秒1个请求
	Burst:     5,    // 允许5个突发请求
	LimitType: "ip", // 默认按IP限流
}

// RateLimiter 创建限流中间件
func RateLimiter(config ...RateLimiterConfig) gin.HandlerFunc {
	// 使用默认配置或自定义配置
	var cfg RateLimiterConfig
	if len(config) > 0 {
		cfg = config[0]
	} else {
		cfg = DefaultRateLimiterConfig
	}

	// 确保配置有效
	if cfg.Rate <= 0 {
		cfg.Rate = DefaultRateLimiterConfig.Rate
	}
	if cfg.Burst <= 0 {
		cfg.Burst = DefaultRateLimiterConfig.Burst
	}
	if cfg.LimitType == "" {
		cfg.LimitType = DefaultRateLimiterConfig.LimitType
	}

	set := newLimiterSet()

	// 返回中间件函数
	return func(c *gin.Context) {
		var key string

		// 根据限流类型生成键
		switch cfg.LimitType {
		case "path":
			key = c.Request.URL.Path
		case "combined":
			key = c.ClientIP() + ":" + c.Request.URL.Path
		default:
			key = c.ClientIP()
		}

		// 检查是否允许请求
		if !set.get(key, cfg).Allow() {
			response.FailWithMessage(c, code.ErrTooManyRequests, "too many requests, please try again later", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}

// IPRateLimiter 按IP限流
func IPRateLimiter(rate float64, burst int) gin.HandlerFunc {
	return RateLimiter(RateLimiterConfig{
		Rate:      rate,
		Burst:     burst,
		LimitType: "ip",
	})
}

// CombinedRateLimiter 按IP和路径组合限流
func CombinedRateLimiter(rate float64, burst int) gin.HandlerFunc {
	return RateLimiter(RateLimiterConfig{
		Rate:      rate,
		Burst:     burst,
		LimitType: "combined",
	})
}

// 定期清理空闲的限流器
func init() {
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			cleanIdleLimiters(1 * time.Hour)
		}
	}()
}

// cleanIdleLimiters 清理所有实例中超过maxIdle未使用的限流器
func cleanIdleLimiters(maxIdle time.Duration) {
	now := time.Now()

	limiterSetsMu.Lock()
	sets := make([]*limiterSet, len(limiterSets))
	copy(sets, limiterSets)
	limiterSetsMu.Unlock()

	for _, set := range sets {
		set.cleanIdle(now, maxIdle)
	}
}
