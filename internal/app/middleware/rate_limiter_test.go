package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestTokenBucketExhaustsBurst(t *testing.T) {
	// 慢速填充，突发2个
	tb := NewTokenBucket(0.001, 2)

	assert.True(t, tb.Allow())
	assert.True(t, tb.Allow())
	assert.False(t, tb.Allow())
}

func TestRateLimiterInstancesHaveIndependentBuckets(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	// 同一IP打到两个不同配置的限流实例，桶必须相互独立
	r.GET("/strict", IPRateLimiter(0.001, 1), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	r.GET("/loose", IPRateLimiter(0.001, 5), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	get := func(path string) int {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	// 打满strict的桶
	assert.Equal(t, http.StatusOK, get("/strict"))
	assert.Equal(t, http.StatusTooManyRequests, get("/strict"))

	// loose不受strict的消耗影响
	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, get("/loose"))
	}
	assert.Equal(t, http.StatusTooManyRequests, get("/loose"))
}

func TestCombinedRateLimiterKeysByPath(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	limiter := CombinedRateLimiter(0.001, 1)
	r.GET("/a", limiter, func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/b", limiter, func(c *gin.Context) { c.Status(http.StatusOK) })

	get := func(path string) int {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, get("/a"))
	assert.Equal(t, http.StatusTooManyRequests, get("/a"))
	// 同一实例内不同路径有各自的桶
	assert.Equal(t, http.StatusOK, get("/b"))
}
