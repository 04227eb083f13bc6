package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRateLimit(t *testing.T) {
	rl := NewRateLimiter(3, time.Minute)
	defer rl.Stop()

	router := gin.New()
	router.Use(rl.RateLimit())
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, "request %d", i+1)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "3", w.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
}

func TestRateLimit_WindowResets(t *testing.T) {
	rl := NewRateLimiter(1, 20*time.Millisecond)
	defer rl.Stop()

	allowed, _ := rl.checkRateLimit("ip:10.0.0.1")
	assert.True(t, allowed)
	allowed, _ = rl.checkRateLimit("ip:10.0.0.1")
	assert.False(t, allowed)

	time.Sleep(30 * time.Millisecond)
	allowed, _ = rl.checkRateLimit("ip:10.0.0.1")
	assert.True(t, allowed)
}

func TestRateLimit_IdentifiersAreIndependent(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute)
	defer rl.Stop()

	allowed, _ := rl.checkRateLimit("ip:10.0.0.1")
	assert.True(t, allowed)
	allowed, _ = rl.checkRateLimit("ip:10.0.0.2")
	assert.True(t, allowed)
	allowed, _ = rl.checkRateLimit("ip:10.0.0.1")
	assert.False(t, allowed)
}

func TestAccountRateLimit_UsesAccountIdentifier(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute)
	defer rl.Stop()

	accountID := primitive.NewObjectID()
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("account_id", accountID)
	})
	router.Use(rl.AccountRateLimit())
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	// The same account is throttled regardless of source address.
	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = "192.168.1.77:1234"
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestRateLimiter_Stats(t *testing.T) {
	rl := NewShardedRateLimiter(5, time.Minute, 4)
	defer rl.Stop()

	rl.checkRateLimit("a")
	rl.checkRateLimit("b")
	rl.checkRateLimit("c")

	total, perShard := rl.Stats()
	assert.Equal(t, 3, total)
	assert.Len(t, perShard, 4)
}
