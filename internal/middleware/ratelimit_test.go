package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func limitedRouter(rl *RateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/login", rl.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func hitLogin(r *gin.Engine) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
	return w
}

func TestRateLimiterBlocksAfterLimit(t *testing.T) {
	srv := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	r := limitedRouter(NewRateLimiter(rdb, "auth", 3, time.Minute))

	for i := 0; i < 3; i++ {
		if w := hitLogin(r); w.Code != http.StatusOK {
			t.Fatalf("request %d: got %d, want %d", i+1, w.Code, http.StatusOK)
		}
	}

	w := hitLogin(r)
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("over limit: got %d, want %d", w.Code, http.StatusTooManyRequests)
	}
	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Success || body.Message != "Too many requests" {
		t.Errorf("body: %+v", body)
	}
}

func TestRateLimiterWindowAlwaysExpires(t *testing.T) {
	srv := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	r := limitedRouter(NewRateLimiter(rdb, "auth", 1, time.Minute))

	if w := hitLogin(r); w.Code != http.StatusOK {
		t.Fatalf("first request: got %d", w.Code)
	}

	// httptest requests carry 192.0.2.1 as the client address.
	key := "ratelimit:auth:192.0.2.1"
	if ttl := srv.TTL(key); ttl <= 0 {
		t.Fatalf("counter has no expiry: ttl %v", ttl)
	}

	if w := hitLogin(r); w.Code != http.StatusTooManyRequests {
		t.Fatalf("second request inside window: got %d", w.Code)
	}

	// Once the window passes the counter is gone and requests flow again.
	srv.FastForward(time.Minute + time.Second)
	if srv.Exists(key) {
		t.Error("counter survived its window")
	}
	if w := hitLogin(r); w.Code != http.StatusOK {
		t.Errorf("request after window: got %d", w.Code)
	}
}

func TestRateLimiterFailsOpen(t *testing.T) {
	// Nothing listens here, every Redis command errors out.
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 100 * time.Millisecond})
	r := limitedRouter(NewRateLimiter(rdb, "auth", 1, time.Minute))

	for i := 0; i < 3; i++ {
		if w := hitLogin(r); w.Code != http.StatusOK {
			t.Fatalf("request %d should pass when redis is down, got %d", i+1, w.Code)
		}
	}
}
