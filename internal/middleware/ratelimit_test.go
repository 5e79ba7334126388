package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

func newLimitedRouter(requestsPerMin int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	mw := New(&mockLogger{})
	r.POST("/limited", mw.RateLimit(requestsPerMin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func doReq(r *gin.Engine, userID string) int {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/limited", nil)
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}
	req.RemoteAddr = "203.0.113.7:41000"
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimitBlocksAfterBurst(t *testing.T) {
	// 60/min gives a burst of 6.
	r := newLimitedRouter(60)

	for i := 0; i < 6; i++ {
		if code := doReq(r, "u1"); code != http.StatusOK {
			t.Fatalf("request %d blocked early with %d", i, code)
		}
	}
	if code := doReq(r, "u1"); code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 after burst, got %d", code)
	}
}

func TestRateLimitIsPerClient(t *testing.T) {
	r := newLimitedRouter(60)

	for i := 0; i < 6; i++ {
		doReq(r, "u1")
	}
	if code := doReq(r, "u2"); code != http.StatusOK {
		t.Fatalf("second client should not share the first client's bucket, got %d", code)
	}
}
