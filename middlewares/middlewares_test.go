package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/yummy-app/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func okHandler(c *gin.Context) {
	c.Status(http.StatusOK)
}

func perform(r http.Handler, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	r := gin.New()
	r.GET("/private", AuthMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"role": c.GetString("role"), "user_id": c.GetUint("user_id")})
	})

	token, err := utils.GenerateToken(3, "staff")
	require.NoError(t, err)

	t.Run("Missing header", func(t *testing.T) {
		w := perform(r, http.MethodGet, "/private", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Wrong scheme", func(t *testing.T) {
		w := perform(r, http.MethodGet, "/private", map[string]string{"Authorization": "Token " + token})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Valid token", func(t *testing.T) {
		w := perform(r, http.MethodGet, "/private", map[string]string{"Authorization": "Bearer " + token})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"role":"staff","user_id":3}`, w.Body.String())
	})

	t.Run("Revoked token", func(t *testing.T) {
		revoked, err := utils.GenerateToken(4, "staff")
		require.NoError(t, err)
		utils.BlacklistToken(revoked, time.Now().Add(time.Hour))

		w := perform(r, http.MethodGet, "/private", map[string]string{"Authorization": "Bearer " + revoked})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRequireRole(t *testing.T) {
	withRole := func(role string) gin.HandlerFunc {
		return func(c *gin.Context) {
			if role != "" {
				c.Set("role", role)
			}
			c.Next()
		}
	}

	tests := []struct {
		name string
		role string
		want int
	}{
		{"admin always allowed", "admin", http.StatusOK},
		{"listed role", "staff", http.StatusOK},
		{"other role", "chef", http.StatusForbidden},
		{"no role", "", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/", withRole(tt.role), RequireRole("staff"), okHandler)
			assert.Equal(t, tt.want, perform(r, http.MethodGet, "/", nil).Code)
		})
	}
}

func TestRateLimit(t *testing.T) {
	r := gin.New()
	r.Use(NewRateLimiter(2, 60).RateLimit())
	r.GET("/", okHandler)

	assert.Equal(t, http.StatusOK, perform(r, http.MethodGet, "/", nil).Code)
	assert.Equal(t, http.StatusOK, perform(r, http.MethodGet, "/", nil).Code)
	assert.Equal(t, http.StatusTooManyRequests, perform(r, http.MethodGet, "/", nil).Code)
}

func TestStrictRateLimiter(t *testing.T) {
	r := gin.New()
	r.POST("/login", NewStrictRateLimiter(time.Minute, 2), okHandler)

	assert.Equal(t, http.StatusOK, perform(r, http.MethodPost, "/login", nil).Code)
	assert.Equal(t, http.StatusOK, perform(r, http.MethodPost, "/login", nil).Code)
	assert.Equal(t, http.StatusTooManyRequests, perform(r, http.MethodPost, "/login", nil).Code)
}

func TestLoggerMiddlewareRequestID(t *testing.T) {
	logger, hook := test.NewNullLogger()
	r := gin.New()
	r.Use(LoggerMiddleware(logger))
	r.GET("/", okHandler)

	w := perform(r, http.MethodGet, "/", nil)
	generated := w.Header().Get(RequestIDHeader)
	assert.Len(t, generated, 36)

	w = perform(r, http.MethodGet, "/", map[string]string{RequestIDHeader: "abc-123"})
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, "abc-123", entry.Data["request_id"])
	assert.Equal(t, http.StatusOK, entry.Data["status"])
}

func TestCORSPreflight(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddlewares("*"))
	r.GET("/", okHandler)

	w := perform(r, http.MethodOptions, "/", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestWebSocketAuthMiddleware(t *testing.T) {
	r := gin.New()
	r.GET("/ws", WebSocketAuthMiddleware(), okHandler)

	token, err := utils.GenerateToken(1, "admin")
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, perform(r, http.MethodGet, "/ws", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, perform(r, http.MethodGet, "/ws?token=bogus", nil).Code)
	assert.Equal(t, http.StatusOK, perform(r, http.MethodGet, "/ws?token="+token, nil).Code)
}
