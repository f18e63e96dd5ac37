package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fsnd-projects/fsnd-api/internal/pkg/jwthelper"
)

const testSigningKey = "middleware-test-signing-key"

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	auth := NewAuthenticator(testSigningKey)
	r.GET("/detail", auth.VerifyJWT(), RequirePermission("get:drinks-detail"), func(ctx *gin.Context) {
		claims, ok := ClaimsFromContext(ctx)
		if !ok {
			ctx.Status(http.StatusTeapot)
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"user_id": claims.UserID, "ctx_user_id": ctx.GetUint(UserIDKey)})
	})

	return r
}

func token(t *testing.T, perms []string, ttl time.Duration) string {
	t.Helper()

	tok, err := jwthelper.GenerateToken([]byte(testSigningKey), 12, "test", perms, "fsnd", ttl)
	require.NoError(t, err)

	return tok
}

func do(r *gin.Engine, authHeader string) (int, map[string]any) {
	req := httptest.NewRequest(http.MethodGet, "/detail", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var body map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &body)

	return rec.Code, body
}

func TestVerifyJWTAndRequirePermission(t *testing.T) {
	r := newRouter()

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantCode   string
	}{
		{name: "missing header", header: "", wantStatus: 401, wantCode: "authorization_header_missing"},
		{name: "wrong scheme", header: "Basic abc", wantStatus: 401, wantCode: "invalid_header"},
		{name: "no token", header: "Bearer", wantStatus: 401, wantCode: "invalid_header"},
		{name: "too many parts", header: "Bearer a b", wantStatus: 401, wantCode: "invalid_header"},
		{name: "garbage token", header: "Bearer abc", wantStatus: 401, wantCode: "invalid_header"},
		{name: "expired", header: "Bearer " + token(t, []string{"get:drinks-detail"}, -time.Minute), wantStatus: 401, wantCode: "token_expired"},
		{name: "no permissions claim", header: "Bearer " + token(t, nil, time.Hour), wantStatus: 400, wantCode: "invalid_claims"},
		{name: "missing permission", header: "Bearer " + token(t, []string{"post:menu"}, time.Hour), wantStatus: 403, wantCode: "unauthorized"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := do(r, tt.header)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, float64(tt.wantStatus), body["error"])
			assert.Equal(t, tt.wantCode, body["message"])
		})
	}

	t.Run("granted", func(t *testing.T) {
		status, body := do(r, "Bearer "+token(t, []string{"get:drinks-detail"}, time.Hour))
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, float64(12), body["user_id"])
		assert.Equal(t, float64(12), body["ctx_user_id"])
	})

	t.Run("wrong signing key", func(t *testing.T) {
		other, err := jwthelper.GenerateToken([]byte("some-other-signing-key"), 1, "", []string{"get:drinks-detail"}, "fsnd", time.Hour)
		require.NoError(t, err)

		status, body := do(r, "Bearer "+other)
		assert.Equal(t, http.StatusUnauthorized, status)
		assert.Equal(t, "invalid_token", body["message"])
	})
}

func TestConfigCORS(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(ConfigCORS([]string{"http://localhost:3000"}))
	r.GET("/drinks", func(ctx *gin.Context) { ctx.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/drinks", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "PATCH")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "PATCH")
}
