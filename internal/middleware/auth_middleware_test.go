package middleware

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/sneakersdealer/ds-admin-backend/config"
	"github.com/sneakersdealer/ds-admin-backend/pkg/redis"
	"github.com/sneakersdealer/ds-admin-backend/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testJWTSecret = "test-jwt-secret"

func newAuthTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	authMiddleware := NewAuthMiddleware(testJWTSecret)
	router.GET("/protected", authMiddleware.Authenticate(), func(c *gin.Context) {
		userID, _ := GetUserID(c)
		email, _ := GetUserEmail(c)
		c.JSON(http.StatusOK, gin.H{
			"user_id": userID,
			"email":   email,
		})
	})

	return router
}

func issueToken(t *testing.T, expiry time.Duration) string {
	tokens, err := util.GenerateTokenPair("user-1", "test@example.com", "user", testJWTSecret, expiry, expiry)
	require.NoError(t, err)
	return tokens.AccessToken
}

func TestAuthenticate_ValidToken(t *testing.T) {
	router := newAuthTestRouter()
	token := issueToken(t, 15*time.Minute)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "user-1", response["user_id"])
	assert.Equal(t, "test@example.com", response["email"])
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	router := newAuthTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Unauthenticated", response["message"])
}

func TestAuthenticate_MalformedHeader(t *testing.T) {
	router := newAuthTestRouter()

	tests := []struct {
		name   string
		header string
	}{
		{name: "No scheme", header: "just-a-token"},
		{name: "Wrong scheme", header: "Basic abc123"},
		{name: "Bearer with no token", header: "Bearer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			req.Header.Set("Authorization", tt.header)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	router := newAuthTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "AUTH_TOKEN_INVALID", response["error"])
}

func TestAuthenticate_ExpiredToken(t *testing.T) {
	router := newAuthTestRouter()
	token := issueToken(t, time.Nanosecond)
	time.Sleep(10 * time.Millisecond)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "AUTH_TOKEN_EXPIRED", response["error"])
}

func TestAuthenticate_RevokedToken(t *testing.T) {
	mr := miniredis.RunT(t)
	host, port, err := net.SplitHostPort(mr.Addr())
	require.NoError(t, err)
	require.NoError(t, redis.Init(&config.RedisConfig{Host: host, Port: port}))
	t.Cleanup(func() {
		redis.Close()
	})

	router := newAuthTestRouter()
	token := issueToken(t, 15*time.Minute)
	require.NoError(t, redis.BlacklistToken(context.Background(), token, time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "AUTH_TOKEN_REVOKED", response["error"])

	// A token nobody revoked still passes. A different expiry keeps it
	// from colliding with the blacklisted one.
	fresh := issueToken(t, 20*time.Minute)
	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+fresh)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthenticate_WrongSecret(t *testing.T) {
	router := newAuthTestRouter()

	tokens, err := util.GenerateTokenPair("user-1", "test@example.com", "user", "another-secret", 15*time.Minute, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tokens.AccessToken)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
