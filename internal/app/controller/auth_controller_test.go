package controller

import (
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/sneakersdealer/ds-admin-backend/config"
	"github.com/sneakersdealer/ds-admin-backend/internal/app/repository"
	"github.com/sneakersdealer/ds-admin-backend/internal/app/service"
	"github.com/sneakersdealer/ds-admin-backend/internal/db"
	"github.com/sneakersdealer/ds-admin-backend/internal/middleware"
	"github.com/sneakersdealer/ds-admin-backend/pkg/redis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAuthSecret = "test-jwt-secret"

func setupAuthControllerTest(t *testing.T) (*AuthController, service.AuthService) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	userRepo := repository.NewUserRepository(testDB)
	authService := service.NewAuthService(userRepo, testAuthSecret, 15*time.Minute, 7*24*time.Hour)

	return NewAuthController(authService, testAuthSecret), authService
}

func newAuthRouter(controller *AuthController) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/auth/register", controller.Register)
	router.POST("/api/auth/login", controller.Login)
	return router
}

func TestAuthController_Register_Success(t *testing.T) {
	controller, _ := setupAuthControllerTest(t)
	router := newAuthRouter(controller)

	body := map[string]interface{}{
		"email":    "new@example.com",
		"password": "password123",
		"name":     "New User",
	}

	w := doJSON(router, http.MethodPost, "/api/auth/register", body)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

	user := response["user"].(map[string]interface{})
	assert.Equal(t, "new@example.com", user["email"])

	// The password hash never leaves the server.
	_, leaked := user["password_hash"]
	assert.False(t, leaked)

	tokens := response["tokens"].(map[string]interface{})
	assert.NotEmpty(t, tokens["access_token"])
	assert.NotEmpty(t, tokens["refresh_token"])
}

func TestAuthController_Register_DuplicateEmail(t *testing.T) {
	controller, authService := setupAuthControllerTest(t)
	router := newAuthRouter(controller)

	_, _, err := authService.Register("taken@example.com", "password123", "First User")
	require.NoError(t, err)

	body := map[string]interface{}{
		"email":    "taken@example.com",
		"password": "password456",
		"name":     "Second User",
	}

	w := doJSON(router, http.MethodPost, "/api/auth/register", body)

	assert.Equal(t, http.StatusConflict, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "AUTH_EMAIL_EXISTS", response["error"])
}

func TestAuthController_Register_InvalidPayload(t *testing.T) {
	controller, _ := setupAuthControllerTest(t)
	router := newAuthRouter(controller)

	tests := []struct {
		name string
		body map[string]interface{}
	}{
		{
			name: "Bad email",
			body: map[string]interface{}{"email": "nope", "password": "password123", "name": "X"},
		},
		{
			name: "Short password",
			body: map[string]interface{}{"email": "ok@example.com", "password": "short", "name": "X"},
		},
		{
			name: "Missing name",
			body: map[string]interface{}{"email": "ok@example.com", "password": "password123"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(router, http.MethodPost, "/api/auth/register", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestAuthController_Login(t *testing.T) {
	controller, authService := setupAuthControllerTest(t)
	router := newAuthRouter(controller)

	_, _, err := authService.Register("user@example.com", "password123", "User")
	require.NoError(t, err)

	t.Run("Valid credentials", func(t *testing.T) {
		w := doJSON(router, http.MethodPost, "/api/auth/login", map[string]interface{}{
			"email":    "user@example.com",
			"password": "password123",
		})

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		tokens := response["tokens"].(map[string]interface{})
		assert.NotEmpty(t, tokens["access_token"])
	})

	t.Run("Wrong password", func(t *testing.T) {
		w := doJSON(router, http.MethodPost, "/api/auth/login", map[string]interface{}{
			"email":    "user@example.com",
			"password": "wrongpassword",
		})

		assert.Equal(t, http.StatusUnauthorized, w.Code)

		var response map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "AUTH_INVALID_CREDENTIALS", response["error"])
	})
}

func TestAuthController_GetMe(t *testing.T) {
	controller, authService := setupAuthControllerTest(t)

	user, _, err := authService.Register("me@example.com", "password123", "Me")
	require.NoError(t, err)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/auth/me", func(c *gin.Context) {
		c.Set("user_id", user.ID)
		c.Next()
	}, controller.GetMe)

	w := doJSON(router, http.MethodGet, "/api/auth/me", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "me@example.com", response["email"])
}

func TestAuthController_Logout_RevokesToken(t *testing.T) {
	mr := miniredis.RunT(t)
	host, port, err := net.SplitHostPort(mr.Addr())
	require.NoError(t, err)
	require.NoError(t, redis.Init(&config.RedisConfig{Host: host, Port: port}))
	t.Cleanup(func() {
		redis.Close()
	})

	controller, authService := setupAuthControllerTest(t)

	_, tokens, err := authService.Register("bye@example.com", "password123", "Leaving User")
	require.NoError(t, err)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	authMiddleware := middleware.NewAuthMiddleware(testAuthSecret)
	router.POST("/api/auth/logout", authMiddleware.Authenticate(), controller.Logout)
	router.GET("/api/auth/me", authMiddleware.Authenticate(), controller.GetMe)

	bearer := func(method, path string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, nil)
		req.Header.Set("Authorization", "Bearer "+tokens.AccessToken)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	// The session works before logout.
	w := bearer(http.MethodGet, "/api/auth/me")
	assert.Equal(t, http.StatusOK, w.Code)

	w = bearer(http.MethodPost, "/api/auth/logout")
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Logged out successfully", response["message"])

	// The revoked token no longer opens a session.
	w = bearer(http.MethodGet, "/api/auth/me")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "AUTH_TOKEN_REVOKED", response["error"])
}
