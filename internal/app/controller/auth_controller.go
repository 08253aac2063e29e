package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sneakersdealer/ds-admin-backend/internal/app/model"
	"github.com/sneakersdealer/ds-admin-backend/internal/app/service"
	apperrors "github.com/sneakersdealer/ds-admin-backend/internal/errors"
	"github.com/sneakersdealer/ds-admin-backend/internal/middleware"
	"github.com/sneakersdealer/ds-admin-backend/pkg/redis"
	"github.com/sneakersdealer/ds-admin-backend/pkg/util"
)

type AuthController struct {
	authService service.AuthService
	jwtSecret   string
}

func NewAuthController(authService service.AuthService, jwtSecret string) *AuthController {
	return &AuthController{
		authService: authService,
		jwtSecret:   jwtSecret,
	}
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	User   *model.User     `json:"user"`
	Tokens *util.TokenPair `json:"tokens"`
}

// Register creates an account and signs the caller in
// POST /api/auth/register
func (ctrl *AuthController) Register(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid request data: "+err.Error())
		return
	}

	user, tokens, err := ctrl.authService.Register(req.Email, req.Password, req.Name)
	if err != nil {
		if errors.Is(err, service.ErrEmailAlreadyExists) {
			apperrors.Conflict(c, apperrors.AuthEmailAlreadyExists, "An account with this email already exists")
			return
		}
		log.Error("[AUTH_REGISTER]", err, map[string]interface{}{
			"email": req.Email,
		})
		apperrors.InternalError(c, "Internal error")
		return
	}

	c.JSON(http.StatusCreated, AuthResponse{
		User:   user,
		Tokens: tokens,
	})
}

// Login authenticates with email and password
// POST /api/auth/login
func (ctrl *AuthController) Login(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid request data: "+err.Error())
		return
	}

	user, tokens, err := ctrl.authService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			apperrors.RespondWithError(c, http.StatusUnauthorized, apperrors.AuthInvalidCredentials, "Invalid email or password")
			return
		}
		log.Error("[AUTH_LOGIN]", err, map[string]interface{}{
			"email": req.Email,
		})
		apperrors.InternalError(c, "Internal error")
		return
	}

	c.JSON(http.StatusOK, AuthResponse{
		User:   user,
		Tokens: tokens,
	})
}

// Logout revokes the presented token for the rest of its lifetime.
// When redis is not configured the token simply ages out on its own.
// POST /api/auth/logout
func (ctrl *AuthController) Logout(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	token, ok := middleware.GetAuthToken(c)
	if !ok {
		apperrors.Unauthorized(c, "Unauthenticated")
		return
	}

	if redis.Enabled() {
		claims, err := util.ValidateToken(token, ctrl.jwtSecret)
		if err == nil && claims.ExpiresAt != nil {
			ttl := time.Until(claims.ExpiresAt.Time)
			if ttl > 0 {
				if err := redis.BlacklistToken(c.Request.Context(), token, ttl); err != nil {
					log.Error("[AUTH_LOGOUT]", err, nil)
					apperrors.InternalError(c, "Internal error")
					return
				}
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Logged out successfully",
	})
}

// GetMe returns the authenticated user's profile
// GET /api/auth/me
func (ctrl *AuthController) GetMe(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "Unauthenticated")
		return
	}

	user, err := ctrl.authService.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "User not found")
			return
		}
		log.Error("[AUTH_ME]", err, map[string]interface{}{
			"user_id": userID,
		})
		apperrors.InternalError(c, "Internal error")
		return
	}

	c.JSON(http.StatusOK, user)
}
