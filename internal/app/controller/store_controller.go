package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sneakersdealer/ds-admin-backend/internal/app/service"
	apperrors "github.com/sneakersdealer/ds-admin-backend/internal/errors"
	"github.com/sneakersdealer/ds-admin-backend/internal/middleware"
)

type StoreController struct {
	storeService service.StoreService
}

func NewStoreController(storeService service.StoreService) *StoreController {
	return &StoreController{
		storeService: storeService,
	}
}

type CreateStoreRequest struct {
	Name string `json:"name"`
}

// CreateStore creates a store owned by the caller
// POST /api/stores
func (ctrl *StoreController) CreateStore(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "Unauthenticated")
		return
	}

	var req CreateStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid request data")
		return
	}

	if req.Name == "" {
		apperrors.MissingField(c, "Name is required")
		return
	}

	store, err := ctrl.storeService.CreateStore(userID, req.Name)
	if err != nil {
		log.Error("[STORES_POST]", err, map[string]interface{}{
			"user_id": userID,
			"name":    req.Name,
		})
		apperrors.InternalError(c, "Internal error")
		return
	}

	c.JSON(http.StatusCreated, store)
}

// ListStores returns the caller's stores
// GET /api/stores
func (ctrl *StoreController) ListStores(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "Unauthenticated")
		return
	}

	stores, err := ctrl.storeService.ListStores(userID)
	if err != nil {
		log.Error("[STORES_GET]", err, map[string]interface{}{
			"user_id": userID,
		})
		apperrors.InternalError(c, "Internal error")
		return
	}

	c.JSON(http.StatusOK, stores)
}
