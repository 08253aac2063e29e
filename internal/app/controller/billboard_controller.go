package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sneakersdealer/ds-admin-backend/internal/app/model"
	"github.com/sneakersdealer/ds-admin-backend/internal/app/service"
	apperrors "github.com/sneakersdealer/ds-admin-backend/internal/errors"
	"github.com/sneakersdealer/ds-admin-backend/internal/middleware"
)

type BillboardController struct {
	billboardService service.BillboardService
}

func NewBillboardController(billboardService service.BillboardService) *BillboardController {
	return &BillboardController{
		billboardService: billboardService,
	}
}

type BillboardRequest struct {
	Label       string `json:"label"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

// GetBillboards returns all billboards for a store (public)
// GET /api/:storeId/billboards
func (ctrl *BillboardController) GetBillboards(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	storeID := c.Param("storeId")
	if storeID == "" {
		apperrors.Forbidden(c, "Store Id is required")
		return
	}

	billboards, err := ctrl.billboardService.ListBillboards(storeID)
	if err != nil {
		log.Error("[BILLBOARDS_GET]", err, map[string]interface{}{
			"store_id": storeID,
		})
		apperrors.InternalError(c, "Internal error")
		return
	}

	c.JSON(http.StatusOK, billboards)
}

// GetBillboardByID returns a single billboard, or null when it does not exist
// GET /api/:storeId/billboards/:billboardId
func (ctrl *BillboardController) GetBillboardByID(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	billboardID := c.Param("billboardId")
	if billboardID == "" {
		apperrors.MissingField(c, "Billboard id is required")
		return
	}

	billboard, err := ctrl.billboardService.GetBillboardByID(billboardID)
	if err != nil {
		if errors.Is(err, service.ErrBillboardNotFound) {
			c.JSON(http.StatusOK, nil)
			return
		}
		log.Error("[BILLBOARD_GET]", err, map[string]interface{}{
			"billboard_id": billboardID,
		})
		apperrors.InternalError(c, "Internal error")
		return
	}

	c.JSON(http.StatusOK, billboard)
}

// CreateBillboard creates a billboard for a store the caller owns
// POST /api/:storeId/billboards
func (ctrl *BillboardController) CreateBillboard(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "Unauthenticated")
		return
	}

	var req BillboardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid request data")
		return
	}

	if req.Label == "" {
		apperrors.MissingField(c, "Label is required")
		return
	}
	if req.Description == "" {
		apperrors.MissingField(c, "Description is required")
		return
	}
	if req.ImageURL == "" {
		apperrors.MissingField(c, "Image Url is required")
		return
	}

	storeID := c.Param("storeId")
	if storeID == "" {
		apperrors.MissingField(c, "Store Id is required")
		return
	}

	billboard := &model.Billboard{
		Label:       req.Label,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		StoreID:     storeID,
	}

	if err := ctrl.billboardService.CreateBillboard(userID, billboard); err != nil {
		if errors.Is(err, service.ErrStoreAccessDenied) {
			apperrors.Forbidden(c, "Unauthorized")
			return
		}
		log.Error("[BILLBOARDS_POST]", err, map[string]interface{}{
			"store_id": storeID,
			"label":    req.Label,
		})
		apperrors.InternalError(c, "Internal error")
		return
	}

	c.JSON(http.StatusOK, billboard)
}

// UpdateBillboard updates a billboard
// PATCH /api/:storeId/billboards/:billboardId
func (ctrl *BillboardController) UpdateBillboard(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "Unauthenticated")
		return
	}

	var req BillboardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid request data")
		return
	}

	if req.Label == "" {
		apperrors.MissingField(c, "Label is required")
		return
	}
	if req.Description == "" {
		apperrors.MissingField(c, "Description is required")
		return
	}
	if req.ImageURL == "" {
		apperrors.MissingField(c, "Image Url is required")
		return
	}

	billboardID := c.Param("billboardId")
	if billboardID == "" {
		apperrors.MissingField(c, "Billboard id is required")
		return
	}

	billboard := &model.Billboard{
		ID:          billboardID,
		Label:       req.Label,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		StoreID:     c.Param("storeId"),
	}

	if err := ctrl.billboardService.UpdateBillboard(userID, billboard); err != nil {
		if errors.Is(err, service.ErrStoreAccessDenied) {
			apperrors.Forbidden(c, "Unauthorized")
			return
		}
		if errors.Is(err, service.ErrBillboardNotFound) {
			apperrors.NotFound(c, apperrors.BillboardNotFound, "Billboard not found")
			return
		}
		log.Error("[BILLBOARD_PATCH]", err, map[string]interface{}{
			"billboard_id": billboardID,
		})
		apperrors.InternalError(c, "Internal error")
		return
	}

	c.JSON(http.StatusOK, billboard)
}

// DeleteBillboard deletes a billboard
// DELETE /api/:storeId/billboards/:billboardId
func (ctrl *BillboardController) DeleteBillboard(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "Unauthenticated")
		return
	}

	billboardID := c.Param("billboardId")
	if billboardID == "" {
		apperrors.MissingField(c, "Billboard id is required")
		return
	}

	storeID := c.Param("storeId")

	if err := ctrl.billboardService.DeleteBillboard(userID, storeID, billboardID); err != nil {
		if errors.Is(err, service.ErrStoreAccessDenied) {
			apperrors.Forbidden(c, "Unauthorized")
			return
		}
		log.Error("[BILLBOARD_DELETE]", err, map[string]interface{}{
			"billboard_id": billboardID,
		})
		apperrors.InternalError(c, "Internal error")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Billboard deleted successfully",
	})
}
