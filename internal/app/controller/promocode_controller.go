package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sneakersdealer/ds-admin-backend/internal/app/model"
	"github.com/sneakersdealer/ds-admin-backend/internal/app/service"
	apperrors "github.com/sneakersdealer/ds-admin-backend/internal/errors"
	"github.com/sneakersdealer/ds-admin-backend/internal/middleware"
)

type PromocodeController struct {
	promocodeService service.PromocodeService
}

func NewPromocodeController(promocodeService service.PromocodeService) *PromocodeController {
	return &PromocodeController{
		promocodeService: promocodeService,
	}
}

type PromocodeRequest struct {
	Name         string   `json:"name"`
	Discount     string   `json:"discount"`
	DiscountType string   `json:"discountType"`
	StartDate    dateTime `json:"startDate"`
	EndDate      dateTime `json:"endDate"`
}

// dateTime accepts the date formats the console and older scripts send,
// not just RFC3339.
type dateTime struct {
	time.Time
}

var dateTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"01/02/2006",
}

func (d *dateTime) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		return nil
	}
	for _, layout := range dateTimeLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			d.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("unrecognized date %q", s)
}

// GetPromocodes looks up a promocode by name for checkout. With a name
// it returns the matching code or null; without one it returns the
// store's full list.
// GET /api/:storeId/promocodes
func (ctrl *PromocodeController) GetPromocodes(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	storeID := c.Param("storeId")
	if storeID == "" {
		apperrors.Forbidden(c, "Store Id is required")
		return
	}

	name := c.Query("name")
	if name == "" {
		promocodes, err := ctrl.promocodeService.ListPromocodes(storeID)
		if err != nil {
			log.Error("[PROMOCODES_GET]", err, map[string]interface{}{
				"store_id": storeID,
			})
			apperrors.InternalError(c, "Internal error")
			return
		}
		c.JSON(http.StatusOK, promocodes)
		return
	}

	promocode, err := ctrl.promocodeService.GetPromocodeByName(storeID, name)
	if err != nil {
		if errors.Is(err, service.ErrPromocodeNotFound) {
			c.JSON(http.StatusOK, nil)
			return
		}
		log.Error("[PROMOCODES_GET]", err, map[string]interface{}{
			"store_id": storeID,
			"name":     name,
		})
		apperrors.InternalError(c, "Internal error")
		return
	}

	c.JSON(http.StatusOK, promocode)
}

// GetPromocodeByID returns a single promocode, or null when it does not exist
// GET /api/:storeId/promocodes/:promocodeId
func (ctrl *PromocodeController) GetPromocodeByID(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	promocodeID := c.Param("promocodeId")
	if promocodeID == "" {
		apperrors.MissingField(c, "Promocode id is required")
		return
	}

	promocode, err := ctrl.promocodeService.GetPromocodeByID(promocodeID)
	if err != nil {
		if errors.Is(err, service.ErrPromocodeNotFound) {
			c.JSON(http.StatusOK, nil)
			return
		}
		log.Error("[PROMOCODE_GET]", err, map[string]interface{}{
			"promocode_id": promocodeID,
		})
		apperrors.InternalError(c, "Internal error")
		return
	}

	c.JSON(http.StatusOK, promocode)
}

// CreatePromocode creates a promocode for a store the caller owns
// POST /api/:storeId/promocodes
func (ctrl *PromocodeController) CreatePromocode(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "Unauthenticated")
		return
	}

	var req PromocodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid request data")
		return
	}

	if req.Name == "" || req.Discount == "" || req.DiscountType == "" ||
		req.StartDate.IsZero() || req.EndDate.IsZero() {
		apperrors.MissingField(c, "Missing required fields")
		return
	}

	storeID := c.Param("storeId")
	if storeID == "" {
		apperrors.MissingField(c, "Store Id is required")
		return
	}

	promocode := &model.Promocode{
		Name:         req.Name,
		Discount:     req.Discount,
		DiscountType: model.DiscountType(req.DiscountType),
		StartDate:    req.StartDate.Time,
		EndDate:      req.EndDate.Time,
		StoreID:      storeID,
	}

	if err := ctrl.promocodeService.CreatePromocode(userID, promocode); err != nil {
		if errors.Is(err, service.ErrInvalidDiscountType) {
			apperrors.BadRequest(c, apperrors.PromocodeInvalidDiscountType, err.Error())
			return
		}
		if errors.Is(err, service.ErrStoreAccessDenied) {
			apperrors.Forbidden(c, "Unauthorized")
			return
		}
		log.Error("[PROMOCODES_POST]", err, map[string]interface{}{
			"store_id": storeID,
			"name":     req.Name,
		})
		apperrors.InternalError(c, "Internal error")
		return
	}

	c.JSON(http.StatusOK, promocode)
}

// UpdatePromocode updates a promocode
// PATCH /api/:storeId/promocodes/:promocodeId
func (ctrl *PromocodeController) UpdatePromocode(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "Unauthenticated")
		return
	}

	var req PromocodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid request data")
		return
	}

	if req.Name == "" || req.Discount == "" || req.DiscountType == "" ||
		req.StartDate.IsZero() || req.EndDate.IsZero() {
		apperrors.MissingField(c, "Missing required fields")
		return
	}

	promocodeID := c.Param("promocodeId")
	if promocodeID == "" {
		apperrors.MissingField(c, "Promocode id is required")
		return
	}

	promocode := &model.Promocode{
		ID:           promocodeID,
		Name:         req.Name,
		Discount:     req.Discount,
		DiscountType: model.DiscountType(req.DiscountType),
		StartDate:    req.StartDate.Time,
		EndDate:      req.EndDate.Time,
		StoreID:      c.Param("storeId"),
	}

	if err := ctrl.promocodeService.UpdatePromocode(userID, promocode); err != nil {
		if errors.Is(err, service.ErrInvalidDiscountType) {
			apperrors.BadRequest(c, apperrors.PromocodeInvalidDiscountType, err.Error())
			return
		}
		if errors.Is(err, service.ErrStoreAccessDenied) {
			apperrors.Forbidden(c, "Unauthorized")
			return
		}
		if errors.Is(err, service.ErrPromocodeNotFound) {
			apperrors.NotFound(c, apperrors.PromocodeNotFound, "Promocode not found")
			return
		}
		log.Error("[PROMOCODE_PATCH]", err, map[string]interface{}{
			"promocode_id": promocodeID,
		})
		apperrors.InternalError(c, "Internal error")
		return
	}

	c.JSON(http.StatusOK, promocode)
}

// DeletePromocode deletes a promocode
// DELETE /api/:storeId/promocodes/:promocodeId
func (ctrl *PromocodeController) DeletePromocode(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "Unauthenticated")
		return
	}

	promocodeID := c.Param("promocodeId")
	if promocodeID == "" {
		apperrors.MissingField(c, "Promocode id is required")
		return
	}

	storeID := c.Param("storeId")

	if err := ctrl.promocodeService.DeletePromocode(userID, storeID, promocodeID); err != nil {
		if errors.Is(err, service.ErrStoreAccessDenied) {
			apperrors.Forbidden(c, "Unauthorized")
			return
		}
		log.Error("[PROMOCODE_DELETE]", err, map[string]interface{}{
			"promocode_id": promocodeID,
		})
		apperrors.InternalError(c, "Internal error")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Promocode deleted successfully",
	})
}
