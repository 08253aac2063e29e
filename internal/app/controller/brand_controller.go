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

type BrandController struct {
	brandService service.BrandService
}

func NewBrandController(brandService service.BrandService) *BrandController {
	return &BrandController{
		brandService: brandService,
	}
}

type BrandRequest struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

// GetBrands returns all brands for a store (public)
// GET /api/:storeId/brands
func (ctrl *BrandController) GetBrands(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	storeID := c.Param("storeId")
	if storeID == "" {
		apperrors.Forbidden(c, "Store Id is required")
		return
	}

	brands, err := ctrl.brandService.ListBrands(storeID)
	if err != nil {
		log.Error("[BRANDS_GET]", err, map[string]interface{}{
			"store_id": storeID,
		})
		apperrors.InternalError(c, "Internal error")
		return
	}

	c.JSON(http.StatusOK, brands)
}

// GetBrandByID returns a single brand, or null when it does not exist
// GET /api/:storeId/brands/:brandId
func (ctrl *BrandController) GetBrandByID(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	brandID := c.Param("brandId")
	if brandID == "" {
		apperrors.MissingField(c, "Brand id is required")
		return
	}

	brand, err := ctrl.brandService.GetBrandByID(brandID)
	if err != nil {
		if errors.Is(err, service.ErrBrandNotFound) {
			c.JSON(http.StatusOK, nil)
			return
		}
		log.Error("[BRAND_GET]", err, map[string]interface{}{
			"brand_id": brandID,
		})
		apperrors.InternalError(c, "Internal error")
		return
	}

	c.JSON(http.StatusOK, brand)
}

// GetBrandByName resolves a brand by its display name, or null. The
// lookup is not store scoped, it matches the first brand with that name.
// GET /api/:storeId/brands/name/:brandName
func (ctrl *BrandController) GetBrandByName(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	brandName := c.Param("brandName")
	if brandName == "" {
		apperrors.MissingField(c, "Brand name is required")
		return
	}

	brand, err := ctrl.brandService.GetBrandByName(brandName)
	if err != nil {
		if errors.Is(err, service.ErrBrandNotFound) {
			c.JSON(http.StatusOK, nil)
			return
		}
		log.Error("[BRAND_NAME_GET]", err, map[string]interface{}{
			"brand_name": brandName,
		})
		apperrors.InternalError(c, "Internal error")
		return
	}

	c.JSON(http.StatusOK, brand)
}

// CreateBrand creates a brand for a store the caller owns
// POST /api/:storeId/brands
func (ctrl *BrandController) CreateBrand(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "Unauthenticated")
		return
	}

	var req BrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid request data")
		return
	}

	if req.Name == "" {
		apperrors.MissingField(c, "name is required")
		return
	}
	if req.Description == "" {
		apperrors.MissingField(c, "description is required")
		return
	}
	if req.URL == "" {
		apperrors.MissingField(c, "PictureUrl is required")
		return
	}

	storeID := c.Param("storeId")
	if storeID == "" {
		apperrors.MissingField(c, "Store Id is required")
		return
	}

	brand := &model.Brand{
		Name:        req.Name,
		URL:         req.URL,
		Description: req.Description,
		StoreID:     storeID,
	}

	if err := ctrl.brandService.CreateBrand(userID, brand); err != nil {
		if errors.Is(err, service.ErrStoreAccessDenied) {
			apperrors.Forbidden(c, "Unauthorized")
			return
		}
		log.Error("[BRANDS_POST]", err, map[string]interface{}{
			"store_id": storeID,
			"name":     req.Name,
		})
		apperrors.InternalError(c, "Internal error")
		return
	}

	c.JSON(http.StatusOK, brand)
}

// UpdateBrand updates a brand
// PATCH /api/:storeId/brands/:brandId
func (ctrl *BrandController) UpdateBrand(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "Unauthenticated")
		return
	}

	var req BrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid request data")
		return
	}

	if req.URL == "" {
		apperrors.MissingField(c, "PictureUrl is required")
		return
	}
	if req.Name == "" {
		apperrors.MissingField(c, "Name is required")
		return
	}

	brandID := c.Param("brandId")
	if brandID == "" {
		apperrors.MissingField(c, "brand id is required")
		return
	}

	brand := &model.Brand{
		ID:          brandID,
		Name:        req.Name,
		URL:         req.URL,
		Description: req.Description,
		StoreID:     c.Param("storeId"),
	}

	if err := ctrl.brandService.UpdateBrand(userID, brand); err != nil {
		if errors.Is(err, service.ErrStoreAccessDenied) {
			apperrors.Forbidden(c, "Unauthorized")
			return
		}
		if errors.Is(err, service.ErrBrandNotFound) {
			apperrors.NotFound(c, apperrors.BrandNotFound, "Brand not found")
			return
		}
		log.Error("[BRAND_PATCH]", err, map[string]interface{}{
			"brand_id": brandID,
		})
		apperrors.InternalError(c, "Internal error")
		return
	}

	c.JSON(http.StatusOK, brand)
}

// DeleteBrand deletes a brand
// DELETE /api/:storeId/brands/:brandId
func (ctrl *BrandController) DeleteBrand(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "Unauthenticated")
		return
	}

	brandID := c.Param("brandId")
	if brandID == "" {
		apperrors.MissingField(c, "Brand id is required")
		return
	}

	storeID := c.Param("storeId")

	if err := ctrl.brandService.DeleteBrand(userID, storeID, brandID); err != nil {
		if errors.Is(err, service.ErrStoreAccessDenied) {
			apperrors.Forbidden(c, "Unauthorized")
			return
		}
		log.Error("[BRAND_DELETE]", err, map[string]interface{}{
			"brand_id": brandID,
		})
		apperrors.InternalError(c, "Internal error")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Brand deleted successfully",
	})
}
