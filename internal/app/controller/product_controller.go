package controller

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sneakersdealer/ds-admin-backend/internal/app/model"
	"github.com/sneakersdealer/ds-admin-backend/internal/app/service"
	apperrors "github.com/sneakersdealer/ds-admin-backend/internal/errors"
	"github.com/sneakersdealer/ds-admin-backend/internal/middleware"
)

type ProductController struct {
	productService service.ProductService
}

func NewProductController(productService service.ProductService) *ProductController {
	return &ProductController{
		productService: productService,
	}
}

type SizeInput struct {
	Value    string `json:"value"`
	Price    string `json:"price"`
	InStock  bool   `json:"inStock"`
	Quantity string `json:"quantity"`
}

type ImageInput struct {
	URL string `json:"url"`
}

type ProductRequest struct {
	Name          string       `json:"name"`
	PictureURL    string       `json:"pictureUrl"`
	Price         float64      `json:"price"`
	Discount      string       `json:"discount"`
	SKU           string       `json:"sku"`
	Slug          string       `json:"slug"`
	Brand         string       `json:"brand"`
	Silhouette    string       `json:"silhouette"`
	Designer      string       `json:"designer"`
	Details       string       `json:"details"`
	ReleaseDate   string       `json:"releaseDate"`
	UpperMaterial string       `json:"upperMaterial"`
	SingleGender  string       `json:"singleGender"`
	Story         string       `json:"story"`
	SizeUnit      string       `json:"sizeUnit"`
	Category      string       `json:"category"`
	Color         string       `json:"color"`
	IsFeatured    bool         `json:"isFeatured"`
	IsArchived    bool         `json:"isArchived"`
	Sizes         []SizeInput  `json:"sizes"`
	Images        []ImageInput `json:"images"`
}

func (req *ProductRequest) toModel(storeID string) *model.Product {
	product := &model.Product{
		Name:          req.Name,
		PictureURL:    req.PictureURL,
		Price:         req.Price,
		Discount:      req.Discount,
		SKU:           req.SKU,
		Slug:          req.Slug,
		Brand:         req.Brand,
		Silhouette:    req.Silhouette,
		Designer:      req.Designer,
		Details:       req.Details,
		ReleaseDate:   req.ReleaseDate,
		UpperMaterial: req.UpperMaterial,
		SingleGender:  req.SingleGender,
		Story:         req.Story,
		SizeUnit:      req.SizeUnit,
		Category:      req.Category,
		Color:         req.Color,
		IsFeatured:    req.IsFeatured,
		IsArchived:    req.IsArchived,
		StoreID:       storeID,
	}
	for _, s := range req.Sizes {
		product.Sizes = append(product.Sizes, model.Size{
			Value:    s.Value,
			Price:    s.Price,
			InStock:  s.InStock,
			Quantity: s.Quantity,
		})
	}
	for _, img := range req.Images {
		product.Images = append(product.Images, model.Image{
			URL: img.URL,
		})
	}
	return product
}

// GetProducts returns the store's live catalog (public).
//
// Query parameters:
//   - silhouette: related-products lookup, short fixed-size result,
//     search/brand/page are ignored
//   - searchQuery: substring match on name
//   - brand: exact match
//   - isFeatured: any non-empty value filters to featured products
//   - page: 1-based page of 30; absent means everything
//
// GET /api/:storeId/products
func (ctrl *ProductController) GetProducts(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	storeID := c.Param("storeId")
	if storeID == "" {
		apperrors.Forbidden(c, "Store Id is required")
		return
	}

	opts := service.ProductListOptions{
		StoreID:      storeID,
		Search:       c.Query("searchQuery"),
		Brand:        c.Query("brand"),
		Silhouette:   c.Query("silhouette"),
		FeaturedOnly: c.Query("isFeatured") != "",
	}
	if pageParam := c.Query("page"); pageParam != "" {
		page, err := strconv.Atoi(pageParam)
		if err == nil && page >= 1 {
			opts.Page = page
		}
	}

	products, err := ctrl.productService.ListProducts(opts)
	if err != nil {
		log.Error("[PRODUCTS_GET]", err, map[string]interface{}{
			"store_id": storeID,
		})
		apperrors.InternalError(c, "Internal error")
		return
	}

	c.JSON(http.StatusOK, products)
}

// GetProductByID returns a single product, or null when it does not exist
// GET /api/:storeId/products/:productId
func (ctrl *ProductController) GetProductByID(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	productID := c.Param("productId")
	if productID == "" {
		apperrors.MissingField(c, "Product id is required")
		return
	}

	product, err := ctrl.productService.GetProductByID(productID)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			c.JSON(http.StatusOK, nil)
			return
		}
		log.Error("[PRODUCT_GET]", err, map[string]interface{}{
			"product_id": productID,
		})
		apperrors.InternalError(c, "Internal error")
		return
	}

	c.JSON(http.StatusOK, product)
}

// GetFavoriteProducts resolves a path-embedded list of product ids,
// silently skipping the ones that no longer exist
// GET /api/:storeId/fav_products/*productIds
func (ctrl *ProductController) GetFavoriteProducts(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var ids []string
	for _, part := range strings.Split(c.Param("productIds"), "/") {
		if part != "" {
			ids = append(ids, part)
		}
	}
	if len(ids) == 0 {
		apperrors.MissingField(c, "Product ids are required")
		return
	}

	products, err := ctrl.productService.GetProductsByIDs(ids)
	if err != nil {
		log.Error("[FAV_PRODUCTS_GET]", err, map[string]interface{}{
			"requested": len(ids),
		})
		apperrors.InternalError(c, "Internal error")
		return
	}

	c.JSON(http.StatusOK, products)
}

// GetProductsAmount returns the catalog size when asked for it, null otherwise
// GET /api/:storeId/products_amount
func (ctrl *ProductController) GetProductsAmount(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	storeID := c.Param("storeId")
	if storeID == "" {
		apperrors.Forbidden(c, "Store Id is required")
		return
	}

	// Presence of the flag is what matters, a bare ?getAmount counts too.
	if !c.Request.URL.Query().Has("getAmount") {
		c.JSON(http.StatusOK, nil)
		return
	}

	opts := service.ProductListOptions{
		StoreID:      storeID,
		Search:       c.Query("searchQuery"),
		FeaturedOnly: c.Query("isFeatured") != "",
	}

	count, err := ctrl.productService.CountProducts(opts)
	if err != nil {
		log.Error("[PRODUCTS_AMOUNT_GET]", err, map[string]interface{}{
			"store_id": storeID,
		})
		apperrors.InternalError(c, "Internal error")
		return
	}

	c.JSON(http.StatusOK, count)
}

// CreateProduct creates a product with its sizes and images
// POST /api/:storeId/products
func (ctrl *ProductController) CreateProduct(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "Unauthenticated")
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid request data")
		return
	}

	if req.Sizes == nil {
		apperrors.MissingField(c, "sizes is required")
		return
	}
	if req.PictureURL == "" {
		apperrors.MissingField(c, "PictureUrl is required")
		return
	}

	storeID := c.Param("storeId")
	if storeID == "" {
		apperrors.MissingField(c, "Store Id is required")
		return
	}

	product := req.toModel(storeID)

	if err := ctrl.productService.CreateProduct(userID, product); err != nil {
		if errors.Is(err, service.ErrStoreAccessDenied) {
			apperrors.Forbidden(c, "Unauthorized")
			return
		}
		log.Error("[PRODUCTS_POST]", err, map[string]interface{}{
			"store_id": storeID,
			"name":     req.Name,
		})
		apperrors.InternalError(c, "Internal error")
		return
	}

	c.JSON(http.StatusOK, product)
}

// UpdateProduct rewrites the product and replaces its size and image
// collections with the submitted ones
// PATCH /api/:storeId/products/:productId
func (ctrl *ProductController) UpdateProduct(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "Unauthenticated")
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid request data")
		return
	}

	if req.PictureURL == "" {
		apperrors.MissingField(c, "PictureUrl is required")
		return
	}
	if req.Name == "" {
		apperrors.MissingField(c, "Name is required")
		return
	}
	if len(req.Images) == 0 {
		apperrors.MissingField(c, "Images is required")
		return
	}
	if req.Price == 0 {
		apperrors.MissingField(c, "Price is required")
		return
	}

	productID := c.Param("productId")
	if productID == "" {
		apperrors.MissingField(c, "Product id is required")
		return
	}

	product := req.toModel(c.Param("storeId"))
	product.ID = productID

	if err := ctrl.productService.UpdateProduct(userID, product); err != nil {
		if errors.Is(err, service.ErrStoreAccessDenied) {
			apperrors.Forbidden(c, "Unauthorized")
			return
		}
		if errors.Is(err, service.ErrProductNotFound) {
			apperrors.NotFound(c, apperrors.ProductNotFound, "Product not found")
			return
		}
		log.Error("[PRODUCT_PATCH]", err, map[string]interface{}{
			"product_id": productID,
		})
		apperrors.InternalError(c, "Internal error")
		return
	}

	c.JSON(http.StatusOK, product)
}

// DeleteProduct deletes a single product with its sizes and images
// DELETE /api/:storeId/products/:productId
func (ctrl *ProductController) DeleteProduct(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "Unauthenticated")
		return
	}

	productID := c.Param("productId")
	if productID == "" {
		apperrors.MissingField(c, "Product id is required")
		return
	}

	storeID := c.Param("storeId")

	if err := ctrl.productService.DeleteProduct(userID, storeID, productID); err != nil {
		if errors.Is(err, service.ErrStoreAccessDenied) {
			apperrors.Forbidden(c, "Unauthorized")
			return
		}
		log.Error("[PRODUCT_DELETE]", err, map[string]interface{}{
			"product_id": productID,
		})
		apperrors.InternalError(c, "Internal error")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product deleted successfully",
	})
}

// DeleteAllProducts wipes the store's whole catalog. Deliberately open:
// the storefront's purge tool calls this without a session, so the route
// carries no auth middleware and no ownership check.
// DELETE /api/:storeId/products
func (ctrl *ProductController) DeleteAllProducts(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	storeID := c.Param("storeId")
	if storeID == "" {
		apperrors.MissingField(c, "Store Id is required")
		return
	}

	if err := ctrl.productService.DeleteAllProducts(storeID); err != nil {
		log.Error("[PRODUCTS_DELETE]", err, map[string]interface{}{
			"store_id": storeID,
		})
		apperrors.InternalError(c, "Internal error")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "All products deleted successfully",
	})
}
