package service

import (
	"errors"

	"github.com/sneakersdealer/ds-admin-backend/internal/app/model"
	"github.com/sneakersdealer/ds-admin-backend/internal/app/repository"
	"github.com/sneakersdealer/ds-admin-backend/pkg/logger"
	"gorm.io/gorm"
)

var ErrProductNotFound = errors.New("product not found")

// DefaultPageSize is the fixed page size of the product collection.
const DefaultPageSize = 30

// SilhouetteResultLimit caps silhouette lookups; these feed a "related
// products" rail on the storefront, so pagination does not apply.
const SilhouetteResultLimit = 8

// ProductListOptions mirrors the storefront query surface.
type ProductListOptions struct {
	StoreID      string
	Search       string
	Brand        string
	Silhouette   string
	FeaturedOnly bool
	Page         int // 1-based; 0 means unpaginated
}

type ProductService interface {
	ListProducts(opts ProductListOptions) ([]model.Product, error)
	GetProductByID(id string) (*model.Product, error)
	GetProductsByIDs(ids []string) ([]model.Product, error)
	CountProducts(opts ProductListOptions) (int64, error)
	CreateProduct(userID string, product *model.Product) error
	UpdateProduct(userID string, product *model.Product) error
	DeleteProduct(userID, storeID, id string) error
	DeleteAllProducts(storeID string) error
}

type productService struct {
	productRepo  repository.ProductRepository
	storeService StoreService
}

func NewProductService(productRepo repository.ProductRepository, storeService StoreService) ProductService {
	return &productService{
		productRepo:  productRepo,
		storeService: storeService,
	}
}

func (s *productService) ListProducts(opts ProductListOptions) ([]model.Product, error) {
	logger.Debug("Listing products", map[string]interface{}{
		"store_id":   opts.StoreID,
		"search":     opts.Search,
		"brand":      opts.Brand,
		"silhouette": opts.Silhouette,
		"featured":   opts.FeaturedOnly,
		"page":       opts.Page,
	})

	filter := repository.ProductFilter{
		StoreID:      opts.StoreID,
		FeaturedOnly: opts.FeaturedOnly,
	}

	// A silhouette lookup returns a short fixed-size rail and ignores
	// the search/brand/page parameters entirely.
	if opts.Silhouette != "" {
		filter.Silhouette = opts.Silhouette
		filter.Limit = SilhouetteResultLimit
	} else {
		filter.Search = opts.Search
		filter.Brand = opts.Brand
		if opts.Page >= 1 {
			filter.Limit = DefaultPageSize
			filter.Offset = (opts.Page - 1) * DefaultPageSize
		}
	}

	return s.productRepo.FindWithFilter(filter)
}

func (s *productService) GetProductByID(id string) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

func (s *productService) GetProductsByIDs(ids []string) ([]model.Product, error) {
	return s.productRepo.FindByIDs(ids)
}

func (s *productService) CountProducts(opts ProductListOptions) (int64, error) {
	return s.productRepo.Count(repository.ProductFilter{
		StoreID:      opts.StoreID,
		Search:       opts.Search,
		FeaturedOnly: opts.FeaturedOnly,
	})
}

func (s *productService) CreateProduct(userID string, product *model.Product) error {
	if err := s.storeService.VerifyOwnership(product.StoreID, userID); err != nil {
		return err
	}

	if err := s.productRepo.Create(product); err != nil {
		return err
	}

	logger.Info("Product created", map[string]interface{}{
		"product_id": product.ID,
		"name":       product.Name,
		"store_id":   product.StoreID,
		"sizes":      len(product.Sizes),
		"images":     len(product.Images),
	})
	return nil
}

// UpdateProduct rewrites the product's scalar fields and replaces its
// size and image collections wholesale from the submitted payload.
func (s *productService) UpdateProduct(userID string, product *model.Product) error {
	if err := s.storeService.VerifyOwnership(product.StoreID, userID); err != nil {
		return err
	}

	existing, err := s.productRepo.FindByID(product.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		return err
	}

	// Preserve creation time; everything else comes from the payload.
	product.CreatedAt = existing.CreatedAt

	if err := s.productRepo.Update(product); err != nil {
		return err
	}

	logger.Info("Product updated", map[string]interface{}{
		"product_id": product.ID,
		"name":       product.Name,
		"store_id":   product.StoreID,
	})
	return nil
}

func (s *productService) DeleteProduct(userID, storeID, id string) error {
	if err := s.storeService.VerifyOwnership(storeID, userID); err != nil {
		return err
	}

	if err := s.productRepo.Delete(id); err != nil {
		return err
	}

	logger.Info("Product deleted", map[string]interface{}{
		"product_id": id,
		"store_id":   storeID,
	})
	return nil
}

// DeleteAllProducts wipes a store's whole catalog. The route that calls
// this is unauthenticated (the storefront purge tool relies on it), so
// there is no ownership check here.
func (s *productService) DeleteAllProducts(storeID string) error {
	if err := s.productRepo.DeleteByStore(storeID); err != nil {
		return err
	}

	logger.Warn("All products deleted for store", map[string]interface{}{
		"store_id": storeID,
	})
	return nil
}
