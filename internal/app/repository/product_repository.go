package repository

import (
	"fmt"

	"github.com/sneakersdealer/ds-admin-backend/internal/app/model"
	"github.com/sneakersdealer/ds-admin-backend/pkg/logger"
	"gorm.io/gorm"
)

// ProductFilter drives storefront product queries. All list reads are
// scoped to a store and exclude archived products.
type ProductFilter struct {
	StoreID      string
	Search       string // name substring
	Brand        string // exact match
	Silhouette   string // exact match
	FeaturedOnly bool
	Limit        int
	Offset       int
}

type ProductRepository interface {
	Create(product *model.Product) error
	FindWithFilter(filter ProductFilter) ([]model.Product, error)
	FindByID(id string) (*model.Product, error)
	FindByIDs(ids []string) ([]model.Product, error)
	Count(filter ProductFilter) (int64, error)
	Update(product *model.Product) error
	Delete(id string) error
	DeleteByStore(storeID string) error
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

// Create persists the product together with its size and image rows.
// GORM cascades the child collections inside a single transaction.
func (r *productRepository) Create(product *model.Product) error {
	logger.Debug("Creating product in database", map[string]interface{}{
		"name":     product.Name,
		"sku":      product.SKU,
		"store_id": product.StoreID,
		"sizes":    len(product.Sizes),
		"images":   len(product.Images),
	})

	if err := r.db.Create(product).Error; err != nil {
		logger.Error("Failed to create product in database", err, map[string]interface{}{
			"name":     product.Name,
			"store_id": product.StoreID,
		})
		return err
	}

	logger.Debug("Product created in database", map[string]interface{}{
		"product_id": product.ID,
		"name":       product.Name,
		"store_id":   product.StoreID,
	})
	return nil
}

func (r *productRepository) baseQuery() *gorm.DB {
	return r.db.Model(&model.Product{}).
		Preload("Images").
		Preload("Sizes")
}

func (r *productRepository) applyFilter(query *gorm.DB, filter ProductFilter) *gorm.DB {
	query = query.Where("products.store_id = ?", filter.StoreID).
		Where("products.is_archived = ?", false)

	if filter.Search != "" {
		query = query.Where("products.name LIKE ?", fmt.Sprintf("%%%s%%", filter.Search))
	}
	if filter.Brand != "" {
		query = query.Where("products.brand = ?", filter.Brand)
	}
	if filter.Silhouette != "" {
		query = query.Where("products.silhouette = ?", filter.Silhouette)
	}
	if filter.FeaturedOnly {
		query = query.Where("products.is_featured = ?", true)
	}
	return query
}

func (r *productRepository) FindWithFilter(filter ProductFilter) ([]model.Product, error) {
	logger.Debug("Finding products with filter", map[string]interface{}{
		"store_id":      filter.StoreID,
		"search":        filter.Search,
		"brand":         filter.Brand,
		"silhouette":    filter.Silhouette,
		"featured_only": filter.FeaturedOnly,
		"limit":         filter.Limit,
		"offset":        filter.Offset,
	})

	query := r.applyFilter(r.baseQuery(), filter)

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var products []model.Product
	if err := query.Find(&products).Error; err != nil {
		logger.Error("Failed to find products with filter", err, map[string]interface{}{
			"store_id": filter.StoreID,
			"search":   filter.Search,
		})
		return nil, err
	}

	logger.Debug("Products found with filter", map[string]interface{}{
		"count": len(products),
	})
	return products, nil
}

func (r *productRepository) FindByID(id string) (*model.Product, error) {
	var product model.Product
	err := r.baseQuery().Where("products.id = ?", id).First(&product).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			logger.Error("Failed to find product by ID in database", err, map[string]interface{}{
				"product_id": id,
			})
		}
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) FindByIDs(ids []string) ([]model.Product, error) {
	logger.Debug("Finding products by IDs", map[string]interface{}{
		"count": len(ids),
	})

	var products []model.Product
	if err := r.baseQuery().Where("products.id IN ?", ids).Find(&products).Error; err != nil {
		logger.Error("Failed to find products by IDs", err, map[string]interface{}{
			"count": len(ids),
		})
		return nil, err
	}
	return products, nil
}

func (r *productRepository) Count(filter ProductFilter) (int64, error) {
	var count int64
	query := r.applyFilter(r.db.Model(&model.Product{}), filter)
	if err := query.Count(&count).Error; err != nil {
		logger.Error("Failed to count products", err, map[string]interface{}{
			"store_id": filter.StoreID,
		})
		return 0, err
	}
	return count, nil
}

// Update rewrites the product's scalar columns and replaces its size and
// image collections wholesale from the given struct. The delete and
// recreate run in one transaction so a failure never leaves the product
// with half of its children.
func (r *productRepository) Update(product *model.Product) error {
	logger.Debug("Updating product in database", map[string]interface{}{
		"product_id": product.ID,
		"name":       product.Name,
		"sizes":      len(product.Sizes),
		"images":     len(product.Images),
	})

	sizes := product.Sizes
	images := product.Images

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Sizes", "Images").Save(product).Error; err != nil {
			return err
		}

		if err := tx.Where("product_id = ?", product.ID).Delete(&model.Size{}).Error; err != nil {
			return err
		}
		if err := tx.Where("product_id = ?", product.ID).Delete(&model.Image{}).Error; err != nil {
			return err
		}

		for i := range sizes {
			sizes[i].ID = ""
			sizes[i].ProductID = product.ID
		}
		for i := range images {
			images[i].ID = ""
			images[i].ProductID = product.ID
		}

		if len(sizes) > 0 {
			if err := tx.Create(&sizes).Error; err != nil {
				return err
			}
		}
		if len(images) > 0 {
			if err := tx.Create(&images).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		logger.Error("Failed to update product in database", err, map[string]interface{}{
			"product_id": product.ID,
			"name":       product.Name,
		})
		return err
	}

	product.Sizes = sizes
	product.Images = images

	logger.Debug("Product updated in database", map[string]interface{}{
		"product_id": product.ID,
		"name":       product.Name,
	})
	return nil
}

func (r *productRepository) Delete(id string) error {
	logger.Debug("Deleting product from database", map[string]interface{}{
		"product_id": id,
	})

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&model.Size{}).Error; err != nil {
			return err
		}
		if err := tx.Where("product_id = ?", id).Delete(&model.Image{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&model.Product{}, "id = ?", id).Error; err != nil {
			logger.Error("Failed to delete product from database", err, map[string]interface{}{
				"product_id": id,
			})
			return err
		}
		return nil
	})
}

// DeleteByStore removes every product under a store, children included.
func (r *productRepository) DeleteByStore(storeID string) error {
	logger.Debug("Deleting all products for store", map[string]interface{}{
		"store_id": storeID,
	})

	return r.db.Transaction(func(tx *gorm.DB) error {
		subquery := tx.Model(&model.Product{}).Select("id").Where("store_id = ?", storeID)

		if err := tx.Where("product_id IN (?)", subquery).Delete(&model.Size{}).Error; err != nil {
			return err
		}
		if err := tx.Where("product_id IN (?)", subquery).Delete(&model.Image{}).Error; err != nil {
			return err
		}
		if err := tx.Where("store_id = ?", storeID).Delete(&model.Product{}).Error; err != nil {
			logger.Error("Failed to delete products for store", err, map[string]interface{}{
				"store_id": storeID,
			})
			return err
		}
		return nil
	})
}
