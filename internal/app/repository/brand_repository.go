package repository

import (
	"github.com/sneakersdealer/ds-admin-backend/internal/app/model"
	"github.com/sneakersdealer/ds-admin-backend/pkg/logger"
	"gorm.io/gorm"
)

type BrandRepository interface {
	Create(brand *model.Brand) error
	FindByStore(storeID string) ([]model.Brand, error)
	FindByID(id string) (*model.Brand, error)
	FindFirstByName(name string) (*model.Brand, error)
	Update(brand *model.Brand) error
	Delete(id string) error
}

type brandRepository struct {
	db *gorm.DB
}

func NewBrandRepository(db *gorm.DB) BrandRepository {
	return &brandRepository{db: db}
}

func (r *brandRepository) Create(brand *model.Brand) error {
	if err := r.db.Create(brand).Error; err != nil {
		logger.Error("Failed to create brand in database", err, map[string]interface{}{
			"name":     brand.Name,
			"store_id": brand.StoreID,
		})
		return err
	}
	return nil
}

func (r *brandRepository) FindByStore(storeID string) ([]model.Brand, error) {
	var brands []model.Brand
	if err := r.db.Where("store_id = ?", storeID).Find(&brands).Error; err != nil {
		logger.Error("Failed to find brands for store", err, map[string]interface{}{
			"store_id": storeID,
		})
		return nil, err
	}
	return brands, nil
}

func (r *brandRepository) FindByID(id string) (*model.Brand, error) {
	var brand model.Brand
	if err := r.db.First(&brand, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &brand, nil
}

// FindFirstByName resolves a brand by its display name. The storefront
// looks brands up this way, so the match is not store scoped.
func (r *brandRepository) FindFirstByName(name string) (*model.Brand, error) {
	var brand model.Brand
	if err := r.db.Where("name = ?", name).First(&brand).Error; err != nil {
		return nil, err
	}
	return &brand, nil
}

func (r *brandRepository) Update(brand *model.Brand) error {
	if err := r.db.Save(brand).Error; err != nil {
		logger.Error("Failed to update brand in database", err, map[string]interface{}{
			"brand_id": brand.ID,
		})
		return err
	}
	return nil
}

func (r *brandRepository) Delete(id string) error {
	if err := r.db.Delete(&model.Brand{}, "id = ?", id).Error; err != nil {
		logger.Error("Failed to delete brand from database", err, map[string]interface{}{
			"brand_id": id,
		})
		return err
	}
	return nil
}
