package repository

import (
	"time"

	"github.com/sneakersdealer/ds-admin-backend/internal/app/model"
	"github.com/sneakersdealer/ds-admin-backend/pkg/logger"
	"gorm.io/gorm"
)

type PromocodeRepository interface {
	Create(promocode *model.Promocode) error
	FindByStore(storeID string) ([]model.Promocode, error)
	FindByID(id string) (*model.Promocode, error)
	FindFirstByName(storeID, name string) (*model.Promocode, error)
	Update(promocode *model.Promocode) error
	Delete(id string) error
	ArchiveExpired(now time.Time) (int64, error)
}

type promocodeRepository struct {
	db *gorm.DB
}

func NewPromocodeRepository(db *gorm.DB) PromocodeRepository {
	return &promocodeRepository{db: db}
}

func (r *promocodeRepository) Create(promocode *model.Promocode) error {
	if err := r.db.Create(promocode).Error; err != nil {
		logger.Error("Failed to create promocode in database", err, map[string]interface{}{
			"name":     promocode.Name,
			"store_id": promocode.StoreID,
		})
		return err
	}
	return nil
}

func (r *promocodeRepository) FindByStore(storeID string) ([]model.Promocode, error) {
	var promocodes []model.Promocode
	if err := r.db.Where("store_id = ?", storeID).Find(&promocodes).Error; err != nil {
		logger.Error("Failed to find promocodes for store", err, map[string]interface{}{
			"store_id": storeID,
		})
		return nil, err
	}
	return promocodes, nil
}

func (r *promocodeRepository) FindByID(id string) (*model.Promocode, error) {
	var promocode model.Promocode
	if err := r.db.First(&promocode, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &promocode, nil
}

// FindFirstByName is the storefront lookup path: a shopper redeems a
// code by name within a store.
func (r *promocodeRepository) FindFirstByName(storeID, name string) (*model.Promocode, error) {
	var promocode model.Promocode
	err := r.db.Where("store_id = ? AND name = ?", storeID, name).First(&promocode).Error
	if err != nil {
		return nil, err
	}
	return &promocode, nil
}

func (r *promocodeRepository) Update(promocode *model.Promocode) error {
	if err := r.db.Save(promocode).Error; err != nil {
		logger.Error("Failed to update promocode in database", err, map[string]interface{}{
			"promocode_id": promocode.ID,
		})
		return err
	}
	return nil
}

func (r *promocodeRepository) Delete(id string) error {
	if err := r.db.Delete(&model.Promocode{}, "id = ?", id).Error; err != nil {
		logger.Error("Failed to delete promocode from database", err, map[string]interface{}{
			"promocode_id": id,
		})
		return err
	}
	return nil
}

// ArchiveExpired flags every promocode whose validity window has closed.
// Called by the daily scheduler sweep.
func (r *promocodeRepository) ArchiveExpired(now time.Time) (int64, error) {
	result := r.db.Model(&model.Promocode{}).
		Where("is_archived = ? AND end_date < ?", false, now).
		Update("is_archived", true)
	if result.Error != nil {
		logger.Error("Failed to archive expired promocodes", result.Error)
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
