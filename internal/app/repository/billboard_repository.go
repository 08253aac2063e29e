package repository

import (
	"github.com/sneakersdealer/ds-admin-backend/internal/app/model"
	"github.com/sneakersdealer/ds-admin-backend/pkg/logger"
	"gorm.io/gorm"
)

type BillboardRepository interface {
	Create(billboard *model.Billboard) error
	FindByStore(storeID string) ([]model.Billboard, error)
	FindByID(id string) (*model.Billboard, error)
	Update(billboard *model.Billboard) error
	Delete(id string) error
}

type billboardRepository struct {
	db *gorm.DB
}

func NewBillboardRepository(db *gorm.DB) BillboardRepository {
	return &billboardRepository{db: db}
}

func (r *billboardRepository) Create(billboard *model.Billboard) error {
	if err := r.db.Create(billboard).Error; err != nil {
		logger.Error("Failed to create billboard in database", err, map[string]interface{}{
			"label":    billboard.Label,
			"store_id": billboard.StoreID,
		})
		return err
	}
	return nil
}

func (r *billboardRepository) FindByStore(storeID string) ([]model.Billboard, error) {
	var billboards []model.Billboard
	if err := r.db.Where("store_id = ?", storeID).Find(&billboards).Error; err != nil {
		logger.Error("Failed to find billboards for store", err, map[string]interface{}{
			"store_id": storeID,
		})
		return nil, err
	}
	return billboards, nil
}

func (r *billboardRepository) FindByID(id string) (*model.Billboard, error) {
	var billboard model.Billboard
	if err := r.db.First(&billboard, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &billboard, nil
}

func (r *billboardRepository) Update(billboard *model.Billboard) error {
	if err := r.db.Save(billboard).Error; err != nil {
		logger.Error("Failed to update billboard in database", err, map[string]interface{}{
			"billboard_id": billboard.ID,
		})
		return err
	}
	return nil
}

func (r *billboardRepository) Delete(id string) error {
	if err := r.db.Delete(&model.Billboard{}, "id = ?", id).Error; err != nil {
		logger.Error("Failed to delete billboard from database", err, map[string]interface{}{
			"billboard_id": id,
		})
		return err
	}
	return nil
}
