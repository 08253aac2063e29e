package repository

import (
	"github.com/sneakersdealer/ds-admin-backend/internal/app/model"
	"github.com/sneakersdealer/ds-admin-backend/pkg/logger"
	"gorm.io/gorm"
)

type StoreRepository interface {
	Create(store *model.Store) error
	FindByID(id string) (*model.Store, error)
	FindByIDAndUser(id, userID string) (*model.Store, error)
	FindByUser(userID string) ([]model.Store, error)
}

type storeRepository struct {
	db *gorm.DB
}

func NewStoreRepository(db *gorm.DB) StoreRepository {
	return &storeRepository{db: db}
}

func (r *storeRepository) Create(store *model.Store) error {
	if err := r.db.Create(store).Error; err != nil {
		logger.Error("Failed to create store in database", err, map[string]interface{}{
			"name":    store.Name,
			"user_id": store.UserID,
		})
		return err
	}
	return nil
}

func (r *storeRepository) FindByID(id string) (*model.Store, error) {
	var store model.Store
	if err := r.db.First(&store, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &store, nil
}

// FindByIDAndUser resolves a store only when the given user owns it.
// Every mutation route goes through this lookup before touching rows.
func (r *storeRepository) FindByIDAndUser(id, userID string) (*model.Store, error) {
	var store model.Store
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&store).Error
	if err != nil {
		return nil, err
	}
	return &store, nil
}

func (r *storeRepository) FindByUser(userID string) ([]model.Store, error) {
	var stores []model.Store
	if err := r.db.Where("user_id = ?", userID).Find(&stores).Error; err != nil {
		logger.Error("Failed to find stores for user", err, map[string]interface{}{
			"user_id": userID,
		})
		return nil, err
	}
	return stores, nil
}
