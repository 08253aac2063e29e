package service

import (
	"errors"

	"github.com/sneakersdealer/ds-admin-backend/internal/app/model"
	"github.com/sneakersdealer/ds-admin-backend/internal/app/repository"
	"github.com/sneakersdealer/ds-admin-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrStoreNotFound = errors.New("store not found")

	// ErrStoreAccessDenied means the caller is authenticated but does
	// not own the store named in the request path.
	ErrStoreAccessDenied = errors.New("store access denied")
)

type StoreService interface {
	CreateStore(userID, name string) (*model.Store, error)
	ListStores(userID string) ([]model.Store, error)
	GetStoreByID(id string) (*model.Store, error)

	// VerifyOwnership returns ErrStoreAccessDenied unless userID owns
	// the store. Catalog services call this before any mutation.
	VerifyOwnership(storeID, userID string) error
}

type storeService struct {
	storeRepo repository.StoreRepository
}

func NewStoreService(storeRepo repository.StoreRepository) StoreService {
	return &storeService{storeRepo: storeRepo}
}

func (s *storeService) CreateStore(userID, name string) (*model.Store, error) {
	store := &model.Store{
		Name:   name,
		UserID: userID,
	}

	if err := s.storeRepo.Create(store); err != nil {
		return nil, err
	}

	logger.Info("Store created", map[string]interface{}{
		"store_id": store.ID,
		"name":     store.Name,
		"user_id":  userID,
	})
	return store, nil
}

func (s *storeService) ListStores(userID string) ([]model.Store, error) {
	return s.storeRepo.FindByUser(userID)
}

func (s *storeService) GetStoreByID(id string) (*model.Store, error) {
	store, err := s.storeRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStoreNotFound
		}
		return nil, err
	}
	return store, nil
}

func (s *storeService) VerifyOwnership(storeID, userID string) error {
	_, err := s.storeRepo.FindByIDAndUser(storeID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Store ownership check failed", map[string]interface{}{
				"store_id": storeID,
				"user_id":  userID,
			})
			return ErrStoreAccessDenied
		}
		return err
	}
	return nil
}
