package service

import (
	"errors"

	"github.com/sneakersdealer/ds-admin-backend/internal/app/model"
	"github.com/sneakersdealer/ds-admin-backend/internal/app/repository"
	"github.com/sneakersdealer/ds-admin-backend/pkg/logger"
	"gorm.io/gorm"
)

var ErrBrandNotFound = errors.New("brand not found")

type BrandService interface {
	ListBrands(storeID string) ([]model.Brand, error)
	GetBrandByID(id string) (*model.Brand, error)
	GetBrandByName(name string) (*model.Brand, error)
	CreateBrand(userID string, brand *model.Brand) error
	UpdateBrand(userID string, brand *model.Brand) error
	DeleteBrand(userID, storeID, id string) error
}

type brandService struct {
	brandRepo    repository.BrandRepository
	storeService StoreService
}

func NewBrandService(brandRepo repository.BrandRepository, storeService StoreService) BrandService {
	return &brandService{
		brandRepo:    brandRepo,
		storeService: storeService,
	}
}

func (s *brandService) ListBrands(storeID string) ([]model.Brand, error) {
	return s.brandRepo.FindByStore(storeID)
}

func (s *brandService) GetBrandByID(id string) (*model.Brand, error) {
	brand, err := s.brandRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBrandNotFound
		}
		return nil, err
	}
	return brand, nil
}

func (s *brandService) GetBrandByName(name string) (*model.Brand, error) {
	brand, err := s.brandRepo.FindFirstByName(name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBrandNotFound
		}
		return nil, err
	}
	return brand, nil
}

func (s *brandService) CreateBrand(userID string, brand *model.Brand) error {
	if err := s.storeService.VerifyOwnership(brand.StoreID, userID); err != nil {
		return err
	}

	if err := s.brandRepo.Create(brand); err != nil {
		return err
	}

	logger.Info("Brand created", map[string]interface{}{
		"brand_id": brand.ID,
		"name":     brand.Name,
		"store_id": brand.StoreID,
	})
	return nil
}

func (s *brandService) UpdateBrand(userID string, brand *model.Brand) error {
	if err := s.storeService.VerifyOwnership(brand.StoreID, userID); err != nil {
		return err
	}

	existing, err := s.brandRepo.FindByID(brand.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBrandNotFound
		}
		return err
	}

	existing.Name = brand.Name
	existing.URL = brand.URL
	existing.Description = brand.Description

	if err := s.brandRepo.Update(existing); err != nil {
		return err
	}

	*brand = *existing
	return nil
}

func (s *brandService) DeleteBrand(userID, storeID, id string) error {
	if err := s.storeService.VerifyOwnership(storeID, userID); err != nil {
		return err
	}

	if err := s.brandRepo.Delete(id); err != nil {
		return err
	}

	logger.Info("Brand deleted", map[string]interface{}{
		"brand_id": id,
		"store_id": storeID,
	})
	return nil
}
