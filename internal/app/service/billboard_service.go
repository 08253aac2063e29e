package service

import (
	"errors"

	"github.com/sneakersdealer/ds-admin-backend/internal/app/model"
	"github.com/sneakersdealer/ds-admin-backend/internal/app/repository"
	"github.com/sneakersdealer/ds-admin-backend/pkg/logger"
	"gorm.io/gorm"
)

var ErrBillboardNotFound = errors.New("billboard not found")

type BillboardService interface {
	ListBillboards(storeID string) ([]model.Billboard, error)
	GetBillboardByID(id string) (*model.Billboard, error)
	CreateBillboard(userID string, billboard *model.Billboard) error
	UpdateBillboard(userID string, billboard *model.Billboard) error
	DeleteBillboard(userID, storeID, id string) error
}

type billboardService struct {
	billboardRepo repository.BillboardRepository
	storeService  StoreService
}

func NewBillboardService(billboardRepo repository.BillboardRepository, storeService StoreService) BillboardService {
	return &billboardService{
		billboardRepo: billboardRepo,
		storeService:  storeService,
	}
}

func (s *billboardService) ListBillboards(storeID string) ([]model.Billboard, error) {
	return s.billboardRepo.FindByStore(storeID)
}

func (s *billboardService) GetBillboardByID(id string) (*model.Billboard, error) {
	billboard, err := s.billboardRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBillboardNotFound
		}
		return nil, err
	}
	return billboard, nil
}

func (s *billboardService) CreateBillboard(userID string, billboard *model.Billboard) error {
	if err := s.storeService.VerifyOwnership(billboard.StoreID, userID); err != nil {
		return err
	}

	if err := s.billboardRepo.Create(billboard); err != nil {
		return err
	}

	logger.Info("Billboard created", map[string]interface{}{
		"billboard_id": billboard.ID,
		"label":        billboard.Label,
		"store_id":     billboard.StoreID,
	})
	return nil
}

func (s *billboardService) UpdateBillboard(userID string, billboard *model.Billboard) error {
	if err := s.storeService.VerifyOwnership(billboard.StoreID, userID); err != nil {
		return err
	}

	existing, err := s.billboardRepo.FindByID(billboard.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBillboardNotFound
		}
		return err
	}

	existing.Label = billboard.Label
	existing.Description = billboard.Description
	existing.ImageURL = billboard.ImageURL

	if err := s.billboardRepo.Update(existing); err != nil {
		return err
	}

	*billboard = *existing
	return nil
}

func (s *billboardService) DeleteBillboard(userID, storeID, id string) error {
	if err := s.storeService.VerifyOwnership(storeID, userID); err != nil {
		return err
	}

	if err := s.billboardRepo.Delete(id); err != nil {
		return err
	}

	logger.Info("Billboard deleted", map[string]interface{}{
		"billboard_id": id,
		"store_id":     storeID,
	})
	return nil
}
