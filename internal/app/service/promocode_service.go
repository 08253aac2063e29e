package service

import (
	"errors"
	"time"

	"github.com/sneakersdealer/ds-admin-backend/internal/app/model"
	"github.com/sneakersdealer/ds-admin-backend/internal/app/repository"
	"github.com/sneakersdealer/ds-admin-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrPromocodeNotFound   = errors.New("promocode not found")
	ErrInvalidDiscountType = errors.New("discount type must be PERCENT or FIXED_AMOUNT")
)

type PromocodeService interface {
	ListPromocodes(storeID string) ([]model.Promocode, error)
	GetPromocodeByID(id string) (*model.Promocode, error)
	GetPromocodeByName(storeID, name string) (*model.Promocode, error)
	CreatePromocode(userID string, promocode *model.Promocode) error
	UpdatePromocode(userID string, promocode *model.Promocode) error
	DeletePromocode(userID, storeID, id string) error
	ArchiveExpired() (int64, error)
}

type promocodeService struct {
	promocodeRepo repository.PromocodeRepository
	storeService  StoreService
}

func NewPromocodeService(promocodeRepo repository.PromocodeRepository, storeService StoreService) PromocodeService {
	return &promocodeService{
		promocodeRepo: promocodeRepo,
		storeService:  storeService,
	}
}

func (s *promocodeService) ListPromocodes(storeID string) ([]model.Promocode, error) {
	return s.promocodeRepo.FindByStore(storeID)
}

func (s *promocodeService) GetPromocodeByID(id string) (*model.Promocode, error) {
	promocode, err := s.promocodeRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPromocodeNotFound
		}
		return nil, err
	}
	return promocode, nil
}

func (s *promocodeService) GetPromocodeByName(storeID, name string) (*model.Promocode, error) {
	promocode, err := s.promocodeRepo.FindFirstByName(storeID, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPromocodeNotFound
		}
		return nil, err
	}
	return promocode, nil
}

func (s *promocodeService) CreatePromocode(userID string, promocode *model.Promocode) error {
	if !promocode.DiscountType.IsValid() {
		return ErrInvalidDiscountType
	}

	if err := s.storeService.VerifyOwnership(promocode.StoreID, userID); err != nil {
		return err
	}

	if err := s.promocodeRepo.Create(promocode); err != nil {
		return err
	}

	logger.Info("Promocode created", map[string]interface{}{
		"promocode_id":  promocode.ID,
		"name":          promocode.Name,
		"discount_type": promocode.DiscountType,
		"store_id":      promocode.StoreID,
	})
	return nil
}

func (s *promocodeService) UpdatePromocode(userID string, promocode *model.Promocode) error {
	if !promocode.DiscountType.IsValid() {
		return ErrInvalidDiscountType
	}

	if err := s.storeService.VerifyOwnership(promocode.StoreID, userID); err != nil {
		return err
	}

	existing, err := s.promocodeRepo.FindByID(promocode.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPromocodeNotFound
		}
		return err
	}

	existing.Name = promocode.Name
	existing.Discount = promocode.Discount
	existing.DiscountType = promocode.DiscountType
	existing.StartDate = promocode.StartDate
	existing.EndDate = promocode.EndDate

	if err := s.promocodeRepo.Update(existing); err != nil {
		return err
	}

	*promocode = *existing
	return nil
}

func (s *promocodeService) DeletePromocode(userID, storeID, id string) error {
	if err := s.storeService.VerifyOwnership(storeID, userID); err != nil {
		return err
	}

	if err := s.promocodeRepo.Delete(id); err != nil {
		return err
	}

	logger.Info("Promocode deleted", map[string]interface{}{
		"promocode_id": id,
		"store_id":     storeID,
	})
	return nil
}

// ArchiveExpired flags every promocode whose end date has passed.
func (s *promocodeService) ArchiveExpired() (int64, error) {
	count, err := s.promocodeRepo.ArchiveExpired(time.Now())
	if err != nil {
		return 0, err
	}
	if count > 0 {
		logger.Info("Expired promocodes archived", map[string]interface{}{
			"count": count,
		})
	}
	return count, nil
}
