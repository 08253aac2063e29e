package service

import (
	"testing"
	"time"

	"github.com/sneakersdealer/ds-admin-backend/internal/app/model"
	"github.com/sneakersdealer/ds-admin-backend/internal/app/repository"
	"github.com/sneakersdealer/ds-admin-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupPromocodeServiceTest(t *testing.T) (PromocodeService, *gorm.DB, *model.User, *model.Store) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	owner := &model.User{
		Email:        "owner@example.com",
		PasswordHash: "hashed-password",
		Name:         "Store Owner",
	}
	require.NoError(t, testDB.Create(owner).Error)

	store := &model.Store{
		Name:   "Sneaker Shop",
		UserID: owner.ID,
	}
	require.NoError(t, testDB.Create(store).Error)

	promocodeRepo := repository.NewPromocodeRepository(testDB)
	storeService := NewStoreService(repository.NewStoreRepository(testDB))
	promocodeService := NewPromocodeService(promocodeRepo, storeService)

	return promocodeService, testDB, owner, store
}

func testPromocode(storeID, name string, discountType model.DiscountType) *model.Promocode {
	return &model.Promocode{
		Name:         name,
		Discount:     "10",
		DiscountType: discountType,
		StartDate:    time.Now().Add(-time.Hour),
		EndDate:      time.Now().Add(24 * time.Hour),
		StoreID:      storeID,
	}
}

func TestPromocodeService_CreatePromocode(t *testing.T) {
	promocodeService, _, owner, store := setupPromocodeServiceTest(t)

	tests := []struct {
		name         string
		discountType model.DiscountType
		wantErr      error
	}{
		{
			name:         "Percent discount",
			discountType: model.DiscountPercent,
			wantErr:      nil,
		},
		{
			name:         "Fixed amount discount",
			discountType: model.DiscountFixedAmount,
			wantErr:      nil,
		},
		{
			name:         "Unknown discount type",
			discountType: model.DiscountType("BOGO"),
			wantErr:      ErrInvalidDiscountType,
		},
		{
			name:         "Empty discount type",
			discountType: model.DiscountType(""),
			wantErr:      ErrInvalidDiscountType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			promocode := testPromocode(store.ID, tt.name, tt.discountType)
			err := promocodeService.CreatePromocode(owner.ID, promocode)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.NotEmpty(t, promocode.ID)
			}
		})
	}
}

func TestPromocodeService_CreatePromocode_OwnershipEnforced(t *testing.T) {
	promocodeService, testDB, _, store := setupPromocodeServiceTest(t)

	intruder := &model.User{
		Email:        "intruder@example.com",
		PasswordHash: "hashed-password",
		Name:         "Intruder",
	}
	require.NoError(t, testDB.Create(intruder).Error)

	err := promocodeService.CreatePromocode(intruder.ID, testPromocode(store.ID, "STOLEN", model.DiscountPercent))
	assert.ErrorIs(t, err, ErrStoreAccessDenied)
}

func TestPromocodeService_GetPromocodeByName(t *testing.T) {
	promocodeService, _, owner, store := setupPromocodeServiceTest(t)

	promocode := testPromocode(store.ID, "SUMMER10", model.DiscountPercent)
	require.NoError(t, promocodeService.CreatePromocode(owner.ID, promocode))

	found, err := promocodeService.GetPromocodeByName(store.ID, "SUMMER10")
	assert.NoError(t, err)
	assert.Equal(t, promocode.ID, found.ID)

	_, err = promocodeService.GetPromocodeByName(store.ID, "WINTER20")
	assert.ErrorIs(t, err, ErrPromocodeNotFound)
}

func TestPromocodeService_UpdatePromocode_InvalidTypeRejectedBeforePersist(t *testing.T) {
	promocodeService, _, owner, store := setupPromocodeServiceTest(t)

	promocode := testPromocode(store.ID, "SUMMER10", model.DiscountPercent)
	require.NoError(t, promocodeService.CreatePromocode(owner.ID, promocode))

	mutated := testPromocode(store.ID, "SUMMER10", model.DiscountType("LOYALTY"))
	mutated.ID = promocode.ID
	err := promocodeService.UpdatePromocode(owner.ID, mutated)
	assert.ErrorIs(t, err, ErrInvalidDiscountType)

	// The stored row keeps its original type.
	kept, err := promocodeService.GetPromocodeByID(promocode.ID)
	require.NoError(t, err)
	assert.Equal(t, model.DiscountPercent, kept.DiscountType)
}

func TestPromocodeService_ArchiveExpired(t *testing.T) {
	promocodeService, _, owner, store := setupPromocodeServiceTest(t)

	expired := testPromocode(store.ID, "OLD", model.DiscountPercent)
	expired.StartDate = time.Now().Add(-48 * time.Hour)
	expired.EndDate = time.Now().Add(-24 * time.Hour)
	require.NoError(t, promocodeService.CreatePromocode(owner.ID, expired))

	active := testPromocode(store.ID, "FRESH", model.DiscountFixedAmount)
	require.NoError(t, promocodeService.CreatePromocode(owner.ID, active))

	count, err := promocodeService.ArchiveExpired()
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)

	archived, err := promocodeService.GetPromocodeByID(expired.ID)
	require.NoError(t, err)
	assert.True(t, archived.IsArchived)
}
