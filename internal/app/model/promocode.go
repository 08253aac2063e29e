package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DiscountType string

const (
	DiscountPercent     DiscountType = "PERCENT"
	DiscountFixedAmount DiscountType = "FIXED_AMOUNT"
)

// IsValid reports whether the discount type is one of the closed set.
func (d DiscountType) IsValid() bool {
	return d == DiscountPercent || d == DiscountFixedAmount
}

type Promocode struct {
	ID           string         `gorm:"type:varchar(36);primarykey" json:"id"`
	Name         string         `gorm:"index;not null" json:"name"`
	Discount     string         `gorm:"not null" json:"discount"`
	DiscountType DiscountType   `gorm:"type:varchar(20);not null" json:"discountType"`
	StartDate    time.Time      `json:"startDate"`
	EndDate      time.Time      `json:"endDate"`
	IsArchived   bool           `gorm:"default:false;index" json:"isArchived"`
	StoreID      string         `gorm:"type:varchar(36);index;not null" json:"storeId"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	Store Store `gorm:"foreignKey:StoreID" json:"-"`
}

func (Promocode) TableName() string {
	return "promocodes"
}

func (p *Promocode) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
