package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Billboard struct {
	ID          string         `gorm:"type:varchar(36);primarykey" json:"id"`
	Label       string         `gorm:"not null" json:"label"`
	Description string         `gorm:"type:text" json:"description"`
	ImageURL    string         `gorm:"not null" json:"imageUrl"`
	StoreID     string         `gorm:"type:varchar(36);index;not null" json:"storeId"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	Store Store `gorm:"foreignKey:StoreID" json:"-"`
}

func (Billboard) TableName() string {
	return "billboards"
}

func (b *Billboard) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
