package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Brand struct {
	ID          string         `gorm:"type:varchar(36);primarykey" json:"id"`
	Name        string         `gorm:"index;not null" json:"name"`
	URL         string         `gorm:"not null" json:"url"`
	Description string         `gorm:"type:text" json:"description"`
	StoreID     string         `gorm:"type:varchar(36);index;not null" json:"storeId"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	Store Store `gorm:"foreignKey:StoreID" json:"-"`
}

func (Brand) TableName() string {
	return "brands"
}

func (b *Brand) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
