package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Store is the unit of tenancy. Every catalog entity belongs to exactly
// one store, and only the owning user may mutate it.
type Store struct {
	ID        string         `gorm:"type:varchar(36);primarykey" json:"id"`
	Name      string         `gorm:"not null" json:"name"`
	UserID    string         `gorm:"type:varchar(36);index;not null" json:"user_id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	User       User        `gorm:"foreignKey:UserID" json:"-"`
	Billboards []Billboard `gorm:"foreignKey:StoreID" json:"billboards,omitempty"`
	Brands     []Brand     `gorm:"foreignKey:StoreID" json:"brands,omitempty"`
	Products   []Product   `gorm:"foreignKey:StoreID" json:"products,omitempty"`
	Promocodes []Promocode `gorm:"foreignKey:StoreID" json:"promocodes,omitempty"`
}

func (Store) TableName() string {
	return "stores"
}

func (s *Store) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
