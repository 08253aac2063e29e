package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Product struct {
	ID            string         `gorm:"type:varchar(36);primarykey" json:"id"`
	Name          string         `gorm:"index;not null" json:"name"`
	PictureURL    string         `gorm:"not null" json:"pictureUrl"`
	Price         float64        `gorm:"not null" json:"price"`
	Discount      string         `json:"discount"`
	SKU           string         `gorm:"column:sku" json:"sku"`
	Slug          string         `gorm:"index" json:"slug"`
	Brand         string         `gorm:"index" json:"brand"`
	Silhouette    string         `gorm:"index" json:"silhouette"`
	Designer      string         `json:"designer"`
	Details       string         `gorm:"type:text" json:"details"`
	ReleaseDate   string         `json:"releaseDate"` // MM/DD/YYYY
	UpperMaterial string         `json:"upperMaterial"`
	SingleGender  string         `json:"singleGender"`
	Story         string         `gorm:"type:text" json:"story"`
	SizeUnit      string         `json:"sizeUnit"`
	Category      string         `json:"category"`
	Color         string         `json:"color"`
	IsFeatured    bool           `gorm:"default:false;index" json:"isFeatured"`
	IsArchived    bool           `gorm:"default:false;index" json:"isArchived"`
	StoreID       string         `gorm:"type:varchar(36);index;not null" json:"storeId"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	Store  Store   `gorm:"foreignKey:StoreID" json:"-"`
	Images []Image `gorm:"foreignKey:ProductID" json:"images"`
	Sizes  []Size  `gorm:"foreignKey:ProductID" json:"sizes"`
}

func (Product) TableName() string {
	return "products"
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// Size is a purchasable product variant. Size rows live and die with
// their product: every product update replaces the whole collection.
// No soft delete, replaced rows are gone for good.
type Size struct {
	ID        string    `gorm:"type:varchar(36);primarykey" json:"id"`
	Value     string    `gorm:"not null" json:"value"`
	Price     string    `json:"price"`
	InStock   bool      `gorm:"default:false" json:"inStock"`
	Quantity  string    `json:"quantity"`
	ProductID string    `gorm:"type:varchar(36);index;not null" json:"productId"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Size) TableName() string {
	return "sizes"
}

func (s *Size) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// Image follows the same replace-all lifecycle as Size.
type Image struct {
	ID        string    `gorm:"type:varchar(36);primarykey" json:"id"`
	URL       string    `gorm:"not null" json:"url"`
	ProductID string    `gorm:"type:varchar(36);index;not null" json:"productId"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Image) TableName() string {
	return "images"
}

func (i *Image) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
