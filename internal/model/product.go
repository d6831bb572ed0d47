package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product publication statuses
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// Product represents a catalog product belonging to one store.
// A nil Price means "price on request"; a nil Stock means unlimited stock.
type Product struct {
	ID          uint             `json:"id" gorm:"primarykey"`
	StoreID     uint             `json:"store_id" gorm:"index;not null;comment:'Store this product belongs to'"`
	CategoryID  uint             `json:"category_id" gorm:"index"`
	Name        string           `json:"name" gorm:"type:varchar(150);not null"`
	Slug        string           `json:"slug" gorm:"type:varchar(180);index;not null"`
	Description string           `json:"description" gorm:"type:text"`
	Price       *decimal.Decimal `json:"price" gorm:"type:numeric(18,2)"`
	Stock       *int             `json:"stock"`
	Status      string           `json:"status" gorm:"type:varchar(20);default:'draft'"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
	DeletedAt   gorm.DeletedAt   `json:"deleted_at,omitempty" gorm:"index"`

	Images []ProductImage `json:"images,omitempty" gorm:"foreignKey:ProductID"`
	Links  []ProductLink  `json:"links,omitempty" gorm:"foreignKey:ProductID"`
}

// Published reports whether the product is purchasable
func (p *Product) Published() bool {
	return p.Status == StatusPublished
}

// PriceOnRequest reports whether the product has no usable price
func (p *Product) PriceOnRequest() bool {
	return p.Price == nil || p.Price.Sign() <= 0
}

// Category represents a product category belonging to one store
type Category struct {
	ID        uint           `json:"id" gorm:"primarykey"`
	StoreID   uint           `json:"store_id" gorm:"index;not null;comment:'Store this category belongs to'"`
	Name      string         `json:"name" gorm:"type:varchar(100);not null"`
	Slug      string         `json:"slug" gorm:"type:varchar(120);index;not null"`
	Active    bool           `json:"active" gorm:"default:true"`
	SortOrder int            `json:"sort_order" gorm:"default:0"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// ProductImage represents an uploaded media item attached to a product
type ProductImage struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	ProductID uint      `json:"product_id" gorm:"index;not null"`
	URL       string    `json:"url" gorm:"type:varchar(500);not null"`
	PublicID  string    `json:"public_id" gorm:"type:varchar(255);comment:'Cloudinary public id, used for deletion'"`
	SortOrder int       `json:"sort_order" gorm:"default:0"`
	CreatedAt time.Time `json:"created_at"`
}
