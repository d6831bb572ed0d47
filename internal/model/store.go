package model

import (
	"time"

	"gorm.io/gorm"
)

// Store represents one storefront tenant, identified by its subdomain slug
type Store struct {
	ID        uint           `json:"id" gorm:"primarykey"`
	Name      string         `json:"name" gorm:"type:varchar(150);not null"`
	Slug      string         `json:"slug" gorm:"type:varchar(100);uniqueIndex;not null;comment:'Subdomain of this store'"`
	OwnerID   uint           `json:"owner_id" gorm:"uniqueIndex;not null"`
	Active    bool           `json:"active" gorm:"default:true"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// StoreConfig holds per-store contact settings and message templates
type StoreConfig struct {
	ID                uint   `json:"id" gorm:"primarykey"`
	StoreID           uint   `json:"store_id" gorm:"uniqueIndex;not null"`
	WhatsAppNumber    string `json:"whatsapp_number" gorm:"type:varchar(32)"`
	InstagramUsername string `json:"instagram_username" gorm:"type:varchar(100)"`
	FacebookPage      string `json:"facebook_page" gorm:"type:varchar(150)"`
	MarketplaceStore  string `json:"marketplace_store" gorm:"type:varchar(150)"`
	Address           string `json:"address" gorm:"type:varchar(255)"`
	Hours             string `json:"hours" gorm:"type:varchar(255)"`
	LocationURL       string `json:"location_url" gorm:"type:varchar(500)"`

	// Share message for a single product. Placeholders: {{ product }}, {{ url }}
	WhatsAppMessageTemplate string `json:"whatsapp_message_template" gorm:"type:text"`
	// Checkout message for a whole cart. Placeholders: {{ items }}, {{ total }}
	OrderMessageTemplate string `json:"order_message_template" gorm:"type:text"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
