package model

import (
	"time"

	"gorm.io/gorm"
)

// Branch represents a physical location of a store
type Branch struct {
	ID        uint           `json:"id" gorm:"primarykey"`
	StoreID   uint           `json:"store_id" gorm:"index;not null"`
	Name      string         `json:"name" gorm:"type:varchar(150);not null"`
	Address   string         `json:"address" gorm:"type:varchar(255)"`
	Phone     string         `json:"phone" gorm:"type:varchar(32)"`
	Hours     string         `json:"hours" gorm:"type:varchar(255)"`
	SortOrder int            `json:"sort_order" gorm:"default:0"`
	Active    bool           `json:"active" gorm:"default:true"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}
