package model

import "time"

// FAQ represents a frequently asked question shown on a storefront
type FAQ struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	StoreID   uint      `json:"store_id" gorm:"index;not null"`
	Question  string    `json:"question" gorm:"type:varchar(500);not null"`
	Answer    string    `json:"answer" gorm:"type:text;not null"`
	SortOrder int       `json:"sort_order" gorm:"default:0"`
	Active    bool      `json:"active" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
