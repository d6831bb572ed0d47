package model

import "time"

// Tutorial represents a platform-wide help video shown to store owners
type Tutorial struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	Title       string    `json:"title" gorm:"type:varchar(200);not null"`
	Description string    `json:"description" gorm:"type:text"`
	VideoURL    string    `json:"video_url" gorm:"type:varchar(500)"`
	SortOrder   int       `json:"sort_order" gorm:"default:0"`
	Active      bool      `json:"active" gorm:"default:true"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
