package model

import "time"

// Feedback types
const (
	FeedbackComplaint = "queja"
	FeedbackProposal  = "propuesta"
)

// StoreFeedback represents a complaint or proposal a visitor left for a store
type StoreFeedback struct {
	ID           uint      `json:"id" gorm:"primarykey"`
	StoreID      uint      `json:"store_id" gorm:"index;not null"`
	AuthorName   string    `json:"author_name" gorm:"type:varchar(150)"`
	AuthorEmail  string    `json:"author_email" gorm:"type:varchar(254)"`
	Message      string    `json:"message" gorm:"type:text;not null"`
	FeedbackType string    `json:"feedback_type" gorm:"type:varchar(20);not null"`
	IsRead       bool      `json:"is_read" gorm:"default:false"`
	CreatedAt    time.Time `json:"created_at"`
}
