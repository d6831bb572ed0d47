package model

import "time"

// Purchase-channel link types
const (
	LinkTypeWhatsApp    = "whatsapp"
	LinkTypeInstagram   = "instagram"
	LinkTypeMarketplace = "marketplace"
	LinkTypeFacebook    = "facebook"
	LinkTypeExternal    = "external"
)

// ProductLink represents a purchase channel for a product. URL and ButtonText
// are stored only for the external type; the other types derive them.
type ProductLink struct {
	ID         uint      `json:"id" gorm:"primarykey"`
	ProductID  uint      `json:"product_id" gorm:"index;not null"`
	LinkType   string    `json:"link_type" gorm:"type:varchar(20);not null"`
	URL        string    `json:"url" gorm:"type:varchar(500)"`
	ButtonText string    `json:"button_text" gorm:"type:varchar(100)"`
	SortOrder  int       `json:"sort_order" gorm:"default:0"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// linkTypePriority fixes the display ordering of purchase channels
var linkTypePriority = map[string]int{
	LinkTypeWhatsApp:    1,
	LinkTypeInstagram:   2,
	LinkTypeMarketplace: 3,
	LinkTypeFacebook:    4,
	LinkTypeExternal:    5,
}

// Priority returns the channel display priority; unknown types sort last
func (l *ProductLink) Priority() int {
	if p, ok := linkTypePriority[l.LinkType]; ok {
		return p
	}
	return len(linkTypePriority) + 1
}

// ValidLinkType reports whether t is a known purchase-channel type
func ValidLinkType(t string) bool {
	_, ok := linkTypePriority[t]
	return ok
}
