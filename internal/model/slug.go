package model

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

var slugReplacer = strings.NewReplacer(
	"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u", "ü", "u", "ñ", "n",
	"Á", "a", "É", "e", "Í", "i", "Ó", "o", "Ú", "u", "Ü", "u", "Ñ", "n",
)

// Slugify converts a name into a URL-safe slug
func Slugify(name string) string {
	s := slugReplacer.Replace(strings.ToLower(strings.TrimSpace(name)))
	var b strings.Builder
	lastDash := true // suppress leading dashes
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// UniqueProductSlug builds a slug for name that no other product of the store
// uses, appending a numeric suffix on collision.
func UniqueProductSlug(db *gorm.DB, storeID uint, name string, excludeID uint) string {
	base := Slugify(name)
	if base == "" {
		base = "producto"
	}
	slug := base
	for counter := 1; ; counter++ {
		var count int64
		db.Model(&Product{}).
			Where("store_id = ? AND slug = ? AND id != ?", storeID, slug, excludeID).
			Count(&count)
		if count == 0 {
			return slug
		}
		slug = fmt.Sprintf("%s-%d", base, counter)
	}
}
