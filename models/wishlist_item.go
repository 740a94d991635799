package models

import "time"

// Categories is the closed set a wishlist item may belong to.
var Categories = []string{"Toys", "Books", "Electronics", "Clothes", "Sports", "Other"}

func ValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

type WishlistItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"userId"`
	Item      string    `gorm:"type:text;not null" json:"item"`
	Category  string    `gorm:"size:40;not null" json:"category"`
	Priority  int       `gorm:"not null;default:1" json:"priority"`
	Notes     string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
