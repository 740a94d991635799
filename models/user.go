package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;size:80;not null" json:"username"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	IsParent     bool      `gorm:"not null;default:false" json:"isParent"`
	ParentID     *uint     `gorm:"index" json:"parentId"`
	CreatedAt    time.Time `json:"createdAt"`

	Chats         []ChatMessage  `gorm:"foreignKey:UserID" json:"chats"`
	WishlistItems []WishlistItem `gorm:"foreignKey:UserID" json:"wishlistItems"`
}

func (u *User) SetPassword(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
	return err == nil
}
