package models

import "time"

type ChatMessage struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"index;not null" json:"userId"`
	Message     string    `gorm:"type:text;not null" json:"message"`
	IsFromSanta bool      `gorm:"not null;default:false" json:"isFromSanta"`
	Tone        string    `gorm:"size:20" json:"tone,omitempty"`
	Suggestions []string  `gorm:"serializer:json" json:"suggestions,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (ChatMessage) TableName() string { return "chats" }
