package models

import (
	"time"

	"gorm.io/gorm"
)

// Chat is a two-party conversation. The sorted participant pair is unique so
// first contact between two users always resolves to the same record.
type Chat struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	UserLowID  uint      `json:"-" gorm:"uniqueIndex:idx_chat_pair"`
	UserHighID uint      `json:"-" gorm:"uniqueIndex:idx_chat_pair"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	Messages []ChatMessage `json:"messages,omitempty" gorm:"foreignKey:ChatID"`
}

// BeforeCreate normalizes the participant pair ordering.
func (c *Chat) BeforeCreate(tx *gorm.DB) error {
	c.UserLowID, c.UserHighID = SortPair(c.UserLowID, c.UserHighID)
	return nil
}

// Participants returns both participant IDs.
func (c *Chat) Participants() [2]uint {
	return [2]uint{c.UserLowID, c.UserHighID}
}

// HasParticipant reports whether the user belongs to this chat.
func (c *Chat) HasParticipant(userID uint) bool {
	return c.UserLowID == userID || c.UserHighID == userID
}

// OtherParticipant returns the counterpart of userID in the chat.
func (c *Chat) OtherParticipant(userID uint) uint {
	if c.UserLowID == userID {
		return c.UserHighID
	}
	return c.UserLowID
}

// ChatMessage is an ordered message within a chat.
type ChatMessage struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	ChatID    uint      `json:"chat_id" gorm:"index"`
	SenderID  uint      `json:"sender_id" gorm:"index"`
	Content   string    `json:"content"`
	Read      bool      `json:"read" gorm:"default:false"`
	CreatedAt time.Time `json:"created_at"`
}

// AccessChatRequest defines the request body for opening a chat
type AccessChatRequest struct {
	UserID uint `json:"user_id" validate:"required"`
}

// SendMessageRequest defines the request body for sending a chat message
type SendMessageRequest struct {
	Content string `json:"content" validate:"required,min=1,max=2000"`
}
