package models

import "time"

// Notification types produced by the action creating them.
const (
	NotificationLike          = "like"
	NotificationComment       = "comment"
	NotificationFriendRequest = "friend_request"
	NotificationMessage       = "message"
	NotificationMention       = "mention"
	NotificationPostShare     = "post_share"
)

// Notification represents a user notification
type Notification struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	RecipientID uint      `json:"recipient_id" gorm:"index:idx_recipient_read"`
	SenderID    uint      `json:"sender_id" gorm:"index"`
	Type        string    `json:"type" gorm:"type:varchar(30)"`
	Content     string    `json:"content"`
	RelatedID   uint      `json:"related_id,omitempty"` // post, item, request ... depending on type
	Read        bool      `json:"read" gorm:"default:false;index:idx_recipient_read"`
	CreatedAt   time.Time `json:"created_at" gorm:"index"`

	Sender *User `json:"sender,omitempty" gorm:"foreignKey:SenderID"`
}
