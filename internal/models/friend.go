package models

import (
	"time"

	"gorm.io/gorm"
)

// FriendStatus is the relationship state between two users.
type FriendStatus string

const (
	FriendStatusNone     FriendStatus = "none"
	FriendStatusPending  FriendStatus = "pending"
	FriendStatusAccepted FriendStatus = "accepted"
	FriendStatusDeclined FriendStatus = "declined"
	FriendStatusBlocked  FriendStatus = "blocked"
)

// Friend represents a friend request between two users. At most one record
// may exist per unordered pair; PairLowID/PairHighID hold the sorted pair so
// the unique index also rejects the reversed ordering. Rows are hard-deleted
// on removal so the pair can be re-requested later.
type Friend struct {
	ID          uint         `json:"id" gorm:"primaryKey"`
	RequesterID uint         `json:"requester_id" gorm:"index"`
	RecipientID uint         `json:"recipient_id" gorm:"index"`
	Status      FriendStatus `json:"status" gorm:"type:varchar(20);default:'pending'"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`

	PairLowID  uint `json:"-" gorm:"uniqueIndex:idx_friend_pair"`
	PairHighID uint `json:"-" gorm:"uniqueIndex:idx_friend_pair"`

	Requester *User `json:"requester,omitempty" gorm:"foreignKey:RequesterID"`
	Recipient *User `json:"recipient,omitempty" gorm:"foreignKey:RecipientID"`
}

// BeforeCreate fills the sorted pair columns backing the symmetric
// uniqueness constraint.
func (f *Friend) BeforeCreate(tx *gorm.DB) error {
	f.PairLowID, f.PairHighID = SortPair(f.RequesterID, f.RecipientID)
	return nil
}

// SortPair orders two user IDs ascending.
func SortPair(a, b uint) (uint, uint) {
	if a > b {
		return b, a
	}
	return a, b
}

// CreateFriendRequest defines the request body for sending a friend request
type CreateFriendRequest struct {
	RecipientID uint `json:"recipient_id" validate:"required"`
}

// RespondFriendRequest defines the request body for answering a friend request
type RespondFriendRequest struct {
	Action string `json:"action" validate:"required,oneof=accept decline block"`
}

// StatusForAction maps a respond action to the resulting status.
func StatusForAction(action string) (FriendStatus, bool) {
	switch action {
	case "accept":
		return FriendStatusAccepted, true
	case "decline":
		return FriendStatusDeclined, true
	case "block":
		return FriendStatusBlocked, true
	}
	return "", false
}

// CanView reports whether viewer may see a record owned by owner under the
// given privacy setting and relationship status. Applied uniformly to
// profiles, friend lists, posts and stories.
func CanView(viewer, owner uint, setting Visibility, status FriendStatus) bool {
	if viewer == owner {
		return true
	}
	switch setting {
	case VisibilityPublic:
		return true
	case VisibilityFriends:
		return status == FriendStatusAccepted
	default:
		return false
	}
}
