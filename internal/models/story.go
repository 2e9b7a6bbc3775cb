package models

import "time"

// Story is a time-boxed media post. Not retrievable once expired; an expiry
// sweep removes stale rows.
type Story struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index"`
	MediaURL  string    `json:"media_url"`
	MediaType string    `json:"media_type" gorm:"type:varchar(10)"` // image or video
	Caption   string    `json:"caption,omitempty"`
	ExpiresAt time.Time `json:"expires_at" gorm:"index"`
	CreatedAt time.Time `json:"created_at"`

	Views []StoryView `json:"viewers,omitempty" gorm:"foreignKey:StoryID"`
}

// StoryView tracks a single viewer, unique per (story, user).
type StoryView struct {
	ID       uint      `json:"id" gorm:"primaryKey"`
	StoryID  uint      `json:"story_id" gorm:"index;uniqueIndex:idx_story_user_view"`
	UserID   uint      `json:"user_id" gorm:"index;uniqueIndex:idx_story_user_view"`
	ViewedAt time.Time `json:"viewed_at"`
}

// CreateStoryRequest defines the request body for creating a story
type CreateStoryRequest struct {
	MediaURL  string `json:"media_url" validate:"required,url"`
	MediaType string `json:"media_type" validate:"required,oneof=image video"`
	Caption   string `json:"caption,omitempty" validate:"omitempty,max=200"`
}

// StoryGroup is the per-owner grouping returned by the story listing.
type StoryGroup struct {
	User    UserCompact `json:"user"`
	Stories []Story     `json:"stories"`
}
