package models

import "time"

// Post represents a feed post. Likes and comments live in child tables.
type Post struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	UserID    uint       `json:"user_id" gorm:"index"`
	Content   string     `json:"content"`
	Images    []string   `json:"images,omitempty" gorm:"serializer:json"`
	Privacy   Visibility `json:"privacy" gorm:"type:varchar(10);default:'public';index"`
	Location  string     `json:"location,omitempty"`
	TagIDs    []uint     `json:"tags,omitempty" gorm:"serializer:json"` // mentioned users
	CreatedAt time.Time  `json:"created_at" gorm:"index"`
	UpdatedAt time.Time  `json:"updated_at"`

	Likes    []PostLike    `json:"likes,omitempty" gorm:"foreignKey:PostID"`
	Comments []PostComment `json:"comments,omitempty" gorm:"foreignKey:PostID"`
}

// PostLike is a single user's like on a post, unique per (post, user).
type PostLike struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	PostID    uint      `json:"post_id" gorm:"index;uniqueIndex:idx_post_user_like"`
	UserID    uint      `json:"user_id" gorm:"index;uniqueIndex:idx_post_user_like"`
	CreatedAt time.Time `json:"created_at"`
}

// PostComment is an ordered comment on a post.
type PostComment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	PostID    uint      `json:"post_id" gorm:"index"`
	UserID    uint      `json:"user_id" gorm:"index"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// CreatePostRequest defines the request body for creating a new post
type CreatePostRequest struct {
	Content  string     `json:"content" validate:"required,min=1,max=2000"`
	Images   []string   `json:"images,omitempty" validate:"omitempty,dive,url"`
	Privacy  Visibility `json:"privacy,omitempty" validate:"omitempty,oneof=public friends private"`
	Location string     `json:"location,omitempty"`
	TagIDs   []uint     `json:"tags,omitempty"`
}

// CreateCommentRequest defines the request body for commenting on a post
type CreateCommentRequest struct {
	Content string `json:"content" validate:"required,min=1,max=500"`
}

// PostResponse is a post enriched with author info and counters.
type PostResponse struct {
	Post
	Author       UserCompact `json:"author"`
	LikeCount    int         `json:"like_count"`
	CommentCount int         `json:"comment_count"`
	IsLiked      bool        `json:"is_liked"`
}
