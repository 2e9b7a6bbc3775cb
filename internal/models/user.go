package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"
)

// Visibility is a per-record privacy tier.
type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityFriends Visibility = "friends"
	VisibilityPrivate Visibility = "private"
)

// BusinessProfile is the optional brand-style overlay on a User.
type BusinessProfile struct {
	Name        string `json:"business_name" gorm:"column:business_name"`
	Description string `json:"business_description" gorm:"column:business_description"`
	Logo        string `json:"business_logo" gorm:"column:business_logo"`
	Website     string `json:"business_website" gorm:"column:business_website"`
	Location    string `json:"business_location" gorm:"column:business_location"`
	IsComplete  bool   `json:"is_business_profile_complete" gorm:"column:is_business_profile_complete"`
}

// User represents an account, local or OAuth-provisioned.
type User struct {
	gorm.Model `json:"-"`
	ID         uint       `json:"id" gorm:"primaryKey"`
	Name       string     `json:"name"`
	Email      string     `json:"email" gorm:"uniqueIndex"`
	Username   string     `json:"username" gorm:"uniqueIndex"`
	Password   string     `json:"-"` // bcrypt hash, empty for OAuth users
	Avatar     string     `json:"avatar"`
	Bio        string     `json:"bio"`
	Location   string     `json:"location"`
	Website    string     `json:"website"`
	BirthDate  *time.Time `json:"birth_date,omitempty"`
	Provider   string     `json:"provider" gorm:"type:varchar(20);default:'local'"` // local, google
	OAuthUID   string     `json:"-" gorm:"index"`
	Verified   bool       `json:"verified" gorm:"default:false"`
	Role       string     `json:"role" gorm:"type:varchar(10);default:'user'"`

	ProfileVisibility    Visibility `json:"profile_visibility" gorm:"type:varchar(10);default:'public'"`
	FriendListVisibility Visibility `json:"friend_list_visibility" gorm:"type:varchar(10);default:'public'"`

	BusinessProfile BusinessProfile `json:"business_profile" gorm:"embedded"`
}

// Favorite is a user's bookmark of a post.
type Favorite struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index;uniqueIndex:idx_user_post_favorite"`
	PostID    uint      `json:"post_id" gorm:"index;uniqueIndex:idx_user_post_favorite"`
	CreatedAt time.Time `json:"created_at"`
}

// Subscription is a one-way follow of another user (business profiles).
type Subscription struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index;uniqueIndex:idx_user_target_sub"`
	TargetID  uint      `json:"target_id" gorm:"index;uniqueIndex:idx_user_target_sub"`
	CreatedAt time.Time `json:"created_at"`
}

// MarketplaceFavorite is a user's bookmark of a marketplace item.
type MarketplaceFavorite struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index;uniqueIndex:idx_user_item_favorite"`
	ItemID    uint      `json:"item_id" gorm:"index;uniqueIndex:idx_user_item_favorite"`
	CreatedAt time.Time `json:"created_at"`
}

// UserCompact is the trimmed author representation embedded in responses.
type UserCompact struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
}

// ToCompact returns the compact representation of a user
func (u *User) ToCompact() UserCompact {
	return UserCompact{
		ID:       u.ID,
		Name:     u.Name,
		Username: u.Username,
		Avatar:   u.Avatar,
	}
}

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// GoogleLoginRequest carries the Firebase ID token issued by the client SDK.
type GoogleLoginRequest struct {
	IDToken string `json:"idToken" validate:"required"`
}

type UpdateProfileRequest struct {
	Name      string     `json:"name,omitempty" validate:"omitempty,min=2,max=50"`
	Bio       string     `json:"bio,omitempty" validate:"omitempty,max=250"`
	Location  string     `json:"location,omitempty"`
	Website   string     `json:"website,omitempty" validate:"omitempty,url"`
	BirthDate *time.Time `json:"birth_date,omitempty"`

	ProfileVisibility    Visibility `json:"profile_visibility,omitempty" validate:"omitempty,oneof=public friends private"`
	FriendListVisibility Visibility `json:"friend_list_visibility,omitempty" validate:"omitempty,oneof=public friends private"`
}

type UpdateBusinessProfileRequest struct {
	Name        string `json:"business_name,omitempty" validate:"omitempty,max=100"`
	Description string `json:"business_description,omitempty" validate:"omitempty,max=500"`
	Logo        string `json:"business_logo,omitempty"`
	Website     string `json:"business_website,omitempty" validate:"omitempty,url"`
	Location    string `json:"business_location,omitempty"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	UserID uint   `json:"id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}
