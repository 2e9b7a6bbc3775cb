package models

import (
	"time"

	"gorm.io/gorm"
)

// ItemStatus is the sale state of a marketplace listing.
type ItemStatus string

const (
	ItemStatusAvailable ItemStatus = "available"
	ItemStatusPending   ItemStatus = "pending"
	ItemStatusSold      ItemStatus = "sold"
)

// MarketplaceItem is a classified listing.
type MarketplaceItem struct {
	gorm.Model  `json:"-"`
	ID          uint       `json:"id" gorm:"primaryKey"`
	UserID      uint       `json:"user_id" gorm:"index"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Price       float64    `json:"price" gorm:"index"`
	Category    string     `json:"category" gorm:"index"`
	Images      []string   `json:"images,omitempty" gorm:"serializer:json"`
	Location    string     `json:"location"`
	Condition   string     `json:"condition" gorm:"type:varchar(20);default:'used'"`
	Status      ItemStatus `json:"status" gorm:"type:varchar(20);default:'available';index"`
	CreatedAt   time.Time  `json:"created_at" gorm:"index"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// CreateItemRequest defines the request body for creating a listing
type CreateItemRequest struct {
	Title       string   `json:"title" validate:"required,max=120"`
	Description string   `json:"description" validate:"required,max=2000"`
	Price       float64  `json:"price" validate:"required,gte=0"`
	Category    string   `json:"category" validate:"required,oneof=electronics furniture clothing vehicles property services other"`
	Images      []string `json:"images,omitempty" validate:"omitempty,dive,url"`
	Location    string   `json:"location" validate:"required"`
	Condition   string   `json:"condition,omitempty" validate:"omitempty,oneof=new used refurbished"`
}

// UpdateItemRequest defines the request body for updating a listing
type UpdateItemRequest struct {
	Title       string     `json:"title,omitempty" validate:"omitempty,max=120"`
	Description string     `json:"description,omitempty" validate:"omitempty,max=2000"`
	Price       *float64   `json:"price,omitempty" validate:"omitempty,gte=0"`
	Category    string     `json:"category,omitempty" validate:"omitempty,oneof=electronics furniture clothing vehicles property services other"`
	Images      []string   `json:"images,omitempty" validate:"omitempty,dive,url"`
	Location    string     `json:"location,omitempty"`
	Condition   string     `json:"condition,omitempty" validate:"omitempty,oneof=new used refurbished"`
	Status      ItemStatus `json:"status,omitempty" validate:"omitempty,oneof=available pending sold"`
}

// ItemFilter holds the query parameters of the public listing.
type ItemFilter struct {
	Category string
	MinPrice *float64
	MaxPrice *float64
	Location string
	Search   string
	Page     int
	Limit    int
}
