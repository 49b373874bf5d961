package models

import "time"

type Dish struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	ChefID      uint      `json:"chef_id" gorm:"not null;index"`
	Chef        User      `json:"chef,omitempty" gorm:"foreignKey:ChefID"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description"`
	Price       float64   `json:"price" gorm:"not null"`
	CuisineType string    `json:"cuisine_type"`
	ImageURL    string    `json:"image_url"`
	Available   bool      `json:"available" gorm:"default:true"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
