package models

import "time"

// Hosting is a chef-offered dining experience with scheduled availability
// and per-guest pricing. AvailableDays and TimeSlots are opaque tokens
// chosen by the chef (e.g. "saturday", "18:00"); a booking references one
// day + slot pair exactly.
type Hosting struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	ChefID        uint      `json:"chef_id" gorm:"not null;index"`
	Chef          User      `json:"chef,omitempty" gorm:"foreignKey:ChefID"`
	Title         string    `json:"title" gorm:"not null"`
	Description   string    `json:"description"`
	Location      string    `json:"location" gorm:"not null"`
	AvailableDays []string  `json:"available_days" gorm:"serializer:json"`
	TimeSlots     []string  `json:"time_slots" gorm:"serializer:json"`
	MaxGuests     int       `json:"max_guests" gorm:"not null"`
	PricePerGuest float64   `json:"price_per_guest" gorm:"not null"`
	ImageURL      string    `json:"image_url"`
	Available     bool      `json:"available" gorm:"default:true"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TableName keeps the singular table name used by the iDISH schema.
func (Hosting) TableName() string {
	return "hosting"
}
