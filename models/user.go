package models

import (
	"time"
)

// UserRole defines allowed roles in the system
type UserRole string

const (
	RoleChef     UserRole = "chef"
	RoleCustomer UserRole = "customer"
)

type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Role         UserRole  `json:"role" gorm:"not null;default:'customer'"`
	Phone        string    `json:"phone"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ChefProfile is the public-facing profile of a chef user, created
// alongside the User row at signup when the role is chef.
type ChefProfile struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	UserID     uint      `json:"user_id" gorm:"uniqueIndex;not null"`
	User       User      `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Name       string    `json:"name"`
	Phone      string    `json:"phone"`
	Location   string    `json:"location"`
	Bio        string    `json:"bio"`
	Experience string    `json:"experience"`
	ImageURL   string    `json:"image_url"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
