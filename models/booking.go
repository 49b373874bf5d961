package models

import "time"

// BookingStatus represents the states a booking can be in
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingAccepted  BookingStatus = "accepted"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

// Booking reserves one (hosting, date, time slot) tuple for a customer.
// The composite unique index backs up the handler-level availability
// check so concurrent creations for the same slot cannot both insert.
type Booking struct {
	ID              uint          `json:"id" gorm:"primaryKey"`
	CustomerID      uint          `json:"customer_id" gorm:"not null;index"`
	Customer        User          `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	ChefID          uint          `json:"chef_id" gorm:"not null;index"`
	HostingID       uint          `json:"hosting_id" gorm:"not null;uniqueIndex:idx_booking_slot"`
	Hosting         Hosting       `json:"hosting,omitempty" gorm:"foreignKey:HostingID"`
	Date            string        `json:"date" gorm:"not null;uniqueIndex:idx_booking_slot"`
	TimeSlot        string        `json:"time_slot" gorm:"not null;uniqueIndex:idx_booking_slot"`
	NumberOfGuests  int           `json:"number_of_guests" gorm:"not null"`
	TotalPrice      float64       `json:"total_price"`
	SpecialRequests string        `json:"special_requests"`
	Status          BookingStatus `json:"status" gorm:"not null;default:'pending'"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}
