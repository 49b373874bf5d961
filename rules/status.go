package rules

import (
	"time"

	"idish-backend/models"

	"gorm.io/gorm"
)

// BookingStatuses is the whitelist of statuses a booking may hold.
var BookingStatuses = []models.BookingStatus{
	models.BookingPending,
	models.BookingAccepted,
	models.BookingConfirmed,
	models.BookingCompleted,
	models.BookingCancelled,
}

// OrderStatuses is the whitelist of statuses an order may hold.
var OrderStatuses = []models.OrderStatus{
	models.OrderPending,
	models.OrderAccepted,
	models.OrderPreparing,
	models.OrderReady,
	models.OrderDelivered,
	models.OrderCancelled,
}

// ValidBookingStatus is a membership check only; any whitelisted status is
// reachable from any other. There is deliberately no transition graph here.
func ValidBookingStatus(s models.BookingStatus) bool {
	for _, v := range BookingStatuses {
		if s == v {
			return true
		}
	}
	return false
}

func ValidOrderStatus(s models.OrderStatus) bool {
	for _, v := range OrderStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// TransitionBooking applies a chef-requested status change to a booking.
// Check order: whitelist, existence, ownership, then persist. Only the
// fulfilling chef may change status; the booking customer has no
// transition rights.
func TransitionBooking(db *gorm.DB, bookingID string, requested models.BookingStatus, chefID uint) (*models.Booking, *Error) {
	if !ValidBookingStatus(requested) {
		return nil, Validation("Invalid status")
	}
	var booking models.Booking
	if err := db.First(&booking, "id = ?", bookingID).Error; err != nil {
		return nil, NotFound("Booking not found")
	}
	if booking.ChefID != chefID {
		return nil, Forbidden("This booking does not belong to your hostings")
	}
	if err := db.Model(&booking).Updates(map[string]interface{}{
		"status":     requested,
		"updated_at": time.Now(),
	}).Error; err != nil {
		return nil, Upstream("Failed to update booking status")
	}
	booking.Status = requested
	return &booking, nil
}

// TransitionOrder is the order-side twin of TransitionBooking.
func TransitionOrder(db *gorm.DB, orderID string, requested models.OrderStatus, chefID uint) (*models.Order, *Error) {
	if !ValidOrderStatus(requested) {
		return nil, Validation("Invalid status")
	}
	var order models.Order
	if err := db.First(&order, "id = ?", orderID).Error; err != nil {
		return nil, NotFound("Order not found")
	}
	if order.ChefID != chefID {
		return nil, Forbidden("This order does not belong to your dishes")
	}
	if err := db.Model(&order).Updates(map[string]interface{}{
		"status":     requested,
		"updated_at": time.Now(),
	}).Error; err != nil {
		return nil, Upstream("Failed to update order status")
	}
	order.Status = requested
	return &order, nil
}
