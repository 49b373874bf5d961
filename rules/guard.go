package rules

import (
	"idish-backend/models"

	"gorm.io/gorm"
)

// DishHasOrders reports whether any order references the dish. Existence
// only, limit 1 row.
func DishHasOrders(db *gorm.DB, dishID uint) (bool, *Error) {
	var orders []models.Order
	if err := db.Select("id").Where("dish_id = ?", dishID).Limit(1).Find(&orders).Error; err != nil {
		return false, Upstream("Failed to check related orders")
	}
	return len(orders) > 0, nil
}

// HostingHasBookings reports whether any booking references the hosting.
func HostingHasBookings(db *gorm.DB, hostingID uint) (bool, *Error) {
	var bookings []models.Booking
	if err := db.Select("id").Where("hosting_id = ?", hostingID).Limit(1).Find(&bookings).Error; err != nil {
		return false, Upstream("Failed to check related bookings")
	}
	return len(bookings) > 0, nil
}
