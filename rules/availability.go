package rules

import (
	"idish-backend/models"

	"gorm.io/gorm"
)

// SlotTaken reports whether a booking already occupies the exact
// (hosting, date, time slot) tuple. Matching is equality-only: a time
// slot is an opaque token, not a time range. The caller still races with
// concurrent inserts; the composite unique index on bookings is the
// atomic backstop.
func SlotTaken(db *gorm.DB, hostingID uint, date, timeSlot string) (bool, *Error) {
	if hostingID == 0 || date == "" || timeSlot == "" {
		return false, Validation("hosting_id, date and time_slot are required")
	}
	var bookings []models.Booking
	if err := db.Where("hosting_id = ? AND date = ? AND time_slot = ?", hostingID, date, timeSlot).
		Limit(1).Find(&bookings).Error; err != nil {
		return false, Upstream("Failed to check slot availability")
	}
	return len(bookings) > 0, nil
}
