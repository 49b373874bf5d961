package rules

import (
	"fmt"
	"sync/atomic"
	"testing"

	"idish-backend/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dbSeq int64

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:rules%d?mode=memory&cache=shared", atomic.AddInt64(&dbSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{}, &models.ChefProfile{}, &models.Dish{},
		&models.Hosting{}, &models.Booking{}, &models.Order{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestStatusWhitelists(t *testing.T) {
	for _, s := range BookingStatuses {
		if !ValidBookingStatus(s) {
			t.Errorf("booking status %q should be valid", s)
		}
	}
	for _, s := range []models.BookingStatus{"rejected", "PLACED", "", "done"} {
		if ValidBookingStatus(s) {
			t.Errorf("booking status %q should be invalid", s)
		}
	}

	for _, s := range OrderStatuses {
		if !ValidOrderStatus(s) {
			t.Errorf("order status %q should be valid", s)
		}
	}
	if ValidOrderStatus("confirmed") {
		t.Error("order status \"confirmed\" belongs to bookings only")
	}
}

func TestTransitionBooking(t *testing.T) {
	db := openTestDB(t)
	booking := models.Booking{
		CustomerID: 2, ChefID: 1, HostingID: 1,
		Date: "2025-06-01", TimeSlot: "18:00",
		NumberOfGuests: 3, TotalPrice: 60,
		Status: models.BookingPending,
	}
	if err := db.Create(&booking).Error; err != nil {
		t.Fatalf("seed booking: %v", err)
	}
	id := fmt.Sprint(booking.ID)

	if _, err := TransitionBooking(db, id, "rejected", 1); err == nil || err.Kind != KindValidation {
		t.Errorf("want validation error for non-whitelisted status, got %v", err)
	}
	if _, err := TransitionBooking(db, "9999", models.BookingAccepted, 1); err == nil || err.Kind != KindNotFound {
		t.Errorf("want not_found for missing booking, got %v", err)
	}
	if _, err := TransitionBooking(db, id, models.BookingAccepted, 42); err == nil || err.Kind != KindForbidden {
		t.Errorf("want forbidden for non-owning chef, got %v", err)
	}

	// failed attempts must leave the status untouched
	var check models.Booking
	db.First(&check, booking.ID)
	if check.Status != models.BookingPending {
		t.Fatalf("status changed by failed transitions: %s", check.Status)
	}

	updated, rerr := TransitionBooking(db, id, models.BookingAccepted, 1)
	if rerr != nil {
		t.Fatalf("owner transition failed: %v", rerr)
	}
	if updated.Status != models.BookingAccepted {
		t.Errorf("returned status = %s, want accepted", updated.Status)
	}
	db.First(&check, booking.ID)
	if check.Status != models.BookingAccepted {
		t.Errorf("stored status = %s, want accepted", check.Status)
	}

	// membership-only check: jumping backwards is allowed
	if _, rerr := TransitionBooking(db, id, models.BookingPending, 1); rerr != nil {
		t.Errorf("backward jump should pass the membership check, got %v", rerr)
	}
}

func TestTransitionOrder(t *testing.T) {
	db := openTestDB(t)
	order := models.Order{
		CustomerID: 2, ChefID: 1, DishID: 1,
		Quantity: 2, TotalPrice: 31.0,
		DeliveryAddress: "12 Main St",
		Status:          models.OrderPending,
	}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("seed order: %v", err)
	}
	id := fmt.Sprint(order.ID)

	if _, err := TransitionOrder(db, id, models.OrderPreparing, 9); err == nil || err.Kind != KindForbidden {
		t.Errorf("want forbidden for foreign chef, got %v", err)
	}

	updated, rerr := TransitionOrder(db, id, models.OrderPreparing, 1)
	if rerr != nil {
		t.Fatalf("owner transition failed: %v", rerr)
	}
	if updated.Status != models.OrderPreparing {
		t.Errorf("status = %s, want preparing", updated.Status)
	}
}
