package rules

import (
	"testing"

	"idish-backend/models"
)

func TestSlotTaken(t *testing.T) {
	db := openTestDB(t)

	if _, err := SlotTaken(db, 0, "", ""); err == nil || err.Kind != KindValidation {
		t.Errorf("want validation error on empty inputs, got %v", err)
	}

	taken, err := SlotTaken(db, 1, "2025-06-01", "18:00")
	if err != nil {
		t.Fatalf("SlotTaken: %v", err)
	}
	if taken {
		t.Error("empty table should report the slot free")
	}

	db.Create(&models.Booking{
		CustomerID: 2, ChefID: 1, HostingID: 1,
		Date: "2025-06-01", TimeSlot: "18:00",
		NumberOfGuests: 3, Status: models.BookingPending,
	})

	taken, err = SlotTaken(db, 1, "2025-06-01", "18:00")
	if err != nil {
		t.Fatalf("SlotTaken: %v", err)
	}
	if !taken {
		t.Error("occupied slot should report taken")
	}

	// equality-only matching: a different token is a different slot
	taken, _ = SlotTaken(db, 1, "2025-06-01", "19:00")
	if taken {
		t.Error("different time slot token should be free")
	}
}

func TestDishHasOrders(t *testing.T) {
	db := openTestDB(t)

	has, err := DishHasOrders(db, 7)
	if err != nil {
		t.Fatalf("DishHasOrders: %v", err)
	}
	if has {
		t.Error("dish without orders should report none")
	}

	db.Create(&models.Order{
		CustomerID: 2, ChefID: 1, DishID: 7,
		Quantity: 1, DeliveryAddress: "12 Main St",
		Status: models.OrderPending,
	})

	has, err = DishHasOrders(db, 7)
	if err != nil {
		t.Fatalf("DishHasOrders: %v", err)
	}
	if !has {
		t.Error("dish with an order should report dependents")
	}
}

func TestHostingHasBookings(t *testing.T) {
	db := openTestDB(t)

	has, err := HostingHasBookings(db, 3)
	if err != nil {
		t.Fatalf("HostingHasBookings: %v", err)
	}
	if has {
		t.Error("hosting without bookings should report none")
	}

	db.Create(&models.Booking{
		CustomerID: 2, ChefID: 1, HostingID: 3,
		Date: "2025-06-02", TimeSlot: "12:00",
		NumberOfGuests: 2, Status: models.BookingPending,
	})

	has, err = HostingHasBookings(db, 3)
	if err != nil {
		t.Fatalf("HostingHasBookings: %v", err)
	}
	if !has {
		t.Error("hosting with a booking should report dependents")
	}
}
