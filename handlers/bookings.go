package handlers

import (
	"errors"
	"net/http"

	"idish-backend/config"
	"idish-backend/middleware"
	"idish-backend/models"
	"idish-backend/rules"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateBookingRequest struct {
	HostingID       uint   `json:"hosting_id" binding:"required"`
	Date            string `json:"date" binding:"required"`
	TimeSlot        string `json:"time_slot" binding:"required"`
	NumberOfGuests  int    `json:"number_of_guests" binding:"required,gt=0"`
	SpecialRequests string `json:"special_requests"`
}

// CreateBooking reserves a hosting slot for the authenticated customer.
// The chef id is derived from the hosting, the total is the rounded
// per-guest price times the guest count, and the slot must be free.
func CreateBooking(c *gin.Context) {
	customerID := middleware.GetUserID(c)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failValidation(c, err.Error())
		return
	}

	var hosting models.Hosting
	if err := config.DB.First(&hosting, "id = ?", req.HostingID).Error; err != nil {
		failValidation(c, "Hosting not found")
		return
	}

	taken, rerr := rules.SlotTaken(config.DB, req.HostingID, req.Date, req.TimeSlot)
	if rerr != nil {
		fail(c, rerr)
		return
	}
	if taken {
		fail(c, rules.Conflict("This time slot is already booked"))
		return
	}

	booking := models.Booking{
		CustomerID:      customerID,
		ChefID:          hosting.ChefID,
		HostingID:       hosting.ID,
		Date:            req.Date,
		TimeSlot:        req.TimeSlot,
		NumberOfGuests:  req.NumberOfGuests,
		TotalPrice:      rules.BookingTotal(hosting.PricePerGuest, req.NumberOfGuests),
		SpecialRequests: req.SpecialRequests,
		Status:          models.BookingPending,
	}
	if err := config.DB.Create(&booking).Error; err != nil {
		// the unique slot index catches the race the pre-check cannot
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			fail(c, rules.Conflict("This time slot is already booked"))
			return
		}
		fail(c, rules.Upstream("Failed to create booking"))
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Booking created", "booking": booking})
}

// GetMyBookings returns the authenticated customer's bookings, newest
// first, with the hosting summary embedded
func GetMyBookings(c *gin.Context) {
	customerID := middleware.GetUserID(c)

	query := config.DB.Preload("Hosting").
		Where("customer_id = ?", customerID).
		Order("created_at desc")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	bookings := []models.Booking{}
	if err := query.Find(&bookings).Error; err != nil {
		fail(c, rules.Upstream("Failed to list bookings"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(bookings), "bookings": bookings})
}

// GetChefBookings returns bookings against the chef's hostings
func GetChefBookings(c *gin.Context) {
	chefID := middleware.GetUserID(c)

	query := config.DB.Preload("Hosting").Preload("Customer").
		Where("chef_id = ?", chefID).
		Order("created_at desc")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	bookings := []models.Booking{}
	if err := query.Find(&bookings).Error; err != nil {
		fail(c, rules.Upstream("Failed to list bookings"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(bookings), "bookings": bookings})
}

type UpdateBookingStatusRequest struct {
	Status models.BookingStatus `json:"status" binding:"required"`
}

// UpdateBookingStatus lets the fulfilling chef change a booking's status
func UpdateBookingStatus(c *gin.Context) {
	chefID := middleware.GetUserID(c)

	var req UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failValidation(c, err.Error())
		return
	}

	booking, rerr := rules.TransitionBooking(config.DB, c.Param("id"), req.Status, chefID)
	if rerr != nil {
		fail(c, rerr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Status updated", "booking": booking})
}
