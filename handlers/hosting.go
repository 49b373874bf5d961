package handlers

import (
	"encoding/json"
	"net/http"

	"idish-backend/config"
	"idish-backend/middleware"
	"idish-backend/models"
	"idish-backend/rules"

	"github.com/gin-gonic/gin"
)

type CreateHostingRequest struct {
	Title         string   `json:"title" binding:"required"`
	Description   string   `json:"description"`
	Location      string   `json:"location" binding:"required"`
	AvailableDays []string `json:"available_days"`
	TimeSlots     []string `json:"time_slots"`
	MaxGuests     int      `json:"max_guests" binding:"required,gt=0"`
	PricePerGuest float64  `json:"price_per_guest" binding:"required,gt=0"`
	ImageURL      string   `json:"image_url"`
}

// CreateHosting creates a hosted dining experience owned by the chef
func CreateHosting(c *gin.Context) {
	chefID := middleware.GetUserID(c)

	var req CreateHostingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failValidation(c, err.Error())
		return
	}

	hosting := models.Hosting{
		ChefID:        chefID,
		Title:         req.Title,
		Description:   req.Description,
		Location:      req.Location,
		AvailableDays: req.AvailableDays,
		TimeSlots:     req.TimeSlots,
		MaxGuests:     req.MaxGuests,
		PricePerGuest: req.PricePerGuest,
		ImageURL:      req.ImageURL,
		Available:     true,
	}
	if err := config.DB.Create(&hosting).Error; err != nil {
		fail(c, rules.Upstream("Failed to create hosting"))
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Hosting created successfully", "hosting": hosting})
}

// GetChefHostings returns the hostings of the authenticated chef
func GetChefHostings(c *gin.Context) {
	chefID := middleware.GetUserID(c)
	hostings := []models.Hosting{}
	config.DB.Where("chef_id = ?", chefID).Find(&hostings)
	c.JSON(http.StatusOK, gin.H{"count": len(hostings), "hostings": hostings})
}

// ListHostings returns all hostings (public)
func ListHostings(c *gin.Context) {
	query := config.DB.Model(&models.Hosting{})
	if location := c.Query("location"); location != "" {
		query = query.Where("location LIKE ?", "%"+location+"%")
	}
	if available := c.Query("available"); available == "true" {
		query = query.Where("available = ?", true)
	}
	hostings := []models.Hosting{}
	if err := query.Find(&hostings).Error; err != nil {
		fail(c, rules.Upstream("Failed to list hostings"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(hostings), "hostings": hostings})
}

// GetHostingDetails returns one hosting with an embedded chef summary
func GetHostingDetails(c *gin.Context) {
	var hosting models.Hosting
	if err := config.DB.First(&hosting, "id = ?", c.Param("id")).Error; err != nil {
		fail(c, rules.NotFound("Hosting not found"))
		return
	}

	resp := gin.H{"hosting": hosting}
	var profile models.ChefProfile
	if err := config.DB.Where("user_id = ?", hosting.ChefID).First(&profile).Error; err == nil {
		resp["chef"] = gin.H{
			"id":        profile.UserID,
			"name":      profile.Name,
			"location":  profile.Location,
			"image_url": profile.ImageURL,
		}
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateHosting updates a hosting's safe fields; owner only
func UpdateHosting(c *gin.Context) {
	chefID := middleware.GetUserID(c)

	var hosting models.Hosting
	if err := config.DB.First(&hosting, "id = ?", c.Param("id")).Error; err != nil {
		fail(c, rules.NotFound("Hosting not found"))
		return
	}
	if hosting.ChefID != chefID {
		fail(c, rules.Forbidden("You do not own this hosting"))
		return
	}

	var req map[string]interface{}
	if err := c.ShouldBindJSON(&req); err != nil {
		failValidation(c, err.Error())
		return
	}
	allowed := map[string]bool{
		"title": true, "description": true, "location": true,
		"available_days": true, "time_slots": true, "max_guests": true,
		"price_per_guest": true, "image_url": true, "available": true,
	}
	update := map[string]interface{}{}
	for k, v := range req {
		if !allowed[k] {
			continue
		}
		// the schedule arrays bypass the field serializer on the map-update
		// path, so store their JSON text directly
		if k == "available_days" || k == "time_slots" {
			b, err := json.Marshal(v)
			if err != nil {
				failValidation(c, k+" must be a list of strings")
				return
			}
			update[k] = string(b)
			continue
		}
		update[k] = v
	}
	if err := config.DB.Model(&hosting).Updates(update).Error; err != nil {
		fail(c, rules.Upstream("Failed to update hosting"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Hosting updated successfully", "hosting": hosting})
}

// DeleteHosting removes a hosting; owner only, blocked while bookings
// reference it
func DeleteHosting(c *gin.Context) {
	chefID := middleware.GetUserID(c)

	var hosting models.Hosting
	if err := config.DB.First(&hosting, "id = ?", c.Param("id")).Error; err != nil {
		fail(c, rules.NotFound("Hosting not found"))
		return
	}
	if hosting.ChefID != chefID {
		fail(c, rules.Forbidden("You do not own this hosting"))
		return
	}

	hasBookings, gerr := rules.HostingHasBookings(config.DB, hosting.ID)
	if gerr != nil {
		fail(c, gerr)
		return
	}
	if hasBookings {
		fail(c, rules.Conflict("Cannot delete hosting with existing bookings"))
		return
	}

	if err := config.DB.Delete(&hosting).Error; err != nil {
		fail(c, rules.Conflict("Cannot delete hosting"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Hosting deleted successfully"})
}
