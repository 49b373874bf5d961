package handlers

import (
	"net/http"
	"strconv"

	"idish-backend/config"
	"idish-backend/middleware"
	"idish-backend/models"
	"idish-backend/rules"

	"github.com/gin-gonic/gin"
)

type AddDishRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	CuisineType string  `json:"cuisine_type"`
	ImageURL    string  `json:"image_url"`
}

// AddDish creates a dish owned by the authenticated chef. The chef id is
// always the requester's, never client-supplied.
func AddDish(c *gin.Context) {
	chefID := middleware.GetUserID(c)

	var req AddDishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failValidation(c, err.Error())
		return
	}

	dish := models.Dish{
		ChefID:      chefID,
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		CuisineType: req.CuisineType,
		ImageURL:    req.ImageURL,
		Available:   true,
	}
	if err := config.DB.Create(&dish).Error; err != nil {
		fail(c, rules.Upstream("Failed to add dish"))
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Dish added successfully", "dish": dish})
}

// GetChefDishes returns all dishes of the authenticated chef
func GetChefDishes(c *gin.Context) {
	chefID := middleware.GetUserID(c)
	var dishes []models.Dish
	config.DB.Where("chef_id = ?", chefID).Find(&dishes)
	c.JSON(http.StatusOK, gin.H{"count": len(dishes), "dishes": dishes})
}

// ListDishes returns all available dishes with optional search filters:
// title substring, cuisine_type exact, min_price/max_price range. An
// empty result is a 200 with an empty list, never a 404.
func ListDishes(c *gin.Context) {
	query := config.DB.Where("available = ?", true)

	if title := c.Query("title"); title != "" {
		query = query.Where("title LIKE ?", "%"+title+"%")
	}
	if cuisine := c.Query("cuisine_type"); cuisine != "" {
		query = query.Where("cuisine_type = ?", cuisine)
	}
	if minPrice := c.Query("min_price"); minPrice != "" {
		v, err := strconv.ParseFloat(minPrice, 64)
		if err != nil {
			failValidation(c, "min_price must be a number")
			return
		}
		query = query.Where("price >= ?", v)
	}
	if maxPrice := c.Query("max_price"); maxPrice != "" {
		v, err := strconv.ParseFloat(maxPrice, 64)
		if err != nil {
			failValidation(c, "max_price must be a number")
			return
		}
		query = query.Where("price <= ?", v)
	}

	dishes := []models.Dish{}
	if err := query.Find(&dishes).Error; err != nil {
		fail(c, rules.Upstream("Failed to list dishes"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(dishes), "dishes": dishes})
}

// GetDish returns a single dish by id
func GetDish(c *gin.Context) {
	var dish models.Dish
	if err := config.DB.First(&dish, "id = ?", c.Param("id")).Error; err != nil {
		fail(c, rules.NotFound("Dish not found"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"dish": dish})
}

// UpdateDish updates a dish's safe fields; owner only
func UpdateDish(c *gin.Context) {
	chefID := middleware.GetUserID(c)

	var dish models.Dish
	if err := config.DB.First(&dish, "id = ?", c.Param("id")).Error; err != nil {
		fail(c, rules.NotFound("Dish not found"))
		return
	}
	if dish.ChefID != chefID {
		fail(c, rules.Forbidden("You do not own this dish"))
		return
	}

	var req map[string]interface{}
	if err := c.ShouldBindJSON(&req); err != nil {
		failValidation(c, err.Error())
		return
	}
	allowed := map[string]bool{
		"title": true, "description": true, "price": true,
		"cuisine_type": true, "image_url": true, "available": true,
	}
	update := map[string]interface{}{}
	for k, v := range req {
		if allowed[k] {
			update[k] = v
		}
	}
	if price, ok := update["price"].(float64); ok && price <= 0 {
		failValidation(c, "price must be positive")
		return
	}
	if err := config.DB.Model(&dish).Updates(update).Error; err != nil {
		fail(c, rules.Upstream("Failed to update dish"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Dish updated successfully", "dish": dish})
}

// DeleteDish removes a dish; owner only, blocked while orders reference it
func DeleteDish(c *gin.Context) {
	chefID := middleware.GetUserID(c)

	var dish models.Dish
	if err := config.DB.First(&dish, "id = ?", c.Param("id")).Error; err != nil {
		fail(c, rules.NotFound("Dish not found"))
		return
	}
	if dish.ChefID != chefID {
		fail(c, rules.Forbidden("You do not own this dish"))
		return
	}

	hasOrders, gerr := rules.DishHasOrders(config.DB, dish.ID)
	if gerr != nil {
		fail(c, gerr)
		return
	}
	if hasOrders {
		fail(c, rules.Conflict("Cannot delete dish with existing orders"))
		return
	}

	if err := config.DB.Delete(&dish).Error; err != nil {
		// a store-side rejection (e.g. foreign key) lands here
		fail(c, rules.Conflict("Cannot delete dish"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Dish deleted successfully"})
}
