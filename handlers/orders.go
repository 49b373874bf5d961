package handlers

import (
	"net/http"

	"idish-backend/config"
	"idish-backend/middleware"
	"idish-backend/models"
	"idish-backend/rules"

	"github.com/gin-gonic/gin"
)

type CreateOrderRequest struct {
	DishID              uint   `json:"dish_id" binding:"required"`
	Quantity            int    `json:"quantity" binding:"required,gt=0"`
	DeliveryAddress     string `json:"delivery_address" binding:"required"`
	SpecialInstructions string `json:"special_instructions"`
}

// CreateOrder places an order for a dish. The chef id is derived from
// the dish; the total snapshots the current dish price.
func CreateOrder(c *gin.Context) {
	customerID := middleware.GetUserID(c)

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failValidation(c, err.Error())
		return
	}

	var dish models.Dish
	if err := config.DB.First(&dish, "id = ?", req.DishID).Error; err != nil {
		failValidation(c, "Dish not available")
		return
	}
	if !dish.Available {
		failValidation(c, "Dish not available")
		return
	}

	order := models.Order{
		CustomerID:          customerID,
		ChefID:              dish.ChefID,
		DishID:              dish.ID,
		Quantity:            req.Quantity,
		TotalPrice:          rules.OrderTotal(dish.Price, req.Quantity),
		DeliveryAddress:     req.DeliveryAddress,
		SpecialInstructions: req.SpecialInstructions,
		Status:              models.OrderPending,
	}
	if err := config.DB.Create(&order).Error; err != nil {
		fail(c, rules.Upstream("Failed to place order"))
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Order placed", "order": order})
}

// GetMyOrders returns the authenticated customer's orders, newest first,
// with the dish summary embedded
func GetMyOrders(c *gin.Context) {
	customerID := middleware.GetUserID(c)

	query := config.DB.Preload("Dish").
		Where("customer_id = ?", customerID).
		Order("created_at desc")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	orders := []models.Order{}
	if err := query.Find(&orders).Error; err != nil {
		fail(c, rules.Upstream("Failed to list orders"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// GetChefOrders returns orders against the chef's dishes
func GetChefOrders(c *gin.Context) {
	chefID := middleware.GetUserID(c)

	query := config.DB.Preload("Dish").Preload("Customer").
		Where("chef_id = ?", chefID).
		Order("created_at desc")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	orders := []models.Order{}
	if err := query.Find(&orders).Error; err != nil {
		fail(c, rules.Upstream("Failed to list orders"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

// UpdateOrderStatus lets the fulfilling chef change an order's status
func UpdateOrderStatus(c *gin.Context) {
	chefID := middleware.GetUserID(c)

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failValidation(c, err.Error())
		return
	}

	order, rerr := rules.TransitionOrder(config.DB, c.Param("id"), req.Status, chefID)
	if rerr != nil {
		fail(c, rerr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Status updated", "order": order})
}
