package models

import "time"

// OrderStatus represents the states a dish order can be in
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderAccepted  OrderStatus = "accepted"
	OrderPreparing OrderStatus = "preparing"
	OrderReady     OrderStatus = "ready"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

type Order struct {
	ID                  uint        `json:"id" gorm:"primaryKey"`
	CustomerID          uint        `json:"customer_id" gorm:"not null;index"`
	Customer            User        `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	ChefID              uint        `json:"chef_id" gorm:"not null;index"`
	DishID              uint        `json:"dish_id" gorm:"not null;index"`
	Dish                Dish        `json:"dish,omitempty" gorm:"foreignKey:DishID"`
	Quantity            int         `json:"quantity" gorm:"not null"`
	TotalPrice          float64     `json:"total_price"` // dish price snapshot x quantity, frozen at creation
	DeliveryAddress     string      `json:"delivery_address" gorm:"not null"`
	SpecialInstructions string      `json:"special_instructions"`
	Status              OrderStatus `json:"status" gorm:"not null;default:'pending'"`
	CreatedAt           time.Time   `json:"created_at"`
	UpdatedAt           time.Time   `json:"updated_at"`
}
