package routes

import (
	"idish-backend/handlers"
	"idish-backend/middleware"
	"idish-backend/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Auth ───────────────────────────────────────────────────────
	auth := r.Group("/auth")
	{
		auth.POST("/signup", handlers.Signup)
		auth.POST("/login", handlers.Login)
		auth.GET("/profile", middleware.AuthRequired(), handlers.GetProfile)
		auth.GET("/users/:id", handlers.GetUserByID)
		auth.GET("/chef/:id", handlers.GetChefByID)
	}

	// ── Dishes ─────────────────────────────────────────────────────
	dishes := r.Group("/dishes")
	{
		dishes.GET("/all", handlers.ListDishes)

		chefOnly := dishes.Group("", middleware.AuthRequired(), middleware.RoleRequired(models.RoleChef))
		chefOnly.POST("/add", handlers.AddDish)
		chefOnly.GET("/by-chef", handlers.GetChefDishes)
		chefOnly.PUT("/edit/:id", handlers.UpdateDish)
		chefOnly.DELETE("/delete/:id", handlers.DeleteDish)

		dishes.GET("/:id", middleware.AuthRequired(), handlers.GetDish)
	}

	// ── Hosting ────────────────────────────────────────────────────
	hosting := r.Group("/hosting")
	{
		hosting.GET("/all", handlers.ListHostings)
		hosting.GET("/details/:id", handlers.GetHostingDetails)

		chefOnly := hosting.Group("", middleware.AuthRequired(), middleware.RoleRequired(models.RoleChef))
		chefOnly.POST("/create", handlers.CreateHosting)
		chefOnly.GET("/by-chef", handlers.GetChefHostings)
		chefOnly.PUT("/:id", handlers.UpdateHosting)
		chefOnly.DELETE("/:id", handlers.DeleteHosting)
	}

	// ── Bookings ───────────────────────────────────────────────────
	bookings := r.Group("/bookings", middleware.AuthRequired())
	{
		customer := bookings.Group("", middleware.RoleRequired(models.RoleCustomer))
		customer.POST("/create", handlers.CreateBooking)
		customer.GET("/by-user", handlers.GetMyBookings)

		chef := bookings.Group("", middleware.RoleRequired(models.RoleChef))
		chef.GET("/by-chef", handlers.GetChefBookings)
		chef.PUT("/status/:id", handlers.UpdateBookingStatus)
	}

	// ── Orders ─────────────────────────────────────────────────────
	orders := r.Group("/orders", middleware.AuthRequired())
	{
		customer := orders.Group("", middleware.RoleRequired(models.RoleCustomer))
		customer.POST("/create", handlers.CreateOrder)
		customer.GET("/by-user", handlers.GetMyOrders)

		chef := orders.Group("", middleware.RoleRequired(models.RoleChef))
		chef.GET("/by-chef", handlers.GetChefOrders)
		chef.PUT("/status/:id", handlers.UpdateOrderStatus)
	}

	// ── Images ─────────────────────────────────────────────────────
	image := r.Group("/image", middleware.AuthRequired())
	{
		image.POST("/upload", handlers.UploadImage)
	}
}
