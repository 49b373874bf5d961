package handlers

import (
	"net/http"

	"idish-backend/config"
	"idish-backend/middleware"
	"idish-backend/models"
	"idish-backend/rules"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type SignupRequest struct {
	Name     string          `json:"name" binding:"required"`
	Email    string          `json:"email" binding:"required,email"`
	Password string          `json:"password" binding:"required,min=6"`
	Role     models.UserRole `json:"role" binding:"required"`
	Phone    string          `json:"phone"`

	// chef profile fields, used only when role is chef
	Location   string `json:"location"`
	Bio        string `json:"bio"`
	Experience string `json:"experience"`
	ImageURL   string `json:"image_url"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Signup creates a new user account. A chef signup also creates the
// chef's public profile row.
func Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failValidation(c, err.Error())
		return
	}

	if req.Role != models.RoleChef && req.Role != models.RoleCustomer {
		failValidation(c, "Invalid role. Must be: chef or customer")
		return
	}

	var existing models.User
	if result := config.DB.Where("email = ?", req.Email).First(&existing); result.Error == nil {
		fail(c, rules.Conflict("Email already registered"))
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		fail(c, rules.Upstream("Failed to hash password"))
		return
	}

	user := models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         req.Role,
		Phone:        req.Phone,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		fail(c, rules.Upstream("Failed to create user"))
		return
	}

	if req.Role == models.RoleChef {
		profile := models.ChefProfile{
			UserID:     user.ID,
			Name:       req.Name,
			Phone:      req.Phone,
			Location:   req.Location,
			Bio:        req.Bio,
			Experience: req.Experience,
			ImageURL:   req.ImageURL,
		}
		if err := config.DB.Create(&profile).Error; err != nil {
			fail(c, rules.Upstream("Failed to create chef profile"))
			return
		}
	}

	token, err := middleware.GenerateToken(&user)
	if err != nil {
		fail(c, rules.Upstream("Failed to generate token"))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered",
		"token":   token,
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}

// Login authenticates a user and returns a session token
func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failValidation(c, err.Error())
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		fail(c, &rules.Error{Kind: rules.KindUnauthenticated, Message: "Invalid email or password"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		fail(c, &rules.Error{Kind: rules.KindUnauthenticated, Message: "Invalid email or password"})
		return
	}

	token, err := middleware.GenerateToken(&user)
	if err != nil {
		fail(c, rules.Upstream("Failed to generate token"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}

// GetProfile returns the authenticated user's merged identity plus, for
// chefs, the chef profile.
func GetProfile(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		fail(c, rules.NotFound("User not found"))
		return
	}

	resp := gin.H{"user": user}
	if user.Role == models.RoleChef {
		var profile models.ChefProfile
		if err := config.DB.Where("user_id = ?", user.ID).First(&profile).Error; err == nil {
			resp["chef_profile"] = profile
		}
	}
	c.JSON(http.StatusOK, resp)
}

// GetUserByID returns a user's public fields (public route)
func GetUserByID(c *gin.Context) {
	var user models.User
	if err := config.DB.First(&user, "id = ?", c.Param("id")).Error; err != nil {
		fail(c, rules.NotFound("User not found"))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":   user.ID,
			"name": user.Name,
			"role": user.Role,
		},
	})
}

// GetChefByID returns a chef's public profile by user id (public route)
func GetChefByID(c *gin.Context) {
	var profile models.ChefProfile
	if err := config.DB.Where("user_id = ?", c.Param("id")).First(&profile).Error; err != nil {
		fail(c, rules.NotFound("Chef not found"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"chef": profile})
}
