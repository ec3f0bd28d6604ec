package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/storeapp/storeapi/config"
	"github.com/storeapp/storeapi/models"
	"github.com/storeapp/storeapi/utils"
)

// RegisterRequest represents the registration request body
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterUser handles user registration
func RegisterUser(c *gin.Context) {
	utils.LogInfo("RegisterUser called")

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Registration failed - invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request format", err.Error())
		return
	}
	utils.LogInfo("Registration attempt for username: %s", req.Username)

	if valid, msg := utils.ValidateUsername(req.Username); !valid {
		utils.LogError("Registration failed - invalid username %q: %s", req.Username, msg)
		utils.BadRequest(c, msg, nil)
		return
	}

	if valid, msg := utils.ValidatePassword(req.Password); !valid {
		utils.LogError("Registration failed - invalid password for username: %s", req.Username)
		utils.BadRequest(c, msg, nil)
		return
	}

	if valid, msg := utils.ValidateRegisterRole(req.Role); !valid {
		utils.LogError("Registration failed - invalid role %q for username: %s", req.Role, req.Username)
		utils.BadRequest(c, msg, nil)
		return
	}

	var existing models.User
	if err := config.DB.Where("username = ?", req.Username).First(&existing).Error; err == nil {
		utils.LogError("Registration failed - username already taken: %s", req.Username)
		utils.Conflict(c, "User Exist", nil)
		return
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		utils.LogError("Failed to hash password: %v", err)
		utils.InternalServerError(c, "Failed to process password", nil)
		return
	}

	user := models.User{
		Username: req.Username,
		Password: hashed,
		Role:     req.Role,
	}

	if err := config.DB.Create(&user).Error; err != nil {
		utils.LogError("Failed to create user %s: %v", req.Username, err)
		utils.InternalServerError(c, "Failed to create user", err.Error())
		return
	}

	utils.LogInfo("User registered successfully: %s (ID: %d)", user.Username, user.ID)
	utils.Created(c, "Successfully add new user with username: "+user.Username, gin.H{
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"role":     user.Role,
		},
	})
}

// LoginUser authenticates a user and returns a signed token
func LoginUser(c *gin.Context) {
	utils.LogInfo("LoginUser called")

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Login failed - invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request format", err.Error())
		return
	}
	utils.LogInfo("Login attempt for username: %s", req.Username)

	var user models.User
	if err := config.DB.Where("username = ?", req.Username).First(&user).Error; err != nil {
		utils.LogError("Login failed - user not found: %s", req.Username)
		utils.Unauthorized(c, "Invalid Username Or Password")
		return
	}

	if !utils.CheckPassword(req.Password, user.Password) {
		utils.LogError("Login failed - wrong password for username: %s", req.Username)
		utils.Unauthorized(c, "Invalid Username Or Password")
		return
	}

	token, err := utils.GenerateToken(&user)
	if err != nil {
		utils.LogError("Failed to generate token for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to generate token", nil)
		return
	}

	utils.LogInfo("User %d logged in successfully", user.ID)
	utils.Success(c, "Login successful", gin.H{
		"token":    token,
		"user_id":  user.ID,
		"username": user.Username,
		"role":     user.Role,
	})
}
