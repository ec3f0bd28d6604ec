package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/storeapp/storeapi/config"
	"github.com/storeapp/storeapi/models"
	"github.com/storeapp/storeapi/utils"
)

// UpdateUserRequest represents the admin user-update request body
type UpdateUserRequest struct {
	ID   uint   `json:"id" binding:"required"`
	Role string `json:"role" binding:"required"`
}

// GetUser returns a single user by id
func GetUser(c *gin.Context) {
	utils.LogInfo("GetUser called")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.LogError("Invalid user ID format: %v", err)
		utils.BadRequest(c, "Invalid user ID format", nil)
		return
	}

	var user models.User
	if err := config.DB.First(&user, id).Error; err != nil {
		utils.LogError("User not found: %d", id)
		utils.NotFound(c, "User not found")
		return
	}

	utils.Success(c, "User retrieved successfully", gin.H{"user": user})
}

// ListUsers returns all users
func ListUsers(c *gin.Context) {
	utils.LogInfo("ListUsers called")

	var users []models.User
	if err := config.DB.Find(&users).Error; err != nil {
		utils.LogError("Failed to fetch users: %v", err)
		utils.InternalServerError(c, "Failed to fetch users", err.Error())
		return
	}

	utils.Success(c, "Users retrieved successfully", gin.H{"users": users})
}

// UpdateUser changes a user's role
func UpdateUser(c *gin.Context) {
	utils.LogInfo("UpdateUser called")

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid input: %v", err)
		utils.BadRequest(c, "Invalid input", err.Error())
		return
	}

	if !models.ValidRole(req.Role) {
		utils.LogError("Invalid role in update request: %s", req.Role)
		utils.BadRequest(c, "Invalid Role", nil)
		return
	}

	var user models.User
	if err := config.DB.First(&user, req.ID).Error; err != nil {
		utils.LogError("User not found: %d", req.ID)
		utils.NotFound(c, "User not found")
		return
	}

	if err := config.DB.Model(&user).Update("role", req.Role).Error; err != nil {
		utils.LogError("Failed to update user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to update user", err.Error())
		return
	}

	utils.LogInfo("User %d role updated to %s", user.ID, req.Role)
	utils.Success(c, "User updated successfully", gin.H{"user": user})
}

// DeleteUser removes a user by id
func DeleteUser(c *gin.Context) {
	utils.LogInfo("DeleteUser called")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.LogError("Invalid user ID format: %v", err)
		utils.BadRequest(c, "Invalid user ID format", nil)
		return
	}

	var user models.User
	if err := config.DB.First(&user, id).Error; err != nil {
		utils.LogError("User not found: %d", id)
		utils.NotFound(c, "User not found")
		return
	}

	if err := config.DB.Delete(&user).Error; err != nil {
		utils.LogError("Failed to delete user %d: %v", id, err)
		utils.InternalServerError(c, "Failed to delete user", err.Error())
		return
	}

	utils.LogInfo("User deleted successfully: %d", id)
	utils.Success(c, "User deleted successfully", nil)
}
