package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/storeapp/storeapi/config"
	"github.com/storeapp/storeapi/models"
	"github.com/storeapp/storeapi/utils"
)

// CreateCartRequest represents the cart creation request body
type CreateCartRequest struct {
	UserID uint `json:"user_id" binding:"required"`
}

// CreateCart creates a shopping cart for a user. Each user gets exactly one
// cart, a second create for the same user is rejected.
func CreateCart(c *gin.Context) {
	utils.LogInfo("CreateCart called")

	var req CreateCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Cart creation failed - invalid request: %v", err)
		utils.BadRequest(c, "Invalid request format", err.Error())
		return
	}

	var user models.User
	if err := config.DB.First(&user, req.UserID).Error; err != nil {
		utils.LogError("Cart creation failed - user not found: %d", req.UserID)
		utils.NotFound(c, "User not found")
		return
	}

	var existing models.ShoppingCart
	if err := config.DB.Where("user_id = ?", req.UserID).First(&existing).Error; err == nil {
		utils.LogError("Cart creation failed - user %d already has cart %d", req.UserID, existing.ID)
		utils.Conflict(c, "User already has a cart", nil)
		return
	}

	cart := models.ShoppingCart{UserID: req.UserID}
	if err := config.DB.Create(&cart).Error; err != nil {
		utils.LogError("Failed to create cart for user %d: %v", req.UserID, err)
		utils.InternalServerError(c, "Failed to create cart", err.Error())
		return
	}

	utils.LogInfo("Cart %d created for user %d", cart.ID, req.UserID)
	utils.Created(c, "Cart created successfully", gin.H{"cart": cart})
}

// GetCartByUser returns the cart of a user with its items
func GetCartByUser(c *gin.Context) {
	utils.LogInfo("GetCartByUser called")

	userID, err := strconv.ParseUint(c.Param("userId"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid user ID format", nil)
		return
	}

	var cart models.ShoppingCart
	if err := config.DB.Preload("CartItems").Preload("CartItems.Product").
		Where("user_id = ?", userID).First(&cart).Error; err != nil {
		utils.LogError("Cart not found for user %d", userID)
		utils.NotFound(c, "Cart not found")
		return
	}

	utils.Success(c, "Cart retrieved successfully", gin.H{"cart": cart})
}

// DeleteCart removes a cart and its items
func DeleteCart(c *gin.Context) {
	utils.LogInfo("DeleteCart called")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid cart ID format", nil)
		return
	}

	var cart models.ShoppingCart
	if err := config.DB.First(&cart, id).Error; err != nil {
		utils.LogError("Cart not found: %d", id)
		utils.NotFound(c, "Cart not found")
		return
	}

	// Items go first so SQLite backends without FK cascade stay consistent
	if err := config.DB.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error; err != nil {
		utils.LogError("Failed to delete items of cart %d: %v", id, err)
		utils.InternalServerError(c, "Failed to delete cart items", err.Error())
		return
	}

	if err := config.DB.Delete(&cart).Error; err != nil {
		utils.LogError("Failed to delete cart %d: %v", id, err)
		utils.InternalServerError(c, "Failed to delete cart", err.Error())
		return
	}

	utils.LogInfo("Cart deleted successfully: %d", id)
	utils.Success(c, "Cart deleted successfully", nil)
}
