package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/storeapp/storeapi/config"
	"github.com/storeapp/storeapi/models"
	"github.com/storeapp/storeapi/utils"
)

// AddWishlistRequest represents the wishlist add request body
type AddWishlistRequest struct {
	UserID    uint `json:"user_id" binding:"required"`
	ProductID uint `json:"product_id" binding:"required"`
}

// AddToWishlist saves a product to a user's wishlist
func AddToWishlist(c *gin.Context) {
	utils.LogInfo("AddToWishlist called")

	var req AddWishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Wishlist add failed - invalid request: %v", err)
		utils.BadRequest(c, "Invalid request format", err.Error())
		return
	}

	var user models.User
	if err := config.DB.First(&user, req.UserID).Error; err != nil {
		utils.LogError("Wishlist add failed - user not found: %d", req.UserID)
		utils.NotFound(c, "User not found")
		return
	}

	var product models.Product
	if err := config.DB.First(&product, req.ProductID).Error; err != nil {
		utils.LogError("Wishlist add failed - product not found: %d", req.ProductID)
		utils.NotFound(c, "Product not found")
		return
	}

	entry := models.Wishlist{
		UserID:    req.UserID,
		ProductID: req.ProductID,
	}

	if err := config.DB.Create(&entry).Error; err != nil {
		utils.LogError("Failed to add wishlist entry: %v", err)
		utils.InternalServerError(c, "Failed to add to wishlist", err.Error())
		return
	}

	utils.LogInfo("Product %d wishlisted by user %d (entry %d)", req.ProductID, req.UserID, entry.ID)
	utils.Created(c, "Product added to wishlist", gin.H{"wishlist": entry})
}

// GetWishlistByUser returns a user's wishlist entries. An empty wishlist
// reports not found, matching the lookup semantics of the other resources.
func GetWishlistByUser(c *gin.Context) {
	utils.LogInfo("GetWishlistByUser called")

	userID, err := strconv.ParseUint(c.Param("userId"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid user ID format", nil)
		return
	}

	var entries []models.Wishlist
	if err := config.DB.Preload("Product").Where("user_id = ?", userID).Find(&entries).Error; err != nil {
		utils.LogError("Failed to fetch wishlist for user %d: %v", userID, err)
		utils.InternalServerError(c, "Failed to fetch wishlist", err.Error())
		return
	}

	if len(entries) == 0 {
		utils.LogInfo("Wishlist empty for user %d", userID)
		utils.NotFound(c, "Wishlist is empty")
		return
	}

	utils.Success(c, "Wishlist retrieved successfully", gin.H{"wishlist": entries})
}

// RemoveFromWishlist deletes a wishlist entry
func RemoveFromWishlist(c *gin.Context) {
	utils.LogInfo("RemoveFromWishlist called")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid wishlist ID format", nil)
		return
	}

	var entry models.Wishlist
	if err := config.DB.First(&entry, id).Error; err != nil {
		utils.LogError("Wishlist entry not found: %d", id)
		utils.NotFound(c, "Wishlist entry not found")
		return
	}

	if err := config.DB.Delete(&entry).Error; err != nil {
		utils.LogError("Failed to delete wishlist entry %d: %v", id, err)
		utils.InternalServerError(c, "Failed to remove from wishlist", err.Error())
		return
	}

	utils.LogInfo("Wishlist entry deleted successfully: %d", id)
	utils.Success(c, "Product removed from wishlist", nil)
}
