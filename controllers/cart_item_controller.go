package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/storeapp/storeapi/config"
	"github.com/storeapp/storeapi/models"
	"github.com/storeapp/storeapi/utils"
)

// AddCartItemRequest represents the add-to-cart request body
type AddCartItemRequest struct {
	CartID    uint `json:"cart_id" binding:"required"`
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required"`
}

// UpdateCartItemRequest represents the cart-item quantity update body
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

// AddCartItem puts a product into a cart. Adding a product that is already in
// the cart bumps its quantity instead of creating a duplicate row. The price
// is snapshotted from the product at add time.
func AddCartItem(c *gin.Context) {
	utils.LogInfo("AddCartItem called")

	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Add cart item failed - invalid request: %v", err)
		utils.BadRequest(c, "Invalid request format", err.Error())
		return
	}

	if req.Quantity <= 0 {
		utils.LogError("Add cart item failed - non-positive quantity: %d", req.Quantity)
		utils.ValidationError(c, "Quantity must be positive", nil)
		return
	}

	var cart models.ShoppingCart
	if err := config.DB.First(&cart, req.CartID).Error; err != nil {
		utils.LogError("Add cart item failed - cart not found: %d", req.CartID)
		utils.NotFound(c, "Cart not found")
		return
	}

	var product models.Product
	if err := config.DB.First(&product, req.ProductID).Error; err != nil {
		utils.LogError("Add cart item failed - product not found: %d", req.ProductID)
		utils.NotFound(c, "Product not found")
		return
	}

	var item models.CartItem
	if err := config.DB.Where("cart_id = ? AND product_id = ?", req.CartID, req.ProductID).First(&item).Error; err == nil {
		item.Quantity += req.Quantity
		if err := config.DB.Save(&item).Error; err != nil {
			utils.LogError("Failed to update cart item %d: %v", item.ID, err)
			utils.InternalServerError(c, "Failed to update cart item", err.Error())
			return
		}
		utils.LogInfo("Cart item %d quantity bumped to %d", item.ID, item.Quantity)
		utils.Success(c, "Cart item updated successfully", gin.H{"cart_item": item})
		return
	}

	item = models.CartItem{
		CartID:    req.CartID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		Price:     product.Price,
	}

	if err := config.DB.Create(&item).Error; err != nil {
		utils.LogError("Failed to add cart item: %v", err)
		utils.InternalServerError(c, "Failed to add cart item", err.Error())
		return
	}

	utils.LogInfo("Product %d added to cart %d (item %d)", req.ProductID, req.CartID, item.ID)
	utils.Created(c, "Product added to cart", gin.H{"cart_item": item})
}

// ListCartItems returns the items of a cart
func ListCartItems(c *gin.Context) {
	utils.LogInfo("ListCartItems called")

	cartID, err := strconv.ParseUint(c.Param("cartId"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid cart ID format", nil)
		return
	}

	var cart models.ShoppingCart
	if err := config.DB.First(&cart, cartID).Error; err != nil {
		utils.LogError("Cart not found: %d", cartID)
		utils.NotFound(c, "Cart not found")
		return
	}

	var items []models.CartItem
	if err := config.DB.Preload("Product").Where("cart_id = ?", cartID).Find(&items).Error; err != nil {
		utils.LogError("Failed to fetch items of cart %d: %v", cartID, err)
		utils.InternalServerError(c, "Failed to fetch cart items", err.Error())
		return
	}

	utils.Success(c, "Cart items retrieved successfully", gin.H{"cart_items": items})
}

// UpdateCartItem changes the quantity of a cart item
func UpdateCartItem(c *gin.Context) {
	utils.LogInfo("UpdateCartItem called")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid cart item ID format", nil)
		return
	}

	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request format", err.Error())
		return
	}

	if req.Quantity <= 0 {
		utils.ValidationError(c, "Quantity must be positive", nil)
		return
	}

	var item models.CartItem
	if err := config.DB.First(&item, id).Error; err != nil {
		utils.LogError("Cart item not found: %d", id)
		utils.NotFound(c, "Cart item not found")
		return
	}

	if err := config.DB.Model(&item).Update("quantity", req.Quantity).Error; err != nil {
		utils.LogError("Failed to update cart item %d: %v", id, err)
		utils.InternalServerError(c, "Failed to update cart item", err.Error())
		return
	}

	utils.LogInfo("Cart item %d quantity set to %d", id, req.Quantity)
	utils.Success(c, "Cart item updated successfully", gin.H{"cart_item": item})
}

// RemoveCartItem deletes an item from a cart
func RemoveCartItem(c *gin.Context) {
	utils.LogInfo("RemoveCartItem called")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid cart item ID format", nil)
		return
	}

	var item models.CartItem
	if err := config.DB.First(&item, id).Error; err != nil {
		utils.LogError("Cart item not found: %d", id)
		utils.NotFound(c, "Cart item not found")
		return
	}

	if err := config.DB.Delete(&item).Error; err != nil {
		utils.LogError("Failed to delete cart item %d: %v", id, err)
		utils.InternalServerError(c, "Failed to delete cart item", err.Error())
		return
	}

	utils.LogInfo("Cart item deleted successfully: %d", id)
	utils.Success(c, "Cart item removed successfully", nil)
}
