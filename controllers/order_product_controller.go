package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/storeapp/storeapi/config"
	"github.com/storeapp/storeapi/models"
	"github.com/storeapp/storeapi/utils"
	"gorm.io/gorm"
)

// AddOrderProductRequest represents the line-item add request body
type AddOrderProductRequest struct {
	OrderID   uint `json:"order_id" binding:"required"`
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required"`
}

// AddOrderProduct appends a line item to an existing order and bumps the
// order's cached total by the item's price times quantity. The price is
// snapshotted from the product at add time.
func AddOrderProduct(c *gin.Context) {
	utils.LogInfo("AddOrderProduct called")

	var req AddOrderProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Add line item failed - invalid request: %v", err)
		utils.BadRequest(c, "Invalid request format", err.Error())
		return
	}

	if req.Quantity <= 0 {
		utils.ValidationError(c, "Quantity must be positive", nil)
		return
	}

	var order models.Order
	if err := config.DB.First(&order, req.OrderID).Error; err != nil {
		utils.LogError("Add line item failed - order not found: %d", req.OrderID)
		utils.NotFound(c, "Order not found")
		return
	}

	var product models.Product
	if err := config.DB.First(&product, req.ProductID).Error; err != nil {
		utils.LogError("Add line item failed - product not found: %d", req.ProductID)
		utils.NotFound(c, "Product not found")
		return
	}

	item := models.OrderProduct{
		OrderID:          order.ID,
		ProductID:        product.ID,
		Quantity:         req.Quantity,
		PriceAtOrderTime: product.Price,
	}

	newTotal := order.TotalAmount + item.PriceAtOrderTime*float64(item.Quantity)
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&item).Error; err != nil {
			return err
		}
		return tx.Model(&order).Update("total_amount", newTotal).Error
	})
	if err != nil {
		utils.LogError("Failed to add line item to order %d: %v", req.OrderID, err)
		utils.InternalServerError(c, "Failed to add order item", err.Error())
		return
	}

	utils.LogInfo("Line item %d added to order %d, total now %.2f", item.ID, order.ID, newTotal)
	utils.Created(c, "Order item added successfully", gin.H{"order_product": item})
}

// RemoveOrderProduct deletes a line item and decrements the order's cached
// total by the item's contribution. The total never goes below zero.
func RemoveOrderProduct(c *gin.Context) {
	utils.LogInfo("RemoveOrderProduct called")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid order item ID format", nil)
		return
	}

	var item models.OrderProduct
	if err := config.DB.First(&item, id).Error; err != nil {
		utils.LogError("Line item not found: %d", id)
		utils.NotFound(c, "Order item not found")
		return
	}

	var order models.Order
	if err := config.DB.First(&order, item.OrderID).Error; err != nil {
		utils.LogError("Order %d behind line item %d not found", item.OrderID, id)
		utils.NotFound(c, "Order not found")
		return
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&item).Error; err != nil {
			return err
		}
		newTotal := order.TotalAmount - item.PriceAtOrderTime*float64(item.Quantity)
		if newTotal < 0 {
			newTotal = 0
		}
		return tx.Model(&order).Update("total_amount", newTotal).Error
	})
	if err != nil {
		utils.LogError("Failed to remove line item %d: %v", id, err)
		utils.InternalServerError(c, "Failed to remove order item", err.Error())
		return
	}

	utils.LogInfo("Line item %d removed from order %d", id, order.ID)
	utils.Success(c, "Order item removed successfully", nil)
}
