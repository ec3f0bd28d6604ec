package controllers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/storeapp/storeapi/config"
	"github.com/storeapp/storeapi/models"
	"github.com/storeapp/storeapi/utils"
	"gorm.io/gorm"
)

// OrderItemRequest is a single line item of an order creation request
type OrderItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required"`
}

// CreateOrderRequest represents the order creation request body
type CreateOrderRequest struct {
	UserID uint               `json:"user_id" binding:"required"`
	Items  []OrderItemRequest `json:"items" binding:"required"`
}

// UpdateOrderStatusRequest represents the order status update body
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// CreateOrder creates an order with line items. Each line item snapshots the
// product's current price; the order total is the sum of price times quantity
// over the items that survived the product lookup. Items referencing unknown
// products are skipped rather than failing the whole order.
func CreateOrder(c *gin.Context) {
	utils.LogInfo("CreateOrder called")

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Order creation failed - invalid request: %v", err)
		utils.BadRequest(c, "Invalid request format", err.Error())
		return
	}

	var user models.User
	if err := config.DB.First(&user, req.UserID).Error; err != nil {
		utils.LogError("Order creation failed - user not found: %d", req.UserID)
		utils.NotFound(c, "User not found")
		return
	}

	if len(req.Items) == 0 {
		utils.LogError("Order creation failed - no items for user %d", req.UserID)
		utils.ValidationError(c, "Order must contain at least one item", nil)
		return
	}

	order := models.Order{
		UserID: req.UserID,
		Status: models.OrderStatusPending,
	}

	var total float64
	var lineItems []models.OrderProduct
	for _, item := range req.Items {
		if item.Quantity <= 0 {
			utils.ValidationError(c, "Quantity must be positive", nil)
			return
		}

		var product models.Product
		if err := config.DB.First(&product, item.ProductID).Error; err != nil {
			utils.LogInfo("Skipping unknown product %d in order for user %d", item.ProductID, req.UserID)
			continue
		}

		lineItems = append(lineItems, models.OrderProduct{
			ProductID:        product.ID,
			Quantity:         item.Quantity,
			PriceAtOrderTime: product.Price,
		})
		total += product.Price * float64(item.Quantity)
	}

	order.TotalAmount = total
	order.OrderProducts = lineItems

	if err := config.DB.Create(&order).Error; err != nil {
		utils.LogError("Failed to create order for user %d: %v", req.UserID, err)
		utils.InternalServerError(c, "Failed to create order", err.Error())
		return
	}

	utils.LogInfo("Order %d created for user %d, total %.2f, %d items",
		order.ID, req.UserID, order.TotalAmount, len(lineItems))
	utils.Created(c, "Order created successfully", gin.H{"order": order})
}

// ListOrders returns a paginated list of all orders
func ListOrders(c *gin.Context) {
	utils.LogInfo("ListOrders called")

	pagination := utils.NewPagination(c)

	var total int64
	if err := config.DB.Model(&models.Order{}).Count(&total).Error; err != nil {
		utils.LogError("Failed to count orders: %v", err)
		utils.InternalServerError(c, "Failed to fetch orders", err.Error())
		return
	}
	pagination.SetTotal(total)

	var orders []models.Order
	if err := config.DB.Preload("OrderProducts").
		Offset(pagination.Offset).Limit(pagination.Limit).
		Order("created_at DESC").Find(&orders).Error; err != nil {
		utils.LogError("Failed to fetch orders: %v", err)
		utils.InternalServerError(c, "Failed to fetch orders", err.Error())
		return
	}

	utils.SendPaginatedResponse(c, orders, pagination)
}

// GetOrder returns a single order with its line items
func GetOrder(c *gin.Context) {
	utils.LogInfo("GetOrder called")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid order ID format", nil)
		return
	}

	var order models.Order
	if err := config.DB.Preload("OrderProducts").First(&order, id).Error; err != nil {
		utils.LogError("Order not found: %d", id)
		utils.NotFound(c, "Order not found")
		return
	}

	utils.Success(c, "Order retrieved successfully", gin.H{"order": order})
}

// ListOrdersByUser returns all orders of a user
func ListOrdersByUser(c *gin.Context) {
	utils.LogInfo("ListOrdersByUser called")

	userID, err := strconv.ParseUint(c.Param("userId"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid user ID format", nil)
		return
	}

	var orders []models.Order
	if err := config.DB.Preload("OrderProducts").
		Where("user_id = ?", userID).Order("created_at DESC").Find(&orders).Error; err != nil {
		utils.LogError("Failed to fetch orders for user %d: %v", userID, err)
		utils.InternalServerError(c, "Failed to fetch orders", err.Error())
		return
	}

	utils.Success(c, "Orders retrieved successfully", gin.H{"orders": orders})
}

// ListOrdersByStatus returns all orders in a given status
func ListOrdersByStatus(c *gin.Context) {
	utils.LogInfo("ListOrdersByStatus called")

	status := strings.ToUpper(c.Param("status"))
	if !models.ValidOrderStatus(status) {
		utils.LogError("Unknown order status requested: %s", status)
		utils.ValidationError(c, "Invalid order status", nil)
		return
	}

	var orders []models.Order
	if err := config.DB.Preload("OrderProducts").
		Where("status = ?", status).Order("created_at DESC").Find(&orders).Error; err != nil {
		utils.LogError("Failed to fetch orders by status %s: %v", status, err)
		utils.InternalServerError(c, "Failed to fetch orders", err.Error())
		return
	}

	utils.Success(c, "Orders retrieved successfully", gin.H{"orders": orders})
}

// UpdateOrderStatus sets an order's status. Any known status is accepted from
// any current status, there is no transition guard.
func UpdateOrderStatus(c *gin.Context) {
	utils.LogInfo("UpdateOrderStatus called")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid order ID format", nil)
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request format", err.Error())
		return
	}

	status := strings.ToUpper(req.Status)
	if !models.ValidOrderStatus(status) {
		utils.LogError("Invalid order status in update request: %s", req.Status)
		utils.ValidationError(c, "Invalid order status", nil)
		return
	}

	var order models.Order
	if err := config.DB.First(&order, id).Error; err != nil {
		utils.LogError("Order not found: %d", id)
		utils.NotFound(c, "Order not found")
		return
	}

	if err := config.DB.Model(&order).Update("status", status).Error; err != nil {
		utils.LogError("Failed to update order %d status: %v", id, err)
		utils.InternalServerError(c, "Failed to update order status", err.Error())
		return
	}

	utils.LogInfo("Order %d status set to %s", id, status)
	utils.Success(c, "Order status updated successfully", gin.H{"order": order})
}

// DeleteOrder removes an order and its line items
func DeleteOrder(c *gin.Context) {
	utils.LogInfo("DeleteOrder called")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid order ID format", nil)
		return
	}

	var order models.Order
	if err := config.DB.First(&order, id).Error; err != nil {
		utils.LogError("Order not found: %d", id)
		utils.NotFound(c, "Order not found")
		return
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderProduct{}).Error; err != nil {
			return err
		}
		return tx.Delete(&order).Error
	})
	if err != nil {
		utils.LogError("Failed to delete order %d: %v", id, err)
		utils.InternalServerError(c, "Failed to delete order", err.Error())
		return
	}

	utils.LogInfo("Order deleted successfully: %d", id)
	utils.Success(c, "Order deleted successfully", nil)
}
