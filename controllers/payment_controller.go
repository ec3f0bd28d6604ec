package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/storeapp/storeapi/config"
	"github.com/storeapp/storeapi/gateway"
	"github.com/storeapp/storeapi/models"
	"github.com/storeapp/storeapi/utils"
	"gorm.io/gorm"
)

// PaymentGateway is the gateway client used by the payment handlers. It is
// constructed in main from the loaded config; tests point it at a stub server.
var PaymentGateway *gateway.Client

// InitGateway builds the payment gateway client from configuration
func InitGateway(cfg *config.Config) {
	PaymentGateway = gateway.NewClient(cfg.GatewayBaseURL, cfg.GatewayMerchantID)
}

// PaymentRequestBody represents the payment initiation request
type PaymentRequestBody struct {
	OrderID     uint    `json:"order_id" binding:"required"`
	Amount      float64 `json:"amount" binding:"required"`
	Description string  `json:"description"`
	CallbackURL string  `json:"callback_url"`
}

// PaymentVerifyBody represents the payment verification request
type PaymentVerifyBody struct {
	Authority string  `json:"authority" binding:"required"`
	Amount    float64 `json:"amount" binding:"required"`
}

// RequestPayment asks the gateway to open a transaction for an order. Only an
// accepted gateway response (code 100 with an authority token) persists a
// Payment row; rejections pass the gateway's answer through untouched.
func RequestPayment(c *gin.Context) {
	utils.LogInfo("RequestPayment called")

	var req PaymentRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Payment request failed - invalid body: %v", err)
		utils.BadRequest(c, "Invalid request format", err.Error())
		return
	}

	// The order must exist before anything leaves the process
	var order models.Order
	if err := config.DB.First(&order, req.OrderID).Error; err != nil {
		utils.LogError("Payment request failed - order not found: %d", req.OrderID)
		utils.NotFound(c, "Order not found")
		return
	}

	callbackURL := req.CallbackURL
	if callbackURL == "" {
		callbackURL = config.AppConfig.GatewayCallbackURL
	}

	utils.LogInfo("Requesting gateway transaction for order %d, amount %.2f", order.ID, req.Amount)
	resp, err := PaymentGateway.Request(c.Request.Context(), gateway.PaymentRequest{
		Amount:      int64(req.Amount),
		Description: req.Description,
		CallbackURL: callbackURL,
		Metadata:    map[string]string{"order_id": strconv.FormatUint(uint64(order.ID), 10)},
	})
	if err != nil {
		utils.LogError("Gateway request failed for order %d: %v", order.ID, err)
		utils.UpstreamError(c, "Payment gateway unreachable", err.Error())
		return
	}

	if resp.Data.Code != gateway.CodeSuccess || resp.Data.Authority == "" {
		utils.LogError("Gateway rejected payment for order %d: code=%d message=%s",
			order.ID, resp.Data.Code, resp.Data.Message)
		utils.Success(c, "Payment request rejected by gateway", gin.H{"gateway": resp})
		return
	}

	payment := models.Payment{
		OrderID:    order.ID,
		Amount:     req.Amount,
		Status:     models.PaymentStatusInitiated,
		MerchantID: PaymentGateway.MerchantID,
		Authority:  resp.Data.Authority,
	}

	if err := config.DB.Create(&payment).Error; err != nil {
		utils.LogError("Failed to persist payment for order %d: %v", order.ID, err)
		utils.InternalServerError(c, "Failed to save payment", err.Error())
		return
	}

	utils.LogInfo("Payment %d initiated for order %d, authority %s", payment.ID, order.ID, payment.Authority)
	utils.Created(c, "Payment initiated successfully", gin.H{
		"payment": payment,
		"gateway": resp,
	})
}

// VerifyPayment settles a transaction with the gateway and reconciles the
// local records. Codes 100 and 101 both count as success: the payment goes to
// SUCCESS and its order to PAID in one transaction. Any other code marks the
// payment FAILED and leaves the order alone. When no payment matches the
// authority, the gateway's answer is returned and nothing is mutated.
func VerifyPayment(c *gin.Context) {
	utils.LogInfo("VerifyPayment called")

	var req PaymentVerifyBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Payment verify failed - invalid body: %v", err)
		utils.BadRequest(c, "Invalid request format", err.Error())
		return
	}

	utils.LogInfo("Verifying payment with authority %s", req.Authority)
	resp, err := PaymentGateway.Verify(c.Request.Context(), gateway.VerifyRequest{
		Amount:    int64(req.Amount),
		Authority: req.Authority,
	})
	if err != nil {
		utils.LogError("Gateway verify failed for authority %s: %v", req.Authority, err)
		utils.UpstreamError(c, "Payment gateway unreachable", err.Error())
		return
	}

	var payment models.Payment
	if err := config.DB.Where("authority = ?", req.Authority).First(&payment).Error; err != nil {
		utils.LogInfo("No payment on record for authority %s, passing gateway response through", req.Authority)
		utils.Success(c, "No payment on record for this authority", gin.H{"gateway": resp})
		return
	}

	verified := resp.Data.Code == gateway.CodeSuccess || resp.Data.Code == gateway.CodeAlreadyVerified

	if verified {
		err = config.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Model(&payment).Update("status", models.PaymentStatusSuccess).Error; err != nil {
				return err
			}
			return tx.Model(&models.Order{}).Where("id = ?", payment.OrderID).
				Update("status", models.OrderStatusPaid).Error
		})
		if err != nil {
			utils.LogError("Failed to reconcile payment %d: %v", payment.ID, err)
			utils.InternalServerError(c, "Failed to update payment", err.Error())
			return
		}
		payment.Status = models.PaymentStatusSuccess

		utils.LogInfo("Payment %d verified, order %d marked paid (ref_id %d)", payment.ID, payment.OrderID, resp.Data.RefID)
		utils.Success(c, "Payment verified successfully", gin.H{
			"payment": payment,
			"gateway": resp,
		})
		return
	}

	// Only a pending payment can fail, a terminal status is never reversed
	if payment.Status == models.PaymentStatusInitiated {
		if err := config.DB.Model(&payment).Update("status", models.PaymentStatusFailed).Error; err != nil {
			utils.LogError("Failed to mark payment %d failed: %v", payment.ID, err)
			utils.InternalServerError(c, "Failed to update payment", err.Error())
			return
		}
		payment.Status = models.PaymentStatusFailed
	}

	utils.LogInfo("Payment %d failed verification: code=%d message=%s", payment.ID, resp.Data.Code, resp.Data.Message)
	utils.Success(c, "Payment verification failed", gin.H{
		"payment": payment,
		"gateway": resp,
	})
}

// GetPayment returns a payment by id
func GetPayment(c *gin.Context) {
	utils.LogInfo("GetPayment called")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid payment ID format", nil)
		return
	}

	var payment models.Payment
	if err := config.DB.First(&payment, id).Error; err != nil {
		utils.LogError("Payment not found: %d", id)
		utils.NotFound(c, "Payment not found")
		return
	}

	utils.Success(c, "Payment retrieved successfully", gin.H{"payment": payment})
}

// GetPaymentByOrder returns the payments recorded for an order
func GetPaymentByOrder(c *gin.Context) {
	utils.LogInfo("GetPaymentByOrder called")

	orderID, err := strconv.ParseUint(c.Param("orderId"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid order ID format", nil)
		return
	}

	var payments []models.Payment
	if err := config.DB.Where("order_id = ?", orderID).Order("created_at DESC").Find(&payments).Error; err != nil {
		utils.LogError("Failed to fetch payments for order %d: %v", orderID, err)
		utils.InternalServerError(c, "Failed to fetch payments", err.Error())
		return
	}

	if len(payments) == 0 {
		utils.NotFound(c, "No payments found for this order")
		return
	}

	utils.Success(c, "Payments retrieved successfully", gin.H{"payments": payments})
}
