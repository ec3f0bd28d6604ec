package controllers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/storeapp/storeapi/config"
	"github.com/storeapp/storeapi/models"
	"github.com/storeapp/storeapi/utils"
)

// CreateMessageRequest represents the contact-form request body
type CreateMessageRequest struct {
	FirstName   string `json:"first_name" binding:"required"`
	LastName    string `json:"last_name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	PhoneNumber string `json:"phone_number"`
	Title       string `json:"title" binding:"required"`
	Message     string `json:"message" binding:"required"`
}

// CreateMessage stores a contact-form message and notifies the shop inbox.
// The email is best effort, a dead SMTP server never fails the request.
func CreateMessage(c *gin.Context) {
	utils.LogInfo("CreateMessage called")

	var req CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Message creation failed - invalid request: %v", err)
		utils.BadRequest(c, "Invalid request format", err.Error())
		return
	}

	message := models.Message{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Title:       req.Title,
		Message:     req.Message,
		Status:      models.MessageStatusPending,
	}

	if err := config.DB.Create(&message).Error; err != nil {
		utils.LogError("Failed to create message: %v", err)
		utils.InternalServerError(c, "Failed to create message", err.Error())
		return
	}

	go func() {
		if err := utils.SendContactNotification(req.FirstName+" "+req.LastName, req.Email, req.Title, req.Message); err != nil {
			utils.LogError("Failed to send contact notification for message %d: %v", message.ID, err)
		}
	}()

	utils.LogInfo("Message created successfully: %d", message.ID)
	utils.Created(c, "Message sent successfully", gin.H{"message_id": message.ID})
}

// ListMessages returns all contact messages
func ListMessages(c *gin.Context) {
	utils.LogInfo("ListMessages called")

	var messages []models.Message
	if err := config.DB.Order("created_at DESC").Find(&messages).Error; err != nil {
		utils.LogError("Failed to fetch messages: %v", err)
		utils.InternalServerError(c, "Failed to fetch messages", err.Error())
		return
	}

	utils.Success(c, "Messages retrieved successfully", gin.H{"messages": messages})
}

// ListMessagesByStatus returns contact messages with the given status. The
// status path parameter is matched case-insensitively.
func ListMessagesByStatus(c *gin.Context) {
	utils.LogInfo("ListMessagesByStatus called")

	status := strings.ToUpper(c.Param("status"))
	if status != models.MessageStatusPending && status != models.MessageStatusApproved {
		utils.LogError("Unknown message status requested: %s", status)
		utils.BadRequest(c, "Invalid message status", nil)
		return
	}

	var messages []models.Message
	if err := config.DB.Where("status = ?", status).Order("created_at DESC").Find(&messages).Error; err != nil {
		utils.LogError("Failed to fetch messages by status %s: %v", status, err)
		utils.InternalServerError(c, "Failed to fetch messages", err.Error())
		return
	}

	utils.Success(c, "Messages retrieved successfully", gin.H{"messages": messages})
}

// ApproveMessage marks a contact message as handled
func ApproveMessage(c *gin.Context) {
	utils.LogInfo("ApproveMessage called")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid message ID format", nil)
		return
	}

	var message models.Message
	if err := config.DB.First(&message, id).Error; err != nil {
		utils.LogError("Message not found: %d", id)
		utils.NotFound(c, "Message not found")
		return
	}

	if err := config.DB.Model(&message).Update("status", models.MessageStatusApproved).Error; err != nil {
		utils.LogError("Failed to approve message %d: %v", id, err)
		utils.InternalServerError(c, "Failed to approve message", err.Error())
		return
	}

	utils.LogInfo("Message approved successfully: %d", id)
	utils.Success(c, "Message approved successfully", gin.H{"message": message})
}

// DeleteMessage removes a contact message
func DeleteMessage(c *gin.Context) {
	utils.LogInfo("DeleteMessage called")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid message ID format", nil)
		return
	}

	var message models.Message
	if err := config.DB.First(&message, id).Error; err != nil {
		utils.LogError("Message not found: %d", id)
		utils.NotFound(c, "Message not found")
		return
	}

	if err := config.DB.Delete(&message).Error; err != nil {
		utils.LogError("Failed to delete message %d: %v", id, err)
		utils.InternalServerError(c, "Failed to delete message", err.Error())
		return
	}

	utils.LogInfo("Message deleted successfully: %d", id)
	utils.Success(c, "Message deleted successfully", nil)
}
