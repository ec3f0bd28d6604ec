package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/storeapp/storeapi/config"
	"github.com/storeapp/storeapi/models"
	"github.com/storeapp/storeapi/utils"
)

// CreateCommentRequest represents the comment creation request body
type CreateCommentRequest struct {
	Comment string `json:"comment" binding:"required"`
}

// CommentResponse is the shape comments are returned in. The author is
// flattened to a username so clients never see the full user record.
type CommentResponse struct {
	ID       uint   `json:"id"`
	Comment  string `json:"comment"`
	Username string `json:"username"`
}

func toCommentResponse(comment models.Comment, username string) CommentResponse {
	return CommentResponse{
		ID:       comment.ID,
		Comment:  comment.Comment,
		Username: username,
	}
}

// CreateComment adds a comment to a product by the authenticated user
func CreateComment(c *gin.Context) {
	utils.LogInfo("CreateComment called")

	productID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid product ID format", nil)
		return
	}

	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Comment creation failed - invalid request: %v", err)
		utils.BadRequest(c, "Comment text is required", err.Error())
		return
	}

	var product models.Product
	if err := config.DB.First(&product, productID).Error; err != nil {
		utils.LogError("Comment creation failed - product not found: %d", productID)
		utils.NotFound(c, "Product not found")
		return
	}

	user := c.MustGet("user").(models.User)

	comment := models.Comment{
		UserID:    user.ID,
		ProductID: uint(productID),
		Comment:   req.Comment,
	}

	if err := config.DB.Create(&comment).Error; err != nil {
		utils.LogError("Failed to create comment: %v", err)
		utils.InternalServerError(c, "Failed to create comment", err.Error())
		return
	}

	utils.LogInfo("Comment %d created on product %d by user %d", comment.ID, productID, user.ID)
	utils.Created(c, "Comment added successfully", gin.H{
		"comment": toCommentResponse(comment, user.Username),
	})
}

// ListProductComments returns all comments on a product
func ListProductComments(c *gin.Context) {
	utils.LogInfo("ListProductComments called")

	productID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid product ID format", nil)
		return
	}

	var product models.Product
	if err := config.DB.First(&product, productID).Error; err != nil {
		utils.NotFound(c, "Product not found")
		return
	}

	var comments []models.Comment
	if err := config.DB.Preload("User").Where("product_id = ?", productID).Find(&comments).Error; err != nil {
		utils.LogError("Failed to fetch comments for product %d: %v", productID, err)
		utils.InternalServerError(c, "Failed to fetch comments", err.Error())
		return
	}

	if len(comments) == 0 {
		utils.LogInfo("No comments on product %d", productID)
		utils.NotFound(c, "No comments found for this product")
		return
	}

	responses := make([]CommentResponse, 0, len(comments))
	for _, comment := range comments {
		responses = append(responses, toCommentResponse(comment, comment.User.Username))
	}

	utils.Success(c, "Comments retrieved successfully", gin.H{"comments": responses})
}

// DeleteComment removes a comment. Users can delete their own comments,
// admins can delete any.
func DeleteComment(c *gin.Context) {
	utils.LogInfo("DeleteComment called")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid comment ID format", nil)
		return
	}

	var comment models.Comment
	if err := config.DB.First(&comment, id).Error; err != nil {
		utils.LogError("Comment not found: %d", id)
		utils.NotFound(c, "Comment not found")
		return
	}

	user := c.MustGet("user").(models.User)
	if comment.UserID != user.ID && user.Role != models.RoleAdmin {
		utils.LogError("User %d attempted to delete comment %d owned by user %d", user.ID, id, comment.UserID)
		utils.Forbidden(c, "You can only delete your own comments")
		return
	}

	if err := config.DB.Delete(&comment).Error; err != nil {
		utils.LogError("Failed to delete comment %d: %v", id, err)
		utils.InternalServerError(c, "Failed to delete comment", err.Error())
		return
	}

	utils.LogInfo("Comment deleted successfully: %d", id)
	utils.Success(c, "Comment deleted successfully", nil)
}
