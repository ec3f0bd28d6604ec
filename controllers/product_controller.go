package controllers

import (
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/storeapp/storeapi/config"
	"github.com/storeapp/storeapi/models"
	"github.com/storeapp/storeapi/utils"
)

// CreateProduct creates a new product from a multipart form, optionally with
// an image that is stored upright regardless of how the camera wrote it
func CreateProduct(c *gin.Context) {
	utils.LogInfo("CreateProduct called")

	name := c.PostForm("name")
	if name == "" {
		utils.LogError("Product creation failed - name missing")
		utils.BadRequest(c, "Product name is required", nil)
		return
	}

	categoryID, err := strconv.ParseUint(c.PostForm("category_id"), 10, 32)
	if err != nil {
		utils.LogError("Product creation failed - invalid category_id: %v", err)
		utils.BadRequest(c, "Invalid category ID", nil)
		return
	}

	var category models.Category
	if err := config.DB.First(&category, categoryID).Error; err != nil {
		utils.LogError("Product creation failed - category not found: %d", categoryID)
		utils.NotFound(c, "Category not found")
		return
	}

	// Product names are unique inside a category, not globally
	var existing models.Product
	if err := config.DB.Where("name = ? AND category_id = ?", name, categoryID).First(&existing).Error; err == nil {
		utils.LogError("Product creation failed - %q already exists in category %d", name, categoryID)
		utils.Conflict(c, "Product already exists in this category", nil)
		return
	}

	price, err := strconv.ParseFloat(c.DefaultPostForm("price", "0"), 64)
	if err != nil || price < 0 {
		utils.BadRequest(c, "Invalid price", nil)
		return
	}

	discount, err := strconv.ParseFloat(c.DefaultPostForm("discount", "0"), 64)
	if err != nil || discount < 0 {
		utils.BadRequest(c, "Invalid discount", nil)
		return
	}

	quantity, err := strconv.Atoi(c.DefaultPostForm("quantity", "0"))
	if err != nil || quantity < 0 {
		utils.BadRequest(c, "Invalid quantity", nil)
		return
	}

	product := models.Product{
		Name:        name,
		Description: c.PostForm("description"),
		Price:       price,
		Discount:    discount,
		Quantity:    quantity,
		CategoryID:  uint(categoryID),
	}

	if file, err := c.FormFile("image"); err == nil {
		if err := utils.ValidateImageFile(file); err != nil {
			utils.LogError("Product image rejected: %v", err)
			utils.BadRequest(c, err.Error(), nil)
			return
		}
		filename, err := utils.SaveImageWithOrientation(file, config.AppConfig.UploadDir)
		if err != nil {
			utils.LogError("Failed to save product image: %v", err)
			utils.InternalServerError(c, "Failed to save image", err.Error())
			return
		}
		product.Image = filename
	}

	if err := config.DB.Create(&product).Error; err != nil {
		utils.LogError("Failed to create product %s: %v", name, err)
		utils.InternalServerError(c, "Failed to create product", err.Error())
		return
	}

	utils.LogInfo("Product created successfully: %s (ID: %d)", product.Name, product.ID)
	utils.Created(c, "Product created successfully", gin.H{"product": product})
}

// ListProducts returns a paginated product listing, optionally filtered by
// category via the category_id query parameter
func ListProducts(c *gin.Context) {
	utils.LogInfo("ListProducts called")

	pagination := utils.NewPagination(c)

	query := config.DB.Model(&models.Product{}).Preload("Category")
	if categoryID := c.Query("category_id"); categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count products: %v", err)
		utils.InternalServerError(c, "Failed to fetch products", err.Error())
		return
	}
	pagination.SetTotal(total)

	var products []models.Product
	if err := query.Offset(pagination.Offset).Limit(pagination.Limit).Find(&products).Error; err != nil {
		utils.LogError("Failed to fetch products: %v", err)
		utils.InternalServerError(c, "Failed to fetch products", err.Error())
		return
	}

	utils.SendPaginatedResponse(c, products, pagination)
}

// GetProduct returns a single product by id
func GetProduct(c *gin.Context) {
	utils.LogInfo("GetProduct called")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid product ID format", nil)
		return
	}

	var product models.Product
	if err := config.DB.Preload("Category").First(&product, id).Error; err != nil {
		utils.LogError("Product not found: %d", id)
		utils.NotFound(c, "Product not found")
		return
	}

	utils.Success(c, "Product retrieved successfully", gin.H{"product": product})
}

// GetProductImage streams a product's image file
func GetProductImage(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid product ID format", nil)
		return
	}

	var product models.Product
	if err := config.DB.First(&product, id).Error; err != nil {
		utils.NotFound(c, "Product not found")
		return
	}

	if product.Image == "" {
		utils.NotFound(c, "Product has no image")
		return
	}

	c.File(utils.ImagePath(config.AppConfig.UploadDir, product.Image))
}

// GetProductImageByFilename streams a stored image by the filename returned
// at upload time
func GetProductImageByFilename(c *gin.Context) {
	path := utils.ImagePath(config.AppConfig.UploadDir, c.Param("filename"))
	if _, err := os.Stat(path); err != nil {
		utils.LogError("Image file not found: %s", c.Param("filename"))
		utils.NotFound(c, "Image not found")
		return
	}
	c.File(path)
}

// UpdateProduct updates product fields from a multipart form. Absent fields
// keep their current values.
func UpdateProduct(c *gin.Context) {
	utils.LogInfo("UpdateProduct called")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid product ID format", nil)
		return
	}

	var product models.Product
	if err := config.DB.First(&product, id).Error; err != nil {
		utils.LogError("Product not found: %d", id)
		utils.NotFound(c, "Product not found")
		return
	}

	if name := c.PostForm("name"); name != "" {
		product.Name = name
	}
	if description := c.PostForm("description"); description != "" {
		product.Description = description
	}
	if priceStr := c.PostForm("price"); priceStr != "" {
		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil || price < 0 {
			utils.BadRequest(c, "Invalid price", nil)
			return
		}
		product.Price = price
	}
	if discountStr := c.PostForm("discount"); discountStr != "" {
		discount, err := strconv.ParseFloat(discountStr, 64)
		if err != nil || discount < 0 {
			utils.BadRequest(c, "Invalid discount", nil)
			return
		}
		product.Discount = discount
	}
	if quantityStr := c.PostForm("quantity"); quantityStr != "" {
		quantity, err := strconv.Atoi(quantityStr)
		if err != nil || quantity < 0 {
			utils.BadRequest(c, "Invalid quantity", nil)
			return
		}
		product.Quantity = quantity
	}
	if categoryStr := c.PostForm("category_id"); categoryStr != "" {
		categoryID, err := strconv.ParseUint(categoryStr, 10, 32)
		if err != nil {
			utils.BadRequest(c, "Invalid category ID", nil)
			return
		}
		var category models.Category
		if err := config.DB.First(&category, categoryID).Error; err != nil {
			utils.NotFound(c, "Category not found")
			return
		}
		product.CategoryID = uint(categoryID)
	}

	if file, err := c.FormFile("image"); err == nil {
		if err := utils.ValidateImageFile(file); err != nil {
			utils.BadRequest(c, err.Error(), nil)
			return
		}
		filename, err := utils.SaveImageWithOrientation(file, config.AppConfig.UploadDir)
		if err != nil {
			utils.LogError("Failed to save product image: %v", err)
			utils.InternalServerError(c, "Failed to save image", err.Error())
			return
		}
		if product.Image != "" {
			utils.DeleteFile(utils.ImagePath(config.AppConfig.UploadDir, product.Image))
		}
		product.Image = filename
	}

	if err := config.DB.Save(&product).Error; err != nil {
		utils.LogError("Failed to update product %d: %v", id, err)
		utils.InternalServerError(c, "Failed to update product", err.Error())
		return
	}

	utils.LogInfo("Product %d updated successfully", product.ID)
	utils.Success(c, "Product updated successfully", gin.H{"product": product})
}

// DeleteProduct removes a product and its stored image
func DeleteProduct(c *gin.Context) {
	utils.LogInfo("DeleteProduct called")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid product ID format", nil)
		return
	}

	var product models.Product
	if err := config.DB.First(&product, id).Error; err != nil {
		utils.LogError("Product not found: %d", id)
		utils.NotFound(c, "Product not found")
		return
	}

	if err := config.DB.Delete(&product).Error; err != nil {
		utils.LogError("Failed to delete product %d: %v", id, err)
		utils.InternalServerError(c, "Failed to delete product", err.Error())
		return
	}

	if product.Image != "" {
		utils.DeleteFile(utils.ImagePath(config.AppConfig.UploadDir, product.Image))
	}

	utils.LogInfo("Product deleted successfully: %d", id)
	utils.Success(c, "Product deleted successfully", nil)
}
