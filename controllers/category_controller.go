package controllers

import (
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/storeapp/storeapi/config"
	"github.com/storeapp/storeapi/models"
	"github.com/storeapp/storeapi/utils"
)

// CreateCategory creates a new category, optionally with an image
func CreateCategory(c *gin.Context) {
	utils.LogInfo("CreateCategory called")

	name := c.PostForm("name")
	if name == "" {
		utils.LogError("Category creation failed - name missing")
		utils.BadRequest(c, "Category name is required", nil)
		return
	}

	var existing models.Category
	if err := config.DB.Where("name = ?", name).First(&existing).Error; err == nil {
		utils.LogError("Category creation failed - name already taken: %s", name)
		utils.Conflict(c, "Category already exists", nil)
		return
	}

	category := models.Category{Name: name}

	if file, err := c.FormFile("image"); err == nil {
		if err := utils.ValidateImageFile(file); err != nil {
			utils.LogError("Category image rejected: %v", err)
			utils.BadRequest(c, err.Error(), nil)
			return
		}
		filename, err := utils.SaveImageWithOrientation(file, config.AppConfig.UploadDir)
		if err != nil {
			utils.LogError("Failed to save category image: %v", err)
			utils.InternalServerError(c, "Failed to save image", err.Error())
			return
		}
		category.Image = filename
	}

	if err := config.DB.Create(&category).Error; err != nil {
		utils.LogError("Failed to create category %s: %v", name, err)
		utils.InternalServerError(c, "Failed to create category", err.Error())
		return
	}

	utils.LogInfo("Category created successfully: %s (ID: %d)", category.Name, category.ID)
	utils.Created(c, "Category created successfully", gin.H{"category": category})
}

// ListCategories returns all categories
func ListCategories(c *gin.Context) {
	utils.LogInfo("ListCategories called")

	var categories []models.Category
	if err := config.DB.Find(&categories).Error; err != nil {
		utils.LogError("Failed to fetch categories: %v", err)
		utils.InternalServerError(c, "Failed to fetch categories", err.Error())
		return
	}

	utils.Success(c, "Categories retrieved successfully", gin.H{"categories": categories})
}

// GetCategory returns a single category with its products
func GetCategory(c *gin.Context) {
	utils.LogInfo("GetCategory called")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid category ID format", nil)
		return
	}

	var category models.Category
	if err := config.DB.Preload("Products").First(&category, id).Error; err != nil {
		utils.LogError("Category not found: %d", id)
		utils.NotFound(c, "Category not found")
		return
	}

	utils.Success(c, "Category retrieved successfully", gin.H{"category": category})
}

// GetCategoryImage streams a category's image file
func GetCategoryImage(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid category ID format", nil)
		return
	}

	var category models.Category
	if err := config.DB.First(&category, id).Error; err != nil {
		utils.NotFound(c, "Category not found")
		return
	}

	if category.Image == "" {
		utils.NotFound(c, "Category has no image")
		return
	}

	c.File(utils.ImagePath(config.AppConfig.UploadDir, category.Image))
}

// GetCategoryImageByFilename streams a stored image by the filename returned
// at upload time
func GetCategoryImageByFilename(c *gin.Context) {
	path := utils.ImagePath(config.AppConfig.UploadDir, c.Param("filename"))
	if _, err := os.Stat(path); err != nil {
		utils.LogError("Image file not found: %s", c.Param("filename"))
		utils.NotFound(c, "Image not found")
		return
	}
	c.File(path)
}

// UpdateCategory renames a category and optionally replaces its image
func UpdateCategory(c *gin.Context) {
	utils.LogInfo("UpdateCategory called")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid category ID format", nil)
		return
	}

	var category models.Category
	if err := config.DB.First(&category, id).Error; err != nil {
		utils.LogError("Category not found: %d", id)
		utils.NotFound(c, "Category not found")
		return
	}

	if name := c.PostForm("name"); name != "" && name != category.Name {
		var existing models.Category
		if err := config.DB.Where("name = ? AND id != ?", name, id).First(&existing).Error; err == nil {
			utils.Conflict(c, "Category already exists", nil)
			return
		}
		category.Name = name
	}

	if file, err := c.FormFile("image"); err == nil {
		if err := utils.ValidateImageFile(file); err != nil {
			utils.BadRequest(c, err.Error(), nil)
			return
		}
		filename, err := utils.SaveImageWithOrientation(file, config.AppConfig.UploadDir)
		if err != nil {
			utils.LogError("Failed to save category image: %v", err)
			utils.InternalServerError(c, "Failed to save image", err.Error())
			return
		}
		if category.Image != "" {
			utils.DeleteFile(utils.ImagePath(config.AppConfig.UploadDir, category.Image))
		}
		category.Image = filename
	}

	if err := config.DB.Save(&category).Error; err != nil {
		utils.LogError("Failed to update category %d: %v", id, err)
		utils.InternalServerError(c, "Failed to update category", err.Error())
		return
	}

	utils.LogInfo("Category %d updated successfully", category.ID)
	utils.Success(c, "Category updated successfully", gin.H{"category": category})
}

// DeleteCategory removes a category. Deleting an id that does not exist
// reports not found rather than silently succeeding.
func DeleteCategory(c *gin.Context) {
	utils.LogInfo("DeleteCategory called")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid category ID format", nil)
		return
	}

	var category models.Category
	if err := config.DB.First(&category, id).Error; err != nil {
		utils.LogError("Category not found: %d", id)
		utils.NotFound(c, "Category not found")
		return
	}

	if err := config.DB.Delete(&category).Error; err != nil {
		utils.LogError("Failed to delete category %d: %v", id, err)
		utils.InternalServerError(c, "Failed to delete category", err.Error())
		return
	}

	if category.Image != "" {
		utils.DeleteFile(utils.ImagePath(config.AppConfig.UploadDir, category.Image))
	}

	utils.LogInfo("Category deleted successfully: %d", id)
	utils.Success(c, "Category deleted successfully", nil)
}
