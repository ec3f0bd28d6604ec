package controllers

import (
	"os"

	"github.com/storeapp/storeapi/config"
	"github.com/storeapp/storeapi/models"
	"github.com/storeapp/storeapi/utils"
)

// CreateDefaultAdmin seeds an ADMIN account from ADMIN_USERNAME and
// ADMIN_PASSWORD. Admins cannot self-register, so this is the only way an
// admin account comes into existence. A no-op when the variables are unset or
// the account already exists.
func CreateDefaultAdmin() error {
	username := os.Getenv("ADMIN_USERNAME")
	password := os.Getenv("ADMIN_PASSWORD")
	if username == "" || password == "" {
		utils.LogInfo("No default admin configured, skipping seed")
		return nil
	}

	var existing models.User
	if err := config.DB.Where("username = ?", username).First(&existing).Error; err == nil {
		utils.LogInfo("Default admin already exists: %s", username)
		return nil
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	admin := models.User{
		Username: username,
		Password: hashed,
		Role:     models.RoleAdmin,
	}

	if err := config.DB.Create(&admin).Error; err != nil {
		return err
	}

	utils.LogInfo("Default admin created: %s (ID: %d)", admin.Username, admin.ID)
	return nil
}
