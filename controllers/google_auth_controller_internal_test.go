package controllers

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/storeapp/storeapi/config"
	"github.com/storeapp/storeapi/models"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestFindOrProvisionGoogleUser(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file:google-provision?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, config.MigrateModels(db))
	config.DB = db

	// Short ids must provision fine, nothing is derived from the id's bytes
	info := googleUserInfo{ID: "7", Email: "short@example.com"}

	user, err := findOrProvisionGoogleUser(info)
	require.NoError(t, err)
	require.Equal(t, models.RoleUser, user.Role)
	require.Equal(t, "short@example.com", user.Username)
	require.NotEmpty(t, user.Password)

	// Second login finds the same account instead of creating another
	again, err := findOrProvisionGoogleUser(info)
	require.NoError(t, err)
	require.Equal(t, user.ID, again.ID)

	var count int64
	config.DB.Model(&models.User{}).Count(&count)
	require.EqualValues(t, 1, count)
}
