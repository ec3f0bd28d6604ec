package controllers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/storeapp/storeapi/config"
	"github.com/storeapp/storeapi/models"
	"github.com/storeapp/storeapi/utils"
)

type googleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
}

// findOrProvisionGoogleUser returns the account linked to the Google id,
// creating a regular USER on first login. The random password is never shown
// to anyone; Google users log in via OAuth.
func findOrProvisionGoogleUser(info googleUserInfo) (models.User, error) {
	var user models.User
	if err := config.DB.Where("google_id = ?", info.ID).First(&user).Error; err == nil {
		return user, nil
	}

	hashed, err := utils.HashPassword(uuid.NewString())
	if err != nil {
		return models.User{}, err
	}

	user = models.User{
		Username: info.Email,
		Password: hashed,
		Role:     models.RoleUser,
		GoogleID: info.ID,
	}

	if err := config.DB.Create(&user).Error; err != nil {
		return models.User{}, err
	}

	utils.LogInfo("Provisioned new user %d via Google login", user.ID)
	return user, nil
}

// GoogleLogin redirects the client to Google's consent page
func GoogleLogin(c *gin.Context) {
	url := config.GoogleOAuthConfig.AuthCodeURL("state")
	c.Redirect(http.StatusTemporaryRedirect, url)
}

// GoogleCallback exchanges the OAuth code, provisions a USER account on first
// login and redirects back to the frontend with a signed token
func GoogleCallback(c *gin.Context) {
	utils.LogInfo("GoogleCallback called")

	code := c.Query("code")
	if code == "" {
		utils.BadRequest(c, "No code provided", nil)
		return
	}

	token, err := config.GoogleOAuthConfig.Exchange(c, code)
	if err != nil {
		utils.LogError("Failed to exchange OAuth code: %v", err)
		utils.InternalServerError(c, "Failed to exchange token", err.Error())
		return
	}

	resp, err := http.Get("https://www.googleapis.com/oauth2/v2/userinfo?access_token=" + token.AccessToken)
	if err != nil {
		utils.LogError("Failed to fetch Google user info: %v", err)
		utils.InternalServerError(c, "Failed to get user info", err.Error())
		return
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		utils.InternalServerError(c, "Failed to read response", err.Error())
		return
	}

	var googleUser googleUserInfo
	if err := json.Unmarshal(data, &googleUser); err != nil {
		utils.InternalServerError(c, "Failed to parse user info", err.Error())
		return
	}

	user, err := findOrProvisionGoogleUser(googleUser)
	if err != nil {
		utils.LogError("Failed to provision Google user: %v", err)
		utils.InternalServerError(c, "Failed to create user", err.Error())
		return
	}

	tokenString, err := utils.GenerateToken(&user)
	if err != nil {
		utils.InternalServerError(c, "Failed to generate token", err.Error())
		return
	}

	redirectURL := fmt.Sprintf("%s?token=%s&user=%s",
		os.Getenv("FRONTEND_URL"),
		url.QueryEscape(tokenString),
		url.QueryEscape(fmt.Sprintf(`{"id":%d,"username":"%s","role":"%s"}`,
			user.ID, user.Username, user.Role)))

	c.Redirect(http.StatusTemporaryRedirect, redirectURL)
}
