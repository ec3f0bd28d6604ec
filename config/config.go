package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"gorm.io/gorm"
)

var DB *gorm.DB

// AppConfig is the loaded application configuration, set by LoadConfig
var AppConfig *Config

// GoogleOAuthConfig is the OAuth2 config used by the Google login flow
var GoogleOAuthConfig *oauth2.Config

// Config holds all configuration for the application
type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	JWTSecret  string
	Port       string
	Env        string

	UploadDir string

	// Payment gateway settings
	GatewayBaseURL     string
	GatewayMerchantID  string
	GatewayCallbackURL string

	// SMTP settings for contact-message notifications
	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string
	ContactEmail string

	FrontendURL string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		return nil, fmt.Errorf("error loading .env file: %v", err)
	}

	config := &Config{
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		JWTSecret:  os.Getenv("JWT_SECRET"),
		Port:       os.Getenv("PORT"),
		Env:        os.Getenv("ENV"),

		UploadDir: os.Getenv("UPLOAD_DIR"),

		GatewayBaseURL:     os.Getenv("GATEWAY_BASE_URL"),
		GatewayMerchantID:  os.Getenv("GATEWAY_MERCHANT_ID"),
		GatewayCallbackURL: os.Getenv("GATEWAY_CALLBACK_URL"),

		SMTPHost:     os.Getenv("SMTP_HOST"),
		SMTPPort:     os.Getenv("SMTP_PORT"),
		SMTPUsername: os.Getenv("SMTP_USERNAME"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		SMTPFrom:     os.Getenv("SMTP_FROM"),
		ContactEmail: os.Getenv("CONTACT_EMAIL"),

		FrontendURL: os.Getenv("FRONTEND_URL"),
	}

	if config.UploadDir == "" {
		config.UploadDir = "upload"
	}
	if config.GatewayBaseURL == "" {
		config.GatewayBaseURL = "https://sandbox.zarinpal.com/pg/v4"
	}

	AppConfig = config
	return config, nil
}

// InitGoogleOAuth initializes the Google OAuth2 configuration
func InitGoogleOAuth() {
	GoogleOAuthConfig = &oauth2.Config{
		ClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		ClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		RedirectURL:  os.Getenv("GOOGLE_REDIRECT_URL"),
		Scopes: []string{
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint: google.Endpoint,
	}
}
