package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/storeapp/storeapi/config"
	"github.com/storeapp/storeapi/models"
	"github.com/storeapp/storeapi/utils"
)

// AuthMiddleware validates the bearer token and loads the user into context
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.LogError("Missing Authorization header")
			utils.Unauthorized(c, "Please login for access")
			c.Abort()
			return
		}

		tokenString := strings.Replace(authHeader, "Bearer ", "", 1)
		if tokenString == authHeader {
			utils.LogError("Invalid Bearer token format")
			utils.Unauthorized(c, "Please login for access")
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(tokenString)
		if err != nil {
			utils.LogError("Invalid token: %v", err)
			utils.Unauthorized(c, "Please login for access")
			c.Abort()
			return
		}

		utils.LogDebug("Authenticating user ID: %d", claims.UserID)

		var user models.User
		if err := config.DB.First(&user, claims.UserID).Error; err != nil {
			utils.LogError("User not found: %v", err)
			utils.Unauthorized(c, "User not found")
			c.Abort()
			return
		}

		c.Set("user", user)
		c.Set("claims", claims)
		utils.LogInfo("User %d authenticated successfully", user.ID)
		c.Next()
	}
}

// RequireRole rejects requests whose token role claim does not match the
// expected role. Roles are the closed set in models, not free-form strings.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !models.ValidRole(role) {
			utils.LogError("RequireRole configured with unknown role: %s", role)
			utils.InternalServerError(c, "Invalid role configuration", nil)
			c.Abort()
			return
		}

		claimsVal, exists := c.Get("claims")
		if !exists {
			utils.LogError("Claims not found in context")
			utils.Unauthorized(c, "Please login for access")
			c.Abort()
			return
		}

		claims, ok := claimsVal.(*utils.TokenClaims)
		if !ok {
			utils.LogError("Invalid claims type in context")
			utils.InternalServerError(c, "Invalid claims type", nil)
			c.Abort()
			return
		}

		if claims.Role != role {
			utils.LogError("User %d with role %s attempted %s-only access", claims.UserID, claims.Role, role)
			utils.Forbidden(c, "Insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}
