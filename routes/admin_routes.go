package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/storeapp/storeapi/controllers"
	"github.com/storeapp/storeapi/middleware"
	"github.com/storeapp/storeapi/models"
)

// initAdminRoutes initializes the admin-only routes
func initAdminRoutes(router *gin.RouterGroup) {
	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole(models.RoleAdmin))
	{
		// User management
		admin.GET("/users", controllers.ListUsers)
		admin.GET("/users/:id", controllers.GetUser)
		admin.PUT("/users", controllers.UpdateUser)
		admin.DELETE("/users/:id", controllers.DeleteUser)

		// Category management
		admin.POST("/categories", controllers.CreateCategory)
		admin.PUT("/categories/:id", controllers.UpdateCategory)
		admin.DELETE("/categories/:id", controllers.DeleteCategory)

		// Product management
		admin.POST("/products", controllers.CreateProduct)
		admin.PUT("/products/:id", controllers.UpdateProduct)
		admin.DELETE("/products/:id", controllers.DeleteProduct)

		// Contact message management
		admin.GET("/messages", controllers.ListMessages)
		admin.GET("/messages/status/:status", controllers.ListMessagesByStatus)
		admin.PATCH("/messages/:id/approve", controllers.ApproveMessage)
		admin.DELETE("/messages/:id", controllers.DeleteMessage)

		// Order management
		admin.GET("/orders", controllers.ListOrders)
		admin.GET("/orders/status/:status", controllers.ListOrdersByStatus)

		// Reports
		admin.GET("/reports/orders", controllers.GetOrdersReport)
	}
}
