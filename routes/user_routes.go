package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/storeapp/storeapi/controllers"
	"github.com/storeapp/storeapi/middleware"
)

// initUserRoutes initializes the public and user-facing routes
func initUserRoutes(router *gin.RouterGroup) {
	// Public catalog routes
	router.GET("/categories", controllers.ListCategories)
	router.GET("/categories/:id", controllers.GetCategory)
	router.GET("/categories/:id/image", controllers.GetCategoryImage)
	router.GET("/categories/images/:filename", controllers.GetCategoryImageByFilename)
	router.GET("/products", controllers.ListProducts)
	router.GET("/products/:id", controllers.GetProduct)
	router.GET("/products/:id/image", controllers.GetProductImage)
	router.GET("/products/images/:filename", controllers.GetProductImageByFilename)
	router.GET("/products/:id/comments", controllers.ListProductComments)

	// Contact form is open to anonymous visitors
	router.POST("/messages", controllers.CreateMessage)

	// Protected routes (require authentication)
	protected := router.Group("")
	protected.Use(middleware.AuthMiddleware())
	{
		// Comments
		protected.POST("/products/:id/comments", controllers.CreateComment)
		protected.DELETE("/comments/:id", controllers.DeleteComment)

		// Shopping cart
		protected.POST("/carts", controllers.CreateCart)
		protected.GET("/carts/user/:userId", controllers.GetCartByUser)
		protected.DELETE("/carts/:id", controllers.DeleteCart)

		// Cart items
		protected.POST("/cart-items", controllers.AddCartItem)
		protected.GET("/cart-items/cart/:cartId", controllers.ListCartItems)
		protected.PUT("/cart-items/:id", controllers.UpdateCartItem)
		protected.DELETE("/cart-items/:id", controllers.RemoveCartItem)

		// Wishlist
		protected.POST("/wishlist", controllers.AddToWishlist)
		protected.GET("/wishlist/user/:userId", controllers.GetWishlistByUser)
		protected.DELETE("/wishlist/:id", controllers.RemoveFromWishlist)

		// Orders
		protected.POST("/orders", controllers.CreateOrder)
		protected.GET("/orders/:id", controllers.GetOrder)
		protected.GET("/orders/:id/invoice", controllers.GetOrderInvoice)
		protected.GET("/orders/user/:userId", controllers.ListOrdersByUser)
		protected.PUT("/orders/:id/status", controllers.UpdateOrderStatus)
		protected.DELETE("/orders/:id", controllers.DeleteOrder)

		// Order line items
		protected.POST("/order-products", controllers.AddOrderProduct)
		protected.DELETE("/order-products/:id", controllers.RemoveOrderProduct)

		// Payments
		protected.POST("/payments/request", controllers.RequestPayment)
		protected.POST("/payments/verify", controllers.VerifyPayment)
		protected.GET("/payments/:id", controllers.GetPayment)
		protected.GET("/payments/order/:orderId", controllers.GetPaymentByOrder)
	}
}
