package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/vasthra/vasthra-api/controllers"
)

func CartRoutes(server *gin.Engine, carts *controllers.CartController, requireAuth gin.HandlerFunc) {
	group := server.Group("/api/cart", requireAuth)
	{
		group.GET("/getCartItems", carts.GetCartItems)
		group.POST("/addItem", carts.AddItem)
		group.PUT("/updateItem", carts.UpdateItem)
		group.DELETE("/removeItem/:productId", carts.RemoveItem)
		group.DELETE("/clearCart", carts.ClearCart)
	}
}
