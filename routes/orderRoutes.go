package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/vasthra/vasthra-api/controllers"
)

func OrderRoutes(server *gin.Engine, orders *controllers.OrderController, requireAuth gin.HandlerFunc) {
	group := server.Group("/api/order", requireAuth)
	{
		group.POST("/placeOrder", orders.PlaceOrder)
		group.GET("/getOrders", orders.GetOrders)
		group.GET("/getOrder/:orderId", orders.GetOrder)
	}
}
