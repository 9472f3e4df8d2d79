package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/vasthra/vasthra-api/controllers"
	"github.com/vasthra/vasthra-api/middlewares"
)

func SellerRoutes(server *gin.Engine, sellers *controllers.SellerController, requireAuth gin.HandlerFunc) {
	group := server.Group("/api/sellers", requireAuth, middlewares.RequireSeller())
	{
		group.POST("/addProducts", sellers.AddProduct)
		group.GET("/products", sellers.GetProducts)
		group.GET("/products/search", sellers.SearchProducts)
		group.PUT("/products/:id", sellers.UpdateProduct)
		group.DELETE("/products/:id", sellers.DeleteProduct)
		group.POST("/products/:id/image", sellers.UploadProductImage)
	}
}
