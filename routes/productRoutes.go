package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/vasthra/vasthra-api/controllers"
)

func ProductRoutes(server *gin.Engine, products *controllers.ProductController) {
	group := server.Group("/api/products")
	{
		group.GET("", products.GetProducts)
		group.GET("/categories", products.GetCategories)
		group.GET("/category/:id", products.GetProductsByCategory)
		group.GET("/:id", products.GetProduct)
	}
}
