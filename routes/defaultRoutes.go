package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/vasthra/vasthra-api/controllers"
)

func DefaultRoutes(server *gin.Engine, home *controllers.DefaultController) {
	server.GET("/", home.GetHome)
	server.GET("/testdb", home.TestDB)
}
