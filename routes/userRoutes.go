package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/vasthra/vasthra-api/controllers"
)

func UserRoutes(server *gin.Engine, auth *controllers.AuthController, users *controllers.UserController, requireAuth, rateLimit gin.HandlerFunc) {
	group := server.Group("/api/users")
	{
		group.POST("/register", rateLimit, auth.Register)
		group.POST("/login", rateLimit, auth.Login)
		group.POST("/logout", auth.Logout)
	}

	private := group.Group("", requireAuth)
	{
		private.GET("/me", users.Me)
		private.PUT("/me", users.UpdateMe)
		private.PUT("/update-password", users.UpdatePassword)
		private.GET("/addresses", users.ListAddresses)
		private.POST("/addresses", users.AddAddress)
		private.PUT("/addresses/:id", users.UpdateAddress)
		private.DELETE("/addresses/:id", users.DeleteAddress)
	}
}
