package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vasthra/vasthra-api/logger"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type DefaultController struct {
	db Pinger
}

func NewDefaultController(db Pinger) *DefaultController {
	return &DefaultController{db: db}
}

func (c *DefaultController) GetHome(ctx *gin.Context) {
	message := `Vasthra API is running...

USERS
- POST "/api/users/register" - Create an account
- POST "/api/users/login" - Sign in
- GET "/api/users/me" - Profile and addresses

PRODUCTS
- GET "/api/products" - Products in stock
- GET "/api/products/categories" - Categories
- GET "/api/products/:id" - Product by ID

CART
- GET "/api/cart/getCartItems" - Cart contents
- POST "/api/cart/addItem" - Add to cart

ORDER
- POST "/api/order/placeOrder" - Place an order
- GET "/api/order/getOrders" - Order history

SELLERS
- POST "/api/sellers/addProducts" - Create a product
- GET "/api/sellers/products" - Own products`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}

// TestDB reports whether the database answers a trivial query.
func (c *DefaultController) TestDB(ctx *gin.Context) {
	if err := c.db.Ping(ctx.Request.Context()); err != nil {
		logger.Error(ctx.Request.Context(), "Test DB error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Test DB error", "code": "db_unavailable"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "message": "Connection successful"})
}
