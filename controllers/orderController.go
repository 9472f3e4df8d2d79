package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vasthra/vasthra-api/models"
	"github.com/vasthra/vasthra-api/services"
)

type OrderService interface {
	PlaceOrder(ctx context.Context, userID uint, data models.PlaceOrderData) (*models.Order, error)
	Orders(ctx context.Context, userID uint) ([]models.Order, error)
	Order(ctx context.Context, userID uint, ref string) (*models.Order, error)
}

type OrderController struct {
	orders OrderService
}

func NewOrderController(orders OrderService) *OrderController {
	return &OrderController{orders: orders}
}

func (c *OrderController) PlaceOrder(ctx *gin.Context) {
	identity, ok := currentIdentity(ctx)
	if !ok {
		return
	}

	var data models.PlaceOrderData
	if err := ctx.ShouldBindJSON(&data); err != nil {
		sendInvalidInput(ctx, services.ErrIncompleteOrder, err)
		return
	}

	order, err := c.orders.PlaceOrder(ctx.Request.Context(), identity.UserID, data)
	if err != nil {
		sendErrorResponse(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusCreated, gin.H{"message": "Order placed", "orderId": order.OrderID})
}

func (c *OrderController) GetOrders(ctx *gin.Context) {
	identity, ok := currentIdentity(ctx)
	if !ok {
		return
	}

	orders, err := c.orders.Orders(ctx.Request.Context(), identity.UserID)
	if err != nil {
		sendErrorResponse(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"orders": orders})
}

func (c *OrderController) GetOrder(ctx *gin.Context) {
	identity, ok := currentIdentity(ctx)
	if !ok {
		return
	}

	order, err := c.orders.Order(ctx.Request.Context(), identity.UserID, ctx.Param("orderId"))
	if err != nil {
		sendErrorResponse(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"order": order})
}
