package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vasthra/vasthra-api/models"
	"github.com/vasthra/vasthra-api/services"
)

type CartService interface {
	List(ctx context.Context, userID uint) ([]models.CartLine, error)
	Add(ctx context.Context, userID uint, data models.CartItemData) (bool, error)
	Update(ctx context.Context, userID uint, data models.CartItemData) error
	Remove(ctx context.Context, userID, productID uint) error
	Clear(ctx context.Context, userID uint) error
}

type CartController struct {
	carts CartService
}

func NewCartController(carts CartService) *CartController {
	return &CartController{carts: carts}
}

func (c *CartController) GetCartItems(ctx *gin.Context) {
	identity, ok := currentIdentity(ctx)
	if !ok {
		return
	}

	lines, err := c.carts.List(ctx.Request.Context(), identity.UserID)
	if err != nil {
		sendErrorResponse(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"cart": lines})
}

func (c *CartController) AddItem(ctx *gin.Context) {
	identity, ok := currentIdentity(ctx)
	if !ok {
		return
	}

	var data models.CartItemData
	if err := ctx.ShouldBindJSON(&data); err != nil {
		sendInvalidInput(ctx, services.ErrInvalidQuantity, err)
		return
	}

	created, err := c.carts.Add(ctx.Request.Context(), identity.UserID, data)
	if err != nil {
		sendErrorResponse(ctx, err)
		return
	}
	if created {
		sendJSONResponse(ctx, http.StatusCreated, gin.H{"message": "Item added to cart"})
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Cart item quantity increased"})
}

func (c *CartController) UpdateItem(ctx *gin.Context) {
	identity, ok := currentIdentity(ctx)
	if !ok {
		return
	}

	var data models.CartItemData
	if err := ctx.ShouldBindJSON(&data); err != nil {
		sendInvalidInput(ctx, services.ErrInvalidQuantity.WithMessage("Valid productId and quantity required"), err)
		return
	}

	if err := c.carts.Update(ctx.Request.Context(), identity.UserID, data); err != nil {
		sendErrorResponse(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Cart updated successfully"})
}

func (c *CartController) RemoveItem(ctx *gin.Context) {
	identity, ok := currentIdentity(ctx)
	if !ok {
		return
	}
	productID, ok := parseIDParam(ctx, "productId")
	if !ok {
		return
	}

	if err := c.carts.Remove(ctx.Request.Context(), identity.UserID, productID); err != nil {
		sendErrorResponse(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Item removed from cart"})
}

func (c *CartController) ClearCart(ctx *gin.Context) {
	identity, ok := currentIdentity(ctx)
	if !ok {
		return
	}

	if err := c.carts.Clear(ctx.Request.Context(), identity.UserID); err != nil {
		sendErrorResponse(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Cart cleared"})
}
