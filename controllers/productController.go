package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vasthra/vasthra-api/models"
)

type CatalogService interface {
	Categories(ctx context.Context) ([]models.Category, error)
	Products(ctx context.Context) ([]models.Product, error)
	ProductsByCategory(ctx context.Context, categoryID uint) ([]models.Product, error)
	Product(ctx context.Context, id uint) (*models.Product, error)
}

type ProductController struct {
	catalog CatalogService
}

func NewProductController(catalog CatalogService) *ProductController {
	return &ProductController{catalog: catalog}
}

func (c *ProductController) GetCategories(ctx *gin.Context) {
	categories, err := c.catalog.Categories(ctx.Request.Context())
	if err != nil {
		sendErrorResponse(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"categories": categories})
}

func (c *ProductController) GetProducts(ctx *gin.Context) {
	products, err := c.catalog.Products(ctx.Request.Context())
	if err != nil {
		sendErrorResponse(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"products": products})
}

func (c *ProductController) GetProductsByCategory(ctx *gin.Context) {
	categoryID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	products, err := c.catalog.ProductsByCategory(ctx.Request.Context(), categoryID)
	if err != nil {
		sendErrorResponse(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"products": products})
}

func (c *ProductController) GetProduct(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	product, err := c.catalog.Product(ctx.Request.Context(), id)
	if err != nil {
		sendErrorResponse(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"product": product})
}
