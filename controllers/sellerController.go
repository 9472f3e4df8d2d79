package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vasthra/vasthra-api/models"
	"github.com/vasthra/vasthra-api/services"
)

const maxImageSize = 5 << 20

type SellerService interface {
	CreateProduct(ctx context.Context, sellerID uint, data models.ProductData) (*models.Product, error)
	Authorize(ctx context.Context, sellerID, productID uint) (*models.Product, error)
	UpdateProduct(ctx context.Context, sellerID, productID uint, data models.ProductData) (*models.Product, error)
	DeleteProduct(ctx context.Context, sellerID, productID uint) error
	Products(ctx context.Context, sellerID uint) ([]models.Product, error)
	Search(ctx context.Context, sellerID uint, rawID, name string) ([]models.Product, error)
	UploadImage(ctx context.Context, sellerID, productID uint, image services.ProductImage) (*models.Product, error)
}

type SellerController struct {
	sellers SellerService
}

func NewSellerController(sellers SellerService) *SellerController {
	return &SellerController{sellers: sellers}
}

func (c *SellerController) AddProduct(ctx *gin.Context) {
	identity, ok := currentIdentity(ctx)
	if !ok {
		return
	}

	var data models.ProductData
	if err := ctx.ShouldBindJSON(&data); err != nil {
		sendInvalidInput(ctx, services.ErrMissingFields.WithMessage("Name, price, category and stock are required"), err)
		return
	}

	product, err := c.sellers.CreateProduct(ctx.Request.Context(), identity.UserID, data)
	if err != nil {
		sendErrorResponse(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusCreated, gin.H{"message": "Product created successfully", "product": product})
}

// UpdateProduct checks ownership before looking at the body, so a foreign
// product is always 403.
func (c *SellerController) UpdateProduct(ctx *gin.Context) {
	identity, ok := currentIdentity(ctx)
	if !ok {
		return
	}
	productID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if _, err := c.sellers.Authorize(ctx.Request.Context(), identity.UserID, productID); err != nil {
		sendErrorResponse(ctx, err)
		return
	}

	var data models.ProductData
	if err := ctx.ShouldBindJSON(&data); err != nil {
		sendInvalidInput(ctx, services.ErrMissingFields.WithMessage("Name, price, category and stock are required"), err)
		return
	}

	product, err := c.sellers.UpdateProduct(ctx.Request.Context(), identity.UserID, productID, data)
	if err != nil {
		sendErrorResponse(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Product updated successfully", "product": product})
}

func (c *SellerController) DeleteProduct(ctx *gin.Context) {
	identity, ok := currentIdentity(ctx)
	if !ok {
		return
	}
	productID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.sellers.DeleteProduct(ctx.Request.Context(), identity.UserID, productID); err != nil {
		sendErrorResponse(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Product deleted successfully"})
}

func (c *SellerController) GetProducts(ctx *gin.Context) {
	identity, ok := currentIdentity(ctx)
	if !ok {
		return
	}

	products, err := c.sellers.Products(ctx.Request.Context(), identity.UserID)
	if err != nil {
		sendErrorResponse(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"products": products})
}

func (c *SellerController) SearchProducts(ctx *gin.Context) {
	identity, ok := currentIdentity(ctx)
	if !ok {
		return
	}

	products, err := c.sellers.Search(ctx.Request.Context(), identity.UserID, ctx.Query("id"), ctx.Query("name"))
	if err != nil {
		sendErrorResponse(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, products)
}

func (c *SellerController) UploadProductImage(ctx *gin.Context) {
	identity, ok := currentIdentity(ctx)
	if !ok {
		return
	}
	productID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	fileHeader, err := ctx.FormFile("image")
	if err != nil {
		sendInvalidInput(ctx, services.ErrInvalidInput.WithMessage("An image file is required"), err)
		return
	}
	if fileHeader.Size > maxImageSize {
		sendErrorResponse(ctx, services.ErrInvalidInput.WithMessage("Image must be 5MB or smaller"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		sendInvalidInput(ctx, services.ErrInvalidInput.WithMessage("Unable to read image"), err)
		return
	}
	defer file.Close()

	product, err := c.sellers.UploadImage(ctx.Request.Context(), identity.UserID, productID, services.ProductImage{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Body:        file,
	})
	if err != nil {
		sendErrorResponse(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Image uploaded", "image_url": product.ImageURL})
}
