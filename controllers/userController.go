package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vasthra/vasthra-api/models"
	"github.com/vasthra/vasthra-api/services"
)

type UserService interface {
	Profile(ctx context.Context, userID uint) (*services.Profile, error)
	UpdateProfile(ctx context.Context, userID uint, data models.ProfileData) error
	UpdatePassword(ctx context.Context, userID uint, data models.PasswordChangeData) error
	ListAddresses(ctx context.Context, userID uint) ([]models.Address, error)
	AddAddress(ctx context.Context, userID uint, data models.AddressData) (*models.Address, error)
	UpdateAddress(ctx context.Context, userID, addressID uint, data models.AddressData) (*models.Address, error)
	DeleteAddress(ctx context.Context, userID, addressID uint) error
}

type UserController struct {
	users UserService
}

func NewUserController(users UserService) *UserController {
	return &UserController{users: users}
}

func (c *UserController) Me(ctx *gin.Context) {
	identity, ok := currentIdentity(ctx)
	if !ok {
		return
	}

	profile, err := c.users.Profile(ctx.Request.Context(), identity.UserID)
	if err != nil {
		sendErrorResponse(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, profile)
}

func (c *UserController) UpdateMe(ctx *gin.Context) {
	identity, ok := currentIdentity(ctx)
	if !ok {
		return
	}

	var data models.ProfileData
	if err := ctx.ShouldBindJSON(&data); err != nil {
		sendInvalidInput(ctx, services.ErrMissingFields.WithMessage("Name and phone are required"), err)
		return
	}

	if err := c.users.UpdateProfile(ctx.Request.Context(), identity.UserID, data); err != nil {
		sendErrorResponse(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Profile updated successfully"})
}

func (c *UserController) UpdatePassword(ctx *gin.Context) {
	identity, ok := currentIdentity(ctx)
	if !ok {
		return
	}

	var data models.PasswordChangeData
	if err := ctx.ShouldBindJSON(&data); err != nil {
		sendInvalidInput(ctx, services.ErrMissingFields.WithMessage("Current and new password are required"), err)
		return
	}

	if err := c.users.UpdatePassword(ctx.Request.Context(), identity.UserID, data); err != nil {
		sendErrorResponse(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Password updated successfully"})
}

func (c *UserController) ListAddresses(ctx *gin.Context) {
	identity, ok := currentIdentity(ctx)
	if !ok {
		return
	}

	addresses, err := c.users.ListAddresses(ctx.Request.Context(), identity.UserID)
	if err != nil {
		sendErrorResponse(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"addresses": addresses})
}

func (c *UserController) AddAddress(ctx *gin.Context) {
	identity, ok := currentIdentity(ctx)
	if !ok {
		return
	}

	var data models.AddressData
	if err := ctx.ShouldBindJSON(&data); err != nil {
		sendInvalidInput(ctx, services.ErrMissingFields, err)
		return
	}

	address, err := c.users.AddAddress(ctx.Request.Context(), identity.UserID, data)
	if err != nil {
		sendErrorResponse(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusCreated, gin.H{"message": "Address added", "address": address})
}

func (c *UserController) UpdateAddress(ctx *gin.Context) {
	identity, ok := currentIdentity(ctx)
	if !ok {
		return
	}
	addressID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var data models.AddressData
	if err := ctx.ShouldBindJSON(&data); err != nil {
		sendInvalidInput(ctx, services.ErrMissingFields, err)
		return
	}

	address, err := c.users.UpdateAddress(ctx.Request.Context(), identity.UserID, addressID, data)
	if err != nil {
		sendErrorResponse(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Address updated", "address": address})
}

func (c *UserController) DeleteAddress(ctx *gin.Context) {
	identity, ok := currentIdentity(ctx)
	if !ok {
		return
	}
	addressID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.users.DeleteAddress(ctx.Request.Context(), identity.UserID, addressID); err != nil {
		sendErrorResponse(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Address deleted"})
}
