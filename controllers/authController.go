package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vasthra/vasthra-api/middlewares"
	"github.com/vasthra/vasthra-api/models"
	"github.com/vasthra/vasthra-api/services"
)

const (
	sessionMaxAge = 3600

	msgUserRegistered = "User registered successfully!"
	msgLoginSuccess   = "Login successful"
	msgLoggedOut      = "Logged out successfully"
)

type AuthService interface {
	Register(ctx context.Context, data models.RegisterData) (*models.User, error)
	Login(ctx context.Context, email, password string) (string, *models.User, error)
}

type AuthController struct {
	auth          AuthService
	secureCookies bool
}

// NewAuthController builds the controller. secureCookies marks the session
// cookie Secure and is meant for production.
func NewAuthController(auth AuthService, secureCookies bool) *AuthController {
	return &AuthController{auth: auth, secureCookies: secureCookies}
}

func (c *AuthController) Register(ctx *gin.Context) {
	var data models.RegisterData
	if err := ctx.ShouldBindJSON(&data); err != nil {
		if isFieldError(err, "Email", "email") {
			sendInvalidInput(ctx, services.ErrInvalidEmail, err)
			return
		}
		sendInvalidInput(ctx, services.ErrMissingFields, err)
		return
	}

	if _, err := c.auth.Register(ctx.Request.Context(), data); err != nil {
		sendErrorResponse(ctx, err)
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{"message": msgUserRegistered})
}

func (c *AuthController) Login(ctx *gin.Context) {
	var data models.LoginData
	if err := ctx.ShouldBindJSON(&data); err != nil {
		sendInvalidInput(ctx, services.ErrMissingFields.WithMessage("Email and password are required"), err)
		return
	}

	token, user, err := c.auth.Login(ctx.Request.Context(), data.Email, data.Password)
	if err != nil {
		sendErrorResponse(ctx, err)
		return
	}

	c.setSessionCookie(ctx, token, sessionMaxAge)
	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message": msgLoginSuccess,
		"user": gin.H{
			"id":   user.ID,
			"name": user.Name,
			"role": user.Role,
		},
	})
}

// Logout only clears the cookie. An already issued token stays valid until it
// expires.
func (c *AuthController) Logout(ctx *gin.Context) {
	c.setSessionCookie(ctx, "", -1)
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": msgLoggedOut})
}

func (c *AuthController) setSessionCookie(ctx *gin.Context, value string, maxAge int) {
	ctx.SetSameSite(http.SameSiteStrictMode)
	ctx.SetCookie(middlewares.AuthCookie, value, maxAge, "/", "", c.secureCookies, true)
}
