package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/vasthra/vasthra-api/logger"
	"github.com/vasthra/vasthra-api/middlewares"
	"github.com/vasthra/vasthra-api/models"
	"github.com/vasthra/vasthra-api/services"
)

const msgInternalServerError = "Internal server error"

func sendJSONResponse(ctx *gin.Context, status int, data gin.H) {
	ctx.JSON(status, data)
}

// sendErrorResponse writes err as {"error", "code"}. Errors that are not
// ServiceErrors become a generic 500 and are logged.
func sendErrorResponse(ctx *gin.Context, err error) {
	var svcErr *services.ServiceError
	if !errors.As(err, &svcErr) {
		svcErr = services.ErrStorage.Wrap(err)
	}
	if svcErr.StatusCode >= http.StatusInternalServerError {
		logger.Error(ctx.Request.Context(), svcErr.Message, svcErr.Err)
		_ = ctx.Error(err)
	}
	sendJSONResponse(ctx, svcErr.StatusCode, gin.H{"error": svcErr.Message, "code": svcErr.Code})
}

func sendInvalidInput(ctx *gin.Context, base *services.ServiceError, err error) {
	if err != nil {
		_ = ctx.Error(err)
	}
	sendErrorResponse(ctx, base)
}

// currentIdentity reads the caller attached by RequireAuth and answers 401
// when there is none.
func currentIdentity(ctx *gin.Context) (models.Identity, bool) {
	identity, ok := middlewares.IdentityFromContext(ctx.Request.Context())
	if !ok {
		sendErrorResponse(ctx, services.ErrUnauthorized)
	}
	return identity, ok
}

func parseIDParam(ctx *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, strconv.IntSize)
	if err != nil || id == 0 {
		sendErrorResponse(ctx, services.ErrInvalidInput.WithMessage("Invalid "+name))
		return 0, false
	}
	return uint(id), true
}

// isFieldError reports whether binding failed on field because of tag.
func isFieldError(err error, field, tag string) bool {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return false
	}
	for _, fe := range verrs {
		if fe.Field() == field && fe.Tag() == tag {
			return true
		}
	}
	return false
}
