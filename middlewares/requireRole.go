package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/vasthra/vasthra-api/models"
	"github.com/vasthra/vasthra-api/services"
)

// RequireRole lets through only callers whose role satisfies allowed, e.g.
// models.Role.CanSell. It must run after RequireAuth.
func RequireRole(allowed func(models.Role) bool) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		identity, ok := IdentityFromContext(ctx.Request.Context())
		if !ok {
			abortWithError(ctx, services.ErrUnauthorized)
			return
		}

		if !allowed(identity.Role) {
			abortWithError(ctx, services.ErrRoleForbidden)
			return
		}

		ctx.Next()
	}
}

// RequireSeller gates product management.
func RequireSeller() gin.HandlerFunc {
	return RequireRole(models.Role.CanSell)
}
