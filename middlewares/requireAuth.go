package middlewares

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/vasthra/vasthra-api/logger"
	"github.com/vasthra/vasthra-api/models"
	"github.com/vasthra/vasthra-api/services"
	"go.uber.org/zap"
)

// AuthCookie is the name of the session cookie set at login.
const AuthCookie = "authToken"

type identityKey struct{}

// TokenVerifier validates a session token and returns the caller.
type TokenVerifier interface {
	Verify(token string) (models.Identity, error)
}

// WithIdentity returns a copy of ctx carrying the authenticated caller.
func WithIdentity(ctx context.Context, identity models.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, identity)
}

// IdentityFromContext returns the caller stored by RequireAuth.
func IdentityFromContext(ctx context.Context) (models.Identity, bool) {
	identity, ok := ctx.Value(identityKey{}).(models.Identity)
	return identity, ok
}

// RequireAuth rejects requests without a session cookie with 401 and requests
// with an invalid or expired token with 403.
func RequireAuth(tokens TokenVerifier) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token, err := ctx.Cookie(AuthCookie)
		if err != nil || token == "" {
			abortWithError(ctx, services.ErrUnauthorized.WithMessage("Access denied. No token provided."))
			return
		}

		identity, err := tokens.Verify(token)
		if err != nil {
			logger.Warn(ctx.Request.Context(), "Rejected session token", zap.Error(err))
			var svcErr *services.ServiceError
			if !errors.As(err, &svcErr) {
				svcErr = services.ErrForbidden
			}
			abortWithError(ctx, svcErr)
			return
		}

		ctx.Request = ctx.Request.WithContext(WithIdentity(ctx.Request.Context(), identity))
		ctx.Next()
	}
}

func abortWithError(ctx *gin.Context, err *services.ServiceError) {
	ctx.AbortWithStatusJSON(err.StatusCode, gin.H{"error": err.Message, "code": err.Code})
}
