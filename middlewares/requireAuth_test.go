package middlewares

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vasthra/vasthra-api/models"
	"github.com/vasthra/vasthra-api/services"
)

func newAuthRouter(tokens TokenVerifier, gates ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handlers := []gin.HandlerFunc{RequireAuth(tokens)}
	handlers = append(handlers, gates...)
	handlers = append(handlers, func(ctx *gin.Context) {
		identity, ok := IdentityFromContext(ctx.Request.Context())
		if !ok {
			ctx.Status(http.StatusInternalServerError)
			return
		}
		ctx.JSON(http.StatusOK, identity)
	})
	router.GET("/private", handlers...)
	return router
}

func requestWithCookie(token string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: AuthCookie, Value: token})
	}
	return req
}

func TestRequireAuth(t *testing.T) {
	tokens := services.NewTokenService("test-secret")
	valid, err := tokens.Issue(models.Identity{UserID: 42, Role: models.RoleBuyer})
	require.NoError(t, err)
	router := newAuthRouter(tokens)

	t.Run("Missing cookie is 401", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, requestWithCookie(""))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "unauthorized", body["code"])
	})

	t.Run("Bad token is 403", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, requestWithCookie("garbage.token.value"))

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "invalid_token")
	})

	t.Run("Token signed with another secret is 403", func(t *testing.T) {
		forged, err := services.NewTokenService("other-secret").Issue(models.Identity{UserID: 42, Role: models.RoleAdmin})
		require.NoError(t, err)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, requestWithCookie(forged))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Valid token attaches the identity", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, requestWithCookie(valid))

		require.Equal(t, http.StatusOK, w.Code)
		var identity models.Identity
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &identity))
		assert.Equal(t, uint(42), identity.UserID)
		assert.Equal(t, models.RoleBuyer, identity.Role)
	})
}

func TestRequireSeller(t *testing.T) {
	tokens := services.NewTokenService("test-secret")
	router := newAuthRouter(tokens, RequireSeller())

	cases := []struct {
		role models.Role
		want int
	}{
		{models.RoleBuyer, http.StatusForbidden},
		{models.RoleSeller, http.StatusOK},
		{models.RoleAdmin, http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(string(tc.role), func(t *testing.T) {
			token, err := tokens.Issue(models.Identity{UserID: 2, Role: tc.role})
			require.NoError(t, err)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, requestWithCookie(token))
			assert.Equal(t, tc.want, w.Code)
			if tc.want == http.StatusForbidden {
				assert.Contains(t, w.Body.String(), "role_forbidden")
			}
		})
	}
}

func TestRequireRole_WithoutIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/private", RequireRole(models.Role.CanSell), func(ctx *gin.Context) { ctx.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/private", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
