package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"comanda/internal/config"
	"comanda/internal/model"
	"comanda/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func testRouter(tokens *service.TokenService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Authenticate(tokens))
	r.GET("/authed", RequireAuth(), func(c *gin.Context) {
		ident, _ := IdentityFrom(c)
		c.JSON(http.StatusOK, gin.H{"email": ident.Email})
	})
	r.GET("/admin", RequireAdmin(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func issueFor(t *testing.T, tokens *service.TokenService, role string) string {
	t.Helper()
	token, err := tokens.Issue(&model.User{
		ID:    primitive.NewObjectID(),
		Email: role + "@example.com",
		Role:  model.NewRole(role),
	})
	require.NoError(t, err)
	return token
}

func TestAuthMiddleware(t *testing.T) {
	cfg := config.New()
	cfg.Auth.Secret = "test-secret"
	tokens := service.NewTokenService(cfg)
	router := testRouter(tokens)

	tests := []struct {
		name       string
		path       string
		authHeader string
		wantStatus int
	}{
		{
			name: "absent header denied downstream with 401",
			path: "/authed", authHeader: "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "absent header on admin route also 401",
			path: "/admin", authHeader: "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "non-bearer scheme proceeds unauthenticated",
			path: "/authed", authHeader: "Basic dXNlcjpwYXNz",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "malformed token rejected with 403",
			path: "/authed", authHeader: "Bearer not.a.token",
			wantStatus: http.StatusForbidden,
		},
		{
			name: "valid waiter token passes auth",
			path: "/authed", authHeader: "Bearer " + issueFor(t, tokens, model.RoleWaiter),
			wantStatus: http.StatusOK,
		},
		{
			name: "valid waiter token denied on admin route",
			path: "/admin", authHeader: "Bearer " + issueFor(t, tokens, model.RoleWaiter),
			wantStatus: http.StatusForbidden,
		},
		{
			name: "valid admin token passes admin route",
			path: "/admin", authHeader: "Bearer " + issueFor(t, tokens, model.RoleAdmin),
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestAuthMiddlewareAttachesIdentity(t *testing.T) {
	cfg := config.New()
	cfg.Auth.Secret = "test-secret"
	tokens := service.NewTokenService(cfg)
	router := testRouter(tokens)

	req := httptest.NewRequest(http.MethodGet, "/authed", nil)
	req.Header.Set("Authorization", "Bearer "+issueFor(t, tokens, model.RoleChef))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"email":"chef@example.com"}`, rec.Body.String())
}

func TestAuthMiddlewareForeignTokenRejected(t *testing.T) {
	issuerCfg := config.New()
	issuerCfg.Auth.Secret = "test-secret"
	tokens := service.NewTokenService(issuerCfg)

	otherCfg := config.New()
	otherCfg.Auth.Secret = "different-secret"
	other := service.NewTokenService(otherCfg)

	router := testRouter(tokens)
	req := httptest.NewRequest(http.MethodGet, "/authed", nil)
	req.Header.Set("Authorization", "Bearer "+issueFor(t, other, model.RoleAdmin))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
