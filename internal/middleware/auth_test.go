package middleware

import (
	"coursehub_backend/internal/config"
	"coursehub_backend/internal/model"
	"coursehub_backend/internal/util"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRevoker struct {
	revoked map[string]bool
}

func (s *stubRevoker) IsRevoked(tokenString string) bool {
	return s.revoked[tokenString]
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret-test-secret-test-secret"
	cfg.JWT.ExpireTime = time.Hour
	return cfg
}

func signToken(t *testing.T, cfg *config.Config, role model.UserRole) string {
	t.Helper()

	user := &model.User{Email: "ada@example.com", Role: role}
	user.ID = 1
	token, err := util.GenerateJWT(user, cfg.JWT.Secret, cfg.JWT.ExpireTime)
	require.NoError(t, err)
	return token
}

func newRouter(cfg *config.Config, revoker TokenRevoker, roles ...model.UserRole) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	handlers := []gin.HandlerFunc{AuthMiddleware(cfg, revoker)}
	if len(roles) > 0 {
		handlers = append(handlers, RoleMiddleware(roles...))
	}
	handlers = append(handlers, func(c *gin.Context) {
		claims := util.GetUserFromContext(c)
		c.JSON(http.StatusOK, gin.H{"user_id": claims.UserID})
	})

	r.GET("/protected", handlers...)
	return r
}

func do(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	r := newRouter(testConfig(), nil)

	w := do(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareRejectsGarbageToken(t *testing.T) {
	r := newRouter(testConfig(), nil)

	w := do(r, "not.a.jwt")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareRejectsWrongSecret(t *testing.T) {
	cfg := testConfig()
	other := testConfig()
	other.JWT.Secret = "another-secret-another-secret-12345"

	r := newRouter(cfg, nil)

	w := do(r, signToken(t, other, model.Student))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareAcceptsValidToken(t *testing.T) {
	cfg := testConfig()
	r := newRouter(cfg, nil)

	w := do(r, signToken(t, cfg, model.Student))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":1`)
}

func TestAuthMiddlewareRejectsRevokedToken(t *testing.T) {
	cfg := testConfig()
	token := signToken(t, cfg, model.Student)
	revoker := &stubRevoker{revoked: map[string]bool{token: true}}

	r := newRouter(cfg, revoker)

	w := do(r, token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// a second, unrevoked token still works
	w = do(r, signToken(t, cfg, model.Student))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRoleMiddleware(t *testing.T) {
	cfg := testConfig()
	r := newRouter(cfg, nil, model.Admin)

	w := do(r, signToken(t, cfg, model.Student))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = do(r, signToken(t, cfg, model.Admin))
	assert.Equal(t, http.StatusOK, w.Code)
}
