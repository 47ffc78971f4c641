package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DerrickJaguar/rent/internal/domain/models"
	"github.com/DerrickJaguar/rent/internal/domain/services"
	"github.com/DerrickJaguar/rent/internal/infrastructure/config"
)

// rejectAllVerifier 中间件测试不走登录，凭证校验不会被调用
type rejectAllVerifier struct{}

func (rejectAllVerifier) Verify(email, password string) (*models.User, error) {
	return nil, services.ErrUserNotFound
}

func newAuthRouter(t *testing.T, guard gin.HandlerFunc) (*gin.Engine, services.InterfaceAuthService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{JWTSecretKey: "test-secret"}
	svc := services.NewAuthService(cfg, rejectAllVerifier{}, time.Now)
	InitAuthMiddleware(svc)

	r := gin.New()
	r.DELETE("/guarded/:id", guard, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": c.Param("id")})
	})
	return r, svc
}

func tokenForRole(t *testing.T, svc services.InterfaceAuthService, role models.UserRole) string {
	t.Helper()
	token, err := svc.GenerateToken(&models.User{ID: "1", Role: role})
	require.NoError(t, err)
	return token
}

func TestAuthenticateLandlordAllowsLandlord(t *testing.T) {
	r, svc := newAuthRouter(t, AuthenticateLandlord())

	req := httptest.NewRequest(http.MethodDelete, "/guarded/p1", nil)
	req.Header.Set("Authorization", "Bearer "+tokenForRole(t, svc, models.UserRoleLandlord))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthenticateLandlordRejectsOtherRoles(t *testing.T) {
	r, svc := newAuthRouter(t, AuthenticateLandlord())

	// manager能通过普通守卫，但不能执行房东专属操作
	req := httptest.NewRequest(http.MethodDelete, "/guarded/p1", nil)
	req.Header.Set("Authorization", "Bearer "+tokenForRole(t, svc, models.UserRoleManager))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAuthenticateLandlordRequiresHeader(t *testing.T) {
	r, _ := newAuthRouter(t, AuthenticateLandlord())

	req := httptest.NewRequest(http.MethodDelete, "/guarded/p1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticateUserAcceptsAnyValidRole(t *testing.T) {
	r, svc := newAuthRouter(t, AuthenticateUser())

	for _, role := range []models.UserRole{models.UserRoleLandlord, models.UserRoleManager, models.UserRoleAssistant} {
		req := httptest.NewRequest(http.MethodDelete, "/guarded/p1", nil)
		req.Header.Set("Authorization", "Bearer "+tokenForRole(t, svc, role))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code, "role %s", role)
	}
}

func TestAuthenticateUserRejectsGarbageToken(t *testing.T) {
	r, _ := newAuthRouter(t, AuthenticateUser())

	req := httptest.NewRequest(http.MethodDelete, "/guarded/p1", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
