package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func runGuard(t *testing.T, guard gin.HandlerFunc, role string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	if role != "" {
		c.Set("role", role)
	}

	guard(c)
	return w
}

func TestRequireAdminAllowsAdmin(t *testing.T) {
	w := runGuard(t, RequireAdmin(), "admin")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAdminRejectsFieldOperator(t *testing.T) {
	w := runGuard(t, RequireAdmin(), "lapangan")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireRoleAllowsAnyListedRole(t *testing.T) {
	guard := RequireRole("admin", "lapangan")

	assert.Equal(t, http.StatusOK, runGuard(t, guard, "admin").Code)
	assert.Equal(t, http.StatusOK, runGuard(t, guard, "lapangan").Code)
}

func TestRequireRoleRejectsUnknownRole(t *testing.T) {
	w := runGuard(t, RequireRole("lapangan"), "admin")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireRoleWithoutAuthContext(t *testing.T) {
	w := runGuard(t, RequireRole("admin"), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
