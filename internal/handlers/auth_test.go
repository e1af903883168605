// internal/handlers/auth_test.go
package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/kccr/storefront/internal/services"
)

// authTestRouter wires the auth handler with a nil database; only request
// validation paths are exercised, which never reach the service.
func authTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewAuthHandler(services.NewAuthService(nil, nil))

	r := gin.New()
	r.POST("/login", handler.Login)
	r.POST("/register", handler.Register)
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestLoginRejectsMalformedBody(t *testing.T) {
	r := authTestRouter()

	w := postJSON(r, "/login", "{not json")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginRejectsInvalidEmail(t *testing.T) {
	r := authTestRouter()

	w := postJSON(r, "/login", `{"email": "not-an-email", "password": "Password1"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Validation failed")
}

func TestLoginRejectsMissingPassword(t *testing.T) {
	r := authTestRouter()

	w := postJSON(r, "/login", `{"email": "user@example.com"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterRejectsWeakPassword(t *testing.T) {
	r := authTestRouter()

	w := postJSON(r, "/register", `{"name": "User", "email": "user@example.com", "password": "weak"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Password must contain")
}
