package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"matha/globals"
	"matha/models"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
)

func requestWithUser(user *models.DevoteeUser) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/sevas", nil)
	if user != nil {
		ctx := context.WithValue(req.Context(), globals.UserKey, user)
		req = req.WithContext(ctx)
	}
	return req
}

func TestRequireAdmin_AllowsAdmin(t *testing.T) {
	called := false
	handler := RequireAdmin(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		called = true
	})

	rec := httptest.NewRecorder()
	handler(rec, requestWithUser(&models.DevoteeUser{Email: "admin@example.com", IsAdmin: true}), nil)

	assert.True(t, called)
}

func TestRequireAdmin_ForbidsNonAdmin(t *testing.T) {
	handler := RequireAdmin(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		t.Fatal("handler must not run")
	})

	rec := httptest.NewRecorder()
	handler(rec, requestWithUser(&models.DevoteeUser{Email: "devotee@example.com"}), nil)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireAdmin_UnauthenticatedIs401(t *testing.T) {
	// 401 wins over 403 when no user was resolved at all.
	handler := RequireAdmin(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		t.Fatal("handler must not run")
	})

	rec := httptest.NewRecorder()
	handler(rec, requestWithUser(nil), nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
