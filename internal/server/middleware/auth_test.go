package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentbruecke/placement-backend/internal/domain"
)

// stubValidator accepts exactly one token and returns a fixed identity.
type stubValidator struct {
	token  string
	userID uuid.UUID
	role   domain.Role
}

type stubIdentity struct {
	userID uuid.UUID
	role   domain.Role
}

func (s stubIdentity) GetUserID() uuid.UUID { return s.userID }
func (s stubIdentity) GetRole() domain.Role { return s.role }

func (v *stubValidator) ValidateToken(tokenString string) (Identity, error) {
	if tokenString != v.token {
		return nil, fmt.Errorf("invalid token")
	}
	return stubIdentity{userID: v.userID, role: v.role}, nil
}

func newAuthedHandler(t *testing.T, v *stubValidator) (http.Handler, *bool) {
	t.Helper()
	called := false
	handler := Auth(v)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		userID, err := GetUserID(r)
		require.NoError(t, err)
		assert.Equal(t, v.userID, userID)
		role, err := GetRole(r)
		require.NoError(t, err)
		assert.Equal(t, v.role, role)
	}))
	return handler, &called
}

func TestAuth_ValidToken(t *testing.T) {
	v := &stubValidator{token: "good", userID: uuid.New(), role: domain.RoleApplicant}
	handler, called := newAuthedHandler(t, v)

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	req.Header.Set("Authorization", "Bearer good")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, *called)
}

func TestAuth_CaseInsensitiveBearer(t *testing.T) {
	v := &stubValidator{token: "good", userID: uuid.New(), role: domain.RoleCompany}
	handler, called := newAuthedHandler(t, v)

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	req.Header.Set("Authorization", "bearer good")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, *called)
}

func TestAuth_MissingHeader(t *testing.T) {
	v := &stubValidator{token: "good"}
	handler, called := newAuthedHandler(t, v)

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, *called)
}

func TestAuth_MalformedHeader(t *testing.T) {
	v := &stubValidator{token: "good"}
	handler, called := newAuthedHandler(t, v)

	for _, header := range []string{"good", "Basic good", "Bearer", "Bearer a b"} {
		req := httptest.NewRequest(http.MethodGet, "/profile", nil)
		req.Header.Set("Authorization", header)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
		assert.False(t, *called)
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	v := &stubValidator{token: "good"}
	handler, called := newAuthedHandler(t, v)

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	req.Header.Set("Authorization", "Bearer forged")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, *called)
}

func TestRequireRole_Allowed(t *testing.T) {
	called := false
	handler := RequireRole(domain.RoleCompany)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		called = true
	}))

	req := httptest.NewRequest(http.MethodPost, "/jobs", nil)
	req = req.WithContext(WithIdentity(req.Context(), uuid.New(), domain.RoleCompany))
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, called)
}

func TestRequireRole_Forbidden(t *testing.T) {
	handler := RequireRole(domain.RoleCompany)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("handler should not be called")
	}))

	req := httptest.NewRequest(http.MethodPost, "/jobs", nil)
	req = req.WithContext(WithIdentity(req.Context(), uuid.New(), domain.RoleApplicant))
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireRole_NoIdentity(t *testing.T) {
	handler := RequireRole(domain.RoleAdmin)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("handler should not be called")
	}))

	req := httptest.NewRequest(http.MethodGet, "/admin/users", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetUserID_Missing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/profile", nil)

	_, err := GetUserID(req)
	assert.Error(t, err)
}
