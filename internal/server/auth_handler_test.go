package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentbruecke/placement-backend/internal/config"
	"github.com/talentbruecke/placement-backend/internal/types"
)

func newTestAuthHandler(t *testing.T) *AuthHandler {
	t.Helper()
	service, _ := newTestUserService(t)
	jwtService := setupTestJWTService(t, 24)
	return NewAuthHandler(service, jwtService)
}

func TestAuthHandler_Register(t *testing.T) {
	h := newTestAuthHandler(t)

	body := `{"email":"amina@example.com","password":"password123","role":"applicant"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewBufferString(body))
	w := httptest.NewRecorder()

	h.Register(w, req)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp types.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	require.NotNil(t, resp.User)
	assert.Equal(t, "amina@example.com", resp.User.Email)
}

func TestAuthHandler_Register_InvalidBody(t *testing.T) {
	h := newTestAuthHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewBufferString("{"))
	w := httptest.NewRecorder()

	h.Register(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_Register_ShortPassword(t *testing.T) {
	h := newTestAuthHandler(t)

	body := `{"email":"amina@example.com","password":"short","role":"applicant"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewBufferString(body))
	w := httptest.NewRecorder()

	h.Register(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_Register_CompanyNeedsName(t *testing.T) {
	h := newTestAuthHandler(t)

	body := `{"email":"jobs@hofgut.example","password":"password123","role":"company"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewBufferString(body))
	w := httptest.NewRecorder()

	h.Register(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_Login_WrongPassword(t *testing.T) {
	h := newTestAuthHandler(t)

	register := `{"email":"amina@example.com","password":"password123","role":"applicant"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewBufferString(register))
	h.Register(httptest.NewRecorder(), req)

	login := `{"email":"amina@example.com","password":"nope-nope-nope"}`
	req = httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBufferString(login))
	w := httptest.NewRecorder()

	h.Login(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_Login_TokenCarriesRole(t *testing.T) {
	h := newTestAuthHandler(t)

	register := `{"email":"jobs@hofgut.example","password":"password123","role":"company","company_name":"Hofgut Sonnenschein GmbH"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewBufferString(register))
	w := httptest.NewRecorder()
	h.Register(w, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp types.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	jwtService := NewJWTService(&config.JWTConfig{
		Secret:          "test-secret-key-for-jwt-signing-minimum-32-bytes",
		ExpirationHours: 24,
	})
	claims, err := jwtService.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)
	assert.Equal(t, resp.User.Role, claims.Role)
}
