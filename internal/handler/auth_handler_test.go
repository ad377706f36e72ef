package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/wordup-api/internal/middleware"
	"github.com/noah-isme/wordup-api/internal/models"
	appErrors "github.com/noah-isme/wordup-api/pkg/errors"
)

func TestAuthHandlerLoginFlattensToken(t *testing.T) {
	svc := &authServiceMock{loginResp: &models.LoginResponse{
		User:      models.UserInfo{UserID: "teacher001", Name: "Test Teacher", Account: "testteacher", Role: models.RoleTeacher},
		Token:     "signed",
		ExpiresIn: 3600,
	}}
	h := NewAuthHandler(svc)

	c, w := newJSONContext(http.MethodPost, "/api/auth/login", map[string]string{"account": "testteacher", "password": "123456", "user_type": "teacher"})
	h.Login(c)

	require.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)
	assert.True(t, env.Success)
	var data map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "teacher001", data["user_id"])
	assert.Equal(t, "teacher", data["user_type"])
	assert.Equal(t, "signed", data["token"])
	assert.Equal(t, float64(3600), data["expires_in"])
	assert.Equal(t, "teacher", svc.lastLogin.UserType)
}

func TestAuthHandlerLoginFailures(t *testing.T) {
	h := NewAuthHandler(&authServiceMock{loginErr: appErrors.ErrInvalidCredentials})

	c, w := newJSONContext(http.MethodPost, "/api/auth/login", map[string]string{"account": "x", "password": "bad"})
	h.Login(c)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	env := decodeEnvelope(t, w)
	assert.False(t, env.Success)
	assert.Equal(t, 401, env.Code)

	c, w = newJSONContext(http.MethodPost, "/api/auth/login", "{not json")
	h.Login(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandlerRegisterStudent(t *testing.T) {
	h := NewAuthHandler(&authServiceMock{})

	c, w := newJSONContext(http.MethodPost, "/api/auth/register/student", map[string]string{"student_id": "s1", "name": "A", "account": "a1", "password": "p"})
	h.RegisterStudent(c)

	require.Equal(t, http.StatusOK, w.Code)
	var data map[string]interface{}
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &data))
	assert.Equal(t, "s1", data["user_id"])
	assert.Contains(t, data, "class_id")
}

func TestAuthHandlerRegisterConflictAndEmptyBody(t *testing.T) {
	h := NewAuthHandler(&authServiceMock{registerErr: appErrors.Clone(appErrors.ErrConflict, "account already exists")})

	c, w := newJSONContext(http.MethodPost, "/api/auth/register/teacher", map[string]string{"teacher_id": "t1", "name": "T", "account": "t", "password": "p"})
	h.RegisterTeacher(c)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "account already exists", decodeEnvelope(t, w).Message)

	c, w = newJSONContext(http.MethodPost, "/api/auth/register/admin", nil)
	h.RegisterAdmin(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "request body is required", decodeEnvelope(t, w).Message)
}

func TestAuthHandlerLogoutAlwaysSucceeds(t *testing.T) {
	svc := &authServiceMock{}
	h := NewAuthHandler(svc)

	c, w := newJSONContext(http.MethodPost, "/api/auth/logout", nil)
	h.Logout(c)
	require.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)
	assert.True(t, env.Success)
	assert.JSONEq(t, "null", string(env.Data))
	assert.Nil(t, svc.lastClaims)

	claims := &models.JWTClaims{UserID: "student001", Role: models.RoleStudent}
	c, _ = newJSONContext(http.MethodPost, "/api/auth/logout", nil)
	c.Set(middleware.ContextUserKey, claims)
	h.Logout(c)
	assert.Same(t, claims, svc.lastClaims)
	assert.Equal(t, 2, svc.logoutCalls)
}

func TestAuthHandlerMe(t *testing.T) {
	h := NewAuthHandler(&authServiceMock{})

	c, w := newJSONContext(http.MethodGet, "/api/auth/me", nil)
	c.Set(middleware.ContextUserKey, &models.JWTClaims{UserID: "admin001", Role: models.RoleAdmin})
	h.Me(c)
	require.Equal(t, http.StatusOK, w.Code)

	h = NewAuthHandler(&authServiceMock{meErr: appErrors.Clone(appErrors.ErrNotFound, "admin user not found")})
	c, w = newJSONContext(http.MethodGet, "/api/auth/me", nil)
	c.Set(middleware.ContextUserKey, &models.JWTClaims{UserID: "admin404", Role: models.RoleAdmin})
	h.Me(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "admin user not found", decodeEnvelope(t, w).Message)
}
