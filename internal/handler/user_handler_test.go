package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/wordup-api/internal/models"
	appErrors "github.com/noah-isme/wordup-api/pkg/errors"
)

func TestUserHandlerListAll(t *testing.T) {
	svc := &userServiceMock{users: []models.UserListItem{
		{UserInfo: models.UserInfo{UserID: "student001", Name: "S", Account: "s", Role: models.RoleStudent}},
	}}
	h := NewUserHandler(svc)

	c, w := newJSONContext(http.MethodGet, "/api/users/all", nil)
	h.ListAll(c)

	require.Equal(t, http.StatusOK, w.Code)
	var users []map[string]interface{}
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &users))
	require.Len(t, users, 1)
	assert.Equal(t, "student_student001", users[0]["id"])
	assert.Equal(t, "student", users[0]["type"])
}

func TestUserHandlerListTeachers(t *testing.T) {
	svc := &userServiceMock{}
	h := NewUserHandler(svc)

	c, w := newJSONContext(http.MethodGet, "/api/users/teachers", nil)
	h.ListTeachers(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.RoleTeacher, svc.lastRole)
}

func TestUserHandlerCreateReturnsID(t *testing.T) {
	h := NewUserHandler(&userServiceMock{})

	c, w := newJSONContext(http.MethodPost, "/api/users/create", map[string]string{"user_type": "teacher", "account": "t2", "password": "p", "name": "T2"})
	h.Create(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id":"teacher002"}`, string(decodeEnvelope(t, w).Data))
}

func TestUserHandlerUpdatePassesPathAndFields(t *testing.T) {
	svc := &userServiceMock{}
	h := NewUserHandler(svc)

	c, w := newJSONContext(http.MethodPut, "/api/users/admin/admin001", `{"email":"a@b.c","phone":null}`)
	c.Params = gin.Params{{Key: "type", Value: "admin"}, {Key: "id", Value: "admin001"}}
	h.Update(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "admin", svc.lastType)
	assert.Equal(t, "admin001", svc.lastID)
	assert.Equal(t, "a@b.c", *svc.lastUpdate.Email.Value)
	assert.True(t, svc.lastUpdate.Phone.Set)
	assert.False(t, svc.lastUpdate.ClassID.Set)
}

func TestUserHandlerDeleteNotFound(t *testing.T) {
	h := NewUserHandler(&userServiceMock{err: appErrors.Clone(appErrors.ErrNotFound, "user not found")})

	c, w := newJSONContext(http.MethodDelete, "/api/users/student/ghost", nil)
	c.Params = gin.Params{{Key: "type", Value: "student"}, {Key: "id", Value: "ghost"}}
	h.Delete(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
