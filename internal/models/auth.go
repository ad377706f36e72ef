package models

import (
	"encoding/json"

	"github.com/golang-jwt/jwt/v5"
)

// LoginRequest holds credentials for authenticating a user. UserType defaults to student.
type LoginRequest struct {
	Account  string `json:"account" validate:"required"`
	Password string `json:"password" validate:"required"`
	UserType string `json:"user_type"`
}

// LoginResponse is the user info object extended with the issued token.
type LoginResponse struct {
	User      UserInfo
	Token     string
	ExpiresIn int64
}

// MarshalJSON flattens the user info and token fields into one object.
func (r LoginResponse) MarshalJSON() ([]byte, error) {
	out := r.User.fields()
	out["token"] = r.Token
	out["expires_in"] = r.ExpiresIn
	return json.Marshal(out)
}

// RegisterStudentRequest is the student self-registration payload.
type RegisterStudentRequest struct {
	StudentID string  `json:"student_id" validate:"required"`
	Name      string  `json:"name" validate:"required"`
	Account   string  `json:"account" validate:"required"`
	Password  string  `json:"password" validate:"required"`
	ClassID   *string `json:"class_id"`
}

// RegisterTeacherRequest is the teacher self-registration payload.
type RegisterTeacherRequest struct {
	TeacherID string `json:"teacher_id" validate:"required"`
	Name      string `json:"name" validate:"required"`
	Account   string `json:"account" validate:"required"`
	Password  string `json:"password" validate:"required"`
}

// RegisterAdminRequest is the admin registration payload.
type RegisterAdminRequest struct {
	AdminID  string  `json:"admin_id" validate:"required"`
	Name     string  `json:"name" validate:"required"`
	Account  string  `json:"account" validate:"required"`
	Password string  `json:"password" validate:"required"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
}

// JWTClaims represents the JWT payload for access tokens.
type JWTClaims struct {
	UserID  string `json:"user_id"`
	Role    Role   `json:"user_type"`
	Name    string `json:"user_name"`
	Account string `json:"account"`
	jwt.RegisteredClaims
}
