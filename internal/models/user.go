package models

import (
	"encoding/json"
	"time"
)

// Student is a learner account.
type Student struct {
	StudentID    string  `db:"student_id" json:"student_id"`
	Name         string  `db:"name" json:"name"`
	Account      string  `db:"account" json:"account"`
	PasswordHash string  `db:"password_hash" json:"-"`
	ClassID      *string `db:"class_id" json:"class_id"`
}

// Info projects the student into the public user info shape.
func (s *Student) Info() UserInfo {
	return UserInfo{UserID: s.StudentID, Name: s.Name, Account: s.Account, Role: RoleStudent, ClassID: s.ClassID}
}

// Teacher is an instructor account.
type Teacher struct {
	TeacherID    string `db:"teacher_id" json:"teacher_id"`
	Name         string `db:"name" json:"name"`
	Account      string `db:"account" json:"account"`
	PasswordHash string `db:"password_hash" json:"-"`
}

// Info projects the teacher into the public user info shape.
func (t *Teacher) Info() UserInfo {
	return UserInfo{UserID: t.TeacherID, Name: t.Name, Account: t.Account, Role: RoleTeacher}
}

// Admin is an administrator account.
type Admin struct {
	AdminID      string    `db:"admin_id" json:"admin_id"`
	Name         string    `db:"name" json:"name"`
	Account      string    `db:"account" json:"account"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Email        *string   `db:"email" json:"email"`
	Phone        *string   `db:"phone" json:"phone"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// Info projects the admin into the public user info shape.
func (a *Admin) Info() UserInfo {
	return UserInfo{UserID: a.AdminID, Name: a.Name, Account: a.Account, Role: RoleAdmin, Email: a.Email, Phone: a.Phone}
}

// UserInfo is the public projection of any account. Only the fields that exist for
// Role are serialised: class_id for students, email and phone for admins.
type UserInfo struct {
	UserID  string
	Name    string
	Account string
	Role    Role
	ClassID *string
	Email   *string
	Phone   *string
}

func (u UserInfo) fields() map[string]interface{} {
	out := map[string]interface{}{
		"user_id":   u.UserID,
		"name":      u.Name,
		"account":   u.Account,
		"user_type": u.Role,
	}
	switch u.Role {
	case RoleStudent:
		out["class_id"] = u.ClassID
	case RoleAdmin:
		out["email"] = u.Email
		out["phone"] = u.Phone
	}
	return out
}

// MarshalJSON implements json.Marshaler.
func (u UserInfo) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.fields())
}

// UserListItem is a user info entry in the cross-role listing. ID is a composite
// "{role}_{user_id}" so entries from different tables never collide.
type UserListItem struct {
	UserInfo
}

// ID returns the composite identifier.
func (u UserListItem) ID() string {
	return string(u.Role) + "_" + u.UserID
}

// MarshalJSON implements json.Marshaler.
func (u UserListItem) MarshalJSON() ([]byte, error) {
	out := u.fields()
	out["id"] = u.ID()
	out["role"] = u.Role
	out["type"] = u.Role
	return json.Marshal(out)
}
