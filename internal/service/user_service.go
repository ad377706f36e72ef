package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/wordup-api/internal/models"
	"github.com/noah-isme/wordup-api/internal/repository"
	appErrors "github.com/noah-isme/wordup-api/pkg/errors"
)

// CreateUserRequest represents the admin payload for creating an account of any role.
type CreateUserRequest struct {
	UserType string  `json:"user_type" validate:"required"`
	Account  string  `json:"account" validate:"required"`
	Password string  `json:"password" validate:"required"`
	Name     string  `json:"name" validate:"required"`
	ClassID  *string `json:"class_id"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
}

// UpdateUserRequest is a partial update. Keys absent from the payload keep their
// stored value; fields the role does not have are ignored.
type UpdateUserRequest struct {
	Name     *string               `json:"name"`
	Password *string               `json:"password"`
	ClassID  models.OptionalString `json:"class_id"`
	Email    models.OptionalString `json:"email"`
	Phone    models.OptionalString `json:"phone"`
}

// UserService handles administrative account management across roles.
type UserService struct {
	students  studentRepository
	teachers  teacherRepository
	admins    adminRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewUserService creates an instance of UserService.
func NewUserService(students studentRepository, teachers teacherRepository, admins adminRepository, validate *validator.Validate, logger *zap.Logger) *UserService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = NewValidator()
	}
	return &UserService{students: students, teachers: teachers, admins: admins, validator: validate, logger: logger}
}

// ListAll returns students, then teachers, then admins as one tagged list.
func (s *UserService) ListAll(ctx context.Context) ([]models.UserListItem, error) {
	users := make([]models.UserListItem, 0)
	for _, role := range models.Roles {
		items, err := s.ListByRole(ctx, role)
		if err != nil {
			return nil, err
		}
		users = append(users, items...)
	}
	return users, nil
}

// ListByRole returns every account of one role.
func (s *UserService) ListByRole(ctx context.Context, role models.Role) ([]models.UserListItem, error) {
	items := make([]models.UserListItem, 0)
	switch role {
	case models.RoleStudent:
		students, err := s.students.List(ctx)
		if err != nil {
			return nil, internalError(err, "failed to list students")
		}
		for i := range students {
			items = append(items, models.UserListItem{UserInfo: students[i].Info()})
		}
	case models.RoleTeacher:
		teachers, err := s.teachers.List(ctx)
		if err != nil {
			return nil, internalError(err, "failed to list teachers")
		}
		for i := range teachers {
			items = append(items, models.UserListItem{UserInfo: teachers[i].Info()})
		}
	case models.RoleAdmin:
		admins, err := s.admins.List(ctx)
		if err != nil {
			return nil, internalError(err, "failed to list admins")
		}
		for i := range admins {
			items = append(items, models.UserListItem{UserInfo: admins[i].Info()})
		}
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid user type")
	}
	return items, nil
}

// Create registers an account under the next sequential id of its role and returns that id.
func (s *UserService) Create(ctx context.Context, req CreateUserRequest) (string, error) {
	if err := s.validator.Struct(req); err != nil {
		return "", validationError(err)
	}
	role, err := parseUserType(req.UserType)
	if err != nil {
		return "", err
	}

	var exists bool
	switch role {
	case models.RoleStudent:
		exists, err = s.students.ExistsByAccount(ctx, req.Account)
	case models.RoleTeacher:
		exists, err = s.teachers.ExistsByAccount(ctx, req.Account)
	case models.RoleAdmin:
		exists, err = s.admins.ExistsByAccount(ctx, req.Account)
	}
	if err != nil {
		return "", internalError(err, "failed to check account")
	}
	if exists {
		return "", appErrors.Clone(appErrors.ErrConflict, "account already exists")
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return "", err
	}

	var id string
	switch role {
	case models.RoleStudent:
		student := &models.Student{Name: req.Name, Account: req.Account, PasswordHash: hash, ClassID: normalizeOptional(req.ClassID)}
		err = s.students.CreateWithNextID(ctx, student)
		id = student.StudentID
	case models.RoleTeacher:
		teacher := &models.Teacher{Name: req.Name, Account: req.Account, PasswordHash: hash}
		err = s.teachers.CreateWithNextID(ctx, teacher)
		id = teacher.TeacherID
	case models.RoleAdmin:
		admin := &models.Admin{Name: req.Name, Account: req.Account, PasswordHash: hash, Email: normalizeOptional(req.Email), Phone: normalizeOptional(req.Phone)}
		err = s.admins.CreateWithNextID(ctx, admin)
		id = admin.AdminID
	}
	if err != nil {
		return "", registrationError(err, "account already exists")
	}

	s.logger.Info("user created", zap.String("user_type", string(role)), zap.String("user_id", id))
	return id, nil
}

// Update applies a partial update to the account of the given role.
func (s *UserService) Update(ctx context.Context, userType, id string, req UpdateUserRequest) error {
	role, err := parseUserType(userType)
	if err != nil {
		return err
	}

	var hash *string
	if req.Password != nil && *req.Password != "" {
		h, err := hashPassword(*req.Password)
		if err != nil {
			return err
		}
		hash = &h
	}

	switch role {
	case models.RoleStudent:
		student, err := s.students.FindByID(ctx, id)
		if err != nil {
			return lookupError(err)
		}
		applyPresent(&student.Name, req.Name)
		applyPresent(&student.PasswordHash, hash)
		req.ClassID.Apply(&student.ClassID)
		err = s.students.Update(ctx, student)
		return updateError(err)
	case models.RoleTeacher:
		teacher, err := s.teachers.FindByID(ctx, id)
		if err != nil {
			return lookupError(err)
		}
		applyPresent(&teacher.Name, req.Name)
		applyPresent(&teacher.PasswordHash, hash)
		err = s.teachers.Update(ctx, teacher)
		return updateError(err)
	default:
		admin, err := s.admins.FindByID(ctx, id)
		if err != nil {
			return lookupError(err)
		}
		applyPresent(&admin.Name, req.Name)
		applyPresent(&admin.PasswordHash, hash)
		req.Email.Apply(&admin.Email)
		req.Phone.Apply(&admin.Phone)
		err = s.admins.Update(ctx, admin)
		return updateError(err)
	}
}

// Delete removes the account of the given role. Related rows are not touched.
func (s *UserService) Delete(ctx context.Context, userType, id string) error {
	role, err := parseUserType(userType)
	if err != nil {
		return err
	}

	switch role {
	case models.RoleStudent:
		err = s.students.Delete(ctx, id)
	case models.RoleTeacher:
		err = s.teachers.Delete(ctx, id)
	case models.RoleAdmin:
		err = s.admins.Delete(ctx, id)
	}
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "user not found")
		}
		if errors.Is(err, repository.ErrReference) {
			return appErrors.Wrap(err, appErrors.ErrConflict.Code, appErrors.ErrConflict.Status, "user is still referenced by other records")
		}
		return internalError(err, "failed to delete user")
	}
	s.logger.Info("user deleted", zap.String("user_type", string(role)), zap.String("user_id", id))
	return nil
}

// applyPresent overwrites dst when the key was sent, even with an empty value.
func applyPresent(dst *string, value *string) {
	if value != nil {
		*dst = *value
	}
}

func lookupError(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return appErrors.Clone(appErrors.ErrNotFound, "user not found")
	}
	return internalError(err, "failed to load user")
}

func updateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, repository.ErrReference) {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "referenced class does not exist")
	}
	return internalError(err, "failed to update user")
}
