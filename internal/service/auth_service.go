package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/noah-isme/wordup-api/internal/models"
	"github.com/noah-isme/wordup-api/internal/repository"
	appErrors "github.com/noah-isme/wordup-api/pkg/errors"
)

type studentRepository interface {
	List(ctx context.Context) ([]models.Student, error)
	FindByID(ctx context.Context, id string) (*models.Student, error)
	FindByAccount(ctx context.Context, account string) (*models.Student, error)
	ExistsByAccount(ctx context.Context, account string) (bool, error)
	Create(ctx context.Context, student *models.Student) error
	CreateWithNextID(ctx context.Context, student *models.Student) error
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id string) error
}

type teacherRepository interface {
	List(ctx context.Context) ([]models.Teacher, error)
	FindByID(ctx context.Context, id string) (*models.Teacher, error)
	FindByAccount(ctx context.Context, account string) (*models.Teacher, error)
	ExistsByAccount(ctx context.Context, account string) (bool, error)
	Create(ctx context.Context, teacher *models.Teacher) error
	CreateWithNextID(ctx context.Context, teacher *models.Teacher) error
	Update(ctx context.Context, teacher *models.Teacher) error
	Delete(ctx context.Context, id string) error
}

type adminRepository interface {
	List(ctx context.Context) ([]models.Admin, error)
	FindByID(ctx context.Context, id string) (*models.Admin, error)
	FindByAccount(ctx context.Context, account string) (*models.Admin, error)
	ExistsByAccount(ctx context.Context, account string) (bool, error)
	Create(ctx context.Context, admin *models.Admin) error
	CreateWithNextID(ctx context.Context, admin *models.Admin) error
	Update(ctx context.Context, admin *models.Admin) error
	Delete(ctx context.Context, id string) error
}

type tokenDenyList interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// AuthConfig defines configuration for token issuing.
type AuthConfig struct {
	Secret string
	Expiry time.Duration
	Issuer string
}

// AuthService provides login, registration and token validation.
type AuthService struct {
	students  studentRepository
	teachers  teacherRepository
	admins    adminRepository
	tokens    tokenDenyList
	validator *validator.Validate
	logger    *zap.Logger
	config    AuthConfig
	now       func() time.Time
}

// NewAuthService constructs an AuthService. tokens may be nil, in which case logout
// only discards the token client side.
func NewAuthService(students studentRepository, teachers teacherRepository, admins adminRepository, tokens tokenDenyList, validate *validator.Validate, logger *zap.Logger, config AuthConfig) *AuthService {
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if config.Expiry <= 0 {
		config.Expiry = 24 * time.Hour
	}
	return &AuthService{
		students:  students,
		teachers:  teachers,
		admins:    admins,
		tokens:    tokens,
		validator: validate,
		logger:    logger,
		config:    config,
		now:       time.Now,
	}
}

// Login authenticates an account of the requested role and issues an access token.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	if req.Account == "" || req.Password == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "account and password are required")
	}
	if req.UserType == "" {
		req.UserType = string(models.RoleStudent)
	}
	role, err := parseUserType(req.UserType)
	if err != nil {
		return nil, err
	}

	info, passwordHash, err := s.findByAccount(ctx, role, req.Account)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.ErrInvalidCredentials
		}
		return nil, internalError(err, "failed to load account")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(req.Password)); err != nil {
		return nil, appErrors.ErrInvalidCredentials
	}

	token, err := s.issueToken(info)
	if err != nil {
		return nil, internalError(err, "failed to create access token")
	}

	s.logger.Info("user logged in", zap.String("user_id", info.UserID), zap.String("user_type", string(role)))
	return &models.LoginResponse{
		User:      info,
		Token:     token,
		ExpiresIn: int64(s.config.Expiry.Seconds()),
	}, nil
}

// RegisterStudent creates a student account with a caller chosen id.
func (s *AuthService) RegisterStudent(ctx context.Context, req models.RegisterStudentRequest) (*models.UserInfo, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	if err := s.ensureAccountFree(ctx, s.students.ExistsByAccount, req.Account, "account already exists"); err != nil {
		return nil, err
	}
	hash, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	student := &models.Student{
		StudentID:    req.StudentID,
		Name:         req.Name,
		Account:      req.Account,
		PasswordHash: hash,
		ClassID:      normalizeOptional(req.ClassID),
	}
	if err := s.students.Create(ctx, student); err != nil {
		return nil, registrationError(err, "account already exists")
	}
	info := student.Info()
	return &info, nil
}

// RegisterTeacher creates a teacher account with a caller chosen id.
func (s *AuthService) RegisterTeacher(ctx context.Context, req models.RegisterTeacherRequest) (*models.UserInfo, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	if err := s.ensureAccountFree(ctx, s.teachers.ExistsByAccount, req.Account, "account already exists"); err != nil {
		return nil, err
	}
	hash, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	teacher := &models.Teacher{
		TeacherID:    req.TeacherID,
		Name:         req.Name,
		Account:      req.Account,
		PasswordHash: hash,
	}
	if err := s.teachers.Create(ctx, teacher); err != nil {
		return nil, registrationError(err, "account already exists")
	}
	info := teacher.Info()
	return &info, nil
}

// RegisterAdmin creates an admin account with a caller chosen id.
func (s *AuthService) RegisterAdmin(ctx context.Context, req models.RegisterAdminRequest) (*models.UserInfo, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	if err := s.ensureAccountFree(ctx, s.admins.ExistsByAccount, req.Account, "admin account already exists"); err != nil {
		return nil, err
	}
	hash, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	admin := &models.Admin{
		AdminID:      req.AdminID,
		Name:         req.Name,
		Account:      req.Account,
		PasswordHash: hash,
		Email:        normalizeOptional(req.Email),
		Phone:        normalizeOptional(req.Phone),
	}
	if err := s.admins.Create(ctx, admin); err != nil {
		return nil, registrationError(err, "admin account already exists")
	}
	info := admin.Info()
	return &info, nil
}

// Me re-reads the account behind the token claims.
func (s *AuthService) Me(ctx context.Context, claims *models.JWTClaims) (*models.UserInfo, error) {
	if claims == nil {
		return nil, appErrors.ErrUnauthorized
	}
	if !claims.Role.Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid user type")
	}

	info, err := s.findByID(ctx, claims.Role, claims.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("%s user not found", claims.Role))
		}
		return nil, internalError(err, "failed to load current user")
	}
	return &info, nil
}

// Logout revokes the token id until the token would have expired anyway. Without a
// deny-list, or without claims, it is a no-op.
func (s *AuthService) Logout(ctx context.Context, claims *models.JWTClaims) error {
	if claims == nil || claims.ID == "" || s.tokens == nil {
		return nil
	}
	ttl := s.config.Expiry
	if claims.ExpiresAt != nil {
		ttl = claims.ExpiresAt.Time.Sub(s.now())
	}
	if err := s.tokens.Revoke(ctx, claims.ID, ttl); err != nil {
		s.logger.Warn("failed to revoke token", zap.String("user_id", claims.UserID), zap.Error(err))
	}
	return nil
}

// ValidateToken parses and validates an access token returning the claims.
func (s *AuthService) ValidateToken(ctx context.Context, tokenString string) (*models.JWTClaims, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now)}
	if s.config.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.config.Issuer))
	}
	token, err := jwt.ParseWithClaims(tokenString, &models.JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.config.Secret), nil
	}, opts...)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUnauthorized.Code, appErrors.ErrUnauthorized.Status, "invalid token")
	}

	claims, ok := token.Claims.(*models.JWTClaims)
	if !ok || !token.Valid {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "invalid token claims")
	}

	if s.tokens != nil && claims.ID != "" {
		revoked, err := s.tokens.IsRevoked(ctx, claims.ID)
		if err != nil {
			s.logger.Warn("token deny-list lookup failed", zap.Error(err))
		} else if revoked {
			return nil, appErrors.Clone(appErrors.ErrUnauthorized, "token has been revoked")
		}
	}
	return claims, nil
}

func (s *AuthService) issueToken(info models.UserInfo) (string, error) {
	issuedAt := s.now().UTC()
	claims := &models.JWTClaims{
		UserID:  info.UserID,
		Role:    info.Role,
		Name:    info.Name,
		Account: info.Account,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    s.config.Issuer,
			Subject:   info.UserID,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.config.Expiry)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.config.Secret))
}

func (s *AuthService) findByAccount(ctx context.Context, role models.Role, account string) (models.UserInfo, string, error) {
	switch role {
	case models.RoleStudent:
		student, err := s.students.FindByAccount(ctx, account)
		if err != nil {
			return models.UserInfo{}, "", err
		}
		return student.Info(), student.PasswordHash, nil
	case models.RoleTeacher:
		teacher, err := s.teachers.FindByAccount(ctx, account)
		if err != nil {
			return models.UserInfo{}, "", err
		}
		return teacher.Info(), teacher.PasswordHash, nil
	default:
		admin, err := s.admins.FindByAccount(ctx, account)
		if err != nil {
			return models.UserInfo{}, "", err
		}
		return admin.Info(), admin.PasswordHash, nil
	}
}

func (s *AuthService) findByID(ctx context.Context, role models.Role, id string) (models.UserInfo, error) {
	switch role {
	case models.RoleStudent:
		student, err := s.students.FindByID(ctx, id)
		if err != nil {
			return models.UserInfo{}, err
		}
		return student.Info(), nil
	case models.RoleTeacher:
		teacher, err := s.teachers.FindByID(ctx, id)
		if err != nil {
			return models.UserInfo{}, err
		}
		return teacher.Info(), nil
	default:
		admin, err := s.admins.FindByID(ctx, id)
		if err != nil {
			return models.UserInfo{}, err
		}
		return admin.Info(), nil
	}
}

func (s *AuthService) ensureAccountFree(ctx context.Context, exists func(context.Context, string) (bool, error), account, conflictMessage string) error {
	taken, err := exists(ctx, account)
	if err != nil {
		return internalError(err, "failed to check account")
	}
	if taken {
		return appErrors.Clone(appErrors.ErrConflict, conflictMessage)
	}
	return nil
}

func registrationError(err error, conflictMessage string) error {
	switch {
	case errors.Is(err, repository.ErrDuplicate):
		return appErrors.Wrap(err, appErrors.ErrConflict.Code, appErrors.ErrConflict.Status, conflictMessage)
	case errors.Is(err, repository.ErrReference):
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "referenced class does not exist")
	}
	return internalError(err, "registration failed")
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", internalError(err, "failed to hash password")
	}
	return string(hash), nil
}
