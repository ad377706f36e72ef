package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/wordup-api/internal/models"
	"github.com/noah-isme/wordup-api/internal/service"
	appErrors "github.com/noah-isme/wordup-api/pkg/errors"
)

type authServiceMock struct {
	loginResp   *models.LoginResponse
	loginErr    error
	registerErr error
	meErr       error
	lastLogin   models.LoginRequest
	lastClaims  *models.JWTClaims
	logoutCalls int
}

func (m *authServiceMock) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	m.lastLogin = req
	return m.loginResp, m.loginErr
}

func (m *authServiceMock) RegisterStudent(ctx context.Context, req models.RegisterStudentRequest) (*models.UserInfo, error) {
	if m.registerErr != nil {
		return nil, m.registerErr
	}
	return &models.UserInfo{UserID: req.StudentID, Name: req.Name, Account: req.Account, Role: models.RoleStudent, ClassID: req.ClassID}, nil
}

func (m *authServiceMock) RegisterTeacher(ctx context.Context, req models.RegisterTeacherRequest) (*models.UserInfo, error) {
	return &models.UserInfo{UserID: req.TeacherID, Name: req.Name, Account: req.Account, Role: models.RoleTeacher}, m.registerErr
}

func (m *authServiceMock) RegisterAdmin(ctx context.Context, req models.RegisterAdminRequest) (*models.UserInfo, error) {
	return &models.UserInfo{UserID: req.AdminID, Name: req.Name, Account: req.Account, Role: models.RoleAdmin}, m.registerErr
}

func (m *authServiceMock) Me(ctx context.Context, claims *models.JWTClaims) (*models.UserInfo, error) {
	m.lastClaims = claims
	if m.meErr != nil {
		return nil, m.meErr
	}
	if claims == nil {
		return nil, appErrors.ErrUnauthorized
	}
	return &models.UserInfo{UserID: claims.UserID, Role: claims.Role}, nil
}

func (m *authServiceMock) Logout(ctx context.Context, claims *models.JWTClaims) error {
	m.logoutCalls++
	m.lastClaims = claims
	return nil
}

type wordServiceMock struct {
	words       []models.Word
	created     *service.CreateWordRequest
	updated     *service.UpdateWordRequest
	err         error
	searchCalls int
	lastID      int64
}

func (m *wordServiceMock) List(ctx context.Context) ([]models.Word, error) { return m.words, m.err }

func (m *wordServiceMock) Get(ctx context.Context, id int64) (*models.Word, error) {
	m.lastID = id
	if m.err != nil {
		return nil, m.err
	}
	return &models.Word{ID: id, Content: "apple", Meaning: "a fruit"}, nil
}

func (m *wordServiceMock) Create(ctx context.Context, req service.CreateWordRequest) (*models.Word, error) {
	m.created = &req
	if m.err != nil {
		return nil, m.err
	}
	return &models.Word{ID: 7, Content: req.Content, Meaning: req.Meaning, Speech: req.Speech}, nil
}

func (m *wordServiceMock) BatchImport(ctx context.Context, req service.BatchImportRequest) (int, error) {
	return len(req.Words), m.err
}

func (m *wordServiceMock) Update(ctx context.Context, id int64, req service.UpdateWordRequest) (*models.Word, error) {
	m.lastID = id
	m.updated = &req
	if m.err != nil {
		return nil, m.err
	}
	return &models.Word{ID: id}, nil
}

func (m *wordServiceMock) Delete(ctx context.Context, id int64) error {
	m.lastID = id
	return m.err
}

func (m *wordServiceMock) Search(ctx context.Context, keyword string) ([]models.Word, error) {
	m.searchCalls++
	return m.words, m.err
}

type exporterMock struct {
	format string
	err    error
}

func (m *exporterMock) ExportWords(ctx context.Context, format string) (*service.ExportFile, error) {
	m.format = format
	if m.err != nil {
		return nil, m.err
	}
	return &service.ExportFile{Filename: "words_20240101_000000.csv", ContentType: "text/csv; charset=utf-8", Data: []byte("word_id\n1\n")}, nil
}

type userServiceMock struct {
	users      []models.UserListItem
	lastRole   models.Role
	lastType   string
	lastID     string
	lastUpdate service.UpdateUserRequest
	err        error
}

func (m *userServiceMock) ListAll(ctx context.Context) ([]models.UserListItem, error) {
	return m.users, m.err
}

func (m *userServiceMock) ListByRole(ctx context.Context, role models.Role) ([]models.UserListItem, error) {
	m.lastRole = role
	return m.users, m.err
}

func (m *userServiceMock) Create(ctx context.Context, req service.CreateUserRequest) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return "teacher002", nil
}

func (m *userServiceMock) Update(ctx context.Context, userType, id string, req service.UpdateUserRequest) error {
	m.lastType, m.lastID, m.lastUpdate = userType, id, req
	return m.err
}

func (m *userServiceMock) Delete(ctx context.Context, userType, id string) error {
	m.lastType, m.lastID = userType, id
	return m.err
}

type classServiceMock struct{ err error }

func (m *classServiceMock) List(ctx context.Context) ([]models.Class, error) {
	return []models.Class{{ClassID: "class001", ClassName: "Class 1", StudentCount: 2}}, m.err
}

func (m *classServiceMock) Create(ctx context.Context, req service.CreateClassRequest) (*models.Class, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &models.Class{ClassID: req.ClassID, ClassName: req.ClassName}, nil
}

type taskServiceMock struct{}

func (taskServiceMock) List(ctx context.Context) ([]models.Task, error) { return []models.Task{}, nil }

func (taskServiceMock) Create(ctx context.Context, req service.CreateTaskRequest) (*models.Task, error) {
	return &models.Task{ID: 1, TaskName: req.TaskName}, nil
}

type scoreServiceMock struct{}

func (scoreServiceMock) List(ctx context.Context) ([]models.Score, error) { return []models.Score{}, nil }

func (scoreServiceMock) Create(ctx context.Context, req service.CreateScoreRequest) (*models.Score, error) {
	return &models.Score{ID: 1, StudentID: req.StudentID, TaskID: req.TaskID, Score: req.Score}, nil
}

type wrongBookServiceMock struct{ lastStudent string }

func (m *wrongBookServiceMock) List(ctx context.Context, studentID string) ([]models.WrongBook, error) {
	m.lastStudent = studentID
	return []models.WrongBook{}, nil
}

type statusServiceMock struct {
	healthy bool
	pingErr error
}

func (m statusServiceMock) Status(ctx context.Context) models.SystemStatus {
	return models.SystemStatus{Healthy: m.healthy}
}

func (m statusServiceMock) Ping(ctx context.Context) error { return m.pingErr }

type tokenValidatorMock map[string]*models.JWTClaims

func (m tokenValidatorMock) ValidateToken(ctx context.Context, token string) (*models.JWTClaims, error) {
	if claims, ok := m[token]; ok {
		return claims, nil
	}
	return nil, appErrors.Clone(appErrors.ErrUnauthorized, "invalid token")
}

func newJSONContext(method, target string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var payload []byte
	switch b := body.(type) {
	case nil:
	case string:
		payload = []byte(b)
	default:
		payload, _ = json.Marshal(b)
	}
	req := httptest.NewRequest(method, target, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	return c, w
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Code    int             `json:"code"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}
