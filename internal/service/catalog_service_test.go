package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/wordup-api/internal/models"
	"github.com/noah-isme/wordup-api/internal/repository"
	appErrors "github.com/noah-isme/wordup-api/pkg/errors"
)

type stubClassRepo struct {
	classes   []models.Class
	createErr error
}

func (s *stubClassRepo) List(ctx context.Context) ([]models.Class, error) { return s.classes, nil }

func (s *stubClassRepo) Create(ctx context.Context, class *models.Class) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.classes = append(s.classes, *class)
	return nil
}

type stubTaskRepo struct {
	tasks []models.Task
}

func (s *stubTaskRepo) List(ctx context.Context) ([]models.Task, error) { return s.tasks, nil }

func (s *stubTaskRepo) Create(ctx context.Context, task *models.Task) error {
	task.ID = int64(len(s.tasks) + 1)
	s.tasks = append(s.tasks, *task)
	return nil
}

type stubScoreRepo struct {
	scores    []models.Score
	createErr error
}

func (s *stubScoreRepo) List(ctx context.Context) ([]models.Score, error) { return s.scores, nil }

func (s *stubScoreRepo) Create(ctx context.Context, score *models.Score) error {
	if s.createErr != nil {
		return s.createErr
	}
	score.ID = int64(len(s.scores) + 1)
	s.scores = append(s.scores, *score)
	return nil
}

type stubWrongBookRepo struct {
	books    []models.WrongBook
	lastUser string
	err      error
}

func (s *stubWrongBookRepo) List(ctx context.Context, studentID string) ([]models.WrongBook, error) {
	s.lastUser = studentID
	return s.books, s.err
}

func TestClassServiceCreate(t *testing.T) {
	repo := &stubClassRepo{}
	svc := NewClassService(repo, nil, zap.NewNop())
	blank := ""

	class, err := svc.Create(context.Background(), CreateClassRequest{ClassID: "class001", ClassName: "Class 1", HeadTeacherID: &blank})
	require.NoError(t, err)
	assert.Nil(t, class.HeadTeacherID)
	assert.Len(t, repo.classes, 1)

	_, err = svc.Create(context.Background(), CreateClassRequest{ClassName: "No id"})
	assert.Equal(t, "missing required field: class_id", appErrors.FromError(err).Message)
}

func TestClassServiceCreateMapsConstraintErrors(t *testing.T) {
	repo := &stubClassRepo{createErr: fmt.Errorf("create class: %w", repository.ErrDuplicate)}
	svc := NewClassService(repo, nil, zap.NewNop())

	_, err := svc.Create(context.Background(), CreateClassRequest{ClassID: "class001", ClassName: "Class 1"})
	assert.Equal(t, 409, appErrors.FromError(err).Status)

	repo.createErr = fmt.Errorf("create class: %w", repository.ErrReference)
	_, err = svc.Create(context.Background(), CreateClassRequest{ClassID: "class002", ClassName: "Class 2"})
	appErr := appErrors.FromError(err)
	assert.Equal(t, 400, appErr.Status)
	assert.Equal(t, "head teacher does not exist", appErr.Message)
}

func TestTaskServiceCreateParsesTimes(t *testing.T) {
	repo := &stubTaskRepo{}
	svc := NewTaskService(repo, nil, zap.NewNop())

	task, err := svc.Create(context.Background(), CreateTaskRequest{
		TaskName:  "Unit 1",
		StartTime: "2024-03-01T08:00:00",
		EndTime:   "2024-03-07T08:00:00Z",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), task.ID)
	assert.Equal(t, time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC), task.StartTime)
	assert.Nil(t, task.Description)
}

func TestTaskServiceCreateRejectsBadWindow(t *testing.T) {
	svc := NewTaskService(&stubTaskRepo{}, nil, zap.NewNop())

	_, err := svc.Create(context.Background(), CreateTaskRequest{TaskName: "x", StartTime: "2024-03-07T08:00:00", EndTime: "2024-03-01T08:00:00"})
	assert.Equal(t, "end_time must not be before start_time", appErrors.FromError(err).Message)

	_, err = svc.Create(context.Background(), CreateTaskRequest{TaskName: "x", StartTime: "yesterday", EndTime: "2024-03-01T08:00:00"})
	assert.Equal(t, "invalid field: start_time", appErrors.FromError(err).Message)
}

func TestTaskServiceCreateNormalisesOffsets(t *testing.T) {
	svc := NewTaskService(&stubTaskRepo{}, nil, zap.NewNop())

	task, err := svc.Create(context.Background(), CreateTaskRequest{
		TaskName:  "Unit 2",
		StartTime: "2025-01-01T10:00:00+08:00",
		EndTime:   "2025-01-01T03:00:00Z",
	})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 1, 1, 2, 0, 0, 0, time.UTC), task.StartTime)
	assert.Equal(t, time.Date(2025, 1, 1, 3, 0, 0, 0, time.UTC), task.EndTime)
	assert.False(t, task.EndTime.Before(task.StartTime))

	_, err = svc.Create(context.Background(), CreateTaskRequest{
		TaskName:  "Unit 3",
		StartTime: "2025-01-01T10:00:00Z",
		EndTime:   "2025-01-01T12:00:00+08:00",
	})
	assert.Equal(t, "end_time must not be before start_time", appErrors.FromError(err).Message)
}

func TestScoreServiceCreate(t *testing.T) {
	repo := &stubScoreRepo{}
	svc := NewScoreService(repo, nil, zap.NewNop())
	value := 95.5

	score, err := svc.Create(context.Background(), CreateScoreRequest{StudentID: "student001", TaskID: 1, Score: &value})
	require.NoError(t, err)
	assert.Equal(t, int64(1), score.ID)

	negative := -1.0
	_, err = svc.Create(context.Background(), CreateScoreRequest{StudentID: "student001", TaskID: 1, Score: &negative})
	assert.Equal(t, 400, appErrors.FromError(err).Status)

	repo.createErr = fmt.Errorf("create score: %w", repository.ErrReference)
	_, err = svc.Create(context.Background(), CreateScoreRequest{StudentID: "ghost", TaskID: 9})
	assert.Equal(t, "student or task does not exist", appErrors.FromError(err).Message)
}

func TestWrongBookServiceList(t *testing.T) {
	count := 3
	repo := &stubWrongBookRepo{books: []models.WrongBook{{ID: 1, StudentID: "student001", WordCount: &count}}}
	svc := NewWrongBookService(repo)

	books, err := svc.List(context.Background(), "student001")
	require.NoError(t, err)
	assert.Len(t, books, 1)
	assert.Equal(t, "student001", repo.lastUser)

	repo.err = errors.New("boom")
	_, err = svc.List(context.Background(), "")
	assert.Equal(t, 500, appErrors.FromError(err).Status)
}
