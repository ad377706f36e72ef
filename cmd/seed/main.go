package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/noah-isme/wordup-api/internal/models"
	"github.com/noah-isme/wordup-api/internal/repository"
	"github.com/noah-isme/wordup-api/pkg/config"
	"github.com/noah-isme/wordup-api/pkg/database"
	"github.com/noah-isme/wordup-api/pkg/logger"
)

const defaultPassword = "123456"

type teacherStore interface {
	Create(ctx context.Context, teacher *models.Teacher) error
}

type studentStore interface {
	Create(ctx context.Context, student *models.Student) error
}

type adminStore interface {
	Create(ctx context.Context, admin *models.Admin) error
}

type classStore interface {
	Create(ctx context.Context, class *models.Class) error
}

type wordStore interface {
	List(ctx context.Context) ([]models.Word, error)
	CreateBatch(ctx context.Context, words []models.Word) error
}

type taskStore interface {
	List(ctx context.Context) ([]models.Task, error)
	Create(ctx context.Context, task *models.Task) error
}

type seeder struct {
	teachers teacherStore
	students studentStore
	admins   adminStore
	classes  classStore
	words    wordStore
	tasks    taskStore
	logger   *zap.Logger
	now      func() time.Time
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	ctx := context.Background()
	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Fatal("failed to connect database", zap.Error(err))
	}
	defer db.Close()

	if err := database.EnsureSchema(ctx, db); err != nil {
		logr.Fatal("failed to ensure schema", zap.Error(err))
	}

	s := &seeder{
		teachers: repository.NewTeacherRepository(db),
		students: repository.NewStudentRepository(db),
		admins:   repository.NewAdminRepository(db),
		classes:  repository.NewClassRepository(db),
		words:    repository.NewWordRepository(db),
		tasks:    repository.NewTaskRepository(db),
		logger:   logr,
		now:      time.Now,
	}
	if err := s.run(ctx); err != nil {
		logr.Fatal("seed failed", zap.Error(err))
	}
	logr.Info("seed complete")
}

// run inserts the development fixtures. Rows that already exist are skipped, so it is
// safe to run repeatedly.
func (s *seeder) run(ctx context.Context) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(defaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	password := string(hash)
	classID := "class001"
	teacherID := "teacher001"
	email := "admin@wordup.local"

	steps := []struct {
		name   string
		insert func() error
	}{
		{"teacher001", func() error {
			return s.teachers.Create(ctx, &models.Teacher{TeacherID: teacherID, Name: "Test Teacher", Account: "testteacher", PasswordHash: password})
		}},
		{"class001", func() error {
			return s.classes.Create(ctx, &models.Class{ClassID: classID, ClassName: "Class One", HeadTeacherID: &teacherID})
		}},
		{"student001", func() error {
			return s.students.Create(ctx, &models.Student{StudentID: "student001", Name: "Test Student", Account: "teststudent", PasswordHash: password, ClassID: &classID})
		}},
		{"admin001", func() error {
			return s.admins.Create(ctx, &models.Admin{AdminID: "admin001", Name: "Administrator", Account: "admin", PasswordHash: password, Email: &email})
		}},
	}
	for _, step := range steps {
		if err := step.insert(); err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				s.logger.Info("seed row exists, skipping", zap.String("row", step.name))
				continue
			}
			return fmt.Errorf("seed %s: %w", step.name, err)
		}
		s.logger.Info("seeded", zap.String("row", step.name))
	}

	if err := s.seedWords(ctx); err != nil {
		return err
	}
	return s.seedTask(ctx)
}

func (s *seeder) seedWords(ctx context.Context) error {
	existing, err := s.words.List(ctx)
	if err != nil {
		return fmt.Errorf("list words: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}
	noun, verb, adj := "n.", "v.", "adj."
	words := []models.Word{
		{Content: "apple", Meaning: "a round fruit", Speech: &noun},
		{Content: "learn", Meaning: "to gain knowledge", Speech: &verb},
		{Content: "brave", Meaning: "showing courage", Speech: &adj},
	}
	if err := s.words.CreateBatch(ctx, words); err != nil {
		return fmt.Errorf("seed words: %w", err)
	}
	s.logger.Info("seeded words", zap.Int("count", len(words)))
	return nil
}

func (s *seeder) seedTask(ctx context.Context) error {
	existing, err := s.tasks.List(ctx)
	if err != nil {
		return fmt.Errorf("list tasks: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}
	start := s.now().UTC().Truncate(time.Second)
	description := "Review this week's words"
	task := &models.Task{TaskName: "Week 1 Vocabulary", Description: &description, StartTime: start, EndTime: start.Add(7 * 24 * time.Hour)}
	if err := s.tasks.Create(ctx, task); err != nil {
		return fmt.Errorf("seed task: %w", err)
	}
	return nil
}
