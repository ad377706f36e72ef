package service

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"time"

	"github.com/noah-isme/wordup-api/internal/models"
	"github.com/noah-isme/wordup-api/internal/repository"
)

type mockStudentRepo struct {
	items     map[string]*models.Student
	createErr error
	nextSeq   int
	findCalls int
}

func newMockStudentRepo(students ...models.Student) *mockStudentRepo {
	m := &mockStudentRepo{items: make(map[string]*models.Student)}
	for i := range students {
		cp := students[i]
		m.items[cp.StudentID] = &cp
	}
	return m
}

func (m *mockStudentRepo) List(ctx context.Context) ([]models.Student, error) {
	out := make([]models.Student, 0, len(m.items))
	for _, s := range m.items {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StudentID < out[j].StudentID })
	return out, nil
}

func (m *mockStudentRepo) FindByID(ctx context.Context, id string) (*models.Student, error) {
	m.findCalls++
	if s, ok := m.items[id]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockStudentRepo) FindByAccount(ctx context.Context, account string) (*models.Student, error) {
	m.findCalls++
	for _, s := range m.items {
		if s.Account == account {
			cp := *s
			return &cp, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *mockStudentRepo) ExistsByAccount(ctx context.Context, account string) (bool, error) {
	for _, s := range m.items {
		if s.Account == account {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockStudentRepo) Create(ctx context.Context, student *models.Student) error {
	if m.createErr != nil {
		return m.createErr
	}
	if _, ok := m.items[student.StudentID]; ok {
		return fmt.Errorf("create student: %w", repository.ErrDuplicate)
	}
	cp := *student
	m.items[student.StudentID] = &cp
	return nil
}

func (m *mockStudentRepo) CreateWithNextID(ctx context.Context, student *models.Student) error {
	m.nextSeq++
	student.StudentID = fmt.Sprintf("student%03d", m.nextSeq)
	return m.Create(ctx, student)
}

func (m *mockStudentRepo) Update(ctx context.Context, student *models.Student) error {
	cp := *student
	m.items[student.StudentID] = &cp
	return nil
}

func (m *mockStudentRepo) Delete(ctx context.Context, id string) error {
	if _, ok := m.items[id]; !ok {
		return sql.ErrNoRows
	}
	delete(m.items, id)
	return nil
}

type mockTeacherRepo struct {
	items   map[string]*models.Teacher
	nextSeq int
}

func newMockTeacherRepo(teachers ...models.Teacher) *mockTeacherRepo {
	m := &mockTeacherRepo{items: make(map[string]*models.Teacher)}
	for i := range teachers {
		cp := teachers[i]
		m.items[cp.TeacherID] = &cp
	}
	return m
}

func (m *mockTeacherRepo) List(ctx context.Context) ([]models.Teacher, error) {
	out := make([]models.Teacher, 0, len(m.items))
	for _, t := range m.items {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TeacherID < out[j].TeacherID })
	return out, nil
}

func (m *mockTeacherRepo) FindByID(ctx context.Context, id string) (*models.Teacher, error) {
	if t, ok := m.items[id]; ok {
		cp := *t
		return &cp, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockTeacherRepo) FindByAccount(ctx context.Context, account string) (*models.Teacher, error) {
	for _, t := range m.items {
		if t.Account == account {
			cp := *t
			return &cp, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *mockTeacherRepo) ExistsByAccount(ctx context.Context, account string) (bool, error) {
	_, err := m.FindByAccount(ctx, account)
	return err == nil, nil
}

func (m *mockTeacherRepo) Create(ctx context.Context, teacher *models.Teacher) error {
	if _, ok := m.items[teacher.TeacherID]; ok {
		return fmt.Errorf("create teacher: %w", repository.ErrDuplicate)
	}
	cp := *teacher
	m.items[teacher.TeacherID] = &cp
	return nil
}

func (m *mockTeacherRepo) CreateWithNextID(ctx context.Context, teacher *models.Teacher) error {
	m.nextSeq++
	teacher.TeacherID = fmt.Sprintf("teacher%03d", m.nextSeq)
	return m.Create(ctx, teacher)
}

func (m *mockTeacherRepo) Update(ctx context.Context, teacher *models.Teacher) error {
	cp := *teacher
	m.items[teacher.TeacherID] = &cp
	return nil
}

func (m *mockTeacherRepo) Delete(ctx context.Context, id string) error {
	if _, ok := m.items[id]; !ok {
		return sql.ErrNoRows
	}
	delete(m.items, id)
	return nil
}

type mockAdminRepo struct {
	items   map[string]*models.Admin
	nextSeq int
}

func newMockAdminRepo(admins ...models.Admin) *mockAdminRepo {
	m := &mockAdminRepo{items: make(map[string]*models.Admin)}
	for i := range admins {
		cp := admins[i]
		m.items[cp.AdminID] = &cp
	}
	return m
}

func (m *mockAdminRepo) List(ctx context.Context) ([]models.Admin, error) {
	out := make([]models.Admin, 0, len(m.items))
	for _, a := range m.items {
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AdminID < out[j].AdminID })
	return out, nil
}

func (m *mockAdminRepo) FindByID(ctx context.Context, id string) (*models.Admin, error) {
	if a, ok := m.items[id]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockAdminRepo) FindByAccount(ctx context.Context, account string) (*models.Admin, error) {
	for _, a := range m.items {
		if a.Account == account {
			cp := *a
			return &cp, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *mockAdminRepo) ExistsByAccount(ctx context.Context, account string) (bool, error) {
	_, err := m.FindByAccount(ctx, account)
	return err == nil, nil
}

func (m *mockAdminRepo) Create(ctx context.Context, admin *models.Admin) error {
	if _, ok := m.items[admin.AdminID]; ok {
		return fmt.Errorf("create admin: %w", repository.ErrDuplicate)
	}
	cp := *admin
	m.items[admin.AdminID] = &cp
	return nil
}

func (m *mockAdminRepo) CreateWithNextID(ctx context.Context, admin *models.Admin) error {
	m.nextSeq++
	admin.AdminID = fmt.Sprintf("admin%03d", m.nextSeq)
	return m.Create(ctx, admin)
}

func (m *mockAdminRepo) Update(ctx context.Context, admin *models.Admin) error {
	cp := *admin
	m.items[admin.AdminID] = &cp
	return nil
}

func (m *mockAdminRepo) Delete(ctx context.Context, id string) error {
	if _, ok := m.items[id]; !ok {
		return sql.ErrNoRows
	}
	delete(m.items, id)
	return nil
}

type mockDenyList struct {
	revoked map[string]time.Duration
}

func (m *mockDenyList) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if m.revoked == nil {
		m.revoked = make(map[string]time.Duration)
	}
	m.revoked[tokenID] = ttl
	return nil
}

func (m *mockDenyList) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	_, ok := m.revoked[tokenID]
	return ok, nil
}
