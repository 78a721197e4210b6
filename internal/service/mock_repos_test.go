package service

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/mainlycc/aw/internal/model"
	"github.com/mainlycc/aw/internal/repository"
)

// ── Mock UserRepository ──

type mockUserRepo struct {
	users map[string]*model.User
	seq   int
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if user.UserID == "" {
		m.seq++
		user.UserID = fmt.Sprintf("user-%03d", m.seq)
	}
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) List(_ context.Context, role, search string, page, pageSize int) ([]model.User, int64, error) {
	var result []model.User
	for _, u := range m.users {
		if role != "" && u.Role != role {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(u.LastName), strings.ToLower(search)) {
			continue
		}
		result = append(result, *u)
	}
	return result, int64(len(result)), nil
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) Delete(_ context.Context, id string, _ string) error {
	delete(m.users, id)
	return nil
}

// ── Mock ParentRepository ──

type mockParentRepo struct {
	parents map[string]*model.Parent
	seq     int
}

func newMockParentRepo() *mockParentRepo {
	return &mockParentRepo{parents: make(map[string]*model.Parent)}
}

func (m *mockParentRepo) Create(_ context.Context, parent *model.Parent) error {
	if parent.ParentID == "" {
		m.seq++
		parent.ParentID = fmt.Sprintf("parent-%03d", m.seq)
	}
	m.parents[parent.ParentID] = parent
	return nil
}

func (m *mockParentRepo) GetByID(_ context.Context, id string) (*model.Parent, error) {
	if p, ok := m.parents[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockParentRepo) List(_ context.Context) ([]model.Parent, error) {
	var result []model.Parent
	for _, p := range m.parents {
		result = append(result, *p)
	}
	return result, nil
}

func (m *mockParentRepo) Update(_ context.Context, parent *model.Parent) error {
	m.parents[parent.ParentID] = parent
	return nil
}

func (m *mockParentRepo) Delete(_ context.Context, id string) error {
	delete(m.parents, id)
	return nil
}

// ── Mock StudentRepository ──

type mockStudentRepo struct {
	students map[string]*model.Student
	byTutor  map[string][]string // tutorID -> studentIDs
	seq      int
}

func newMockStudentRepo() *mockStudentRepo {
	return &mockStudentRepo{
		students: make(map[string]*model.Student),
		byTutor:  make(map[string][]string),
	}
}

func (m *mockStudentRepo) Create(_ context.Context, student *model.Student) error {
	if student.StudentID == "" {
		m.seq++
		student.StudentID = fmt.Sprintf("student-%03d", m.seq)
	}
	m.students[student.StudentID] = student
	return nil
}

func (m *mockStudentRepo) GetByID(_ context.Context, id string) (*model.Student, error) {
	if s, ok := m.students[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStudentRepo) List(_ context.Context, search string, page, pageSize int) ([]model.Student, int64, error) {
	var result []model.Student
	for _, s := range m.students {
		if search != "" && !strings.Contains(strings.ToLower(s.LastName), strings.ToLower(search)) {
			continue
		}
		result = append(result, *s)
	}
	return result, int64(len(result)), nil
}

func (m *mockStudentRepo) ListByTutor(_ context.Context, tutorID string) ([]model.Student, error) {
	var result []model.Student
	for _, id := range m.byTutor[tutorID] {
		if s, ok := m.students[id]; ok {
			result = append(result, *s)
		}
	}
	return result, nil
}

func (m *mockStudentRepo) Update(_ context.Context, student *model.Student) error {
	m.students[student.StudentID] = student
	return nil
}

func (m *mockStudentRepo) Delete(_ context.Context, id string, _ string) error {
	delete(m.students, id)
	return nil
}

// ── Mock EnrollmentRepository ──

type mockEnrollmentRepo struct {
	enrollments map[string]*model.Enrollment
	seq         int
}

func newMockEnrollmentRepo() *mockEnrollmentRepo {
	return &mockEnrollmentRepo{enrollments: make(map[string]*model.Enrollment)}
}

func (m *mockEnrollmentRepo) Create(_ context.Context, enrollment *model.Enrollment) error {
	if enrollment.EnrollmentID == "" {
		m.seq++
		enrollment.EnrollmentID = fmt.Sprintf("enrollment-%03d", m.seq)
	}
	m.enrollments[enrollment.EnrollmentID] = enrollment
	return nil
}

func (m *mockEnrollmentRepo) GetByID(_ context.Context, id string) (*model.Enrollment, error) {
	if e, ok := m.enrollments[id]; ok {
		return e, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEnrollmentRepo) List(_ context.Context, tutorID, studentID, subjectID string) ([]model.Enrollment, error) {
	var result []model.Enrollment
	for _, e := range m.enrollments {
		if tutorID != "" && e.TutorID != tutorID {
			continue
		}
		if studentID != "" && e.StudentID != studentID {
			continue
		}
		if subjectID != "" && e.SubjectID != subjectID {
			continue
		}
		result = append(result, *e)
	}
	return result, nil
}

func (m *mockEnrollmentRepo) Update(_ context.Context, enrollment *model.Enrollment) error {
	m.enrollments[enrollment.EnrollmentID] = enrollment
	return nil
}

func (m *mockEnrollmentRepo) Delete(_ context.Context, id string) error {
	delete(m.enrollments, id)
	return nil
}

// ── Mock BillingRepository ──

type mockBillingRepo struct {
	months  map[string]*model.BillingMonth
	entries map[string]*model.BillingEntry
	seq     int
}

func newMockBillingRepo() *mockBillingRepo {
	return &mockBillingRepo{
		months:  make(map[string]*model.BillingMonth),
		entries: make(map[string]*model.BillingEntry),
	}
}

func (m *mockBillingRepo) CreateMonth(_ context.Context, month *model.BillingMonth) error {
	for _, existing := range m.months {
		if existing.EnrollmentID == month.EnrollmentID &&
			existing.Year == month.Year && existing.Month == month.Month {
			return gorm.ErrDuplicatedKey
		}
	}
	if month.BillingMonthID == "" {
		m.seq++
		month.BillingMonthID = fmt.Sprintf("month-%03d", m.seq)
	}
	m.months[month.BillingMonthID] = month
	return nil
}

func (m *mockBillingRepo) GetMonthByID(_ context.Context, id string) (*model.BillingMonth, error) {
	month, ok := m.months[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	// rebuild the Entries preload
	cp := *month
	cp.Entries = nil
	for _, e := range m.entries {
		if e.BillingMonthID == id {
			cp.Entries = append(cp.Entries, *e)
		}
	}
	return &cp, nil
}

func (m *mockBillingRepo) ListMonths(_ context.Context, enrollmentID, tutorID string, year, month int) ([]model.BillingMonth, error) {
	var result []model.BillingMonth
	for id, bm := range m.months {
		if enrollmentID != "" && bm.EnrollmentID != enrollmentID {
			continue
		}
		if tutorID != "" && (bm.Enrollment == nil || bm.Enrollment.TutorID != tutorID) {
			continue
		}
		if year > 0 && bm.Year != year {
			continue
		}
		if month > 0 && bm.Month != month {
			continue
		}
		full, _ := m.GetMonthByID(context.Background(), id)
		result = append(result, *full)
	}
	return result, nil
}

func (m *mockBillingRepo) UpdateMonth(_ context.Context, month *model.BillingMonth) error {
	m.months[month.BillingMonthID] = month
	return nil
}

func (m *mockBillingRepo) AddEntry(_ context.Context, entry *model.BillingEntry) error {
	if entry.BillingEntryID == "" {
		m.seq++
		entry.BillingEntryID = fmt.Sprintf("entry-%03d", m.seq)
	}
	m.entries[entry.BillingEntryID] = entry
	return nil
}

func (m *mockBillingRepo) DeleteEntry(_ context.Context, entryID string) error {
	delete(m.entries, entryID)
	return nil
}

// ── test repository aggregate ──

func newMockRepository() *repository.Repository {
	return &repository.Repository{
		User:       newMockUserRepo(),
		Parent:     newMockParentRepo(),
		Student:    newMockStudentRepo(),
		Enrollment: newMockEnrollmentRepo(),
		Billing:    newMockBillingRepo(),
	}
}
