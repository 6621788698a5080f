package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/classora/classora-backend/internal/config"
	"github.com/classora/classora-backend/internal/model"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:  "test-secret",
		JWTExpiry:  time.Hour,
		BcryptCost: 4,
	}
}

// memUserStore is an in-memory user table keyed the way the real one is:
// emails are unique per tenant, not globally.
type memUserStore struct {
	mu     sync.Mutex
	users  []*model.User
	nextID int
}

func newMemUserStore() *memUserStore {
	return &memUserStore{nextID: 1}
}

func (m *memUserStore) Create(ctx context.Context, u *model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u.ID = m.nextID
	m.nextID++
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	cp := *u
	m.users = append(m.users, &cp)
	return nil
}

func (m *memUserStore) GetByEmail(ctx context.Context, tenantID, email string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.TenantID == tenantID && u.Email == strings.ToLower(email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (m *memUserStore) GetByID(ctx context.Context, tenantID string, id int) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.TenantID == tenantID && u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (m *memUserStore) EmailExists(ctx context.Context, email string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == strings.ToLower(email) {
			return true, nil
		}
	}
	return false, nil
}

func (m *memUserStore) List(ctx context.Context, tenantID string) ([]model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []model.User
	for _, u := range m.users {
		if u.TenantID == tenantID {
			out = append(out, *u)
		}
	}
	return out, nil
}

type memTenantStore struct {
	mu      sync.Mutex
	tenants []*model.Tenant
	nextID  int
}

func newMemTenantStore() *memTenantStore {
	return &memTenantStore{nextID: 1}
}

func (m *memTenantStore) GetBySlug(ctx context.Context, slug string) (*model.Tenant, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, t := range m.tenants {
		if t.Slug == slug {
			cp := *t
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (m *memTenantStore) Create(ctx context.Context, t *model.Tenant) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	t.ID = m.nextID
	m.nextID++
	t.CreatedAt = time.Now()
	t.UpdatedAt = t.CreatedAt
	cp := *t
	m.tenants = append(m.tenants, &cp)
	return nil
}

func (m *memTenantStore) SetOwner(ctx context.Context, tenantID string, ownerUserID int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, t := range m.tenants {
		if t.TenantID == tenantID {
			t.OwnerUserID = ownerUserID
			return nil
		}
	}
	return ErrNotFound
}

type memSessionStore struct {
	mu       sync.Mutex
	sessions []model.AuthSession
}

func (m *memSessionStore) Append(ctx context.Context, s *model.AuthSession) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s.ID = len(m.sessions) + 1
	s.CreatedAt = time.Now()
	m.sessions = append(m.sessions, *s)
	return nil
}

type memCounterStore struct {
	mu   sync.Mutex
	seqs map[string]int64
}

func newMemCounterStore() *memCounterStore {
	return &memCounterStore{seqs: make(map[string]int64)}
}

func (m *memCounterStore) Next(ctx context.Context, key string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seqs[key]++
	return m.seqs[key], nil
}

type memStudentStore struct {
	mu       sync.Mutex
	students []*model.Student
	nextID   int
}

func newMemStudentStore() *memStudentStore {
	return &memStudentStore{nextID: 1}
}

func (m *memStudentStore) Create(ctx context.Context, s *model.Student) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s.ID = m.nextID
	m.nextID++
	s.CreatedAt = time.Now()
	s.UpdatedAt = s.CreatedAt
	cp := *s
	m.students = append(m.students, &cp)
	return nil
}

func (m *memStudentStore) List(ctx context.Context, tenantID string, opts model.StudentListOptions) ([]model.Student, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []model.Student
	for _, s := range m.students {
		if s.TenantID != tenantID {
			continue
		}
		if !opts.IncludeInactive && !s.IsActive {
			continue
		}
		if opts.ClassID > 0 && s.ClassID != opts.ClassID {
			continue
		}
		if opts.Query != "" && !strings.Contains(strings.ToLower(s.StudentName), strings.ToLower(opts.Query)) &&
			!strings.Contains(s.RegistrationNo, opts.Query) && !strings.Contains(s.MobileNumber, opts.Query) {
			continue
		}
		out = append(out, *s)
	}
	return out, len(out), nil
}

func (m *memStudentStore) GetByID(ctx context.Context, tenantID string, id int, includeInactive bool) (*model.Student, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.students {
		if s.TenantID == tenantID && s.ID == id {
			if !s.IsActive && !includeInactive {
				return nil, ErrNotFound
			}
			cp := *s
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (m *memStudentStore) Update(ctx context.Context, in *model.Student) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, s := range m.students {
		if s.TenantID == in.TenantID && s.ID == in.ID && s.IsActive {
			cp := *in
			cp.UpdatedAt = time.Now()
			m.students[i] = &cp
			return nil
		}
	}
	return ErrNotFound
}

func (m *memStudentStore) Deactivate(ctx context.Context, tenantID string, id int) (*model.Student, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.students {
		if s.TenantID == tenantID && s.ID == id && s.IsActive {
			s.IsActive = false
			s.UpdatedAt = time.Now()
			cp := *s
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (m *memStudentStore) StudentExists(ctx context.Context, tenantID string, id int) (bool, error) {
	_, err := m.GetByID(ctx, tenantID, id, false)
	if err != nil {
		return false, nil
	}
	return true, nil
}

// staticChecker satisfies ClassChecker, TeacherChecker and StudentChecker
// with a fixed membership set per tenant.
type staticChecker struct {
	ids map[string][]int
}

func (c staticChecker) has(tenantID string, id int) bool {
	for _, v := range c.ids[tenantID] {
		if v == id {
			return true
		}
	}
	return false
}

func (c staticChecker) ClassExists(ctx context.Context, tenantID string, id int) (bool, error) {
	return c.has(tenantID, id), nil
}

func (c staticChecker) TeacherExists(ctx context.Context, tenantID string, id int) (bool, error) {
	return c.has(tenantID, id), nil
}

func (c staticChecker) StudentExists(ctx context.Context, tenantID string, id int) (bool, error) {
	return c.has(tenantID, id), nil
}
