package service

import (
	"context"
	"sync"

	"github.com/MischieS/agenta-sub001/internal/domain"
)

// In-memory repository fakes. They track call counts where a test
// needs to prove a path never touched the store.

type mockUserRepo struct {
	mu       sync.Mutex
	users    map[string]*domain.User
	getCalls int
	err      error
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*domain.User)}
}

func (m *mockUserRepo) seed(u *domain.User) {
	m.users[u.ID] = u
}

func (m *mockUserRepo) Create(ctx context.Context, user *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.getCalls++
	if m.err != nil {
		return nil, m.err
	}
	return m.users[id], nil
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.getCalls++
	if m.err != nil {
		return nil, m.err
	}
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepo) List(ctx context.Context, limit, offset int) ([]*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*domain.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, u)
	}
	return out, nil
}

func (m *mockUserRepo) ListByRole(ctx context.Context, role domain.Role) ([]*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*domain.User
	for _, u := range m.users {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out, nil
}

func (m *mockUserRepo) Update(ctx context.Context, user *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.users, id)
	return nil
}

func (m *mockUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

type mockStudentRepo struct {
	mu       sync.Mutex
	students map[string]*domain.Student
	getCalls int
	err      error
}

func newMockStudentRepo() *mockStudentRepo {
	return &mockStudentRepo{students: make(map[string]*domain.Student)}
}

func (m *mockStudentRepo) seed(s *domain.Student) {
	m.students[s.ID] = s
}

func (m *mockStudentRepo) Create(ctx context.Context, student *domain.Student) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.students[student.ID] = student
	return nil
}

func (m *mockStudentRepo) GetByID(ctx context.Context, id string) (*domain.Student, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.getCalls++
	if m.err != nil {
		return nil, m.err
	}
	return m.students[id], nil
}

func (m *mockStudentRepo) GetByEmail(ctx context.Context, email string) (*domain.Student, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.getCalls++
	if m.err != nil {
		return nil, m.err
	}
	for _, s := range m.students {
		if s.Email == email {
			return s, nil
		}
	}
	return nil, nil
}

func (m *mockStudentRepo) List(ctx context.Context, limit, offset int) ([]*domain.Student, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*domain.Student, 0, len(m.students))
	for _, s := range m.students {
		out = append(out, s)
	}
	return out, nil
}

func (m *mockStudentRepo) ListByAssignedUser(ctx context.Context, userID string) ([]*domain.Student, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*domain.Student
	for _, s := range m.students {
		if s.AssignedUserID != nil && *s.AssignedUserID == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *mockStudentRepo) Update(ctx context.Context, student *domain.Student) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.students[student.ID] = student
	return nil
}

func (m *mockStudentRepo) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.students, id)
	return nil
}

func (m *mockStudentRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.students {
		if s.Email == email {
			return true, nil
		}
	}
	return false, nil
}

type mockNotificationRepo struct {
	mu            sync.Mutex
	notifications map[string]*domain.Notification
}

func newMockNotificationRepo() *mockNotificationRepo {
	return &mockNotificationRepo{notifications: make(map[string]*domain.Notification)}
}

func (m *mockNotificationRepo) Create(ctx context.Context, n *domain.Notification) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notifications[n.ID] = n
	return nil
}

func (m *mockNotificationRepo) GetByID(ctx context.Context, id string) (*domain.Notification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.notifications[id], nil
}

func (m *mockNotificationRepo) ListByRecipient(ctx context.Context, recipientID string, isStudent bool, limit, offset int) ([]*domain.Notification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*domain.Notification
	for _, n := range m.notifications {
		if n.RecipientID == recipientID && n.RecipientIsStudent == isStudent {
			out = append(out, n)
		}
	}
	return out, nil
}

func (m *mockNotificationRepo) MarkRead(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if n, ok := m.notifications[id]; ok {
		n.Read = true
	}
	return nil
}

type mockMessageRepo struct {
	mu       sync.Mutex
	messages []*domain.Message
}

func (m *mockMessageRepo) Create(ctx context.Context, msg *domain.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, msg)
	return nil
}

func (m *mockMessageRepo) ListByStudent(ctx context.Context, studentID string, limit, offset int) ([]*domain.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*domain.Message
	for _, msg := range m.messages {
		if msg.StudentID == studentID {
			out = append(out, msg)
		}
	}
	return out, nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []domain.NotificationKind
}

func (p *recordingPublisher) PublishEvent(ctx context.Context, kind domain.NotificationKind, subjectID string, payload interface{}) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, kind)
}
