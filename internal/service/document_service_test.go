package service

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MischieS/agenta-sub001/internal/domain"
	"github.com/MischieS/agenta-sub001/internal/dto"
)

type mockDocumentRepo struct {
	mu        sync.Mutex
	documents []*domain.Document
}

func (m *mockDocumentRepo) Create(ctx context.Context, d *domain.Document) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.documents = append(m.documents, d)
	return nil
}

func (m *mockDocumentRepo) ListByStudent(ctx context.Context, studentID string) ([]*domain.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*domain.Document
	for _, d := range m.documents {
		if d.StudentID == studentID {
			out = append(out, d)
		}
	}
	return out, nil
}

func TestDocumentService(t *testing.T) {
	ctx := context.Background()

	newFixture := func() (*mockStudentRepo, *mockDocumentRepo, DocumentService) {
		students := newMockStudentRepo()
		documents := &mockDocumentRepo{}
		return students, documents, NewDocumentService(documents, students)
	}

	t.Run("student uploads to own file", func(t *testing.T) {
		students, _, svc := newFixture()
		students.seed(&domain.Student{ID: "s-1", Email: "ada@agenta.io"})
		owner := domain.StudentPrincipal(&domain.Student{ID: "s-1", Email: "ada@agenta.io"})

		doc, err := svc.Create(ctx, owner, "s-1", &dto.CreateDocumentRequest{
			Name: "transcript.pdf", MimeType: "application/pdf", SizeBytes: 1024,
		})
		require.NoError(t, err)
		assert.Equal(t, "s-1", doc.StudentID)
		assert.Equal(t, "s-1", doc.UploadedBy)
	})

	t.Run("student cannot touch another student's file", func(t *testing.T) {
		students, _, svc := newFixture()
		students.seed(&domain.Student{ID: "s-2", Email: "eve@agenta.io"})
		intruder := domain.StudentPrincipal(&domain.Student{ID: "s-1", Email: "ada@agenta.io"})

		_, err := svc.Create(ctx, intruder, "s-2", &dto.CreateDocumentRequest{Name: "x.pdf"})
		assert.ErrorIs(t, err, ErrForbidden)

		_, err = svc.ListByStudent(ctx, intruder, "s-2")
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("staff reads any student's documents", func(t *testing.T) {
		students, documents, svc := newFixture()
		students.seed(&domain.Student{ID: "s-1", Email: "ada@agenta.io"})
		documents.documents = []*domain.Document{
			{ID: "d-1", StudentID: "s-1", Name: "transcript.pdf"},
		}
		staff := domain.StaffPrincipal(&domain.User{ID: "u-1", Email: "advisor@agenta.io", Role: domain.RoleStaff})

		docs, err := svc.ListByStudent(ctx, staff, "s-1")
		require.NoError(t, err)
		assert.Len(t, docs, 1)
	})

	t.Run("unknown student", func(t *testing.T) {
		_, _, svc := newFixture()
		staff := domain.StaffPrincipal(&domain.User{ID: "u-1", Email: "advisor@agenta.io", Role: domain.RoleAdmin})

		_, err := svc.Create(ctx, staff, "ghost", &dto.CreateDocumentRequest{Name: "x.pdf"})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
