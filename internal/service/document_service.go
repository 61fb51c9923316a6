package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/MischieS/agenta-sub001/internal/domain"
	"github.com/MischieS/agenta-sub001/internal/dto"
	"github.com/MischieS/agenta-sub001/internal/repository"
)

// DocumentService records document metadata for students. Staff can
// touch any student's records; a student only their own.
type DocumentService interface {
	Create(ctx context.Context, principal *domain.Principal, studentID string, req *dto.CreateDocumentRequest) (*domain.Document, error)
	ListByStudent(ctx context.Context, principal *domain.Principal, studentID string) ([]*domain.Document, error)
}

type documentService struct {
	documents repository.DocumentRepository
	students  repository.StudentRepository
}

// NewDocumentService creates a new DocumentService
func NewDocumentService(documents repository.DocumentRepository, students repository.StudentRepository) DocumentService {
	return &documentService{documents: documents, students: students}
}

func (s *documentService) Create(ctx context.Context, principal *domain.Principal, studentID string, req *dto.CreateDocumentRequest) (*domain.Document, error) {
	if principal.IsStudent && principal.ID() != studentID {
		return nil, ErrForbidden
	}

	student, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, ErrNotFound
	}

	document := &domain.Document{
		ID:         uuid.New().String(),
		StudentID:  studentID,
		Name:       req.Name,
		MimeType:   req.MimeType,
		SizeBytes:  req.SizeBytes,
		UploadedBy: principal.ID(),
		CreatedAt:  time.Now(),
	}

	if err := s.documents.Create(ctx, document); err != nil {
		return nil, err
	}
	return document, nil
}

func (s *documentService) ListByStudent(ctx context.Context, principal *domain.Principal, studentID string) ([]*domain.Document, error) {
	if principal.IsStudent && principal.ID() != studentID {
		return nil, ErrForbidden
	}
	return s.documents.ListByStudent(ctx, studentID)
}
