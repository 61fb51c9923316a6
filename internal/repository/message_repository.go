package repository

import (
	"context"

	"github.com/MischieS/agenta-sub001/internal/domain"
)

// MessageRepository persists student/staff conversations
type MessageRepository interface {
	Create(ctx context.Context, message *domain.Message) error
	ListByStudent(ctx context.Context, studentID string, limit, offset int) ([]*domain.Message, error)
}

// NotificationRepository persists in-app notifications for either
// account kind
type NotificationRepository interface {
	Create(ctx context.Context, notification *domain.Notification) error
	ListByRecipient(ctx context.Context, recipientID string, isStudent bool, limit, offset int) ([]*domain.Notification, error)
	GetByID(ctx context.Context, id string) (*domain.Notification, error)
	MarkRead(ctx context.Context, id string) error
}

// DocumentRepository persists document metadata for students
type DocumentRepository interface {
	Create(ctx context.Context, document *domain.Document) error
	ListByStudent(ctx context.Context, studentID string) ([]*domain.Document, error)
}
