package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/MischieS/agenta-sub001/internal/domain"
	"github.com/MischieS/agenta-sub001/internal/repository"
)

// NotificationService stores in-app notices and mirrors them onto the
// event stream
type NotificationService interface {
	// Notify records a notification and publishes the matching event
	Notify(ctx context.Context, recipientID string, isStudent bool, kind domain.NotificationKind, payload string) error
	// List returns the principal's notifications, newest first
	List(ctx context.Context, principal *domain.Principal, limit, offset int) ([]*domain.Notification, error)
	// MarkRead marks one of the principal's notifications as read
	MarkRead(ctx context.Context, principal *domain.Principal, notificationID string) error
}

type notificationService struct {
	notifications repository.NotificationRepository
	events        EventPublisher
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(notifications repository.NotificationRepository, events EventPublisher) NotificationService {
	if events == nil {
		events = NopEventPublisher{}
	}
	return &notificationService{
		notifications: notifications,
		events:        events,
	}
}

func (s *notificationService) Notify(ctx context.Context, recipientID string, isStudent bool, kind domain.NotificationKind, payload string) error {
	n := &domain.Notification{
		ID:                 uuid.New().String(),
		RecipientID:        recipientID,
		RecipientIsStudent: isStudent,
		Kind:               kind,
		Payload:            payload,
		CreatedAt:          time.Now(),
	}
	if err := s.notifications.Create(ctx, n); err != nil {
		return err
	}
	s.events.PublishEvent(ctx, kind, recipientID, payload)
	return nil
}

func (s *notificationService) List(ctx context.Context, principal *domain.Principal, limit, offset int) ([]*domain.Notification, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.notifications.ListByRecipient(ctx, principal.ID(), principal.IsStudent, limit, offset)
}

func (s *notificationService) MarkRead(ctx context.Context, principal *domain.Principal, notificationID string) error {
	n, err := s.notifications.GetByID(ctx, notificationID)
	if err != nil {
		return err
	}
	if n == nil {
		return ErrNotFound
	}
	// A notification is only visible to its own recipient
	if n.RecipientID != principal.ID() || n.RecipientIsStudent != principal.IsStudent {
		return ErrForbidden
	}
	return s.notifications.MarkRead(ctx, notificationID)
}
