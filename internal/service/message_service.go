package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/MischieS/agenta-sub001/internal/domain"
	"github.com/MischieS/agenta-sub001/internal/dto"
	"github.com/MischieS/agenta-sub001/internal/repository"
	"github.com/MischieS/agenta-sub001/pkg/logger"
)

// MessageService persists the advising conversation between a student
// and staff. Delivery is poll-based; there is no live transport.
type MessageService interface {
	Send(ctx context.Context, sender *domain.Principal, req *dto.SendMessageRequest) (*domain.Message, error)
	ListConversation(ctx context.Context, principal *domain.Principal, studentID string, limit, offset int) ([]*domain.Message, error)
}

type messageService struct {
	messages      repository.MessageRepository
	students      repository.StudentRepository
	notifications NotificationService
	log           *logger.Logger
}

// NewMessageService creates a new MessageService
func NewMessageService(
	messages repository.MessageRepository,
	students repository.StudentRepository,
	notifications NotificationService,
) MessageService {
	return &messageService{
		messages:      messages,
		students:      students,
		notifications: notifications,
		log:           logger.Get(),
	}
}

func (s *messageService) Send(ctx context.Context, sender *domain.Principal, req *dto.SendMessageRequest) (*domain.Message, error) {
	var student *domain.Student
	var err error

	if sender.IsStudent {
		// A student always writes into their own conversation and
		// needs an assigned advisor on the other end
		student, err = s.students.GetByID(ctx, sender.ID())
		if err != nil {
			return nil, err
		}
		if student == nil {
			return nil, ErrNotFound
		}
		if student.AssignedUserID == nil {
			return nil, ErrForbidden
		}
	} else {
		if req.StudentID == "" {
			return nil, ErrNotFound
		}
		student, err = s.students.GetByID(ctx, req.StudentID)
		if err != nil {
			return nil, err
		}
		if student == nil {
			return nil, ErrNotFound
		}
	}

	userID := sender.ID()
	if sender.IsStudent {
		userID = *student.AssignedUserID
	}

	message := &domain.Message{
		ID:              uuid.New().String(),
		StudentID:       student.ID,
		UserID:          userID,
		SenderIsStudent: sender.IsStudent,
		Body:            req.Body,
		CreatedAt:       time.Now(),
	}

	if err := s.messages.Create(ctx, message); err != nil {
		return nil, err
	}

	// Notify the other party
	recipientID, recipientIsStudent := userID, false
	if !sender.IsStudent {
		recipientID, recipientIsStudent = student.ID, true
	}
	payload := fmt.Sprintf("New message from %s", sender.Email())
	if err := s.notifications.Notify(ctx, recipientID, recipientIsStudent, domain.NotificationMessageReceived, payload); err != nil {
		s.log.Warn("failed to notify message recipient",
			zap.String("recipient_id", recipientID),
			zap.Error(err),
		)
	}

	return message, nil
}

func (s *messageService) ListConversation(ctx context.Context, principal *domain.Principal, studentID string, limit, offset int) ([]*domain.Message, error) {
	if limit <= 0 || limit > 200 {
		limit = 100
	}

	// Students only ever read their own conversation
	if principal.IsStudent {
		studentID = principal.ID()
	}
	if studentID == "" {
		return nil, ErrNotFound
	}

	return s.messages.ListByStudent(ctx, studentID, limit, offset)
}
