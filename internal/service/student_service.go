package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	"github.com/MischieS/agenta-sub001/internal/auth"
	"github.com/MischieS/agenta-sub001/internal/domain"
	"github.com/MischieS/agenta-sub001/internal/dto"
	"github.com/MischieS/agenta-sub001/internal/repository"
	"github.com/MischieS/agenta-sub001/pkg/logger"
	"github.com/MischieS/agenta-sub001/pkg/telemetry"
)

// StudentService covers the public intake wizard and the back-office
// student management operations
type StudentService interface {
	// Apply handles the public selection-wizard submission
	Apply(ctx context.Context, req *dto.ApplicationRequest) (*domain.Student, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Student, error)
	Get(ctx context.Context, id string) (*domain.Student, error)
	Update(ctx context.Context, id string, req *dto.UpdateStudentRequest) (*domain.Student, error)
	Delete(ctx context.Context, id string) error
	// Assign links a staff member and flips status pending -> assigned
	Assign(ctx context.Context, studentID, userID string) (*domain.Student, error)
}

type studentService struct {
	students      repository.StudentRepository
	users         repository.UserRepository
	notifications NotificationService
	bcryptCost    int
	log           *logger.Logger
}

// NewStudentService creates a new StudentService
func NewStudentService(
	students repository.StudentRepository,
	users repository.UserRepository,
	notifications NotificationService,
	bcryptCost int,
) StudentService {
	if bcryptCost <= 0 {
		bcryptCost = auth.DefaultBcryptCost
	}
	return &studentService{
		students:      students,
		users:         users,
		notifications: notifications,
		bcryptCost:    bcryptCost,
		log:           logger.Get(),
	}
}

func (s *studentService) Apply(ctx context.Context, req *dto.ApplicationRequest) (*domain.Student, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.student.apply")
	defer span.End()

	// Reject an email present in either store so login never has to
	// tie-break a collision created here
	if taken, err := s.students.ExistsByEmail(ctx, req.Email); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	} else if taken {
		span.SetStatus(codes.Error, "email taken")
		return nil, ErrEmailTaken
	}
	if taken, err := s.users.ExistsByEmail(ctx, req.Email); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	} else if taken {
		span.SetStatus(codes.Error, "email taken by staff account")
		return nil, ErrEmailTaken
	}

	hash, err := auth.HashPassword(req.Password, s.bcryptCost)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	now := time.Now()
	student := &domain.Student{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Surname:      req.Surname,
		Email:        req.Email,
		PasswordHash: hash,
		Phone:        req.Phone,
		Birthdate:    req.Birthdate,
		Country:      req.Country,
		Address:      req.Address,
		DegreeType:   req.DegreeType,
		Departments:  req.Departments,
		Status:       domain.StudentStatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.students.Create(ctx, student); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	s.notifyAdmins(ctx, domain.NotificationStudentApplied,
		fmt.Sprintf("%s %s applied (%s)", student.Name, student.Surname, student.DegreeType))

	span.SetAttributes(attribute.String("student_id", student.ID))
	span.SetStatus(codes.Ok, "")
	return student.Sanitized(), nil
}

func (s *studentService) List(ctx context.Context, limit, offset int) ([]*domain.Student, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	students, err := s.students.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	for i, st := range students {
		students[i] = st.Sanitized()
	}
	return students, nil
}

func (s *studentService) Get(ctx context.Context, id string) (*domain.Student, error) {
	student, err := s.students.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, ErrNotFound
	}
	return student.Sanitized(), nil
}

func (s *studentService) Update(ctx context.Context, id string, req *dto.UpdateStudentRequest) (*domain.Student, error) {
	student, err := s.students.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, ErrNotFound
	}

	applyStudentSelfUpdate(student, &req.UpdateStudentSelfRequest)

	if req.Email != nil && *req.Email != student.Email {
		taken, err := s.students.ExistsByEmail(ctx, *req.Email)
		if err != nil {
			return nil, err
		}
		if !taken {
			taken, err = s.users.ExistsByEmail(ctx, *req.Email)
			if err != nil {
				return nil, err
			}
		}
		if taken {
			return nil, ErrEmailTaken
		}
		student.Email = *req.Email
	}
	if req.Status != nil {
		status := domain.StudentStatus(*req.Status)
		if status != domain.StudentStatusPending && status != domain.StudentStatusAssigned {
			return nil, ErrInvalidStatus
		}
		student.Status = status
	}

	if err := s.students.Update(ctx, student); err != nil {
		return nil, err
	}
	return student.Sanitized(), nil
}

func (s *studentService) Delete(ctx context.Context, id string) error {
	student, err := s.students.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if student == nil {
		return ErrNotFound
	}
	return s.students.Delete(ctx, id)
}

func (s *studentService) Assign(ctx context.Context, studentID, userID string) (*domain.Student, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.student.assign")
	defer span.End()

	student, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	if student == nil {
		span.SetStatus(codes.Error, "student not found")
		return nil, ErrNotFound
	}

	staff, err := s.users.GetByID(ctx, userID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	if staff == nil {
		span.SetStatus(codes.Error, "staff not found")
		return nil, ErrNotFound
	}

	student.AssignedUserID = &staff.ID
	student.Status = domain.StudentStatusAssigned

	if err := s.students.Update(ctx, student); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	payload := fmt.Sprintf("%s %s assigned to %s %s", student.Name, student.Surname, staff.Name, staff.Surname)
	if err := s.notifications.Notify(ctx, student.ID, true, domain.NotificationStudentAssigned, payload); err != nil {
		s.log.Warn("failed to notify student of assignment", zap.String("student_id", student.ID), zap.Error(err))
	}
	if err := s.notifications.Notify(ctx, staff.ID, false, domain.NotificationStudentAssigned, payload); err != nil {
		s.log.Warn("failed to notify staff of assignment", zap.String("user_id", staff.ID), zap.Error(err))
	}

	span.SetAttributes(
		attribute.String("student_id", student.ID),
		attribute.String("user_id", staff.ID),
	)
	span.SetStatus(codes.Ok, "")
	return student.Sanitized(), nil
}

// notifyAdmins fans a notification out to every admin account.
// Failures are logged and swallowed; intake must not fail because a
// notice could not be written.
func (s *studentService) notifyAdmins(ctx context.Context, kind domain.NotificationKind, payload string) {
	admins, err := s.users.ListByRole(ctx, domain.RoleAdmin)
	if err != nil {
		s.log.Warn("failed to list admins for notification", zap.Error(err))
		return
	}
	for _, admin := range admins {
		if err := s.notifications.Notify(ctx, admin.ID, false, kind, payload); err != nil {
			s.log.Warn("failed to notify admin", zap.String("user_id", admin.ID), zap.Error(err))
		}
	}
}
