package service

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/MischieS/agenta-sub001/internal/auth"
	"github.com/MischieS/agenta-sub001/internal/domain"
	"github.com/MischieS/agenta-sub001/internal/dto"
	"github.com/MischieS/agenta-sub001/internal/repository"
	"github.com/MischieS/agenta-sub001/pkg/telemetry"
)

var (
	// ErrInvalidCredentials covers both unknown email and wrong
	// password; clients must not be able to tell them apart.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPrincipalNotFound  = errors.New("principal no longer resolves to an account")
	ErrNotFound           = errors.New("record not found")
	ErrEmailTaken         = errors.New("email already in use")
	ErrForbidden          = errors.New("operation not permitted")
	ErrInvalidRole        = errors.New("unknown role")
	ErrInvalidStatus      = errors.New("unknown student status")
)

// AuthServiceConfig holds configuration for AuthService
type AuthServiceConfig struct {
	BcryptCost int
}

// AuthService issues sessions for and resolves principals from the two
// disjoint account stores
type AuthService interface {
	// Login authenticates an email/password pair against both stores
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	// Authenticate verifies a bearer token and resolves its principal
	Authenticate(ctx context.Context, token string) (*domain.Principal, error)
	// UpdateUserProfile applies a staff self-service update
	UpdateUserProfile(ctx context.Context, userID string, req *dto.UpdateProfileRequest) (*domain.User, error)
	// UpdateStudentProfile applies a student self-service update
	UpdateStudentProfile(ctx context.Context, studentID string, req *dto.UpdateStudentSelfRequest) (*domain.Student, error)
}

type authService struct {
	users      repository.UserRepository
	students   repository.StudentRepository
	tokens     *auth.TokenManager
	bcryptCost int
}

// NewAuthService creates a new AuthService
func NewAuthService(
	users repository.UserRepository,
	students repository.StudentRepository,
	tokens *auth.TokenManager,
	config *AuthServiceConfig,
) AuthService {
	cost := auth.DefaultBcryptCost
	if config != nil && config.BcryptCost > 0 {
		cost = config.BcryptCost
	}
	return &authService{
		users:      users,
		students:   students,
		tokens:     tokens,
		bcryptCost: cost,
	}
}

// Login looks the email up in both stores. When both match, the staff
// account wins; the tie-break is deliberate and mirrored by the
// creation paths, which refuse cross-store duplicates.
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.auth.login")
	defer span.End()

	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	student, err := s.students.GetByEmail(ctx, req.Email)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	var principal *domain.Principal
	var hash string
	switch {
	case user != nil: // staff precedence on cross-store collision
		principal = domain.StaffPrincipal(user)
		hash = user.PasswordHash
	case student != nil:
		principal = domain.StudentPrincipal(student)
		hash = student.PasswordHash
	default:
		span.SetStatus(codes.Error, "unknown email")
		return nil, ErrInvalidCredentials
	}

	if !auth.CheckPassword(req.Password, hash) {
		span.SetStatus(codes.Error, "password mismatch")
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(principal.ID(), principal.Email(), principal.IsStudent)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(
		attribute.String("principal_id", principal.ID()),
		attribute.Bool("is_student", principal.IsStudent),
	)
	span.SetStatus(codes.Ok, "")

	return &dto.LoginResponse{
		User:  dto.NewPrincipalResponse(principal),
		Token: token,
	}, nil
}

// Authenticate verifies the token and resolves the subject against the
// store the isStudent claim selects. A subject whose account was
// deleted after issuance fails closed. Verification failure kinds stay
// distinguishable in the returned error for logging; the guard
// collapses them all into one rejection.
func (s *authService) Authenticate(ctx context.Context, token string) (*domain.Principal, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.auth.authenticate")
	defer span.End()

	claims, err := s.tokens.Verify(token)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	// Isolated branch for integration smoke tests: the reserved
	// subject resolves to a fixed synthetic account and never touches
	// the database.
	if claims.Subject == auth.SmokeTestSubject {
		span.SetAttributes(attribute.Bool("smoke_test", true))
		span.SetStatus(codes.Ok, "")
		return domain.StaffPrincipal(&domain.User{
			ID:    auth.SmokeTestSubject,
			Email: "test@example.com",
			Role:  domain.RoleUser,
		}), nil
	}

	var principal *domain.Principal
	if claims.IsStudent {
		student, err := s.students.GetByID(ctx, claims.Subject)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}
		if student == nil {
			span.SetStatus(codes.Error, "student not found")
			return nil, ErrPrincipalNotFound
		}
		principal = domain.StudentPrincipal(student)
	} else {
		user, err := s.users.GetByID(ctx, claims.Subject)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}
		if user == nil {
			span.SetStatus(codes.Error, "user not found")
			return nil, ErrPrincipalNotFound
		}
		principal = domain.StaffPrincipal(user)
	}

	span.SetAttributes(
		attribute.String("principal_id", principal.ID()),
		attribute.Bool("is_student", principal.IsStudent),
	)
	span.SetStatus(codes.Ok, "")
	return principal, nil
}

// UpdateUserProfile merges the request into the staff record.
// Last write wins; there is no optimistic versioning on auth records.
func (s *authService) UpdateUserProfile(ctx context.Context, userID string, req *dto.UpdateProfileRequest) (*domain.User, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.auth.update_user_profile")
	defer span.End()

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	if user == nil {
		span.SetStatus(codes.Error, "user not found")
		return nil, ErrNotFound
	}

	if req.Email != nil && *req.Email != user.Email {
		if err := s.checkEmailFree(ctx, *req.Email); err != nil {
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}
		user.Email = *req.Email
	}
	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Surname != nil {
		user.Surname = *req.Surname
	}
	if req.Link != nil {
		user.Link = *req.Link
	}

	if err := s.users.Update(ctx, user); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetStatus(codes.Ok, "")
	return user.Sanitized(), nil
}

// UpdateStudentProfile merges the request into the student record
func (s *authService) UpdateStudentProfile(ctx context.Context, studentID string, req *dto.UpdateStudentSelfRequest) (*domain.Student, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.auth.update_student_profile")
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

	applyStudentSelfUpdate(student, req)

	if err := s.students.Update(ctx, student); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetStatus(codes.Ok, "")
	return student.Sanitized(), nil
}

// checkEmailFree rejects an email present in either account store
func (s *authService) checkEmailFree(ctx context.Context, email string) error {
	taken, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return err
	}
	if !taken {
		taken, err = s.students.ExistsByEmail(ctx, email)
		if err != nil {
			return err
		}
	}
	if taken {
		return ErrEmailTaken
	}
	return nil
}

func applyStudentSelfUpdate(student *domain.Student, req *dto.UpdateStudentSelfRequest) {
	if req.Name != nil {
		student.Name = *req.Name
	}
	if req.Surname != nil {
		student.Surname = *req.Surname
	}
	if req.Phone != nil {
		student.Phone = *req.Phone
	}
	if req.Birthdate != nil {
		bd := *req.Birthdate
		student.Birthdate = &bd
	}
	if req.Country != nil {
		student.Country = *req.Country
	}
	if req.Address != nil {
		student.Address = *req.Address
	}
	if req.DegreeType != nil {
		student.DegreeType = *req.DegreeType
	}
	if req.Departments != nil {
		student.Departments = req.Departments
	}
	if req.Link != nil {
		student.Link = *req.Link
	}
	student.UpdatedAt = time.Now()
}
