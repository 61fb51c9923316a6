package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/MischieS/agenta-sub001/internal/auth"
	"github.com/MischieS/agenta-sub001/internal/domain"
	"github.com/MischieS/agenta-sub001/internal/dto"
	"github.com/MischieS/agenta-sub001/internal/repository"
)

// UserService is the admin-facing staff account management surface
type UserService interface {
	Create(ctx context.Context, req *dto.CreateUserRequest) (*domain.User, error)
	List(ctx context.Context, limit, offset int) ([]*domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	Update(ctx context.Context, id string, req *dto.UpdateUserRequest) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}

type userService struct {
	users      repository.UserRepository
	students   repository.StudentRepository
	bcryptCost int
}

// NewUserService creates a new UserService
func NewUserService(users repository.UserRepository, students repository.StudentRepository, bcryptCost int) UserService {
	if bcryptCost <= 0 {
		bcryptCost = auth.DefaultBcryptCost
	}
	return &userService{users: users, students: students, bcryptCost: bcryptCost}
}

func (s *userService) Create(ctx context.Context, req *dto.CreateUserRequest) (*domain.User, error) {
	if err := s.checkEmailFree(ctx, req.Email); err != nil {
		return nil, err
	}

	role := domain.RoleUser
	if req.Role != "" {
		role = domain.Role(req.Role)
		if !role.Valid() {
			return nil, ErrInvalidRole
		}
	}

	hash, err := auth.HashPassword(req.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &domain.User{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Surname:      req.Surname,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user.Sanitized(), nil
}

func (s *userService) List(ctx context.Context, limit, offset int) ([]*domain.User, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	users, err := s.users.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	for i, u := range users {
		users[i] = u.Sanitized()
	}
	return users, nil
}

func (s *userService) Get(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user.Sanitized(), nil
}

func (s *userService) Update(ctx context.Context, id string, req *dto.UpdateUserRequest) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}

	if req.Email != nil && *req.Email != user.Email {
		if err := s.checkEmailFree(ctx, *req.Email); err != nil {
			return nil, err
		}
		user.Email = *req.Email
	}
	if req.Role != nil {
		role := domain.Role(*req.Role)
		if !role.Valid() {
			return nil, ErrInvalidRole
		}
		user.Role = role
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
		return nil, err
	}
	return user.Sanitized(), nil
}

func (s *userService) Delete(ctx context.Context, id string) error {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrNotFound
	}
	return s.users.Delete(ctx, id)
}

func (s *userService) checkEmailFree(ctx context.Context, email string) error {
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
