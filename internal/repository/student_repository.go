package repository

import (
	"context"

	"github.com/MischieS/agenta-sub001/internal/domain"
)

// StudentRepository persists student accounts. Email uniqueness holds
// within this collection only; the login flow handles cross-store
// collisions.
type StudentRepository interface {
	Create(ctx context.Context, student *domain.Student) error
	GetByID(ctx context.Context, id string) (*domain.Student, error)
	GetByEmail(ctx context.Context, email string) (*domain.Student, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Student, error)
	ListByAssignedUser(ctx context.Context, userID string) ([]*domain.Student, error)
	Update(ctx context.Context, student *domain.Student) error
	Delete(ctx context.Context, id string) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
