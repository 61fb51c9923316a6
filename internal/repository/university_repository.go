package repository

import (
	"context"

	"github.com/MischieS/agenta-sub001/internal/domain"
)

// UniversityRepository persists the public university catalog
type UniversityRepository interface {
	Create(ctx context.Context, university *domain.University) error
	GetByID(ctx context.Context, id string) (*domain.University, error)
	ListActive(ctx context.Context) ([]*domain.University, error)
	Update(ctx context.Context, university *domain.University) error
	Delete(ctx context.Context, id string) error
}
