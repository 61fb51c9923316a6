package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/MischieS/agenta-sub001/internal/domain"
	"github.com/MischieS/agenta-sub001/internal/dto"
	"github.com/MischieS/agenta-sub001/internal/repository"
)

// UniversityService manages the public catalog
type UniversityService interface {
	ListActive(ctx context.Context) ([]*domain.University, error)
	Get(ctx context.Context, id string) (*domain.University, error)
	Create(ctx context.Context, req *dto.CreateUniversityRequest) (*domain.University, error)
	Update(ctx context.Context, id string, req *dto.UpdateUniversityRequest) (*domain.University, error)
	Delete(ctx context.Context, id string) error
}

type universityService struct {
	universities repository.UniversityRepository
}

// NewUniversityService creates a new UniversityService
func NewUniversityService(universities repository.UniversityRepository) UniversityService {
	return &universityService{universities: universities}
}

func (s *universityService) ListActive(ctx context.Context) ([]*domain.University, error) {
	return s.universities.ListActive(ctx)
}

func (s *universityService) Get(ctx context.Context, id string) (*domain.University, error) {
	u, err := s.universities.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrNotFound
	}
	return u, nil
}

func (s *universityService) Create(ctx context.Context, req *dto.CreateUniversityRequest) (*domain.University, error) {
	active := true
	if req.Active != nil {
		active = *req.Active
	}

	now := time.Now()
	u := &domain.University{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Country:     req.Country,
		City:        req.City,
		Description: req.Description,
		Ranking:     req.Ranking,
		Active:      active,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.universities.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *universityService) Update(ctx context.Context, id string, req *dto.UpdateUniversityRequest) (*domain.University, error) {
	u, err := s.universities.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrNotFound
	}

	if req.Name != nil {
		u.Name = *req.Name
	}
	if req.Country != nil {
		u.Country = *req.Country
	}
	if req.City != nil {
		u.City = *req.City
	}
	if req.Description != nil {
		u.Description = *req.Description
	}
	if req.Ranking != nil {
		u.Ranking = *req.Ranking
	}
	if req.Active != nil {
		u.Active = *req.Active
	}

	if err := s.universities.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *universityService) Delete(ctx context.Context, id string) error {
	u, err := s.universities.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if u == nil {
		return ErrNotFound
	}
	return s.universities.Delete(ctx, id)
}
