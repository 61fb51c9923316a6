package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/MischieS/agenta-sub001/internal/domain"
	"github.com/MischieS/agenta-sub001/pkg/redis"
)

const (
	universityDetailKeyPrefix = "university:detail:"
	universityListKey         = "university:list:active"

	defaultCatalogTTL = 10 * time.Minute
)

// CachedUniversityRepository wraps UniversityRepository with Redis
// read-through caching. The catalog is the hottest read path on the
// content site and changes rarely.
type CachedUniversityRepository struct {
	repo  UniversityRepository
	cache *redis.Client
	ttl   time.Duration
}

// NewCachedUniversityRepository creates a new CachedUniversityRepository
func NewCachedUniversityRepository(repo UniversityRepository, cache *redis.Client, ttl time.Duration) *CachedUniversityRepository {
	if ttl <= 0 {
		ttl = defaultCatalogTTL
	}
	return &CachedUniversityRepository{repo: repo, cache: cache, ttl: ttl}
}

// Create creates an entry and invalidates the list cache
func (r *CachedUniversityRepository) Create(ctx context.Context, u *domain.University) error {
	if err := r.repo.Create(ctx, u); err != nil {
		return err
	}
	r.cache.Del(ctx, universityListKey)
	return nil
}

// GetByID retrieves an entry with caching
func (r *CachedUniversityRepository) GetByID(ctx context.Context, id string) (*domain.University, error) {
	cacheKey := universityDetailKeyPrefix + id
	if cached, err := r.cache.Get(ctx, cacheKey).Result(); err == nil && cached != "" {
		var u domain.University
		if err := json.Unmarshal([]byte(cached), &u); err == nil {
			return &u, nil
		}
	}

	u, err := r.repo.GetByID(ctx, id)
	if err != nil || u == nil {
		return u, err
	}

	if data, err := json.Marshal(u); err == nil {
		r.cache.Set(ctx, cacheKey, data, r.ttl)
	}
	return u, nil
}

// ListActive retrieves the active catalog with caching
func (r *CachedUniversityRepository) ListActive(ctx context.Context) ([]*domain.University, error) {
	if cached, err := r.cache.Get(ctx, universityListKey).Result(); err == nil && cached != "" {
		var universities []*domain.University
		if err := json.Unmarshal([]byte(cached), &universities); err == nil {
			return universities, nil
		}
	}

	universities, err := r.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(universities); err == nil {
		r.cache.Set(ctx, universityListKey, data, r.ttl)
	}
	return universities, nil
}

// Update updates an entry and invalidates its caches
func (r *CachedUniversityRepository) Update(ctx context.Context, u *domain.University) error {
	if err := r.repo.Update(ctx, u); err != nil {
		return err
	}
	r.cache.Del(ctx, universityDetailKeyPrefix+u.ID, universityListKey)
	return nil
}

// Delete deletes an entry and invalidates its caches
func (r *CachedUniversityRepository) Delete(ctx context.Context, id string) error {
	if err := r.repo.Delete(ctx, id); err != nil {
		return err
	}
	r.cache.Del(ctx, universityDetailKeyPrefix+id, universityListKey)
	return nil
}
