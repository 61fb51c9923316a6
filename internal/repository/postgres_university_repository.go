package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MischieS/agenta-sub001/internal/domain"
)

// PostgresUniversityRepository implements UniversityRepository using PostgreSQL
type PostgresUniversityRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresUniversityRepository creates a new PostgresUniversityRepository
func NewPostgresUniversityRepository(pool *pgxpool.Pool) *PostgresUniversityRepository {
	return &PostgresUniversityRepository{pool: pool}
}

const universityColumns = `id, name, country, city, description, ranking, active, created_at, updated_at`

func scanUniversity(row pgx.Row) (*domain.University, error) {
	u := &domain.University{}
	err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Country,
		&u.City,
		&u.Description,
		&u.Ranking,
		&u.Active,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return u, nil
}

// Create creates a catalog entry
func (r *PostgresUniversityRepository) Create(ctx context.Context, u *domain.University) error {
	query := `
		INSERT INTO universities (id, name, country, city, description, ranking, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.pool.Exec(ctx, query,
		u.ID, u.Name, u.Country, u.City, u.Description, u.Ranking, u.Active, u.CreatedAt, u.UpdatedAt,
	)
	return err
}

// GetByID retrieves a catalog entry by ID
func (r *PostgresUniversityRepository) GetByID(ctx context.Context, id string) (*domain.University, error) {
	query := `SELECT ` + universityColumns + ` FROM universities WHERE id = $1`
	return scanUniversity(r.pool.QueryRow(ctx, query, id))
}

// ListActive retrieves active catalog entries ordered by ranking
func (r *PostgresUniversityRepository) ListActive(ctx context.Context) ([]*domain.University, error) {
	query := `SELECT ` + universityColumns + ` FROM universities WHERE active = true ORDER BY ranking, name`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var universities []*domain.University
	for rows.Next() {
		u, err := scanUniversity(rows)
		if err != nil {
			return nil, err
		}
		universities = append(universities, u)
	}
	return universities, rows.Err()
}

// Update updates a catalog entry
func (r *PostgresUniversityRepository) Update(ctx context.Context, u *domain.University) error {
	query := `
		UPDATE universities
		SET name = $2, country = $3, city = $4, description = $5, ranking = $6, active = $7, updated_at = $8
		WHERE id = $1
	`
	u.UpdatedAt = time.Now()
	_, err := r.pool.Exec(ctx, query,
		u.ID, u.Name, u.Country, u.City, u.Description, u.Ranking, u.Active, u.UpdatedAt,
	)
	return err
}

// Delete deletes a catalog entry
func (r *PostgresUniversityRepository) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM universities WHERE id = $1`, id)
	return err
}
