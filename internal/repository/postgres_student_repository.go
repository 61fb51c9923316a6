package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MischieS/agenta-sub001/internal/domain"
)

// PostgresStudentRepository implements StudentRepository using PostgreSQL
type PostgresStudentRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresStudentRepository creates a new PostgresStudentRepository
func NewPostgresStudentRepository(pool *pgxpool.Pool) *PostgresStudentRepository {
	return &PostgresStudentRepository{pool: pool}
}

const studentColumns = `id, name, surname, email, password_hash, phone, birthdate, country, address,
		degree_type, departments, status, assigned_user_id, link, created_at, updated_at`

func scanStudent(row pgx.Row) (*domain.Student, error) {
	student := &domain.Student{}
	err := row.Scan(
		&student.ID,
		&student.Name,
		&student.Surname,
		&student.Email,
		&student.PasswordHash,
		&student.Phone,
		&student.Birthdate,
		&student.Country,
		&student.Address,
		&student.DegreeType,
		&student.Departments,
		&student.Status,
		&student.AssignedUserID,
		&student.Link,
		&student.CreatedAt,
		&student.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return student, nil
}

// Create creates a new student account
func (r *PostgresStudentRepository) Create(ctx context.Context, student *domain.Student) error {
	query := `
		INSERT INTO students (id, name, surname, email, password_hash, phone, birthdate, country, address,
			degree_type, departments, status, assigned_user_id, link, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`
	_, err := r.pool.Exec(ctx, query,
		student.ID,
		student.Name,
		student.Surname,
		student.Email,
		student.PasswordHash,
		student.Phone,
		student.Birthdate,
		student.Country,
		student.Address,
		student.DegreeType,
		student.Departments,
		student.Status,
		student.AssignedUserID,
		student.Link,
		student.CreatedAt,
		student.UpdatedAt,
	)
	return err
}

// GetByID retrieves a student by ID
func (r *PostgresStudentRepository) GetByID(ctx context.Context, id string) (*domain.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE id = $1`
	return scanStudent(r.pool.QueryRow(ctx, query, id))
}

// GetByEmail retrieves a student by email
func (r *PostgresStudentRepository) GetByEmail(ctx context.Context, email string) (*domain.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE email = $1`
	return scanStudent(r.pool.QueryRow(ctx, query, email))
}

// List retrieves students ordered by creation time
func (r *PostgresStudentRepository) List(ctx context.Context, limit, offset int) ([]*domain.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*domain.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, student)
	}
	return students, rows.Err()
}

// ListByAssignedUser retrieves students assigned to a staff member
func (r *PostgresStudentRepository) ListByAssignedUser(ctx context.Context, userID string) ([]*domain.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE assigned_user_id = $1 ORDER BY created_at`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*domain.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, student)
	}
	return students, rows.Err()
}

// Update updates a student account
func (r *PostgresStudentRepository) Update(ctx context.Context, student *domain.Student) error {
	query := `
		UPDATE students
		SET name = $2, surname = $3, email = $4, password_hash = $5, phone = $6, birthdate = $7,
			country = $8, address = $9, degree_type = $10, departments = $11, status = $12,
			assigned_user_id = $13, link = $14, updated_at = $15
		WHERE id = $1
	`
	student.UpdatedAt = time.Now()
	_, err := r.pool.Exec(ctx, query,
		student.ID,
		student.Name,
		student.Surname,
		student.Email,
		student.PasswordHash,
		student.Phone,
		student.Birthdate,
		student.Country,
		student.Address,
		student.DegreeType,
		student.Departments,
		student.Status,
		student.AssignedUserID,
		student.Link,
		student.UpdatedAt,
	)
	return err
}

// Delete deletes a student account
func (r *PostgresStudentRepository) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	return err
}

// ExistsByEmail checks if a student exists with the given email
func (r *PostgresStudentRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM students WHERE email = $1)`, email).Scan(&exists)
	return exists, err
}
