package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MischieS/agenta-sub001/internal/domain"
)

// PostgresMessageRepository implements MessageRepository using PostgreSQL
type PostgresMessageRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresMessageRepository creates a new PostgresMessageRepository
func NewPostgresMessageRepository(pool *pgxpool.Pool) *PostgresMessageRepository {
	return &PostgresMessageRepository{pool: pool}
}

// Create creates a message
func (r *PostgresMessageRepository) Create(ctx context.Context, m *domain.Message) error {
	query := `
		INSERT INTO messages (id, student_id, user_id, sender_is_student, body, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.pool.Exec(ctx, query,
		m.ID, m.StudentID, m.UserID, m.SenderIsStudent, m.Body, m.CreatedAt,
	)
	return err
}

// ListByStudent retrieves a student's conversation, oldest first
func (r *PostgresMessageRepository) ListByStudent(ctx context.Context, studentID string, limit, offset int) ([]*domain.Message, error) {
	query := `
		SELECT id, student_id, user_id, sender_is_student, body, created_at
		FROM messages
		WHERE student_id = $1
		ORDER BY created_at
		LIMIT $2 OFFSET $3
	`
	rows, err := r.pool.Query(ctx, query, studentID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []*domain.Message
	for rows.Next() {
		m := &domain.Message{}
		if err := rows.Scan(&m.ID, &m.StudentID, &m.UserID, &m.SenderIsStudent, &m.Body, &m.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

// PostgresNotificationRepository implements NotificationRepository using PostgreSQL
type PostgresNotificationRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresNotificationRepository creates a new PostgresNotificationRepository
func NewPostgresNotificationRepository(pool *pgxpool.Pool) *PostgresNotificationRepository {
	return &PostgresNotificationRepository{pool: pool}
}

// Create creates a notification
func (r *PostgresNotificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	query := `
		INSERT INTO notifications (id, recipient_id, recipient_is_student, kind, payload, read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.pool.Exec(ctx, query,
		n.ID, n.RecipientID, n.RecipientIsStudent, n.Kind, n.Payload, n.Read, n.CreatedAt,
	)
	return err
}

// ListByRecipient retrieves a recipient's notifications, newest first
func (r *PostgresNotificationRepository) ListByRecipient(ctx context.Context, recipientID string, isStudent bool, limit, offset int) ([]*domain.Notification, error) {
	query := `
		SELECT id, recipient_id, recipient_is_student, kind, payload, read, created_at
		FROM notifications
		WHERE recipient_id = $1 AND recipient_is_student = $2
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4
	`
	rows, err := r.pool.Query(ctx, query, recipientID, isStudent, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifications []*domain.Notification
	for rows.Next() {
		n := &domain.Notification{}
		if err := rows.Scan(&n.ID, &n.RecipientID, &n.RecipientIsStudent, &n.Kind, &n.Payload, &n.Read, &n.CreatedAt); err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

// GetByID retrieves a notification by ID
func (r *PostgresNotificationRepository) GetByID(ctx context.Context, id string) (*domain.Notification, error) {
	query := `
		SELECT id, recipient_id, recipient_is_student, kind, payload, read, created_at
		FROM notifications
		WHERE id = $1
	`
	n := &domain.Notification{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&n.ID, &n.RecipientID, &n.RecipientIsStudent, &n.Kind, &n.Payload, &n.Read, &n.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return n, nil
}

// MarkRead marks a notification as read
func (r *PostgresNotificationRepository) MarkRead(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `UPDATE notifications SET read = true WHERE id = $1`, id)
	return err
}

// PostgresDocumentRepository implements DocumentRepository using PostgreSQL
type PostgresDocumentRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresDocumentRepository creates a new PostgresDocumentRepository
func NewPostgresDocumentRepository(pool *pgxpool.Pool) *PostgresDocumentRepository {
	return &PostgresDocumentRepository{pool: pool}
}

// Create creates a document metadata record
func (r *PostgresDocumentRepository) Create(ctx context.Context, d *domain.Document) error {
	query := `
		INSERT INTO documents (id, student_id, name, mime_type, size_bytes, uploaded_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.pool.Exec(ctx, query,
		d.ID, d.StudentID, d.Name, d.MimeType, d.SizeBytes, d.UploadedBy, d.CreatedAt,
	)
	return err
}

// ListByStudent retrieves a student's document records
func (r *PostgresDocumentRepository) ListByStudent(ctx context.Context, studentID string) ([]*domain.Document, error) {
	query := `
		SELECT id, student_id, name, mime_type, size_bytes, uploaded_by, created_at
		FROM documents
		WHERE student_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var documents []*domain.Document
	for rows.Next() {
		d := &domain.Document{}
		if err := rows.Scan(&d.ID, &d.StudentID, &d.Name, &d.MimeType, &d.SizeBytes, &d.UploadedBy, &d.CreatedAt); err != nil {
			return nil, err
		}
		documents = append(documents, d)
	}
	return documents, rows.Err()
}
