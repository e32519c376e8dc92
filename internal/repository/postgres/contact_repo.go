package postgres

import (
	"context"

	"go-portfolio-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type contactRepo struct {
	db *pgxpool.Pool
}

func NewContactRepository(db *pgxpool.Pool) domain.ContactRepository {
	return &contactRepo{db: db}
}

func (r *contactRepo) Insert(ctx context.Context, msg *domain.ContactMessage) error {
	stamp(&msg.ID, &msg.CreatedAt, &msg.UpdatedAt)
	query := `INSERT INTO contact_messages (id, name, email, subject, message, status, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Exec(ctx, query,
		msg.ID, msg.Name, msg.Email, msg.Subject, msg.Message, msg.Status, msg.CreatedAt, msg.UpdatedAt,
	)
	return err
}

func (r *contactRepo) List(ctx context.Context) ([]domain.ContactMessage, error) {
	// Newest first. This is the one descending read in the API.
	query := `SELECT id, name, email, subject, message, status, created_at, updated_at
              FROM contact_messages ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []domain.ContactMessage
	for rows.Next() {
		var m domain.ContactMessage
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &m.Status, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}
