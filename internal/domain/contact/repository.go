package contact

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Repository defines contact message data access
type Repository interface {
	Create(ctx context.Context, m *Message) error
	List(ctx context.Context, status *Status, limit, offset int) ([]*Message, int, error)
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates contact repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, m *Message) error {
	query := `
		INSERT INTO contact_messages (
			id, name, email, phone, company, message,
			status, ip_address, user_agent, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.db.ExecContext(ctx, query,
		m.ID, m.Name, m.Email, m.Phone, m.Company, m.Body,
		m.Status, m.IPAddress, m.UserAgent, m.CreatedAt,
	)
	return err
}

func (r *repository) List(ctx context.Context, status *Status, limit, offset int) ([]*Message, int, error) {
	var args []interface{}
	where := ""
	argIdx := 1

	if status != nil {
		where = " WHERE status = $1"
		args = append(args, *status)
		argIdx++
	}

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM contact_messages"+where, args...); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT id, created_at, name, email, phone, company, message, status, ip_address, user_agent
		FROM contact_messages%s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, where, argIdx, argIdx+1)
	args = append(args, limit, offset)

	messages := []*Message{}
	if err := r.db.SelectContext(ctx, &messages, query, args...); err != nil {
		return nil, 0, err
	}
	return messages, total, nil
}
