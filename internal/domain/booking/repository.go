package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Repository defines booking data access
type Repository interface {
	Create(ctx context.Context, b *Booking) error
	GetByID(ctx context.Context, id uuid.UUID) (*Booking, error)
	List(ctx context.Context, status *Status, limit, offset int) ([]*Booking, int, error)
	// UpdateStatus moves a requested booking to status; ErrAlreadyFinal otherwise
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates booking repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const bookingColumns = `id, created_at, updated_at, booking_date, slot_time, timezone,
	full_name, email, message, status, source, idempotency_key, ip_address, user_agent`

func (r *repository) Create(ctx context.Context, b *Booking) error {
	query := `
		INSERT INTO bookings (
			id, booking_date, slot_time, timezone,
			full_name, email, message,
			status, source, idempotency_key, ip_address, user_agent,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4,
			$5, $6, $7,
			$8, $9, $10, $11, $12,
			$13, $14
		)
	`
	_, err := r.db.ExecContext(ctx, query,
		b.ID, b.BookingDate, b.SlotTime, b.Timezone,
		b.FullName, b.Email, b.Message,
		b.Status, b.Source, b.IdempotencyKey, b.IPAddress, b.UserAgent,
		b.CreatedAt, b.UpdatedAt,
	)
	return err
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`
	var b Booking
	err := r.db.GetContext(ctx, &b, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

func (r *repository) List(ctx context.Context, status *Status, limit, offset int) ([]*Booking, int, error) {
	var args []interface{}
	where := ""
	argIdx := 1

	if status != nil {
		where = " WHERE status = $1"
		args = append(args, *status)
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM bookings" + where
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT %s FROM bookings%s
		ORDER BY booking_date ASC, slot_time ASC
		LIMIT $%d OFFSET $%d
	`, bookingColumns, where, argIdx, argIdx+1)
	args = append(args, limit, offset)

	bookings := []*Booking{}
	if err := r.db.SelectContext(ctx, &bookings, query, args...); err != nil {
		return nil, 0, err
	}

	return bookings, total, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error {
	query := `UPDATE bookings SET status = $2, updated_at = NOW() WHERE id = $1 AND status = $3`
	res, err := r.db.ExecContext(ctx, query, id, status, StatusRequested)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	var exists bool
	if err := r.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM bookings WHERE id = $1)`, id); err != nil {
		return err
	}
	if exists {
		return ErrAlreadyFinal
	}
	return ErrBookingNotFound
}
