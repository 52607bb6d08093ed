package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"

	"github.com/maisonlila/restaurant-booking/internal/booking"
	"github.com/maisonlila/restaurant-booking/internal/model"
)

const dateLayout = "2006-01-02"

// mysqlDupEntry is the server error number for a unique key violation.
const mysqlDupEntry = 1062

// ReservationRepo provides access to the reservations table.  Dates are
// stored in a DATE column and always compared by their "YYYY-MM-DD" form, so
// the time-of-day component of a passed time.Time is irrelevant as long as
// the calendar date is right.
type ReservationRepo struct {
	db *sql.DB
}

// NewReservationRepo returns a ReservationRepo bound to the given database.
func NewReservationRepo(db *sql.DB) *ReservationRepo { return &ReservationRepo{db: db} }

// CreateIfAvailable inserts the reservation unless the summed covers of
// active reservations at its exact (date, time slot), plus the new party,
// would exceed limit.  The aggregate uses a locking read inside the same
// transaction as the insert, so concurrent requests targeting one slot
// serialize here instead of racing past the capacity check.
//
// Returns booking.ErrSlotUnavailable when the slot is full and
// booking.ErrIDTaken when the public reference collides with an existing
// row.
func (r *ReservationRepo) CreateIfAvailable(ctx context.Context, res *model.Reservation, limit int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	const sum = `SELECT COALESCE(SUM(party_size), 0)
	             FROM reservations
	             WHERE date = ? AND time_slot = ? AND status IN ('PENDING','CONFIRMED')
	             FOR UPDATE`
	var total int
	if err := tx.QueryRowContext(ctx, sum, res.Date.Format(dateLayout), res.TimeSlot).Scan(&total); err != nil {
		return err
	}
	if total+res.PartySize > limit {
		return booking.ErrSlotUnavailable
	}

	const ins = `INSERT INTO reservations
	             (id, guest_name, email, phone, date, time_slot, party_size, special_requests, status)
	             VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	if _, err := tx.ExecContext(ctx, ins,
		res.ID, res.GuestName, res.Email, res.Phone,
		res.Date.Format(dateLayout), res.TimeSlot, res.PartySize,
		res.SpecialRequests, res.Status,
	); err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) && me.Number == mysqlDupEntry {
			return booking.ErrIDTaken
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

// SumActiveCovers returns the total covers of PENDING and CONFIRMED
// reservations at the exact (date, slot) pair.  Zero rows sum to zero.
func (r *ReservationRepo) SumActiveCovers(ctx context.Context, date time.Time, slot string) (int, error) {
	const q = `SELECT COALESCE(SUM(party_size), 0)
	           FROM reservations
	           WHERE date = ? AND time_slot = ? AND status IN ('PENDING','CONFIRMED')`
	var total int
	err := r.db.QueryRowContext(ctx, q, date.Format(dateLayout), slot).Scan(&total)
	return total, err
}

// GetByID returns a single reservation or ErrReservationNotFound.
func (r *ReservationRepo) GetByID(ctx context.Context, id string) (*model.Reservation, error) {
	const q = `SELECT id, guest_name, email, phone, date, time_slot, party_size,
	                  special_requests, status, created_at, updated_at
	           FROM reservations WHERE id = ?`
	res, err := scanReservation(r.db.QueryRowContext(ctx, q, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReservationNotFound
	}
	return res, err
}

// ListByDate returns all reservations on the given calendar date ordered by
// time slot then creation time, regardless of status.
func (r *ReservationRepo) ListByDate(ctx context.Context, date time.Time) ([]model.Reservation, error) {
	const q = `SELECT id, guest_name, email, phone, date, time_slot, party_size,
	                  special_requests, status, created_at, updated_at
	           FROM reservations WHERE date = ?
	           ORDER BY time_slot, created_at`
	rows, err := r.db.QueryContext(ctx, q, date.Format(dateLayout))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Reservation, 0)
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *res)
	}
	return out, rows.Err()
}

// UpdateStatus transitions a reservation to the given status.  Only PENDING
// reservations may be confirmed; cancellation is allowed from PENDING or
// CONFIRMED.  Returns the updated reservation, ErrReservationNotFound, or
// ErrInvalidTransition.
func (r *ReservationRepo) UpdateStatus(ctx context.Context, id, status string) (*model.Reservation, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	const sel = `SELECT status FROM reservations WHERE id = ? FOR UPDATE`
	var current string
	if err := tx.QueryRowContext(ctx, sel, id).Scan(&current); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	if !transitionAllowed(current, status) {
		return nil, ErrInvalidTransition
	}

	const upd = `UPDATE reservations SET status = ? WHERE id = ?`
	if _, err := tx.ExecContext(ctx, upd, status, id); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	committed = true
	return r.GetByID(ctx, id)
}

func transitionAllowed(from, to string) bool {
	switch to {
	case model.StatusConfirmed:
		return from == model.StatusPending
	case model.StatusCancelled:
		return from == model.StatusPending || from == model.StatusConfirmed
	}
	return false
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanReservation(row rowScanner) (*model.Reservation, error) {
	var res model.Reservation
	var special sql.NullString
	err := row.Scan(
		&res.ID, &res.GuestName, &res.Email, &res.Phone,
		&res.Date, &res.TimeSlot, &res.PartySize,
		&special, &res.Status, &res.CreatedAt, &res.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if special.Valid {
		s := special.String
		res.SpecialRequests = &s
	}
	return &res, nil
}
