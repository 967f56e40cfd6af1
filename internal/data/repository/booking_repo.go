package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"theater-booking/internal/data/entity"
	"theater-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// SQLSTATE for unique_violation
const pgUniqueViolation = "23505"

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindByDateTime(ctx context.Context, date time.Time, timeLabel string) (*entity.Booking, error)
	FindTimesByDate(ctx context.Context, date time.Time) ([]string, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error)
	FindAll(ctx context.Context) ([]*entity.Booking, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

// Create inserts the booking row. A unique violation on the (date, time)
// constraint comes back as ErrSlotTaken so the service can report a
// conflict instead of an internal error; this covers the race the
// pre-check cannot.
func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (id, user_id, type_ar, type_en, price, reason_ar, reason_en,
		                      date, "time", receipt_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.UserID,
		booking.TypeAr,
		booking.TypeEn,
		booking.Price,
		booking.ReasonAr,
		booking.ReasonEn,
		booking.Date,
		booking.Time,
		booking.ReceiptURL,
		booking.CreatedAt,
		booking.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation && pgErr.ConstraintName == "bookings_date_time_key" {
			r.log.Warn("Slot conflict on insert",
				zap.String("date", booking.Date.Format("2006-01-02")),
				zap.String("time", booking.Time),
			)
			return ErrSlotTaken
		}

		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("user_id", booking.UserID.String()),
			zap.String("time", booking.Time),
		)
		return fmt.Errorf("create booking: %w", err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `
		SELECT id, user_id, type_ar, type_en, price, reason_ar, reason_en,
		       date, "time", receipt_url, created_at, updated_at
		FROM bookings
		WHERE id = $1
	`

	var booking entity.Booking
	err := r.db.QueryRow(ctx, query, id).Scan(
		&booking.ID,
		&booking.UserID,
		&booking.TypeAr,
		&booking.TypeEn,
		&booking.Price,
		&booking.ReasonAr,
		&booking.ReasonEn,
		&booking.Date,
		&booking.Time,
		&booking.ReceiptURL,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return &booking, nil
}

// FindByDateTime is the optimistic pre-check before an insert.
func (r *bookingRepository) FindByDateTime(ctx context.Context, date time.Time, timeLabel string) (*entity.Booking, error) {
	query := `
		SELECT id, user_id, type_ar, type_en, price, reason_ar, reason_en,
		       date, "time", receipt_url, created_at, updated_at
		FROM bookings
		WHERE date = $1 AND "time" = $2
	`

	var booking entity.Booking
	err := r.db.QueryRow(ctx, query, date, timeLabel).Scan(
		&booking.ID,
		&booking.UserID,
		&booking.TypeAr,
		&booking.TypeEn,
		&booking.Price,
		&booking.ReasonAr,
		&booking.ReasonEn,
		&booking.Date,
		&booking.Time,
		&booking.ReceiptURL,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by date and time",
			zap.Error(err),
			zap.String("date", date.Format("2006-01-02")),
			zap.String("time", timeLabel),
		)
		return nil, fmt.Errorf("find booking at %s %s: %w", date.Format("2006-01-02"), timeLabel, err)
	}

	return &booking, nil
}

// FindTimesByDate returns the time labels already booked on a date.
func (r *bookingRepository) FindTimesByDate(ctx context.Context, date time.Time) ([]string, error) {
	query := `SELECT "time" FROM bookings WHERE date = $1`

	rows, err := r.db.Query(ctx, query, date)
	if err != nil {
		r.log.Error("Failed to find booked times",
			zap.Error(err),
			zap.String("date", date.Format("2006-01-02")),
		)
		return nil, fmt.Errorf("find booked times on %s: %w", date.Format("2006-01-02"), err)
	}
	defer rows.Close()

	var times []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			r.log.Error("Failed to scan booked time row", zap.Error(err))
			return nil, fmt.Errorf("scan booked time row: %w", err)
		}
		times = append(times, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate booked times rows: %w", err)
	}

	return times, nil
}

func (r *bookingRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error) {
	query := `
		SELECT id, user_id, type_ar, type_en, price, reason_ar, reason_en,
		       date, "time", receipt_url, created_at, updated_at
		FROM bookings
		WHERE user_id = $1
		ORDER BY date ASC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find bookings by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find bookings by user ID %s: %w", userID.String(), err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

func (r *bookingRepository) FindAll(ctx context.Context) ([]*entity.Booking, error) {
	query := `
		SELECT id, user_id, type_ar, type_en, price, reason_ar, reason_en,
		       date, "time", receipt_url, created_at, updated_at
		FROM bookings
		ORDER BY date ASC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all bookings", zap.Error(err))
		return nil, fmt.Errorf("find all bookings: %w", err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

func scanBookings(rows pgx.Rows) ([]*entity.Booking, error) {
	var bookings []*entity.Booking
	for rows.Next() {
		var booking entity.Booking
		err := rows.Scan(
			&booking.ID,
			&booking.UserID,
			&booking.TypeAr,
			&booking.TypeEn,
			&booking.Price,
			&booking.ReasonAr,
			&booking.ReasonEn,
			&booking.Date,
			&booking.Time,
			&booking.ReceiptURL,
			&booking.CreatedAt,
			&booking.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate bookings rows: %w", err)
	}

	return bookings, nil
}
