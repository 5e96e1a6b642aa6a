package repository

import (
	"context"
	"database/sql"
	"fmt"

	"bus_safety/internal/domain/model"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *model.Booking) error
	ListByPassenger(ctx context.Context, passengerID string) ([]model.Booking, error)
	ListAll(ctx context.Context) ([]model.Booking, error)
	Count(ctx context.Context) (int, error)
}

type sqliteBookingRepository struct {
	db *sql.DB
}

func NewSQLiteBookingRepository(db *sql.DB) BookingRepository {
	return &sqliteBookingRepository{db: db}
}

func (r *sqliteBookingRepository) Create(ctx context.Context, booking *model.Booking) error {
	query := `INSERT INTO bookings (id, passenger_id, trip_date, origin, destination, status, created_at)
	          VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		booking.ID, booking.PassengerID, booking.TripDate, booking.Origin, booking.Destination,
		booking.Status, booking.CreatedAt)
	if err != nil {
		return fmt.Errorf("sqliteBookingRepository.Create: %w", err)
	}
	return nil
}

// ListByPassenger returns the passenger's bookings newest-first. Rows
// created in the same instant keep insertion order via the rowid tiebreak.
func (r *sqliteBookingRepository) ListByPassenger(ctx context.Context, passengerID string) ([]model.Booking, error) {
	query := `SELECT id, passenger_id, trip_date, origin, destination, status, created_at
	          FROM bookings WHERE passenger_id = ?
	          ORDER BY created_at DESC, rowid DESC`
	return r.queryBookings(ctx, query, passengerID)
}

func (r *sqliteBookingRepository) ListAll(ctx context.Context) ([]model.Booking, error) {
	query := `SELECT id, passenger_id, trip_date, origin, destination, status, created_at
	          FROM bookings ORDER BY created_at DESC, rowid DESC`
	return r.queryBookings(ctx, query)
}

func (r *sqliteBookingRepository) queryBookings(ctx context.Context, query string, args ...any) ([]model.Booking, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("sqliteBookingRepository query: %w", err)
	}
	defer rows.Close()

	bookings := []model.Booking{}
	for rows.Next() {
		var b model.Booking
		if err := rows.Scan(
			&b.ID, &b.PassengerID, &b.TripDate, &b.Origin, &b.Destination, &b.Status, &b.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("sqliteBookingRepository scan: %w", err)
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

func (r *sqliteBookingRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM bookings`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("sqliteBookingRepository.Count: %w", err)
	}
	return count, nil
}
