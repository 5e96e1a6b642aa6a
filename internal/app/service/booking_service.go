package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"bus_safety/internal/common"
	"bus_safety/internal/domain/model"
	"bus_safety/internal/domain/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type BookingService struct {
	bookingRepo repository.BookingRepository
	validate    *validator.Validate
}

func NewBookingService(bookingRepo repository.BookingRepository, validate *validator.Validate) *BookingService {
	return &BookingService{bookingRepo: bookingRepo, validate: validate}
}

type BookTripRequest struct {
	TripDate    string `validate:"required"`
	Origin      string `validate:"required"`
	Destination string `validate:"required"`
}

// Book persists a new booking owned by passengerID with status Booked.
// All three fields are required; nothing is written when any is blank.
func (s *BookingService) Book(ctx context.Context, passengerID string, req BookTripRequest) (*model.Booking, error) {
	req.TripDate = strings.TrimSpace(req.TripDate)
	req.Origin = strings.TrimSpace(req.Origin)
	req.Destination = strings.TrimSpace(req.Destination)

	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %s", common.ErrValidation, err.Error())
	}

	booking := &model.Booking{
		ID:          uuid.NewString(),
		PassengerID: passengerID,
		TripDate:    req.TripDate,
		Origin:      req.Origin,
		Destination: req.Destination,
		Status:      model.BookingStatusBooked,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

// ListForPassenger returns the passenger's own bookings, newest-first.
func (s *BookingService) ListForPassenger(ctx context.Context, passengerID string) ([]model.Booking, error) {
	return s.bookingRepo.ListByPassenger(ctx, passengerID)
}

// Partition splits the passenger's bookings into upcoming (status is not
// Completed) and history (status is Completed), each newest-first. No code
// path sets Completed today, so history stays empty until that feature
// lands; the branch is kept because the field exists.
func (s *BookingService) Partition(ctx context.Context, passengerID string) (upcoming, history []model.Booking, err error) {
	bookings, err := s.bookingRepo.ListByPassenger(ctx, passengerID)
	if err != nil {
		return nil, nil, err
	}
	upcoming = []model.Booking{}
	history = []model.Booking{}
	for _, b := range bookings {
		if b.Status == model.BookingStatusCompleted {
			history = append(history, b)
		} else {
			upcoming = append(upcoming, b)
		}
	}
	return upcoming, history, nil
}

// ListAll returns every booking across all passengers, newest-first.
func (s *BookingService) ListAll(ctx context.Context) ([]model.Booking, error) {
	return s.bookingRepo.ListAll(ctx)
}
