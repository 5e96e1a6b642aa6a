package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"bus_safety/internal/common"
	"bus_safety/internal/domain/model"
	"bus_safety/internal/domain/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

func newBookingService(t *testing.T) (*BookingService, repository.BookingRepository) {
	t.Helper()
	bookingRepo := repository.NewSQLiteBookingRepository(newTestDB(t))
	return NewBookingService(bookingRepo, validator.New()), bookingRepo
}

func TestBookPersistsBooking(t *testing.T) {
	svc, _ := newBookingService(t)
	ctx := context.Background()

	booking, err := svc.Book(ctx, "p-1", BookTripRequest{
		TripDate:    "2024-01-01",
		Origin:      "X",
		Destination: "Y",
	})
	if err != nil {
		t.Fatalf("Book: %v", err)
	}
	if booking.Status != model.BookingStatusBooked {
		t.Errorf("status = %q, want Booked", booking.Status)
	}
	if booking.PassengerID != "p-1" {
		t.Errorf("passenger id = %q, want p-1", booking.PassengerID)
	}

	got, err := svc.ListForPassenger(ctx, "p-1")
	if err != nil {
		t.Fatalf("ListForPassenger: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 booking, got %d", len(got))
	}
	if got[0].ID != booking.ID || got[0].Origin != "X" || got[0].Destination != "Y" || got[0].TripDate != "2024-01-01" {
		t.Errorf("stored booking %+v does not match created %+v", got[0], booking)
	}
}

func TestBookRejectsBlankFields(t *testing.T) {
	svc, _ := newBookingService(t)
	ctx := context.Background()

	cases := []struct {
		name string
		req  BookTripRequest
	}{
		{"blank date", BookTripRequest{Origin: "X", Destination: "Y"}},
		{"blank origin", BookTripRequest{TripDate: "2024-01-01", Destination: "Y"}},
		{"blank destination", BookTripRequest{TripDate: "2024-01-01", Origin: "X"}},
		{"whitespace only", BookTripRequest{TripDate: "  ", Origin: "X", Destination: "Y"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Book(ctx, "p-1", tc.req); !errors.Is(err, common.ErrValidation) {
				t.Errorf("expected ErrValidation, got %v", err)
			}
		})
	}

	got, err := svc.ListForPassenger(ctx, "p-1")
	if err != nil {
		t.Fatalf("ListForPassenger: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("invalid requests must persist nothing, found %d rows", len(got))
	}
}

func TestListForPassengerIsolation(t *testing.T) {
	svc, _ := newBookingService(t)
	ctx := context.Background()

	if _, err := svc.Book(ctx, "p-1", BookTripRequest{TripDate: "2024-01-01", Origin: "A", Destination: "B"}); err != nil {
		t.Fatalf("Book: %v", err)
	}
	if _, err := svc.Book(ctx, "p-2", BookTripRequest{TripDate: "2024-01-02", Origin: "C", Destination: "D"}); err != nil {
		t.Fatalf("Book: %v", err)
	}

	got, err := svc.ListForPassenger(ctx, "p-1")
	if err != nil {
		t.Fatalf("ListForPassenger: %v", err)
	}
	for _, b := range got {
		if b.PassengerID != "p-1" {
			t.Errorf("listing for p-1 contains booking owned by %q", b.PassengerID)
		}
	}
	if len(got) != 1 {
		t.Errorf("expected 1 booking for p-1, got %d", len(got))
	}
}

func TestListForPassengerNewestFirst(t *testing.T) {
	svc, _ := newBookingService(t)
	ctx := context.Background()

	for _, origin := range []string{"first", "second", "third"} {
		if _, err := svc.Book(ctx, "p-1", BookTripRequest{TripDate: "2024-01-01", Origin: origin, Destination: "Z"}); err != nil {
			t.Fatalf("Book(%s): %v", origin, err)
		}
	}

	got, err := svc.ListForPassenger(ctx, "p-1")
	if err != nil {
		t.Fatalf("ListForPassenger: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 bookings, got %d", len(got))
	}
	want := []string{"third", "second", "first"}
	for i, b := range got {
		if b.Origin != want[i] {
			t.Errorf("position %d: got %q, want %q", i, b.Origin, want[i])
		}
	}
}

func TestPartition(t *testing.T) {
	svc, bookingRepo := newBookingService(t)
	ctx := context.Background()

	for _, origin := range []string{"A", "B"} {
		if _, err := svc.Book(ctx, "p-1", BookTripRequest{TripDate: "2024-01-01", Origin: origin, Destination: "Z"}); err != nil {
			t.Fatalf("Book: %v", err)
		}
	}
	// Nothing in the app flips a booking to Completed; seed one directly
	// to cover the history branch.
	completed := &model.Booking{
		ID:          uuid.NewString(),
		PassengerID: "p-1",
		TripDate:    "2023-06-01",
		Origin:      "C",
		Destination: "Z",
		Status:      model.BookingStatusCompleted,
		CreatedAt:   time.Now().UTC(),
	}
	if err := bookingRepo.Create(ctx, completed); err != nil {
		t.Fatalf("seeding completed booking: %v", err)
	}

	upcoming, history, err := svc.Partition(ctx, "p-1")
	if err != nil {
		t.Fatalf("Partition: %v", err)
	}
	if len(upcoming) != 2 {
		t.Errorf("expected 2 upcoming, got %d", len(upcoming))
	}
	if len(history) != 1 || history[0].ID != completed.ID {
		t.Errorf("expected the seeded completed booking in history, got %+v", history)
	}

	// Disjoint, and together they cover everything the passenger owns.
	seen := map[string]int{}
	for _, b := range upcoming {
		seen[b.ID]++
	}
	for _, b := range history {
		seen[b.ID]++
	}
	all, err := svc.ListForPassenger(ctx, "p-1")
	if err != nil {
		t.Fatalf("ListForPassenger: %v", err)
	}
	if len(seen) != len(all) {
		t.Errorf("partitions cover %d bookings, passenger owns %d", len(seen), len(all))
	}
	for id, n := range seen {
		if n != 1 {
			t.Errorf("booking %s appears in both partitions", id)
		}
	}
}

func TestListAll(t *testing.T) {
	svc, _ := newBookingService(t)
	ctx := context.Background()

	if _, err := svc.Book(ctx, "p-1", BookTripRequest{TripDate: "2024-01-01", Origin: "A", Destination: "B"}); err != nil {
		t.Fatalf("Book: %v", err)
	}
	if _, err := svc.Book(ctx, "p-2", BookTripRequest{TripDate: "2024-01-02", Origin: "C", Destination: "D"}); err != nil {
		t.Fatalf("Book: %v", err)
	}

	all, err := svc.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 bookings, got %d", len(all))
	}
	if all[0].Origin != "C" {
		t.Errorf("most recent booking first, got %q", all[0].Origin)
	}
}
