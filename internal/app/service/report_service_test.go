package service

import (
	"context"
	"testing"

	"bus_safety/internal/domain/model"
	"bus_safety/internal/domain/repository"

	"github.com/go-playground/validator/v10"
)

func TestOverviewCounts(t *testing.T) {
	db := newTestDB(t)
	userRepo := repository.NewSQLiteUserRepository(db)
	bookingRepo := repository.NewSQLiteBookingRepository(db)

	validate := validator.New()
	authSvc := NewAuthService(userRepo, validate)
	bookingSvc := NewBookingService(bookingRepo, validate)
	reportSvc := NewReportService(userRepo, bookingRepo)

	ctx := context.Background()

	seed := []struct {
		email string
		role  string
	}{
		{"p1@x.com", model.RolePassenger},
		{"p2@x.com", model.RolePassenger},
		{"d1@x.com", model.RoleDriver},
		{"a1@x.com", model.RoleAdmin},
	}
	var passengerID string
	for _, s := range seed {
		u, err := authSvc.Signup(ctx, SignupRequest{Email: s.email, Password: "pw1", Role: s.role})
		if err != nil {
			t.Fatalf("seeding %s: %v", s.email, err)
		}
		if s.role == model.RolePassenger {
			passengerID = u.ID
		}
	}
	if _, err := bookingSvc.Book(ctx, passengerID, BookTripRequest{TripDate: "2024-01-01", Origin: "X", Destination: "Y"}); err != nil {
		t.Fatalf("seeding booking: %v", err)
	}

	report, err := reportSvc.Overview(ctx)
	if err != nil {
		t.Fatalf("Overview: %v", err)
	}
	want := model.SystemReport{TotalUsers: 4, TotalPassengers: 2, TotalDrivers: 1, TotalBookings: 1}
	if *report != want {
		t.Errorf("report = %+v, want %+v", *report, want)
	}
}
