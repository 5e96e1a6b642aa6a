package service

import (
	"context"

	"bus_safety/internal/domain/model"
	"bus_safety/internal/domain/repository"
)

type ReportService struct {
	userRepo    repository.UserRepository
	bookingRepo repository.BookingRepository
}

func NewReportService(userRepo repository.UserRepository, bookingRepo repository.BookingRepository) *ReportService {
	return &ReportService{userRepo: userRepo, bookingRepo: bookingRepo}
}

// Overview gathers the unfiltered aggregate counts for the admin views.
func (s *ReportService) Overview(ctx context.Context) (*model.SystemReport, error) {
	totalUsers, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalPassengers, err := s.userRepo.CountByRole(ctx, model.RolePassenger)
	if err != nil {
		return nil, err
	}
	totalDrivers, err := s.userRepo.CountByRole(ctx, model.RoleDriver)
	if err != nil {
		return nil, err
	}
	totalBookings, err := s.bookingRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	return &model.SystemReport{
		TotalUsers:      totalUsers,
		TotalPassengers: totalPassengers,
		TotalDrivers:    totalDrivers,
		TotalBookings:   totalBookings,
	}, nil
}
