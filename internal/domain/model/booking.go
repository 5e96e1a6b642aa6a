package model

import "time"

type BookingStatus string

const (
	BookingStatusBooked    BookingStatus = "Booked"
	BookingStatusCompleted BookingStatus = "Completed"
)

// Booking is a passenger's request for a trip between an origin and a
// destination on a given date. TripDate is free text and is not validated
// as a calendar date.
type Booking struct {
	ID          string        `json:"id"`
	PassengerID string        `json:"passenger_id"`
	TripDate    string        `json:"trip_date"`
	Origin      string        `json:"origin"`
	Destination string        `json:"destination"`
	Status      BookingStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
}

// SystemReport holds the aggregate counts shown on the admin dashboard.
type SystemReport struct {
	TotalUsers      int `json:"total_users"`
	TotalPassengers int `json:"total_passengers"`
	TotalDrivers    int `json:"total_drivers"`
	TotalBookings   int `json:"total_bookings"`
}
