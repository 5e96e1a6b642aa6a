package handler

import (
	"errors"
	"net/http"

	"bus_safety/internal/api/middleware"
	"bus_safety/internal/api/view"
	"bus_safety/internal/app/service"
	"bus_safety/internal/common"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	bookingService *service.BookingService
	view           *view.Renderer
	log            *zap.Logger
}

func NewBookingHandler(bookingService *service.BookingService, renderer *view.Renderer, log *zap.Logger) *BookingHandler {
	return &BookingHandler{bookingService: bookingService, view: renderer, log: log}
}

func (h *BookingHandler) RegisterRoutes(r chi.Router) {
	r.Get("/book-trip", h.bookTripPage)
	r.Post("/book-trip", h.bookTrip)
	r.Get("/view-bookings", h.viewBookings)
}

func (h *BookingHandler) bookTripPage(w http.ResponseWriter, r *http.Request) {
	sess, _ := middleware.SessionFromContext(r.Context())
	data := view.Base{
		Title:  "Book a Trip",
		Name:   sess.Name,
		Role:   sess.Role,
		Active: "book_trip",
		Flash:  common.PopFlash(w, r),
	}
	if err := h.view.HTML(w, http.StatusOK, "book_trip.html", data); err != nil {
		h.log.Error("rendering book-trip page", zap.Error(err))
	}
}

func (h *BookingHandler) bookTrip(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}
	if err := r.ParseForm(); err != nil {
		common.SetFlash(w, common.FlashError, "Please complete all trip fields.")
		http.Redirect(w, r, "/book-trip", http.StatusSeeOther)
		return
	}

	req := service.BookTripRequest{
		TripDate:    r.PostFormValue("trip_date"),
		Origin:      r.PostFormValue("origin"),
		Destination: r.PostFormValue("destination"),
	}

	if _, err := h.bookingService.Book(r.Context(), sess.UserID, req); err != nil {
		if errors.Is(err, common.ErrValidation) {
			common.SetFlash(w, common.FlashError, "Please complete all trip fields.")
		} else {
			h.log.Error("booking trip", zap.Error(err))
			common.SetFlash(w, common.FlashError, "Something went wrong. Please try again.")
		}
		http.Redirect(w, r, "/book-trip", http.StatusSeeOther)
		return
	}

	common.SetFlash(w, common.FlashSuccess, "Trip booked successfully!")
	http.Redirect(w, r, "/view-bookings", http.StatusSeeOther)
}

func (h *BookingHandler) viewBookings(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	bookings, err := h.bookingService.ListForPassenger(r.Context(), sess.UserID)
	if err != nil {
		h.log.Error("listing bookings", zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	data := view.BookingsData{
		Base: view.Base{
			Title:  "My Bookings",
			Name:   sess.Name,
			Role:   sess.Role,
			Active: "view_bookings",
			Flash:  common.PopFlash(w, r),
		},
		Bookings: bookings,
	}
	if err := h.view.HTML(w, http.StatusOK, "view_bookings.html", data); err != nil {
		h.log.Error("rendering bookings page", zap.Error(err))
	}
}
