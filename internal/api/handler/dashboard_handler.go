package handler

import (
	"net/http"

	"bus_safety/internal/api/middleware"
	"bus_safety/internal/api/view"
	"bus_safety/internal/app/service"
	"bus_safety/internal/common"
	"bus_safety/internal/domain/model"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type DashboardHandler struct {
	bookingService *service.BookingService
	reportService  *service.ReportService
	view           *view.Renderer
	log            *zap.Logger
}

func NewDashboardHandler(bookingService *service.BookingService, reportService *service.ReportService, renderer *view.Renderer, log *zap.Logger) *DashboardHandler {
	return &DashboardHandler{bookingService: bookingService, reportService: reportService, view: renderer, log: log}
}

func (h *DashboardHandler) RegisterRoutes(r chi.Router) {
	r.Get("/dashboard", h.dashboard)
}

func (h *DashboardHandler) dashboard(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	base := view.Base{
		Title:  "Dashboard",
		Name:   sess.Name,
		Role:   sess.Role,
		Active: "dashboard",
		Flash:  common.PopFlash(w, r),
	}

	switch sess.Role {
	case model.RoleAdmin:
		report, err := h.reportService.Overview(r.Context())
		if err != nil {
			h.log.Error("loading admin overview", zap.Error(err))
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}
		data := view.AdminDashboardData{Base: base, Report: report}
		if err := h.view.HTML(w, http.StatusOK, "admin_dashboard.html", data); err != nil {
			h.log.Error("rendering admin dashboard", zap.Error(err))
		}

	case model.RoleDriver:
		// No assignment engine exists yet; drivers see an empty list.
		data := view.DriverDashboardData{Base: base, AssignedTrips: []model.Booking{}}
		if err := h.view.HTML(w, http.StatusOK, "driver_dashboard.html", data); err != nil {
			h.log.Error("rendering driver dashboard", zap.Error(err))
		}

	default: // passenger
		upcoming, history, err := h.bookingService.Partition(r.Context(), sess.UserID)
		if err != nil {
			h.log.Error("loading passenger bookings", zap.Error(err))
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}
		data := view.PassengerDashboardData{Base: base, Trips: upcoming, History: history}
		if err := h.view.HTML(w, http.StatusOK, "passenger_dashboard.html", data); err != nil {
			h.log.Error("rendering passenger dashboard", zap.Error(err))
		}
	}
}
