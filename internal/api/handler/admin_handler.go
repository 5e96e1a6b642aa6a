package handler

import (
	"net/http"

	"bus_safety/internal/api/middleware"
	"bus_safety/internal/api/view"
	"bus_safety/internal/app/service"
	"bus_safety/internal/common"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// AdminHandler serves the admin-only listing and reporting views. All
// three routes reuse the admin dashboard template, switched on Active.
type AdminHandler struct {
	userService    *service.UserService
	bookingService *service.BookingService
	reportService  *service.ReportService
	view           *view.Renderer
	log            *zap.Logger
}

func NewAdminHandler(userService *service.UserService, bookingService *service.BookingService, reportService *service.ReportService, renderer *view.Renderer, log *zap.Logger) *AdminHandler {
	return &AdminHandler{
		userService:    userService,
		bookingService: bookingService,
		reportService:  reportService,
		view:           renderer,
		log:            log,
	}
}

func (h *AdminHandler) RegisterRoutes(r chi.Router) {
	r.Get("/reports", h.reports)
	r.Get("/manage-users", h.manageUsers)
	r.Get("/trips-overview", h.tripsOverview)
}

func (h *AdminHandler) base(w http.ResponseWriter, r *http.Request, title, active string) view.Base {
	sess, _ := middleware.SessionFromContext(r.Context())
	return view.Base{
		Title:  title,
		Name:   sess.Name,
		Role:   sess.Role,
		Active: active,
		Flash:  common.PopFlash(w, r),
	}
}

func (h *AdminHandler) reports(w http.ResponseWriter, r *http.Request) {
	report, err := h.reportService.Overview(r.Context())
	if err != nil {
		h.log.Error("loading reports", zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	data := view.AdminDashboardData{Base: h.base(w, r, "Reports", "reports"), Report: report}
	if err := h.view.HTML(w, http.StatusOK, "admin_dashboard.html", data); err != nil {
		h.log.Error("rendering reports", zap.Error(err))
	}
}

func (h *AdminHandler) manageUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.ListAll(r.Context())
	if err != nil {
		h.log.Error("listing users", zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	data := view.AdminDashboardData{Base: h.base(w, r, "Manage Users", "manage_users"), Users: users}
	if err := h.view.HTML(w, http.StatusOK, "admin_dashboard.html", data); err != nil {
		h.log.Error("rendering user list", zap.Error(err))
	}
}

func (h *AdminHandler) tripsOverview(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.bookingService.ListAll(r.Context())
	if err != nil {
		h.log.Error("listing all bookings", zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	data := view.AdminDashboardData{Base: h.base(w, r, "Trips Overview", "trips_overview"), Bookings: bookings}
	if err := h.view.HTML(w, http.StatusOK, "admin_dashboard.html", data); err != nil {
		h.log.Error("rendering trips overview", zap.Error(err))
	}
}
