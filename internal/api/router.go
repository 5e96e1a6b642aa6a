package api

import (
	"net/http"
	"time"

	"bus_safety/internal/api/handler"
	"bus_safety/internal/api/middleware"
	"bus_safety/internal/api/view"
	"bus_safety/internal/app/service"
	"bus_safety/internal/common/security"
	"bus_safety/internal/domain/model"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

func NewRouter(
	log *zap.Logger,
	sessions *security.SessionManager,
	renderer *view.Renderer,
	authService *service.AuthService,
	bookingService *service.BookingService,
	userService *service.UserService,
	reportService *service.ReportService,
) http.Handler {
	r := chi.NewRouter()

	// Base middlewares
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(60 * time.Second))

	// Verifies the session cookie and puts its claims in the context.
	// Guards downstream decide what a missing session means.
	r.Use(sessions.Verifier())

	// Public routes: landing page, signup, login, logout.
	authHandler := handler.NewAuthHandler(authService, sessions, renderer, log)
	authHandler.RegisterRoutes(r)

	// Any authenticated role.
	r.Group(func(authed chi.Router) {
		authed.Use(middleware.RequireSession)
		handler.NewDashboardHandler(bookingService, reportService, renderer, log).RegisterRoutes(authed)
		handler.NewAlertHandler(renderer, log).RegisterRoutes(authed)
		handler.NewProfileHandler(userService, sessions, renderer, log).RegisterRoutes(authed)
	})

	// Passenger only.
	r.Group(func(passenger chi.Router) {
		passenger.Use(middleware.RequireRole(model.RolePassenger))
		handler.NewBookingHandler(bookingService, renderer, log).RegisterRoutes(passenger)
	})

	// Admin only.
	r.Group(func(admin chi.Router) {
		admin.Use(middleware.RequireRole(model.RoleAdmin))
		handler.NewAdminHandler(userService, bookingService, reportService, renderer, log).RegisterRoutes(admin)
	})

	// No dedicated 404 page; unknown paths land on the home page.
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/", http.StatusFound)
	})

	return r
}
