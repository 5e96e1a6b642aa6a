package handler

import (
	"errors"
	"net/http"

	"bus_safety/internal/api/view"
	"bus_safety/internal/app/service"
	"bus_safety/internal/common"
	"bus_safety/internal/common/security"
	"bus_safety/internal/domain/model"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AuthHandler struct {
	authService *service.AuthService
	sessions    *security.SessionManager
	view        *view.Renderer
	log         *zap.Logger
}

func NewAuthHandler(authService *service.AuthService, sessions *security.SessionManager, renderer *view.Renderer, log *zap.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, sessions: sessions, view: renderer, log: log}
}

func (h *AuthHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.home)
	r.Get("/signup", h.signupPage)
	r.Post("/signup", h.signup)
	r.Get("/login", h.loginPage)
	r.Post("/login", h.login)
	r.Get("/logout", h.logout)
}

func (h *AuthHandler) home(w http.ResponseWriter, r *http.Request) {
	if _, ok := security.FromContext(r.Context()); ok {
		http.Redirect(w, r, "/dashboard", http.StatusFound)
		return
	}
	data := view.Base{Title: "Welcome", Flash: common.PopFlash(w, r)}
	if err := h.view.HTML(w, http.StatusOK, "index.html", data); err != nil {
		h.log.Error("rendering landing page", zap.Error(err))
	}
}

func (h *AuthHandler) signupPage(w http.ResponseWriter, r *http.Request) {
	data := view.Base{Title: "Sign Up", Flash: common.PopFlash(w, r)}
	if err := h.view.HTML(w, http.StatusOK, "signup.html", data); err != nil {
		h.log.Error("rendering signup page", zap.Error(err))
	}
}

func (h *AuthHandler) signup(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		common.SetFlash(w, common.FlashError, "Please fill all fields correctly.")
		http.Redirect(w, r, "/signup", http.StatusSeeOther)
		return
	}

	req := service.SignupRequest{
		Name:     r.PostFormValue("name"),
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
		Role:     r.PostFormValue("role"),
	}
	// A form without a role field means passenger; a present-but-invalid
	// role still fails validation.
	if _, present := r.PostForm["role"]; !present {
		req.Role = model.RolePassenger
	}

	user, err := h.authService.Signup(r.Context(), req)
	switch {
	case err == nil:
	case errors.Is(err, common.ErrValidation):
		common.SetFlash(w, common.FlashError, "Please fill all fields correctly.")
		http.Redirect(w, r, "/signup", http.StatusSeeOther)
		return
	case errors.Is(err, common.ErrConflict):
		common.SetFlash(w, common.FlashError, "Email already registered. Please log in.")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	default:
		h.log.Error("signup failed", zap.Error(err))
		common.SetFlash(w, common.FlashError, "Something went wrong. Please try again.")
		http.Redirect(w, r, "/signup", http.StatusSeeOther)
		return
	}

	if err := h.sessions.Issue(w, security.Session{UserID: user.ID, Role: user.Role, Name: user.Name}); err != nil {
		h.log.Error("issuing session after signup", zap.Error(err))
		common.SetFlash(w, common.FlashError, "Something went wrong. Please try again.")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	common.SetFlash(w, common.FlashSuccess, "Signup successful. Welcome!")
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (h *AuthHandler) loginPage(w http.ResponseWriter, r *http.Request) {
	data := view.Base{Title: "Log In", Flash: common.PopFlash(w, r)}
	if err := h.view.HTML(w, http.StatusOK, "login.html", data); err != nil {
		h.log.Error("rendering login page", zap.Error(err))
	}
}

func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		common.SetFlash(w, common.FlashError, "Invalid email or password.")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	req := service.LoginRequest{
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	}

	user, err := h.authService.Login(r.Context(), req)
	if err != nil {
		if !errors.Is(err, common.ErrUnauthorized) {
			h.log.Error("login failed", zap.Error(err))
		}
		// One message for unknown email and wrong password alike.
		common.SetFlash(w, common.FlashError, "Invalid email or password.")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	if err := h.sessions.Issue(w, security.Session{UserID: user.ID, Role: user.Role, Name: user.Name}); err != nil {
		h.log.Error("issuing session after login", zap.Error(err))
		common.SetFlash(w, common.FlashError, "Something went wrong. Please try again.")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	common.SetFlash(w, common.FlashSuccess, "Login successful!")
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (h *AuthHandler) logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Clear(w)
	common.SetFlash(w, common.FlashSuccess, "You have been logged out.")
	http.Redirect(w, r, "/", http.StatusFound)
}
