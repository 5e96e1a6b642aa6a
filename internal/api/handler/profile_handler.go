package handler

import (
	"net/http"

	"bus_safety/internal/api/middleware"
	"bus_safety/internal/api/view"
	"bus_safety/internal/app/service"
	"bus_safety/internal/common"
	"bus_safety/internal/common/security"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ProfileHandler struct {
	userService *service.UserService
	sessions    *security.SessionManager
	view        *view.Renderer
	log         *zap.Logger
}

func NewProfileHandler(userService *service.UserService, sessions *security.SessionManager, renderer *view.Renderer, log *zap.Logger) *ProfileHandler {
	return &ProfileHandler{userService: userService, sessions: sessions, view: renderer, log: log}
}

func (h *ProfileHandler) RegisterRoutes(r chi.Router) {
	r.Get("/profile", h.profilePage)
	r.Post("/profile", h.updateProfile)
}

func (h *ProfileHandler) profilePage(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	user, err := h.userService.Get(r.Context(), sess.UserID)
	if err != nil {
		h.log.Error("loading profile", zap.Error(err), zap.String("user_id", sess.UserID))
		common.SetFlash(w, common.FlashError, "Something went wrong. Please try again.")
		http.Redirect(w, r, "/dashboard", http.StatusFound)
		return
	}

	data := view.ProfileData{
		Base: view.Base{
			Title:  "My Profile",
			Name:   sess.Name,
			Role:   sess.Role,
			Active: "profile",
			Flash:  common.PopFlash(w, r),
		},
		User: user,
	}
	if err := h.view.HTML(w, http.StatusOK, "profile.html", data); err != nil {
		h.log.Error("rendering profile page", zap.Error(err))
	}
}

func (h *ProfileHandler) updateProfile(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}
	if err := r.ParseForm(); err != nil {
		common.SetFlash(w, common.FlashError, "Something went wrong. Please try again.")
		http.Redirect(w, r, "/profile", http.StatusSeeOther)
		return
	}

	req := service.UpdateProfileRequest{
		Name:     r.PostFormValue("name"),
		Password: r.PostFormValue("password"),
	}

	user, err := h.userService.UpdateProfile(r.Context(), sess.UserID, req)
	if err != nil {
		h.log.Error("updating profile", zap.Error(err), zap.String("user_id", sess.UserID))
		common.SetFlash(w, common.FlashError, "Something went wrong. Please try again.")
		http.Redirect(w, r, "/profile", http.StatusSeeOther)
		return
	}

	// Keep the session's display-name copy current.
	if err := h.sessions.Issue(w, security.Session{UserID: user.ID, Role: user.Role, Name: user.Name}); err != nil {
		h.log.Error("refreshing session after profile update", zap.Error(err))
	}
	common.SetFlash(w, common.FlashSuccess, "Profile updated!")
	http.Redirect(w, r, "/profile", http.StatusSeeOther)
}
