package handler

import (
	"net/http"

	"bus_safety/internal/api/middleware"
	"bus_safety/internal/api/view"
	"bus_safety/internal/common"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// AlertHandler is an acknowledge-only stub: no alert is delivered
// anywhere.
type AlertHandler struct {
	view *view.Renderer
	log  *zap.Logger
}

func NewAlertHandler(renderer *view.Renderer, log *zap.Logger) *AlertHandler {
	return &AlertHandler{view: renderer, log: log}
}

func (h *AlertHandler) RegisterRoutes(r chi.Router) {
	r.Get("/send-alert", h.alertPage)
	r.Post("/send-alert", h.sendAlert)
}

func (h *AlertHandler) alertPage(w http.ResponseWriter, r *http.Request) {
	sess, _ := middleware.SessionFromContext(r.Context())
	data := view.Base{
		Title:  "Emergency Alert",
		Name:   sess.Name,
		Role:   sess.Role,
		Active: "send_alert",
		Flash:  common.PopFlash(w, r),
	}
	if err := h.view.HTML(w, http.StatusOK, "sendalert.html", data); err != nil {
		h.log.Error("rendering alert page", zap.Error(err))
	}
}

func (h *AlertHandler) sendAlert(w http.ResponseWriter, r *http.Request) {
	common.SetFlash(w, common.FlashSuccess, "Emergency alert sent (demo).")
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}
