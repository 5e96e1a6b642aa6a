package common

import (
	"net/http"
	"net/url"
	"strings"
)

const flashCookie = "flash"

const (
	FlashSuccess = "success"
	FlashError   = "error"
)

// Flash is a one-shot message shown on the next rendered page.
type Flash struct {
	Level   string
	Message string
}

// SetFlash stores a flash message in a short-lived cookie. The next call
// to PopFlash consumes it.
func SetFlash(w http.ResponseWriter, level, message string) {
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    url.QueryEscape(level) + ":" + url.QueryEscape(message),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// PopFlash returns the pending flash message, if any, and clears it.
func PopFlash(w http.ResponseWriter, r *http.Request) *Flash {
	c, err := r.Cookie(flashCookie)
	if err != nil || c.Value == "" {
		return nil
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	rawLevel, rawMessage, ok := strings.Cut(c.Value, ":")
	if !ok {
		return nil
	}
	level, err := url.QueryUnescape(rawLevel)
	if err != nil {
		return nil
	}
	message, err := url.QueryUnescape(rawMessage)
	if err != nil {
		return nil
	}
	return &Flash{Level: level, Message: message}
}
