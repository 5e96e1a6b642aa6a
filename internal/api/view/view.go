package view

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"

	"bus_safety/internal/common"
	"bus_safety/internal/domain/model"
)

// Base carries the fields every page needs: the nav state and the pending
// flash message. Page view models embed it.
type Base struct {
	Title  string
	Name   string
	Role   string
	Active string
	Flash  *common.Flash
}

type PassengerDashboardData struct {
	Base
	Trips   []model.Booking
	History []model.Booking
}

type DriverDashboardData struct {
	Base
	AssignedTrips []model.Booking
}

type AdminDashboardData struct {
	Base
	Report   *model.SystemReport
	Users    []model.User
	Bookings []model.Booking
}

type BookingsData struct {
	Base
	Bookings []model.Booking
}

type ProfileData struct {
	Base
	User *model.User
}

// Renderer holds one parsed template set per page, each sharing the base
// layout.
type Renderer struct {
	pages map[string]*template.Template
}

func New(fsys fs.FS) (*Renderer, error) {
	names, err := fs.Glob(fsys, "template/*.html")
	if err != nil {
		return nil, fmt.Errorf("globbing templates: %w", err)
	}

	pages := make(map[string]*template.Template)
	for _, name := range names {
		base := path.Base(name)
		if base == "layout.html" {
			continue
		}
		t, err := template.ParseFS(fsys, "template/layout.html", name)
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", base, err)
		}
		pages[base] = t
	}
	if len(pages) == 0 {
		return nil, fmt.Errorf("no page templates found")
	}
	return &Renderer{pages: pages}, nil
}

// HTML renders the named page into the response. The page is buffered
// first so a template fault cannot leave a half-written body.
func (r *Renderer) HTML(w http.ResponseWriter, status int, page string, data any) error {
	t, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("unknown template %q", page)
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout.html", data); err != nil {
		return fmt.Errorf("rendering %s: %w", page, err)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
