package web

import (
	"net/http"
	"time"
)

type Handler struct {
	now func() time.Time
}

func NewHandler() *Handler {
	return &Handler{now: time.Now}
}

func (h *Handler) Landing(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "public, max-age=300")
	renderHTML(w, http.StatusOK, landingPage(h.now().Year()))
}

func (h *Handler) Admin(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("X-Robots-Tag", "noindex, nofollow")
	w.Header().Set("Cache-Control", "no-store")
	renderHTML(w, http.StatusOK, adminPage())
}

func (h *Handler) SimpleAdmin(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("X-Robots-Tag", "noindex, nofollow")
	w.Header().Set("Cache-Control", "no-store")
	renderHTML(w, http.StatusOK, simpleAdminPage())
}
