package web

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"

	"roofsite/internal/web/assets"
)

func MountRoutes(r chi.Router, h *Handler) {
	r.Get("/", h.Landing)
	r.Get("/admin", h.Admin)
	r.Get("/simple-admin", h.SimpleAdmin)

	staticFS, err := fs.Sub(assets.StaticFS(), "static")
	if err == nil {
		r.Handle(staticPrefix+"*", http.StripPrefix(staticPrefix, http.FileServer(http.FS(staticFS))))
	}
}
