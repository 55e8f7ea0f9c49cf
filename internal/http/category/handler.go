package category

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/plaincents/plaincents/internal/category"
)

type Handler struct {
	palette category.Palette
}

func NewHandler(palette category.Palette) *Handler {
	return &Handler{palette: palette}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
}

type categoryResponse struct {
	Name  category.Category `json:"name"`
	Color string            `json:"color"`
}

type listResponse struct {
	Categories []categoryResponse `json:"categories"`
	Accent     string             `json:"accent"`
}

func (h *Handler) list(w http.ResponseWriter, _ *http.Request) {
	all := category.All()

	resp := listResponse{
		Categories: make([]categoryResponse, 0, len(all)),
		Accent:     h.palette[category.AccentKey],
	}
	for _, c := range all {
		resp.Categories = append(resp.Categories, categoryResponse{Name: c, Color: h.palette.Color(c)})
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
