package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/siteguard/api/internal/geofence"
	"github.com/siteguard/api/internal/notify"
	"github.com/siteguard/api/internal/site"
)

// ListSites devolve o catálogo de canteiros.
func (h *Handler) ListSites(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]any{"sites": h.catalog.List()})
}

// GetSite devolve um canteiro pelo id.
func (h *Handler) GetSite(w http.ResponseWriter, r *http.Request) {
	id, err := parseIntParam(r, "siteID")
	if err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "id inválido", nil)
		return
	}

	s, err := h.catalog.Get(id)
	if err != nil {
		WriteError(w, http.StatusNotFound, "NOT_FOUND", err.Error(), nil)
		return
	}

	WriteJSON(w, http.StatusOK, s)
}

// VerifyLocation checa se o ponto informado está dentro da geofence do
// canteiro antes de iniciar a inspeção.
func (h *Handler) VerifyLocation(w http.ResponseWriter, r *http.Request) {
	id, err := parseIntParam(r, "siteID")
	if err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "id inválido", nil)
		return
	}

	var payload struct {
		Lat float64 `json:"lat"`
		Lng float64 `json:"lng"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "JSON inválido", nil)
		return
	}

	inside, target, err := h.inspections.VerifyLocation(id, geofence.Point{Lat: payload.Lat, Lng: payload.Lng})
	if err != nil {
		if errors.Is(err, site.ErrNotFound) {
			WriteError(w, http.StatusNotFound, "NOT_FOUND", err.Error(), nil)
			return
		}
		WriteError(w, http.StatusInternalServerError, "INTERNAL", "não foi possível verificar a localização", nil)
		return
	}

	if inside {
		h.notify(r.Context(), notify.KindSuccess, "Geofence Verified",
			"You are within the "+target.Name+" geofence boundary.")
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"inside": inside,
		"site":   target,
	})
}

func parseIntParam(r *http.Request, name string) (int, error) {
	raw := chi.URLParam(r, name)
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	return value, nil
}
