package http

import (
	"encoding/json"
	"errors"
	"net/http"

	httpmiddleware "github.com/siteguard/api/internal/http/middleware"

	"github.com/siteguard/api/internal/geofence"
	"github.com/siteguard/api/internal/notify"
	"github.com/siteguard/api/internal/policy"
)

// ListGeofences devolve todas as geofences em ordem de cadastro.
func (h *Handler) ListGeofences(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]any{"geofences": h.geofences.List()})
}

// CreateGeofence cadastra uma nova cerca. Somente admin.
func (h *Handler) CreateGeofence(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Name         string          `json:"name"`
		Center       *geofence.Point `json:"center"`
		RadiusMeters float64         `json:"radius_meters"`
		Address      string          `json:"address"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "JSON inválido", nil)
		return
	}

	actor := httpmiddleware.GetRole(r.Context())
	fence, err := h.geofences.Create(actor, geofence.CreateInput{
		Name:         payload.Name,
		Center:       payload.Center,
		RadiusMeters: payload.RadiusMeters,
		Address:      payload.Address,
	})
	if err != nil {
		switch {
		case errors.Is(err, policy.ErrForbidden):
			h.notify(r.Context(), notify.KindError, "Access Denied", "Only admins can create geofences")
			WriteError(w, http.StatusForbidden, "FORBIDDEN", err.Error(), nil)
		case errors.Is(err, geofence.ErrInvalid):
			h.notify(r.Context(), notify.KindError, "Missing Information",
				"Please fill in all fields and click on the map to set location")
			WriteError(w, http.StatusBadRequest, "VALIDATION", err.Error(), nil)
		default:
			WriteError(w, http.StatusInternalServerError, "INTERNAL", "não foi possível criar a geofence", nil)
		}
		return
	}

	h.notify(r.Context(), notify.KindSuccess, "Geofence Created",
		fence.Name+" has been added successfully")

	WriteJSON(w, http.StatusCreated, fence)
}

// DeleteGeofence remove uma cerca pelo id. Somente admin.
func (h *Handler) DeleteGeofence(w http.ResponseWriter, r *http.Request) {
	id, err := parseIntParam(r, "geofenceID")
	if err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "id inválido", nil)
		return
	}

	actor := httpmiddleware.GetRole(r.Context())
	if err := h.geofences.Delete(actor, id); err != nil {
		switch {
		case errors.Is(err, policy.ErrForbidden):
			h.notify(r.Context(), notify.KindError, "Access Denied", "Only admins can delete geofences")
			WriteError(w, http.StatusForbidden, "FORBIDDEN", err.Error(), nil)
		case errors.Is(err, geofence.ErrNotFound):
			WriteError(w, http.StatusNotFound, "NOT_FOUND", err.Error(), nil)
		default:
			WriteError(w, http.StatusInternalServerError, "INTERNAL", "não foi possível remover a geofence", nil)
		}
		return
	}

	h.notify(r.Context(), notify.KindSuccess, "Geofence Deleted", "The geofence has been removed")

	WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
