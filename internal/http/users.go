package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/siteguard/api/internal/directory"
	httpmiddleware "github.com/siteguard/api/internal/http/middleware"
	"github.com/siteguard/api/internal/notify"
	"github.com/siteguard/api/internal/policy"
	"github.com/siteguard/api/internal/session"
)

type userPayload struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (p userPayload) toInput() (directory.UpdateInput, bool) {
	role, ok := session.ParseRole(p.Role)
	if !ok {
		return directory.UpdateInput{}, false
	}
	return directory.UpdateInput{Name: p.Name, Email: p.Email, Role: role}, true
}

// ListUsers devolve a equipe cadastrada.
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]any{"users": h.users.List()})
}

// CreateUser cadastra um membro da equipe. Somente admin.
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var payload userPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "JSON inválido", nil)
		return
	}

	input, ok := payload.toInput()
	if !ok {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "papel desconhecido", nil)
		return
	}

	actor := httpmiddleware.GetRole(r.Context())
	user, err := h.users.Create(actor, input)
	if err != nil {
		h.writeUserError(w, err)
		return
	}

	h.notify(r.Context(), notify.KindSuccess, "User Added", user.Name+" has been added to the team")

	WriteJSON(w, http.StatusCreated, user)
}

// UpdateUser edita um membro da equipe. Somente admin.
func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseIntParam(r, "userID")
	if err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "id inválido", nil)
		return
	}

	var payload userPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "JSON inválido", nil)
		return
	}

	input, ok := payload.toInput()
	if !ok {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "papel desconhecido", nil)
		return
	}

	actor := httpmiddleware.GetRole(r.Context())
	user, err := h.users.Update(actor, id, input)
	if err != nil {
		h.writeUserError(w, err)
		return
	}

	h.notify(r.Context(), notify.KindSuccess, "Edit User", "Editing "+user.Name)

	WriteJSON(w, http.StatusOK, user)
}

// DeleteUser remove um membro da equipe. Somente admin.
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseIntParam(r, "userID")
	if err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "id inválido", nil)
		return
	}

	actor := httpmiddleware.GetRole(r.Context())
	if err := h.users.Delete(actor, id); err != nil {
		h.writeUserError(w, err)
		return
	}

	h.notify(r.Context(), notify.KindSuccess, "Delete User", "The user has been removed")

	WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *Handler) writeUserError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, policy.ErrForbidden):
		WriteError(w, http.StatusForbidden, "FORBIDDEN", err.Error(), nil)
	case errors.Is(err, directory.ErrNotFound):
		WriteError(w, http.StatusNotFound, "NOT_FOUND", err.Error(), nil)
	case errors.Is(err, directory.ErrInvalid):
		WriteError(w, http.StatusBadRequest, "VALIDATION", err.Error(), nil)
	default:
		WriteError(w, http.StatusInternalServerError, "INTERNAL", "não foi possível atualizar o usuário", nil)
	}
}
