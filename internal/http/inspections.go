package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	httpmiddleware "github.com/siteguard/api/internal/http/middleware"
	"github.com/siteguard/api/internal/inspection"
	"github.com/siteguard/api/internal/notify"
	"github.com/siteguard/api/internal/policy"
	"github.com/siteguard/api/internal/site"
)

const maxPhotoBytes = 10 << 20

// StartInspection abre um rascunho para o canteiro selecionado.
func (h *Handler) StartInspection(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		SiteID    int    `json:"site_id"`
		Inspector string `json:"inspector"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "JSON inválido", nil)
		return
	}

	actor := httpmiddleware.GetRole(r.Context())
	draft, err := h.inspections.Start(actor, payload.SiteID, payload.Inspector)
	if err != nil {
		switch {
		case errors.Is(err, policy.ErrForbidden):
			WriteError(w, http.StatusForbidden, "FORBIDDEN", err.Error(), nil)
		case errors.Is(err, site.ErrNotFound):
			WriteError(w, http.StatusNotFound, "NOT_FOUND", err.Error(), nil)
		default:
			WriteError(w, http.StatusInternalServerError, "INTERNAL", "não foi possível iniciar a inspeção", nil)
		}
		return
	}

	WriteJSON(w, http.StatusCreated, draft.Snapshot())
}

// GetInspection devolve o estado atual do rascunho.
func (h *Handler) GetInspection(w http.ResponseWriter, r *http.Request) {
	draft, ok := h.draftFromRequest(w, r)
	if !ok {
		return
	}
	WriteJSON(w, http.StatusOK, draft.Snapshot())
}

// DiscardInspection abandona o rascunho sem submeter.
func (h *Handler) DiscardInspection(w http.ResponseWriter, r *http.Request) {
	id, err := parseDraftID(r)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "id inválido", nil)
		return
	}

	if err := h.inspections.Discard(id); err != nil {
		WriteError(w, http.StatusNotFound, "NOT_FOUND", err.Error(), nil)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{"status": "discarded"})
}

// SelectInspectionSite troca o canteiro alvo do rascunho.
func (h *Handler) SelectInspectionSite(w http.ResponseWriter, r *http.Request) {
	id, err := parseDraftID(r)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "id inválido", nil)
		return
	}

	var payload struct {
		SiteID int `json:"site_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "JSON inválido", nil)
		return
	}

	if err := h.inspections.SelectSite(id, payload.SiteID); err != nil {
		h.writeDraftError(w, err)
		return
	}

	draft, err := h.inspections.Get(id)
	if err != nil {
		WriteError(w, http.StatusNotFound, "NOT_FOUND", err.Error(), nil)
		return
	}
	WriteJSON(w, http.StatusOK, draft.Snapshot())
}

// ToggleChecklistItem inverte a resposta do item do checklist.
func (h *Handler) ToggleChecklistItem(w http.ResponseWriter, r *http.Request) {
	draft, ok := h.draftFromRequest(w, r)
	if !ok {
		return
	}

	key := inspection.ItemKey(chi.URLParam(r, "itemKey"))
	if err := draft.ToggleItem(key); err != nil {
		h.writeDraftError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, draft.Snapshot())
}

// AddInspectionPhoto decodifica e anexa a foto enviada via multipart.
func (h *Handler) AddInspectionPhoto(w http.ResponseWriter, r *http.Request) {
	draft, ok := h.draftFromRequest(w, r)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(maxPhotoBytes); err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "dados multipart inválidos", nil)
		return
	}

	file, _, err := r.FormFile("photo")
	if err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "campo photo ausente", nil)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxPhotoBytes))
	if err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "não foi possível ler a foto", nil)
		return
	}

	photo, err := draft.AddPhoto(data)
	if err != nil {
		h.writeDraftError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, map[string]any{
		"photo":    photo,
		"progress": draft.Progress(),
	})
}

// RemoveInspectionPhoto remove a foto pelo índice.
func (h *Handler) RemoveInspectionPhoto(w http.ResponseWriter, r *http.Request) {
	draft, ok := h.draftFromRequest(w, r)
	if !ok {
		return
	}

	index, err := parseIntParam(r, "index")
	if err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "índice inválido", nil)
		return
	}

	if err := draft.RemovePhoto(index); err != nil {
		h.writeDraftError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, draft.Snapshot())
}

// AddInspectionIssue registra uma ocorrência no rascunho.
func (h *Handler) AddInspectionIssue(w http.ResponseWriter, r *http.Request) {
	draft, ok := h.draftFromRequest(w, r)
	if !ok {
		return
	}

	var payload struct {
		Priority    string `json:"priority"`
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "JSON inválido", nil)
		return
	}

	issue, err := draft.AddIssue(payload.Priority, payload.Description)
	if err != nil {
		h.writeDraftError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, issue)
}

// RemoveInspectionIssue remove a ocorrência pelo índice.
func (h *Handler) RemoveInspectionIssue(w http.ResponseWriter, r *http.Request) {
	draft, ok := h.draftFromRequest(w, r)
	if !ok {
		return
	}

	index, err := parseIntParam(r, "index")
	if err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "índice inválido", nil)
		return
	}

	if err := draft.RemoveIssue(index); err != nil {
		h.writeDraftError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, draft.Snapshot())
}

// SubmitInspection finaliza o rascunho e devolve o relatório gerado.
func (h *Handler) SubmitInspection(w http.ResponseWriter, r *http.Request) {
	id, err := parseDraftID(r)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "id inválido", nil)
		return
	}

	built, err := h.inspections.Submit(id)
	if err != nil {
		h.writeDraftError(w, err)
		return
	}

	h.notify(r.Context(), notify.KindSuccess, "Inspection submitted successfully!",
		"Report generated and saved for review.")

	WriteJSON(w, http.StatusCreated, built)
}

func (h *Handler) draftFromRequest(w http.ResponseWriter, r *http.Request) (*inspection.Draft, bool) {
	id, err := parseDraftID(r)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "id inválido", nil)
		return nil, false
	}

	draft, err := h.inspections.Get(id)
	if err != nil {
		WriteError(w, http.StatusNotFound, "NOT_FOUND", err.Error(), nil)
		return nil, false
	}
	return draft, true
}

func (h *Handler) writeDraftError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, inspection.ErrDraftNotFound), errors.Is(err, site.ErrNotFound):
		WriteError(w, http.StatusNotFound, "NOT_FOUND", err.Error(), nil)
	case errors.Is(err, inspection.ErrClosed):
		WriteError(w, http.StatusConflict, "CONFLICT", err.Error(), nil)
	case errors.Is(err, inspection.ErrUnknownItem),
		errors.Is(err, inspection.ErrIndexOutOfRange),
		errors.Is(err, inspection.ErrPhotoDecode),
		errors.Is(err, inspection.ErrInvalidIssue),
		errors.Is(err, inspection.ErrSiteRequired):
		WriteError(w, http.StatusBadRequest, "VALIDATION", err.Error(), nil)
	default:
		WriteError(w, http.StatusInternalServerError, "INTERNAL", "erro ao atualizar a inspeção", nil)
	}
}

func parseDraftID(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, "draftID"))
}
