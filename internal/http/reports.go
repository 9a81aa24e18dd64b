package http

import (
	"errors"
	"net/http"

	"github.com/siteguard/api/internal/report"
)

// ListReports devolve o histórico de inspeções, mais recente primeiro.
func (h *Handler) ListReports(w http.ResponseWriter, r *http.Request) {
	reports := h.reports.List()
	for i, j := 0, len(reports)-1; i < j; i, j = i+1, j-1 {
		reports[i], reports[j] = reports[j], reports[i]
	}
	WriteJSON(w, http.StatusOK, map[string]any{"reports": reports})
}

// GetReport devolve um relatório pelo id.
func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	id, err := parseIntParam(r, "reportID")
	if err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "id inválido", nil)
		return
	}

	found, err := h.reports.Get(id)
	if err != nil {
		if errors.Is(err, report.ErrNotFound) {
			WriteError(w, http.StatusNotFound, "NOT_FOUND", err.Error(), nil)
			return
		}
		WriteError(w, http.StatusInternalServerError, "INTERNAL", "não foi possível carregar o relatório", nil)
		return
	}

	WriteJSON(w, http.StatusOK, found)
}
