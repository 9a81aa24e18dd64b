package report

import "time"

// Status do relatório de inspeção.
const (
	StatusCompleted  = "completed"
	StatusInProgress = "in-progress"
	StatusPending    = "pending"
	StatusOverdue    = "overdue"
)

// IsValidStatus responde se o status pertence ao conjunto fixo.
func IsValidStatus(status string) bool {
	switch status {
	case StatusCompleted, StatusInProgress, StatusPending, StatusOverdue:
		return true
	}
	return false
}

// ChecklistEntry é o resultado de um item do checklist no relatório.
type ChecklistEntry struct {
	Item   string `json:"item"`
	Passed bool   `json:"passed"`
}

// Issue é uma ocorrência registrada durante a inspeção.
type Issue struct {
	Priority    string `json:"priority"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// Report é o registro imutável de uma inspeção finalizada.
type Report struct {
	ID         int              `json:"id"`
	Site       string           `json:"site"`
	Location   string           `json:"location"`
	Date       time.Time        `json:"date"`
	Inspector  string           `json:"inspector"`
	Status     string           `json:"status"`
	Checklist  []ChecklistEntry `json:"checklist"`
	Issues     []Issue          `json:"issues"`
	PhotoCount int              `json:"photo_count"`
	Notes      string           `json:"notes,omitempty"`
}
