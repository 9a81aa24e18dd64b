package report

import (
	"errors"
	"sync"
)

// ErrNotFound é retornado quando o relatório não existe.
var ErrNotFound = errors.New("relatório não encontrado")

// Store guarda relatórios finalizados em ordem de inserção.
type Store struct {
	mu      sync.Mutex
	reports []Report
	lastID  int
}

// NewStore cria o acervo com os relatórios iniciais.
func NewStore(seed []Report) *Store {
	s := &Store{reports: make([]Report, 0, len(seed))}
	for _, r := range seed {
		s.reports = append(s.reports, r)
		if r.ID > s.lastID {
			s.lastID = r.ID
		}
	}
	return s
}

// Append adiciona o relatório, atribuindo o próximo id sequencial
// quando ainda não definido. Devolve o registro como armazenado.
func (s *Store) Append(r Report) Report {
	s.mu.Lock()
	defer s.mu.Unlock()

	if r.ID == 0 {
		s.lastID++
		r.ID = s.lastID
	} else if r.ID > s.lastID {
		s.lastID = r.ID
	}
	s.reports = append(s.reports, r)
	return r
}

// Get busca o relatório pelo id.
func (s *Store) Get(id int) (Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.reports {
		if r.ID == id {
			return r, nil
		}
	}
	return Report{}, ErrNotFound
}

// List devolve os relatórios em ordem de inserção (mais recente por último;
// a camada de apresentação inverte se quiser).
func (s *Store) List() []Report {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Report, len(s.reports))
	copy(out, s.reports)
	return out
}
