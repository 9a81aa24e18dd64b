package inspection

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/siteguard/api/internal/geofence"
	"github.com/siteguard/api/internal/policy"
	"github.com/siteguard/api/internal/report"
	"github.com/siteguard/api/internal/session"
	"github.com/siteguard/api/internal/site"
)

// ErrDraftNotFound indica rascunho inexistente ou já descartado.
var ErrDraftNotFound = errors.New("rascunho não encontrado")

// Service administra os rascunhos vivos e a finalização em relatório.
type Service struct {
	catalog *site.Catalog
	reports *report.Store

	mu     sync.Mutex
	drafts map[uuid.UUID]*Draft
}

// NewService cria o serviço sobre o catálogo e o acervo de relatórios.
func NewService(catalog *site.Catalog, reports *report.Store) *Service {
	return &Service{
		catalog: catalog,
		reports: reports,
		drafts:  make(map[uuid.UUID]*Draft),
	}
}

// Start abre um rascunho para o canteiro selecionado. A ação exige a
// capacidade submitInspection do perfil.
func (s *Service) Start(actor session.Role, siteID int, inspector string) (*Draft, error) {
	if !policy.Allows(actor, policy.SubmitInspection) {
		return nil, policy.ErrForbidden
	}

	target, err := s.catalog.Get(siteID)
	if err != nil {
		return nil, err
	}

	if inspector == "" {
		inspector = actor.Title()
	}

	draft := NewDraft(inspector)
	if err := draft.SelectSite(target); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.drafts[draft.ID()] = draft
	s.mu.Unlock()

	return draft, nil
}

// Get busca um rascunho vivo pelo id.
func (s *Service) Get(id uuid.UUID) (*Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft, ok := s.drafts[id]
	if !ok {
		return nil, ErrDraftNotFound
	}
	return draft, nil
}

// SelectSite troca o canteiro alvo de um rascunho aberto.
func (s *Service) SelectSite(id uuid.UUID, siteID int) error {
	draft, err := s.Get(id)
	if err != nil {
		return err
	}
	target, err := s.catalog.Get(siteID)
	if err != nil {
		return err
	}
	return draft.SelectSite(target)
}

// Submit finaliza o rascunho e anexa o relatório ao acervo. O rascunho
// permanece registrado como submetido: mutações posteriores falham.
func (s *Service) Submit(id uuid.UUID) (report.Report, error) {
	draft, err := s.Get(id)
	if err != nil {
		return report.Report{}, err
	}

	built, err := draft.Submit(time.Now())
	if err != nil {
		return report.Report{}, err
	}
	return s.reports.Append(built), nil
}

// Discard abandona o rascunho sem submeter. Não há autosave.
func (s *Service) Discard(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.drafts[id]; !ok {
		return ErrDraftNotFound
	}
	delete(s.drafts, id)
	return nil
}

// VerifyLocation responde se o ponto informado está dentro da geofence
// do canteiro, para a checagem feita antes de iniciar a inspeção.
func (s *Service) VerifyLocation(siteID int, point geofence.Point) (bool, site.Site, error) {
	target, err := s.catalog.Get(siteID)
	if err != nil {
		return false, site.Site{}, err
	}
	return geofence.Contains(point, target.Geofence), target, nil
}
