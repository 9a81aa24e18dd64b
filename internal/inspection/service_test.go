package inspection

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/siteguard/api/internal/geofence"
	"github.com/siteguard/api/internal/policy"
	"github.com/siteguard/api/internal/report"
	"github.com/siteguard/api/internal/session"
	"github.com/siteguard/api/internal/site"
)

func newTestService() (*Service, *report.Store) {
	catalog := site.NewCatalog([]site.Site{testSite()})
	reports := report.NewStore(nil)
	return NewService(catalog, reports), reports
}

func TestStartRequiresCapability(t *testing.T) {
	svc, _ := newTestService()

	if _, err := svc.Start(session.RoleManager, 1, ""); !errors.Is(err, policy.ErrForbidden) {
		t.Fatalf("manager deveria ser negado, veio %v", err)
	}
	if _, err := svc.Start(session.RoleNone, 1, ""); !errors.Is(err, policy.ErrForbidden) {
		t.Fatalf("perfil vazio deveria ser negado, veio %v", err)
	}

	if _, err := svc.Start(session.RoleRepresentative, 1, ""); err != nil {
		t.Fatalf("representative deveria poder iniciar, veio %v", err)
	}
	if _, err := svc.Start(session.RoleAdmin, 1, ""); err != nil {
		t.Fatalf("admin deveria poder iniciar, veio %v", err)
	}
}

func TestStartUnknownSite(t *testing.T) {
	svc, _ := newTestService()
	if _, err := svc.Start(session.RoleAdmin, 42, ""); !errors.Is(err, site.ErrNotFound) {
		t.Fatalf("esperava site.ErrNotFound, veio %v", err)
	}
}

func TestStartDefaultsInspectorToRoleTitle(t *testing.T) {
	svc, _ := newTestService()

	draft, err := svc.Start(session.RoleRepresentative, 1, "")
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if got := draft.Snapshot().Inspector; got != "Representative" {
		t.Fatalf("inspetor padrão incorreto: %q", got)
	}

	named, err := svc.Start(session.RoleAdmin, 1, "John Smith")
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if got := named.Snapshot().Inspector; got != "John Smith" {
		t.Fatalf("inspetor informado ignorado: %q", got)
	}
}

func TestSubmitAppendsReport(t *testing.T) {
	svc, reports := newTestService()

	draft, err := svc.Start(session.RoleRepresentative, 1, "")
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if err := draft.ToggleItem(ItemSafetyEquipment); err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	stored, err := svc.Submit(draft.ID())
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if stored.ID != 1 {
		t.Fatalf("esperava id 1, veio %d", stored.ID)
	}
	if len(reports.List()) != 1 {
		t.Fatal("relatório não anexado ao acervo")
	}

	// o rascunho permanece registrado, mas encerrado
	if _, err := svc.Submit(draft.ID()); !errors.Is(err, ErrClosed) {
		t.Fatalf("segunda submissão deveria falhar com ErrClosed, veio %v", err)
	}
}

func TestDiscard(t *testing.T) {
	svc, _ := newTestService()

	draft, err := svc.Start(session.RoleRepresentative, 1, "")
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if err := svc.Discard(draft.ID()); err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if _, err := svc.Get(draft.ID()); !errors.Is(err, ErrDraftNotFound) {
		t.Fatalf("rascunho descartado ainda acessível: %v", err)
	}
	if err := svc.Discard(uuid.New()); !errors.Is(err, ErrDraftNotFound) {
		t.Fatalf("esperava ErrDraftNotFound, veio %v", err)
	}
}

func TestVerifyLocation(t *testing.T) {
	svc, _ := newTestService()
	center := testSite().Geofence.Center

	inside, found, err := svc.VerifyLocation(1, center)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if !inside {
		t.Fatal("centro da geofence deveria verificar como dentro")
	}
	if found.ID != 1 {
		t.Fatalf("canteiro incorreto: %+v", found)
	}

	far := geofence.Point{Lat: center.Lat + 1, Lng: center.Lng}
	inside, _, err = svc.VerifyLocation(1, far)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if inside {
		t.Fatal("ponto a ~111 km não deveria verificar como dentro")
	}

	if _, _, err := svc.VerifyLocation(42, center); !errors.Is(err, site.ErrNotFound) {
		t.Fatalf("esperava site.ErrNotFound, veio %v", err)
	}
}
