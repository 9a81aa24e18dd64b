package report

import (
	"errors"
	"testing"
	"time"
)

func seedReports() []Report {
	return []Report{
		{ID: 1, Site: "Downtown Plaza Construction", Status: StatusCompleted, Date: time.Date(2025, time.September, 18, 0, 0, 0, 0, time.UTC)},
		{ID: 2, Site: "Riverside Apartments", Status: StatusInProgress, Date: time.Date(2025, time.September, 19, 0, 0, 0, 0, time.UTC)},
	}
}

func TestAppendAssignsSequentialIDs(t *testing.T) {
	s := NewStore(seedReports())

	first := s.Append(Report{Site: "Harbor Bridge Renovation", Status: StatusCompleted})
	if first.ID != 3 {
		t.Fatalf("esperava id 3, veio %d", first.ID)
	}

	second := s.Append(Report{Site: "Downtown Plaza Construction", Status: StatusCompleted})
	if second.ID != 4 {
		t.Fatalf("esperava id 4, veio %d", second.ID)
	}
}

func TestAppendKeepsExplicitID(t *testing.T) {
	s := NewStore(nil)

	kept := s.Append(Report{ID: 7, Site: "Harbor Bridge Renovation"})
	if kept.ID != 7 {
		t.Fatalf("id explícito sobrescrito: %d", kept.ID)
	}

	next := s.Append(Report{Site: "Riverside Apartments"})
	if next.ID != 8 {
		t.Fatalf("contador não avançou além do id explícito: %d", next.ID)
	}
}

func TestGet(t *testing.T) {
	s := NewStore(seedReports())

	found, err := s.Get(2)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if found.Site != "Riverside Apartments" {
		t.Fatalf("relatório incorreto: %+v", found)
	}

	if _, err := s.Get(99); !errors.Is(err, ErrNotFound) {
		t.Fatalf("esperava ErrNotFound, veio %v", err)
	}
}

func TestListPreservesInsertionOrder(t *testing.T) {
	s := NewStore(seedReports())
	s.Append(Report{Site: "Harbor Bridge Renovation"})

	list := s.List()
	if len(list) != 3 {
		t.Fatalf("esperava 3 relatórios, veio %d", len(list))
	}
	if list[0].ID != 1 || list[1].ID != 2 || list[2].ID != 3 {
		t.Fatalf("ordem inesperada: %v, %v, %v", list[0].ID, list[1].ID, list[2].ID)
	}

	// a cópia devolvida não expõe o armazenamento interno
	list[0].Site = "alterado"
	again, err := s.Get(1)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if again.Site == "alterado" {
		t.Fatal("List expôs o slice interno")
	}
}
