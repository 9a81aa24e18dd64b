package site

import (
	"errors"
	"testing"

	"github.com/siteguard/api/internal/geofence"
)

func seedSites() []Site {
	return []Site{
		{ID: 1, Name: "Downtown Tower - Phase 2", Address: "350 5th Ave", Geofence: geofence.Geofence{ID: 1, RadiusMeters: 200}},
		{ID: 2, Name: "Harbor Bridge Extension", Address: "Brooklyn Bridge", Geofence: geofence.Geofence{ID: 2, RadiusMeters: 300}},
	}
}

func TestGet(t *testing.T) {
	c := NewCatalog(seedSites())

	s, err := c.Get(2)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if s.Name != "Harbor Bridge Extension" {
		t.Fatalf("canteiro incorreto: %+v", s)
	}

	if _, err := c.Get(99); !errors.Is(err, ErrNotFound) {
		t.Fatalf("esperava ErrNotFound, veio %v", err)
	}
}

func TestListCopiesCatalog(t *testing.T) {
	c := NewCatalog(seedSites())

	list := c.List()
	if len(list) != 2 || c.Count() != 2 {
		t.Fatalf("catálogo inesperado: %d itens", len(list))
	}

	list[0].Name = "alterado"
	again, err := c.Get(1)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if again.Name == "alterado" {
		t.Fatal("List expôs o slice interno")
	}
}
