package site

import (
	"errors"

	"github.com/siteguard/api/internal/geofence"
)

// ErrNotFound é retornado quando o canteiro não existe no catálogo.
var ErrNotFound = errors.New("canteiro não encontrado")

// Site é um canteiro inspecionável com sua geofence associada.
// A geofence é embutida por valor: mutações no registro de geofences
// não alcançam o catálogo.
type Site struct {
	ID       int               `json:"id"`
	Name     string            `json:"name"`
	Geofence geofence.Geofence `json:"geofence"`
	Address  string            `json:"address"`
}

// Catalog é a lista estática e somente-leitura de canteiros,
// enumerada uma vez na inicialização.
type Catalog struct {
	sites []Site
}

// NewCatalog cria o catálogo a partir das fixtures.
func NewCatalog(sites []Site) *Catalog {
	return &Catalog{sites: sites}
}

// List devolve todos os canteiros.
func (c *Catalog) List() []Site {
	out := make([]Site, len(c.sites))
	copy(out, c.sites)
	return out
}

// Get busca o canteiro pelo id.
func (c *Catalog) Get(id int) (Site, error) {
	for _, s := range c.sites {
		if s.ID == id {
			return s, nil
		}
	}
	return Site{}, ErrNotFound
}

// Count devolve o total de canteiros.
func (c *Catalog) Count() int {
	return len(c.sites)
}
