package geofence

import (
	"errors"
	"fmt"
	"sync"

	"github.com/siteguard/api/internal/policy"
	"github.com/siteguard/api/internal/session"
	"github.com/siteguard/api/internal/util"
)

var (
	// ErrNotFound é retornado quando a geofence não existe no registro.
	ErrNotFound = errors.New("geofence não encontrada")
	// ErrInvalid agrupa falhas de validação na criação.
	ErrInvalid = errors.New("geofence inválida")
)

// Registry mantém as geofences em memória, em ordem de inserção.
// Toda mutação acontece sob o mutex: a atribuição de id precisa ser
// atômica em relação a criações concorrentes.
type Registry struct {
	mu     sync.Mutex
	fences []Geofence
	lastID int
}

// NewRegistry cria o registro com as geofences iniciais.
func NewRegistry(seed []Geofence) *Registry {
	r := &Registry{fences: make([]Geofence, 0, len(seed))}
	for _, fence := range seed {
		r.fences = append(r.fences, fence)
		if fence.ID > r.lastID {
			r.lastID = fence.ID
		}
	}
	return r
}

// List devolve todas as geofences em ordem de inserção.
func (r *Registry) List() []Geofence {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Geofence, len(r.fences))
	copy(out, r.fences)
	return out
}

// Get busca a geofence pelo id.
func (r *Registry) Get(id int) (Geofence, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, fence := range r.fences {
		if fence.ID == id {
			return fence, nil
		}
	}
	return Geofence{}, ErrNotFound
}

// Create valida, atribui o próximo id e adiciona a geofence.
// Ids são monotônicos: um id removido nunca é reaproveitado.
func (r *Registry) Create(actor session.Role, input CreateInput) (Geofence, error) {
	if !policy.Allows(actor, policy.ManageGeofences) {
		return Geofence{}, policy.ErrForbidden
	}

	if err := util.RequireString(input.Name, "nome"); err != nil {
		return Geofence{}, fmt.Errorf("%w: %s", ErrInvalid, err.Error())
	}
	if err := util.RequireString(input.Address, "endereço"); err != nil {
		return Geofence{}, fmt.Errorf("%w: %s", ErrInvalid, err.Error())
	}
	if input.Center == nil {
		return Geofence{}, fmt.Errorf("%w: centro não selecionado", ErrInvalid)
	}
	if input.RadiusMeters <= 0 {
		return Geofence{}, fmt.Errorf("%w: raio deve ser positivo", ErrInvalid)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastID++
	fence := Geofence{
		ID:           r.lastID,
		Name:         input.Name,
		Center:       *input.Center,
		RadiusMeters: input.RadiusMeters,
		Address:      input.Address,
	}
	r.fences = append(r.fences, fence)
	return fence, nil
}

// Delete remove a geofence pelo id. Não há efeito em cascata: o catálogo
// de canteiros referencia geofences por valor.
func (r *Registry) Delete(actor session.Role, id int) error {
	if !policy.Allows(actor, policy.ManageGeofences) {
		return policy.ErrForbidden
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i, fence := range r.fences {
		if fence.ID == id {
			r.fences = append(r.fences[:i], r.fences[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// Count devolve o total de geofences registradas.
func (r *Registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.fences)
}
