package policy

import (
	"errors"

	"github.com/siteguard/api/internal/session"
)

// ErrForbidden indica ausência de permissão.
var ErrForbidden = errors.New("acesso negado")

// Action é uma capacidade nomeada que condiciona uma operação.
type Action string

const (
	ManageGeofences  Action = "manageGeofences"
	ManageUsers      Action = "manageUsers"
	ViewAllReports   Action = "viewAllReports"
	SubmitInspection Action = "submitInspection"
)

// submitInspection inclui admin como override de teste do fluxo móvel;
// manager fica de fora (ver DESIGN.md).
var table = map[Action][]session.Role{
	ManageGeofences:  {session.RoleAdmin},
	ManageUsers:      {session.RoleAdmin},
	ViewAllReports:   {session.RoleAdmin, session.RoleManager},
	SubmitInspection: {session.RoleRepresentative, session.RoleAdmin},
}

// ordem estável para listagens de capacidades.
var actions = []Action{ManageGeofences, ManageUsers, ViewAllReports, SubmitInspection}

// Allows responde se o perfil pode executar a ação.
func Allows(role session.Role, action Action) bool {
	for _, allowed := range table[action] {
		if allowed == role {
			return true
		}
	}
	return false
}

// Capabilities deriva o conjunto de ações permitidas ao perfil.
func Capabilities(role session.Role) []Action {
	caps := make([]Action, 0, len(actions))
	for _, action := range actions {
		if Allows(role, action) {
			caps = append(caps, action)
		}
	}
	return caps
}
