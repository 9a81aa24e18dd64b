package session

import "strings"

// Role identifica o perfil ativo do usuário do aplicativo.
type Role string

const (
	RoleAdmin          Role = "admin"
	RoleManager        Role = "manager"
	RoleRepresentative Role = "representative"
	RoleNone           Role = ""
)

// ParseRole normaliza e valida o valor recebido do cliente ou do slot.
func ParseRole(value string) (Role, bool) {
	switch Role(strings.ToLower(strings.TrimSpace(value))) {
	case RoleAdmin:
		return RoleAdmin, true
	case RoleManager:
		return RoleManager, true
	case RoleRepresentative:
		return RoleRepresentative, true
	case RoleNone:
		return RoleNone, true
	default:
		return RoleNone, false
	}
}

// Title devolve o rótulo exibido para o perfil.
func (r Role) Title() string {
	switch r {
	case RoleAdmin:
		return "Admin"
	case RoleManager:
		return "Manager"
	case RoleRepresentative:
		return "Representative"
	default:
		return ""
	}
}

// IsSet informa se há perfil selecionado.
func (r Role) IsSet() bool {
	return r != RoleNone
}
