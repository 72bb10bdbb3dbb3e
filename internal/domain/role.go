package domain

import "fmt"

// Role clasifica al autor de un mensaje dentro de un chat.
// Es un conjunto cerrado: cualquier valor fuera de el se rechaza
// en la frontera de persistencia.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// ParseRole valida un string abierto contra el conjunto cerrado de roles.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleUser, RoleAssistant, RoleSystem:
		return Role(s), nil
	default:
		return "", fmt.Errorf("invalid role %q", s)
	}
}

// Valid indica si el rol pertenece al conjunto cerrado.
func (r Role) Valid() bool {
	_, err := ParseRole(string(r))
	return err == nil
}

// ForCompletion colapsa cualquier rol fuera de {user, assistant} a assistant
// para la llamada saliente al proveedor de completions.
func (r Role) ForCompletion() Role {
	if r == RoleUser {
		return RoleUser
	}
	return RoleAssistant
}
