package entity

import (
	"strings"
	"time"
)

// Roles disponibles para usuarios.
const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// User representa un usuario del sistema. El password se guarda exclusivamente
// como hash bcrypt; el texto plano nunca se persiste ni se serializa.
type User struct {
	ID           int64
	Name         string
	Email        string // único
	PasswordHash string
	Roles        []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser construye un usuario con el hash ya calculado.
// Si roles es nil, el rol por defecto es ADMIN (instanciación directa, p. ej. el seed);
// el API pasa explícitamente ["USER"] para registros normales.
func NewUser(name, email, passwordHash string, roles []string) *User {
	if roles == nil {
		roles = []string{RoleAdmin}
	}
	now := time.Now()
	return &User{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Roles:        roles,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// RolesString serializa los roles como cadena separada por comas (formato de la columna roles).
func (u *User) RolesString() string {
	return strings.Join(u.Roles, ",")
}

// SetRolesString deserializa la columna roles hacia la lista de roles.
func (u *User) SetRolesString(s string) {
	if s == "" {
		u.Roles = nil
		return
	}
	u.Roles = strings.Split(s, ",")
}

// HasRole informa si el usuario tiene un rol específico.
func (u *User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}
