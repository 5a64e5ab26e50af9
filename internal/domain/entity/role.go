package entity

import (
	"golang.org/x/text/cases"
)

// RoleKind enumera los niveles de autorización conocidos por la aplicación.
// La tabla roles guarda el nombre; el código solo razona sobre RoleKind.
type RoleKind int

const (
	RoleDesconocido RoleKind = iota
	RoleLector
	RoleModerador
	RoleAdmin
)

var roleNames = map[RoleKind]string{
	RoleLector:    "Lector",
	RoleModerador: "Moderador",
	RoleAdmin:     "Admin",
}

// KnownRoles devuelve los roles válidos en orden estable.
func KnownRoles() []RoleKind {
	return []RoleKind{RoleLector, RoleModerador, RoleAdmin}
}

// String devuelve el nombre canónico del rol ("" si es desconocido).
func (k RoleKind) String() string {
	return roleNames[k]
}

// ParseRoleKind convierte un nombre de rol (sin distinguir mayúsculas) en RoleKind.
// Nombres renombrados o eliminados de la enumeración devuelven RoleDesconocido.
func ParseRoleKind(name string) RoleKind {
	fold := cases.Fold()
	needle := fold.String(name)
	for kind, n := range roleNames {
		if fold.String(n) == needle {
			return kind
		}
	}
	return RoleDesconocido
}

// Role es una fila de la tabla roles.
type Role struct {
	ID   int64
	Name string
}

// Kind interpreta el nombre almacenado.
func (r Role) Kind() RoleKind {
	return ParseRoleKind(r.Name)
}
