// Package access define la tabla de capacidades por rol y las reglas de
// propiedad sobre los libros.
package access

import (
	"fmt"
	"strings"

	"github.com/jhoicas/mis-libros/internal/domain/entity"
)

// VisibilityOwnerOnly restringe el dashboard a los libros propios.
const VisibilityOwnerOnly = "owner_only"

// Capabilities son los permisos efectivos de un rol.
type Capabilities struct {
	CanViewAll bool // el dashboard muestra los libros de todos los usuarios
	IsAdmin    bool // puede editar/eliminar libros ajenos y listar usuarios
}

// Policy resuelve capacidades por RoleKind. Es inmutable tras NewPolicy.
type Policy struct {
	table map[entity.RoleKind]Capabilities
}

// NewPolicy construye la tabla de capacidades desde la configuración.
//
// visibility: "owner_only" o "role:<Nombre>" (ese rol ve todos los libros).
// adminRole: nombre del rol con capacidad de administración.
func NewPolicy(visibility, adminRole string) (*Policy, error) {
	table := make(map[entity.RoleKind]Capabilities)

	admin := entity.ParseRoleKind(adminRole)
	if admin == entity.RoleDesconocido {
		return nil, fmt.Errorf("access: rol admin desconocido %q", adminRole)
	}
	caps := table[admin]
	caps.IsAdmin = true
	table[admin] = caps

	visibility = strings.TrimSpace(visibility)
	switch {
	case visibility == "" || visibility == VisibilityOwnerOnly:
	case strings.HasPrefix(visibility, "role:"):
		name := strings.TrimPrefix(visibility, "role:")
		kind := entity.ParseRoleKind(name)
		if kind == entity.RoleDesconocido {
			return nil, fmt.Errorf("access: rol de visibilidad desconocido %q", name)
		}
		caps := table[kind]
		caps.CanViewAll = true
		table[kind] = caps
	default:
		return nil, fmt.Errorf("access: política de visibilidad inválida %q", visibility)
	}
	return &Policy{table: table}, nil
}

// For devuelve las capacidades del rol. RoleDesconocido no tiene ninguna.
func (p *Policy) For(kind entity.RoleKind) Capabilities {
	return p.table[kind]
}

// CanViewAll indica si la identidad ve todos los libros en el dashboard.
func (p *Policy) CanViewAll(id entity.Identity) bool {
	return p.For(id.Role).CanViewAll
}

// IsAdmin indica si la identidad tiene capacidad de administración.
func (p *Policy) IsAdmin(id entity.Identity) bool {
	return p.For(id.Role).IsAdmin
}

// CanModify: el propietario o un admin pueden editar/eliminar el libro.
func (p *Policy) CanModify(id entity.Identity, libro *entity.Libro) bool {
	if libro == nil {
		return false
	}
	return libro.PropietarioID == id.UserID || p.IsAdmin(id)
}
