package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/mis-libros/internal/domain/entity"
)

func TestParseRoleKind(t *testing.T) {
	cases := map[string]entity.RoleKind{
		"Lector":    entity.RoleLector,
		"lector":    entity.RoleLector,
		"MODERADOR": entity.RoleModerador,
		"Admin":     entity.RoleAdmin,
		"Professor": entity.RoleDesconocido,
		"":          entity.RoleDesconocido,
	}
	for name, want := range cases {
		assert.Equal(t, want, entity.ParseRoleKind(name), "nombre %q", name)
	}
}

func TestRoleKind_String(t *testing.T) {
	assert.Equal(t, "Admin", entity.RoleAdmin.String())
	assert.Equal(t, "", entity.RoleDesconocido.String())
	assert.Equal(t, entity.RoleModerador, entity.Role{ID: 2, Name: "Moderador"}.Kind())
}
