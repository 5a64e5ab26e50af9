package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jhoicas/mis-libros/internal/domain/access"
	"github.com/jhoicas/mis-libros/internal/domain/entity"
	"github.com/jhoicas/mis-libros/internal/infrastructure/memory"
)

// fakePDF registra lo que recibe en lugar de generar un PDF real.
type fakePDF struct {
	titulo string
	libros []*entity.Libro
}

func (f *fakePDF) GenerateLibrosPDF(_ context.Context, titulo string, libros []*entity.Libro) ([]byte, error) {
	f.titulo = titulo
	f.libros = libros
	return []byte("%PDF-fake"), nil
}

func newPolicy(t *testing.T, visibility string) *access.Policy {
	t.Helper()
	p, err := access.NewPolicy(visibility, "Admin")
	require.NoError(t, err)
	return p
}

// seedUser crea un usuario con el rol indicado y devuelve su identidad.
func seedUser(t *testing.T, store *memory.Store, username string, kind entity.RoleKind) entity.Identity {
	t.Helper()
	ctx := context.Background()
	role, err := store.Roles().GetByName(ctx, kind.String())
	require.NoError(t, err)
	require.NotNil(t, role)
	u := &entity.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "hash",
		RoleID:       role.ID,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	require.NoError(t, store.Users().Create(ctx, u))
	return entity.Identity{UserID: u.ID, Username: u.Username, Role: kind, RoleName: role.Name}
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int { return &n }
func idPtr(n int64) *int64 { return &n }
