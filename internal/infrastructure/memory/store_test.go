package memory_test

import (
	"context"
	"errors"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/mis-libros/internal/domain"
	"github.com/jhoicas/mis-libros/internal/domain/entity"
	"github.com/jhoicas/mis-libros/internal/domain/repository"
	"github.com/jhoicas/mis-libros/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// aliased devuelve un string que comparte memoria con buf, como los que entrega
// Fiber sin Immutable.
func aliased(buf []byte) string {
	return unsafe.String(unsafe.SliceData(buf), len(buf))
}

func seedOwner(t *testing.T, store *memory.Store) int64 {
	t.Helper()
	u := &entity.User{Username: "ana", Email: "ana@example.com", PasswordHash: "h", RoleID: 1}
	require.NoError(t, store.Users().Create(context.Background(), u))
	return u.ID
}

// ──────────────────────────────────────────────────────────────────────────────
// Copias
// ──────────────────────────────────────────────────────────────────────────────

func TestLibroRepo_NoRetieneStringsDelLlamador(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	owner := seedOwner(t, store)

	titulo := []byte("El Aleph")
	genero := []byte("cuento")
	g := aliased(genero)
	l := &entity.Libro{Titulo: aliased(titulo), Autor: "Borges", Genero: &g, PropietarioID: owner}
	require.NoError(t, store.Libros().Create(ctx, l))

	copy(titulo, "Robadoph")
	copy(genero, "xxxxxx")

	got, err := store.Libros().GetByID(ctx, l.ID)
	require.NoError(t, err)
	assert.Equal(t, "El Aleph", got.Titulo)
	assert.Equal(t, "cuento", *got.Genero)
}

func TestUserRepo_NoRetieneStringsDelLlamador(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	email := []byte("ana@example.com")
	u := &entity.User{Username: "ana", Email: aliased(email), PasswordHash: "h", RoleID: 1}
	require.NoError(t, store.Users().Create(ctx, u))

	copy(email, "xxx@example.com")

	got, err := store.Users().GetByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, u.ID, got.ID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Transacciones
// ──────────────────────────────────────────────────────────────────────────────

func TestTxRunner_RevierteSiFalla(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	owner := seedOwner(t, store)

	l := &entity.Libro{Titulo: "Ficciones", Autor: "Borges", PropietarioID: owner}
	require.NoError(t, store.Libros().Create(ctx, l))

	boom := errors.New("boom")
	err := store.TxRunner().RunLibros(ctx, func(libros repository.LibroRepository) error {
		cambiado := *l
		cambiado.Titulo = "Cambiado"
		if err := libros.Update(ctx, &cambiado); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	got, err := store.Libros().GetByID(ctx, l.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ficciones", got.Titulo)

	t.Run("confirma si no falla", func(t *testing.T) {
		err := store.TxRunner().RunLibros(ctx, func(libros repository.LibroRepository) error {
			return libros.Delete(ctx, l.ID)
		})
		require.NoError(t, err)
		assert.ErrorIs(t, store.Libros().Delete(ctx, l.ID), domain.ErrNotFound)
	})
}
