package usecase_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/mis-libros/internal/application/dto"
	"github.com/jhoicas/mis-libros/internal/application/usecase"
	"github.com/jhoicas/mis-libros/internal/domain"
	"github.com/jhoicas/mis-libros/internal/domain/entity"
	"github.com/jhoicas/mis-libros/internal/infrastructure/memory"
)

func newPrueba(t *testing.T) (*usecase.PruebaUseCase, entity.Identity) {
	t.Helper()
	store := memory.NewStore()
	owner := seedUser(t, store, "ana", entity.RoleLector)
	return usecase.NewPruebaUseCase(store.Libros(), store.TxRunner()), owner
}

func TestPruebaCreate_YGet(t *testing.T) {
	uc, owner := newPrueba(t)
	ctx := context.Background()

	out, err := uc.Create(ctx, dto.CreateLibroPruebaRequest{
		Titulo:          strPtr("Ficciones"),
		Autor:           strPtr("Borges"),
		AnioPublicacion: intPtr(1944),
		PropietarioID:   idPtr(owner.UserID),
	})
	require.NoError(t, err)
	assert.Equal(t, owner.UserID, out.PropietarioID)

	got, err := uc.Get(ctx, out.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ficciones", got.Titulo)
	assert.Equal(t, 1944, *got.AnioPublicacion)
	assert.Nil(t, got.Genero, "campos ausentes quedan en null")
}

func TestPruebaCreate_RestriccionesDeLaTabla(t *testing.T) {
	uc, owner := newPrueba(t)
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateLibroPruebaRequest{Titulo: strPtr("Sin autor"), PropietarioID: idPtr(owner.UserID)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, dto.CreateLibroPruebaRequest{Titulo: strPtr("X"), Autor: strPtr("Y"), PropietarioID: idPtr(999)})
	assert.ErrorIs(t, err, domain.ErrInvalidReference)
}

func TestPruebaGet_Inexistente(t *testing.T) {
	uc, _ := newPrueba(t)
	_, err := uc.Get(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPruebaUpdate_Parcial(t *testing.T) {
	uc, owner := newPrueba(t)
	ctx := context.Background()
	out, err := uc.Create(ctx, dto.CreateLibroPruebaRequest{
		Titulo:        strPtr("Título"),
		Autor:         strPtr("Autor"),
		Genero:        strPtr("Cuento"),
		Notas:         strPtr("nota"),
		PropietarioID: idPtr(owner.UserID),
	})
	require.NoError(t, err)

	var in dto.UpdateLibroPruebaRequest
	require.NoError(t, json.Unmarshal([]byte(`{"titulo":"Nuevo","notas":null}`), &in))
	_, err = uc.Update(ctx, out.ID, in)
	require.NoError(t, err)

	got, err := uc.Get(ctx, out.ID)
	require.NoError(t, err)
	assert.Equal(t, "Nuevo", got.Titulo)
	assert.Equal(t, "Autor", got.Autor, "clave ausente no cambia")
	assert.Equal(t, "Cuento", *got.Genero, "clave ausente no cambia")
	assert.Nil(t, got.Notas, "null explícito limpia el campo")
}

func TestPruebaUpdate_TituloNull(t *testing.T) {
	uc, owner := newPrueba(t)
	ctx := context.Background()
	out, err := uc.Create(ctx, dto.CreateLibroPruebaRequest{Titulo: strPtr("T"), Autor: strPtr("A"), PropietarioID: idPtr(owner.UserID)})
	require.NoError(t, err)

	var in dto.UpdateLibroPruebaRequest
	require.NoError(t, json.Unmarshal([]byte(`{"titulo":null}`), &in))
	_, err = uc.Update(ctx, out.ID, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPruebaUpdate_Inexistente(t *testing.T) {
	uc, _ := newPrueba(t)
	_, err := uc.Update(context.Background(), 7, dto.UpdateLibroPruebaRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPruebaDelete_Repetido(t *testing.T) {
	uc, owner := newPrueba(t)
	ctx := context.Background()
	out, err := uc.Create(ctx, dto.CreateLibroPruebaRequest{Titulo: strPtr("T"), Autor: strPtr("A"), PropietarioID: idPtr(owner.UserID)})
	require.NoError(t, err)

	res, err := uc.Delete(ctx, out.ID)
	require.NoError(t, err)
	assert.Equal(t, out.ID, res.ID)

	_, err = uc.Delete(ctx, out.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
