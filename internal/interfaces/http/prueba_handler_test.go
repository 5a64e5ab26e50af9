package http_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/mis-libros/internal/application/dto"
	"github.com/jhoicas/mis-libros/internal/application/usecase"
	"github.com/jhoicas/mis-libros/internal/domain/entity"
	"github.com/jhoicas/mis-libros/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/mis-libros/internal/interfaces/http"
)

// newPruebaApp monta solo la API JSON del modo prueba y crea un usuario propietario.
func newPruebaApp(t *testing.T) (*fiber.App, int64) {
	t.Helper()
	store := memory.NewStore()
	role, err := store.Roles().GetByName(context.Background(), "Lector")
	require.NoError(t, err)
	owner := &entity.User{Username: "ana", Email: "ana@example.com", PasswordHash: "x", RoleID: role.ID, CreatedAt: time.Now()}
	require.NoError(t, store.Users().Create(context.Background(), owner))

	app := apphttp.NewApp(apphttp.AppOptions{Name: "Mis Libros", JSON: true})
	apphttp.PruebaRouter(app, apphttp.PruebaRouterDeps{
		PruebaUC: usecase.NewPruebaUseCase(store.Libros(), store.TxRunner()),
		AppName:  "Mis Libros",
	})
	return app, owner.ID
}

func doJSON(t *testing.T, app *fiber.App, method, path, payload string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(payload))
	if payload != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

// ──────────────────────────────────────────────────────────────────────────────
// Banner y marcas del modo
// ──────────────────────────────────────────────────────────────────────────────

func TestPrueba_BannerYCabecera(t *testing.T) {
	app, _ := newPruebaApp(t)
	for _, path := range []string{"/", "/dashboard"} {
		resp := doJSON(t, app, http.MethodGet, path, "")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "inseguro", resp.Header.Get(apphttp.HeaderModoPrueba))
		assert.Contains(t, body(t, resp), "Corriendo en Modo de Prueba")
	}
}

func TestPrueba_SuperficieHTMLNoMontada(t *testing.T) {
	app, _ := newPruebaApp(t)
	resp := doJSON(t, app, http.MethodGet, "/login", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "inseguro", resp.Header.Get(apphttp.HeaderModoPrueba))
}

// ──────────────────────────────────────────────────────────────────────────────
// Alta
// ──────────────────────────────────────────────────────────────────────────────

func TestPrueba_CreateSinDatos(t *testing.T) {
	app, _ := newPruebaApp(t)
	for _, payload := range []string{"", "{}", "{malformado"} {
		resp := doJSON(t, app, http.MethodPost, "/libros", payload)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "payload %q", payload)
		var out map[string]string
		decode(t, resp, &out)
		assert.Equal(t, "No input data provided", out["error"])
	}
}

func TestPrueba_CreateTiposIncorrectos(t *testing.T) {
	app, owner := newPruebaApp(t)
	payload := fmt.Sprintf(`{"titulo":"Rayuela","autor":"Cortázar","propietario_id":"%d"}`, owner)

	resp := doJSON(t, app, http.MethodPost, "/libros", payload)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var out dto.ErrorResponse
	decode(t, resp, &out)
	assert.Equal(t, "INVALID_BODY", out.Code)

	resp = doJSON(t, app, http.MethodGet, "/libros", "")
	var list []map[string]any
	decode(t, resp, &list)
	assert.Empty(t, list)
}

func TestPrueba_CreateRestriccionesDeTabla(t *testing.T) {
	app, _ := newPruebaApp(t)

	resp := doJSON(t, app, http.MethodPost, "/libros", `{"titulo":"Sin dueño","autor":"X","propietario_id":999}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/libros", `{"titulo":"Sin autor","propietario_id":1}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ida y vuelta completa
// ──────────────────────────────────────────────────────────────────────────────

func TestPrueba_CRUD(t *testing.T) {
	app, ownerID := newPruebaApp(t)

	resp := doJSON(t, app, http.MethodPost, "/libros",
		`{"titulo":"Rayuela","autor":"Cortázar","anio_publicacion":1963,"genero":"Novela","propietario_id":`+jsonInt(ownerID)+`}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created map[string]interface{}
	decode(t, resp, &created)
	assert.Equal(t, "Libro creado", created["message"])
	assert.EqualValues(t, ownerID, created["propietario_id"])
	id := int64(created["id"].(float64))
	path := "/libros/" + jsonInt(id)

	t.Run("get devuelve el registro plano", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, path, "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var got map[string]interface{}
		decode(t, resp, &got)
		assert.Equal(t, "Rayuela", got["titulo"])
		assert.EqualValues(t, 1963, got["anio_publicacion"])
		assert.Nil(t, got["url"], "campos ausentes son null")
		assert.EqualValues(t, ownerID, got["propietario_id"])
	})

	t.Run("list", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/libros", "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var list []map[string]interface{}
		decode(t, resp, &list)
		assert.Len(t, list, 1)
	})

	t.Run("put parcial", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPut, path, `{"titulo":"Rayuela (2a ed.)","genero":null}`)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var out map[string]interface{}
		decode(t, resp, &out)
		assert.Equal(t, "Libro actualizado", out["message"])

		var got map[string]interface{}
		decode(t, doJSON(t, app, http.MethodGet, path, ""), &got)
		assert.Equal(t, "Rayuela (2a ed.)", got["titulo"])
		assert.Equal(t, "Cortázar", got["autor"], "clave ausente no cambia")
		assert.Nil(t, got["genero"], "null explícito limpia el campo")
		assert.EqualValues(t, 1963, got["anio_publicacion"])
	})

	t.Run("put malformado", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPut, path, `{"titulo":`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("delete repetido es 404", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodDelete, path, "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var out map[string]interface{}
		decode(t, resp, &out)
		assert.Equal(t, "Libro eliminado", out["message"])

		assert.Equal(t, http.StatusNotFound, doJSON(t, app, http.MethodDelete, path, "").StatusCode)
		assert.Equal(t, http.StatusNotFound, doJSON(t, app, http.MethodGet, path, "").StatusCode)
		assert.Equal(t, http.StatusNotFound, doJSON(t, app, http.MethodPut, path, `{"titulo":"x"}`).StatusCode)
	})
}

func TestPrueba_GetInexistente(t *testing.T) {
	app, _ := newPruebaApp(t)
	resp := doJSON(t, app, http.MethodGet, "/libros/42", "")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	var out map[string]string
	decode(t, resp, &out)
	assert.Equal(t, "NOT_FOUND", out["code"])
}

func jsonInt(n int64) string {
	b, _ := json.Marshal(n)
	return string(b)
}
