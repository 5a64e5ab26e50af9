package http_test

import (
	"context"
	"encoding/base64"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/mis-libros/internal/application/auth"
	"github.com/jhoicas/mis-libros/internal/application/dto"
	"github.com/jhoicas/mis-libros/internal/application/usecase"
	"github.com/jhoicas/mis-libros/internal/domain/access"
	"github.com/jhoicas/mis-libros/internal/infrastructure/memory"
	"github.com/jhoicas/mis-libros/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/mis-libros/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const testJWTSecret = "test-secret-key-for-unit-tests"

type webEnv struct {
	app    *fiber.App
	store  *memory.Store
	authUC *auth.AuthUseCase
}

// newWebApp monta la superficie HTML sobre el store en memoria.
func newWebApp(t *testing.T, visibility string) *webEnv {
	t.Helper()
	store := memory.NewStore()
	policy, err := access.NewPolicy(visibility, "Admin")
	require.NoError(t, err)

	authUC := auth.NewAuthUseCase(store.Users(), store.Roles(), auth.JWTConfig{
		Secret:     testJWTSecret,
		ExpMinutes: 60,
		Issuer:     "mis-libros-test",
	}, auth.WithHashCost(bcrypt.MinCost))
	sessions := apphttp.NewSessions("sesion", false, 60)

	app := apphttp.NewApp(apphttp.AppOptions{Name: "Mis Libros"})
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:   authUC,
		LibroUC:  usecase.NewLibroUseCase(store.Libros(), store.TxRunner(), policy, pdf.NewMarotoLibrosPDF()),
		UserUC:   usecase.NewUserUseCase(store.Users(), policy),
		Sessions: sessions,
		Pages:    apphttp.NewPages("Mis Libros", sessions, policy),
		Forms:    apphttp.NewFormValidator(),
	})
	return &webEnv{app: app, store: store, authUC: authUC}
}

// register crea un usuario con password "clave123".
func (e *webEnv) register(t *testing.T, username, role string) int64 {
	t.Helper()
	out, err := e.authUC.RegisterUser(context.Background(), dto.RegisterRequest{
		Username:        username,
		Email:           username + "@example.com",
		Password:        "clave123",
		ConfirmPassword: "clave123",
		Role:            role,
	})
	require.NoError(t, err)
	return out.ID
}

// login inicia sesión por HTTP y devuelve la cookie de sesión.
func (e *webEnv) login(t *testing.T, username, password string) *http.Cookie {
	t.Helper()
	resp := e.post(t, "/login", url.Values{"email": {username + "@example.com"}, "password": {password}}, nil)
	require.Equal(t, http.StatusFound, resp.StatusCode)
	c := cookie(resp, "sesion")
	require.NotNil(t, c, "el login debe emitir la cookie de sesión")
	return c
}

func (e *webEnv) get(t *testing.T, path string, session *http.Cookie) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if session != nil {
		req.AddCookie(session)
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func (e *webEnv) post(t *testing.T, path string, form url.Values, session *http.Cookie) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	if session != nil {
		req.AddCookie(session)
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func cookie(resp *http.Response, name string) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == name && c.Value != "" {
			return c
		}
	}
	return nil
}

// flash decodifica el mensaje flash emitido en la respuesta.
func flash(t *testing.T, resp *http.Response) string {
	t.Helper()
	c := cookie(resp, "flash")
	if c == nil {
		return ""
	}
	b, err := base64.RawURLEncoding.DecodeString(c.Value)
	require.NoError(t, err)
	return string(b)
}

func body(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}
