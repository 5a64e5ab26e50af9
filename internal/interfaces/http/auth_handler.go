package http

import (
	"errors"
	"slices"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/mis-libros/internal/application/auth"
	"github.com/jhoicas/mis-libros/internal/application/dto"
	"github.com/jhoicas/mis-libros/internal/domain"
)

// AuthHandler maneja registro, login, logout y cambio de contraseña.
type AuthHandler struct {
	uc       *auth.AuthUseCase
	forms    *FormValidator
	sessions *Sessions
	pages    *Pages
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, forms *FormValidator, sessions *Sessions, pages *Pages) *AuthHandler {
	return &AuthHandler{uc: uc, forms: forms, sessions: sessions, pages: pages}
}

// ShowLogin GET /login
func (h *AuthHandler) ShowLogin(c *fiber.Ctx) error {
	if _, ok := GetIdentity(c); ok {
		return c.Redirect("/dashboard", fiber.StatusFound)
	}
	return h.renderLogin(c, dto.LoginRequest{}, nil, "")
}

// Login POST /login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return fiber.ErrBadRequest
	}
	in.Email = strings.TrimSpace(in.Email)
	if errs := h.forms.Validate(in); errs != nil {
		return h.renderLogin(c, in, errs, "")
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return h.renderLogin(c, in, nil, "Email o contraseña incorrectos.")
		}
		return err
	}
	h.sessions.Start(c, out.Token)
	return c.Redirect(safeNext(c.FormValue("next")), fiber.StatusFound)
}

func (h *AuthHandler) renderLogin(c *fiber.Ctx, in dto.LoginRequest, errs map[string]string, msg string) error {
	next := c.FormValue("next")
	if next == "" {
		next = c.Query("next")
	}
	return h.pages.Render(c, "login", "Iniciar sesión", fiber.Map{
		"Form":   in,
		"Errors": errs,
		"Error":  msg,
		"Next":   next,
	})
}

// safeNext solo acepta rutas locales; cualquier otra cosa va al dashboard.
func safeNext(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.Contains(next, "\\") {
		return "/dashboard"
	}
	return next
}

// ShowRegister GET /registro
func (h *AuthHandler) ShowRegister(c *fiber.Ctx) error {
	return h.renderRegister(c, dto.RegisterRequest{}, nil, "")
}

// Register POST /registro
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return fiber.ErrBadRequest
	}
	in.Normalize()
	errs := h.forms.Validate(in)
	roles, err := h.uc.RoleChoices(c.UserContext())
	if err != nil {
		return err
	}
	if in.Role != "" && !slices.Contains(roles, in.Role) {
		if errs == nil {
			errs = map[string]string{}
		}
		errs["role"] = "Selecciona un rol válido."
	}
	if errs != nil {
		return h.renderRegister(c, in, errs, "")
	}
	if _, err := h.uc.RegisterUser(c.UserContext(), in); err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicate):
			return h.renderRegister(c, in, nil, "El usuario o el email ya están registrados.")
		case errors.Is(err, domain.ErrInvalidInput):
			return h.renderRegister(c, in, map[string]string{"role": "Selecciona un rol válido."}, "")
		}
		return err
	}
	return h.pages.Redirect(c, "/login", "Registro exitoso. Ya puedes iniciar sesión.")
}

func (h *AuthHandler) renderRegister(c *fiber.Ctx, in dto.RegisterRequest, errs map[string]string, msg string) error {
	roles, err := h.uc.RoleChoices(c.UserContext())
	if err != nil {
		return err
	}
	return h.pages.Render(c, "registro", "Registro", fiber.Map{
		"Form":   in,
		"Roles":  roles,
		"Errors": errs,
		"Error":  msg,
	})
}

// Logout POST /logout
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.sessions.Clear(c)
	return h.pages.Redirect(c, "/", "Sesión cerrada.")
}

// ShowChangePassword GET /cambiar-password
func (h *AuthHandler) ShowChangePassword(c *fiber.Ctx) error {
	return h.pages.Render(c, "cambiar_password", "Cambiar contraseña", nil)
}

// ChangePassword POST /cambiar-password
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	id, _ := GetIdentity(c)
	var in dto.ChangePasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return fiber.ErrBadRequest
	}
	if errs := h.forms.Validate(in); errs != nil {
		return h.pages.Render(c, "cambiar_password", "Cambiar contraseña", fiber.Map{"Errors": errs})
	}
	err := h.uc.ChangePassword(c.UserContext(), id, in)
	switch {
	case errors.Is(err, domain.ErrWrongPassword):
		return h.pages.Render(c, "cambiar_password", "Cambiar contraseña", fiber.Map{"Error": "La contraseña actual es incorrecta."})
	case errors.Is(err, domain.ErrInvalidInput):
		return h.pages.Render(c, "cambiar_password", "Cambiar contraseña", fiber.Map{
			"Errors": map[string]string{"new_password": "Mínimo 6 caracteres y debe coincidir con la confirmación."},
		})
	case err != nil:
		return err
	}
	return h.pages.Redirect(c, "/dashboard", "Contraseña actualizada correctamente.")
}
