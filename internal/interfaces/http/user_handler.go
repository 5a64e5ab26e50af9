package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/mis-libros/internal/application/usecase"
	"github.com/jhoicas/mis-libros/internal/domain"
)

// UserHandler página de administración de usuarios.
type UserHandler struct {
	uc    *usecase.UserUseCase
	pages *Pages
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase, pages *Pages) *UserHandler {
	return &UserHandler{uc: uc, pages: pages}
}

// List GET /usuarios (solo admin)
func (h *UserHandler) List(c *fiber.Ctx) error {
	id, _ := GetIdentity(c)
	users, err := h.uc.ListUsers(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			return h.pages.Redirect(c, "/dashboard", "No tienes permiso para ver esta página.")
		}
		return err
	}
	return h.pages.Render(c, "usuarios", "Usuarios", fiber.Map{"Usuarios": users})
}
