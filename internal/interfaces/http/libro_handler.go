package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/mis-libros/internal/application/dto"
	"github.com/jhoicas/mis-libros/internal/application/usecase"
	"github.com/jhoicas/mis-libros/internal/domain"
)

const (
	msgLibroNoEncontrado = "No encontramos ese libro."
	msgSinPermisoEditar  = "No tienes permiso para editar este libro."
	msgSinPermisoBorrar  = "No tienes permiso para eliminar este libro."
)

// LibroHandler maneja el CRUD de libros de la superficie autenticada.
type LibroHandler struct {
	uc    *usecase.LibroUseCase
	forms *FormValidator
	pages *Pages
}

// NewLibroHandler construye el handler.
func NewLibroHandler(uc *usecase.LibroUseCase, forms *FormValidator, pages *Pages) *LibroHandler {
	return &LibroHandler{uc: uc, forms: forms, pages: pages}
}

// Dashboard GET /dashboard
func (h *LibroHandler) Dashboard(c *fiber.Ctx) error {
	id, _ := GetIdentity(c)
	libros, err := h.uc.Dashboard(c.UserContext(), id)
	if err != nil {
		return err
	}
	return h.pages.Render(c, "dashboard", "Libros", fiber.Map{"Libros": libros})
}

// New GET /libros/nuevo
func (h *LibroHandler) New(c *fiber.Ctx) error {
	return h.renderForm(c, "Nuevo libro", "/libros/nuevo", dto.LibroForm{}, nil)
}

// Create POST /libros/nuevo
func (h *LibroHandler) Create(c *fiber.Ctx) error {
	id, _ := GetIdentity(c)
	in, errs, err := h.parseForm(c)
	if err != nil {
		return err
	}
	if errs != nil {
		return h.renderForm(c, "Nuevo libro", "/libros/nuevo", in, errs)
	}
	if _, err := h.uc.Create(c.UserContext(), id, in); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return h.renderForm(c, "Nuevo libro", "/libros/nuevo", in, map[string]string{"titulo": "Revisa los datos del libro."})
		}
		return err
	}
	return h.pages.Redirect(c, "/dashboard", "Libro agregado exitosamente.")
}

// Edit GET /libros/editar/:id
func (h *LibroHandler) Edit(c *fiber.Ctx) error {
	id, _ := GetIdentity(c)
	libroID, err := c.ParamsInt("id")
	if err != nil {
		return h.pages.NotFound(c, msgLibroNoEncontrado)
	}
	libro, err := h.uc.GetForEdit(c.UserContext(), id, int64(libroID))
	if err != nil {
		return h.handleErr(c, err, msgSinPermisoEditar)
	}
	return h.renderForm(c, "Editar libro", editAction(libro.ID), dto.LibroFormFrom(libro), nil)
}

// Update POST /libros/editar/:id
func (h *LibroHandler) Update(c *fiber.Ctx) error {
	id, _ := GetIdentity(c)
	libroID, err := c.ParamsInt("id")
	if err != nil {
		return h.pages.NotFound(c, msgLibroNoEncontrado)
	}
	in, errs, err := h.parseForm(c)
	if err != nil {
		return err
	}
	if errs != nil {
		// sin mutación: confirma existencia y permiso antes de re-renderizar
		if _, err := h.uc.GetForEdit(c.UserContext(), id, int64(libroID)); err != nil {
			return h.handleErr(c, err, msgSinPermisoEditar)
		}
		return h.renderForm(c, "Editar libro", editAction(int64(libroID)), in, errs)
	}
	if _, err := h.uc.Update(c.UserContext(), id, int64(libroID), in); err != nil {
		return h.handleErr(c, err, msgSinPermisoEditar)
	}
	return h.pages.Redirect(c, "/dashboard", "Libro actualizado exitosamente.")
}

// Delete POST /libros/eliminar/:id
func (h *LibroHandler) Delete(c *fiber.Ctx) error {
	id, _ := GetIdentity(c)
	libroID, err := c.ParamsInt("id")
	if err != nil {
		return h.pages.NotFound(c, msgLibroNoEncontrado)
	}
	if err := h.uc.Delete(c.UserContext(), id, int64(libroID)); err != nil {
		return h.handleErr(c, err, msgSinPermisoBorrar)
	}
	return h.pages.Redirect(c, "/dashboard", "Libro eliminado exitosamente.")
}

// Export GET /libros/exportar
func (h *LibroHandler) Export(c *fiber.Ctx) error {
	id, _ := GetIdentity(c)
	b, err := h.uc.ExportPDF(c.UserContext(), id)
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="mis-libros.pdf"`)
	return c.Send(b)
}

func (h *LibroHandler) parseForm(c *fiber.Ctx) (dto.LibroForm, map[string]string, error) {
	var in dto.LibroForm
	if err := c.BodyParser(&in); err != nil {
		return in, nil, fiber.ErrBadRequest
	}
	in.Normalize()
	return in, h.forms.Validate(in), nil
}

func (h *LibroHandler) renderForm(c *fiber.Ctx, title, action string, in dto.LibroForm, errs map[string]string) error {
	return h.pages.Render(c, "libro_form", title, fiber.Map{
		"Action": action,
		"Form":   in,
		"Errors": errs,
	})
}

// handleErr: inexistente → 404; sin permiso → flash + redirect al dashboard.
func (h *LibroHandler) handleErr(c *fiber.Ctx, err error, forbidden string) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return h.pages.NotFound(c, msgLibroNoEncontrado)
	case errors.Is(err, domain.ErrForbidden):
		return h.pages.Redirect(c, "/dashboard", forbidden)
	}
	return err
}

func editAction(id int64) string {
	return fmt.Sprintf("/libros/editar/%d", id)
}
