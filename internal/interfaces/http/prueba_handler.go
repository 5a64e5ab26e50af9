package http

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/mis-libros/internal/application/dto"
	"github.com/jhoicas/mis-libros/internal/application/usecase"
	"github.com/jhoicas/mis-libros/internal/domain"
)

// HeaderModoPrueba marca cada respuesta de la API sin autenticación.
const HeaderModoPrueba = "X-Modo-Prueba"

// PruebaHandler API JSON de libros del modo prueba: sin sesión, sin verificación de
// propiedad y sin validación de campos.
type PruebaHandler struct {
	uc *usecase.PruebaUseCase
}

// NewPruebaHandler construye el handler.
func NewPruebaHandler(uc *usecase.PruebaUseCase) *PruebaHandler {
	return &PruebaHandler{uc: uc}
}

// List godoc
// @Summary      Listar libros
// @Description  Devuelve todos los libros sin filtrar por propietario.
// @Tags         prueba
// @Produce      json
// @Success      200  {array}   dto.LibroResponse
// @Router       /libros [get]
func (h *PruebaHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(list)
}

// Get godoc
// @Summary      Obtener libro por ID
// @Tags         prueba
// @Produce      json
// @Param        id   path  int  true  "ID del libro"
// @Success      200  {object}  dto.LibroResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /libros/{id} [get]
func (h *PruebaHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return notFound(c)
	}
	out, err := h.uc.Get(c.UserContext(), int64(id))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return notFound(c)
		}
		return err
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear libro
// @Description  Inserta el libro tal como llega; los campos ausentes quedan en null.
// @Tags         prueba
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateLibroPruebaRequest  true  "Datos del libro"
// @Success      201   {object}  dto.LibroCreadoResponse
// @Failure      400   {object}  map[string]string  "sin datos o JSON inválido"
// @Failure      400   {object}  dto.ErrorResponse  "tipos incorrectos o restricción de tabla"
// @Router       /libros [post]
func (h *PruebaHandler) Create(c *fiber.Ctx) error {
	body := c.Body()
	if len(body) == 0 || !json.Valid(body) {
		return noInput(c)
	}
	var in dto.CreateLibroPruebaRequest
	if c.App().Config().JSONDecoder(body, &in) != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.IsEmpty() {
		return noInput(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		if isConstraint(err) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "CONSTRAINT", Message: err.Error()})
		}
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar libro (parcial)
// @Description  Solo se sobrescriben las claves presentes; null explícito limpia el campo.
// @Tags         prueba
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del libro"
// @Param        body  body  dto.CreateLibroPruebaRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.LibroMensajeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /libros/{id} [put]
func (h *PruebaHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return notFound(c)
	}
	var in dto.UpdateLibroPruebaRequest
	if len(c.Body()) > 0 {
		if err := c.App().Config().JSONDecoder(c.Body(), &in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		}
	}
	out, err := h.uc.Update(c.UserContext(), int64(id), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return notFound(c)
		case isConstraint(err):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "CONSTRAINT", Message: err.Error()})
		}
		return err
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar libro
// @Tags         prueba
// @Produce      json
// @Param        id   path  int  true  "ID del libro"
// @Success      200  {object}  dto.LibroMensajeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /libros/{id} [delete]
func (h *PruebaHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return notFound(c)
	}
	out, err := h.uc.Delete(c.UserContext(), int64(id))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return notFound(c)
		}
		return err
	}
	return c.JSON(out)
}

// Banner GET / y GET /dashboard en modo prueba.
func (h *PruebaHandler) Banner(appName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Render("prueba", fiber.Map{"AppName": appName})
	}
}

// MarkInsecure agrega la cabecera X-Modo-Prueba a todas las respuestas.
func MarkInsecure() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set(HeaderModoPrueba, "inseguro")
		return c.Next()
	}
}

func notFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "libro no encontrado"})
}

func isConstraint(err error) bool {
	return errors.Is(err, domain.ErrInvalidInput) || errors.Is(err, domain.ErrInvalidReference)
}

func noInput(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No input data provided"})
}
