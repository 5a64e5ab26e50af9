package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/mis-libros/internal/application/dto"
	"github.com/jhoicas/mis-libros/internal/interfaces/http/views"
	"github.com/jhoicas/mis-libros/pkg/logger"
)

// HTMLErrorHandler renderiza la página de error: nunca una respuesta en blanco.
func HTMLErrorHandler(log *logger.Logger, appName string) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code, msg := classify(err)
		if code >= fiber.StatusInternalServerError {
			log.Error().Err(err).Str("path", c.Path()).Msg("error no controlado")
		}
		c.Status(code)
		rerr := c.Render("error", fiber.Map{
			"AppName": appName,
			"Title":   "Error",
			"Status":  code,
			"Message": msg,
			"Errors":  map[string]string{},
		}, views.Layout)
		if rerr != nil {
			log.Error().Err(rerr).Msg("renderizar página de error")
			return c.Status(code).SendString(msg)
		}
		return nil
	}
}

// JSONErrorHandler responde con dto.ErrorResponse.
func JSONErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code, msg := classify(err)
		if code >= fiber.StatusInternalServerError {
			log.Error().Err(err).Str("path", c.Path()).Msg("error no controlado")
		}
		return c.Status(code).JSON(dto.ErrorResponse{Code: codeName(code), Message: msg})
	}
}

func classify(err error) (int, string) {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		if fe.Code == fiber.StatusNotFound {
			return fe.Code, "La página solicitada no existe."
		}
		return fe.Code, fe.Message
	}
	return fiber.StatusInternalServerError, "Ocurrió un error inesperado. Intenta de nuevo más tarde."
}

func codeName(code int) string {
	switch code {
	case fiber.StatusBadRequest:
		return "BAD_REQUEST"
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	default:
		return "INTERNAL"
	}
}
