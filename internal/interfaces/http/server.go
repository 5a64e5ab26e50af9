package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/mis-libros/internal/interfaces/http/views"
	"github.com/jhoicas/mis-libros/pkg/logger"
)

// AppOptions parámetros de la aplicación Fiber.
type AppOptions struct {
	Name   string
	Logger *logger.Logger
	// JSON usa el manejador de errores JSON (modo prueba) en lugar de la página HTML.
	JSON bool
}

// NewApp construye la aplicación Fiber con motor de vistas, recover, request id y
// access log. Las rutas se registran aparte con Router o PruebaRouter.
func NewApp(opts AppOptions) *fiber.App {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	errHandler := HTMLErrorHandler(log, opts.Name)
	if opts.JSON {
		errHandler = JSONErrorHandler(log)
	}
	app := fiber.New(fiber.Config{
		AppName:      opts.Name,
		Immutable:    true,
		Views:        views.NewEngine(),
		ErrorHandler: errHandler,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(RequestID())
	app.Use(RequestLogger(log))
	return app
}
