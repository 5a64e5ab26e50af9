package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/mis-libros/internal/application/auth"
	"github.com/jhoicas/mis-libros/internal/application/usecase"
)

// RouterDeps dependencias de la superficie HTML autenticada.
type RouterDeps struct {
	AuthUC   *auth.AuthUseCase
	LibroUC  *usecase.LibroUseCase
	UserUC   *usecase.UserUseCase
	Sessions *Sessions
	Pages    *Pages
	Forms    *FormValidator
}

// Router registra las rutas HTML. Todas salvo /, /login y /registro requieren sesión.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(SessionMiddleware(deps.AuthUC, deps.Sessions))

	authHandler := NewAuthHandler(deps.AuthUC, deps.Forms, deps.Sessions, deps.Pages)
	libroHandler := NewLibroHandler(deps.LibroUC, deps.Forms, deps.Pages)
	userHandler := NewUserHandler(deps.UserUC, deps.Pages)

	// Público
	app.Get("/", deps.Pages.Index)
	app.Get("/login", authHandler.ShowLogin)
	app.Post("/login", authHandler.Login)
	app.Get("/registro", authHandler.ShowRegister)
	app.Post("/registro", authHandler.Register)
	app.Post("/logout", authHandler.Logout)

	// Rutas protegidas (requieren cookie de sesión)
	protected := app.Group("/", RequireLogin())
	protected.Get("/dashboard", libroHandler.Dashboard)
	protected.Get("/cambiar-password", authHandler.ShowChangePassword)
	protected.Post("/cambiar-password", authHandler.ChangePassword)

	libros := protected.Group("/libros")
	libros.Get("/nuevo", libroHandler.New)
	libros.Post("/nuevo", libroHandler.Create)
	libros.Get("/exportar", libroHandler.Export)
	libros.Get("/editar/:id", libroHandler.Edit)
	libros.Post("/editar/:id", libroHandler.Update)
	libros.Post("/eliminar/:id", libroHandler.Delete)

	protected.Get("/usuarios", userHandler.List)
}

// PruebaRouterDeps dependencias del modo prueba.
type PruebaRouterDeps struct {
	PruebaUC *usecase.PruebaUseCase
	AppName  string
}

// PruebaRouter registra la API JSON insegura. Nunca se monta junto a Router.
func PruebaRouter(app *fiber.App, deps PruebaRouterDeps) {
	app.Use(MarkInsecure())

	h := NewPruebaHandler(deps.PruebaUC)
	app.Get("/", h.Banner(deps.AppName))
	app.Get("/dashboard", h.Banner(deps.AppName))

	libros := app.Group("/libros")
	libros.Get("/", h.List)
	libros.Post("/", h.Create)
	libros.Get("/:id", h.Get)
	libros.Put("/:id", h.Update)
	libros.Delete("/:id", h.Delete)
}
