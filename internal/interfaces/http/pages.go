package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/mis-libros/internal/domain/access"
	"github.com/jhoicas/mis-libros/internal/interfaces/http/views"
)

// Pages completa los datos comunes del layout (identidad, flash, menú admin) y renderiza.
type Pages struct {
	appName  string
	sessions *Sessions
	policy   *access.Policy
}

// NewPages construye el renderizador de páginas.
func NewPages(appName string, sessions *Sessions, policy *access.Policy) *Pages {
	return &Pages{appName: appName, sessions: sessions, policy: policy}
}

// Render ejecuta la plantilla name dentro del layout principal.
func (p *Pages) Render(c *fiber.Ctx, name, title string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	data["AppName"] = p.appName
	data["Title"] = title
	data["Flash"] = p.sessions.TakeFlash(c)
	if id, ok := GetIdentity(c); ok {
		data["Identity"] = &id
		data["EsAdmin"] = p.policy.IsAdmin(id)
	}
	if _, ok := data["Errors"]; !ok {
		data["Errors"] = map[string]string{}
	}
	return c.Render(name, data, views.Layout)
}

// NotFound renderiza la página 404.
func (p *Pages) NotFound(c *fiber.Ctx, msg string) error {
	c.Status(fiber.StatusNotFound)
	return p.Render(c, "error", "No encontrado", fiber.Map{"Status": fiber.StatusNotFound, "Message": msg})
}

// Redirect deja un flash y redirige con 302.
func (p *Pages) Redirect(c *fiber.Ctx, to, flash string) error {
	if flash != "" {
		p.sessions.SetFlash(c, flash)
	}
	return c.Redirect(to, fiber.StatusFound)
}

// Index GET /
func (p *Pages) Index(c *fiber.Ctx) error {
	return p.Render(c, "index", "Inicio", nil)
}
