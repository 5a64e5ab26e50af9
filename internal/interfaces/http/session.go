package http

import (
	"encoding/base64"
	"time"

	"github.com/gofiber/fiber/v2"
)

const flashCookie = "flash"

// Sessions maneja la cookie de sesión (token firmado) y la cookie de mensajes flash.
// No guarda estado en el servidor.
type Sessions struct {
	cookieName string
	secure     bool
	ttl        time.Duration
}

// NewSessions construye el manejador de cookies. ttlMinutes coincide con la expiración del token.
func NewSessions(cookieName string, secure bool, ttlMinutes int) *Sessions {
	if cookieName == "" {
		cookieName = "sesion"
	}
	return &Sessions{cookieName: cookieName, secure: secure, ttl: time.Duration(ttlMinutes) * time.Minute}
}

// Start guarda el token de sesión en una cookie HttpOnly.
func (s *Sessions) Start(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     s.cookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(s.ttl),
		HTTPOnly: true,
		Secure:   s.secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// Token devuelve el token de la cookie de sesión ("" si no hay).
func (s *Sessions) Token(c *fiber.Ctx) string {
	return c.Cookies(s.cookieName)
}

// Clear elimina la cookie de sesión.
func (s *Sessions) Clear(c *fiber.Ctx) {
	s.expire(c, s.cookieName)
}

// SetFlash deja un mensaje para la próxima página renderizada.
func (s *Sessions) SetFlash(c *fiber.Ctx, msg string) {
	c.Cookie(&fiber.Cookie{
		Name:     flashCookie,
		Value:    base64.RawURLEncoding.EncodeToString([]byte(msg)),
		Path:     "/",
		HTTPOnly: true,
		Secure:   s.secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// TakeFlash lee el mensaje pendiente y lo consume.
func (s *Sessions) TakeFlash(c *fiber.Ctx) string {
	raw := c.Cookies(flashCookie)
	if raw == "" {
		return ""
	}
	s.expire(c, flashCookie)
	b, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil {
		return ""
	}
	return string(b)
}

func (s *Sessions) expire(c *fiber.Ctx, name string) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HTTPOnly: true,
		Secure:   s.secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
