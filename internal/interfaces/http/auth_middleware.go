package http

import (
	"errors"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/mis-libros/internal/application/auth"
	"github.com/jhoicas/mis-libros/internal/domain"
	"github.com/jhoicas/mis-libros/internal/domain/entity"
)

// LocalIdentity clave de c.Locals con la identidad de la sesión.
const LocalIdentity = "identity"

// SessionMiddleware resuelve la cookie de sesión a la identidad vigente y la deja en
// c.Locals. Nunca bloquea: una sesión inválida o expirada se borra y la petición sigue
// como anónima.
func SessionMiddleware(authUC *auth.AuthUseCase, sessions *Sessions) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := sessions.Token(c)
		if token == "" {
			return c.Next()
		}
		id, err := authUC.Identify(c.UserContext(), token)
		if err != nil {
			if errors.Is(err, domain.ErrUnauthorized) {
				sessions.Clear(c)
				return c.Next()
			}
			return err
		}
		c.Locals(LocalIdentity, *id)
		return c.Next()
	}
}

// RequireLogin redirige a /login?next=<ruta> si la petición no tiene sesión.
func RequireLogin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := GetIdentity(c); !ok {
			return c.Redirect("/login?next="+url.QueryEscape(c.OriginalURL()), fiber.StatusFound)
		}
		return c.Next()
	}
}

// GetIdentity devuelve la identidad de la sesión (después de SessionMiddleware).
func GetIdentity(c *fiber.Ctx) (entity.Identity, bool) {
	id, ok := c.Locals(LocalIdentity).(entity.Identity)
	return id, ok
}
