// Package views contiene las plantillas HTML embebidas en el binario.
package views

import (
	"embed"
	"net/http"
	"strconv"

	"github.com/gofiber/template/html/v2"
)

//go:embed *.html layouts/*.html
var files embed.FS

// Layout es la plantilla base de todas las páginas.
const Layout = "layouts/main"

// NewEngine construye el motor html/v2 de Fiber sobre las plantillas embebidas.
func NewEngine() *html.Engine {
	engine := html.NewFileSystem(http.FS(files), ".html")
	engine.AddFuncMap(map[string]interface{}{
		"texto": func(s *string) string {
			if s == nil {
				return ""
			}
			return *s
		},
		"anio": func(n *int) string {
			if n == nil {
				return ""
			}
			return strconv.Itoa(*n)
		},
	})
	return engine
}
