package http

import (
	"os"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
)

// Swagger construye el middleware de documentación sobre el archivo generado.
// Si el archivo no existe devuelve nil: la API arranca igual, solo sin /docs.
func Swagger(filePath string) fiber.Handler {
	if _, err := os.Stat(filePath); err != nil {
		return nil
	}
	return swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: filePath,
		Path:     "docs",
		Title:    "Almacén API",
	})
}
