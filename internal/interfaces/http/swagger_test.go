package http_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/almacen-api/internal/interfaces/http"
)

// Un checkout limpio no trae docs/swagger.json generado; el middleware no se
// registra y la aplicación debe arrancar sin documentación.
func TestSwagger_SinArchivoGeneradoDevuelveNil(t *testing.T) {
	h := apphttp.Swagger(filepath.Join(t.TempDir(), "swagger.json"))
	assert.Nil(t, h)
}

func TestSwagger_ConArchivoGenerado(t *testing.T) {
	path := filepath.Join(t.TempDir(), "swagger.json")
	spec := `{"swagger":"2.0","info":{"title":"Almacén API","version":"1.0"},"paths":{}}`
	require.NoError(t, os.WriteFile(path, []byte(spec), 0o644))

	assert.NotNil(t, apphttp.Swagger(path))
}
