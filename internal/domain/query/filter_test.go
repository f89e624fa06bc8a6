package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/query"
)

func TestParseFilter_Vacio(t *testing.T) {
	for _, raw := range []string{"", "   ", "{}"} {
		preds, err := query.ParseFilter(raw)
		require.NoError(t, err)
		assert.Empty(t, preds)
	}
}

func TestParseFilter_MalFormado(t *testing.T) {
	// JSON roto es error del cliente, nunca un filtro vacío silencioso.
	_, err := query.ParseFilter("{not json")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestParseFilter_ClavesDesconocidasSeIgnoran(t *testing.T) {
	preds, err := query.ParseFilter(`{"color": "rojo", "foo": 42}`)
	require.NoError(t, err)
	assert.Empty(t, preds)
}

func TestParseFilter_OrdenCanonico(t *testing.T) {
	raw := `{
		"soldAt": "yes",
		"size": 42,
		"sku": "AIR",
		"brandModels": ["Air Max"],
		"brands": ["Nike", "Adidas"],
		"transferedAt": "yes"
	}`
	preds, err := query.ParseFilter(raw)
	require.NoError(t, err)
	require.Len(t, preds, 6)

	assert.Equal(t, query.BrandIn{Names: []string{"Nike", "Adidas"}}, preds[0])
	assert.Equal(t, query.ModelIn{Names: []string{"Air Max"}}, preds[1])
	assert.Equal(t, query.SkuMatches{Pattern: "AIR"}, preds[2])
	assert.Equal(t, query.SizeEquals{Size: 42}, preds[3])
	assert.Equal(t, query.StillPresent{Field: query.FieldTransferedAt}, preds[4])
	assert.Equal(t, query.StillPresent{Field: query.FieldSoldAt}, preds[5])
}

func TestParseFilter_SellosSoloConYes(t *testing.T) {
	preds, err := query.ParseFilter(`{"transferedAt": "no", "soldAt": "maybe"}`)
	require.NoError(t, err)
	assert.Empty(t, preds)
}

func TestParseFilter_ValorMalFormadoEnClaveConocida(t *testing.T) {
	cases := []string{
		`{"brands": "Nike"}`,
		`{"size": "42a"}`,
		`{"sku": 7}`,
		`{"transferedAt": 1}`,
	}
	for _, raw := range cases {
		_, err := query.ParseFilter(raw)
		assert.ErrorIsf(t, err, domain.ErrInvalidInput, "raw=%s", raw)
	}
}

func TestParseFilter_ListaVaciaNoCoincideConNada(t *testing.T) {
	// {"brands": []} produce el predicado con conjunto vacío; el llamador
	// obtiene cero coincidencias, no "sin filtro".
	preds, err := query.ParseFilter(`{"brands": []}`)
	require.NoError(t, err)
	require.Len(t, preds, 1)
	assert.Equal(t, query.BrandIn{Names: []string{}}, preds[0])
}

func TestParseFilter_SkuVacioSeOmite(t *testing.T) {
	preds, err := query.ParseFilter(`{"sku": ""}`)
	require.NoError(t, err)
	assert.Empty(t, preds)
}
