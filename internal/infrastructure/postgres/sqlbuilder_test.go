package postgres

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/jhoicas/almacen-api/internal/domain/query"
)

func buildListado(t *testing.T) (string, []any) {
	t.Helper()
	pipeline := query.Build(query.BuildParams{
		LocationID:     "11111111-1111-1111-1111-111111111111",
		MatchWarehouse: true,
		MatchStore:     true,
		Predicates: []query.Predicate{
			query.BrandIn{IDs: []string{"22222222-2222-2222-2222-222222222222"}},
			query.SkuMatches{Pattern: "AIR"},
			query.SizeEquals{Size: 42},
			query.StillPresent{Field: query.FieldTransferedAt},
		},
		Sort:      []query.SortKey{{Field: "size"}, {Field: "inexistente"}, {Field: "createdAt", Desc: true}},
		Limit:     2,
		Skip:      2,
		JoinStore: true,
	})
	return compilePipeline(pipeline)
}

func TestCompilePipeline_JoinsExternos(t *testing.T) {
	sql, _ := buildListado(t)

	// Todos los joins son LEFT: una referencia colgante no tumba la fila.
	assert.Contains(t, sql, "LEFT JOIN products p ON p.id = a.product_id")
	assert.Contains(t, sql, "LEFT JOIN brands b ON b.id = p.brand_id")
	assert.Contains(t, sql, "LEFT JOIN brand_models bm ON bm.id = p.brand_model_id")
	assert.Contains(t, sql, "LEFT JOIN stores s ON s.id = a.store_id")
	// El join de marca lo piden tanto el producto (nombre derivado) como el
	// predicado BrandIn; se emite una sola vez.
	assert.Equal(t, 1, strings.Count(sql, "LEFT JOIN brands"))
}

func TestCompilePipeline_OrdenAntesDeVentana(t *testing.T) {
	sql, args := buildListado(t)

	orderIdx := strings.Index(sql, "ORDER BY")
	limitIdx := strings.Index(sql, "LIMIT")
	offsetIdx := strings.Index(sql, "OFFSET")
	require.NotEqual(t, -1, orderIdx)
	require.NotEqual(t, -1, limitIdx)
	require.NotEqual(t, -1, offsetIdx)
	assert.Less(t, orderIdx, limitIdx, "el ORDER BY debe preceder al LIMIT")
	assert.Less(t, limitIdx, offsetIdx)

	// Ventana [skip, skip+limit): LIMIT 2 OFFSET 2 devuelve el tercero y el
	// cuarto elemento del conjunto ya ordenado.
	assert.Equal(t, 2, args[len(args)-2])
	assert.Equal(t, 2, args[len(args)-1])
}

func TestCompilePipeline_CampoDeOrdenDesconocidoSeOmite(t *testing.T) {
	sql, _ := buildListado(t)

	assert.Contains(t, sql, "ORDER BY a.size ASC, a.created_at DESC")
	assert.NotContains(t, sql, "inexistente")
}

func TestCompilePipeline_Predicados(t *testing.T) {
	sql, args := buildListado(t)

	assert.Contains(t, sql, "p.brand_id = ANY($2::uuid[])")
	assert.Contains(t, sql, "p.sku ~* $3")
	assert.Contains(t, sql, "a.size = $4")
	assert.Contains(t, sql, "a.transfered_at IS NULL")
	assert.Equal(t, []string{"22222222-2222-2222-2222-222222222222"}, args[1])
	assert.Equal(t, "AIR", args[2])
	assert.Equal(t, 42, args[3])
}

func TestCompilePipeline_UbicacionCombinada(t *testing.T) {
	sql, args := buildListado(t)

	// Un solo placeholder para ambas referencias: la unidad coincide por
	// bodega O por tienda.
	assert.Contains(t, sql, "(a.warehouse_id = $1 OR a.store_id = $1)")
	assert.Equal(t, "11111111-1111-1111-1111-111111111111", args[0])
}

func TestCompilePipeline_SoloBodega(t *testing.T) {
	pipeline := query.Build(query.BuildParams{
		LocationID:     "11111111-1111-1111-1111-111111111111",
		MatchWarehouse: true,
		Limit:          15,
	})
	sql, _ := compilePipeline(pipeline)

	assert.Contains(t, sql, "a.warehouse_id = $1")
	assert.NotContains(t, sql, "OR a.store_id")
	// Sin join de tienda el SELECT emite NULLs en su lugar.
	assert.NotContains(t, sql, "LEFT JOIN stores")
	assert.Contains(t, sql, "NULL::text")
}
