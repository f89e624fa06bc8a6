package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/query"
)

func TestBuild_OrdenDeEtapas(t *testing.T) {
	preds := []query.Predicate{
		query.BrandIn{Names: []string{"Nike"}},
		query.SkuMatches{Pattern: "AIR"},
	}
	pipeline := query.Build(query.BuildParams{
		LocationID:     "loc-1",
		MatchWarehouse: true,
		MatchStore:     true,
		Predicates:     preds,
		Sort:           []query.SortKey{{Field: "size"}},
		Limit:          10,
		Skip:           20,
		JoinStore:      true,
	})

	require.Len(t, pipeline, 8)
	assert.Equal(t, query.MatchLocation{LocationID: "loc-1", Warehouse: true, Store: true}, pipeline[0])
	assert.Equal(t, query.Join{Relation: query.RelationProduct}, pipeline[1])
	assert.Equal(t, query.Join{Relation: query.RelationBrand}, pipeline[2])
	assert.Equal(t, query.Join{Relation: query.RelationStore}, pipeline[3])
	assert.Equal(t, query.MatchPredicate{Predicate: preds[0]}, pipeline[4])
	assert.Equal(t, query.MatchPredicate{Predicate: preds[1]}, pipeline[5])
	assert.Equal(t, query.Sort{Keys: []query.SortKey{{Field: "size"}}}, pipeline[6])
	assert.Equal(t, query.Window{Limit: 10, Skip: 20}, pipeline[7])
}

// TestBuild_OrdenAntesDeVentana el recorte después de ordenar es lo que hace
// deterministas las páginas; esta prueba impide reintroducir el recorte
// temprano que arrastraban algunos llamadores históricos.
func TestBuild_OrdenAntesDeVentana(t *testing.T) {
	pipeline := query.Build(query.BuildParams{
		LocationID:     "loc-1",
		MatchWarehouse: true,
		Sort:           []query.SortKey{{Field: "createdAt", Desc: true}},
		Limit:          2,
		Skip:           2,
	})

	sortIdx, windowIdx := -1, -1
	for i, stage := range pipeline {
		switch stage.(type) {
		case query.Sort:
			sortIdx = i
		case query.Window:
			windowIdx = i
		}
	}
	require.NotEqual(t, -1, sortIdx)
	require.NotEqual(t, -1, windowIdx)
	assert.Less(t, sortIdx, windowIdx)
}

func TestBuild_JoinsSoloLosReferenciados(t *testing.T) {
	pipeline := query.Build(query.BuildParams{
		LocationID:     "loc-1",
		MatchWarehouse: true,
		Predicates:     []query.Predicate{query.SizeEquals{Size: 40}},
		Limit:          15,
	})

	joins := map[query.Relation]bool{}
	for _, stage := range pipeline {
		if j, ok := stage.(query.Join); ok {
			joins[j.Relation] = true
		}
	}
	assert.True(t, joins[query.RelationProduct], "el producto siempre se une")
	assert.False(t, joins[query.RelationBrand])
	assert.False(t, joins[query.RelationBrandModel])
	assert.False(t, joins[query.RelationStore])
}

func TestBuild_SinOrdenNoEmiteEtapaSort(t *testing.T) {
	pipeline := query.Build(query.BuildParams{LocationID: "loc-1", MatchWarehouse: true, Limit: 15})
	for _, stage := range pipeline {
		_, isSort := stage.(query.Sort)
		assert.False(t, isSort)
	}
}

func TestParseSort_PreservaOrden(t *testing.T) {
	keys, err := query.ParseSort(`{"size": -1, "createdAt": 1}`)
	require.NoError(t, err)
	require.Len(t, keys, 2)
	assert.Equal(t, query.SortKey{Field: "size", Desc: true}, keys[0])
	assert.Equal(t, query.SortKey{Field: "createdAt"}, keys[1])
}

func TestParseSort_Errores(t *testing.T) {
	for _, raw := range []string{`[1,2]`, `{"size": 2}`, `{"size": "asc"}`, `{bad`} {
		_, err := query.ParseSort(raw)
		assert.ErrorIsf(t, err, domain.ErrInvalidInput, "raw=%s", raw)
	}
}

func TestParseSort_Vacio(t *testing.T) {
	keys, err := query.ParseSort("")
	require.NoError(t, err)
	assert.Nil(t, keys)
}
