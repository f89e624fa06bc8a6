package postgres

import (
	"fmt"
	"strings"

	"github.com/jhoicas/almacen-api/internal/domain/query"
)

// Columnas permitidas para ORDER BY en el listado de artículos. Un campo fuera
// de la lista se omite en silencio (espejo de "un predicado sobre un campo
// inexistente nunca coincide"); el input de orden jamás llega al SQL como
// identificador crudo.
var articleSortColumns = map[string]string{
	"size":           "a.size",
	"createdAt":      "a.created_at",
	"updatedAt":      "a.updated_at",
	"warehousePrice": "a.warehouse_price",
	"transferPrice":  "a.transfer_price",
	"storePrice":     "a.store_price",
	"sellingPrice":   "a.selling_price",
	"soldAt":         "a.sold_at",
	"transferedAt":   "a.transfered_at",
	"sku":            "p.sku",
	"product.name":   "p.name",
}

// Cláusulas LEFT JOIN por relación: semántica externa siempre, la unidad
// sobrevive a referencias colgantes con la relación en NULL.
var joinClauses = map[query.Relation]string{
	query.RelationProduct:    "LEFT JOIN products p ON p.id = a.product_id",
	query.RelationBrand:      "LEFT JOIN brands b ON b.id = p.brand_id",
	query.RelationBrandModel: "LEFT JOIN brand_models bm ON bm.id = p.brand_model_id",
	query.RelationStore:      "LEFT JOIN stores s ON s.id = a.store_id",
}

// articleSelectColumns columnas fijas del listado: la unidad, el producto
// aplanado (con nombre derivado "marca - modelo") y la tienda aplanada.
// Cuando el pipeline no une la tienda se emiten NULLs en su lugar para que el
// escaneo sea uniforme.
const articleColumns = `a.id::text, a.created_by::text, a.product_id::text, a.warehouse_id::text, a.store_id::text,
	a.warehouse_price, a.transfer_price, a.store_price, a.selling_price,
	a.size, a.sold_at, a.transfered_at, a.created_at, a.updated_at`

const productColumns = `p.id::text, p.name, COALESCE(b.name || ' - ' || bm.name, p.name), p.sku,
	p.image_url, p.color, p.brand_id::text, p.brand_model_id::text, p.created_at, p.updated_at`

const storeColumns = `s.id::text, s.name, s.created_by::text, s.created_at, s.updated_at`

const storeColumnsNull = `NULL::text, NULL::text, NULL::text, NULL::timestamptz, NULL::timestamptz`

// compilePipeline traduce el pipeline neutral a un SELECT sobre articles.
// Cada etapa aporta su cláusula en el orden del pipeline; el ORDER BY siempre
// queda antes del LIMIT/OFFSET, así la ventana [skip, skip+limit) es
// determinista sobre el conjunto completo ya ordenado.
func compilePipeline(p query.Pipeline) (string, []any) {
	var (
		joins   []string
		joined  = map[query.Relation]bool{}
		where   []string
		orderBy []string
		args    []any
		limit   = -1
		skip    = 0
	)

	addJoin := func(rel query.Relation) {
		if joined[rel] {
			return
		}
		joined[rel] = true
		joins = append(joins, joinClauses[rel])
	}
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	for _, stage := range p {
		switch s := stage.(type) {
		case query.MatchLocation:
			switch {
			case s.Warehouse && s.Store:
				ph := arg(s.LocationID)
				where = append(where, fmt.Sprintf("(a.warehouse_id = %s OR a.store_id = %s)", ph, ph))
			case s.Warehouse:
				where = append(where, fmt.Sprintf("a.warehouse_id = %s", arg(s.LocationID)))
			case s.Store:
				where = append(where, fmt.Sprintf("a.store_id = %s", arg(s.LocationID)))
			}
		case query.Join:
			addJoin(s.Relation)
			// Aplanar el producto incluye su nombre derivado, que vive en
			// marca y modelo: la resolución es transitiva.
			if s.Relation == query.RelationProduct {
				addJoin(query.RelationBrand)
				addJoin(query.RelationBrandModel)
			}
		case query.MatchPredicate:
			where = append(where, compilePredicate(s.Predicate, arg))
		case query.Sort:
			for _, key := range s.Keys {
				col, ok := articleSortColumns[key.Field]
				if !ok {
					continue
				}
				dir := "ASC"
				if key.Desc {
					dir = "DESC"
				}
				orderBy = append(orderBy, col+" "+dir)
			}
		case query.Window:
			limit = s.Limit
			skip = s.Skip
		}
	}

	storeCols := storeColumnsNull
	if joined[query.RelationStore] {
		storeCols = storeColumns
	}

	var b strings.Builder
	fmt.Fprintf(&b, "SELECT %s,\n\t%s,\n\t%s\nFROM articles a", articleColumns, productColumns, storeCols)
	for _, j := range joins {
		b.WriteString("\n")
		b.WriteString(j)
	}
	if len(where) > 0 {
		b.WriteString("\nWHERE ")
		b.WriteString(strings.Join(where, "\n  AND "))
	}
	if len(orderBy) > 0 {
		b.WriteString("\nORDER BY ")
		b.WriteString(strings.Join(orderBy, ", "))
	}
	if limit > 0 {
		fmt.Fprintf(&b, "\nLIMIT %s", arg(limit))
	}
	if skip > 0 {
		fmt.Fprintf(&b, "\nOFFSET %s", arg(skip))
	}

	return b.String(), args
}

// compilePredicate traduce una variante de la unión de predicados a SQL.
func compilePredicate(pred query.Predicate, arg func(any) string) string {
	switch p := pred.(type) {
	case query.BrandIn:
		return fmt.Sprintf("p.brand_id = ANY(%s::uuid[])", arg(p.IDs))
	case query.ModelIn:
		return fmt.Sprintf("p.brand_model_id = ANY(%s::uuid[])", arg(p.IDs))
	case query.SkuMatches:
		return fmt.Sprintf("p.sku ~* %s", arg(p.Pattern))
	case query.SizeEquals:
		return fmt.Sprintf("a.size = %s", arg(p.Size))
	case query.StillPresent:
		if p.Field == query.FieldSoldAt {
			return "a.sold_at IS NULL"
		}
		return "a.transfered_at IS NULL"
	default:
		// Predicado desconocido: no coincide con nada, no es un error.
		return "FALSE"
	}
}
