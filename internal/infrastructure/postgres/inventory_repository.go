package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/query"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo vistas de inventario agrupado por producto (solo lectura).
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador de inventario.
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// Columnas permitidas para ORDER BY en el inventario agrupado.
var inventorySortColumns = map[string]string{
	"total":     "total",
	"name":      "p.name",
	"sku":       "p.sku",
	"createdAt": "p.created_at",
}

// GroupByProduct agrupa las unidades de la ubicación por producto.
//
// Total excluye las unidades cuyo sello de presencia ya está asignado y Sizes
// toma las tallas solo de las que cuentan; el filtro de sku se aplica después
// del join de producto (depende de datos unidos) y el join es externo: un
// grupo cuyo producto fue borrado igual sale, con Product en nil. El ORDER BY
// precede al LIMIT/OFFSET, así la ventana es determinista.
func (r *InventoryRepo) GroupByProduct(ctx context.Context, p repository.GroupParams) ([]repository.ProductGroup, error) {
	locationColumn, presenceColumn := locationColumns(p.Presence)

	var (
		args  []any
		where []string
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	where = append(where, fmt.Sprintf("a.%s = %s", locationColumn, arg(p.LocationID)))
	if p.SkuPattern != "" {
		where = append(where, fmt.Sprintf("p.sku ~* %s", arg(p.SkuPattern)))
	}

	orderBy := "total ASC"
	if len(p.Sort) > 0 {
		var keys []string
		for _, key := range p.Sort {
			col, ok := inventorySortColumns[key.Field]
			if !ok {
				continue
			}
			dir := "ASC"
			if key.Desc {
				dir = "DESC"
			}
			keys = append(keys, col+" "+dir)
		}
		if len(keys) > 0 {
			orderBy = strings.Join(keys, ", ")
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, `
	SELECT a.product_id::text,
		COUNT(*) FILTER (WHERE a.%[1]s IS NULL) AS total,
		COALESCE(ARRAY_AGG(a.size ORDER BY a.size) FILTER (WHERE a.%[1]s IS NULL), '{}') AS sizes,
		p.id::text, p.name, COALESCE(b.name || ' - ' || bm.name, p.name), p.sku,
		p.image_url, p.color, p.brand_id::text, p.brand_model_id::text, p.created_at, p.updated_at
	FROM articles a
	LEFT JOIN products p ON p.id = a.product_id
	LEFT JOIN brands b ON b.id = p.brand_id
	LEFT JOIN brand_models bm ON bm.id = p.brand_model_id
	WHERE %[2]s
	GROUP BY a.product_id, p.id, b.name, bm.name
	ORDER BY %[3]s`, presenceColumn, strings.Join(where, " AND "), orderBy)

	if p.Limit > 0 {
		fmt.Fprintf(&b, "\n\tLIMIT %s", arg(p.Limit))
	}
	if p.Skip > 0 {
		fmt.Fprintf(&b, "\n\tOFFSET %s", arg(p.Skip))
	}

	rows, err := r.q.Query(ctx, b.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("inventory group by product: %w", err)
	}
	defer rows.Close()

	var groups []repository.ProductGroup
	for rows.Next() {
		var (
			g     repository.ProductGroup
			sizes []int32

			pID, pName, pDisplay, pSKU, pImage, pColor, pBrandID, pModelID *string
			pCreated, pUpdated                                             *time.Time
		)
		err := rows.Scan(
			&g.ProductID, &g.Total, &sizes,
			&pID, &pName, &pDisplay, &pSKU, &pImage, &pColor, &pBrandID, &pModelID,
			&pCreated, &pUpdated,
		)
		if err != nil {
			return nil, fmt.Errorf("scan inventory group: %w", err)
		}
		g.Sizes = make([]int, 0, len(sizes))
		for _, s := range sizes {
			g.Sizes = append(g.Sizes, int(s))
		}
		if pID != nil {
			g.Product = &entity.Product{
				ID:           *pID,
				Name:         deref(pName),
				DisplayName:  deref(pDisplay),
				SKU:          deref(pSKU),
				ImageURL:     deref(pImage),
				Color:        deref(pColor),
				BrandID:      deref(pBrandID),
				BrandModelID: deref(pModelID),
				CreatedAt:    derefTime(pCreated),
				UpdatedAt:    derefTime(pUpdated),
			}
		}
		groups = append(groups, g)
	}
	return groups, rows.Err()
}

// CountDistinctProducts productos distintos que alguna vez estuvieron en la
// ubicación. Sin filtros a propósito: es el universo de paginación, aunque un
// filtro de sku devuelva menos filas.
func (r *InventoryRepo) CountDistinctProducts(ctx context.Context, locationID string, presence query.PresenceField) (int, error) {
	locationColumn, _ := locationColumns(presence)
	sql := fmt.Sprintf(`SELECT COUNT(DISTINCT product_id) FROM articles WHERE %s = $1`, locationColumn)

	var count int
	if err := r.q.QueryRow(ctx, sql, locationID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count distinct products: %w", err)
	}
	return count, nil
}

// locationColumns mapea el campo de presencia a la columna de ubicación y la
// columna de sello: transferedAt describe bodegas, soldAt describe tiendas.
func locationColumns(presence query.PresenceField) (location, stamp string) {
	if presence == query.FieldSoldAt {
		return "store_id", "sold_at"
	}
	return "warehouse_id", "transfered_at"
}
